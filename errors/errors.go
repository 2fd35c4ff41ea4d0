package errors

const (
	UnauthorizedAccess = "unauthorized access"
	ForbiddenAccess    = "forbidden access"
	MissingEmailParam  = "Email parameter is missing."
	UserAlreadyExist   = "User already exist"
	InvalidIDError     = "Invalid id format"
	DatabaseError      = "Database error"
	ErrorToken         = "Error generating token"
)
