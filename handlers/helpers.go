package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	errs "github.com/fahim-khandakar/explore-elite-server-side/errors"
)

func jsonResponse(payload interface{}, writer http.ResponseWriter) {
	err := json.NewEncoder(writer).Encode(payload)
	if err != nil {
		log.Println("error encoding response:", err)
	}
}

func writeForbidden(writer http.ResponseWriter) {
	writer.WriteHeader(http.StatusForbidden)
	jsonResponse(map[string]string{"message": errs.ForbiddenAccess}, writer)
}

func writeInternal(writer http.ResponseWriter) {
	writer.WriteHeader(http.StatusInternalServerError)
	jsonResponse(map[string]string{"message": errs.DatabaseError}, writer)
}

func writeMissingEmail(writer http.ResponseWriter) {
	writer.WriteHeader(http.StatusBadRequest)
	jsonResponse(map[string]string{"error": errs.MissingEmailParam}, writer)
}

// parseID converts a path id into an ObjectID, answering 400 itself on bad
// input. The original surface let a malformed id blow up the request; the
// explicit status here is a deliberate hardening.
func parseID(writer http.ResponseWriter, raw string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		writer.WriteHeader(http.StatusBadRequest)
		jsonResponse(map[string]string{"message": errs.InvalidIDError}, writer)
		return primitive.NilObjectID, false
	}
	return id, true
}
