package domain

import (
	"encoding/json"
	"io"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRole string

const (
	// Tourist is the default role; documents created before role promotion
	// carry no role field at all, which reads back as the zero value.
	Tourist UserRole = "tourist"
	Guide   UserRole = "guide"
	Admin   UserRole = "admin"
)

type User struct {
	ID    primitive.ObjectID `bson:"_id" json:"_id"`
	Email string             `bson:"email" json:"email"`
	Name  string             `bson:"name,omitempty" json:"name,omitempty"`
	Photo string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Role  UserRole           `bson:"role,omitempty" json:"role,omitempty"`
}

type Package struct {
	ID          primitive.ObjectID `bson:"_id" json:"_id"`
	Title       string             `bson:"tripTitle" json:"tripTitle"`
	Type        string             `bson:"type" json:"type"`
	Price       float64            `bson:"price" json:"price"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Photo       string             `bson:"photo,omitempty" json:"photo,omitempty"`
}

type BookingStatus string

const (
	// Pending is represented by an absent status field on fresh bookings.
	Pending  BookingStatus = "pending"
	Accepted BookingStatus = "accepted"
	Rejected BookingStatus = "rejected"
)

type GuideRef struct {
	Email string `bson:"email" json:"email"`
	Name  string `bson:"name,omitempty" json:"name,omitempty"`
}

type Booking struct {
	ID           primitive.ObjectID `bson:"_id" json:"_id"`
	Email        string             `bson:"email" json:"email"`
	TouristName  string             `bson:"touristName,omitempty" json:"touristName,omitempty"`
	PackageID    string             `bson:"packageId,omitempty" json:"packageId,omitempty"`
	PackageTitle string             `bson:"packageTitle,omitempty" json:"packageTitle,omitempty"`
	Date         string             `bson:"date,omitempty" json:"date,omitempty"`
	Price        float64            `bson:"price,omitempty" json:"price,omitempty"`
	Guide        GuideRef           `bson:"guide" json:"guide"`
	Status       BookingStatus      `bson:"status,omitempty" json:"status,omitempty"`
}

type Wish struct {
	ID        primitive.ObjectID `bson:"_id" json:"_id"`
	User      string             `bson:"user" json:"user"`
	PackageID string             `bson:"packageId" json:"packageId"`
	Title     string             `bson:"tripTitle,omitempty" json:"tripTitle,omitempty"`
	Price     float64            `bson:"price,omitempty" json:"price,omitempty"`
	Photo     string             `bson:"photo,omitempty" json:"photo,omitempty"`
}

type Story struct {
	ID      primitive.ObjectID `bson:"_id" json:"_id"`
	Email   string             `bson:"email" json:"email"`
	Name    string             `bson:"name,omitempty" json:"name,omitempty"`
	Title   string             `bson:"title" json:"title"`
	Content string             `bson:"content" json:"content"`
	Photo   string             `bson:"photo,omitempty" json:"photo,omitempty"`
}

// Identity is the verified subject of a request, decoded from a bearer
// token. Authorization decisions read the email from here and nowhere else.
type Identity struct {
	Email string `mapstructure:"email" json:"email"`
	Name  string `mapstructure:"name" json:"name"`
}

// Store results mirror the wire shape of the document driver acknowledgments
// so handlers can forward them as the response body unchanged.

type InsertResult struct {
	Acknowledged bool        `json:"acknowledged"`
	InsertedID   interface{} `json:"insertedId"`
}

type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

func (booking *Booking) FromJSON(reader io.Reader) error {
	d := json.NewDecoder(reader)
	return d.Decode(booking)
}
