package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Blog struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	HeadTitle string             `json:"headTitle" bson:"headTitle"`
	Body      string             `json:"body" bson:"body"`
	Author    string             `json:"author" bson:"author"`
	Image     string             `json:"image,omitempty" bson:"image,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

type Doctor struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Profile        string             `json:"profile" bson:"profile"`
	FirstName      string             `json:"firstName" bson:"firstName"`
	LastName       string             `json:"lastName" bson:"lastName"`
	Email          string             `json:"email" bson:"email"`
	Password       string             `json:"-" bson:"password"`
	Specialty      string             `json:"specialty" bson:"specialty"`
	ClinicLocation string             `json:"clinicLocation" bson:"clinicLocation"`
	ContactNumber  string             `json:"contactNumber" bson:"contactNumber"`
	WorkingHours   string             `json:"workingHours,omitempty" bson:"workingHours,omitempty"`
	About          string             `json:"about,omitempty" bson:"about,omitempty"`
	Role           string             `json:"role" bson:"role"`
	Blogs          []Blog             `json:"blogs,omitempty" bson:"blogs,omitempty"`
}
