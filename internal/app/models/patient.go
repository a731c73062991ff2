package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Patient struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Profile       string             `json:"profile" bson:"profile"`
	FirstName     string             `json:"firstName" bson:"firstName"`
	LastName      string             `json:"lastName" bson:"lastName"`
	Email         string             `json:"email" bson:"email"`
	Password      string             `json:"-" bson:"password"`
	ContactNumber string             `json:"contactNumber" bson:"contactNumber"`
	Age           int                `json:"age,omitempty" bson:"age,omitempty"`
	Gender        string             `json:"gender,omitempty" bson:"gender,omitempty"`
	Role          string             `json:"role" bson:"role"`
}
