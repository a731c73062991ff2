package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Appointment is a patient's claim on a slot. AppointmentDate is a snapshot
// of the slot's date taken at booking time; later slot edits never rewrite it.
type Appointment struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Patient         primitive.ObjectID `json:"patient" bson:"patient"`
	Doctor          primitive.ObjectID `json:"doctor" bson:"doctor"`
	AppointmentDate string             `json:"appointmentDate" bson:"appointmentDate"`
	Slot            primitive.ObjectID `json:"slot" bson:"slot"`
	Status          string             `json:"status" bson:"status"`
	Disease         string             `json:"disease" bson:"disease"`
}
