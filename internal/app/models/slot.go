package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Slot is one bookable time window offered by a doctor. Date and times are
// wall-clock strings ("YYYY-MM-DD", "HH:MM"); no timezone math is done on
// them anywhere.
type Slot struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Doctor      primitive.ObjectID `json:"doctor" bson:"doctor"`
	Date        string             `json:"date" bson:"date"`
	StartTime   string             `json:"startTime" bson:"startTime"`
	EndTime     string             `json:"endTime" bson:"endTime"`
	IsAvailable bool               `json:"isAvailable" bson:"isAvailable"`
}
