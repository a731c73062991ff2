package requests

type GenerateSlots struct {
	Date string `json:"date" validate:"required,dateonly"`
	From string `json:"from" validate:"omitempty,clock"`
	To   string `json:"to" validate:"omitempty,clock"`
}

type SetSlotAvailability struct {
	Available *bool `json:"available" validate:"required"`
}

type EditSlotTimings struct {
	StartTime string `json:"startTime" validate:"required,clock"`
	EndTime   string `json:"endTime" validate:"required,clock"`
}

type SlotQuery struct {
	DoctorID string `validate:"required"`
	Date     string `validate:"required,dateonly"`
}
