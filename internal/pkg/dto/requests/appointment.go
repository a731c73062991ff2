package requests

type BookAppointment struct {
	Patient string `json:"patient" validate:"required"`
	Doctor  string `json:"doctor" validate:"required"`
	SlotID  string `json:"slotId" validate:"required"`
	Disease string `json:"disease" validate:"required"`
}

type UpdateAppointment struct {
	Status  string `json:"status,omitempty" validate:"omitempty,oneof=scheduled completed canceled"`
	Disease string `json:"disease,omitempty"`
}
