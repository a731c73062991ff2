package responses

import "clinic-service/internal/app/models"

// PatientSummary carries the patient fields a doctor sees on their
// appointment list.
type PatientSummary struct {
	ID            string `json:"id"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	ContactNumber string `json:"contactNumber"`
}

// DoctorSummary carries the doctor fields a patient sees on their
// appointment list.
type DoctorSummary struct {
	ID             string `json:"id"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	ClinicLocation string `json:"clinicLocation"`
	Specialty      string `json:"specialty"`
}

type DoctorAppointment struct {
	ID              string          `json:"id"`
	AppointmentDate string          `json:"appointmentDate"`
	Status          string          `json:"status"`
	Disease         string          `json:"disease"`
	Patient         *PatientSummary `json:"patient,omitempty"`
	Slot            *models.Slot    `json:"slot,omitempty"`
}

type PatientAppointment struct {
	ID              string         `json:"id"`
	AppointmentDate string         `json:"appointmentDate"`
	Status          string         `json:"status"`
	Disease         string         `json:"disease"`
	Doctor          *DoctorSummary `json:"doctor,omitempty"`
	Slot            *models.Slot   `json:"slot,omitempty"`
}
