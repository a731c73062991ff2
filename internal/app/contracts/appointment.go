package contracts

import (
	"context"

	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/dto/responses"
)

type AppointmentUsecase interface {
	BookAppointment(ctx context.Context, request *requests.BookAppointment) (*models.Appointment, error)
	GetDoctorAppointments(ctx context.Context, doctorID string) ([]responses.DoctorAppointment, error)
	GetPatientAppointments(ctx context.Context, patientID string) ([]responses.PatientAppointment, error)
	UpdateAppointment(ctx context.Context, appointmentID string, request *requests.UpdateAppointment) (*models.Appointment, error)
	DeleteAppointment(ctx context.Context, appointmentID string) error
}

type AppointmentRepository interface {
	Insert(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error)
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	FindByDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error)
	FindByPatient(ctx context.Context, patientID string) ([]models.Appointment, error)
	UpdateFields(ctx context.Context, appointmentID, status, disease string) (*models.Appointment, error)
	DeleteByID(ctx context.Context, appointmentID string) error
}
