package contracts

import (
	"context"

	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/dto/responses"
)

type PatientUsecase interface {
	Register(ctx context.Context, request *requests.RegisterPatient) (*models.Patient, error)
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
	GetByID(ctx context.Context, patientID string) (*models.Patient, error)
	Update(ctx context.Context, patientID string, request *requests.UpdatePatient) (*models.Patient, error)
	Delete(ctx context.Context, patientID string) error

	RequestPasswordResetOTP(ctx context.Context, request *requests.RequestPasswordResetOTP) error
	VerifyOTPAndResetPassword(ctx context.Context, request *requests.VerifyOTPAndResetPassword) error
}

type PatientRepository interface {
	Create(ctx context.Context, patient *models.Patient) (*models.Patient, error)
	FindByEmail(ctx context.Context, email string) (*models.Patient, error)
	FindByID(ctx context.Context, patientID string) (*models.Patient, error)
	Update(ctx context.Context, patient *models.Patient) error
	UpdatePasswordByEmail(ctx context.Context, email, hashedPassword string) error
	DeleteByID(ctx context.Context, patientID string) error
}
