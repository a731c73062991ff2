package patients

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"clinic-service/internal/app/config"
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/dto/responses"
	"clinic-service/internal/pkg/exceptions"
	"clinic-service/internal/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type patientUsecase struct {
	PatientRepository contracts.PatientRepository
	RedisRepository   contracts.RedisRepository
	MailerService     contracts.MailerService
	Storage           contracts.Storage
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
}

func NewPatientUsecase(
	patientRepository contracts.PatientRepository,
	redisRepository contracts.RedisRepository,
	mailerService contracts.MailerService,
	storage contracts.Storage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.PatientUsecase {
	return &patientUsecase{
		PatientRepository: patientRepository,
		RedisRepository:   redisRepository,
		MailerService:     mailerService,
		Storage:           storage,
		InternalConfig:    internalConfig,
		Log:               logger,
	}
}

func (uc *patientUsecase) Register(ctx context.Context, request *requests.RegisterPatient) (*models.Patient, error) {
	existing, err := uc.PatientRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	patient := &models.Patient{
		Profile:       constvars.PatientDefaultProfileImages[rand.Intn(len(constvars.PatientDefaultProfileImages))],
		FirstName:     request.FirstName,
		LastName:      request.LastName,
		Email:         request.Email,
		Password:      hashedPassword,
		ContactNumber: request.ContactNumber,
		Age:           request.Age,
		Gender:        request.Gender,
		Role:          constvars.RolePatient,
	}

	savedPatient, err := uc.PatientRepository.Create(ctx, patient)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("patient registered", zap.String("patient_id", savedPatient.ID.Hex()))
	return savedPatient, nil
}

func (uc *patientUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	patient, err := uc.PatientRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if patient == nil || !utils.CheckPasswordHash(request.Password, patient.Password) {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	token, err := utils.GenerateJWT(patient.ID.Hex(), patient.Role, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, err
	}

	sessionKey := fmt.Sprintf(constvars.RedisSessionKeyFormat, patient.ID.Hex())
	err = uc.RedisRepository.Set(ctx, sessionKey, token, time.Duration(uc.InternalConfig.JWT.ExpTimeInHour)*time.Hour)
	if err != nil {
		return nil, err
	}

	return &responses.Login{
		Token:  token,
		UserID: patient.ID.Hex(),
		Role:   patient.Role,
	}, nil
}

func (uc *patientUsecase) GetByID(ctx context.Context, patientID string) (*models.Patient, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotExist(nil)
	}
	return patient, nil
}

func (uc *patientUsecase) Update(ctx context.Context, patientID string, request *requests.UpdatePatient) (*models.Patient, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotExist(nil)
	}

	if len(request.ProfilePictureData) > 0 {
		objectName := fmt.Sprintf("patient-%s-%s", patientID, uuid.NewString())
		profileURL, err := uc.Storage.UploadBase64Image(ctx, request.ProfilePictureData, objectName, request.ProfilePictureExtension)
		if err != nil {
			return nil, err
		}
		patient.Profile = profileURL
	}

	if request.FirstName != "" {
		patient.FirstName = request.FirstName
	}
	if request.LastName != "" {
		patient.LastName = request.LastName
	}
	if request.ContactNumber != "" {
		patient.ContactNumber = request.ContactNumber
	}
	if request.Age != 0 {
		patient.Age = request.Age
	}
	if request.Gender != "" {
		patient.Gender = request.Gender
	}

	err = uc.PatientRepository.Update(ctx, patient)
	if err != nil {
		return nil, err
	}
	return patient, nil
}

func (uc *patientUsecase) Delete(ctx context.Context, patientID string) error {
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return err
	}
	if patient == nil {
		return exceptions.ErrPatientNotExist(nil)
	}
	return uc.PatientRepository.DeleteByID(ctx, patientID)
}

// RequestPasswordResetOTP stores a short-lived OTP in redis keyed by email and
// queues the notification email. An unknown email gets the same response as a
// known one so the endpoint cannot be used to probe accounts.
func (uc *patientUsecase) RequestPasswordResetOTP(ctx context.Context, request *requests.RequestPasswordResetOTP) error {
	patient, err := uc.PatientRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return err
	}
	if patient == nil {
		uc.Log.Info("password reset requested for unknown email")
		return nil
	}

	otp, err := utils.GenerateOTP()
	if err != nil {
		return exceptions.ErrOTPGenerate(err)
	}

	otpKey := fmt.Sprintf(constvars.RedisPasswordResetKeyFormat, request.Email)
	err = uc.RedisRepository.Set(ctx, otpKey, otp, time.Duration(constvars.OTPExpiryTimeInMinutes)*time.Minute)
	if err != nil {
		return err
	}

	payload := &requests.EmailPayload{
		To:      []string{request.Email},
		Subject: "Your password reset code",
		Body: fmt.Sprintf(
			"Hi %s,\n\nYour password reset code is %s. It expires in %d minutes.\n\nIf you did not request this, you can ignore this email.",
			patient.FirstName, otp, constvars.OTPExpiryTimeInMinutes,
		),
		IsHTML: false,
	}
	err = uc.MailerService.SendEmail(ctx, payload)
	if err != nil {
		return err
	}

	uc.Log.Info("password reset OTP issued", zap.String("patient_id", patient.ID.Hex()))
	return nil
}

func (uc *patientUsecase) VerifyOTPAndResetPassword(ctx context.Context, request *requests.VerifyOTPAndResetPassword) error {
	patient, err := uc.PatientRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return err
	}
	if patient == nil {
		return exceptions.ErrPatientNotExist(nil)
	}

	otpKey := fmt.Sprintf(constvars.RedisPasswordResetKeyFormat, request.Email)
	storedOTP, err := uc.RedisRepository.Get(ctx, otpKey)
	if err != nil {
		return err
	}
	if storedOTP == "" {
		return exceptions.ErrOTPNotRequested(nil)
	}
	if storedOTP != request.OTP {
		return exceptions.ErrOTPInvalid(nil)
	}

	hashedPassword, err := utils.HashPassword(request.NewPassword)
	if err != nil {
		return exceptions.ErrHashPassword(err)
	}

	err = uc.PatientRepository.UpdatePasswordByEmail(ctx, request.Email, hashedPassword)
	if err != nil {
		return err
	}

	err = uc.RedisRepository.Delete(ctx, otpKey)
	if err != nil {
		uc.Log.Warn("failed to invalidate used password reset OTP", zap.Error(err))
	}

	uc.Log.Info("password reset completed", zap.String("patient_id", patient.ID.Hex()))
	return nil
}
