package doctors

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
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type doctorUsecase struct {
	DoctorRepository contracts.DoctorRepository
	RedisRepository  contracts.RedisRepository
	Storage          contracts.Storage
	InternalConfig   *config.InternalConfig
	Log              *zap.Logger
}

func NewDoctorUsecase(
	doctorRepository contracts.DoctorRepository,
	redisRepository contracts.RedisRepository,
	storage contracts.Storage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.DoctorUsecase {
	return &doctorUsecase{
		DoctorRepository: doctorRepository,
		RedisRepository:  redisRepository,
		Storage:          storage,
		InternalConfig:   internalConfig,
		Log:              logger,
	}
}

func (uc *doctorUsecase) Register(ctx context.Context, request *requests.RegisterDoctor) (*models.Doctor, error) {
	existing, err := uc.DoctorRepository.FindByEmail(ctx, request.Email)
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

	doctor := &models.Doctor{
		Profile:        constvars.DoctorDefaultProfileImages[rand.Intn(len(constvars.DoctorDefaultProfileImages))],
		FirstName:      request.FirstName,
		LastName:       request.LastName,
		Email:          request.Email,
		Password:       hashedPassword,
		Specialty:      request.Specialty,
		ClinicLocation: request.ClinicLocation,
		ContactNumber:  request.ContactNumber,
		WorkingHours:   request.WorkingHours,
		About:          request.About,
		Role:           constvars.RoleDoctor,
	}

	savedDoctor, err := uc.DoctorRepository.Create(ctx, doctor)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("doctor registered", zap.String("doctor_id", savedDoctor.ID.Hex()))
	return savedDoctor, nil
}

func (uc *doctorUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	doctor, err := uc.DoctorRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if doctor == nil || !utils.CheckPasswordHash(request.Password, doctor.Password) {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	token, err := utils.GenerateJWT(doctor.ID.Hex(), doctor.Role, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, err
	}

	sessionKey := fmt.Sprintf(constvars.RedisSessionKeyFormat, doctor.ID.Hex())
	err = uc.RedisRepository.Set(ctx, sessionKey, token, time.Duration(uc.InternalConfig.JWT.ExpTimeInHour)*time.Hour)
	if err != nil {
		return nil, err
	}

	return &responses.Login{
		Token:  token,
		UserID: doctor.ID.Hex(),
		Role:   doctor.Role,
	}, nil
}

func (uc *doctorUsecase) GetByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotExist(nil)
	}
	return doctor, nil
}

func (uc *doctorUsecase) GetAll(ctx context.Context) ([]models.Doctor, error) {
	return uc.DoctorRepository.FindAll(ctx)
}

func (uc *doctorUsecase) Update(ctx context.Context, doctorID string, request *requests.UpdateDoctor) (*models.Doctor, error) {
	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotExist(nil)
	}

	if len(request.ProfilePictureData) > 0 {
		objectName := fmt.Sprintf("doctor-%s-%s", doctorID, uuid.NewString())
		profileURL, err := uc.Storage.UploadBase64Image(ctx, request.ProfilePictureData, objectName, request.ProfilePictureExtension)
		if err != nil {
			return nil, err
		}
		doctor.Profile = profileURL
	}

	if request.FirstName != "" {
		doctor.FirstName = request.FirstName
	}
	if request.LastName != "" {
		doctor.LastName = request.LastName
	}
	if request.Specialty != "" {
		doctor.Specialty = request.Specialty
	}
	if request.ClinicLocation != "" {
		doctor.ClinicLocation = request.ClinicLocation
	}
	if request.ContactNumber != "" {
		doctor.ContactNumber = request.ContactNumber
	}
	if request.WorkingHours != "" {
		doctor.WorkingHours = request.WorkingHours
	}
	if request.About != "" {
		doctor.About = request.About
	}

	err = uc.DoctorRepository.Update(ctx, doctor)
	if err != nil {
		return nil, err
	}
	return doctor, nil
}

func (uc *doctorUsecase) Delete(ctx context.Context, doctorID string) error {
	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return err
	}
	if doctor == nil {
		return exceptions.ErrDoctorNotExist(nil)
	}
	return uc.DoctorRepository.DeleteByID(ctx, doctorID)
}

func (uc *doctorUsecase) CreateBlog(ctx context.Context, doctorID string, request *requests.CreateBlog) (*models.Blog, error) {
	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotExist(nil)
	}

	blog := &models.Blog{
		ID:        primitive.NewObjectID(),
		HeadTitle: request.HeadTitle,
		Body:      request.Body,
		Author:    request.Author,
		Image:     request.Image,
		CreatedAt: time.Now().UTC(),
	}

	err = uc.DoctorRepository.AddBlog(ctx, doctorID, blog)
	if err != nil {
		return nil, err
	}
	return blog, nil
}

func (uc *doctorUsecase) GetBlogs(ctx context.Context, doctorID string) ([]models.Blog, error) {
	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotExist(nil)
	}
	if doctor.Blogs == nil {
		return []models.Blog{}, nil
	}
	return doctor.Blogs, nil
}

func (uc *doctorUsecase) DeleteBlog(ctx context.Context, doctorID, blogID string) error {
	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return err
	}
	if doctor == nil {
		return exceptions.ErrDoctorNotExist(nil)
	}

	found := false
	for _, blog := range doctor.Blogs {
		if blog.ID.Hex() == blogID {
			found = true
			break
		}
	}
	if !found {
		return exceptions.ErrBlogNotExist(nil)
	}

	return uc.DoctorRepository.RemoveBlog(ctx, doctorID, blogID)
}
