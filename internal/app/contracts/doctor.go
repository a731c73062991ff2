package contracts

import (
	"context"

	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/dto/responses"
)

type DoctorUsecase interface {
	Register(ctx context.Context, request *requests.RegisterDoctor) (*models.Doctor, error)
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
	GetByID(ctx context.Context, doctorID string) (*models.Doctor, error)
	GetAll(ctx context.Context) ([]models.Doctor, error)
	Update(ctx context.Context, doctorID string, request *requests.UpdateDoctor) (*models.Doctor, error)
	Delete(ctx context.Context, doctorID string) error

	CreateBlog(ctx context.Context, doctorID string, request *requests.CreateBlog) (*models.Blog, error)
	GetBlogs(ctx context.Context, doctorID string) ([]models.Blog, error)
	DeleteBlog(ctx context.Context, doctorID, blogID string) error
}

type DoctorRepository interface {
	Create(ctx context.Context, doctor *models.Doctor) (*models.Doctor, error)
	FindByEmail(ctx context.Context, email string) (*models.Doctor, error)
	FindByID(ctx context.Context, doctorID string) (*models.Doctor, error)
	FindAll(ctx context.Context) ([]models.Doctor, error)
	Update(ctx context.Context, doctor *models.Doctor) error
	DeleteByID(ctx context.Context, doctorID string) error

	AddBlog(ctx context.Context, doctorID string, blog *models.Blog) error
	RemoveBlog(ctx context.Context, doctorID, blogID string) error
}
