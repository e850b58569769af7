package contracts

import (
	"context"

	"afyacare-service/internal/app/models"
	"afyacare-service/internal/pkg/dto/requests"
)

type DoctorRepository interface {
	FindAll(ctx context.Context) ([]models.Doctor, error)
	FindByID(ctx context.Context, doctorID int64) (*models.Doctor, error)
	CreateDoctor(ctx context.Context, doctor *models.Doctor) (*models.Doctor, error)
	UpdateDoctor(ctx context.Context, doctor *models.Doctor) (*models.Doctor, error)
	DeleteDoctor(ctx context.Context, doctorID int64) error
}

type DoctorUsecase interface {
	Create(ctx context.Context, request *requests.CreateDoctor) (*models.Doctor, error)
	GetAll(ctx context.Context) ([]models.Doctor, error)
	GetByID(ctx context.Context, doctorID int64) (*models.Doctor, error)
	Update(ctx context.Context, doctorID int64, request *requests.UpdateDoctor) (*models.Doctor, error)
	Delete(ctx context.Context, doctorID int64) error
}
