package contracts

import (
	"context"

	"afyacare-service/internal/app/models"
	"afyacare-service/internal/pkg/dto/requests"
)

type ComplaintRepository interface {
	FindAll(ctx context.Context) ([]models.Complaint, error)
	FindByID(ctx context.Context, complaintID int64) (*models.Complaint, error)
	FindByUserID(ctx context.Context, userID int64) ([]models.Complaint, error)
	CreateComplaint(ctx context.Context, complaint *models.Complaint) (*models.Complaint, error)
	UpdateComplaint(ctx context.Context, complaint *models.Complaint) (*models.Complaint, error)
	DeleteComplaint(ctx context.Context, complaintID int64) error
}

type ComplaintUsecase interface {
	Create(ctx context.Context, request *requests.CreateComplaint) (*models.Complaint, error)
	GetAll(ctx context.Context) ([]models.Complaint, error)
	GetByID(ctx context.Context, complaintID int64) (*models.Complaint, error)
	GetByUserID(ctx context.Context, userID int64) ([]models.Complaint, error)
	Update(ctx context.Context, complaintID int64, request *requests.UpdateComplaint) (*models.Complaint, error)
	Delete(ctx context.Context, complaintID int64) error
}
