package contracts

import (
	"context"

	"afyacare-service/internal/app/models"
	"afyacare-service/internal/pkg/dto/requests"
)

type ContactRepository interface {
	FindAll(ctx context.Context) ([]models.Contact, error)
	CreateContact(ctx context.Context, contact *models.Contact) (*models.Contact, error)
}

type ContactUsecase interface {
	Create(ctx context.Context, request *requests.CreateContact) (*models.Contact, error)
	GetAll(ctx context.Context) ([]models.Contact, error)
}
