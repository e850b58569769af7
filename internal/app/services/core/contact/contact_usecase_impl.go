package contact

import (
	"context"
	"sync"

	"afyacare-service/internal/app/contracts"
	"afyacare-service/internal/app/models"
	"afyacare-service/internal/pkg/dto/requests"

	"go.uber.org/zap"
)

type contactUsecase struct {
	ContactRepository contracts.ContactRepository
	Log               *zap.Logger
}

var (
	contactUsecaseInstance contracts.ContactUsecase
	onceContactUsecase     sync.Once
)

func NewContactUsecase(contactRepository contracts.ContactRepository, logger *zap.Logger) contracts.ContactUsecase {
	onceContactUsecase.Do(func() {
		contactUsecaseInstance = &contactUsecase{
			ContactRepository: contactRepository,
			Log:               logger,
		}
	})
	return contactUsecaseInstance
}

func (u *contactUsecase) Create(ctx context.Context, request *requests.CreateContact) (*models.Contact, error) {
	return u.ContactRepository.CreateContact(ctx, &models.Contact{
		Name:    request.Name,
		Email:   request.Email,
		Phone:   request.Phone,
		Message: request.Message,
	})
}

func (u *contactUsecase) GetAll(ctx context.Context) ([]models.Contact, error) {
	return u.ContactRepository.FindAll(ctx)
}
