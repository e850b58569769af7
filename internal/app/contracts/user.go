package contracts

import (
	"context"
	"time"

	"afyacare-service/internal/app/models"
	"afyacare-service/internal/pkg/dto/requests"
	"afyacare-service/internal/pkg/dto/responses"
)

type UserRepository interface {
	FindAll(ctx context.Context) ([]models.User, error)
	FindByID(ctx context.Context, userID int64) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) (*models.User, error)
	MarkVerified(ctx context.Context, email string) error
	UpdateVerificationCode(ctx context.Context, email, code string, expiresAt time.Time) error
	DeleteUser(ctx context.Context, userID int64) error
}

type UserUsecase interface {
	Register(ctx context.Context, request *requests.RegisterUser) (*models.User, error)
	Verify(ctx context.Context, request *requests.VerifyUser) error
	ResendVerification(ctx context.Context, request *requests.ResendVerification) error
	Login(ctx context.Context, request *requests.LoginUser) (*responses.LoginResponse, error)
	GetAll(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, userID int64) (*models.User, error)
	Update(ctx context.Context, userID int64, request *requests.UpdateUser) (*models.User, error)
	Delete(ctx context.Context, userID int64) error
}
