package user

import (
	"context"
	"fmt"
	"sync"
	"time"

	"afyacare-service/internal/app/config"
	"afyacare-service/internal/app/contracts"
	"afyacare-service/internal/app/models"
	"afyacare-service/internal/pkg/constvars"
	"afyacare-service/internal/pkg/dto/requests"
	"afyacare-service/internal/pkg/dto/responses"
	"afyacare-service/internal/pkg/exceptions"
	"afyacare-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type userUsecase struct {
	UserRepository contracts.UserRepository
	MailerService  contracts.MailerService
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

var (
	userUsecaseInstance contracts.UserUsecase
	onceUserUsecase     sync.Once
)

func NewUserUsecase(userRepository contracts.UserRepository, mailerService contracts.MailerService, internalConfig *config.InternalConfig, logger *zap.Logger) contracts.UserUsecase {
	onceUserUsecase.Do(func() {
		userUsecaseInstance = &userUsecase{
			UserRepository: userRepository,
			MailerService:  mailerService,
			InternalConfig: internalConfig,
			Log:            logger,
		}
	})
	return userUsecaseInstance
}

func (u *userUsecase) Register(ctx context.Context, request *requests.RegisterUser) (*models.User, error) {
	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	code, err := utils.GenerateOTP(u.InternalConfig.Mailer.VerificationCodeLength)
	if err != nil {
		return nil, exceptions.ErrGenerateVerificationCode(err)
	}
	expiresAt := time.Now().Add(time.Duration(u.InternalConfig.Mailer.VerificationCodeExpTimeInMinute) * time.Minute)

	role := request.Role
	if role == "" {
		role = constvars.RoleUser
	}

	contactPhone := request.ContactPhone
	if contactPhone != "" {
		normalized, err := utils.NormalizeMSISDN(contactPhone)
		if err != nil {
			return nil, exceptions.ErrInvalidPhoneNumber(err)
		}
		contactPhone = normalized
	}

	created, err := u.UserRepository.CreateUser(ctx, &models.User{
		FirstName:                 request.FirstName,
		LastName:                  request.LastName,
		Email:                     request.Email,
		Password:                  hashedPassword,
		ContactPhone:              contactPhone,
		Address:                   request.Address,
		Role:                      role,
		VerificationCode:          code,
		VerificationCodeExpiresAt: &expiresAt,
	})
	if err != nil {
		return nil, err
	}

	if err := u.sendVerificationEmail(ctx, created.Email, created.FirstName, code); err != nil {
		// Registration already succeeded; the code can be re-sent later.
		u.Log.Error("userUsecase.Register failed to queue verification email",
			zap.Int64(constvars.LoggingUserIDKey, created.ID),
			zap.Error(err),
		)
	}
	return created, nil
}

func (u *userUsecase) Verify(ctx context.Context, request *requests.VerifyUser) error {
	user, err := u.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return err
	}
	if user.IsVerified {
		return nil
	}
	if user.VerificationCode == "" || user.VerificationCode != request.VerificationCode {
		return exceptions.ErrVerificationCodeInvalid(fmt.Errorf("verification code mismatch"))
	}
	if user.VerificationCodeExpiresAt == nil || time.Now().After(*user.VerificationCodeExpiresAt) {
		return exceptions.ErrVerificationCodeInvalid(fmt.Errorf("verification code expired"))
	}
	return u.UserRepository.MarkVerified(ctx, request.Email)
}

func (u *userUsecase) ResendVerification(ctx context.Context, request *requests.ResendVerification) error {
	user, err := u.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return err
	}
	if user.IsVerified {
		return nil
	}

	code, err := utils.GenerateOTP(u.InternalConfig.Mailer.VerificationCodeLength)
	if err != nil {
		return exceptions.ErrGenerateVerificationCode(err)
	}
	expiresAt := time.Now().Add(time.Duration(u.InternalConfig.Mailer.VerificationCodeExpTimeInMinute) * time.Minute)

	if err := u.UserRepository.UpdateVerificationCode(ctx, user.Email, code, expiresAt); err != nil {
		return err
	}
	return u.sendVerificationEmail(ctx, user.Email, user.FirstName, code)
}

func (u *userUsecase) Login(ctx context.Context, request *requests.LoginUser) (*responses.LoginResponse, error) {
	user, err := u.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, exceptions.ErrInvalidEmailOrPassword(err)
	}
	if err := utils.ComparePassword(user.Password, request.Password); err != nil {
		return nil, exceptions.ErrInvalidEmailOrPassword(err)
	}
	if !user.IsVerified {
		return nil, exceptions.ErrAccountNotVerified(fmt.Errorf("account %s is not verified", user.Email))
	}

	token, err := utils.GenerateAuthJWT(user.ID, user.Email, user.Role, u.InternalConfig.JWT.Secret, u.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, exceptions.ErrTokenGenerate(err)
	}

	u.Log.Info("userUsecase.Login user logged in",
		zap.Int64(constvars.LoggingUserIDKey, user.ID),
	)
	return &responses.LoginResponse{
		Token:     token,
		UserID:    user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Role:      user.Role,
	}, nil
}

func (u *userUsecase) GetAll(ctx context.Context) ([]models.User, error) {
	return u.UserRepository.FindAll(ctx)
}

func (u *userUsecase) GetByID(ctx context.Context, userID int64) (*models.User, error) {
	return u.UserRepository.FindByID(ctx, userID)
}

func (u *userUsecase) Update(ctx context.Context, userID int64, request *requests.UpdateUser) (*models.User, error) {
	user, err := u.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	changed := false
	if request.FirstName != nil {
		user.FirstName = *request.FirstName
		changed = true
	}
	if request.LastName != nil {
		user.LastName = *request.LastName
		changed = true
	}
	if request.ContactPhone != nil {
		normalized, err := utils.NormalizeMSISDN(*request.ContactPhone)
		if err != nil {
			return nil, exceptions.ErrInvalidPhoneNumber(err)
		}
		user.ContactPhone = normalized
		changed = true
	}
	if request.Address != nil {
		user.Address = *request.Address
		changed = true
	}
	if request.Role != nil {
		user.Role = *request.Role
		changed = true
	}
	if request.ImageURL != nil {
		user.ImageURL = *request.ImageURL
		changed = true
	}
	if !changed {
		return nil, exceptions.ErrNoFieldsToUpdate(fmt.Errorf("update request carries no fields"))
	}

	return u.UserRepository.UpdateUser(ctx, user)
}

func (u *userUsecase) Delete(ctx context.Context, userID int64) error {
	return u.UserRepository.DeleteUser(ctx, userID)
}

func (u *userUsecase) sendVerificationEmail(ctx context.Context, email, firstName, code string) error {
	return u.MailerService.SendEmail(ctx, &requests.EmailPayload{
		To:      email,
		Subject: constvars.EmailVerificationSubject,
		Body:    fmt.Sprintf(constvars.EmailVerificationBody, firstName, code, u.InternalConfig.Mailer.VerificationCodeExpTimeInMinute),
	})
}
