package user

import (
	"context"
	"testing"
	"time"

	"afyacare-service/internal/app/config"
	"afyacare-service/internal/app/models"
	"afyacare-service/internal/pkg/constvars"
	"afyacare-service/internal/pkg/dto/requests"
	"afyacare-service/internal/pkg/exceptions"
	"afyacare-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *mockUserRepository) FindByID(ctx context.Context, userID int64) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepository) UpdateUser(ctx context.Context, user *models.User) (*models.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepository) MarkVerified(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func (m *mockUserRepository) UpdateVerificationCode(ctx context.Context, email, code string, expiresAt time.Time) error {
	args := m.Called(ctx, email, code, expiresAt)
	return args.Error(0)
}

func (m *mockUserRepository) DeleteUser(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type mockMailerService struct {
	mock.Mock
}

func (m *mockMailerService) SendEmail(ctx context.Context, request *requests.EmailPayload) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *mockMailerService) ValidateEmail(email string) bool {
	args := m.Called(email)
	return args.Bool(0)
}

func testInternalConfig() *config.InternalConfig {
	return &config.InternalConfig{
		JWT: config.JWT{Secret: "test-secret", ExpTimeInHour: 1},
		Mailer: config.Mailer{
			VerificationCodeLength:          6,
			VerificationCodeExpTimeInMinute: 15,
		},
	}
}

func newUsecaseForTest(userRepo *mockUserRepository, mailer *mockMailerService) *userUsecase {
	return &userUsecase{
		UserRepository: userRepo,
		MailerService:  mailer,
		InternalConfig: testInternalConfig(),
		Log:            zap.NewNop(),
	}
}

func verifiedUser(t *testing.T, email, password string) *models.User {
	t.Helper()
	hashed, err := utils.HashPassword(password)
	require.NoError(t, err)
	return &models.User{
		ID:         7,
		FirstName:  "Jane",
		LastName:   "Wanjiku",
		Email:      email,
		Password:   hashed,
		Role:       constvars.RoleUser,
		IsVerified: true,
	}
}

func TestRegisterHashesPasswordAndQueuesEmail(t *testing.T) {
	userRepo := new(mockUserRepository)
	mailer := new(mockMailerService)
	usecase := newUsecaseForTest(userRepo, mailer)

	userRepo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.Email == "jane@example.com" &&
			u.Password != "Str0ng!Pass" &&
			u.Role == constvars.RoleUser &&
			len(u.VerificationCode) == 6
	})).Return(&models.User{ID: 7, Email: "jane@example.com", FirstName: "Jane"}, nil)
	mailer.On("SendEmail", mock.Anything, mock.MatchedBy(func(payload *requests.EmailPayload) bool {
		return payload.To == "jane@example.com" && payload.Subject == constvars.EmailVerificationSubject
	})).Return(nil)

	created, err := usecase.Register(context.Background(), &requests.RegisterUser{
		FirstName: "Jane",
		LastName:  "Wanjiku",
		Email:     "jane@example.com",
		Password:  "Str0ng!Pass",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), created.ID)
	userRepo.AssertExpectations(t)
	mailer.AssertExpectations(t)
}

func TestLoginSuccess(t *testing.T) {
	userRepo := new(mockUserRepository)
	usecase := newUsecaseForTest(userRepo, new(mockMailerService))

	userRepo.On("FindByEmail", mock.Anything, "jane@example.com").
		Return(verifiedUser(t, "jane@example.com", "Str0ng!Pass"), nil)

	response, err := usecase.Login(context.Background(), &requests.LoginUser{
		Email:    "jane@example.com",
		Password: "Str0ng!Pass",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, response.Token)
	assert.Equal(t, int64(7), response.UserID)

	claims, err := utils.ParseAuthJWT(response.Token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, constvars.RoleUser, claims.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	userRepo := new(mockUserRepository)
	usecase := newUsecaseForTest(userRepo, new(mockMailerService))

	userRepo.On("FindByEmail", mock.Anything, "jane@example.com").
		Return(verifiedUser(t, "jane@example.com", "Str0ng!Pass"), nil)

	_, err := usecase.Login(context.Background(), &requests.LoginUser{
		Email:    "jane@example.com",
		Password: "wrong",
	})
	require.Error(t, err)

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
}

func TestLoginUnverifiedAccount(t *testing.T) {
	userRepo := new(mockUserRepository)
	usecase := newUsecaseForTest(userRepo, new(mockMailerService))

	user := verifiedUser(t, "jane@example.com", "Str0ng!Pass")
	user.IsVerified = false
	userRepo.On("FindByEmail", mock.Anything, "jane@example.com").Return(user, nil)

	_, err := usecase.Login(context.Background(), &requests.LoginUser{
		Email:    "jane@example.com",
		Password: "Str0ng!Pass",
	})
	require.Error(t, err)

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
}

func TestVerifyMatchingCode(t *testing.T) {
	userRepo := new(mockUserRepository)
	usecase := newUsecaseForTest(userRepo, new(mockMailerService))

	expiresAt := time.Now().Add(10 * time.Minute)
	userRepo.On("FindByEmail", mock.Anything, "jane@example.com").Return(&models.User{
		Email:                     "jane@example.com",
		VerificationCode:          "123456",
		VerificationCodeExpiresAt: &expiresAt,
	}, nil)
	userRepo.On("MarkVerified", mock.Anything, "jane@example.com").Return(nil)

	err := usecase.Verify(context.Background(), &requests.VerifyUser{
		Email:            "jane@example.com",
		VerificationCode: "123456",
	})
	assert.NoError(t, err)
	userRepo.AssertExpectations(t)
}

func TestVerifyExpiredCode(t *testing.T) {
	userRepo := new(mockUserRepository)
	usecase := newUsecaseForTest(userRepo, new(mockMailerService))

	expiresAt := time.Now().Add(-1 * time.Minute)
	userRepo.On("FindByEmail", mock.Anything, "jane@example.com").Return(&models.User{
		Email:                     "jane@example.com",
		VerificationCode:          "123456",
		VerificationCodeExpiresAt: &expiresAt,
	}, nil)

	err := usecase.Verify(context.Background(), &requests.VerifyUser{
		Email:            "jane@example.com",
		VerificationCode: "123456",
	})
	require.Error(t, err)
	userRepo.AssertNotCalled(t, "MarkVerified", mock.Anything, mock.Anything)
}

func TestVerifyWrongCode(t *testing.T) {
	userRepo := new(mockUserRepository)
	usecase := newUsecaseForTest(userRepo, new(mockMailerService))

	expiresAt := time.Now().Add(10 * time.Minute)
	userRepo.On("FindByEmail", mock.Anything, "jane@example.com").Return(&models.User{
		Email:                     "jane@example.com",
		VerificationCode:          "123456",
		VerificationCodeExpiresAt: &expiresAt,
	}, nil)

	err := usecase.Verify(context.Background(), &requests.VerifyUser{
		Email:            "jane@example.com",
		VerificationCode: "654321",
	})
	require.Error(t, err)
	userRepo.AssertNotCalled(t, "MarkVerified", mock.Anything, mock.Anything)
}
