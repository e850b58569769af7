package payment

import (
	"context"
	"testing"
	"time"

	"afyacare-service/internal/app/models"
	"afyacare-service/internal/pkg/constvars"
	"afyacare-service/internal/pkg/dto/requests"
	"afyacare-service/internal/pkg/dto/responses"
	"afyacare-service/internal/pkg/exceptions"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockPaymentRepository struct {
	mock.Mock
}

func (m *mockPaymentRepository) FindAll(ctx context.Context) ([]models.Payment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Payment), args.Error(1)
}

func (m *mockPaymentRepository) FindByID(ctx context.Context, paymentID int64) (*models.Payment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Payment), args.Error(1)
}

func (m *mockPaymentRepository) FindByAppointmentID(ctx context.Context, appointmentID int64) (*models.Payment, error) {
	args := m.Called(ctx, appointmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Payment), args.Error(1)
}

func (m *mockPaymentRepository) CreatePayment(ctx context.Context, payment *models.Payment) (*models.Payment, error) {
	args := m.Called(ctx, payment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Payment), args.Error(1)
}

func (m *mockPaymentRepository) UpdatePayment(ctx context.Context, payment *models.Payment) (*models.Payment, error) {
	args := m.Called(ctx, payment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Payment), args.Error(1)
}

func (m *mockPaymentRepository) DeletePayment(ctx context.Context, paymentID int64) error {
	args := m.Called(ctx, paymentID)
	return args.Error(0)
}

func (m *mockPaymentRepository) ConfirmPayment(ctx context.Context, paymentID int64, transactionID *string) (models.PaymentTransition, error) {
	args := m.Called(ctx, paymentID, transactionID)
	return args.Get(0).(models.PaymentTransition), args.Error(1)
}

func (m *mockPaymentRepository) FailPayment(ctx context.Context, paymentID int64) (models.PaymentTransition, error) {
	args := m.Called(ctx, paymentID)
	return args.Get(0).(models.PaymentTransition), args.Error(1)
}

type mockAppointmentRepository struct {
	mock.Mock
}

func (m *mockAppointmentRepository) FindAll(ctx context.Context) ([]models.Appointment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *mockAppointmentRepository) FindByID(ctx context.Context, appointmentID int64) (*models.Appointment, error) {
	args := m.Called(ctx, appointmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *mockAppointmentRepository) FindByUserID(ctx context.Context, userID int64) ([]models.Appointment, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *mockAppointmentRepository) FindByDoctorID(ctx context.Context, doctorID int64) ([]models.Appointment, error) {
	args := m.Called(ctx, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *mockAppointmentRepository) FindWithDoctorByUserID(ctx context.Context, userID int64) ([]models.AppointmentWithDoctor, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AppointmentWithDoctor), args.Error(1)
}

func (m *mockAppointmentRepository) FindWithPaymentByUserID(ctx context.Context, userID int64) ([]models.AppointmentWithPayment, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AppointmentWithPayment), args.Error(1)
}

func (m *mockAppointmentRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	args := m.Called(ctx, appointment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *mockAppointmentRepository) UpdateAppointment(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	args := m.Called(ctx, appointment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *mockAppointmentRepository) DeleteAppointment(ctx context.Context, appointmentID int64) error {
	args := m.Called(ctx, appointmentID)
	return args.Error(0)
}

type mockMpesaService struct {
	mock.Mock
}

func (m *mockMpesaService) FetchAccessToken(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *mockMpesaService) GenerateCredentials(now time.Time) (string, string) {
	args := m.Called(now)
	return args.String(0), args.String(1)
}

func (m *mockMpesaService) InitiateSTKPush(ctx context.Context, amount, phoneNumber, callbackURL string) (*responses.STKPushResponse, error) {
	args := m.Called(ctx, amount, phoneNumber, callbackURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.STKPushResponse), args.Error(1)
}

func (m *mockMpesaService) CallbackURL(paymentID int64) string {
	args := m.Called(paymentID)
	return args.String(0)
}

func newTestUsecase(paymentRepo *mockPaymentRepository, appointmentRepo *mockAppointmentRepository, mpesaService *mockMpesaService) *paymentUsecase {
	return &paymentUsecase{
		PaymentRepository:     paymentRepo,
		AppointmentRepository: appointmentRepo,
		MpesaService:          mpesaService,
		Log:                   zap.NewNop(),
	}
}

func pendingAppointment(id int64) *models.Appointment {
	return &models.Appointment{
		ID:     id,
		UserID: 7,
		Status: models.AppointmentStatusPending,
	}
}

func successEnvelope(receipt string) *requests.MpesaCallbackEnvelope {
	return &requests.MpesaCallbackEnvelope{
		Body: requests.MpesaCallbackBody{
			StkCallback: &requests.StkCallback{
				MerchantRequestID: "29115-34620561-1",
				CheckoutRequestID: "ws_CO_191220191020363925",
				ResultCode:        0,
				ResultDesc:        "The service request is processed successfully.",
				CallbackMetadata: &requests.CallbackMetadata{
					Item: []requests.CallbackMetadataItem{
						{Name: "Amount", Value: 1500.0},
						{Name: constvars.MpesaReceiptMetadataKey, Value: receipt},
						{Name: "PhoneNumber", Value: 254712345678.0},
					},
				},
			},
		},
	}
}

func failureEnvelope(resultCode int) *requests.MpesaCallbackEnvelope {
	return &requests.MpesaCallbackEnvelope{
		Body: requests.MpesaCallbackBody{
			StkCallback: &requests.StkCallback{
				MerchantRequestID: "29115-34620561-1",
				CheckoutRequestID: "ws_CO_191220191020363925",
				ResultCode:        resultCode,
				ResultDesc:        "Request cancelled by user",
			},
		},
	}
}

func TestInitiatePaymentPersistsPendingBeforePush(t *testing.T) {
	paymentRepo := new(mockPaymentRepository)
	appointmentRepo := new(mockAppointmentRepository)
	mpesaService := new(mockMpesaService)
	usecase := newTestUsecase(paymentRepo, appointmentRepo, mpesaService)

	amount := decimal.NewFromInt(1500)
	appointmentRepo.On("FindByID", mock.Anything, int64(10)).Return(pendingAppointment(10), nil)
	paymentRepo.On("CreatePayment", mock.Anything, mock.MatchedBy(func(p *models.Payment) bool {
		return p.AppointmentID == 10 && p.Status == string(models.PaymentStatusPending) && p.Amount.Equal(amount)
	})).Return(&models.Payment{ID: 55, AppointmentID: 10, Amount: amount, Status: string(models.PaymentStatusPending)}, nil)
	mpesaService.On("CallbackURL", int64(55)).Return("https://example.com/api/v1/mpesa/callback?paymentID=55")
	mpesaService.On("InitiateSTKPush", mock.Anything, "1500", "254712345678", "https://example.com/api/v1/mpesa/callback?paymentID=55").
		Return(&responses.STKPushResponse{ResponseCode: "0", CheckoutRequestID: "ws_CO_1"}, nil)

	response, err := usecase.InitiatePayment(context.Background(), &requests.InitiatePayment{
		AppointmentID: 10,
		Amount:        amount,
		PhoneNumber:   "0712345678",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(55), response.Payment.ID)
	assert.Equal(t, "ws_CO_1", response.Gateway.CheckoutRequestID)
	paymentRepo.AssertExpectations(t)
	mpesaService.AssertExpectations(t)
}

func TestInitiatePaymentRejectsBadPhoneBeforeAnyWrite(t *testing.T) {
	paymentRepo := new(mockPaymentRepository)
	appointmentRepo := new(mockAppointmentRepository)
	mpesaService := new(mockMpesaService)
	usecase := newTestUsecase(paymentRepo, appointmentRepo, mpesaService)

	appointmentRepo.On("FindByID", mock.Anything, int64(10)).Return(pendingAppointment(10), nil)

	_, err := usecase.InitiatePayment(context.Background(), &requests.InitiatePayment{
		AppointmentID: 10,
		Amount:        decimal.NewFromInt(1500),
		PhoneNumber:   "0812345678",
	})
	require.Error(t, err)

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	paymentRepo.AssertNotCalled(t, "CreatePayment", mock.Anything, mock.Anything)
	mpesaService.AssertNotCalled(t, "InitiateSTKPush", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestInitiatePaymentDuplicateAppointmentConflicts(t *testing.T) {
	paymentRepo := new(mockPaymentRepository)
	appointmentRepo := new(mockAppointmentRepository)
	mpesaService := new(mockMpesaService)
	usecase := newTestUsecase(paymentRepo, appointmentRepo, mpesaService)

	appointmentRepo.On("FindByID", mock.Anything, int64(10)).Return(pendingAppointment(10), nil)
	paymentRepo.On("CreatePayment", mock.Anything, mock.Anything).
		Return(nil, exceptions.ErrDuplicatePayment(assert.AnError))

	_, err := usecase.InitiatePayment(context.Background(), &requests.InitiatePayment{
		AppointmentID: 10,
		Amount:        decimal.NewFromInt(1500),
		PhoneNumber:   "0712345678",
	})
	require.Error(t, err)

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
	mpesaService.AssertNotCalled(t, "InitiateSTKPush", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestInitiatePaymentPushFailureLeavesPendingRow(t *testing.T) {
	paymentRepo := new(mockPaymentRepository)
	appointmentRepo := new(mockAppointmentRepository)
	mpesaService := new(mockMpesaService)
	usecase := newTestUsecase(paymentRepo, appointmentRepo, mpesaService)

	amount := decimal.NewFromInt(1500)
	appointmentRepo.On("FindByID", mock.Anything, int64(10)).Return(pendingAppointment(10), nil)
	paymentRepo.On("CreatePayment", mock.Anything, mock.Anything).
		Return(&models.Payment{ID: 55, AppointmentID: 10, Amount: amount, Status: string(models.PaymentStatusPending)}, nil)
	mpesaService.On("CallbackURL", int64(55)).Return("https://example.com/cb?paymentID=55")
	mpesaService.On("InitiateSTKPush", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, exceptions.ErrMpesaPushBadStatus(500))

	_, err := usecase.InitiatePayment(context.Background(), &requests.InitiatePayment{
		AppointmentID: 10,
		Amount:        amount,
		PhoneNumber:   "0712345678",
	})
	require.Error(t, err)

	// The Pending row was written before the gateway was contacted.
	paymentRepo.AssertCalled(t, "CreatePayment", mock.Anything, mock.Anything)
}

func TestHandleMpesaCallbackConfirmsWithReceipt(t *testing.T) {
	paymentRepo := new(mockPaymentRepository)
	usecase := newTestUsecase(paymentRepo, new(mockAppointmentRepository), new(mockMpesaService))

	paymentRepo.On("ConfirmPayment", mock.Anything, int64(55), mock.MatchedBy(func(receipt *string) bool {
		return receipt != nil && *receipt == "TXN999"
	})).Return(models.TransitionApplied, nil)

	err := usecase.HandleMpesaCallback(context.Background(), 55, successEnvelope("TXN999"))
	require.NoError(t, err)
	paymentRepo.AssertExpectations(t)
	paymentRepo.AssertNotCalled(t, "FailPayment", mock.Anything, mock.Anything)
}

func TestHandleMpesaCallbackFailureMarksFailed(t *testing.T) {
	paymentRepo := new(mockPaymentRepository)
	usecase := newTestUsecase(paymentRepo, new(mockAppointmentRepository), new(mockMpesaService))

	paymentRepo.On("FailPayment", mock.Anything, int64(55)).Return(models.TransitionApplied, nil)

	err := usecase.HandleMpesaCallback(context.Background(), 55, failureEnvelope(1032))
	require.NoError(t, err)
	paymentRepo.AssertExpectations(t)
	paymentRepo.AssertNotCalled(t, "ConfirmPayment", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleMpesaCallbackReplayIsAcknowledged(t *testing.T) {
	paymentRepo := new(mockPaymentRepository)
	usecase := newTestUsecase(paymentRepo, new(mockAppointmentRepository), new(mockMpesaService))

	paymentRepo.On("ConfirmPayment", mock.Anything, int64(55), mock.Anything).
		Return(models.TransitionAlreadyProcessed, nil)

	err := usecase.HandleMpesaCallback(context.Background(), 55, successEnvelope("TXN999"))
	assert.NoError(t, err)
}

func TestHandleMpesaCallbackUnknownPaymentIsAcknowledged(t *testing.T) {
	paymentRepo := new(mockPaymentRepository)
	usecase := newTestUsecase(paymentRepo, new(mockAppointmentRepository), new(mockMpesaService))

	paymentRepo.On("ConfirmPayment", mock.Anything, int64(9999), mock.Anything).
		Return(models.TransitionNotFound, nil)

	err := usecase.HandleMpesaCallback(context.Background(), 9999, successEnvelope("TXN999"))
	assert.NoError(t, err)
}

func TestHandleMpesaCallbackEmptyBodyIsNoOp(t *testing.T) {
	paymentRepo := new(mockPaymentRepository)
	usecase := newTestUsecase(paymentRepo, new(mockAppointmentRepository), new(mockMpesaService))

	err := usecase.HandleMpesaCallback(context.Background(), 55, &requests.MpesaCallbackEnvelope{})
	assert.NoError(t, err)
	paymentRepo.AssertNotCalled(t, "ConfirmPayment", mock.Anything, mock.Anything, mock.Anything)
	paymentRepo.AssertNotCalled(t, "FailPayment", mock.Anything, mock.Anything)
}

func TestHandleMpesaCallbackStorageErrorPropagates(t *testing.T) {
	paymentRepo := new(mockPaymentRepository)
	usecase := newTestUsecase(paymentRepo, new(mockAppointmentRepository), new(mockMpesaService))

	paymentRepo.On("ConfirmPayment", mock.Anything, int64(55), mock.Anything).
		Return(models.TransitionNotFound, exceptions.ErrPostgresDBUpdateData(assert.AnError))

	err := usecase.HandleMpesaCallback(context.Background(), 55, successEnvelope("TXN999"))
	require.Error(t, err)

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusInternalServerError, customErr.StatusCode)
}

func TestHandleMpesaCallbackSuccessWithoutReceipt(t *testing.T) {
	paymentRepo := new(mockPaymentRepository)
	usecase := newTestUsecase(paymentRepo, new(mockAppointmentRepository), new(mockMpesaService))

	envelope := successEnvelope("TXN999")
	envelope.Body.StkCallback.CallbackMetadata = nil

	paymentRepo.On("ConfirmPayment", mock.Anything, int64(55), (*string)(nil)).
		Return(models.TransitionApplied, nil)

	err := usecase.HandleMpesaCallback(context.Background(), 55, envelope)
	assert.NoError(t, err)
	paymentRepo.AssertExpectations(t)
}
