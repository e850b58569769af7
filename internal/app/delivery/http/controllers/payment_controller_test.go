package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"afyacare-service/internal/app/models"
	"afyacare-service/internal/pkg/constvars"
	"afyacare-service/internal/pkg/dto/requests"
	"afyacare-service/internal/pkg/dto/responses"
	"afyacare-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockPaymentUsecase struct {
	mock.Mock
}

func (m *mockPaymentUsecase) InitiatePayment(ctx context.Context, request *requests.InitiatePayment) (*responses.InitiatePaymentResponse, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.InitiatePaymentResponse), args.Error(1)
}

func (m *mockPaymentUsecase) HandleMpesaCallback(ctx context.Context, paymentID int64, envelope *requests.MpesaCallbackEnvelope) error {
	args := m.Called(ctx, paymentID, envelope)
	return args.Error(0)
}

func (m *mockPaymentUsecase) GetAll(ctx context.Context) ([]models.Payment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Payment), args.Error(1)
}

func (m *mockPaymentUsecase) GetByID(ctx context.Context, paymentID int64) (*models.Payment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Payment), args.Error(1)
}

func (m *mockPaymentUsecase) GetByAppointmentID(ctx context.Context, appointmentID int64) (*models.Payment, error) {
	args := m.Called(ctx, appointmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Payment), args.Error(1)
}

func (m *mockPaymentUsecase) Update(ctx context.Context, paymentID int64, request *requests.UpdatePayment) (*models.Payment, error) {
	args := m.Called(ctx, paymentID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Payment), args.Error(1)
}

func (m *mockPaymentUsecase) Delete(ctx context.Context, paymentID int64) error {
	args := m.Called(ctx, paymentID)
	return args.Error(0)
}

func newPaymentControllerForTest(usecase *mockPaymentUsecase) *PaymentController {
	return &PaymentController{
		PaymentUsecase: usecase,
		Log:            zap.NewNop(),
	}
}

const callbackBody = `{
	"Body": {
		"stkCallback": {
			"MerchantRequestID": "29115-34620561-1",
			"CheckoutRequestID": "ws_CO_191220191020363925",
			"ResultCode": 0,
			"ResultDesc": "The service request is processed successfully.",
			"CallbackMetadata": {
				"Item": [
					{"Name": "Amount", "Value": 1500.00},
					{"Name": "MpesaReceiptNumber", "Value": "NLJ7RT61SV"},
					{"Name": "PhoneNumber", "Value": 254712345678}
				]
			}
		}
	}
}`

func TestMpesaCallbackAppliesVerdict(t *testing.T) {
	usecase := new(mockPaymentUsecase)
	controller := newPaymentControllerForTest(usecase)

	usecase.On("HandleMpesaCallback", mock.Anything, int64(55), mock.MatchedBy(func(envelope *requests.MpesaCallbackEnvelope) bool {
		stk := envelope.Body.StkCallback
		return stk != nil && stk.ResultCode == 0 && *stk.ReceiptNumber(constvars.MpesaReceiptMetadataKey) == "NLJ7RT61SV"
	})).Return(nil)

	request := httptest.NewRequest(http.MethodPost, "/api/v1/mpesa/callback?paymentID=55", strings.NewReader(callbackBody))
	recorder := httptest.NewRecorder()

	controller.MpesaCallback(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var response responses.ResponseDTO
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.Equal(t, constvars.CallbackProcessed, response.Message)
	usecase.AssertExpectations(t)
}

func TestMpesaCallbackRejectsNonNumericPaymentID(t *testing.T) {
	usecase := new(mockPaymentUsecase)
	controller := newPaymentControllerForTest(usecase)

	request := httptest.NewRequest(http.MethodPost, "/api/v1/mpesa/callback?paymentID=abc", strings.NewReader(callbackBody))
	recorder := httptest.NewRecorder()

	controller.MpesaCallback(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	usecase.AssertNotCalled(t, "HandleMpesaCallback", mock.Anything, mock.Anything, mock.Anything)
}

func TestMpesaCallbackRejectsMissingPaymentID(t *testing.T) {
	usecase := new(mockPaymentUsecase)
	controller := newPaymentControllerForTest(usecase)

	request := httptest.NewRequest(http.MethodPost, "/api/v1/mpesa/callback", strings.NewReader(callbackBody))
	recorder := httptest.NewRecorder()

	controller.MpesaCallback(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	usecase.AssertNotCalled(t, "HandleMpesaCallback", mock.Anything, mock.Anything, mock.Anything)
}

func TestMpesaCallbackRejectsMalformedEnvelope(t *testing.T) {
	usecase := new(mockPaymentUsecase)
	controller := newPaymentControllerForTest(usecase)

	request := httptest.NewRequest(http.MethodPost, "/api/v1/mpesa/callback?paymentID=55", strings.NewReader("{not json"))
	recorder := httptest.NewRecorder()

	controller.MpesaCallback(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	usecase.AssertNotCalled(t, "HandleMpesaCallback", mock.Anything, mock.Anything, mock.Anything)
}

func TestMpesaCallbackStorageErrorReturns500(t *testing.T) {
	usecase := new(mockPaymentUsecase)
	controller := newPaymentControllerForTest(usecase)

	usecase.On("HandleMpesaCallback", mock.Anything, int64(55), mock.Anything).
		Return(exceptions.ErrPostgresDBUpdateData(assert.AnError))

	request := httptest.NewRequest(http.MethodPost, "/api/v1/mpesa/callback?paymentID=55", strings.NewReader(callbackBody))
	recorder := httptest.NewRecorder()

	controller.MpesaCallback(recorder, request)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}

func TestInitiateRejectsInvalidBody(t *testing.T) {
	usecase := new(mockPaymentUsecase)
	controller := newPaymentControllerForTest(usecase)

	request := httptest.NewRequest(http.MethodPost, "/api/v1/payments", strings.NewReader(`{"appointment_id": 0}`))
	recorder := httptest.NewRecorder()

	controller.Initiate(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	usecase.AssertNotCalled(t, "InitiatePayment", mock.Anything, mock.Anything)
}
