package payment

import (
	"context"
	"fmt"
	"sync"
	"time"

	"afyacare-service/internal/app/contracts"
	"afyacare-service/internal/app/models"
	"afyacare-service/internal/pkg/constvars"
	"afyacare-service/internal/pkg/dto/requests"
	"afyacare-service/internal/pkg/dto/responses"
	"afyacare-service/internal/pkg/exceptions"
	"afyacare-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type paymentUsecase struct {
	PaymentRepository     contracts.PaymentRepository
	AppointmentRepository contracts.AppointmentRepository
	MpesaService          contracts.MpesaService
	Log                   *zap.Logger
}

var (
	paymentUsecaseInstance contracts.PaymentUsecase
	oncePaymentUsecase     sync.Once
)

func NewPaymentUsecase(paymentRepository contracts.PaymentRepository, appointmentRepository contracts.AppointmentRepository, mpesaService contracts.MpesaService, logger *zap.Logger) contracts.PaymentUsecase {
	oncePaymentUsecase.Do(func() {
		paymentUsecaseInstance = &paymentUsecase{
			PaymentRepository:     paymentRepository,
			AppointmentRepository: appointmentRepository,
			MpesaService:          mpesaService,
			Log:                   logger,
		}
	})
	return paymentUsecaseInstance
}

// InitiatePayment records a Pending payment before any gateway traffic, so a
// lost callback still leaves an auditable row behind. The gateway call uses
// the persisted payment ID as the callback correlation key.
func (u *paymentUsecase) InitiatePayment(ctx context.Context, request *requests.InitiatePayment) (*responses.InitiatePaymentResponse, error) {
	if _, err := u.AppointmentRepository.FindByID(ctx, request.AppointmentID); err != nil {
		return nil, err
	}

	msisdn, err := utils.NormalizeMSISDN(request.PhoneNumber)
	if err != nil {
		return nil, exceptions.ErrInvalidPhoneNumber(err)
	}

	payment, err := u.PaymentRepository.CreatePayment(ctx, &models.Payment{
		AppointmentID: request.AppointmentID,
		Amount:        request.Amount,
		Status:        string(models.PaymentStatusPending),
		PaymentDate:   time.Now(),
	})
	if err != nil {
		return nil, err
	}

	gateway, err := u.MpesaService.InitiateSTKPush(ctx, request.Amount.String(), msisdn, u.MpesaService.CallbackURL(payment.ID))
	if err != nil {
		// The Pending row stays behind for reconciliation.
		u.Log.Error("paymentUsecase.InitiatePayment STK push failed",
			zap.Int64(constvars.LoggingPaymentIDKey, payment.ID),
			zap.Int64(constvars.LoggingAppointmentIDKey, payment.AppointmentID),
			zap.Error(err),
		)
		return nil, err
	}

	u.Log.Info("paymentUsecase.InitiatePayment payment initiated",
		zap.Int64(constvars.LoggingPaymentIDKey, payment.ID),
		zap.Int64(constvars.LoggingAppointmentIDKey, payment.AppointmentID),
	)
	return &responses.InitiatePaymentResponse{
		Payment: payment,
		Gateway: gateway,
	}, nil
}

// HandleMpesaCallback applies the gateway verdict to the referenced payment.
// Replays, unknown payment IDs and empty callbacks are all acknowledged
// without a write; only storage failures surface as errors so the gateway
// retries them.
func (u *paymentUsecase) HandleMpesaCallback(ctx context.Context, paymentID int64, envelope *requests.MpesaCallbackEnvelope) error {
	stkCallback := envelope.Body.StkCallback
	if stkCallback == nil {
		u.Log.Warn("paymentUsecase.HandleMpesaCallback envelope carries no stkCallback",
			zap.Int64(constvars.LoggingPaymentIDKey, paymentID),
		)
		return nil
	}

	if stkCallback.ResultCode != constvars.MpesaResultCodeSuccess {
		transition, err := u.PaymentRepository.FailPayment(ctx, paymentID)
		if err != nil {
			return err
		}
		u.logTransition("payment marked failed", paymentID, stkCallback.ResultCode, transition, nil)
		return nil
	}

	receipt := stkCallback.ReceiptNumber(constvars.MpesaReceiptMetadataKey)
	transition, err := u.PaymentRepository.ConfirmPayment(ctx, paymentID, receipt)
	if err != nil {
		return err
	}
	u.logTransition("payment confirmed", paymentID, stkCallback.ResultCode, transition, receipt)
	return nil
}

func (u *paymentUsecase) logTransition(outcome string, paymentID int64, resultCode int, transition models.PaymentTransition, receipt *string) {
	fields := []zap.Field{
		zap.Int64(constvars.LoggingPaymentIDKey, paymentID),
		zap.Int(constvars.LoggingResultCodeKey, resultCode),
	}
	if receipt != nil {
		fields = append(fields, zap.String(constvars.LoggingReceiptKey, *receipt))
	}

	switch transition {
	case models.TransitionApplied:
		u.Log.Info("paymentUsecase.HandleMpesaCallback "+outcome, fields...)
	case models.TransitionAlreadyProcessed:
		u.Log.Info("paymentUsecase.HandleMpesaCallback callback already processed", fields...)
	case models.TransitionNotFound:
		u.Log.Warn("paymentUsecase.HandleMpesaCallback callback references unknown payment", fields...)
	}
}

func (u *paymentUsecase) GetAll(ctx context.Context) ([]models.Payment, error) {
	return u.PaymentRepository.FindAll(ctx)
}

func (u *paymentUsecase) GetByID(ctx context.Context, paymentID int64) (*models.Payment, error) {
	return u.PaymentRepository.FindByID(ctx, paymentID)
}

func (u *paymentUsecase) GetByAppointmentID(ctx context.Context, appointmentID int64) (*models.Payment, error) {
	return u.PaymentRepository.FindByAppointmentID(ctx, appointmentID)
}

func (u *paymentUsecase) Update(ctx context.Context, paymentID int64, request *requests.UpdatePayment) (*models.Payment, error) {
	payment, err := u.PaymentRepository.FindByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	changed := false
	if request.Amount != nil {
		payment.Amount = *request.Amount
		changed = true
	}
	if request.Status != nil {
		payment.Status = *request.Status
		changed = true
	}
	if request.TransactionID != nil {
		payment.TransactionID = request.TransactionID
		changed = true
	}
	if request.PaymentDate != nil {
		paymentDate, err := time.Parse("2006-01-02", *request.PaymentDate)
		if err != nil {
			return nil, exceptions.ErrInputValidation(err)
		}
		payment.PaymentDate = paymentDate
		changed = true
	}
	if !changed {
		return nil, exceptions.ErrNoFieldsToUpdate(fmt.Errorf("update request carries no fields"))
	}

	return u.PaymentRepository.UpdatePayment(ctx, payment)
}

func (u *paymentUsecase) Delete(ctx context.Context, paymentID int64) error {
	return u.PaymentRepository.DeletePayment(ctx, paymentID)
}
