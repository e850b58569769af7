package contracts

import (
	"context"

	"afyacare-service/internal/app/models"
	"afyacare-service/internal/pkg/dto/requests"
	"afyacare-service/internal/pkg/dto/responses"
)

type PaymentRepository interface {
	FindAll(ctx context.Context) ([]models.Payment, error)
	FindByID(ctx context.Context, paymentID int64) (*models.Payment, error)
	FindByAppointmentID(ctx context.Context, appointmentID int64) (*models.Payment, error)
	// CreatePayment inserts a Pending payment. A payment already existing
	// for the appointment surfaces as a conflict error.
	CreatePayment(ctx context.Context, payment *models.Payment) (*models.Payment, error)
	UpdatePayment(ctx context.Context, payment *models.Payment) (*models.Payment, error)
	DeletePayment(ctx context.Context, paymentID int64) error
	// ConfirmPayment applies Pending→Paid and confirms the linked
	// appointment in one transaction.
	ConfirmPayment(ctx context.Context, paymentID int64, transactionID *string) (models.PaymentTransition, error)
	// FailPayment applies Pending→Failed.
	FailPayment(ctx context.Context, paymentID int64) (models.PaymentTransition, error)
}

type PaymentUsecase interface {
	InitiatePayment(ctx context.Context, request *requests.InitiatePayment) (*responses.InitiatePaymentResponse, error)
	HandleMpesaCallback(ctx context.Context, paymentID int64, envelope *requests.MpesaCallbackEnvelope) error
	GetAll(ctx context.Context) ([]models.Payment, error)
	GetByID(ctx context.Context, paymentID int64) (*models.Payment, error)
	GetByAppointmentID(ctx context.Context, appointmentID int64) (*models.Payment, error)
	Update(ctx context.Context, paymentID int64, request *requests.UpdatePayment) (*models.Payment, error)
	Delete(ctx context.Context, paymentID int64) error
}
