package payment

import (
	"context"
	"database/sql"
	"errors"

	"afyacare-service/internal/app/contracts"
	"afyacare-service/internal/app/models"
	"afyacare-service/internal/pkg/constvars"
	"afyacare-service/internal/pkg/exceptions"
	"afyacare-service/internal/pkg/queries"

	"github.com/lib/pq"
)

type paymentPostgresRepository struct {
	DB *sql.DB
}

func NewPaymentPostgresRepository(db *sql.DB) contracts.PaymentRepository {
	return &paymentPostgresRepository{DB: db}
}

func scanPayment(row interface{ Scan(dest ...any) error }) (*models.Payment, error) {
	var (
		payment       models.Payment
		transactionID sql.NullString
	)
	err := row.Scan(
		&payment.ID,
		&payment.AppointmentID,
		&payment.Amount,
		&payment.Status,
		&transactionID,
		&payment.PaymentDate,
		&payment.CreatedAt,
		&payment.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if transactionID.Valid {
		txnID := transactionID.String
		payment.TransactionID = &txnID
	}
	return &payment, nil
}

func (r *paymentPostgresRepository) FindAll(ctx context.Context) ([]models.Payment, error) {
	rows, err := r.DB.QueryContext(ctx, queries.GetAllPayments)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	payments := make([]models.Payment, 0)
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, exceptions.ErrPostgresDBIterateDataset(err)
		}
		payments = append(payments, *payment)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}
	return payments, nil
}

func (r *paymentPostgresRepository) FindByID(ctx context.Context, paymentID int64) (*models.Payment, error) {
	payment, err := scanPayment(r.DB.QueryRowContext(ctx, queries.GetPaymentByID, paymentID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, exceptions.ErrPaymentNotFound(err)
		}
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return payment, nil
}

func (r *paymentPostgresRepository) FindByAppointmentID(ctx context.Context, appointmentID int64) (*models.Payment, error) {
	payment, err := scanPayment(r.DB.QueryRowContext(ctx, queries.GetPaymentByAppointmentID, appointmentID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, exceptions.ErrPaymentNotFound(err)
		}
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return payment, nil
}

func (r *paymentPostgresRepository) CreatePayment(ctx context.Context, payment *models.Payment) (*models.Payment, error) {
	created, err := scanPayment(r.DB.QueryRowContext(ctx, queries.InsertPayment,
		payment.AppointmentID,
		payment.Amount,
		payment.Status,
		payment.PaymentDate,
	))
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constvars.PostgresUniqueViolationCode {
			return nil, exceptions.ErrDuplicatePayment(err)
		}
		return nil, exceptions.ErrPostgresDBInsertData(err)
	}
	return created, nil
}

func (r *paymentPostgresRepository) UpdatePayment(ctx context.Context, payment *models.Payment) (*models.Payment, error) {
	var transactionID sql.NullString
	if payment.TransactionID != nil {
		transactionID = sql.NullString{String: *payment.TransactionID, Valid: true}
	}
	updated, err := scanPayment(r.DB.QueryRowContext(ctx, queries.UpdatePayment,
		payment.Amount,
		payment.Status,
		transactionID,
		payment.PaymentDate,
		payment.ID,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, exceptions.ErrPaymentNotFound(err)
		}
		return nil, exceptions.ErrPostgresDBUpdateData(err)
	}
	return updated, nil
}

func (r *paymentPostgresRepository) DeletePayment(ctx context.Context, paymentID int64) error {
	result, err := r.DB.ExecContext(ctx, queries.DeletePayment, paymentID)
	if err != nil {
		return exceptions.ErrPostgresDBDeleteData(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return exceptions.ErrPostgresDBDeleteData(err)
	}
	if affected == 0 {
		return exceptions.ErrPaymentNotFound(sql.ErrNoRows)
	}
	return nil
}

// ConfirmPayment moves a Pending payment to Paid and confirms the linked
// appointment atomically. The conditional update is what makes a replayed
// callback observable: zero rows means the payment was already terminal or
// never existed, and the row-existence probe tells the two apart.
func (r *paymentPostgresRepository) ConfirmPayment(ctx context.Context, paymentID int64, transactionID *string) (models.PaymentTransition, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.TransitionNotFound, exceptions.ErrPostgresDBBeginTx(err)
	}
	defer tx.Rollback()

	var txnID sql.NullString
	if transactionID != nil {
		txnID = sql.NullString{String: *transactionID, Valid: true}
	}

	var appointmentID int64
	err = tx.QueryRowContext(ctx, queries.ConfirmPendingPayment, paymentID, txnID).Scan(&appointmentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return r.classifyMissedTransition(ctx, paymentID)
		}
		return models.TransitionNotFound, exceptions.ErrPostgresDBUpdateData(err)
	}

	if _, err := tx.ExecContext(ctx, queries.ConfirmAppointment, appointmentID); err != nil {
		return models.TransitionNotFound, exceptions.ErrPostgresDBUpdateData(err)
	}

	if err := tx.Commit(); err != nil {
		return models.TransitionNotFound, exceptions.ErrPostgresDBCommitTx(err)
	}
	return models.TransitionApplied, nil
}

func (r *paymentPostgresRepository) FailPayment(ctx context.Context, paymentID int64) (models.PaymentTransition, error) {
	var appointmentID int64
	err := r.DB.QueryRowContext(ctx, queries.FailPendingPayment, paymentID).Scan(&appointmentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return r.classifyMissedTransition(ctx, paymentID)
		}
		return models.TransitionNotFound, exceptions.ErrPostgresDBUpdateData(err)
	}
	return models.TransitionApplied, nil
}

func (r *paymentPostgresRepository) classifyMissedTransition(ctx context.Context, paymentID int64) (models.PaymentTransition, error) {
	var exists bool
	if err := r.DB.QueryRowContext(ctx, queries.PaymentExists, paymentID).Scan(&exists); err != nil {
		return models.TransitionNotFound, exceptions.ErrPostgresDBFindData(err)
	}
	if exists {
		return models.TransitionAlreadyProcessed, nil
	}
	return models.TransitionNotFound, nil
}
