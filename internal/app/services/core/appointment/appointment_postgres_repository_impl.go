package appointment

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"afyacare-service/internal/app/contracts"
	"afyacare-service/internal/app/models"
	"afyacare-service/internal/pkg/constvars"
	"afyacare-service/internal/pkg/exceptions"
	"afyacare-service/internal/pkg/queries"
)

type appointmentPostgresRepository struct {
	DB *sql.DB
}

func NewAppointmentPostgresRepository(db *sql.DB) contracts.AppointmentRepository {
	return &appointmentPostgresRepository{DB: db}
}

func scanAppointment(row interface{ Scan(dest ...any) error }) (*models.Appointment, error) {
	var appointment models.Appointment
	err := row.Scan(
		&appointment.ID,
		&appointment.UserID,
		&appointment.DoctorID,
		&appointment.Date,
		&appointment.TimeSlot,
		&appointment.TotalAmount,
		&appointment.Status,
		&appointment.CreatedAt,
		&appointment.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentPostgresRepository) FindAll(ctx context.Context) ([]models.Appointment, error) {
	return r.queryAppointments(ctx, queries.GetAllAppointments)
}

func (r *appointmentPostgresRepository) FindByID(ctx context.Context, appointmentID int64) (*models.Appointment, error) {
	appointment, err := scanAppointment(r.DB.QueryRowContext(ctx, queries.GetAppointmentByID, appointmentID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, exceptions.ErrResourceNotFound(err, constvars.ResourceAppointment)
		}
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return appointment, nil
}

func (r *appointmentPostgresRepository) FindByUserID(ctx context.Context, userID int64) ([]models.Appointment, error) {
	return r.queryAppointments(ctx, queries.GetAppointmentsByUserID, userID)
}

func (r *appointmentPostgresRepository) FindByDoctorID(ctx context.Context, doctorID int64) ([]models.Appointment, error) {
	return r.queryAppointments(ctx, queries.GetAppointmentsByDoctorID, doctorID)
}

func (r *appointmentPostgresRepository) FindWithDoctorByUserID(ctx context.Context, userID int64) ([]models.AppointmentWithDoctor, error) {
	rows, err := r.DB.QueryContext(ctx, queries.GetAppointmentsWithDoctorByUserID, userID)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	results := make([]models.AppointmentWithDoctor, 0)
	for rows.Next() {
		var (
			item          models.AppointmentWithDoctor
			contactPhone  sql.NullString
			availableDays sql.NullString
		)
		err := rows.Scan(
			&item.ID,
			&item.UserID,
			&item.DoctorID,
			&item.Date,
			&item.TimeSlot,
			&item.TotalAmount,
			&item.Status,
			&item.CreatedAt,
			&item.UpdatedAt,
			&item.Doctor.ID,
			&item.Doctor.FirstName,
			&item.Doctor.LastName,
			&item.Doctor.Specialization,
			&contactPhone,
			&availableDays,
			&item.Doctor.CreatedAt,
			&item.Doctor.UpdatedAt,
		)
		if err != nil {
			return nil, exceptions.ErrPostgresDBIterateDataset(err)
		}
		item.Doctor.ContactPhone = contactPhone.String
		item.Doctor.AvailableDays = availableDays.String
		results = append(results, item)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}
	return results, nil
}

func (r *appointmentPostgresRepository) FindWithPaymentByUserID(ctx context.Context, userID int64) ([]models.AppointmentWithPayment, error) {
	rows, err := r.DB.QueryContext(ctx, queries.GetAppointmentsWithPaymentByUserID, userID)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	results := make([]models.AppointmentWithPayment, 0)
	for rows.Next() {
		var (
			item           models.AppointmentWithPayment
			paymentID      sql.NullInt64
			appointmentID  sql.NullInt64
			amount         sql.NullString
			paymentStatus  sql.NullString
			transactionID  sql.NullString
			paymentDate    sql.NullTime
			paymentCreated sql.NullTime
			paymentUpdated sql.NullTime
		)
		err := rows.Scan(
			&item.ID,
			&item.UserID,
			&item.DoctorID,
			&item.Date,
			&item.TimeSlot,
			&item.TotalAmount,
			&item.Status,
			&item.CreatedAt,
			&item.UpdatedAt,
			&paymentID,
			&appointmentID,
			&amount,
			&paymentStatus,
			&transactionID,
			&paymentDate,
			&paymentCreated,
			&paymentUpdated,
		)
		if err != nil {
			return nil, exceptions.ErrPostgresDBIterateDataset(err)
		}
		if paymentID.Valid {
			payment := models.Payment{
				ID:            paymentID.Int64,
				AppointmentID: appointmentID.Int64,
				Status:        paymentStatus.String,
				PaymentDate:   paymentDate.Time,
				CreatedAt:     paymentCreated.Time,
				UpdatedAt:     paymentUpdated.Time,
			}
			if err := payment.Amount.Scan(amount.String); err != nil {
				return nil, exceptions.ErrPostgresDBIterateDataset(err)
			}
			if transactionID.Valid {
				txnID := transactionID.String
				payment.TransactionID = &txnID
			}
			item.Payment = &payment
		}
		results = append(results, item)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}
	return results, nil
}

func (r *appointmentPostgresRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	created, err := scanAppointment(r.DB.QueryRowContext(ctx, queries.InsertAppointment,
		appointment.UserID,
		appointment.DoctorID,
		appointment.Date,
		appointment.TimeSlot,
		appointment.TotalAmount,
	))
	if err != nil {
		return nil, exceptions.ErrPostgresDBInsertData(err)
	}
	return created, nil
}

func (r *appointmentPostgresRepository) UpdateAppointment(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	updated, err := scanAppointment(r.DB.QueryRowContext(ctx, queries.UpdateAppointment,
		appointment.Date,
		appointment.TimeSlot,
		appointment.TotalAmount,
		appointment.Status,
		appointment.ID,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, exceptions.ErrResourceNotFound(err, constvars.ResourceAppointment)
		}
		return nil, exceptions.ErrPostgresDBUpdateData(err)
	}
	return updated, nil
}

func (r *appointmentPostgresRepository) DeleteAppointment(ctx context.Context, appointmentID int64) error {
	result, err := r.DB.ExecContext(ctx, queries.DeleteAppointment, appointmentID)
	if err != nil {
		return exceptions.ErrPostgresDBDeleteData(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return exceptions.ErrPostgresDBDeleteData(err)
	}
	if affected == 0 {
		return exceptions.ErrResourceNotFound(sql.ErrNoRows, constvars.ResourceAppointment)
	}
	return nil
}

func (r *appointmentPostgresRepository) queryAppointments(ctx context.Context, query string, args ...any) ([]models.Appointment, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	appointments := make([]models.Appointment, 0)
	for rows.Next() {
		appointment, err := scanAppointment(rows)
		if err != nil {
			return nil, exceptions.ErrPostgresDBIterateDataset(err)
		}
		appointments = append(appointments, *appointment)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}
	return appointments, nil
}

// parseDate is shared by the usecase for the date-only appointment column.
func parseDate(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}
