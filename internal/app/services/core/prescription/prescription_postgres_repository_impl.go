package prescription

import (
	"context"
	"database/sql"
	"errors"

	"afyacare-service/internal/app/contracts"
	"afyacare-service/internal/app/models"
	"afyacare-service/internal/pkg/constvars"
	"afyacare-service/internal/pkg/exceptions"
	"afyacare-service/internal/pkg/queries"
)

type prescriptionPostgresRepository struct {
	DB *sql.DB
}

func NewPrescriptionPostgresRepository(db *sql.DB) contracts.PrescriptionRepository {
	return &prescriptionPostgresRepository{DB: db}
}

func scanPrescription(row interface{ Scan(dest ...any) error }) (*models.Prescription, error) {
	var (
		prescription models.Prescription
		notes        sql.NullString
	)
	err := row.Scan(
		&prescription.ID,
		&prescription.AppointmentID,
		&prescription.DoctorID,
		&prescription.UserID,
		&notes,
		&prescription.CreatedAt,
		&prescription.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	prescription.Notes = notes.String
	return &prescription, nil
}

func (r *prescriptionPostgresRepository) FindAll(ctx context.Context) ([]models.Prescription, error) {
	return r.queryPrescriptions(ctx, queries.GetAllPrescriptions)
}

func (r *prescriptionPostgresRepository) FindByID(ctx context.Context, prescriptionID int64) (*models.Prescription, error) {
	prescription, err := scanPrescription(r.DB.QueryRowContext(ctx, queries.GetPrescriptionByID, prescriptionID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, exceptions.ErrResourceNotFound(err, constvars.ResourcePrescription)
		}
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return prescription, nil
}

func (r *prescriptionPostgresRepository) FindByAppointmentID(ctx context.Context, appointmentID int64) ([]models.Prescription, error) {
	return r.queryPrescriptions(ctx, queries.GetPrescriptionsByAppointmentID, appointmentID)
}

func (r *prescriptionPostgresRepository) FindByUserID(ctx context.Context, userID int64) ([]models.Prescription, error) {
	return r.queryPrescriptions(ctx, queries.GetPrescriptionsByUserID, userID)
}

func (r *prescriptionPostgresRepository) FindByDoctorID(ctx context.Context, doctorID int64) ([]models.Prescription, error) {
	return r.queryPrescriptions(ctx, queries.GetPrescriptionsByDoctorID, doctorID)
}

func (r *prescriptionPostgresRepository) CreatePrescription(ctx context.Context, prescription *models.Prescription) (*models.Prescription, error) {
	created, err := scanPrescription(r.DB.QueryRowContext(ctx, queries.InsertPrescription,
		prescription.AppointmentID,
		prescription.DoctorID,
		prescription.UserID,
		sql.NullString{String: prescription.Notes, Valid: prescription.Notes != ""},
	))
	if err != nil {
		return nil, exceptions.ErrPostgresDBInsertData(err)
	}
	return created, nil
}

func (r *prescriptionPostgresRepository) UpdatePrescription(ctx context.Context, prescription *models.Prescription) (*models.Prescription, error) {
	updated, err := scanPrescription(r.DB.QueryRowContext(ctx, queries.UpdatePrescription,
		sql.NullString{String: prescription.Notes, Valid: prescription.Notes != ""},
		prescription.ID,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, exceptions.ErrResourceNotFound(err, constvars.ResourcePrescription)
		}
		return nil, exceptions.ErrPostgresDBUpdateData(err)
	}
	return updated, nil
}

func (r *prescriptionPostgresRepository) DeletePrescription(ctx context.Context, prescriptionID int64) error {
	result, err := r.DB.ExecContext(ctx, queries.DeletePrescription, prescriptionID)
	if err != nil {
		return exceptions.ErrPostgresDBDeleteData(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return exceptions.ErrPostgresDBDeleteData(err)
	}
	if affected == 0 {
		return exceptions.ErrResourceNotFound(sql.ErrNoRows, constvars.ResourcePrescription)
	}
	return nil
}

func (r *prescriptionPostgresRepository) queryPrescriptions(ctx context.Context, query string, args ...any) ([]models.Prescription, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	prescriptions := make([]models.Prescription, 0)
	for rows.Next() {
		prescription, err := scanPrescription(rows)
		if err != nil {
			return nil, exceptions.ErrPostgresDBIterateDataset(err)
		}
		prescriptions = append(prescriptions, *prescription)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}
	return prescriptions, nil
}
