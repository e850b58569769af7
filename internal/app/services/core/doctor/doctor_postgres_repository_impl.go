package doctor

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

type doctorPostgresRepository struct {
	DB *sql.DB
}

func NewDoctorPostgresRepository(db *sql.DB) contracts.DoctorRepository {
	return &doctorPostgresRepository{DB: db}
}

func scanDoctor(row interface{ Scan(dest ...any) error }) (*models.Doctor, error) {
	var (
		doctor        models.Doctor
		contactPhone  sql.NullString
		availableDays sql.NullString
	)
	err := row.Scan(
		&doctor.ID,
		&doctor.FirstName,
		&doctor.LastName,
		&doctor.Specialization,
		&contactPhone,
		&availableDays,
		&doctor.CreatedAt,
		&doctor.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	doctor.ContactPhone = contactPhone.String
	doctor.AvailableDays = availableDays.String
	return &doctor, nil
}

func (r *doctorPostgresRepository) FindAll(ctx context.Context) ([]models.Doctor, error) {
	rows, err := r.DB.QueryContext(ctx, queries.GetAllDoctors)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	doctors := make([]models.Doctor, 0)
	for rows.Next() {
		doctor, err := scanDoctor(rows)
		if err != nil {
			return nil, exceptions.ErrPostgresDBIterateDataset(err)
		}
		doctors = append(doctors, *doctor)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}
	return doctors, nil
}

func (r *doctorPostgresRepository) FindByID(ctx context.Context, doctorID int64) (*models.Doctor, error) {
	doctor, err := scanDoctor(r.DB.QueryRowContext(ctx, queries.GetDoctorByID, doctorID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, exceptions.ErrResourceNotFound(err, constvars.ResourceDoctor)
		}
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return doctor, nil
}

func (r *doctorPostgresRepository) CreateDoctor(ctx context.Context, doctor *models.Doctor) (*models.Doctor, error) {
	created, err := scanDoctor(r.DB.QueryRowContext(ctx, queries.InsertDoctor,
		doctor.FirstName,
		doctor.LastName,
		doctor.Specialization,
		sql.NullString{String: doctor.ContactPhone, Valid: doctor.ContactPhone != ""},
		sql.NullString{String: doctor.AvailableDays, Valid: doctor.AvailableDays != ""},
	))
	if err != nil {
		return nil, exceptions.ErrPostgresDBInsertData(err)
	}
	return created, nil
}

func (r *doctorPostgresRepository) UpdateDoctor(ctx context.Context, doctor *models.Doctor) (*models.Doctor, error) {
	updated, err := scanDoctor(r.DB.QueryRowContext(ctx, queries.UpdateDoctor,
		doctor.FirstName,
		doctor.LastName,
		doctor.Specialization,
		sql.NullString{String: doctor.ContactPhone, Valid: doctor.ContactPhone != ""},
		sql.NullString{String: doctor.AvailableDays, Valid: doctor.AvailableDays != ""},
		doctor.ID,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, exceptions.ErrResourceNotFound(err, constvars.ResourceDoctor)
		}
		return nil, exceptions.ErrPostgresDBUpdateData(err)
	}
	return updated, nil
}

func (r *doctorPostgresRepository) DeleteDoctor(ctx context.Context, doctorID int64) error {
	result, err := r.DB.ExecContext(ctx, queries.DeleteDoctor, doctorID)
	if err != nil {
		return exceptions.ErrPostgresDBDeleteData(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return exceptions.ErrPostgresDBDeleteData(err)
	}
	if affected == 0 {
		return exceptions.ErrResourceNotFound(sql.ErrNoRows, constvars.ResourceDoctor)
	}
	return nil
}
