package complaint

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

type complaintPostgresRepository struct {
	DB *sql.DB
}

func NewComplaintPostgresRepository(db *sql.DB) contracts.ComplaintRepository {
	return &complaintPostgresRepository{DB: db}
}

func scanComplaint(row interface{ Scan(dest ...any) error }) (*models.Complaint, error) {
	var (
		complaint            models.Complaint
		relatedAppointmentID sql.NullInt64
		description          sql.NullString
	)
	err := row.Scan(
		&complaint.ID,
		&complaint.UserID,
		&relatedAppointmentID,
		&complaint.Subject,
		&description,
		&complaint.Status,
		&complaint.CreatedAt,
		&complaint.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if relatedAppointmentID.Valid {
		appointmentID := relatedAppointmentID.Int64
		complaint.RelatedAppointmentID = &appointmentID
	}
	complaint.Description = description.String
	return &complaint, nil
}

func (r *complaintPostgresRepository) FindAll(ctx context.Context) ([]models.Complaint, error) {
	return r.queryComplaints(ctx, queries.GetAllComplaints)
}

func (r *complaintPostgresRepository) FindByID(ctx context.Context, complaintID int64) (*models.Complaint, error) {
	complaint, err := scanComplaint(r.DB.QueryRowContext(ctx, queries.GetComplaintByID, complaintID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, exceptions.ErrResourceNotFound(err, constvars.ResourceComplaint)
		}
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return complaint, nil
}

func (r *complaintPostgresRepository) FindByUserID(ctx context.Context, userID int64) ([]models.Complaint, error) {
	return r.queryComplaints(ctx, queries.GetComplaintsByUserID, userID)
}

func (r *complaintPostgresRepository) CreateComplaint(ctx context.Context, complaint *models.Complaint) (*models.Complaint, error) {
	created, err := scanComplaint(r.DB.QueryRowContext(ctx, queries.InsertComplaint,
		complaint.UserID,
		complaint.RelatedAppointmentID,
		complaint.Subject,
		sql.NullString{String: complaint.Description, Valid: complaint.Description != ""},
	))
	if err != nil {
		return nil, exceptions.ErrPostgresDBInsertData(err)
	}
	return created, nil
}

func (r *complaintPostgresRepository) UpdateComplaint(ctx context.Context, complaint *models.Complaint) (*models.Complaint, error) {
	updated, err := scanComplaint(r.DB.QueryRowContext(ctx, queries.UpdateComplaint,
		complaint.Subject,
		sql.NullString{String: complaint.Description, Valid: complaint.Description != ""},
		complaint.Status,
		complaint.ID,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, exceptions.ErrResourceNotFound(err, constvars.ResourceComplaint)
		}
		return nil, exceptions.ErrPostgresDBUpdateData(err)
	}
	return updated, nil
}

func (r *complaintPostgresRepository) DeleteComplaint(ctx context.Context, complaintID int64) error {
	result, err := r.DB.ExecContext(ctx, queries.DeleteComplaint, complaintID)
	if err != nil {
		return exceptions.ErrPostgresDBDeleteData(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return exceptions.ErrPostgresDBDeleteData(err)
	}
	if affected == 0 {
		return exceptions.ErrResourceNotFound(sql.ErrNoRows, constvars.ResourceComplaint)
	}
	return nil
}

func (r *complaintPostgresRepository) queryComplaints(ctx context.Context, query string, args ...any) ([]models.Complaint, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	complaints := make([]models.Complaint, 0)
	for rows.Next() {
		complaint, err := scanComplaint(rows)
		if err != nil {
			return nil, exceptions.ErrPostgresDBIterateDataset(err)
		}
		complaints = append(complaints, *complaint)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}
	return complaints, nil
}
