package user

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

	"github.com/lib/pq"
)

type userPostgresRepository struct {
	DB *sql.DB
}

func NewUserPostgresRepository(db *sql.DB) contracts.UserRepository {
	return &userPostgresRepository{DB: db}
}

func scanUser(row interface{ Scan(dest ...any) error }) (*models.User, error) {
	var (
		user             models.User
		contactPhone     sql.NullString
		address          sql.NullString
		imageURL         sql.NullString
		verificationCode sql.NullString
		codeExpiresAt    sql.NullTime
	)
	err := row.Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.Password,
		&contactPhone,
		&address,
		&user.Role,
		&imageURL,
		&user.IsVerified,
		&verificationCode,
		&codeExpiresAt,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	user.ContactPhone = contactPhone.String
	user.Address = address.String
	user.ImageURL = imageURL.String
	user.VerificationCode = verificationCode.String
	if codeExpiresAt.Valid {
		expiresAt := codeExpiresAt.Time
		user.VerificationCodeExpiresAt = &expiresAt
	}
	return &user, nil
}

func (r *userPostgresRepository) FindAll(ctx context.Context) ([]models.User, error) {
	rows, err := r.DB.QueryContext(ctx, queries.GetAllUsers)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, exceptions.ErrPostgresDBIterateDataset(err)
		}
		users = append(users, *user)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}
	return users, nil
}

func (r *userPostgresRepository) FindByID(ctx context.Context, userID int64) (*models.User, error) {
	user, err := scanUser(r.DB.QueryRowContext(ctx, queries.GetUserByID, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, exceptions.ErrResourceNotFound(err, constvars.ResourceUser)
		}
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return user, nil
}

func (r *userPostgresRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := scanUser(r.DB.QueryRowContext(ctx, queries.GetUserByEmail, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, exceptions.ErrResourceNotFound(err, constvars.ResourceUser)
		}
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return user, nil
}

func (r *userPostgresRepository) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	created, err := scanUser(r.DB.QueryRowContext(ctx, queries.InsertUser,
		user.FirstName,
		user.LastName,
		user.Email,
		user.Password,
		nullableString(user.ContactPhone),
		nullableString(user.Address),
		user.Role,
		nullableString(user.VerificationCode),
		user.VerificationCodeExpiresAt,
	))
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constvars.PostgresUniqueViolationCode {
			return nil, exceptions.ErrEmailAlreadyExist(err)
		}
		return nil, exceptions.ErrPostgresDBInsertData(err)
	}
	return created, nil
}

func (r *userPostgresRepository) UpdateUser(ctx context.Context, user *models.User) (*models.User, error) {
	updated, err := scanUser(r.DB.QueryRowContext(ctx, queries.UpdateUser,
		user.FirstName,
		user.LastName,
		nullableString(user.ContactPhone),
		nullableString(user.Address),
		user.Role,
		nullableString(user.ImageURL),
		user.ID,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, exceptions.ErrResourceNotFound(err, constvars.ResourceUser)
		}
		return nil, exceptions.ErrPostgresDBUpdateData(err)
	}
	return updated, nil
}

func (r *userPostgresRepository) MarkVerified(ctx context.Context, email string) error {
	result, err := r.DB.ExecContext(ctx, queries.MarkUserVerified, email)
	if err != nil {
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	if affected == 0 {
		return exceptions.ErrResourceNotFound(sql.ErrNoRows, constvars.ResourceUser)
	}
	return nil
}

func (r *userPostgresRepository) UpdateVerificationCode(ctx context.Context, email, code string, expiresAt time.Time) error {
	result, err := r.DB.ExecContext(ctx, queries.UpdateUserVerificationCode, email, code, expiresAt)
	if err != nil {
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	if affected == 0 {
		return exceptions.ErrResourceNotFound(sql.ErrNoRows, constvars.ResourceUser)
	}
	return nil
}

func (r *userPostgresRepository) DeleteUser(ctx context.Context, userID int64) error {
	result, err := r.DB.ExecContext(ctx, queries.DeleteUser, userID)
	if err != nil {
		return exceptions.ErrPostgresDBDeleteData(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return exceptions.ErrPostgresDBDeleteData(err)
	}
	if affected == 0 {
		return exceptions.ErrResourceNotFound(sql.ErrNoRows, constvars.ResourceUser)
	}
	return nil
}

func nullableString(value string) sql.NullString {
	return sql.NullString{String: value, Valid: value != ""}
}
