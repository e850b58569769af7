package contact

import (
	"context"
	"database/sql"

	"afyacare-service/internal/app/contracts"
	"afyacare-service/internal/app/models"
	"afyacare-service/internal/pkg/exceptions"
	"afyacare-service/internal/pkg/queries"
)

type contactPostgresRepository struct {
	DB *sql.DB
}

func NewContactPostgresRepository(db *sql.DB) contracts.ContactRepository {
	return &contactPostgresRepository{DB: db}
}

func (r *contactPostgresRepository) FindAll(ctx context.Context) ([]models.Contact, error) {
	rows, err := r.DB.QueryContext(ctx, queries.GetAllContacts)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	contacts := make([]models.Contact, 0)
	for rows.Next() {
		var contact models.Contact
		err := rows.Scan(&contact.ID, &contact.Name, &contact.Email, &contact.Phone, &contact.Message, &contact.CreatedAt)
		if err != nil {
			return nil, exceptions.ErrPostgresDBIterateDataset(err)
		}
		contacts = append(contacts, contact)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}
	return contacts, nil
}

func (r *contactPostgresRepository) CreateContact(ctx context.Context, contact *models.Contact) (*models.Contact, error) {
	var created models.Contact
	err := r.DB.QueryRowContext(ctx, queries.InsertContact,
		contact.Name,
		contact.Email,
		contact.Phone,
		contact.Message,
	).Scan(&created.ID, &created.Name, &created.Email, &created.Phone, &created.Message, &created.CreatedAt)
	if err != nil {
		return nil, exceptions.ErrPostgresDBInsertData(err)
	}
	return &created, nil
}
