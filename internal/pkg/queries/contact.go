package queries

const (
	GetAllContacts = `
		SELECT contact_id, name, email, phone, message, created_at
		FROM contacts
		ORDER BY contact_id
	`

	InsertContact = `
		INSERT INTO contacts (name, email, phone, message)
		VALUES ($1, $2, $3, $4)
		RETURNING contact_id, name, email, phone, message, created_at
	`
)
