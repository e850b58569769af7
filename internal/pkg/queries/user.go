package queries

const (
	userColumns = `user_id, first_name, last_name, email, password, contact_phone, address, role, image_url,
		is_verified, verification_code, verification_code_expires_at, created_at, updated_at`

	GetAllUsers = `
		SELECT ` + userColumns + `
		FROM users
		ORDER BY user_id
	`

	GetUserByID = `
		SELECT ` + userColumns + `
		FROM users
		WHERE user_id = $1
	`

	GetUserByEmail = `
		SELECT ` + userColumns + `
		FROM users
		WHERE email = $1
	`

	InsertUser = `
		INSERT INTO users (first_name, last_name, email, password, contact_phone, address, role, verification_code, verification_code_expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + userColumns + `
	`

	UpdateUser = `
		UPDATE users
		SET first_name = $1, last_name = $2, contact_phone = $3, address = $4, role = $5, image_url = $6, updated_at = NOW()
		WHERE user_id = $7
		RETURNING ` + userColumns + `
	`

	MarkUserVerified = `
		UPDATE users
		SET is_verified = TRUE, verification_code = NULL, verification_code_expires_at = NULL, updated_at = NOW()
		WHERE email = $1
	`

	UpdateUserVerificationCode = `
		UPDATE users
		SET verification_code = $2, verification_code_expires_at = $3, updated_at = NOW()
		WHERE email = $1
	`

	DeleteUser = `
		DELETE FROM users
		WHERE user_id = $1
	`
)
