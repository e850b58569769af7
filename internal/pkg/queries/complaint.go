package queries

const (
	complaintColumns = `complaint_id, user_id, related_appointment_id, subject, description, complaint_status, created_at, updated_at`

	GetAllComplaints = `
		SELECT ` + complaintColumns + `
		FROM complaints
		ORDER BY complaint_id
	`

	GetComplaintByID = `
		SELECT ` + complaintColumns + `
		FROM complaints
		WHERE complaint_id = $1
	`

	GetComplaintsByUserID = `
		SELECT ` + complaintColumns + `
		FROM complaints
		WHERE user_id = $1
		ORDER BY complaint_id
	`

	InsertComplaint = `
		INSERT INTO complaints (user_id, related_appointment_id, subject, description)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + complaintColumns + `
	`

	UpdateComplaint = `
		UPDATE complaints
		SET subject = $1, description = $2, complaint_status = $3, updated_at = NOW()
		WHERE complaint_id = $4
		RETURNING ` + complaintColumns + `
	`

	DeleteComplaint = `
		DELETE FROM complaints
		WHERE complaint_id = $1
	`
)
