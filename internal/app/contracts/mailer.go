package contracts

import (
	"context"

	"afyacare-service/internal/pkg/dto/requests"
)

// MailerService publishes email payloads to the mailer queue; a background
// worker drains the queue and performs SMTP delivery.
type MailerService interface {
	SendEmail(ctx context.Context, request *requests.EmailPayload) error
	ValidateEmail(email string) bool
}
