package mailer

import (
	"fmt"
	"net/smtp"

	"afyacare-service/internal/app/config"
	"afyacare-service/internal/app/drivers/mailer"
	"afyacare-service/internal/pkg/constvars"
	"afyacare-service/internal/pkg/dto/requests"
	"afyacare-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// StartMailerWorker drains the mailer queue in a background goroutine and
// delivers each payload over SMTP. The returned stop function closes the
// consumer channel, which ends the goroutine.
func StartMailerWorker(rabbitMQConn *amqp091.Connection, smtpClient *mailer.SMTPClient, internalConfig *config.InternalConfig, logger *zap.Logger) (func(), error) {
	channel, err := rabbitMQConn.Channel()
	if err != nil {
		return nil, err
	}

	queue, err := channel.QueueDeclare(internalConfig.Mailer.Queue, true, false, false, false, nil)
	if err != nil {
		channel.Close()
		return nil, err
	}

	deliveries, err := channel.Consume(queue.Name, "", false, false, false, false, nil)
	if err != nil {
		channel.Close()
		return nil, err
	}

	go func() {
		for delivery := range deliveries {
			var payload requests.EmailPayload
			if err := json.Unmarshal(delivery.Body, &payload); err != nil {
				logger.Error("mailer worker dropped malformed payload", zap.Error(err))
				delivery.Nack(false, false)
				continue
			}

			if err := deliverEmail(smtpClient, &payload); err != nil {
				logger.Error("mailer worker failed to send email",
					zap.String("to", payload.To),
					zap.Error(err),
				)
				delivery.Nack(false, false)
				continue
			}

			logger.Info("mailer worker sent email",
				zap.String("to", payload.To),
				zap.String("subject", payload.Subject),
			)
			delivery.Ack(false)
		}
	}()

	return func() { channel.Close() }, nil
}

func deliverEmail(smtpClient *mailer.SMTPClient, payload *requests.EmailPayload) error {
	address := fmt.Sprintf("%s:%d", smtpClient.Host, smtpClient.Port)
	message := fmt.Sprintf(constvars.EmailSendBasicFormat, payload.To, payload.Subject, payload.Body)
	if err := smtp.SendMail(address, smtpClient.Auth, smtpClient.EmailSender, []string{payload.To}, []byte(message)); err != nil {
		return exceptions.ErrSMTPSendEmail(err, smtpClient.Host)
	}
	return nil
}
