package mailer

import (
	"context"
	"regexp"
	"sync"

	"afyacare-service/internal/app/config"
	"afyacare-service/internal/app/contracts"
	"afyacare-service/internal/pkg/constvars"
	"afyacare-service/internal/pkg/dto/requests"
	"afyacare-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type mailerService struct {
	RabbitMQConn *amqp091.Connection
	QueueName    string
	Log          *zap.Logger
}

var (
	mailerServiceInstance contracts.MailerService
	onceMailerService     sync.Once
	emailRegex            = regexp.MustCompile(constvars.RegexEmail)
)

func NewMailerService(rabbitMQConn *amqp091.Connection, internalConfig *config.InternalConfig, logger *zap.Logger) contracts.MailerService {
	onceMailerService.Do(func() {
		mailerServiceInstance = &mailerService{
			RabbitMQConn: rabbitMQConn,
			QueueName:    internalConfig.Mailer.Queue,
			Log:          logger,
		}
	})
	return mailerServiceInstance
}

func (s *mailerService) SendEmail(ctx context.Context, request *requests.EmailPayload) error {
	channel, err := s.RabbitMQConn.Channel()
	if err != nil {
		return exceptions.ErrQueuePublish(err, s.QueueName)
	}
	defer channel.Close()

	queue, err := channel.QueueDeclare(s.QueueName, true, false, false, false, nil)
	if err != nil {
		return exceptions.ErrQueuePublish(err, s.QueueName)
	}

	body, err := json.Marshal(request)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = channel.PublishWithContext(ctx, "", queue.Name, false, false, amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		DeliveryMode: amqp091.Persistent,
		Body:         body,
	})
	if err != nil {
		return exceptions.ErrQueuePublish(err, s.QueueName)
	}

	s.Log.Info("mailerService.SendEmail queued email",
		zap.String("to", request.To),
		zap.String("subject", request.Subject),
	)
	return nil
}

func (s *mailerService) ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}
