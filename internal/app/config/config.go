package config

import (
	"afyacare-service/internal/pkg/constvars"
	"afyacare-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		PostgresDB: PostgresDB{
			Host:     utils.GetEnvString("POSTGRES_HOST", "localhost"),
			Port:     utils.GetEnvString("POSTGRES_PORT", "5432"),
			DBName:   utils.GetEnvString("POSTGRES_DB_NAME", "afyacare"),
			Username: utils.GetEnvString("POSTGRES_USERNAME", "postgres"),
			Password: utils.GetEnvString("POSTGRES_PASSWORD", "postgres"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		RabbitMQ: RabbitMQ{
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		SMTP: SMTP{
			Host:        utils.GetEnvString("SMTP_HOST", "localhost"),
			Port:        utils.GetEnvInt("SMTP_PORT", 2525),
			Username:    utils.GetEnvString("SMTP_USERNAME", ""),
			Password:    utils.GetEnvString("SMTP_PASSWORD", ""),
			EmailSender: utils.GetEnvString("SMTP_EMAIL_SENDER", "no-reply@afyacare.co.ke"),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	mpesaEnv := utils.GetEnvString("MPESA_ENV", constvars.MpesaEnvSandbox)
	mpesaBaseURL := constvars.MpesaProductionBaseURL
	if mpesaEnv == constvars.MpesaEnvSandbox {
		mpesaBaseURL = constvars.MpesaSandboxBaseURL
	}

	return &InternalConfig{
		App: App{
			Env:             utils.GetEnvString("APP_ENV", "development"),
			Port:            utils.GetEnvString("APP_PORT", ":8080"),
			Version:         utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:        utils.GetEnvString("APP_TIMEZONE", "Africa/Nairobi"),
			EndpointPrefix:  utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:     utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeout: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
		},
		JWT: JWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 1),
		},
		Mpesa: Mpesa{
			Env:            mpesaEnv,
			BaseURL:        mpesaBaseURL,
			ConsumerKey:    utils.GetEnvString("MPESA_CONSUMER_KEY", ""),
			ConsumerSecret: utils.GetEnvString("MPESA_CONSUMER_SECRET", ""),
			ShortCode:      utils.GetEnvString("MPESA_SHORTCODE", "174379"),
			Passkey:        utils.GetEnvString("MPESA_PASSKEY", ""),
			CallbackURL:    utils.GetEnvString("MPESA_CALLBACK_URL", "http://localhost:8080/api/v1/mpesa/callback"),
		},
		Mailer: Mailer{
			EmailSender:                     utils.GetEnvString("APP_MAILER_EMAIL_SENDER", "no-reply@afyacare.co.ke"),
			Queue:                           utils.GetEnvString("APP_RABBITMQ_MAILER_QUEUE", "afyacare_mailer_queue"),
			VerificationCodeLength:          utils.GetEnvInt("APP_VERIFICATION_CODE_LENGTH", 6),
			VerificationCodeExpTimeInMinute: utils.GetEnvInt("APP_VERIFICATION_CODE_EXP_TIME_IN_MINUTE", 15),
		},
	}
}
