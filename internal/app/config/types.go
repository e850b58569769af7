package config

type (
	InternalConfig struct {
		App    App
		JWT    JWT
		Mpesa  Mpesa
		Mailer Mailer
	}

	DriverConfig struct {
		PostgresDB PostgresDB
		Redis      Redis
		RabbitMQ   RabbitMQ
		SMTP       SMTP
		Logger     Logger
	}

	App struct {
		Env             string
		Port            string
		Version         string
		Timezone        string
		EndpointPrefix  string
		MaxRequests     int
		ShutdownTimeout int
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}

	// Mpesa holds everything the daraja gateway integration needs. It is
	// injected into the gateway service at construction time; no code path
	// reads these from the process environment directly.
	Mpesa struct {
		Env            string
		BaseURL        string
		ConsumerKey    string
		ConsumerSecret string
		ShortCode      string
		Passkey        string
		CallbackURL    string
	}

	Mailer struct {
		EmailSender                     string
		Queue                           string
		VerificationCodeLength          int
		VerificationCodeExpTimeInMinute int
	}

	PostgresDB struct {
		Host     string
		Port     string
		DBName   string
		Username string
		Password string
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	RabbitMQ struct {
		Host     string
		Port     string
		Username string
		Password string
	}

	SMTP struct {
		Host        string
		Port        int
		Username    string
		Password    string
		EmailSender string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
