package config

type (
	DriverConfig struct {
		Redis    Redis
		Logger   Logger
		RabbitMQ RabbitMQ
		Minio    Minio
	}
	Redis struct {
		Enabled  bool
		Host     string
		Port     string
		Password string
		DB       int
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
		AccessLogFileName   string
	}
	RabbitMQ struct {
		Enabled  bool
		Port     string
		Host     string
		Username string
		Password string
		VHost    string
	}
	Minio struct {
		Enabled  bool
		Port     string
		Host     string
		Username string
		Password string
		UseSSL   bool
	}
)
