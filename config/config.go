package config

import (
	"log"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HttpServer    HttpServerConfig    `envconfig:"HTTP_SERVER"`
	Database      DatabaseConfig      `envconfig:"DATABASE"`
	Redis         RedisConfig         `envconfig:"REDIS"`
	MessageStream MessageStreamConfig `envconfig:"MESSAGE_STREAM"`
	HttpClient    HttpClientConfig    `envconfig:"HTTP_CLIENT"`
	Chapa         ChapaConfig         `envconfig:"CHAPA"`
	Mail          MailConfig          `envconfig:"MAIL"`
	JWT           JWTConfig           `envconfig:"JWT"`
}

type HttpServerConfig struct {
	Host string `envconfig:"HOST" default:"0.0.0.0"`
	Port string `envconfig:"PORT" default:"3000"`
}

type DatabaseConfig struct {
	Host         string `envconfig:"HOST" default:"localhost"`
	Port         string `envconfig:"PORT" default:"5432"`
	Username     string `envconfig:"USERNAME" default:"postgres"`
	Password     string `envconfig:"PASSWORD"`
	Name         string `envconfig:"NAME" default:"travel"`
	SSLMode      string `envconfig:"SSL_MODE" default:"disable"`
	MaxOpenConns int    `envconfig:"MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns int    `envconfig:"MAX_IDLE_CONNS" default:"5"`
}

type RedisConfig struct {
	Host     string `envconfig:"HOST" default:"localhost"`
	Port     string `envconfig:"PORT" default:"6379"`
	Password string `envconfig:"PASSWORD"`
	DB       int    `envconfig:"DB" default:"0"`
}

type MessageStreamConfig struct {
	Host     string `envconfig:"HOST" default:"localhost"`
	Port     string `envconfig:"PORT" default:"5672"`
	Username string `envconfig:"USERNAME" default:"guest"`
	Password string `envconfig:"PASSWORD" default:"guest"`
}

type HttpClientConfig struct {
	Type                string  `envconfig:"TYPE" default:"consecutive"`
	Timeout             int     `envconfig:"TIMEOUT" default:"30"`
	ConsecutiveFailures int64   `envconfig:"CONSECUTIVE_FAILURES" default:"5"`
	ErrorRate           float64 `envconfig:"ERROR_RATE" default:"0.1"`
	MinimumSamples      int64   `envconfig:"MINIMUM_SAMPLES" default:"100"`
}

type ChapaConfig struct {
	BaseURL         string `envconfig:"BASE_URL" default:"https://api.chapa.co/v1"`
	SecretKey       string `envconfig:"SECRET_KEY"`
	WebhookSecret   string `envconfig:"WEBHOOK_SECRET"`
	CallbackBaseURL string `envconfig:"CALLBACK_BASE_URL" default:"http://localhost:3000"`
	TxRefPrefix     string `envconfig:"TX_REF_PREFIX" default:"TRV"`
}

type MailConfig struct {
	Host     string `envconfig:"HOST" default:"localhost"`
	Port     string `envconfig:"PORT" default:"1025"`
	Username string `envconfig:"USERNAME"`
	Password string `envconfig:"PASSWORD"`
	From     string `envconfig:"FROM" default:"noreply@travelapp.com"`
}

type JWTConfig struct {
	Secret    string `envconfig:"SECRET" default:"secret"`
	ExpireMin int    `envconfig:"EXPIRE_MIN" default:"60"`
}

var (
	cfg  *Config
	once sync.Once
)

func InitConfig() *Config {
	once.Do(func() {
		// .env is optional, environment variables win
		_ = godotenv.Load()

		cfg = &Config{}
		if err := envconfig.Process("", cfg); err != nil {
			log.Fatalf("failed to process config: %v", err)
		}
	})

	return cfg
}
