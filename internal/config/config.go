package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config is read from HRMS_* environment variables, optionally seeded from .env.
type Config struct {
	Env     string `envconfig:"APP_ENV" default:"development"`
	HTTP    HTTP
	DB      DB
	Redis   Redis
	Kafka   Kafka
	JWT     JWT
	Storage Storage
	Mail    Mail
	CORS    CORS
}

type HTTP struct {
	Port            string        `default:"3000"`
	ReadTimeout     time.Duration `split_words:"true" default:"15s"`
	WriteTimeout    time.Duration `split_words:"true" default:"30s"`
	ShutdownTimeout time.Duration `split_words:"true" default:"10s"`
}

type DB struct {
	Host       string `default:"localhost"`
	User       string `default:"postgres"`
	Password   string
	Name       string `default:"hrms"`
	Port       string `default:"5432"`
	SSLMode    string `split_words:"true" default:"disable"`
	MaxRetries int    `split_words:"true" default:"5"`
}

type Redis struct {
	Addr string `default:"localhost:6379"`
}

type Kafka struct {
	Broker  string `default:"localhost:9092"`
	GroupID string `split_words:"true" default:"go-hrms-notification"`
}

type JWT struct {
	Secret string `required:"true"`
}

type Storage struct {
	Endpoint      string `default:"localhost:9000"`
	AccessKey     string `split_words:"true"`
	SecretKey     string `split_words:"true"`
	Bucket        string `default:"hrms"`
	UseSSL        bool   `envconfig:"USE_SSL" default:"false"`
	PublicBaseURL string `envconfig:"PUBLIC_BASE_URL" default:"http://localhost:9000/hrms"`
}

type Mail struct {
	Host     string `default:"smtp.gmail.com"`
	Port     int    `default:"587"`
	User     string
	Password string
	From     string
}

type CORS struct {
	AllowedOrigins []string `split_words:"true" default:"http://localhost:3000,http://localhost:5173"`
}

const prefix = "HRMS"

// Load reads .env when present and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(prefix, &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

func (c *Config) Addr() string {
	return ":" + c.HTTP.Port
}
