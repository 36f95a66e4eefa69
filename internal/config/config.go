package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Auth     AuthConfig     `toml:"auth"`
	Redis    RedisConfig    `toml:"redis"`
	Booking  BookingConfig  `toml:"booking"`
	Notifier NotifierConfig `toml:"notifier"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:   d.DBName,
	}
	q := u.Query()
	q.Set("sslmode", d.SSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type AuthConfig struct {
	JWTSecret       string `toml:"jwt_secret"`
	Issuer          string `toml:"issuer"`
	TokenTTLMinutes int    `toml:"token_ttl_minutes"`
	BcryptCost      int    `toml:"bcrypt_cost"`
}

type RedisConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	Prefix   string `toml:"prefix"`
}

type BookingConfig struct {
	InitialStatus  string `toml:"initial_status"`
	RejectOverlaps bool   `toml:"reject_overlaps"`
	MaxNights      int    `toml:"max_nights"`
	Currency       string `toml:"currency"`
	Locale         string `toml:"locale"`
}

type NotifierConfig struct {
	Driver                 string `toml:"driver"`
	TimeoutSeconds         int    `toml:"timeout_seconds"`
	ConfirmationTemplateID string `toml:"confirmation_template_id"`

	EmailJSURL       string `toml:"emailjs_url"`
	EmailJSServiceID string `toml:"emailjs_service_id"`
	EmailJSPublicKey string `toml:"emailjs_public_key"`

	AMQPURL string `toml:"amqp_url"`
	Queue   string `toml:"queue"`
}

const (
	NotifierDriverNone     = "none"
	NotifierDriverEmailJS  = "emailjs"
	NotifierDriverRabbitMQ = "rabbitmq"
)

var (
	// ErrInvalidConfig возвращается при некорректной конфигурации
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Load читает конфигурацию из TOML-файла
// Перед чтением подгружается .env (если есть), секреты переопределяются из окружения
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default значения по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    25,
			ConnMaxLifetime: 1800,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "hotel-booking-service",
		},
		Auth: AuthConfig{
			Issuer:          "hotel-booking-service",
			TokenTTLMinutes: 60,
			BcryptCost:      12,
		},
		Redis: RedisConfig{
			Addr:   "localhost:6379",
			Prefix: "session",
		},
		Booking: BookingConfig{
			InitialStatus: "confirmed",
			MaxNights:     365,
			Currency:      "INR",
			Locale:        "en-IN",
		},
		Notifier: NotifierConfig{
			Driver:         NotifierDriverNone,
			TimeoutSeconds: 10,
			EmailJSURL:     "https://api.emailjs.com/api/v1.0/email/send",
			Queue:          "booking.confirmation",
		},
	}
}

// applyEnv переопределяет секреты переменными окружения
func (c *Config) applyEnv() {
	overrideString(&c.Database.Password, "DB_PASSWORD")
	overrideString(&c.Auth.JWTSecret, "JWT_SECRET")
	overrideString(&c.Redis.Password, "REDIS_PASSWORD")
	overrideString(&c.Notifier.EmailJSPublicKey, "EMAILJS_PUBLIC_KEY")
	overrideString(&c.Notifier.AMQPURL, "AMQP_URL")
	if v, ok := os.LookupEnv("HTTP_PORT"); ok {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.HTTPPort = port
		}
	}
}

func overrideString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

// Validate проверяет обязательные поля и значения перечислений
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port out of range", ErrInvalidConfig)
	}
	if c.Database.Host == "" || c.Database.DBName == "" || c.Database.User == "" {
		return fmt.Errorf("%w: database host, dbname and user are required", ErrInvalidConfig)
	}
	if len(c.Auth.JWTSecret) < 16 {
		return fmt.Errorf("%w: auth.jwt_secret must be at least 16 characters (set JWT_SECRET)", ErrInvalidConfig)
	}
	if c.Auth.TokenTTLMinutes <= 0 {
		return fmt.Errorf("%w: auth.token_ttl_minutes must be positive", ErrInvalidConfig)
	}
	if c.Auth.BcryptCost < 4 || c.Auth.BcryptCost > 31 {
		return fmt.Errorf("%w: auth.bcrypt_cost must be within [4, 31]", ErrInvalidConfig)
	}

	switch c.Booking.InitialStatus {
	case "confirmed", "pending":
	default:
		return fmt.Errorf("%w: booking.initial_status must be confirmed or pending, got %q",
			ErrInvalidConfig, c.Booking.InitialStatus)
	}
	if c.Booking.MaxNights <= 0 {
		return fmt.Errorf("%w: booking.max_nights must be positive", ErrInvalidConfig)
	}

	switch strings.ToLower(c.Notifier.Driver) {
	case NotifierDriverNone, "":
	case NotifierDriverEmailJS:
		if c.Notifier.EmailJSServiceID == "" || c.Notifier.EmailJSPublicKey == "" || c.Notifier.ConfirmationTemplateID == "" {
			return fmt.Errorf("%w: emailjs notifier requires service id, public key and template id", ErrInvalidConfig)
		}
	case NotifierDriverRabbitMQ:
		if c.Notifier.AMQPURL == "" || c.Notifier.Queue == "" {
			return fmt.Errorf("%w: rabbitmq notifier requires amqp_url and queue", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown notifier.driver %q", ErrInvalidConfig, c.Notifier.Driver)
	}
	return nil
}
