package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// Config конфигурация сервиса. Загружается из config.toml, после чего
// переменные окружения с префиксом RENTAL_ перекрывают значения из файла
// (секреты: пароль БД, URL брокера).
type Config struct {
	Server      ServerConfig      `toml:"server"`
	Database    DatabaseConfig    `toml:"database"`
	Logs        LogsConfig        `toml:"logs"`
	Metrics     MetricsConfig     `toml:"metrics"`
	AuthService AuthServiceConfig `toml:"auth_service"`
	Events      EventsConfig      `toml:"events"`
	Booking     BookingConfig     `toml:"booking"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port" envconfig:"HTTP_PORT"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host" envconfig:"DB_HOST"`
	Port            int    `toml:"port" envconfig:"DB_PORT"`
	User            string `toml:"user" envconfig:"DB_USER"`
	Password        string `toml:"password" envconfig:"DB_PASSWORD"`
	DBName          string `toml:"dbname" envconfig:"DB_NAME"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN собирает строку подключения к PostgreSQL
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file" envconfig:"LOG_FILE"`
	Level string `toml:"level" envconfig:"LOG_LEVEL"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// AuthServiceConfig настройки клиента сервиса аутентификации
type AuthServiceConfig struct {
	URL     string `toml:"url" envconfig:"AUTH_SERVICE_URL"`
	Timeout int    `toml:"timeout"`
}

// EventsConfig настройки публикации событий в RabbitMQ
type EventsConfig struct {
	Enabled  bool   `toml:"enabled"`
	URL      string `toml:"url" envconfig:"AMQP_URL"`
	Exchange string `toml:"exchange"`
}

// BookingConfig бизнес-политика бронирования
type BookingConfig struct {
	// WeeklyQuota недельная квота бронирований по умолчанию.
	// Может быть переопределена в профиле пользователя.
	WeeklyQuota int `toml:"weekly_quota"`
	// Timezone фиксированная civil-таймзона для вычисления "сегодня"
	Timezone string `toml:"timezone"`
}

// Load читает конфигурацию из toml-файла и применяет env-переопределения
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	// Переменные окружения перекрывают файл (RENTAL_DB_PASSWORD и т.д.)
	if err := envconfig.Process("rental", cfg); err != nil {
		return nil, fmt.Errorf("config: failed to apply env overrides: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			ServiceName: "rental-service",
			Path:        "/metrics",
		},
		AuthService: AuthServiceConfig{
			Timeout: 5,
		},
		Events: EventsConfig{
			Exchange: "rentals",
		},
		Booking: BookingConfig{
			WeeklyQuota: domain.DefaultWeeklyQuota,
			Timezone:    domain.DefaultTimezone,
		},
	}
}

func (c *Config) validate() error {
	if c.Database.User == "" || c.Database.DBName == "" {
		return fmt.Errorf("config: database user and dbname are required")
	}
	if c.Booking.WeeklyQuota <= 0 {
		return fmt.Errorf("config: booking.weekly_quota must be positive")
	}
	if c.AuthService.URL == "" {
		return fmt.Errorf("config: auth_service.url is required")
	}
	if c.Events.Enabled && c.Events.URL == "" {
		return fmt.Errorf("config: events.url is required when events are enabled")
	}
	return nil
}
