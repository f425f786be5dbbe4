package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config конфигурация сервиса
type Config struct {
	Server       ServerConfig       `toml:"server" yaml:"server"`
	Database     DatabaseConfig     `toml:"database" yaml:"database"`
	Logs         LogsConfig         `toml:"logs" yaml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics" yaml:"metrics"`
	HoursService HoursServiceConfig `toml:"hours_service" yaml:"hours_service"`
	EventLog     EventLogConfig     `toml:"event_log" yaml:"event_log"`
	RateLimit    RateLimitConfig    `toml:"rate_limit" yaml:"rate_limit"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port" yaml:"http_port"`
	ReadTimeout     int `toml:"read_timeout" yaml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout" yaml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout" yaml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout" yaml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к БД журнала событий и каталога провайдеров
type DatabaseConfig struct {
	Driver          string `toml:"driver" yaml:"driver"` // postgres | sqlite
	Host            string `toml:"host" yaml:"host"`
	Port            int    `toml:"port" yaml:"port"`
	User            string `toml:"user" yaml:"user"`
	Password        string `toml:"password" yaml:"password"`
	DBName          string `toml:"dbname" yaml:"dbname"`
	SSLMode         string `toml:"sslmode" yaml:"sslmode"`
	Path            string `toml:"path" yaml:"path"` // файл БД для sqlite
	MaxOpenConns    int    `toml:"max_open_conns" yaml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns" yaml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime" yaml:"conn_max_lifetime"` // секунды
	AutoMigrate     bool   `toml:"auto_migrate" yaml:"auto_migrate"`
}

// DSN строка подключения для выбранного драйвера
func (c DatabaseConfig) DSN() string {
	if c.Driver == "sqlite" {
		return c.Path
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file" yaml:"file"`
	Level string `toml:"level" yaml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled" yaml:"enabled"`
	Path        string `toml:"path" yaml:"path"`
	ServiceName string `toml:"service_name" yaml:"service_name"`
}

// HoursServiceConfig настройки клиента сервиса рабочих часов (таймаут в миллисекундах)
type HoursServiceConfig struct {
	URL     string `toml:"url" yaml:"url"`
	Timeout int    `toml:"timeout_ms" yaml:"timeout_ms"`
}

// EventLogConfig настройки фоновой записи в журнал событий
type EventLogConfig struct {
	AppendTimeout int `toml:"append_timeout_ms" yaml:"append_timeout_ms"`
}

// RateLimitConfig ограничение частоты запросов с одного IP
type RateLimitConfig struct {
	Enabled bool    `toml:"enabled" yaml:"enabled"`
	RPS     float64 `toml:"rps" yaml:"rps"`
	Burst   int     `toml:"burst" yaml:"burst"`
}

// Default возвращает конфигурацию по умолчанию
func Default() Config {
	return Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Driver:          "postgres",
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "scheduling",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "smc_scheduling_service",
		},
		HoursService: HoursServiceConfig{
			Timeout: 2000,
		},
		EventLog: EventLogConfig{
			AppendTimeout: 3000,
		},
		RateLimit: RateLimitConfig{
			RPS:   20,
			Burst: 40,
		},
	}
}

// Load читает конфигурацию из TOML или YAML файла (по расширению),
// накладывает переменные окружения и проверяет значения
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadConfig, err)
	}

	cfg := Default()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return nil, fmt.Errorf("%w: toml: %v", ErrParseConfig, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("%w: yaml: %v", ErrParseConfig, err)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported config format %q", ErrParseConfig, filepath.Ext(path))
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyEnv переопределяет секреты и адреса из окружения
func applyEnv(cfg *Config) {
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("HOURS_SERVICE_URL"); v != "" {
		cfg.HoursService.URL = v
	}
}

// Validate проверяет обязательные поля
func (c *Config) Validate() error {
	var errs []error

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		errs = append(errs, fmt.Errorf("server.http_port out of range: %d", c.Server.HTTPPort))
	}

	switch c.Database.Driver {
	case "postgres":
		if c.Database.Host == "" || c.Database.DBName == "" {
			errs = append(errs, errors.New("database.host and database.dbname are required for postgres"))
		}
	case "sqlite":
		if c.Database.Path == "" {
			errs = append(errs, errors.New("database.path is required for sqlite"))
		}
	default:
		errs = append(errs, fmt.Errorf("database.driver must be postgres or sqlite, got %q", c.Database.Driver))
	}

	if c.HoursService.URL == "" {
		errs = append(errs, errors.New("hours_service.url is required"))
	}
	if c.HoursService.Timeout <= 0 {
		errs = append(errs, errors.New("hours_service.timeout_ms must be positive"))
	}
	if c.EventLog.AppendTimeout <= 0 {
		errs = append(errs, errors.New("event_log.append_timeout_ms must be positive"))
	}
	if c.RateLimit.Enabled && (c.RateLimit.RPS <= 0 || c.RateLimit.Burst <= 0) {
		errs = append(errs, errors.New("rate_limit.rps and rate_limit.burst must be positive when enabled"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}
