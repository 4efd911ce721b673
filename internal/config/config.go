package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// Config конфигурация сервиса, загружается из TOML файла
type Config struct {
	Server   Server   `toml:"server"`
	Database Database `toml:"database"`
	Logs     Logs     `toml:"logs"`
	Metrics  Metrics  `toml:"metrics"`
	Redis    Redis    `toml:"redis"`
	Schedule Schedule `toml:"schedule"`
}

// Server настройки HTTP сервера
type Server struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// Database настройки подключения к PostgreSQL
type Database struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN возвращает строку подключения к базе данных
func (d Database) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// Logs настройки логирования
type Logs struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Metrics настройки Prometheus метрик
type Metrics struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// Redis настройки кеша справочника провайдеров
type Redis struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	CacheTTL int    `toml:"cache_ttl"` // секунды
}

// Schedule настройки рабочих часов
type Schedule struct {
	BusinessDayStart int    `toml:"business_day_start"` // первый рабочий час (включительно)
	BusinessDayEnd   int    `toml:"business_day_end"`   // последний рабочий час (включительно)
	Timezone         string `toml:"timezone"`
}

// BusinessHours возвращает диапазон рабочих часов из конфигурации
func (s Schedule) BusinessHours() domain.BusinessHours {
	return domain.BusinessHours{
		StartHour: s.BusinessDayStart,
		EndHour:   s.BusinessDayEnd,
	}
}

// Load загружает конфигурацию из TOML файла и проверяет её корректность
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// defaultConfig возвращает конфигурацию со значениями по умолчанию
// Значения перекрываются содержимым TOML файла
func defaultConfig() *Config {
	return &Config{
		Server: Server{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: Database{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: Logs{
			File:  "scheduling-service.log",
			Level: "info",
		},
		Metrics: Metrics{
			Enabled:     false,
			Path:        "/metrics",
			ServiceName: "scheduling-service",
		},
		Redis: Redis{
			Enabled:  false,
			Addr:     "localhost:6379",
			CacheTTL: 60,
		},
		Schedule: Schedule{
			BusinessDayStart: domain.DefaultBusinessDayStart,
			BusinessDayEnd:   domain.DefaultBusinessDayEnd,
			Timezone:         "UTC",
		},
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("config: invalid http_port %d", c.Server.HTTPPort)
	}

	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("config: database host and dbname are required")
	}

	if !c.Schedule.BusinessHours().IsValid() {
		return fmt.Errorf("config: invalid business hours range %d..%d",
			c.Schedule.BusinessDayStart, c.Schedule.BusinessDayEnd)
	}

	if c.Redis.Enabled && c.Redis.Addr == "" {
		return fmt.Errorf("config: redis addr is required when redis is enabled")
	}

	return nil
}
