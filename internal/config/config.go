package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-CallBookingService/internal/domain"
	"github.com/m04kA/SMC-CallBookingService/pkg/types"
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Schedule ScheduleConfig `toml:"schedule"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
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

// DSN возвращает строку подключения к PostgreSQL
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// ScheduleConfig настройки недельной сетки слотов
// Незаполненные поля заменяются дефолтами из domain
type ScheduleConfig struct {
	DayStartTime        string `toml:"day_start_time"`        // "09:00"
	DayEndTime          string `toml:"day_end_time"`          // "15:00", не включается
	SlotDurationMinutes int    `toml:"slot_duration_minutes"` // шаг сетки
	WorkDays            int    `toml:"work_days"`             // рабочих дней с понедельника
}

// Load загружает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyDefaults подставляет значения по умолчанию для незаполненных полей
func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Logs.File == "" {
		c.Logs.File = "logs/app.log"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "call-booking-service"
	}
	if c.Schedule.DayStartTime == "" {
		c.Schedule.DayStartTime = domain.DefaultDayStartTime
	}
	if c.Schedule.DayEndTime == "" {
		c.Schedule.DayEndTime = domain.DefaultDayEndTime
	}
	if c.Schedule.SlotDurationMinutes == 0 {
		c.Schedule.SlotDurationMinutes = domain.DefaultSlotDurationMinutes
	}
	if c.Schedule.WorkDays == 0 {
		c.Schedule.WorkDays = domain.DefaultWorkDays
	}
}

// validate проверяет согласованность конфигурации
func (c *Config) validate() error {
	if c.Schedule.SlotDurationMinutes < domain.MinSlotDurationMinutes ||
		c.Schedule.SlotDurationMinutes > domain.MaxSlotDurationMinutes {
		return fmt.Errorf("config: slot_duration_minutes must be between %d and %d",
			domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}
	if c.Schedule.WorkDays < domain.MinWorkDays || c.Schedule.WorkDays > domain.MaxWorkDays {
		return fmt.Errorf("config: work_days must be between %d and %d",
			domain.MinWorkDays, domain.MaxWorkDays)
	}
	if err := types.TimeString(c.Schedule.DayStartTime).Validate(); err != nil {
		return fmt.Errorf("config: invalid day_start_time: %w", err)
	}
	if err := types.TimeString(c.Schedule.DayEndTime).Validate(); err != nil {
		return fmt.Errorf("config: invalid day_end_time: %w", err)
	}
	if !types.TimeString(c.Schedule.DayStartTime).IsBefore(types.TimeString(c.Schedule.DayEndTime)) {
		return fmt.Errorf("config: day_start_time must be before day_end_time")
	}
	return nil
}

// ScheduleTemplate собирает доменный шаблон сетки из конфигурации
func (c *Config) ScheduleTemplate() domain.ScheduleTemplate {
	return domain.ScheduleTemplate{
		DayStartTime:        types.TimeString(c.Schedule.DayStartTime),
		DayEndTime:          types.TimeString(c.Schedule.DayEndTime),
		SlotDurationMinutes: c.Schedule.SlotDurationMinutes,
		WorkDays:            c.Schedule.WorkDays,
	}
}
