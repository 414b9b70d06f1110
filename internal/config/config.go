package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/bestbuddies/grooming-booking/internal/domain"
)

// ErrInvalidConfig возвращается, когда значения конфигурации не проходят проверку
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Redis    RedisConfig    `toml:"redis"`
	Booking  BookingConfig  `toml:"booking"`
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
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
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

// RedisConfig кеш каталога; пустой адрес отключает кеш
type RedisConfig struct {
	Address         string `toml:"address"`
	Password        string `toml:"password"`
	DB              int    `toml:"db"`
	CacheTTLSeconds int    `toml:"cache_ttl_seconds"`
}

// Enabled сообщает, настроен ли redis
func (c RedisConfig) Enabled() bool {
	return strings.TrimSpace(c.Address) != ""
}

// CacheTTL время жизни записи каталога в кеше
func (c RedisConfig) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

// BookingConfig бизнес-параметры бронирований
type BookingConfig struct {
	Timezone                 string  `toml:"timezone"`
	BookingFee               float64 `toml:"booking_fee"`
	BanLiftFee               float64 `toml:"ban_lift_fee"`
	WarningHardLimit         int     `toml:"warning_hard_limit"`
	WarningThreshold         int     `toml:"warning_threshold"`
	GroomerDailyLimit        int     `toml:"groomer_daily_limit"`
	SameDayCutoffMinutes     int     `toml:"same_day_cutoff_minutes"`
	SingleServiceThresholdKg float64 `toml:"single_service_threshold_kg"`
	StrictWeight             bool    `toml:"strict_weight"`
	AssignmentStrategy       string  `toml:"assignment_strategy"` // least_loaded / round_robin
	AdvanceBookingDays       int     `toml:"advance_booking_days"` // 0 - без ограничений
	CatalogFile              string  `toml:"catalog_file"`         // JSON-каталог, загружается при старте
}

// Location часовой пояс салона
func (c BookingConfig) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

// Load читает конфигурацию из TOML-файла, подставляя ${ENV} плейсхолдеры
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(os.ExpandEnv(string(data)))
}

// Parse разбирает TOML, применяет значения по умолчанию и валидирует результат
func Parse(data string) (*Config, error) {
	var cfg Config
	if _, err := toml.Decode(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}

	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "grooming-booking"
	}

	if c.Redis.CacheTTLSeconds == 0 {
		c.Redis.CacheTTLSeconds = 300
	}

	b := &c.Booking
	if b.BookingFee == 0 {
		b.BookingFee = domain.DefaultBookingFee
	}
	if b.BanLiftFee == 0 {
		b.BanLiftFee = domain.DefaultBanLiftFee
	}
	if b.WarningHardLimit == 0 {
		b.WarningHardLimit = domain.DefaultWarningHardLimit
	}
	if b.WarningThreshold == 0 {
		b.WarningThreshold = domain.DefaultWarningThreshold
	}
	if b.GroomerDailyLimit == 0 {
		b.GroomerDailyLimit = domain.DefaultGroomerDailyLimit
	}
	if b.SameDayCutoffMinutes == 0 {
		b.SameDayCutoffMinutes = domain.DefaultSameDayCutoffMinutes
	}
	if b.SingleServiceThresholdKg == 0 {
		b.SingleServiceThresholdKg = domain.DefaultSingleServiceThresholdKg
	}
	if b.AssignmentStrategy == "" {
		b.AssignmentStrategy = "least_loaded"
	}
}

// Validate проверяет согласованность значений
func (c *Config) Validate() error {
	b := c.Booking
	switch {
	case b.BookingFee < 0:
		return fmt.Errorf("%w: booking.booking_fee must not be negative", ErrInvalidConfig)
	case b.BanLiftFee < 0:
		return fmt.Errorf("%w: booking.ban_lift_fee must not be negative", ErrInvalidConfig)
	case b.WarningThreshold > b.WarningHardLimit:
		return fmt.Errorf("%w: booking.warning_threshold (%d) exceeds warning_hard_limit (%d)",
			ErrInvalidConfig, b.WarningThreshold, b.WarningHardLimit)
	case b.GroomerDailyLimit < 1:
		return fmt.Errorf("%w: booking.groomer_daily_limit must be positive", ErrInvalidConfig)
	case b.SameDayCutoffMinutes < 0:
		return fmt.Errorf("%w: booking.same_day_cutoff_minutes must not be negative", ErrInvalidConfig)
	case b.AdvanceBookingDays < 0:
		return fmt.Errorf("%w: booking.advance_booking_days must not be negative", ErrInvalidConfig)
	case b.AssignmentStrategy != "least_loaded" && b.AssignmentStrategy != "round_robin":
		return fmt.Errorf("%w: unknown booking.assignment_strategy %q", ErrInvalidConfig, b.AssignmentStrategy)
	}

	if _, err := b.Location(); err != nil {
		return fmt.Errorf("%w: booking.timezone: %v", ErrInvalidConfig, err)
	}
	return nil
}
