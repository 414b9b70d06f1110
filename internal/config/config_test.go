package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse(`
[database]
host = "localhost"
user = "groomer"
dbname = "bookings"
`)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, 100.0, cfg.Booking.BookingFee)
	assert.Equal(t, 500.0, cfg.Booking.BanLiftFee)
	assert.Equal(t, 5, cfg.Booking.WarningHardLimit)
	assert.Equal(t, 3, cfg.Booking.WarningThreshold)
	assert.Equal(t, 3, cfg.Booking.GroomerDailyLimit)
	assert.Equal(t, 30, cfg.Booking.SameDayCutoffMinutes)
	assert.Equal(t, "least_loaded", cfg.Booking.AssignmentStrategy)
	assert.False(t, cfg.Redis.Enabled())
	assert.Equal(t, "host=localhost port=5432 user=groomer password= dbname=bookings sslmode=disable", cfg.Database.DSN())
}

func TestParse_Overrides(t *testing.T) {
	cfg, err := Parse(`
[redis]
address = "127.0.0.1:6379"
cache_ttl_seconds = 60

[booking]
booking_fee = 150
groomer_daily_limit = 4
strict_weight = true
assignment_strategy = "round_robin"
timezone = "UTC"
`)
	require.NoError(t, err)

	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, int64(60), int64(cfg.Redis.CacheTTL().Seconds()))
	assert.Equal(t, 150.0, cfg.Booking.BookingFee)
	assert.Equal(t, 4, cfg.Booking.GroomerDailyLimit)
	assert.True(t, cfg.Booking.StrictWeight)
	assert.Equal(t, "round_robin", cfg.Booking.AssignmentStrategy)
}

func TestParse_Invalid(t *testing.T) {
	tests := map[string]string{
		"unknown strategy":    "[booking]\nassignment_strategy = \"random\"",
		"threshold above cap": "[booking]\nwarning_threshold = 6\nwarning_hard_limit = 5",
		"negative fee":        "[booking]\nbooking_fee = -1",
		"bad timezone":        "[booking]\ntimezone = \"Mars/Olympus\"",
	}

	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(data)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_ExpandsEnv(t *testing.T) {
	t.Setenv("GROOMING_DB_PASSWORD", "s3cret")
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[database]\npassword = \"${GROOMING_DB_PASSWORD}\"\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "s3cret", cfg.Database.Password)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
