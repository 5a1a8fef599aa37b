package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "DB_DSN", "WALK_OPEN_HOUR", "WALK_CLOSE_HOUR", "WALK_DAYS_AHEAD", "PAGE_SIZE", "SHELTER_TZ", "HTTP_READ_TIMEOUT"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 10, cfg.WalkOpenHour)
	assert.Equal(t, 17, cfg.WalkCloseHour)
	assert.Equal(t, 1, cfg.WalkDaysAhead)
	assert.Equal(t, 6, cfg.PageSize)
	assert.Equal(t, 5*time.Second, cfg.ReadTimeout)
	assert.Empty(t, cfg.DatabaseDSN)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("WALK_OPEN_HOUR", "9")
	t.Setenv("WALK_CLOSE_HOUR", "18")
	t.Setenv("SHELTER_TZ", "UTC")
	t.Setenv("PAGE_SIZE", "9")
	t.Setenv("AUTH_INTROSPECT_URL", " https://id.example/introspect ")
	t.Setenv("AUTH_INTROSPECT_TIMEOUT", "2s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 9, cfg.WalkOpenHour)
	assert.Equal(t, 18, cfg.WalkCloseHour)
	assert.Equal(t, time.UTC, cfg.Location)
	assert.Equal(t, 9, cfg.PageSize)
	assert.Equal(t, "https://id.example/introspect", cfg.IntrospectURL)
	assert.Equal(t, 2*time.Second, cfg.IntrospectTimeout)
}

func TestLoad_RejectsInvertedWindow(t *testing.T) {
	t.Setenv("WALK_OPEN_HOUR", "18")
	t.Setenv("WALK_CLOSE_HOUR", "10")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_RejectsBadNumber(t *testing.T) {
	t.Setenv("PAGE_SIZE", "six")

	_, err := Load()
	assert.Error(t, err)
}
