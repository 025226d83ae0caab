package logger_test

import (
	"net/http/httptest"
	"testing"

	"greeting-server/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     logger.Config
		wantErr bool
		enabled zapcore.Level
	}{
		{"DebugConsole", logger.Config{Level: "debug", Format: "console"}, false, zapcore.DebugLevel},
		{"InfoJSON", logger.Config{Level: "info", Format: "json"}, false, zapcore.InfoLevel},
		{"WarnDefaults", logger.Config{Level: "warn"}, false, zapcore.WarnLevel},
		{"InvalidLevel", logger.Config{Level: "loud", Format: "console"}, true, 0},
		{"InvalidFormat", logger.Config{Level: "info", Format: "xml"}, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := logger.New(&tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, l)
				return
			}
			require.NoError(t, err)
			assert.True(t, l.Core().Enabled(tt.enabled))
			assert.False(t, l.Core().Enabled(tt.enabled-1))
		})
	}
}

func TestWithRayID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	base := zap.New(core)

	app := fiber.New()
	app.Get("/with", func(c *fiber.Ctx) error {
		c.Locals(logger.RayIDKey, "abc-123")
		logger.WithRayID(base, c).Info("tagged")
		return nil
	})
	app.Get("/without", func(c *fiber.Ctx) error {
		logger.WithRayID(base, c).Info("untagged")
		return nil
	})

	_, err := app.Test(httptest.NewRequest("GET", "/with", nil))
	require.NoError(t, err)
	_, err = app.Test(httptest.NewRequest("GET", "/without", nil))
	require.NoError(t, err)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "abc-123", entries[0].ContextMap()[logger.RayIDKey])
	assert.NotContains(t, entries[1].ContextMap(), logger.RayIDKey)
}
