package http_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/clientes-api/internal/interfaces/http"
	"github.com/jhoicas/clientes-api/pkg/logger"
)

func newLoggedApp(buf *bytes.Buffer) *fiber.App {
	app := fiber.New()
	app.Use(requestid.New(requestid.Config{Generator: func() string { return "req-1" }}))
	app.Use(apphttp.RequestLogger(logger.NewWithWriter(buf, "info")))
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/falta", func(c *fiber.Ctx) error { return fiber.ErrNotFound })
	app.Get("/falla", func(c *fiber.Ctx) error { return errors.New("boom") })
	return app
}

func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.NotEmpty(t, lines)
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &entry))
	return entry
}

func TestRequestLogger(t *testing.T) {
	tests := []struct {
		path   string
		status float64
		level  string
	}{
		{"/ok", 200, "info"},
		{"/falta", 404, "info"},
		{"/falla", 500, "error"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			var buf bytes.Buffer
			app := newLoggedApp(&buf)

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, tt.path, nil), -1)
			require.NoError(t, err)
			_ = resp.Body.Close()

			entry := lastEntry(t, &buf)
			assert.Equal(t, "req-1", entry["request_id"])
			assert.Equal(t, http.MethodGet, entry["method"])
			assert.Equal(t, tt.path, entry["path"])
			assert.Equal(t, tt.status, entry["status"])
			assert.Equal(t, tt.level, entry["level"])
			assert.Equal(t, "http", entry["message"])
		})
	}
}
