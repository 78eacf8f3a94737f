package http_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/fiscal-api/internal/interfaces/http"
	"github.com/jhoicas/fiscal-api/pkg/logger"
)

func logEntries(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	sc := bufio.NewScanner(buf)
	for sc.Scan() {
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(sc.Bytes(), &entry), sc.Text())
		out = append(out, entry)
	}
	return out
}

func TestRequestLogger_SubloggerConRequestID(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "info", Output: &buf})

	app := fiber.New()
	app.Use(apphttp.RequestLogger(log))
	app.Get("/ping", func(c *fiber.Ctx) error { return c.SendString("pong") })

	req, err := http.NewRequest(http.MethodGet, "/ping", nil)
	require.NoError(t, err)
	req.Header.Set(apphttp.HeaderRequestID, "req-123")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "req-123", resp.Header.Get(apphttp.HeaderRequestID))

	entries := logEntries(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "req-123", entries[0]["request_id"])
	assert.Equal(t, "/ping", entries[0]["path"])
	assert.Equal(t, float64(fiber.StatusOK), entries[0]["status"])
	assert.Equal(t, "http request", entries[0]["message"])
}

// Los errores internos se registran con el request_id de la petición.
func TestRequestLogger_ErrorInternoLlevaRequestID(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "info", Output: &buf})

	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler(log)})
	app.Use(apphttp.RequestLogger(log))
	app.Get("/falla", func(c *fiber.Ctx) error { return assert.AnError })

	req, err := http.NewRequest(http.MethodGet, "/falla", nil)
	require.NoError(t, err)
	req.Header.Set(apphttp.HeaderRequestID, "req-500")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	entries := logEntries(t, &buf)
	require.NotEmpty(t, entries)
	for _, e := range entries {
		assert.Equal(t, "req-500", e["request_id"], e["message"])
	}
}
