package middlewares

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doRequest(app *fiber.App, method, path string, headers map[string]string) (*http.Response, []byte, error) {
	req := httptest.NewRequest(method, path, nil)
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := app.Test(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, err
	}
	return resp, rawBody, nil
}

type fixedGenerator struct {
	id  string
	err error
}

func (g fixedGenerator) Generate(context.Context) (string, error) {
	return g.id, g.err
}

func TestNewHTTPRequestIDMiddleware_TableDriven(t *testing.T) {
	tests := []struct {
		name      string
		generator fixedGenerator
		incoming  string
		assertion func(*testing.T, string)
	}{
		{
			name:      "uses generator",
			generator: fixedGenerator{id: "0196a4d2-7c1e-7000-8000-000000000001"},
			assertion: func(t *testing.T, id string) {
				assert.Equal(t, "0196a4d2-7c1e-7000-8000-000000000001", id)
			},
		},
		{
			name:      "falls back to uuid when generator fails",
			generator: fixedGenerator{err: errors.New("clock moved backwards")},
			assertion: func(t *testing.T, id string) {
				assert.Len(t, id, 36)
			},
		},
		{
			name:      "keeps incoming id",
			generator: fixedGenerator{id: "generated"},
			incoming:  "from-gateway",
			assertion: func(t *testing.T, id string) {
				assert.Equal(t, "from-gateway", id)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Use(NewHTTPRequestIDMiddleware(tc.generator))
			app.Get("/", func(c fiber.Ctx) error {
				return c.SendString(RequestIDFromContext(c))
			})

			headers := map[string]string{}
			if tc.incoming != "" {
				headers[RequestIDHeader] = tc.incoming
			}

			resp, body, err := doRequest(app, fiber.MethodGet, "/", headers)
			require.NoError(t, err)
			assert.Equal(t, resp.Header.Get(RequestIDHeader), string(body))
			tc.assertion(t, string(body))
		})
	}
}

func TestNewHTTPRecoveryMiddleware_LogsPanic(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))

	app := fiber.New()
	app.Use(NewHTTPRecoveryMiddleware(logger))
	app.Get("/boom", func(c fiber.Ctx) error {
		panic("nil bitmap")
	})

	resp, _, err := doRequest(app, fiber.MethodGet, "/boom", nil)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, logs.String(), "http handler panicked")
	assert.Contains(t, logs.String(), "nil bitmap")
}

func TestNewHTTPCORSMiddleware_TableDriven(t *testing.T) {
	tests := []struct {
		name    string
		allowed []string
		origin  string
		want    string
	}{
		{name: "any origin by default", origin: "https://gallery.example", want: "*"},
		{name: "listed origin", allowed: []string{"https://gallery.example"}, origin: "https://gallery.example", want: "https://gallery.example"},
		{name: "unlisted origin", allowed: []string{"https://gallery.example"}, origin: "https://evil.example", want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Use(NewHTTPCORSMiddleware(tc.allowed))
			app.Get("/thumb", func(c fiber.Ctx) error {
				return c.SendStatus(fiber.StatusOK)
			})

			resp, _, err := doRequest(app, fiber.MethodGet, "/thumb", map[string]string{fiber.HeaderOrigin: tc.origin})
			require.NoError(t, err)
			assert.Equal(t, tc.want, resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
		})
	}
}

func TestNewHTTPRequestResponseLogMiddleware_TableDriven(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{name: "success is info", status: fiber.StatusOK, wantLevel: "INFO"},
		{name: "client error is warn", status: fiber.StatusConflict, wantLevel: "WARN"},
		{name: "server error is error", status: fiber.StatusBadGateway, wantLevel: "ERROR"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var logs bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&logs, nil))

			app := fiber.New()
			app.Use(NewHTTPRequestIDMiddleware(fixedGenerator{id: "req-1"}))
			app.Use(NewHTTPRequestResponseLogMiddleware(logger))
			app.Get("/thumb", func(c fiber.Ctx) error {
				c.Set(SessionIDHeader, "session-1")
				return c.SendStatus(tc.status)
			})

			_, _, err := doRequest(app, fiber.MethodGet, "/thumb?consumer_id=row7", nil)
			require.NoError(t, err)

			line := strings.TrimSpace(logs.String())
			entry := map[string]any{}
			require.NoError(t, json.Unmarshal([]byte(line), &entry))

			assert.Equal(t, tc.wantLevel, entry["level"])
			assert.Equal(t, "http_request", entry["msg"])
			assert.Equal(t, "req-1", entry["request_id"])
			assert.Equal(t, "row7", entry["consumer_id"])
			assert.Equal(t, "session-1", entry["session_id"])
			assert.Equal(t, float64(tc.status), entry["status"])
		})
	}
}
