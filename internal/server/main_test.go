package server

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"postboard/internal/config"
	"postboard/internal/database"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testConfig() *config.Config {
	return &config.Config{
		Port:            "3000",
		Env:             "test",
		AllowedOrigins:  "*",
		DBDriver:        config.DriverSQLite,
		DBDSN:           ":memory:",
		RateLimitSignup: 20,
		RateLimitPosts:  60,
	}
}

// newTestApp wires the full app over a fresh in-memory store.
func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	cfg := testConfig()

	db, err := database.Connect(cfg)
	require.NoError(t, err)
	require.NoError(t, database.ApplySchema(context.Background(), db))

	srv, err := NewServerWithDeps(cfg, db, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = srv.Shutdown(context.Background()) })

	return NewApp(srv), db
}

// doRequest sends body as JSON (when non-empty) and returns status and body.
func doRequest(t *testing.T, app *fiber.App, method, path, body string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(raw)
}
