//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/langy-backend/internal/adapter/postgres"
	"github.com/heartmarshall/langy-backend/internal/adapter/postgres/card"
	"github.com/heartmarshall/langy-backend/internal/adapter/postgres/testhelper"
	userrepo "github.com/heartmarshall/langy-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/langy-backend/internal/app"
	"github.com/heartmarshall/langy-backend/internal/config"
	"github.com/heartmarshall/langy-backend/internal/transport/middleware"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

func testConfig() *config.Config {
	return &config.Config{
		Database: config.DatabaseConfig{Driver: config.DriverPostgres},
		Auth: config.AuthConfig{
			JWTSecret:        "test-secret-at-least-32-chars-long!!",
			JWTIssuer:        "test-issuer",
			AccessTokenTTL:   15 * time.Minute,
			PasswordHashCost: 4,
		},
		SRS: config.SRSConfig{
			DefaultEaseFactor: 2.5,
			MinEaseFactor:     1.3,
			FirstInterval:     1,
			SecondInterval:    6,
		},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,DELETE,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
			MaxAge:         600,
		},
	}
}

// setupTestServer builds the production handler on top of the shared
// PostgreSQL container.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	store := &app.Store{
		Driver: config.DriverPostgres,
		Cards:  card.New(pool),
		Users:  userrepo.New(pool),
		Tx:     postgres.NewTxManager(pool),
		Ping:   pool.Ping,
		Close:  func() {},
	}

	limiter := middleware.NewRateLimiter(time.Minute)
	t.Cleanup(limiter.Stop)

	srv := httptest.NewServer(app.NewHandler(logger, testConfig(), store, limiter))
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Client: srv.Client(), Pool: pool}
}

// do sends a JSON request and decodes the JSON response into a generic map.
func (ts *testServer) do(t *testing.T, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		require.NoError(t, err)
	}

	req, err := http.NewRequestWithContext(context.Background(), method, ts.URL+path, bytes.NewReader(payload))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	if resp.StatusCode != http.StatusNoContent {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	}
	return resp.StatusCode, out
}

// uniqueUsername returns an alphanumeric username unique across test runs.
func uniqueUsername(prefix string) string {
	return prefix + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}

// signup registers a fresh user and returns its access token.
func signup(t *testing.T, ts *testServer) (token, username string) {
	t.Helper()

	username = uniqueUsername("user")
	status, body := ts.do(t, http.MethodPost, "/auth/signup", "", map[string]string{
		"username": username,
		"password": "e2e-password",
	})
	require.Equal(t, http.StatusCreated, status, body)

	token, ok := body["accessToken"].(string)
	require.True(t, ok, "expected accessToken in signup response")
	return token, username
}

// createCard adds a card and returns its id.
func createCard(t *testing.T, ts *testServer, token, front, back string) string {
	t.Helper()

	status, body := ts.do(t, http.MethodPost, "/cards", token, map[string]string{"front": front, "back": back})
	require.Equal(t, http.StatusCreated, status, body)
	return body["id"].(string)
}
