//go:build integration

package e2e

// e2e_test.go
// End-to-end integration tests using real Postgres + Redis via testcontainers.
// Run with: go test -tags integration ./tests/e2e/... -v
//
// Covered flows:
//   - Full shift cycle (login → create dealer → open session → ledger events →
//     close session → daily report)
//   - Session close requires both reik and jackpot
//   - Role tier enforcement on the reports surface

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/maesedev/dealership-project/internal/config"
	"github.com/maesedev/dealership-project/internal/infra"
	"github.com/maesedev/dealership-project/internal/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
	"golang.org/x/crypto/bcrypt"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func do(t *testing.T, srv *httptest.Server, method, path string, body *bytes.Buffer, token string) *http.Response {
	t.Helper()
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequest(method, srv.URL+path, body)
	} else {
		req, err = http.NewRequest(method, srv.URL+path, nil)
	}
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

// ── Test Suite Setup ─────────────────────────────────────────────────────────

type testEnv struct {
	server *httptest.Server
	token  string // admin JWT
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	// Start Postgres container
	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcPostgres.WithDatabase("dealership_test"),
		tcPostgres.WithUsername("dealership"),
		tcPostgres.WithPassword("dealership"),
		tcPostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	// Start Redis container
	rdC, err := tcRedis.RunContainer(ctx,
		testcontainers.WithImage("redis:7-alpine"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(ctx) })

	rdURL, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)

	cfg := &config.Config{
		Port:               8000,
		Env:                "test",
		JWTSecret:          "test-secret-key",
		TokenExpireMinutes: 30,
		DatabaseURL:        pgURL,
		RedisURL:           rdURL,
		AppName:            "Dealership API",
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	require.NoError(t, err)

	rdb, err := infra.NewRedis(cfg.RedisURL)
	require.NoError(t, err)

	// Seed admin account
	hash, err := bcrypt.GenerateFromPassword([]byte("admin-e2e"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, db.Exec(`INSERT INTO users (name, email, password_hash, roles, is_active)
		VALUES ('Admin E2E', 'admin@e2e.test', ?, ARRAY['ADMIN']::text[], true)
		ON CONFLICT DO NOTHING`, string(hash)).Error)

	r := router.New(cfg, db, rdb)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	loginResp := do(t, srv, "POST", "/api/v1/auth/login",
		jsonBody(t, map[string]string{"email": "admin@e2e.test", "password": "admin-e2e"}),
		"",
	)
	require.Equal(t, http.StatusOK, loginResp.StatusCode)
	var loginBody struct {
		AccessToken string `json:"access_token"`
	}
	decodeJSON(t, loginResp, &loginBody)
	require.NotEmpty(t, loginBody.AccessToken)

	return &testEnv{server: srv, token: loginBody.AccessToken}
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestE2E_FullShiftCycle(t *testing.T) {
	env := setupTestEnv(t)

	// 1. Create a dealer account
	dealerResp := do(t, env.server, "POST", "/api/v1/users",
		jsonBody(t, map[string]any{
			"name":     "Dealer E2E",
			"email":    "dealer@e2e.test",
			"password": "secreto",
			"roles":    []string{"DEALER"},
		}), env.token)
	require.Equal(t, http.StatusCreated, dealerResp.StatusCode)
	var dealer struct {
		ID string `json:"id"`
	}
	decodeJSON(t, dealerResp, &dealer)

	// 2. Create an ad hoc player
	playerResp := do(t, env.server, "POST", "/api/v1/users",
		jsonBody(t, map[string]any{"name": "Jugador E2E"}), env.token)
	require.Equal(t, http.StatusCreated, playerResp.StatusCode)
	var player struct {
		ID string `json:"id"`
	}
	decodeJSON(t, playerResp, &player)

	// 3. Open a session for the dealer
	sessResp := do(t, env.server, "POST", "/api/v1/sessions",
		jsonBody(t, map[string]any{
			"dealer_id":  dealer.ID,
			"hourly_pay": "10000",
		}), env.token)
	require.Equal(t, http.StatusCreated, sessResp.StatusCode)
	var sess struct {
		ID       string `json:"id"`
		IsActive bool   `json:"is_active"`
	}
	decodeJSON(t, sessResp, &sess)
	assert.True(t, sess.IsActive)

	// A second open for the same dealer is rejected
	dupResp := do(t, env.server, "POST", "/api/v1/sessions",
		jsonBody(t, map[string]any{"dealer_id": dealer.ID}), env.token)
	require.Equal(t, http.StatusBadRequest, dupResp.StatusCode)
	dupResp.Body.Close()

	// 4. Record a cash-in and a bono
	txResp := do(t, env.server, "POST", "/api/v1/transactions",
		jsonBody(t, map[string]any{
			"user_id":           player.ID,
			"session_id":        sess.ID,
			"cantidad":          "10000",
			"operation_type":    "CASH IN",
			"transaction_media": "CASH",
		}), env.token)
	require.Equal(t, http.StatusCreated, txResp.StatusCode)
	txResp.Body.Close()

	bonoResp := do(t, env.server, "POST", "/api/v1/bonos",
		jsonBody(t, map[string]any{
			"user_id":    player.ID,
			"session_id": sess.ID,
			"value":      "5000",
		}), env.token)
	require.Equal(t, http.StatusCreated, bonoResp.StatusCode)
	bonoResp.Body.Close()

	// 5. Closing without jackpot is rejected
	badEnd := do(t, env.server, "POST", "/api/v1/sessions/"+sess.ID+"/end",
		jsonBody(t, map[string]any{"reik": "2000"}), env.token)
	require.Equal(t, http.StatusUnprocessableEntity, badEnd.StatusCode)
	badEnd.Body.Close()

	// 6. Close declaring both reik and jackpot
	endResp := do(t, env.server, "POST", "/api/v1/sessions/"+sess.ID+"/end",
		jsonBody(t, map[string]any{"reik": "2000", "jackpot": "0"}), env.token)
	require.Equal(t, http.StatusOK, endResp.StatusCode)
	var ended struct {
		IsActive bool `json:"is_active"`
	}
	decodeJSON(t, endResp, &ended)
	assert.False(t, ended.IsActive)

	// 7. The daily report reflects the shift
	today := time.Now().In(time.FixedZone("America/Bogota", -5*3600)).Format("2006-01-02")
	repResp := do(t, env.server, "GET", "/api/v1/reports/date/"+today, nil, env.token)
	require.Equal(t, http.StatusOK, repResp.StatusCode)
	var report struct {
		Ganancias string   `json:"ganancias"`
		Reik      string   `json:"reik"`
		Sessions  []string `json:"sessions"`
		Bonos     []struct {
			Sum string `json:"sum"`
		} `json:"bonos"`
	}
	decodeJSON(t, repResp, &report)
	assert.Equal(t, "15000", report.Ganancias)
	assert.Equal(t, "2000", report.Reik)
	assert.Contains(t, report.Sessions, sess.ID)
	require.Len(t, report.Bonos, 1)
}

func TestE2E_ReportsRequireManagerTier(t *testing.T) {
	env := setupTestEnv(t)

	// A dealer-tier account must not reach the reports surface.
	resp := do(t, env.server, "POST", "/api/v1/users",
		jsonBody(t, map[string]any{
			"name": "Dealer Raso", "email": "raso@e2e.test",
			"password": "secreto", "roles": []string{"DEALER"},
		}), env.token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	login := do(t, env.server, "POST", "/api/v1/auth/login",
		jsonBody(t, map[string]string{"email": "raso@e2e.test", "password": "secreto"}), "")
	require.Equal(t, http.StatusOK, login.StatusCode)
	var body struct {
		AccessToken string `json:"access_token"`
	}
	decodeJSON(t, login, &body)

	denied := do(t, env.server, "GET", "/api/v1/reports", nil, body.AccessToken)
	require.Equal(t, http.StatusForbidden, denied.StatusCode)
	denied.Body.Close()
}
