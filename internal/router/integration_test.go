//go:build integration

package router

// End-to-end tests against real PostgreSQL and Redis via testcontainers.
// Run with: go test -tags integration ./internal/router/... -v

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"distrital4/internal/access"
	"distrital4/internal/auth"
	"distrital4/internal/dto"
	"distrital4/internal/infra"
	"distrital4/internal/middleware"
	"distrital4/internal/model"
	"distrital4/internal/repository"
	"distrital4/internal/service"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
	"gorm.io/gorm"
)

type testEnv struct {
	server *httptest.Server
	db     *gorm.DB
	rdb    *redis.Client
	token  string // admin JWT
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func doHTTP(t *testing.T, srv *httptest.Server, method, path string, body *bytes.Buffer, token string) *http.Response {
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

func setupTestEnv(t *testing.T, authLimit int) *testEnv {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcPostgres.WithDatabase("distrital4_test"),
		tcPostgres.WithUsername("distrital4"),
		tcPostgres.WithPassword("distrital4"),
		testcontainers.WithWaitStrategy(
			tcPostgres.BasicWaitStrategies()...,
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	rdC, err := tcRedis.RunContainer(ctx,
		testcontainers.WithImage("redis:7-alpine"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(ctx) })

	rdURL, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)

	cfg := testConfig()
	cfg.DBDriver = "postgres"
	cfg.DatabaseURL = pgURL
	cfg.RedisURL = rdURL
	cfg.DBAlter = true
	cfg.AuthRateLimit = authLimit

	db, err := infra.NewDatabase(cfg)
	require.NoError(t, err)
	rdb, err := infra.NewRedis(ctx, cfg.RedisURL)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdb.Close() })

	svc := service.NewAuthService(
		repository.NewUsuarioRepository(db),
		auth.NewPasswordHasher(cfg.BcryptCost),
		auth.NewSessionIssuer(cfg.JWTSecret, time.Hour),
	)
	created, err := svc.EnsureAdmin(ctx, cfg.AdminDefaultPassword)
	require.NoError(t, err)
	require.True(t, created)

	appCtx, cancel := context.WithCancel(ctx)
	t.Cleanup(cancel)
	srv := httptest.NewServer(New(appCtx, cfg, db, rdb))
	t.Cleanup(srv.Close)

	resp := doHTTP(t, srv, http.MethodPost, "/login",
		jsonBody(t, dto.LoginRequest{Username: "admin", Password: cfg.AdminDefaultPassword}), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var login dto.LoginResponse
	decodeJSON(t, resp, &login)
	require.NotEmpty(t, login.Token)

	return &testEnv{server: srv, db: db, rdb: rdb, token: login.Token}
}

func registerAndLogin(t *testing.T, env *testEnv, username string, role access.Role) string {
	t.Helper()
	resp := doHTTP(t, env.server, http.MethodPost, "/register",
		jsonBody(t, dto.RegisterRequest{Username: username, Password: "pw-" + username, Role: string(role)}), env.token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doHTTP(t, env.server, http.MethodPost, "/login",
		jsonBody(t, dto.LoginRequest{Username: username, Password: "pw-" + username}), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var login dto.LoginResponse
	decodeJSON(t, resp, &login)
	return login.Token
}

func TestIntegration_ScopedVisibility(t *testing.T) {
	env := setupTestEnv(t, 100)

	for _, dep := range []string{access.Comisaria15, access.Comisaria65, access.Comisaria18, access.Comisaria20} {
		resp := doHTTP(t, env.server, http.MethodPost, "/novedades", jsonBody(t, novedadBody(dep)), env.token)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	cases := []struct {
		username string
		role     access.Role
		want     int
	}{
		{"oficial20", access.RoleOficial20, 1},
		{"tunuyan", access.RoleJefTunuyan, 2},
		{"sancarlos", access.RoleJefSanCarlos, 1},
		{"cordon", access.RoleOficialCordon, 0},
		{"general", access.RoleUser, 4},
	}
	for _, tc := range cases {
		t.Run(tc.username, func(t *testing.T) {
			token := registerAndLogin(t, env, tc.username, tc.role)
			resp := doHTTP(t, env.server, http.MethodGet, "/novedades", nil, token)
			require.Equal(t, http.StatusOK, resp.StatusCode)
			var list []dto.NovedadResponse
			decodeJSON(t, resp, &list)
			assert.Len(t, list, tc.want)
			for _, n := range list {
				assert.True(t, access.ScopeFor(tc.role).Allows(n.Dependencia), n.Dependencia)
			}
		})
	}
}

func TestIntegration_NotNullViolationIsValidationError(t *testing.T) {
	env := setupTestEnv(t, 100)

	repo := repository.NewNovedadRepository(env.db.Omit("barrio"))
	n := &model.Novedad{
		FechaDelHecho: "2025-10-14", HoraDelHecho: "22:15", Calle: "San Martin",
		Coordenadas: "-33.57,-69.01", EncuadreLegal: "Robo simple", Dependencia: access.Comisaria15,
	}
	err := repo.Create(context.Background(), n)
	var nn *repository.NotNullError
	require.ErrorAs(t, err, &nn)
	assert.Equal(t, "barrio", nn.Column)
}

func TestIntegration_DuplicateUsername(t *testing.T) {
	env := setupTestEnv(t, 100)

	resp := doHTTP(t, env.server, http.MethodPost, "/register",
		jsonBody(t, dto.RegisterRequest{Username: "admin", Password: "x"}), env.token)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestIntegration_AuthRateLimitSharedInRedis(t *testing.T) {
	env := setupTestEnv(t, 3)

	// setupTestEnv already spent one hit on the admin login.
	for i := 0; i < 2; i++ {
		resp := doHTTP(t, env.server, http.MethodPost, "/login",
			jsonBody(t, dto.LoginRequest{Username: "admin", Password: "mal"}), "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		resp.Body.Close()
	}
	resp := doHTTP(t, env.server, http.MethodPost, "/login",
		jsonBody(t, dto.LoginRequest{Username: "admin", Password: "mal"}), "")
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("Retry-After"))
	resp.Body.Close()

	keys, err := env.rdb.Keys(context.Background(), "distrital4:ratelimit:auth:*").Result()
	require.NoError(t, err)
	assert.NotEmpty(t, keys)
}

func TestIntegration_RedisStoreFixedWindow(t *testing.T) {
	env := setupTestEnv(t, 100)
	ctx := context.Background()
	store := middleware.NewRedisStore(env.rdb, "test:")

	n, end1, err := store.Hit(ctx, "k", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	time.Sleep(50 * time.Millisecond)
	n, end2, err := store.Hit(ctx, "k", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	// The window end does not move with later hits.
	assert.WithinDuration(t, end1, end2, 500*time.Millisecond)

	ttl, err := env.rdb.PTTL(ctx, "test:k").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, 50*time.Second)
}
