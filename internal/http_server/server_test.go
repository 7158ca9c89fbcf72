package http_server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/half-nothing/airport-booking/internal/database"
	. "github.com/half-nothing/airport-booking/internal/interfaces"
	c "github.com/half-nothing/airport-booking/internal/interfaces/config"
	"github.com/half-nothing/airport-booking/internal/interfaces/global"
	"github.com/half-nothing/airport-booking/internal/interfaces/log"
	"github.com/half-nothing/airport-booking/internal/interfaces/operation"
	"github.com/half-nothing/airport-booking/internal/interfaces/service"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
)

type staticConfigManager struct {
	config *c.Config
}

func (manager *staticConfigManager) Config() *c.Config { return manager.config }

func (manager *staticConfigManager) SaveConfig() error { return nil }

type collectingCleaner struct {
	callables []global.Callable
}

func (cleaner *collectingCleaner) Init() {}

func (cleaner *collectingCleaner) Add(callable global.Callable) {
	cleaner.callables = append(cleaner.callables, callable)
}

func (cleaner *collectingCleaner) Clean() {
	for i := len(cleaner.callables) - 1; i >= 0; i-- {
		_ = cleaner.callables[i].Invoke(context.Background())
	}
}

type nopCache struct{}

func (nopCache) GetFlightPage(string) (*service.PageResponse[service.FlightListItem], int64, bool) {
	return nil, service.UnknownGeneration, false
}

func (nopCache) SetFlightPage(string, int64, *service.PageResponse[service.FlightListItem]) {}

func (nopCache) Invalidate() {}

type nopPublisher struct{}

func (nopPublisher) Publish(string, string, interface{}) {}

func (nopPublisher) ShutdownCallback() global.Callable {
	return global.CallableFunc(func(context.Context) error { return nil })
}

type idleSweeper struct{}

func (idleSweeper) Sweep() ([]uint, time.Time, error) { return []uint{}, time.Now().UTC(), nil }

type testServer struct {
	e          *echo.Echo
	config     *c.Config
	operations *operation.DatabaseOperations
}

func newTestServer(t *testing.T, rateLimit int) *testServer {
	t.Helper()
	config := c.DefaultConfig()
	httpConfig := config.Server.HttpServer
	httpConfig.JWT.Secret = "http-test-secret"
	httpConfig.JWT.ExpiresDuration = 15 * time.Minute
	httpConfig.JWT.RefreshDuration = time.Hour
	httpConfig.Limits.RateLimit = rateLimit
	httpConfig.Limits.RateLimitDuration = time.Minute
	httpConfig.Store.LocalStorePath = t.TempDir()
	config.Server.General.BcryptCost = bcrypt.MinCost

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := database.OpenDatabase(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)), false, false)
	require.NoError(t, err)
	pool, err := db.DB()
	require.NoError(t, err)
	pool.SetMaxOpenConns(1)
	operations := database.NewOperations(db, 5*time.Second, config.Server.General)

	cleaner := &collectingCleaner{}
	t.Cleanup(func() {
		cleaner.Clean()
		_ = pool.Close()
	})
	app := NewApplicationContent(&staticConfigManager{config: config}, cleaner, log.NewNullLogger(), operations, nopCache{}, nopPublisher{})
	return &testServer{e: NewHttpServer(app, idleSweeper{}), config: config, operations: operations}
}

type envelope struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (server *testServer) do(t *testing.T, method, path, token, body string) (int, *envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	server.e.ServeHTTP(rec, req)
	result := &envelope{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), result), rec.Body.String())
	return rec.Code, result
}

func (server *testServer) token(t *testing.T, email string, staff bool, refresh bool) string {
	t.Helper()
	users := server.operations.UserOperation()
	user, err := users.NewUser(email, "secret123", staff)
	require.NoError(t, err)
	require.NoError(t, users.AddUser(user))
	return service.NewClaims(server.config.Server.HttpServer.JWT, user, refresh).GenerateKey()
}

func TestHttpServerAnonymousAccess(t *testing.T) {
	server := newTestServer(t, 1000)

	code, body := server.do(t, http.MethodGet, "/api/flights", "", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "GET_FLIGHTS", body.Code)

	code, _ = server.do(t, http.MethodGet, "/api/flights/", "", "")
	assert.Equal(t, http.StatusOK, code)

	code, body = server.do(t, http.MethodGet, "/api/countries", "", "")
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, service.ErrNotAuthenticated.StatusName, body.Code)
}

func TestHttpServerRejectsBadTokens(t *testing.T) {
	server := newTestServer(t, 1000)

	code, body := server.do(t, http.MethodGet, "/api/flights", "not-a-token", "")
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, service.ErrInvalidOrExpiredJwt.StatusName, body.Code)

	refresh := server.token(t, "refresh@example.com", false, true)
	code, body = server.do(t, http.MethodGet, "/api/countries", refresh, "")
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, service.ErrInvalidOrExpiredJwt.StatusName, body.Code)
}

func TestHttpServerRolePolicies(t *testing.T) {
	server := newTestServer(t, 1000)
	passenger := server.token(t, "passenger@example.com", false, false)
	admin := server.token(t, "admin@example.com", true, false)
	country := `{"name":"Poland","code":"POL"}`

	code, body := server.do(t, http.MethodPost, "/api/countries", passenger, country)
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, service.ErrNoPermission.StatusName, body.Code)

	code, body = server.do(t, http.MethodPost, "/api/countries", admin, country)
	require.Equal(t, http.StatusCreated, code, body.Message)
	created := &service.CountryModel{}
	require.NoError(t, json.Unmarshal(body.Data, created))

	code, body = server.do(t, http.MethodPatch, fmt.Sprintf("/api/countries/%d", created.Id), admin, `{"name":"Polska"}`)
	require.Equal(t, http.StatusOK, code, body.Message)

	code, _ = server.do(t, http.MethodGet, fmt.Sprintf("/api/countries/%d", created.Id), passenger, "")
	assert.Equal(t, http.StatusOK, code)

	code, _ = server.do(t, http.MethodGet, "/api/crew", passenger, "")
	assert.Equal(t, http.StatusForbidden, code)

	code, body = server.do(t, http.MethodGet, "/api/audits", admin, "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "GET_AUDIT_LOG", body.Code)

	code, _ = server.do(t, http.MethodPost, "/api/maintenance/deactivate-flights", passenger, "")
	assert.Equal(t, http.StatusForbidden, code)
	code, _ = server.do(t, http.MethodPost, "/api/maintenance/deactivate-flights", admin, "")
	assert.Equal(t, http.StatusOK, code)
}

func TestHttpServerUserFlow(t *testing.T) {
	server := newTestServer(t, 1000)

	code, body := server.do(t, http.MethodPost, "/api/user/register", "", `{"email":"new@example.com","password":"secret123"}`)
	require.Equal(t, http.StatusCreated, code, body.Message)

	code, body = server.do(t, http.MethodPost, "/api/user/token", "", `{"email":"new@example.com","password":"secret123"}`)
	require.Equal(t, http.StatusOK, code, body.Message)
	login := &service.ResponseUserLogin{}
	require.NoError(t, json.Unmarshal(body.Data, login))

	code, body = server.do(t, http.MethodGet, "/api/user/me", login.Access, "")
	require.Equal(t, http.StatusOK, code)
	me := &service.UserModel{}
	require.NoError(t, json.Unmarshal(body.Data, me))
	assert.Equal(t, "new@example.com", me.Email)

	code, _ = server.do(t, http.MethodPost, "/api/user/token/refresh", "", fmt.Sprintf(`{"refresh":%q}`, login.Refresh))
	assert.Equal(t, http.StatusOK, code)

	code, _ = server.do(t, http.MethodPost, "/api/user/token", "", `{"email":"new@example.com","password":"wrong-one"}`)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestHttpServerRateLimit(t *testing.T) {
	server := newTestServer(t, 2)

	for i := 0; i < 2; i++ {
		code, _ := server.do(t, http.MethodGet, "/api/flights", "", "")
		require.Equal(t, http.StatusOK, code)
	}
	code, body := server.do(t, http.MethodGet, "/api/flights", "", "")
	assert.Equal(t, http.StatusTooManyRequests, code)
	assert.Equal(t, service.ErrRateLimited.StatusName, body.Code)

	// buckets are per path
	code, _ = server.do(t, http.MethodGet, "/api/countries", "", "")
	assert.Equal(t, http.StatusUnauthorized, code)
}
