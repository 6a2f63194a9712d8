package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dayflow-hr/dayflow-backend-go/internal/config"
	"github.com/dayflow-hr/dayflow-backend-go/internal/fixtures"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/credential"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/firebase"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/jwt"
	"github.com/dayflow-hr/dayflow-backend-go/internal/repository/memory"
	attendanceService "github.com/dayflow-hr/dayflow-backend-go/internal/service/attendance"
	authService "github.com/dayflow-hr/dayflow-backend-go/internal/service/auth"
	dashboardService "github.com/dayflow-hr/dayflow-backend-go/internal/service/dashboard"
	employeeService "github.com/dayflow-hr/dayflow-backend-go/internal/service/employee"
	leaveService "github.com/dayflow-hr/dayflow-backend-go/internal/service/leave"
	payrollService "github.com/dayflow-hr/dayflow-backend-go/internal/service/payroll"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	handlerTestAccessExp = "1h"
	handlerTestSecret    = "test-secret-key-for-jwt"
	handlerTestPassword  = "password123"
)

// fakeVerifier accepts exactly one token.
type fakeVerifier struct {
	token    string
	identity firebase.Identity
}

func (f fakeVerifier) VerifyIDToken(ctx context.Context, idToken string) (*firebase.Identity, error) {
	if idToken != f.token {
		return nil, errors.New("token rejected")
	}
	identity := f.identity
	return &identity, nil
}

func newTestConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name:               "dayflow-test",
			Version:            "test",
			Env:                "test",
			LogLevel:           "error",
			CORSAllowedOrigins: []string{"http://localhost:3000"},
		},
		JWT:       config.JWTConfig{Secret: handlerTestSecret, AccessExpiration: handlerTestAccessExp},
		Seed:      config.SeedConfig{Password: handlerTestPassword, BcryptCost: bcrypt.MinCost},
		RateLimit: config.RateLimitConfig{LoginPerSecond: 100, LoginBurst: 100},
	}
}

func newTestRouter(t *testing.T, cfg *config.Config) *chi.Mux {
	t.Helper()

	seed, err := fixtures.Load(cfg.Seed.Password, cfg.Seed.BcryptCost)
	require.NoError(t, err)

	userRepo := memory.NewUserRepository(seed.Users...)
	leaveRepo := memory.NewLeaveRequestRepository(seed.LeaveRequests...)
	attendanceRepo := memory.NewAttendanceRepository(seed.Attendance...)
	payrollRepo := memory.NewPayrollRepository(seed.Payroll...)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	authSvc := authService.NewAuthService(userRepo, jwtService, credential.NewGenerator(), cfg.Seed.BcryptCost)

	handlers := Handlers{
		Auth:       NewAuthHandler(authSvc),
		Leave:      NewLeaveHandler(leaveService.NewLeaveService(leaveRepo)),
		Attendance: NewAttendanceHandler(attendanceService.NewAttendanceService(attendanceRepo, userRepo)),
		Payroll:    NewPayrollHandler(payrollService.NewPayrollService(payrollRepo, userRepo)),
		Employee:   NewEmployeeHandler(employeeService.NewEmployeeService(userRepo)),
		Dashboard:  NewDashboardHandler(dashboardService.NewDashboardService(userRepo, leaveRepo, attendanceRepo)),
		Profile:    NewProfileHandler(),
	}

	verifier := fakeVerifier{
		token:    "valid-firebase-token",
		identity: firebase.Identity{UID: "firebase-uid-1", Email: "john.doe@dayflow.com"},
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return NewRouter(cfg, logger, jwtService, authSvc, verifier, handlers)
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func doRequest(t *testing.T, router http.Handler, method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	_ = json.Unmarshal(rec.Body.Bytes(), &env)
	return rec, env
}

func login(t *testing.T, router http.Handler, identifier string) string {
	t.Helper()
	rec, env := doRequest(t, router, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"identifier": identifier,
		"password":   handlerTestPassword,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var data struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.AccessToken)
	return data.AccessToken
}

func TestLoginHandler(t *testing.T) {
	router := newTestRouter(t, newTestConfig())

	t.Run("by email", func(t *testing.T) {
		token := login(t, router, "john.doe@dayflow.com")
		rec, env := doRequest(t, router, http.MethodGet, "/api/v1/auth/me", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var me map[string]interface{}
		require.NoError(t, json.Unmarshal(env.Data, &me))
		assert.Equal(t, "EMP001", me["employee_id"])
		assert.Equal(t, "2023-01-15", me["join_date"])
	})

	t.Run("by employee id", func(t *testing.T) {
		login(t, router, "EMP002")
	})

	t.Run("wrong password", func(t *testing.T) {
		rec, env := doRequest(t, router, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
			"identifier": "EMP001",
			"password":   "wrong-password",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "UNAUTHORIZED", env.Error.Code)
	})

	t.Run("short password", func(t *testing.T) {
		rec, _ := doRequest(t, router, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
			"identifier": "EMP001",
			"password":   "123",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("missing fields", func(t *testing.T) {
		rec, env := doRequest(t, router, http.MethodPost, "/api/v1/auth/login", "", map[string]string{})
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		require.NotNil(t, env.Error)
		assert.Contains(t, env.Error.Details, "identifier")
		assert.Contains(t, env.Error.Details, "password")
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLoginHandler_RateLimited(t *testing.T) {
	cfg := newTestConfig()
	cfg.RateLimit = config.RateLimitConfig{LoginPerSecond: 0.001, LoginBurst: 2}
	router := newTestRouter(t, cfg)

	body := map[string]string{"identifier": "EMP001", "password": "wrong-password"}
	for i := 0; i < 2; i++ {
		rec, _ := doRequest(t, router, http.MethodPost, "/api/v1/auth/login", "", body)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	}
	rec, env := doRequest(t, router, http.MethodPost, "/api/v1/auth/login", "", body)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "TOO_MANY_REQUESTS", env.Error.Code)
}

func TestSignupHandler(t *testing.T) {
	router := newTestRouter(t, newTestConfig())

	employee := map[string]string{
		"company_name": "Odoo India",
		"email":        "new.hire@dayflow.com",
		"name":         "New Hire",
		"role":         "employee",
	}

	t.Run("employee self registration blocked", func(t *testing.T) {
		rec, env := doRequest(t, router, http.MethodPost, "/api/v1/auth/signup", "", employee)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		require.NotNil(t, env.Error)
		assert.Contains(t, env.Error.Message, "cannot self-register")
	})

	t.Run("employee session cannot register employees", func(t *testing.T) {
		token := login(t, router, "EMP001")
		rec, _ := doRequest(t, router, http.MethodPost, "/api/v1/auth/signup", token, employee)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin registers employee", func(t *testing.T) {
		token := login(t, router, "sarah.admin@dayflow.com")
		rec, env := doRequest(t, router, http.MethodPost, "/api/v1/auth/signup", token, employee)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var data struct {
			Credentials struct {
				LoginID      string `json:"login_id"`
				TempPassword string `json:"temp_password"`
			} `json:"credentials"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Regexp(t, `^OINEHI\d{4}0005$`, data.Credentials.LoginID)
		assert.Regexp(t, `^Pass@\d{4}$`, data.Credentials.TempPassword)

		// The new employee can sign in with the issued credentials.
		rec, _ = doRequest(t, router, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
			"identifier": data.Credentials.LoginID,
			"password":   data.Credentials.TempPassword,
		})
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("duplicate email", func(t *testing.T) {
		rec, _ := doRequest(t, router, http.MethodPost, "/api/v1/auth/signup", "", map[string]string{
			"company_name": "Odoo India",
			"email":        "john.doe@dayflow.com",
			"name":         "John Again",
			"role":         "admin",
		})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("invalid token rejected", func(t *testing.T) {
		rec, _ := doRequest(t, router, http.MethodPost, "/api/v1/auth/signup", "not-a-token", employee)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestLogoutHandler(t *testing.T) {
	router := newTestRouter(t, newTestConfig())
	token := login(t, router, "EMP001")

	rec, _ := doRequest(t, router, http.MethodPost, "/api/v1/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, env := doRequest(t, router, http.MethodGet, "/api/v1/auth/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "Token revoked", env.Error.Message)
}

func TestAuthRequired(t *testing.T) {
	router := newTestRouter(t, newTestConfig())

	rec, _ := doRequest(t, router, http.MethodGet, "/api/v1/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = doRequest(t, router, http.MethodGet, "/api/v1/dashboard", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	other := jwt.NewJWTService("another-secret", handlerTestAccessExp)
	forged, _, err := other.GenerateAccessToken("2", "EMP002", "admin")
	require.NoError(t, err)
	rec, _ = doRequest(t, router, http.MethodGet, "/api/v1/dashboard", forged, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHeartbeat(t *testing.T) {
	router := newTestRouter(t, newTestConfig())
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
