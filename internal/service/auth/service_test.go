package auth

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/auth"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/user"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/credential"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/jwt"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/validator"
	"github.com/dayflow-hr/dayflow-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testAccessExp = "1h"
	testSecret    = "test-secret-key-for-jwt"
	testPassword  = "123456"
)

func newTestUser(t *testing.T, id, employeeID, email string, role user.Role) user.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	return user.User{
		ID:           id,
		EmployeeID:   employeeID,
		Email:        email,
		Name:         "Test " + employeeID,
		Role:         role,
		PasswordHash: string(hash),
	}
}

func newTestAuthService(t *testing.T) (*AuthServiceImpl, user.UserRepository) {
	t.Helper()
	repo := memory.NewUserRepository(
		newTestUser(t, "1", "E1", "a@b.com", user.RoleEmployee),
		newTestUser(t, "2", "ADM1", "admin@b.com", user.RoleAdmin),
	)
	generator := &credential.Generator{
		Now:  func() time.Time { return time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC) },
		Rand: func(n int) int { return 0 },
	}
	svc := NewAuthService(repo, jwt.NewJWTService(testSecret, testAccessExp), generator, bcrypt.MinCost)
	return svc.(*AuthServiceImpl), repo
}

func TestLogin(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	t.Run("employee id with valid password", func(t *testing.T) {
		session := auth.NewSession()
		resp, err := svc.Login(ctx, session, auth.LoginRequest{Identifier: "E1", Password: testPassword})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.Equal(t, "E1", resp.User.EmployeeID)
		require.True(t, session.IsAuthenticated())
		assert.Equal(t, "1", session.User().ID)
	})

	t.Run("email identifier", func(t *testing.T) {
		session := auth.NewSession()
		_, err := svc.Login(ctx, session, auth.LoginRequest{Identifier: "a@b.com", Password: testPassword})
		require.NoError(t, err)
		assert.True(t, session.IsAuthenticated())
	})

	failures := []struct {
		name       string
		identifier string
		password   string
	}{
		{"password too short", "E1", "123"},
		{"unknown identifier", "nope", testPassword},
		{"wrong password", "E1", "654321"},
	}
	for _, tt := range failures {
		t.Run(tt.name, func(t *testing.T) {
			session := auth.NewSession()
			_, err := svc.Login(ctx, session, auth.LoginRequest{Identifier: tt.identifier, Password: tt.password})
			assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
			assert.False(t, session.IsAuthenticated())
		})
	}

	t.Run("failed login keeps previous user", func(t *testing.T) {
		session := auth.NewSession()
		_, err := svc.Login(ctx, session, auth.LoginRequest{Identifier: "E1", Password: testPassword})
		require.NoError(t, err)

		_, err = svc.Login(ctx, session, auth.LoginRequest{Identifier: "ADM1", Password: "wrong-password"})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
		assert.Equal(t, "E1", session.User().EmployeeID)
	})

	t.Run("empty fields fail validation", func(t *testing.T) {
		_, err := svc.Login(ctx, auth.NewSession(), auth.LoginRequest{})
		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Len(t, verrs, 2)
	})
}

func TestSignup_Policy(t *testing.T) {
	svc, repo := newTestAuthService(t)
	ctx := context.Background()

	employeeReq := auth.SignupRequest{CompanyName: "Odoo India", Email: "john@odoo.com", Name: "John Doe", Role: "employee"}
	adminReq := auth.SignupRequest{CompanyName: "Odoo India", Email: "boss@odoo.com", Name: "Jane Roe", Role: "admin"}

	t.Run("employee without session", func(t *testing.T) {
		_, err := svc.Signup(ctx, auth.NewSession(), employeeReq)
		assert.ErrorIs(t, err, user.ErrSelfRegistrationNotAllowed)
		count, _ := repo.Count(ctx)
		assert.Equal(t, 2, count)
	})

	t.Run("employee with employee session", func(t *testing.T) {
		employee, err := repo.GetByEmployeeID(ctx, "E1")
		require.NoError(t, err)
		_, err = svc.Signup(ctx, auth.NewSessionFor(employee), employeeReq)
		assert.ErrorIs(t, err, user.ErrSelfRegistrationNotAllowed)
	})

	t.Run("admin without session", func(t *testing.T) {
		resp, err := svc.Signup(ctx, auth.NewSession(), adminReq)
		require.NoError(t, err)
		assert.Equal(t, "OIJARO20260003", resp.Credentials.LoginID)
		assert.Equal(t, "Pass@1000", resp.Credentials.TempPassword)
		assert.Equal(t, "admin", resp.User.Role)
		assert.Equal(t, "System Admin", resp.User.Designation)
		assert.Equal(t, user.DefaultDepartment, resp.User.Department)
	})

	t.Run("employee with admin session", func(t *testing.T) {
		admin, err := repo.GetByEmployeeID(ctx, "ADM1")
		require.NoError(t, err)
		session := auth.NewSessionFor(admin)

		resp, err := svc.Signup(ctx, session, employeeReq)
		require.NoError(t, err)
		assert.Equal(t, "OIJODO20260004", resp.Credentials.LoginID)
		assert.Equal(t, "Employee", resp.User.Designation)
		// Signup never switches the caller's session.
		assert.Equal(t, "ADM1", session.User().EmployeeID)
	})
}

func TestSignup_TempPasswordLogsIn(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	resp, err := svc.Signup(ctx, auth.NewSession(), auth.SignupRequest{CompanyName: "Acme", Email: "x@acme.com", Name: "Ann Lee", Role: "admin"})
	require.NoError(t, err)

	session := auth.NewSession()
	_, err = svc.Login(ctx, session, auth.LoginRequest{Identifier: resp.Credentials.LoginID, Password: resp.Credentials.TempPassword})
	require.NoError(t, err)
	assert.Equal(t, resp.Credentials.LoginID, session.User().EmployeeID)
}

func TestSignup_ValidationAndDuplicates(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, auth.NewSession(), auth.SignupRequest{Role: "manager"})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)

	_, err = svc.Signup(ctx, auth.NewSession(), auth.SignupRequest{CompanyName: "Acme", Email: "a@b.com", Name: "Dup Email", Role: "admin"})
	assert.ErrorIs(t, err, user.ErrUserEmailExists)
}

func TestSignup_ConcurrentEmployeeIDsStayUnique(t *testing.T) {
	svc, repo := newTestAuthService(t)
	ctx := context.Background()

	const n = 25
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := svc.Signup(ctx, auth.NewSession(), auth.SignupRequest{
				CompanyName: "Odoo India",
				Email:       "admin" + string(rune('a'+i)) + "@odoo.com",
				Name:        "John Doe",
				Role:        "admin",
			})
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	users, err := repo.List(ctx, user.UserFilter{})
	require.NoError(t, err)
	assert.Len(t, users, n+2)
	seen := map[string]bool{}
	for _, u := range users {
		assert.False(t, seen[u.EmployeeID], "duplicate employee id %s", u.EmployeeID)
		seen[u.EmployeeID] = true
	}
}

func TestLogout(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	session := auth.NewSession()
	resp, err := svc.Login(ctx, session, auth.LoginRequest{Identifier: "E1", Password: testPassword})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, session, resp.AccessToken))
	assert.False(t, session.IsAuthenticated())
	assert.True(t, svc.Service.IsTokenRevoked(resp.AccessToken))
}

func TestResume(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	session, err := svc.Resume(ctx, "2")
	require.NoError(t, err)
	assert.True(t, session.Can(user.PermissionLeaveApprove))

	_, err = svc.Resume(ctx, "missing")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
