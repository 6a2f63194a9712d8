package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttendanceEndpoints(t *testing.T) {
	router := newTestRouter(t, newTestConfig())
	employeeToken := login(t, router, "EMP001")
	adminToken := login(t, router, "EMP002")

	type attendanceBody struct {
		Records []struct {
			EmployeeID string `json:"employee_id"`
			Date       string `json:"date"`
			Status     string `json:"status"`
		} `json:"records"`
		Summary struct {
			Present int `json:"present"`
			Absent  int `json:"absent"`
			HalfDay int `json:"half_day"`
			OnLeave int `json:"on_leave"`
		} `json:"summary"`
	}

	t.Run("own history newest first", func(t *testing.T) {
		rec, env := doRequest(t, router, http.MethodGet, "/api/v1/attendance/my", employeeToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var body attendanceBody
		require.NoError(t, json.Unmarshal(env.Data, &body))
		require.Len(t, body.Records, 5)
		assert.Equal(t, "2026-01-03", body.Records[0].Date)
		assert.Equal(t, 2, body.Summary.Present)
		assert.Equal(t, 1, body.Summary.Absent)
		assert.Equal(t, 1, body.Summary.HalfDay)
		assert.Equal(t, 1, body.Summary.OnLeave)
	})

	t.Run("admin views an employee", func(t *testing.T) {
		rec, env := doRequest(t, router, http.MethodGet, "/api/v1/attendance?employee_id=EMP003", adminToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var body attendanceBody
		require.NoError(t, json.Unmarshal(env.Data, &body))
		require.Len(t, body.Records, 2)
		for _, r := range body.Records {
			assert.Equal(t, "EMP003", r.EmployeeID)
		}
	})

	t.Run("admin view needs employee_id", func(t *testing.T) {
		rec, _ := doRequest(t, router, http.MethodGet, "/api/v1/attendance", adminToken, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown employee", func(t *testing.T) {
		rec, _ := doRequest(t, router, http.MethodGet, "/api/v1/attendance?employee_id=EMP999", adminToken, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("employee cannot use the admin view", func(t *testing.T) {
		rec, _ := doRequest(t, router, http.MethodGet, "/api/v1/attendance?employee_id=EMP003", employeeToken, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestPayrollEndpoints(t *testing.T) {
	router := newTestRouter(t, newTestConfig())
	employeeToken := login(t, router, "EMP001")
	adminToken := login(t, router, "EMP002")

	type payrollBody struct {
		Records []struct {
			EmployeeID string `json:"employee_id"`
			Month      string `json:"month"`
		} `json:"records"`
		Totals struct {
			NetSalary string `json:"net_salary"`
		} `json:"totals"`
	}

	t.Run("own payslips", func(t *testing.T) {
		rec, env := doRequest(t, router, http.MethodGet, "/api/v1/payroll/my", employeeToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var body payrollBody
		require.NoError(t, json.Unmarshal(env.Data, &body))
		assert.Len(t, body.Records, 2)
		assert.Equal(t, "10700", body.Totals.NetSalary)
	})

	t.Run("period summary", func(t *testing.T) {
		rec, env := doRequest(t, router, http.MethodGet, "/api/v1/payroll/summary?month=December&year=2025", adminToken, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var body payrollBody
		require.NoError(t, json.Unmarshal(env.Data, &body))
		assert.Len(t, body.Records, 3)
		assert.Equal(t, "15950", body.Totals.NetSalary)
	})

	t.Run("period summary validates", func(t *testing.T) {
		rec, env := doRequest(t, router, http.MethodGet, "/api/v1/payroll/summary?month=Smarch&year=-1", adminToken, nil)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		require.NotNil(t, env.Error)
		assert.Contains(t, env.Error.Details, "month")
		assert.Contains(t, env.Error.Details, "year")
	})

	t.Run("employee cannot see others", func(t *testing.T) {
		rec, _ := doRequest(t, router, http.MethodGet, "/api/v1/payroll?employee_id=EMP003", employeeToken, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin views an employee", func(t *testing.T) {
		rec, env := doRequest(t, router, http.MethodGet, "/api/v1/payroll?employee_id=EMP004", adminToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var body payrollBody
		require.NoError(t, json.Unmarshal(env.Data, &body))
		require.Len(t, body.Records, 1)
		assert.Equal(t, "EMP004", body.Records[0].EmployeeID)
	})
}

func TestEmployeeDirectory(t *testing.T) {
	router := newTestRouter(t, newTestConfig())
	adminToken := login(t, router, "EMP002")

	type employeeBody struct {
		EmployeeID string `json:"employee_id"`
		Role       string `json:"role"`
	}

	rec, env := doRequest(t, router, http.MethodGet, "/api/v1/employees", adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var all []employeeBody
	require.NoError(t, json.Unmarshal(env.Data, &all))
	assert.Len(t, all, 3)
	for _, e := range all {
		assert.Equal(t, "employee", e.Role)
	}

	rec, env = doRequest(t, router, http.MethodGet, "/api/v1/employees?q=emily", adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var filtered []employeeBody
	require.NoError(t, json.Unmarshal(env.Data, &filtered))
	require.Len(t, filtered, 1)
	assert.Equal(t, "EMP004", filtered[0].EmployeeID)

	employeeToken := login(t, router, "EMP001")
	rec, _ = doRequest(t, router, http.MethodGet, "/api/v1/employees", employeeToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestDashboardByRole(t *testing.T) {
	router := newTestRouter(t, newTestConfig())

	type dashboardBody struct {
		Role     string          `json:"role"`
		Admin    json.RawMessage `json:"admin"`
		Employee json.RawMessage `json:"employee"`
	}

	rec, env := doRequest(t, router, http.MethodGet, "/api/v1/dashboard", login(t, router, "EMP002"), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var admin dashboardBody
	require.NoError(t, json.Unmarshal(env.Data, &admin))
	assert.Equal(t, "admin", admin.Role)
	assert.NotEmpty(t, admin.Admin)
	assert.Empty(t, admin.Employee)

	rec, env = doRequest(t, router, http.MethodGet, "/api/v1/dashboard", login(t, router, "EMP001"), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var employee dashboardBody
	require.NoError(t, json.Unmarshal(env.Data, &employee))
	assert.Equal(t, "employee", employee.Role)
	assert.Empty(t, employee.Admin)
	assert.NotEmpty(t, employee.Employee)
}
