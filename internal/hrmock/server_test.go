package hrmock

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doGet(t *testing.T, path string) (int, map[string]interface{}) {
	t.Helper()
	app := New()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func TestHealth(t *testing.T) {
	status, body := doGet(t, "/api/health")

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "healthy", body["status"])
}

func TestVacationKnownEmployee(t *testing.T) {
	status, body := doGet(t, "/api/vacation/EMP001")

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Om Doshi", body["employee_name"])
	assert.EqualValues(t, 12, body["remaining_vacation_days"])
	assert.EqualValues(t, 3, body["carried_over_days"])
	assert.NotEmpty(t, body["as_of_date"])
}

func TestSickLeaveSecondEmployee(t *testing.T) {
	status, body := doGet(t, "/api/sick-leave/EMP002")

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Klahm Sebestian", body["employee_name"])
	assert.EqualValues(t, 28, body["sick_days_remaining"])
}

func TestUpcomingLeave(t *testing.T) {
	status, body := doGet(t, "/api/upcoming-leave/EMP001")

	assert.Equal(t, http.StatusOK, status)
	entries, ok := body["upcoming_leave"].([]interface{})
	require.True(t, ok)
	assert.Len(t, entries, 2)
}

func TestEmployeeProfile(t *testing.T) {
	status, body := doGet(t, "/api/employee/EMP002")

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Backend Developer", body["position"])
	assert.Equal(t, "Thomas Berger", body["manager"])
}

func TestPayslip(t *testing.T) {
	status, body := doGet(t, "/api/payslip/EMP001")

	assert.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 6500, body["gross_salary"])
	assert.Equal(t, "EUR", body["currency"])
}

func TestUnknownEmployeeIs404WithDetail(t *testing.T) {
	for _, path := range []string{
		"/api/vacation/EMP042",
		"/api/sick-leave/EMP042",
		"/api/upcoming-leave/EMP042",
		"/api/employee/EMP042",
		"/api/payslip/EMP042",
	} {
		status, body := doGet(t, path)
		assert.Equal(t, http.StatusNotFound, status, path)
		assert.Equal(t, "Employee EMP042 not found", body["detail"], path)
	}
}
