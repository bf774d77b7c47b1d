package tools

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServer(t *testing.T) (*httptest.Server, *[]string) {
	t.Helper()
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		switch r.URL.Path {
		case "/api/vacation/EMP001":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"employee_id":"EMP001","remaining_vacation_days":12}`))
		case "/api/vacation/EMP999":
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"detail":"Employee EMP999 not found"}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	t.Cleanup(srv.Close)
	return srv, &paths
}

func asError(t *testing.T, result string) string {
	t.Helper()
	var payload map[string]string
	require.NoError(t, json.Unmarshal([]byte(result), &payload))
	return payload["error"]
}

func TestExecuteDefaultsEmployeeID(t *testing.T) {
	srv, paths := testServer(t)
	registry := NewRegistry(NewHRClient(srv.URL))

	result := registry.Execute(context.Background(), "get_vacation_days", map[string]string{})

	require.Equal(t, []string{"/api/vacation/EMP001"}, *paths)
	assert.Contains(t, result, `"remaining_vacation_days": 12`)
}

func TestExecuteUnknownTool(t *testing.T) {
	srv, _ := testServer(t)
	registry := NewRegistry(NewHRClient(srv.URL))

	result := registry.Execute(context.Background(), "launch_rocket", nil)

	assert.Equal(t, "Unknown tool: launch_rocket", asError(t, result))
}

func TestExecuteRejectsUnknownParameter(t *testing.T) {
	srv, paths := testServer(t)
	registry := NewRegistry(NewHRClient(srv.URL))

	result := registry.Execute(context.Background(), "get_vacation_days", map[string]string{"bogus": "x"})

	assert.Contains(t, asError(t, result), "invalid_arguments")
	assert.Empty(t, *paths, "invalid arguments must not reach the backend")
}

func TestExecuteFoldsNotFoundDetail(t *testing.T) {
	srv, _ := testServer(t)
	registry := NewRegistry(NewHRClient(srv.URL))

	result := registry.Execute(context.Background(), "get_vacation_days", map[string]string{"employee_id": "EMP999"})

	assert.Contains(t, asError(t, result), "Employee EMP999 not found")
}

func TestExecuteSearchDocumentsIsNotDispatched(t *testing.T) {
	srv, paths := testServer(t)
	registry := NewRegistry(NewHRClient(srv.URL))

	result := registry.Execute(context.Background(), SearchDocumentsTool, map[string]string{"query": "benefits"})

	assert.NotEmpty(t, asError(t, result))
	assert.Empty(t, *paths)
}

func TestDescriptionsCoverCatalog(t *testing.T) {
	registry := NewRegistry(NewHRClient("http://localhost:0"))

	out := registry.Descriptions()

	for _, name := range []string{
		"get_vacation_days", "get_sick_leave", "get_upcoming_leave",
		"get_employee_profile", "get_payslip_info", SearchDocumentsTool,
	} {
		assert.Contains(t, out, name)
	}
}
