package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HRClient talks to the mock HR REST API the way a production deployment
// would talk to SAP/Workday. Failures never escape as Go errors from the
// registry; they become error-shaped results upstream.
type HRClient struct {
	BaseURL string
	Client  *http.Client
}

func NewHRClient(baseURL string) *HRClient {
	return &HRClient{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// get fetches one endpoint and returns the raw JSON body. A 404 is folded
// into an error carrying the service's detail message.
func (c *HRClient) get(ctx context.Context, path string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", c.BaseURL+path, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HR service request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusNotFound {
		var detail struct {
			Detail string `json:"detail"`
		}
		if err := json.Unmarshal(body, &detail); err == nil && detail.Detail != "" {
			return nil, fmt.Errorf("%s", detail.Detail)
		}
		return nil, fmt.Errorf("not found")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HR service error: status %d", resp.StatusCode)
	}

	return json.RawMessage(body), nil
}

func (c *HRClient) VacationDays(ctx context.Context, employeeID string) (json.RawMessage, error) {
	return c.get(ctx, "/api/vacation/"+employeeID)
}

func (c *HRClient) SickLeave(ctx context.Context, employeeID string) (json.RawMessage, error) {
	return c.get(ctx, "/api/sick-leave/"+employeeID)
}

func (c *HRClient) UpcomingLeave(ctx context.Context, employeeID string) (json.RawMessage, error) {
	return c.get(ctx, "/api/upcoming-leave/"+employeeID)
}

func (c *HRClient) EmployeeProfile(ctx context.Context, employeeID string) (json.RawMessage, error) {
	return c.get(ctx, "/api/employee/"+employeeID)
}

func (c *HRClient) PayslipInfo(ctx context.Context, employeeID string) (json.RawMessage, error) {
	return c.get(ctx, "/api/payslip/"+employeeID)
}
