package clocksdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is a minimal HTTP client for the timeclock API. The zero value is
// not usable; construct with NewClient.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a client for the service at baseURL. The token is sent
// as a bearer credential on every request; pass "" for the public health
// endpoints only.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// WithToken returns a copy of the client using a different bearer token.
func (c *Client) WithToken(token string) *Client {
	clone := *c
	clone.token = token
	return &clone
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return parseErrorResponse(resp.StatusCode, respBody)
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// ClockIn opens a shift for the authenticated user at the given position.
func (c *Client) ClockIn(ctx context.Context, req ClockInRequest) (Shift, error) {
	var shift Shift
	err := c.do(ctx, http.MethodPost, "/v1/clock/in", req, &shift)
	return shift, err
}

// ClockOut closes the authenticated user's open shift.
func (c *Client) ClockOut(ctx context.Context, req ClockOutRequest) (Shift, error) {
	var shift Shift
	err := c.do(ctx, http.MethodPost, "/v1/clock/out", req, &shift)
	return shift, err
}

// ClockStatus reports whether the authenticated user has an open shift.
func (c *Client) ClockStatus(ctx context.Context) (ClockStatusResponse, error) {
	var status ClockStatusResponse
	err := c.do(ctx, http.MethodGet, "/v1/clock/status", nil, &status)
	return status, err
}

// CreateUser registers a new timeclock user (admin:write).
func (c *Client) CreateUser(ctx context.Context, req CreateUserRequest) (User, error) {
	var user User
	err := c.do(ctx, http.MethodPost, "/v1/users", req, &user)
	return user, err
}

// ListUsers returns all users (admin:read).
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var users []User
	err := c.do(ctx, http.MethodGet, "/v1/users", nil, &users)
	return users, err
}

// DeleteUser removes a user; their shift history is retained (admin:write).
func (c *Client) DeleteUser(ctx context.Context, userID string) error {
	return c.do(ctx, http.MethodDelete, "/v1/users/"+url.PathEscape(userID), nil, nil)
}

// CreateLocation registers a new geofence (admin:write).
func (c *Client) CreateLocation(ctx context.Context, req CreateLocationRequest) (Location, error) {
	var loc Location
	err := c.do(ctx, http.MethodPost, "/v1/locations", req, &loc)
	return loc, err
}

// ListLocations returns all geofences, canonical first (admin:read).
func (c *Client) ListLocations(ctx context.Context) ([]Location, error) {
	var locs []Location
	err := c.do(ctx, http.MethodGet, "/v1/locations", nil, &locs)
	return locs, err
}

// DeleteLocation removes a geofence (admin:write).
func (c *Client) DeleteLocation(ctx context.Context, locationID string) error {
	return c.do(ctx, http.MethodDelete, "/v1/locations/"+url.PathEscape(locationID), nil, nil)
}

// ListShifts returns shifts newest first (admin:read). Zero times and a nil
// openOnly leave the corresponding filter off.
func (c *Client) ListShifts(ctx context.Context, from, to time.Time, openOnly bool) ([]Shift, error) {
	q := url.Values{}
	if !from.IsZero() {
		q.Set("from", from.Format(time.RFC3339))
	}
	if !to.IsZero() {
		q.Set("to", to.Format(time.RFC3339))
	}
	if openOnly {
		q.Set("open", "true")
	}

	path := "/v1/shifts"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var shifts []Shift
	err := c.do(ctx, http.MethodGet, path, nil, &shifts)
	return shifts, err
}

// MyShifts returns the authenticated user's recent shifts.
func (c *Client) MyShifts(ctx context.Context) ([]Shift, error) {
	var shifts []Shift
	err := c.do(ctx, http.MethodGet, "/v1/shifts/me", nil, &shifts)
	return shifts, err
}

// DashboardStats returns the 7-day aggregates (admin:read).
func (c *Client) DashboardStats(ctx context.Context) (DashboardStats, error) {
	var stats DashboardStats
	err := c.do(ctx, http.MethodGet, "/v1/dashboard/stats", nil, &stats)
	return stats, err
}

// ActiveStaff returns the currently clocked-in users (admin:read).
func (c *Client) ActiveStaff(ctx context.Context) ([]ActiveStaff, error) {
	var staff []ActiveStaff
	err := c.do(ctx, http.MethodGet, "/v1/dashboard/active", nil, &staff)
	return staff, err
}

// Me returns the authenticated caller's identity.
func (c *Client) Me(ctx context.Context) (MeResponse, error) {
	var me MeResponse
	err := c.do(ctx, http.MethodGet, "/v1/me", nil, &me)
	return me, err
}

// Livez checks the liveness endpoint.
func (c *Client) Livez(ctx context.Context) (HealthResponse, error) {
	var health HealthResponse
	err := c.do(ctx, http.MethodGet, "/livez", nil, &health)
	return health, err
}

// Readyz checks the readiness endpoint.
func (c *Client) Readyz(ctx context.Context) (HealthResponse, error) {
	var health HealthResponse
	err := c.do(ctx, http.MethodGet, "/readyz", nil, &health)
	return health, err
}
