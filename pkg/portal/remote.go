package portal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"
)

// RemoteSessionProvider talks to the portal service. The cookie jar carries
// the session cookie between calls, like a browser would.
type RemoteSessionProvider struct {
	baseURL string
	client  *http.Client
}

// NewRemoteSessionProvider creates a provider for the given server base URL.
func NewRemoteSessionProvider(baseURL string) (*RemoteSessionProvider, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}
	return &RemoteSessionProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Jar:     jar,
			Timeout: 15 * time.Second,
		},
	}, nil
}

// Login authenticates against POST /api/auth/login.
func (p *RemoteSessionProvider) Login(ctx context.Context, identifier, password string) (*EmployeeInfo, error) {
	body, err := json.Marshal(map[string]string{
		"employeeId": identifier,
		"password":   password,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/api/auth/login", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return nil, ErrInvalidCredentials
	default:
		return nil, fmt.Errorf("login: unexpected status %d", resp.StatusCode)
	}

	var payload struct {
		Data struct {
			Employee EmployeeInfo `json:"employee"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode login response: %w", err)
	}
	return &payload.Data.Employee, nil
}

// CheckAuthenticated asks GET /api/auth/session.
func (p *RemoteSessionProvider) CheckAuthenticated(ctx context.Context) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/api/auth/session", nil)
	if err != nil {
		return false, err
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return true, nil
	case http.StatusUnauthorized:
		return false, nil
	default:
		return false, fmt.Errorf("session check: unexpected status %d", resp.StatusCode)
	}
}

// CurrentEmployee fetches GET /api/employee/me.
func (p *RemoteSessionProvider) CurrentEmployee(ctx context.Context) (*EmployeeInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/api/employee/me", nil)
	if err != nil {
		return nil, err
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusNotFound:
		// A stale session (404) forces a re-login like a missing one.
		return nil, ErrNotAuthenticated
	default:
		return nil, fmt.Errorf("current employee: unexpected status %d", resp.StatusCode)
	}

	var payload struct {
		Data EmployeeInfo `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode employee response: %w", err)
	}
	return &payload.Data, nil
}

// Logout posts to /api/auth/logout. Logout appears to succeed to the caller
// even when the server reports a cleanup failure.
func (p *RemoteSessionProvider) Logout(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/api/auth/logout", nil)
	if err != nil {
		return err
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return nil
}
