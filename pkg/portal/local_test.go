package portal

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLocalProvider(t *testing.T) (*LocalMockSessionProvider, string) {
	t.Helper()

	statePath := filepath.Join(t.TempDir(), "state.json")
	provider, err := NewLocalMockSessionProvider(statePath)
	require.NoError(t, err)
	return provider, statePath
}

func TestLocalLogin_DemoCredentials(t *testing.T) {
	provider, statePath := newLocalProvider(t)
	ctx := context.Background()

	emp, err := provider.Login(ctx, "demo@example.com", "demo123")
	require.NoError(t, err)
	assert.Equal(t, "Demo User", emp.Name)
	assert.Equal(t, "DEMO1", emp.EmployeeID)

	// The flag lands on disk.
	data, err := os.ReadFile(statePath)
	require.NoError(t, err)
	var state struct {
		IsLoggedIn bool `json:"isLoggedIn"`
	}
	require.NoError(t, json.Unmarshal(data, &state))
	assert.True(t, state.IsLoggedIn)
}

func TestLocalLogin_RejectsWrongCredentials(t *testing.T) {
	provider, statePath := newLocalProvider(t)
	ctx := context.Background()

	tests := []struct {
		name       string
		identifier string
		password   string
	}{
		{name: "wrong password", identifier: "demo@example.com", password: "nope"},
		{name: "unknown identifier", identifier: "other@example.com", password: "demo123"},
		{name: "both empty", identifier: "", password: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := provider.Login(ctx, tt.identifier, tt.password)
			assert.True(t, errors.Is(err, ErrInvalidCredentials))
		})
	}

	// Failed attempts never touch the state file.
	_, err := os.Stat(statePath)
	assert.True(t, os.IsNotExist(err))
}

func TestLocal_SessionLifecycle(t *testing.T) {
	provider, _ := newLocalProvider(t)
	ctx := context.Background()

	authenticated, err := provider.CheckAuthenticated(ctx)
	require.NoError(t, err)
	assert.False(t, authenticated)

	_, err = provider.CurrentEmployee(ctx)
	assert.True(t, errors.Is(err, ErrNotAuthenticated))

	_, err = provider.Login(ctx, "demo@example.com", "demo123")
	require.NoError(t, err)

	authenticated, err = provider.CheckAuthenticated(ctx)
	require.NoError(t, err)
	assert.True(t, authenticated)

	emp, err := provider.CurrentEmployee(ctx)
	require.NoError(t, err)
	assert.Equal(t, "demo@example.com", emp.Email)

	require.NoError(t, provider.Logout(ctx))
	authenticated, err = provider.CheckAuthenticated(ctx)
	require.NoError(t, err)
	assert.False(t, authenticated)

	// Logging out again stays a success.
	require.NoError(t, provider.Logout(ctx))
}

func TestLocal_StatePersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	statePath := filepath.Join(t.TempDir(), "state.json")

	first, err := NewLocalMockSessionProvider(statePath)
	require.NoError(t, err)
	_, err = first.Login(ctx, "demo@example.com", "demo123")
	require.NoError(t, err)

	second, err := NewLocalMockSessionProvider(statePath)
	require.NoError(t, err)
	authenticated, err := second.CheckAuthenticated(ctx)
	require.NoError(t, err)
	assert.True(t, authenticated)
}

func TestLocal_CorruptStateReadsAsLoggedOut(t *testing.T) {
	provider, statePath := newLocalProvider(t)
	require.NoError(t, os.WriteFile(statePath, []byte("{{{"), 0o600))

	authenticated, err := provider.CheckAuthenticated(context.Background())
	require.NoError(t, err)
	assert.False(t, authenticated)
}

type stubProvider struct {
	authenticated bool
	err           error
}

func (s *stubProvider) Login(context.Context, string, string) (*EmployeeInfo, error) {
	return nil, nil
}

func (s *stubProvider) CheckAuthenticated(context.Context) (bool, error) {
	return s.authenticated, s.err
}

func (s *stubProvider) CurrentEmployee(context.Context) (*EmployeeInfo, error) {
	return nil, nil
}

func (s *stubProvider) Logout(context.Context) error { return nil }

func TestGate(t *testing.T) {
	ctx := context.Background()

	assert.Equal(t, ViewDashboard, Gate(ctx, &stubProvider{authenticated: true}))
	assert.Equal(t, ViewLogin, Gate(ctx, &stubProvider{authenticated: false}))
	assert.Equal(t, ViewLogin, Gate(ctx, &stubProvider{err: errors.New("backend down")}))
}

func TestGate_WithLocalProvider(t *testing.T) {
	provider, _ := newLocalProvider(t)
	ctx := context.Background()

	assert.Equal(t, ViewLogin, Gate(ctx, provider))

	_, err := provider.Login(ctx, "demo@example.com", "demo123")
	require.NoError(t, err)
	assert.Equal(t, ViewDashboard, Gate(ctx, provider))
}
