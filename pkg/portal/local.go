package portal

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// Static-mode demo credentials. The static variant has no server to check
// against, so these live in client code.
const (
	mockEmail    = "demo@example.com"
	mockPassword = "demo123"
)

// mockEmployee is the record the static variant reports once logged in.
var mockEmployee = EmployeeInfo{
	ID:         1,
	EmployeeID: "DEMO1",
	Name:       "Demo User",
	Email:      mockEmail,
	Role:       "Employee",
}

// localState is the entire client-side data model for static mode.
type localState struct {
	IsLoggedIn bool `json:"isLoggedIn"`
}

// LocalMockSessionProvider simulates authentication entirely on the client.
// The logged-in flag persists in a JSON state file so it survives restarts,
// standing in for browser durable storage.
type LocalMockSessionProvider struct {
	mu        sync.Mutex
	statePath string
}

// NewLocalMockSessionProvider creates a provider persisting its flag at
// statePath. An empty path defaults to a file in the user config dir.
func NewLocalMockSessionProvider(statePath string) (*LocalMockSessionProvider, error) {
	if statePath == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, err
		}
		statePath = filepath.Join(dir, "employee-portal", "state.json")
	}
	return &LocalMockSessionProvider{statePath: statePath}, nil
}

// Login compares against the hard-coded demo credentials and sets the flag.
// No network round trip happens anywhere in this variant.
func (p *LocalMockSessionProvider) Login(ctx context.Context, identifier, password string) (*EmployeeInfo, error) {
	if identifier != mockEmail || password != mockPassword {
		return nil, ErrInvalidCredentials
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.writeState(localState{IsLoggedIn: true}); err != nil {
		return nil, err
	}
	emp := mockEmployee
	return &emp, nil
}

// CheckAuthenticated reads the persisted flag.
func (p *LocalMockSessionProvider) CheckAuthenticated(ctx context.Context) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	state, err := p.readState()
	if err != nil {
		return false, err
	}
	return state.IsLoggedIn, nil
}

// CurrentEmployee returns the demo record while the flag is set.
func (p *LocalMockSessionProvider) CurrentEmployee(ctx context.Context) (*EmployeeInfo, error) {
	authenticated, err := p.CheckAuthenticated(ctx)
	if err != nil {
		return nil, err
	}
	if !authenticated {
		return nil, ErrNotAuthenticated
	}
	emp := mockEmployee
	return &emp, nil
}

// Logout clears the flag. Clearing an already-clear flag is a no-op success.
func (p *LocalMockSessionProvider) Logout(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.writeState(localState{IsLoggedIn: false})
}

func (p *LocalMockSessionProvider) readState() (localState, error) {
	var state localState
	data, err := os.ReadFile(p.statePath)
	if err != nil {
		if os.IsNotExist(err) {
			return state, nil
		}
		return state, err
	}
	if err := json.Unmarshal(data, &state); err != nil {
		// A corrupt state file reads as logged out.
		return localState{}, nil
	}
	return state, nil
}

func (p *LocalMockSessionProvider) writeState(state localState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p.statePath), 0o755); err != nil {
		return err
	}
	return os.WriteFile(p.statePath, data, 0o600)
}
