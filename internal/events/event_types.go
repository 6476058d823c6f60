package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventLoginSucceeded EventType = "login_succeeded"
	EventLoginFailed    EventType = "login_failed"
	EventLoggedOut      EventType = "logged_out"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// LoginSucceededPayload payload.
type LoginSucceededPayload struct {
	EmployeeID string `json:"employee_id"`
	SessionID  string `json:"session_id"`
}

// LoginFailedPayload payload. The employee id is recorded server-side only;
// failure responses never reveal whether it exists.
type LoginFailedPayload struct {
	EmployeeID string `json:"employee_id"`
	Reason     string `json:"reason"`
}

// LoggedOutPayload payload.
type LoggedOutPayload struct {
	SessionID string `json:"session_id"`
}
