package models

import "time"

// Session is the authenticated identity of the current actor. Core
// operations receive it explicitly; a nil session means anonymous.
type Session struct {
	SessionID string    `json:"session_id"`
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}
