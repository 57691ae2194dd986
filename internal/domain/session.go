package domain

// Session is an authenticated identity bound to the current process lifetime.
// The gateway owns the truth; this is the client-side snapshot of it.
type Session struct {
	UserID      string `json:"user_id"`
	Email       string `json:"email"`
	AccessToken string `json:"access_token"`
}

// SessionEvent describes a change broadcast by the gateway's auth layer.
type SessionEventType string

const (
	SessionSignedIn     SessionEventType = "SIGNED_IN"
	SessionSignedOut    SessionEventType = "SIGNED_OUT"
	SessionTokenRefresh SessionEventType = "TOKEN_REFRESHED"
)

type SessionEvent struct {
	Type    SessionEventType `json:"type"`
	Session *Session         `json:"session,omitempty"`
}
