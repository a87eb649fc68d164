package domain

import "time"

// AuthMethod identifies how a request was authenticated.
type AuthMethod string

const (
	AuthMethodAuth0    AuthMethod = "auth0"
	AuthMethodAPIToken AuthMethod = "api_token"
)

// APIToken is a long-lived credential a dreamer can hand to scripts and feed readers.
type APIToken struct {
	ID         string     `json:"id"`
	UserID     string     `json:"-"`
	TokenHash  string     `json:"-"`
	Prefix     string     `json:"prefix"`
	Name       *string    `json:"name,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
	RevokedAt  *time.Time `json:"-"`
}

// IsActiveAt reports whether the token is neither revoked nor expired at now.
func (t APIToken) IsActiveAt(now time.Time) bool {
	if t.RevokedAt != nil {
		return false
	}
	return t.ExpiresAt == nil || now.Before(*t.ExpiresAt)
}
