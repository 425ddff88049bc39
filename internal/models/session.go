package models

import (
	"fmt"
	"strings"
)

// Session is the opaque authenticated context handed back by the hub after
// a successful credential exchange. Only the token keys are interpreted.
type Session map[string]any

const (
	SessionKeyAccessToken = "access_token"
	SessionKeyTokenType   = "token_type"
	SessionKeyUUID        = "uuid"
)

// IsValid reports whether the session carries anything at all
func (s Session) IsValid() bool {
	return len(s) > 0
}

func (s Session) AccessToken() string {
	return s.getString(SessionKeyAccessToken)
}

func (s Session) TokenType() string {
	tokenType := s.getString(SessionKeyTokenType)
	if len(tokenType) == 0 {
		return "Bearer"
	}
	return tokenType
}

func (s Session) UUID() string {
	return s.getString(SessionKeyUUID)
}

// AuthorizationHeader builds the value for the Authorization header,
// e.g. "Bearer abc123".
func (s Session) AuthorizationHeader() string {
	token := s.AccessToken()
	if len(token) == 0 {
		return ""
	}
	// The hub returns the type lowercased
	tokenType := s.TokenType()
	if strings.EqualFold(tokenType, "bearer") {
		tokenType = "Bearer"
	}
	return fmt.Sprintf("%s %s", tokenType, token)
}

func (s Session) getString(key string) string {
	if s == nil {
		return ""
	}
	value, ok := s[key]
	if !ok || value == nil {
		return ""
	}
	if str, ok := value.(string); ok {
		return str
	}
	return fmt.Sprintf("%v", value)
}
