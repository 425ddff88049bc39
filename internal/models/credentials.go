package models

// Credentials entered at the login prompt. They only live for a single
// prompt iteration and are never persisted.
type Credentials struct {
	Email    string
	Password string
	Save     bool // Remember me
}

// IsEmpty is the guest mode signal. A missing email or password both count.
func (c Credentials) IsEmpty() bool {
	return len(c.Email) == 0 || len(c.Password) == 0
}
