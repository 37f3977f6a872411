package entity

import (
	"time"
)

// User is the aggregate root for the account domain.
// Password holds a bcrypt hash; plaintext never survives registration.
type User struct {
	ID        string
	Name      string
	Email     string
	Password  string
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Sanitized returns a copy safe to attach to a request context or
// serialize: the password hash is stripped.
func (u User) Sanitized() *User {
	u.Password = ""
	return &u
}
