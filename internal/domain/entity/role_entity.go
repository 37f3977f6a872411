package entity

// Role enumerates the account roles known to the system.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleUser      Role = "user"
	RoleTherapist Role = "therapist"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser, RoleTherapist:
		return true
	}
	return false
}
