package userdomain

// Role represents a user's role for authorization purposes.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleRep   Role = "rep"
)

// IsValid checks if the role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleRep:
		return true
	default:
		return false
	}
}

func (r Role) String() string {
	return string(r)
}
