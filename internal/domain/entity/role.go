package entity

// Role represents the platform role carried by a profile.
type Role string

const (
	// RoleReader indicates a regular reader account.
	RoleReader Role = "READER"
	// RoleAuthor indicates an account that can receive chapter revenue.
	RoleAuthor Role = "AUTHOR"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleReader, RoleAuthor:
		return true
	default:
		return false
	}
}

// CanReceiveRevenue reports whether a profile with this role may be credited
// with a chapter's revenue share.
func (r Role) CanReceiveRevenue() bool {
	return r == RoleAuthor
}
