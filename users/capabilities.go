package users

// Capabilities is the single resolution point for what a user may do in the
// UI. Handlers and the navigation filter consume these flags instead of
// comparing role strings at each call site.
type Capabilities struct {
	CanViewDashboard bool
	CanViewUsers     bool
	CanManageUsers   bool // create, edit and delete
}

// CapabilitiesFor resolves the capability set for a cached user profile.
// A nil user has no capabilities.
func CapabilitiesFor(u *User) Capabilities {
	if u == nil {
		return Capabilities{}
	}
	switch u.Role {
	case RoleAdmin:
		return Capabilities{CanViewDashboard: true, CanViewUsers: true, CanManageUsers: true}
	case RoleViewer:
		return Capabilities{CanViewDashboard: true, CanViewUsers: true}
	case RoleUser:
		return Capabilities{CanViewDashboard: true}
	}
	return Capabilities{}
}
