// Package nav holds the static sidebar navigation and its role filter.
package nav

import "github.com/gpiedrahita-hub/infinite-herbs-admin/users"

// Item is one sidebar entry. Label is a message key resolved at render time;
// Path is the logical (locale-less) route. AllowedRoles is never empty.
type Item struct {
	Key          string
	Label        string
	Path         string
	AllowedRoles []users.RoleType
}

var items = []Item{
	{
		Key:          "home",
		Label:        "labels.home",
		Path:         "/dashboard",
		AllowedRoles: []users.RoleType{users.RoleAdmin, users.RoleUser, users.RoleViewer},
	},
	{
		Key:          "users",
		Label:        "labels.users",
		Path:         "/users",
		AllowedRoles: []users.RoleType{users.RoleAdmin, users.RoleViewer},
	},
}

// Items returns the full navigation list
func Items() []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}

// FilterByRole returns the entries the role may see, preserving order.
// Pure function: no side effects, no I/O.
func FilterByRole(entries []Item, role users.RoleType) []Item {
	filtered := make([]Item, 0, len(entries))
	for _, entry := range entries {
		if role.In(entry.AllowedRoles...) {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

// ForUser resolves the visible entries for a cached profile via its
// capability set; a nil user sees nothing.
func ForUser(u *users.User) []Item {
	caps := users.CapabilitiesFor(u)
	visible := make([]Item, 0, len(items))
	for _, entry := range items {
		switch entry.Key {
		case "home":
			if caps.CanViewDashboard {
				visible = append(visible, entry)
			}
		case "users":
			if caps.CanViewUsers {
				visible = append(visible, entry)
			}
		}
	}
	return visible
}
