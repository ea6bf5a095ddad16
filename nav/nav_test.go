package nav_test

import (
	"testing"

	"github.com/gpiedrahita-hub/infinite-herbs-admin/nav"
	"github.com/gpiedrahita-hub/infinite-herbs-admin/users"
	"github.com/stretchr/testify/require"
)

func keys(items []nav.Item) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Key)
	}
	return out
}

func TestItems_AllowedRolesNeverEmpty(t *testing.T) {
	for _, item := range nav.Items() {
		require.NotEmpty(t, item.AllowedRoles, "entry %q has no allowed roles", item.Key)
	}
}

func TestFilterByRole(t *testing.T) {
	entries := nav.Items()

	t.Run("admin sees everything", func(t *testing.T) {
		require.Equal(t, []string{"home", "users"}, keys(nav.FilterByRole(entries, users.RoleAdmin)))
	})

	t.Run("viewer sees home and users", func(t *testing.T) {
		require.Equal(t, []string{"home", "users"}, keys(nav.FilterByRole(entries, users.RoleViewer)))
	})

	t.Run("user sees home only", func(t *testing.T) {
		require.Equal(t, []string{"home"}, keys(nav.FilterByRole(entries, users.RoleUser)))
	})

	t.Run("order preserving", func(t *testing.T) {
		filtered := nav.FilterByRole(entries, users.RoleAdmin)
		require.Equal(t, keys(entries), keys(filtered))
	})

	t.Run("idempotent", func(t *testing.T) {
		for _, role := range users.AllRoles {
			once := nav.FilterByRole(entries, role)
			twice := nav.FilterByRole(once, role)
			require.Equal(t, once, twice)
		}
	})
}

func TestForUser(t *testing.T) {
	t.Run("nil user sees nothing", func(t *testing.T) {
		require.Empty(t, nav.ForUser(nil))
	})

	t.Run("matches role filter for every role", func(t *testing.T) {
		for _, role := range users.AllRoles {
			u := &users.User{Role: role}
			require.Equal(t, keys(nav.FilterByRole(nav.Items(), role)), keys(nav.ForUser(u)))
		}
	})
}
