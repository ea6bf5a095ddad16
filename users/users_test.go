package users_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/gpiedrahita-hub/infinite-herbs-admin/users"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	t.Run("known roles", func(t *testing.T) {
		require.Equal(t, users.RoleAdmin, users.ParseRole("admin"))
		require.Equal(t, users.RoleUser, users.ParseRole("user"))
		require.Equal(t, users.RoleViewer, users.ParseRole("viewer"))
	})

	t.Run("case and whitespace", func(t *testing.T) {
		require.Equal(t, users.RoleAdmin, users.ParseRole("  Admin "))
	})

	t.Run("unknown falls back to user", func(t *testing.T) {
		require.Equal(t, users.RoleUser, users.ParseRole("superuser"))
		require.Equal(t, users.RoleUser, users.ParseRole(""))
	})
}

func TestUser_HasRole(t *testing.T) {
	t.Run("nil user", func(t *testing.T) {
		var u *users.User
		require.False(t, u.HasRole(users.RoleAdmin, users.RoleUser, users.RoleViewer))
	})

	t.Run("membership per role", func(t *testing.T) {
		for _, role := range users.AllRoles {
			u := &users.User{Role: role}
			require.True(t, u.HasRole(role))
			require.True(t, u.HasRole(users.AllRoles...))
			for _, other := range users.AllRoles {
				if other != role {
					require.False(t, u.HasRole(other))
				}
			}
		}
	})
}

func TestUser_FullName(t *testing.T) {
	u := &users.User{UserName: "jdoe", FirstName: "John", LastName: "Doe"}
	require.Equal(t, "John Doe", u.FullName())

	u = &users.User{UserName: "jdoe"}
	require.Equal(t, "jdoe", u.FullName())
}

func TestUser_JSONShape(t *testing.T) {
	// The backend speaks camelCase; a mismatch here breaks every screen.
	raw := `{
		"id": "u-1",
		"userName": "admin",
		"email": "admin@admin.com",
		"firstName": "Admin",
		"lastName": "System",
		"role": "admin",
		"isActive": true,
		"createdAt": "2025-01-02T15:04:05Z",
		"updatedAt": null
	}`

	var u users.User
	require.NoError(t, json.Unmarshal([]byte(raw), &u))
	require.Equal(t, "admin", u.UserName)
	require.Equal(t, users.RoleAdmin, u.Role)
	require.True(t, u.IsActive)
	require.Equal(t, time.Date(2025, 1, 2, 15, 4, 5, 0, time.UTC), u.CreatedAt)
	require.Nil(t, u.UpdatedAt)
}

func TestRegisterRequest_Validate(t *testing.T) {
	valid := users.RegisterRequest{
		UserName:  "jdoe",
		Email:     "jdoe@example.com",
		Password:  "secret1",
		FirstName: "John",
		LastName:  "Doe",
	}

	t.Run("valid", func(t *testing.T) {
		require.True(t, valid.Validate().Ok())
	})

	t.Run("short username", func(t *testing.T) {
		r := valid
		r.UserName = "jd"
		fe := r.Validate()
		require.False(t, fe.Ok())
		require.Contains(t, fe, "userName")
	})

	t.Run("bad email", func(t *testing.T) {
		r := valid
		r.Email = "not-an-email"
		require.Contains(t, r.Validate(), "email")
	})

	t.Run("short password", func(t *testing.T) {
		r := valid
		r.Password = "12345"
		require.Contains(t, r.Validate(), "password")
	})

	t.Run("short names", func(t *testing.T) {
		r := valid
		r.FirstName = "J"
		r.LastName = "D"
		fe := r.Validate()
		require.Contains(t, fe, "firstName")
		require.Contains(t, fe, "lastName")
	})
}

func TestUpdateUserRequest_Validate(t *testing.T) {
	t.Run("empty update is valid", func(t *testing.T) {
		require.True(t, users.UpdateUserRequest{}.Validate().Ok())
	})

	t.Run("invalid role", func(t *testing.T) {
		bad := users.RoleType("root")
		fe := users.UpdateUserRequest{Role: &bad}.Validate()
		require.Contains(t, fe, "role")
	})
}

func TestCapabilitiesFor(t *testing.T) {
	t.Run("nil user", func(t *testing.T) {
		require.Equal(t, users.Capabilities{}, users.CapabilitiesFor(nil))
	})

	t.Run("admin", func(t *testing.T) {
		caps := users.CapabilitiesFor(&users.User{Role: users.RoleAdmin})
		require.True(t, caps.CanViewUsers)
		require.True(t, caps.CanManageUsers)
	})

	t.Run("viewer sees but cannot manage", func(t *testing.T) {
		caps := users.CapabilitiesFor(&users.User{Role: users.RoleViewer})
		require.True(t, caps.CanViewUsers)
		require.False(t, caps.CanManageUsers)
	})

	t.Run("user has dashboard only", func(t *testing.T) {
		caps := users.CapabilitiesFor(&users.User{Role: users.RoleUser})
		require.True(t, caps.CanViewDashboard)
		require.False(t, caps.CanViewUsers)
		require.False(t, caps.CanManageUsers)
	})
}
