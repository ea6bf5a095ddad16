package server

// Route path constants
// All application routes are defined here to ensure consistency and prevent typos.
// These are logical paths: the locale segment ("/es", "/en") is applied by the
// guard and by localizedPath, never written out by hand.
const (
	RouteLanding = "/"

	// Auth Routes
	RouteLogin    = "/login"
	RouteRegister = "/register"
	RouteLogout   = "/logout"

	// Locale switch
	RouteLocale = "/locale"

	// Protected Routes
	RouteDashboard = "/dashboard"
	RouteUsers     = "/users"
	RouteUsersNew  = "/users/new"
	RouteUsersEdit = "/users/{id}/edit"
	RouteUsersItem = "/users/{id}"

	// Static Asset Routes (patterns)
	RouteStatic = "/static/"
)
