package locale

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// set registers one translation pair. Spanish is the default locale, English
// the alternate. Keys follow the section.name convention the templates use.
func set(key, spanish, english string) {
	if err := message.SetString(language.Spanish, key, spanish); err != nil {
		panic("locale: bad Spanish translation for " + key + ": " + err.Error())
	}
	if err := message.SetString(language.English, key, english); err != nil {
		panic("locale: bad English translation for " + key + ": " + err.Error())
	}
}

func init() {
	set("app.name", "Infinite Herbs", "Infinite Herbs")
	set("app.tagline", "Panel de administración", "Administration panel")

	set("landing.title", "Bienvenido a Infinite Herbs", "Welcome to Infinite Herbs")
	set("landing.subtitle", "Gestiona tu tienda de hierbas desde un solo lugar", "Manage your herb store from a single place")
	set("landing.login", "Iniciar sesión", "Log in")
	set("landing.register", "Crear cuenta", "Create account")

	set("login.title", "Iniciar sesión", "Log in")
	set("login.userName", "Usuario", "Username")
	set("login.password", "Contraseña", "Password")
	set("login.submit", "Entrar", "Sign in")
	set("login.invalid", "Usuario o contraseña incorrectos", "Incorrect username or password")
	set("login.inactive", "Usuario inactivo", "Inactive user")
	set("login.noAccount", "¿No tienes cuenta?", "Don't have an account?")

	set("register.title", "Crear cuenta", "Create account")
	set("register.firstName", "Nombre", "First name")
	set("register.lastName", "Apellido", "Last name")
	set("register.email", "Correo electrónico", "Email")
	set("register.submit", "Registrarse", "Sign up")
	set("register.success", "Cuenta creada, ya puedes iniciar sesión", "Account created, you can now log in")
	set("register.hasAccount", "¿Ya tienes cuenta?", "Already have an account?")

	set("sidebar.navigation", "Navegación", "Navigation")
	set("sidebar.logout", "Cerrar sesión", "Log out")
	set("labels.home", "Inicio", "Home")
	set("labels.users", "Usuarios", "Users")

	set("dashboard.welcome", "Hola", "Welcome")
	set("dashboard.subtitle", "Esto es lo que está pasando en tu tienda hoy", "Here is what is happening in your store today")
	set("dashboard.stats.revenue", "Ingresos totales", "Total revenue")
	set("dashboard.stats.orders", "Pedidos", "Orders")
	set("dashboard.stats.products", "Productos", "Products")
	set("dashboard.stats.customers", "Clientes activos", "Active customers")
	set("dashboard.sessionExpires", "La sesión expira", "Session expires")

	set("users.title", "Usuarios", "Users")
	set("users.subtitle", "Gestiona los usuarios del sistema", "Manage the system's users")
	set("users.search", "Buscar usuarios...", "Search users...")
	set("users.add", "Nuevo usuario", "New user")
	set("users.edit", "Editar", "Edit")
	set("users.delete", "Eliminar", "Delete")
	set("users.confirmDelete", "¿Seguro que quieres eliminar este usuario?", "Are you sure you want to delete this user?")
	set("users.empty", "No hay usuarios", "No users found")
	set("users.active", "Activo", "Active")
	set("users.inactive", "Inactivo", "Inactive")
	set("users.role", "Rol", "Role")
	set("users.save", "Guardar", "Save")
	set("users.cancel", "Cancelar", "Cancel")
	set("users.editTitle", "Editar usuario", "Edit user")
	set("users.createTitle", "Crear usuario", "Create user")
	set("users.table.user", "Usuario", "User")
	set("users.table.email", "Correo", "Email")
	set("users.table.status", "Estado", "Status")
	set("users.table.created", "Creado", "Created")
	set("users.table.actions", "Acciones", "Actions")

	set("errors.network", "No se pudo contactar con el servidor, inténtalo de nuevo", "Could not reach the server, please try again")
	set("errors.notFound", "Usuario no encontrado", "User not found")
	set("errors.conflict", "El usuario o correo ya está registrado", "The username or email is already registered")
	set("errors.sessionLost", "Tu sesión ha expirado, inicia sesión de nuevo", "Your session has expired, please log in again")

	set("validation.userName", "El usuario debe tener entre 3 y 50 caracteres", "Username must be between 3 and 50 characters")
	set("validation.email", "Correo electrónico no válido", "Invalid email address")
	set("validation.password", "La contraseña debe tener al menos 6 caracteres", "Password must be at least 6 characters")
	set("validation.firstName", "El nombre debe tener entre 2 y 100 caracteres", "First name must be between 2 and 100 characters")
	set("validation.lastName", "El apellido debe tener entre 2 y 100 caracteres", "Last name must be between 2 and 100 characters")
	set("validation.role", "Rol no válido", "Invalid role")
}
