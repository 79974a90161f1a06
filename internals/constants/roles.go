package constants

// Role yang dikenal aplikasi
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

var AllowedRoles = []string{RoleUser, RoleAdmin}
