package entity

// Roles válidos para UserCredential. ADMIN no puede crearse vía registro público.
const (
	RoleUser   = "USER"
	RoleDealer = "DEALER"
	RoleAdmin  = "ADMIN"
)

// UserCredential representa las credenciales persistidas de un usuario.
// Es un registro plano de datos; la adaptación a principal de autenticación
// vive en la capa de aplicación, no aquí.
type UserCredential struct {
	ID           string // UUID generado, no es el username
	Username     string // único, normalizado a minúsculas
	PasswordHash string // bcrypt, nunca el password plano
	Role         string // USER, DEALER, ADMIN (mayúsculas)
}
