package entity

// Roles de usuario.
const (
	RoleAdmin    = "admin"
	RoleOperador = "operador"
)

// User representa un usuario del sistema. Se identifica por username (sin ID
// numérico, fiel al esquema histórico de usuarios.json). El hash de la
// contraseña se genera con bcrypt.
type User struct {
	Username     string `json:"username"`
	PasswordHash string `json:"password_hash"`
	UserType     string `json:"user_type"`
}
