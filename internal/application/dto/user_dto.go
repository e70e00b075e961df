package dto

// RegisterRequest datos para registrar un usuario.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	UserType string `json:"user_type"`
}

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserResponse representación de un usuario en respuestas (nunca incluye el hash).
type UserResponse struct {
	Username string `json:"username"`
	UserType string `json:"user_type"`
}

// LoginResponse token JWT más el usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
