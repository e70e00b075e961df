package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("registro no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInvalidStatus     = errors.New("estado de orden inválido")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrDuplicate         = errors.New("registro duplicado")
	ErrUserNotFound      = errors.New("usuario no encontrado")
	ErrUnauthorized      = errors.New("no autorizado")
)
