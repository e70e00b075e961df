package repository

import "github.com/tu-usuario/renova-gestion/internal/domain/entity"

// UserRepository define el puerto de persistencia para User.
// La búsqueda por username no distingue mayúsculas.
type UserRepository interface {
	Create(user *entity.User) error
	GetByUsername(username string) (*entity.User, error)
	Count() (int, error)
}
