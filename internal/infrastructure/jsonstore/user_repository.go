package jsonstore

import (
	"strings"

	"github.com/tu-usuario/renova-gestion/internal/domain"
	"github.com/tu-usuario/renova-gestion/internal/domain/entity"
	"github.com/tu-usuario/renova-gestion/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación de UserRepository sobre usuarios.json. Los usuarios
// se identifican por username (sin ID numérico, fiel al esquema histórico),
// así que no usa el motor de colección con clave entera.
type UserRepo struct {
	store *Store
	users []*entity.User
}

// NewUserRepository construye el adaptador cargando la colección del Store.
func NewUserRepository(store *Store) (*UserRepo, error) {
	users, err := Load[*entity.User](store, UsersFile)
	if err != nil {
		return nil, err
	}
	return &UserRepo{store: store, users: users}, nil
}

// Create persiste un nuevo usuario. domain.ErrDuplicate si el username ya
// existe (sin distinguir mayúsculas). Si la escritura falla, revierte la memoria.
func (r *UserRepo) Create(user *entity.User) error {
	for _, u := range r.users {
		if strings.EqualFold(u.Username, user.Username) {
			return domain.ErrDuplicate
		}
	}
	r.users = append(r.users, user)
	if err := Save(r.store, UsersFile, r.users); err != nil {
		r.users = r.users[:len(r.users)-1]
		return err
	}
	return nil
}

// Count devuelve el número de usuarios registrados.
func (r *UserRepo) Count() (int, error) {
	return len(r.users), nil
}

// GetByUsername busca un usuario por username sin distinguir mayúsculas.
// Devuelve (nil, nil) si no existe.
func (r *UserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Username, username) {
			return u, nil
		}
	}
	return nil, nil
}
