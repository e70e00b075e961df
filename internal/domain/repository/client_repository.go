package repository

import "github.com/tu-usuario/renova-gestion/internal/domain/entity"

// ClientRepository define el puerto de persistencia para Client.
// Create asigna el ID (máximo existente + 1) y persiste la colección completa.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id int) (*entity.Client, error)
	List() ([]*entity.Client, error)
	Delete(id int) error
}
