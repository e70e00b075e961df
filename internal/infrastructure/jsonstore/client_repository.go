package jsonstore

import (
	"github.com/tu-usuario/renova-gestion/internal/domain/entity"
	"github.com/tu-usuario/renova-gestion/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación de ClientRepository sobre clientes.json.
type ClientRepo struct {
	col *collection[*entity.Client]
}

// NewClientRepository construye el adaptador cargando la colección del Store.
func NewClientRepository(store *Store) (*ClientRepo, error) {
	col, err := newCollection(store, ClientsFile, func(c *entity.Client) int { return c.ID })
	if err != nil {
		return nil, err
	}
	return &ClientRepo{col: col}, nil
}

// Create asigna el ID y persiste el nuevo cliente.
func (r *ClientRepo) Create(client *entity.Client) error {
	client.ID = r.col.nextID()
	return r.col.add(client)
}

// GetByID busca un cliente por ID. Devuelve (nil, nil) si no existe.
func (r *ClientRepo) GetByID(id int) (*entity.Client, error) {
	if c, ok := r.col.find(id); ok {
		return c, nil
	}
	return nil, nil
}

// List devuelve todos los clientes en orden de inserción.
func (r *ClientRepo) List() ([]*entity.Client, error) {
	return r.col.all(), nil
}

// Delete elimina un cliente y persiste. domain.ErrNotFound si no existe.
func (r *ClientRepo) Delete(id int) error {
	return r.col.remove(id)
}
