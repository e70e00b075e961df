package jsonstore

import (
	"github.com/tu-usuario/renova-gestion/internal/domain"
	"github.com/tu-usuario/renova-gestion/internal/domain/entity"
	"github.com/tu-usuario/renova-gestion/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación de InventoryRepository sobre estoque.json.
type InventoryRepo struct {
	col *collection[*entity.InventoryItem]
}

// NewInventoryRepository construye el adaptador cargando la colección del Store.
func NewInventoryRepository(store *Store) (*InventoryRepo, error) {
	col, err := newCollection(store, InventoryFile, func(it *entity.InventoryItem) int { return it.ID })
	if err != nil {
		return nil, err
	}
	return &InventoryRepo{col: col}, nil
}

// Create asigna el ID y persiste el nuevo material.
func (r *InventoryRepo) Create(item *entity.InventoryItem) error {
	if item.Quantity < 0 {
		return domain.ErrInvalidInput
	}
	item.ID = r.col.nextID()
	return r.col.add(item)
}

// GetByID busca un material por ID. Devuelve (nil, nil) si no existe.
func (r *InventoryRepo) GetByID(id int) (*entity.InventoryItem, error) {
	if it, ok := r.col.find(id); ok {
		return it, nil
	}
	return nil, nil
}

// List devuelve todos los materiales en orden de inserción.
func (r *InventoryRepo) List() ([]*entity.InventoryItem, error) {
	return r.col.all(), nil
}

// UpdateQuantity reemplaza la cantidad de forma absoluta y persiste. Cantidad
// negativa → domain.ErrInvalidInput sin tocar estado; material inexistente →
// domain.ErrNotFound sin E/S. Si la escritura falla, revierte la memoria.
func (r *InventoryRepo) UpdateQuantity(id, quantity int) error {
	if quantity < 0 {
		return domain.ErrInvalidInput
	}
	item, ok := r.col.find(id)
	if !ok {
		return domain.ErrNotFound
	}
	prev := item.Quantity
	item.Quantity = quantity
	if err := r.col.persist(); err != nil {
		item.Quantity = prev
		return err
	}
	return nil
}
