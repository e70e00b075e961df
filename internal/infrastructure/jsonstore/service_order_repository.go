package jsonstore

import (
	"github.com/tu-usuario/renova-gestion/internal/domain"
	"github.com/tu-usuario/renova-gestion/internal/domain/entity"
	"github.com/tu-usuario/renova-gestion/internal/domain/repository"
)

var _ repository.ServiceOrderRepository = (*ServiceOrderRepo)(nil)

// ServiceOrderRepo implementación de ServiceOrderRepository sobre
// ordens_de_servico.json. Las órdenes nunca se eliminan.
type ServiceOrderRepo struct {
	col *collection[*entity.ServiceOrder]
}

// NewServiceOrderRepository construye el adaptador cargando la colección del Store.
func NewServiceOrderRepository(store *Store) (*ServiceOrderRepo, error) {
	col, err := newCollection(store, OrdersFile, func(o *entity.ServiceOrder) int { return o.Number })
	if err != nil {
		return nil, err
	}
	return &ServiceOrderRepo{col: col}, nil
}

// Create asigna el número de orden y persiste. El caso de uso fija Status y
// CreatedAt antes de llamar; aquí solo se aplican los valores por defecto.
func (r *ServiceOrderRepo) Create(order *entity.ServiceOrder) error {
	order.Number = r.col.nextID()
	if order.Status == "" {
		order.Status = entity.StatusOpen
	}
	return r.col.add(order)
}

// GetByNumber busca una orden por número. Devuelve (nil, nil) si no existe.
func (r *ServiceOrderRepo) GetByNumber(number int) (*entity.ServiceOrder, error) {
	if o, ok := r.col.find(number); ok {
		return o, nil
	}
	return nil, nil
}

// List devuelve todas las órdenes en orden de inserción.
func (r *ServiceOrderRepo) List() ([]*entity.ServiceOrder, error) {
	return r.col.all(), nil
}

// UpdateStatus cambia el estado de una orden y persiste. Estado fuera del
// enum → domain.ErrInvalidStatus sin tocar estado; orden inexistente →
// domain.ErrNotFound sin E/S. CreatedAt no se modifica nunca. Si la escritura
// falla, revierte la memoria.
func (r *ServiceOrderRepo) UpdateStatus(number int, status entity.OrderStatus) error {
	if !status.IsValid() {
		return domain.ErrInvalidStatus
	}
	order, ok := r.col.find(number)
	if !ok {
		return domain.ErrNotFound
	}
	prev := order.Status
	order.Status = status
	if err := r.col.persist(); err != nil {
		order.Status = prev
		return err
	}
	return nil
}
