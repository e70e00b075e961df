package repository

import "github.com/tu-usuario/renova-gestion/internal/domain/entity"

// ServiceOrderRepository define el puerto de persistencia para ServiceOrder.
// Las órdenes nunca se eliminan; su número es único y monótonamente creciente.
type ServiceOrderRepository interface {
	Create(order *entity.ServiceOrder) error
	GetByNumber(number int) (*entity.ServiceOrder, error)
	List() ([]*entity.ServiceOrder, error)
	UpdateStatus(number int, status entity.OrderStatus) error
}
