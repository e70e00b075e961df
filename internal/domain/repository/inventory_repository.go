package repository

import "github.com/tu-usuario/renova-gestion/internal/domain/entity"

// InventoryRepository define el puerto de persistencia para InventoryItem.
// UpdateQuantity reemplaza la cantidad de forma absoluta; el cálculo de
// ajustes relativos (delta) vive en el caso de uso.
type InventoryRepository interface {
	Create(item *entity.InventoryItem) error
	GetByID(id int) (*entity.InventoryItem, error)
	List() ([]*entity.InventoryItem, error)
	UpdateQuantity(id, quantity int) error
}
