package usecase

import (
	"strings"

	"github.com/tu-usuario/renova-gestion/internal/application/dto"
	"github.com/tu-usuario/renova-gestion/internal/domain"
	"github.com/tu-usuario/renova-gestion/internal/domain/entity"
	"github.com/tu-usuario/renova-gestion/internal/domain/repository"
)

// InventoryUseCase aplica reglas de negocio para el almacén de materiales.
// La política de cantidades vive aquí: reemplazo absoluto o ajuste por delta,
// nunca por debajo de cero.
type InventoryUseCase struct {
	repo repository.InventoryRepository
}

// NewInventoryUseCase construye el caso de uso con el puerto de persistencia.
func NewInventoryUseCase(repo repository.InventoryRepository) *InventoryUseCase {
	return &InventoryUseCase{repo: repo}
}

// Create registra un material nuevo. Material vacío o cantidad inicial
// negativa → domain.ErrInvalidInput sin persistir nada.
func (uc *InventoryUseCase) Create(in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	material := strings.TrimSpace(in.Material)
	if material == "" || in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	item := &entity.InventoryItem{
		Material: material,
		Quantity: in.Quantity,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return itemToResponse(item), nil
}

// GetByID obtiene un material por ID. domain.ErrNotFound si no existe.
func (uc *InventoryUseCase) GetByID(id int) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return itemToResponse(item), nil
}

// List lista todos los materiales en orden de registro.
func (uc *InventoryUseCase) List() (*dto.ItemListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *itemToResponse(it))
	}
	return &dto.ItemListResponse{Items: items, Total: len(items)}, nil
}

// SetQuantity reemplaza la cantidad de forma absoluta. Cantidad negativa →
// domain.ErrInvalidInput; material inexistente → domain.ErrNotFound.
func (uc *InventoryUseCase) SetQuantity(id, quantity int) (*dto.ItemResponse, error) {
	if err := uc.repo.UpdateQuantity(id, quantity); err != nil {
		return nil, err
	}
	return uc.GetByID(id)
}

// AdjustQuantity suma delta a la cantidad actual (positivo = entrada,
// negativo = salida). Si el resultado quedara por debajo de cero →
// domain.ErrInsufficientStock, sin tocar estado ni disco.
func (uc *InventoryUseCase) AdjustQuantity(id, delta int) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	next := item.Quantity + delta
	if next < 0 {
		return nil, domain.ErrInsufficientStock
	}
	if err := uc.repo.UpdateQuantity(id, next); err != nil {
		return nil, err
	}
	return uc.GetByID(id)
}

func itemToResponse(it *entity.InventoryItem) *dto.ItemResponse {
	return &dto.ItemResponse{ID: it.ID, Material: it.Material, Quantity: it.Quantity}
}
