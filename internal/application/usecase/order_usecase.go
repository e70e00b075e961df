package usecase

import (
	"strings"
	"time"

	"github.com/tu-usuario/renova-gestion/internal/application/dto"
	"github.com/tu-usuario/renova-gestion/internal/domain"
	"github.com/tu-usuario/renova-gestion/internal/domain/entity"
	"github.com/tu-usuario/renova-gestion/internal/domain/repository"
)

// OrderUseCase aplica reglas de negocio para órdenes de servicio.
type OrderUseCase struct {
	repo repository.ServiceOrderRepository
	now  func() time.Time
}

// NewOrderUseCase construye el caso de uso con el puerto de persistencia.
func NewOrderUseCase(repo repository.ServiceOrderRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo, now: time.Now}
}

// Create abre una orden nueva con estado Aberta y fecha de creación del
// momento actual. Descripción o cliente vacíos → domain.ErrInvalidInput sin
// persistir nada. El nombre del cliente se copia tal cual: no se valida
// contra la colección de clientes.
func (uc *OrderUseCase) Create(in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	description := strings.TrimSpace(in.Description)
	clientName := strings.TrimSpace(in.ClientName)
	if description == "" || clientName == "" {
		return nil, domain.ErrInvalidInput
	}
	order := &entity.ServiceOrder{
		Description: description,
		ClientName:  clientName,
		Status:      entity.StatusOpen,
		CreatedAt:   uc.now().Format(entity.CreatedAtLayout),
	}
	if err := uc.repo.Create(order); err != nil {
		return nil, err
	}
	return orderToResponse(order), nil
}

// GetByNumber obtiene una orden por número. domain.ErrNotFound si no existe.
func (uc *OrderUseCase) GetByNumber(number int) (*dto.OrderResponse, error) {
	order, err := uc.repo.GetByNumber(number)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return orderToResponse(order), nil
}

// List lista todas las órdenes en orden de creación.
func (uc *OrderUseCase) List() (*dto.OrderListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *orderToResponse(o))
	}
	return &dto.OrderListResponse{Items: items, Total: len(items)}, nil
}

// SetStatus cambia el estado de una orden. Entrada fuera del enum →
// domain.ErrInvalidStatus; orden inexistente → domain.ErrNotFound. En ambos
// casos no se toca memoria ni disco.
func (uc *OrderUseCase) SetStatus(number int, status string) (*dto.OrderResponse, error) {
	parsed, err := entity.ParseStatus(status)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.UpdateStatus(number, parsed); err != nil {
		return nil, err
	}
	return uc.GetByNumber(number)
}

// Report cuenta las órdenes por estado sobre la colección completa, bajo
// demanda y sin caché. Cualquier estado almacenado fuera del enum conocido se
// cuenta como abierta/en curso: tolerancia heredada con datos históricos
// malformados, que se conservan tal cual en el archivo.
func (uc *OrderUseCase) Report() (*dto.OrderReportResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	report := &dto.OrderReportResponse{Total: len(list)}
	for _, o := range list {
		switch o.Status {
		case entity.StatusCompleted:
			report.Completed++
		case entity.StatusCancelled:
			report.Cancelled++
		default:
			report.Open++
		}
	}
	return report, nil
}

func orderToResponse(o *entity.ServiceOrder) *dto.OrderResponse {
	return &dto.OrderResponse{
		Number:      o.Number,
		Description: o.Description,
		ClientName:  o.ClientName,
		Status:      string(o.Status),
		CreatedAt:   o.CreatedAt,
	}
}
