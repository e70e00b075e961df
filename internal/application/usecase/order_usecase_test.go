package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/renova-gestion/internal/application/dto"
	"github.com/tu-usuario/renova-gestion/internal/domain"
	"github.com/tu-usuario/renova-gestion/internal/domain/entity"
	"github.com/tu-usuario/renova-gestion/internal/infrastructure/jsonstore"
)

func newOrderUC(t *testing.T) (*jsonstore.Store, *OrderUseCase) {
	t.Helper()
	store, err := jsonstore.NewStore(t.TempDir())
	require.NoError(t, err)
	repo, err := jsonstore.NewServiceOrderRepository(store)
	require.NoError(t, err)
	uc := NewOrderUseCase(repo)
	uc.now = func() time.Time { return time.Date(2026, 2, 1, 10, 30, 0, 0, time.UTC) }
	return store, uc
}

func TestOrderUseCase_Create(t *testing.T) {
	_, uc := newOrderUC(t)

	order, err := uc.Create(dto.CreateOrderRequest{Description: "Reforma de cocina", ClientName: "Ana"})
	require.NoError(t, err)
	assert.Equal(t, 1, order.Number)
	assert.Equal(t, string(entity.StatusOpen), order.Status)
	assert.Equal(t, "01/02/2026 10:30", order.CreatedAt)
}

func TestOrderUseCase_CreateValidation(t *testing.T) {
	_, uc := newOrderUC(t)

	_, err := uc.Create(dto.CreateOrderRequest{Description: "", ClientName: "Ana"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreateOrderRequest{Description: "Pintura", ClientName: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	list, err := uc.List()
	require.NoError(t, err)
	assert.Zero(t, list.Total)
}

func TestOrderUseCase_SetStatus(t *testing.T) {
	_, uc := newOrderUC(t)

	order, err := uc.Create(dto.CreateOrderRequest{Description: "Tejado", ClientName: "Bruno"})
	require.NoError(t, err)

	// Acepta la grafía original y la inglesa.
	updated, err := uc.SetStatus(order.Number, "Concluída")
	require.NoError(t, err)
	assert.Equal(t, string(entity.StatusCompleted), updated.Status)

	updated, err = uc.SetStatus(order.Number, "cancelled")
	require.NoError(t, err)
	assert.Equal(t, string(entity.StatusCancelled), updated.Status)

	_, err = uc.SetStatus(order.Number, "Pendiente")
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)

	_, err = uc.SetStatus(99, "Concluída")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Estados históricos fuera del enum cuentan como abiertas/en curso en el
// informe, y el valor almacenado se conserva tal cual.
func TestOrderUseCase_ReportLenientBucketing(t *testing.T) {
	store, err := jsonstore.NewStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, jsonstore.Save(store, jsonstore.OrdersFile, []*entity.ServiceOrder{
		{Number: 1, Description: "A", ClientName: "Ana", Status: entity.StatusOpen, CreatedAt: "01/01/2025 09:00"},
		{Number: 2, Description: "B", ClientName: "Bruno", Status: entity.StatusCompleted, CreatedAt: "02/01/2025 09:00"},
		{Number: 3, Description: "C", ClientName: "Carla", Status: entity.StatusCancelled, CreatedAt: "03/01/2025 09:00"},
		{Number: 4, Description: "D", ClientName: "Dora", Status: entity.OrderStatus("Em Andamento"), CreatedAt: "04/01/2025 09:00"},
	}))

	repo, err := jsonstore.NewServiceOrderRepository(store)
	require.NoError(t, err)
	uc := NewOrderUseCase(repo)

	report, err := uc.Report()
	require.NoError(t, err)
	assert.Equal(t, 4, report.Total)
	assert.Equal(t, 2, report.Open, "el estado desconocido cuenta como abierta")
	assert.Equal(t, 1, report.Completed)
	assert.Equal(t, 1, report.Cancelled)

	got, err := uc.GetByNumber(4)
	require.NoError(t, err)
	assert.Equal(t, "Em Andamento", got.Status, "el valor almacenado no se corrige")
}

// Escenario completo: cliente Ana, orden para Ana, concluirla y listar.
func TestOrderUseCase_EndToEnd(t *testing.T) {
	store, uc := newOrderUC(t)

	clientRepo, err := jsonstore.NewClientRepository(store)
	require.NoError(t, err)
	clientUC := NewClientUseCase(clientRepo)

	client, err := clientUC.Create(dto.CreateClientRequest{Name: "Ana", Phone: "555-1234"})
	require.NoError(t, err)
	assert.Equal(t, 1, client.ID)

	order, err := uc.Create(dto.CreateOrderRequest{Description: "Arreglar tejado", ClientName: client.Name})
	require.NoError(t, err)
	assert.Equal(t, 1, order.Number)
	assert.Equal(t, string(entity.StatusOpen), order.Status)

	_, err = uc.SetStatus(order.Number, "Completed")
	require.NoError(t, err)

	list, err := uc.List()
	require.NoError(t, err)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, string(entity.StatusCompleted), list.Items[0].Status)
	assert.Equal(t, order.CreatedAt, list.Items[0].CreatedAt, "CreatedAt no cambia al concluir")
}
