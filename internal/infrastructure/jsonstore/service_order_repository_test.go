package jsonstore

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/renova-gestion/internal/domain"
	"github.com/tu-usuario/renova-gestion/internal/domain/entity"
)

func newOrderRepo(t *testing.T) (*Store, *ServiceOrderRepo) {
	t.Helper()
	store := newTestStore(t)
	repo, err := NewServiceOrderRepository(store)
	require.NoError(t, err)
	return store, repo
}

func TestOrderRepo_CreateAssignsNumberAndDefaults(t *testing.T) {
	_, repo := newOrderRepo(t)

	o := &entity.ServiceOrder{Description: "Reforma de baño", ClientName: "Ana", CreatedAt: "01/02/2026 10:30"}
	require.NoError(t, repo.Create(o))

	assert.Equal(t, 1, o.Number)
	assert.Equal(t, entity.StatusOpen, o.Status)
}

func TestOrderRepo_UpdateStatusPersists(t *testing.T) {
	store, repo := newOrderRepo(t)

	o := &entity.ServiceOrder{Description: "Pintura", ClientName: "Bruno", CreatedAt: "01/02/2026 10:30"}
	require.NoError(t, repo.Create(o))
	require.NoError(t, repo.UpdateStatus(o.Number, entity.StatusCompleted))

	// Releer desde disco con otro repositorio.
	repo2, err := NewServiceOrderRepository(store)
	require.NoError(t, err)
	got, err := repo2.GetByNumber(o.Number)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, entity.StatusCompleted, got.Status)
	assert.Equal(t, "01/02/2026 10:30", got.CreatedAt, "CreatedAt es inmutable")
}

// Orden inexistente: error y cero E/S (los bytes del archivo no cambian).
func TestOrderRepo_UpdateStatusMissingNoWrite(t *testing.T) {
	store, repo := newOrderRepo(t)

	o := &entity.ServiceOrder{Description: "Tejado", ClientName: "Carla", CreatedAt: "01/02/2026 10:30"}
	require.NoError(t, repo.Create(o))

	before, err := os.ReadFile(store.Path(OrdersFile))
	require.NoError(t, err)

	err = repo.UpdateStatus(99, entity.StatusCompleted)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	after, err := os.ReadFile(store.Path(OrdersFile))
	require.NoError(t, err)
	assert.Equal(t, before, after, "no debe haber escritura alguna")
}

// Estado fuera del enum: rechazado sin tocar memoria ni disco.
func TestOrderRepo_UpdateStatusInvalid(t *testing.T) {
	store, repo := newOrderRepo(t)

	o := &entity.ServiceOrder{Description: "Suelo", ClientName: "Dora", CreatedAt: "01/02/2026 10:30"}
	require.NoError(t, repo.Create(o))

	before, err := os.ReadFile(store.Path(OrdersFile))
	require.NoError(t, err)

	err = repo.UpdateStatus(o.Number, entity.OrderStatus("Pendiente"))
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)

	got, err := repo.GetByNumber(o.Number)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusOpen, got.Status)

	after, err := os.ReadFile(store.Path(OrdersFile))
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

// Los números de orden crecen monótonamente a partir del contenido cargado.
func TestOrderRepo_NumbersContinueFromFile(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, Save(store, OrdersFile, []*entity.ServiceOrder{
		{Number: 7, Description: "Histórica", ClientName: "Ana", Status: entity.StatusCancelled, CreatedAt: "01/01/2020 08:00"},
	}))

	repo, err := NewServiceOrderRepository(store)
	require.NoError(t, err)
	o := &entity.ServiceOrder{Description: "Nueva", ClientName: "Bruno", CreatedAt: "01/02/2026 10:30"}
	require.NoError(t, repo.Create(o))
	assert.Equal(t, 8, o.Number)
}
