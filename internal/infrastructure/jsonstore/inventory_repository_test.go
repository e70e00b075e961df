package jsonstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/renova-gestion/internal/domain"
	"github.com/tu-usuario/renova-gestion/internal/domain/entity"
)

func TestInventoryRepo_CreateAndGet(t *testing.T) {
	store := newTestStore(t)
	repo, err := NewInventoryRepository(store)
	require.NoError(t, err)

	item := &entity.InventoryItem{Material: "Cemento", Quantity: 50}
	require.NoError(t, repo.Create(item))
	assert.Equal(t, 1, item.ID)

	got, err := repo.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, item, got)
}

func TestInventoryRepo_UpdateQuantity(t *testing.T) {
	store := newTestStore(t)
	repo, err := NewInventoryRepository(store)
	require.NoError(t, err)

	item := &entity.InventoryItem{Material: "Arena", Quantity: 10}
	require.NoError(t, repo.Create(item))

	require.NoError(t, repo.UpdateQuantity(item.ID, 3))
	got, err := repo.GetByID(item.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Quantity)

	// Negativa: rechazada sin tocar estado.
	err = repo.UpdateQuantity(item.ID, -1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	got, err = repo.GetByID(item.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Quantity)

	// Inexistente.
	err = repo.UpdateQuantity(99, 5)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
