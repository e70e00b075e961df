package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/renova-gestion/internal/domain"
)

func TestParseStatus(t *testing.T) {
	cases := []struct {
		in   string
		want OrderStatus
	}{
		{"Aberta", StatusOpen},
		{"open", StatusOpen},
		{"  OPEN  ", StatusOpen},
		{"Concluída", StatusCompleted},
		{"concluida", StatusCompleted},
		{"COMPLETED", StatusCompleted},
		{"Cancelada", StatusCancelled},
		{"cancelled", StatusCancelled},
		{"canceled", StatusCancelled},
	}
	for _, tc := range cases {
		got, err := ParseStatus(tc.in)
		require.NoError(t, err, "entrada %q", tc.in)
		assert.Equal(t, tc.want, got, "entrada %q", tc.in)
	}
}

func TestParseStatus_Unknown(t *testing.T) {
	for _, in := range []string{"", "Pendiente", "done", "abiertamente"} {
		_, err := ParseStatus(in)
		assert.ErrorIs(t, err, domain.ErrInvalidStatus, "entrada %q", in)
	}
}

func TestOrderStatus_IsValid(t *testing.T) {
	assert.True(t, StatusOpen.IsValid())
	assert.True(t, StatusCompleted.IsValid())
	assert.True(t, StatusCancelled.IsValid())
	assert.False(t, OrderStatus("Pendiente").IsValid())
	assert.False(t, OrderStatus("").IsValid())
}
