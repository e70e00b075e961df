package entity

import (
	"strings"
	"unicode"

	"github.com/tu-usuario/renova-gestion/internal/domain"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// OrderStatus estado de una orden de servicio. Los valores canónicos son los
// que ya existen en los archivos de datos ("Aberta", "Concluída", "Cancelada");
// cualquier estado es alcanzable desde cualquier otro.
type OrderStatus string

const (
	StatusOpen      OrderStatus = "Aberta"
	StatusCompleted OrderStatus = "Concluída"
	StatusCancelled OrderStatus = "Cancelada"
)

// IsValid indica si el estado es uno de los tres valores conocidos.
func (s OrderStatus) IsValid() bool {
	return s == StatusOpen || s == StatusCompleted || s == StatusCancelled
}

// normalizador para comparar entradas sin distinguir acentos (Concluída ==
// concluida). NFD + eliminación de marcas diacríticas + NFC.
var statusNormalizer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func normalizeStatusKey(s string) string {
	folded, _, err := transform.String(statusNormalizer, strings.TrimSpace(s))
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}

// ParseStatus interpreta la entrada del usuario como estado de orden. Acepta
// las grafías del sistema original y sus equivalentes en inglés, sin
// distinguir mayúsculas ni acentos. Entrada desconocida → domain.ErrInvalidStatus.
func ParseStatus(in string) (OrderStatus, error) {
	switch normalizeStatusKey(in) {
	case "aberta", "open":
		return StatusOpen, nil
	case "concluida", "completed":
		return StatusCompleted, nil
	case "cancelada", "cancelled", "canceled":
		return StatusCancelled, nil
	default:
		return "", domain.ErrInvalidStatus
	}
}
