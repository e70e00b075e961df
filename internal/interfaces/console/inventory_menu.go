package console

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tu-usuario/renova-gestion/internal/application/dto"
	"github.com/tu-usuario/renova-gestion/internal/domain"
)

func (s *Shell) inventoryMenu() {
	for {
		fmt.Fprintln(s.out)
		fmt.Fprintln(s.out, "--- Almacén ---")
		fmt.Fprintln(s.out, "1. Registrar material")
		fmt.Fprintln(s.out, "2. Ver almacén")
		fmt.Fprintln(s.out, "3. Fijar cantidad")
		fmt.Fprintln(s.out, "4. Ajustar cantidad (entrada/salida)")
		fmt.Fprintln(s.out, "5. Volver")

		choice, ok := s.prompt("Elija una opción: ")
		if !ok {
			return
		}
		switch choice {
		case "1":
			s.createItem()
		case "2":
			s.listItems()
		case "3":
			s.setQuantity()
		case "4":
			s.adjustQuantity()
		case "5":
			return
		default:
			fmt.Fprintln(s.out, "Opción inválida.")
		}
	}
}

func (s *Shell) createItem() {
	material, ok := s.prompt("Nombre del material: ")
	if !ok {
		return
	}
	quantity, ok := s.promptInt("Cantidad inicial: ")
	if !ok {
		return
	}
	item, err := s.deps.InventoryUC.Create(dto.CreateItemRequest{Material: material, Quantity: quantity})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			fmt.Fprintln(s.out, "El material es obligatorio y la cantidad no puede ser negativa.")
			return
		}
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "Material '%s' registrado con ID %d.\n", item.Material, item.ID)
}

func (s *Shell) listItems() {
	list, err := s.deps.InventoryUC.List()
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	if list.Total == 0 {
		fmt.Fprintln(s.out, "El almacén está vacío.")
		return
	}
	line := strings.Repeat("-", 40)
	fmt.Fprintln(s.out, line)
	fmt.Fprintf(s.out, "%-5s%-25s%s\n", "ID", "Material", "Cantidad")
	fmt.Fprintln(s.out, line)
	for _, it := range list.Items {
		fmt.Fprintf(s.out, "%-5d%-25s%d\n", it.ID, it.Material, it.Quantity)
	}
	fmt.Fprintln(s.out, line)
}

func (s *Shell) setQuantity() {
	id, ok := s.promptInt("ID del material: ")
	if !ok {
		return
	}
	quantity, ok := s.promptInt("Nueva cantidad: ")
	if !ok {
		return
	}
	item, err := s.deps.InventoryUC.SetQuantity(id, quantity)
	if err != nil {
		s.printQuantityError(err)
		return
	}
	fmt.Fprintf(s.out, "Cantidad de '%s' fijada en %d.\n", item.Material, item.Quantity)
}

func (s *Shell) adjustQuantity() {
	id, ok := s.promptInt("ID del material: ")
	if !ok {
		return
	}
	delta, ok := s.promptInt("Ajuste (+entrada / -salida): ")
	if !ok {
		return
	}
	item, err := s.deps.InventoryUC.AdjustQuantity(id, delta)
	if err != nil {
		s.printQuantityError(err)
		return
	}
	fmt.Fprintf(s.out, "Cantidad de '%s' ahora es %d.\n", item.Material, item.Quantity)
}

func (s *Shell) printQuantityError(err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		fmt.Fprintln(s.out, "Material no encontrado.")
	case errors.Is(err, domain.ErrInvalidInput):
		fmt.Fprintln(s.out, "La cantidad no puede ser negativa.")
	case errors.Is(err, domain.ErrInsufficientStock):
		fmt.Fprintln(s.out, "Stock insuficiente: el ajuste dejaría la cantidad por debajo de cero.")
	default:
		fmt.Fprintf(s.out, "Error: %v\n", err)
	}
}
