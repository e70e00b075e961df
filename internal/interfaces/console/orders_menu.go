package console

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tu-usuario/renova-gestion/internal/application/dto"
	"github.com/tu-usuario/renova-gestion/internal/domain"
)

func (s *Shell) ordersMenu() {
	for {
		fmt.Fprintln(s.out)
		fmt.Fprintln(s.out, "--- Órdenes de servicio ---")
		fmt.Fprintln(s.out, "1. Crear orden")
		fmt.Fprintln(s.out, "2. Listar órdenes")
		fmt.Fprintln(s.out, "3. Informe por estado")
		fmt.Fprintln(s.out, "4. Cambiar estado de una orden")
		fmt.Fprintln(s.out, "5. Volver")

		choice, ok := s.prompt("Elija una opción: ")
		if !ok {
			return
		}
		switch choice {
		case "1":
			s.createOrder()
		case "2":
			s.listOrders()
		case "3":
			s.orderReport()
		case "4":
			s.changeOrderStatus()
		case "5":
			return
		default:
			fmt.Fprintln(s.out, "Opción inválida.")
		}
	}
}

func (s *Shell) createOrder() {
	description, ok := s.prompt("Descripción del servicio: ")
	if !ok {
		return
	}
	clientName, ok := s.prompt("Nombre del cliente: ")
	if !ok {
		return
	}
	order, err := s.deps.OrderUC.Create(dto.CreateOrderRequest{Description: description, ClientName: clientName})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			fmt.Fprintln(s.out, "Descripción y cliente son obligatorios.")
			return
		}
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "Orden de servicio %d creada.\n", order.Number)
}

func (s *Shell) listOrders() {
	list, err := s.deps.OrderUC.List()
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	if list.Total == 0 {
		fmt.Fprintln(s.out, "Todavía no hay órdenes registradas.")
		return
	}
	line := strings.Repeat("-", 85)
	fmt.Fprintln(s.out, line)
	fmt.Fprintf(s.out, "%-5s%-25s%-20s%-15s%s\n", "Nº", "Descripción", "Cliente", "Estado", "Creada")
	fmt.Fprintln(s.out, line)
	for _, o := range list.Items {
		fmt.Fprintf(s.out, "%-5d%-25s%-20s%-15s%s\n", o.Number, o.Description, o.ClientName, o.Status, o.CreatedAt)
	}
	fmt.Fprintln(s.out, line)
}

func (s *Shell) orderReport() {
	report, err := s.deps.OrderUC.Report()
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "Total de órdenes: %d\n", report.Total)
	fmt.Fprintf(s.out, "Concluidas: %d\n", report.Completed)
	fmt.Fprintf(s.out, "Canceladas: %d\n", report.Cancelled)
	fmt.Fprintf(s.out, "Abiertas/En curso: %d\n", report.Open)
}

func (s *Shell) changeOrderStatus() {
	number, ok := s.promptInt("Número de la orden: ")
	if !ok {
		return
	}
	fmt.Fprintln(s.out, "1 - Aberta")
	fmt.Fprintln(s.out, "2 - Concluída")
	fmt.Fprintln(s.out, "3 - Cancelada")
	choice, ok := s.prompt("Nuevo estado: ")
	if !ok {
		return
	}
	var status string
	switch choice {
	case "1":
		status = "Aberta"
	case "2":
		status = "Concluída"
	case "3":
		status = "Cancelada"
	default:
		fmt.Fprintln(s.out, "Opción de estado inválida.")
		return
	}
	order, err := s.deps.OrderUC.SetStatus(number, status)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			fmt.Fprintln(s.out, "Orden no encontrada.")
			return
		}
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "Estado de la orden %d cambiado a '%s'.\n", order.Number, order.Status)
}
