package console

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tu-usuario/renova-gestion/internal/application/dto"
	"github.com/tu-usuario/renova-gestion/internal/domain"
)

func (s *Shell) clientsMenu() {
	for {
		fmt.Fprintln(s.out)
		fmt.Fprintln(s.out, "--- Clientes ---")
		fmt.Fprintln(s.out, "1. Registrar cliente")
		fmt.Fprintln(s.out, "2. Listar clientes")
		fmt.Fprintln(s.out, "3. Eliminar cliente")
		fmt.Fprintln(s.out, "4. Volver")

		choice, ok := s.prompt("Elija una opción: ")
		if !ok {
			return
		}
		switch choice {
		case "1":
			s.createClient()
		case "2":
			s.listClients()
		case "3":
			s.deleteClient()
		case "4":
			return
		default:
			fmt.Fprintln(s.out, "Opción inválida.")
		}
	}
}

func (s *Shell) createClient() {
	name, ok := s.prompt("Nombre del cliente: ")
	if !ok {
		return
	}
	phone, ok := s.prompt("Teléfono: ")
	if !ok {
		return
	}
	client, err := s.deps.ClientUC.Create(dto.CreateClientRequest{Name: name, Phone: phone})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			fmt.Fprintln(s.out, "El nombre es obligatorio.")
			return
		}
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "Cliente '%s' registrado con ID %d.\n", client.Name, client.ID)
}

func (s *Shell) listClients() {
	list, err := s.deps.ClientUC.List()
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	if list.Total == 0 {
		fmt.Fprintln(s.out, "Todavía no hay clientes registrados.")
		return
	}
	line := strings.Repeat("-", 50)
	fmt.Fprintln(s.out, line)
	fmt.Fprintf(s.out, "%-5s%-25s%s\n", "ID", "Nombre", "Teléfono")
	fmt.Fprintln(s.out, line)
	for _, c := range list.Items {
		fmt.Fprintf(s.out, "%-5d%-25s%s\n", c.ID, c.Name, c.Phone)
	}
	fmt.Fprintln(s.out, line)
}

func (s *Shell) deleteClient() {
	id, ok := s.promptInt("ID del cliente a eliminar: ")
	if !ok {
		return
	}
	if err := s.deps.ClientUC.Delete(id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			fmt.Fprintln(s.out, "Cliente no encontrado.")
			return
		}
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "Cliente %d eliminado.\n", id)
}
