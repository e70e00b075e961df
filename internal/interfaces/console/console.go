// Package console implementa el shell de consola: un bucle de menús que
// recoge la entrada del usuario e invoca los casos de uso. Toda la lógica de
// negocio vive en la capa de aplicación; aquí solo hay prompts y renderizado.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tu-usuario/renova-gestion/internal/application/auth"
	"github.com/tu-usuario/renova-gestion/internal/application/usecase"
	"github.com/tu-usuario/renova-gestion/internal/domain"
)

// Deps casos de uso que consume el shell.
type Deps struct {
	ClientUC    *usecase.ClientUseCase
	InventoryUC *usecase.InventoryUseCase
	OrderUC     *usecase.OrderUseCase
	AuthUC      *auth.AuthUseCase
}

// Shell bucle de menús sobre un par entrada/salida.
type Shell struct {
	deps Deps
	in   *bufio.Reader
	out  io.Writer
}

// New construye el shell.
func New(deps Deps, in io.Reader, out io.Writer) *Shell {
	return &Shell{deps: deps, in: bufio.NewReader(in), out: out}
}

// Run ejecuta el menú principal hasta que el usuario elija salir o se agote
// la entrada.
func (s *Shell) Run() {
	for {
		fmt.Fprintln(s.out)
		fmt.Fprintln(s.out, "========= MENÚ PRINCIPAL =========")
		fmt.Fprintln(s.out, "1. Órdenes de servicio")
		fmt.Fprintln(s.out, "2. Gestionar almacén")
		fmt.Fprintln(s.out, "3. Gestionar clientes")
		fmt.Fprintln(s.out, "4. Salir")
		fmt.Fprintln(s.out, "==================================")

		choice, ok := s.prompt("Elija una opción: ")
		if !ok {
			return
		}
		switch choice {
		case "1":
			s.ordersMenu()
		case "2":
			s.inventoryMenu()
		case "3":
			s.clientsMenu()
		case "4":
			fmt.Fprintln(s.out, "Hasta pronto.")
			return
		default:
			fmt.Fprintln(s.out, "Opción inválida.")
		}
	}
}

// Login pide credenciales antes de entrar al menú. Tres intentos.
func (s *Shell) Login() bool {
	for attempt := 0; attempt < 3; attempt++ {
		username, ok := s.prompt("Usuario: ")
		if !ok {
			return false
		}
		password, ok := s.prompt("Contraseña: ")
		if !ok {
			return false
		}
		user, err := s.deps.AuthUC.VerifyCredentials(username, password)
		if err == nil {
			fmt.Fprintf(s.out, "Bienvenido, %s (%s).\n", user.Username, user.UserType)
			return true
		}
		if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrUnauthorized) {
			fmt.Fprintln(s.out, "Usuario o contraseña incorrectos.")
			continue
		}
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return false
	}
	return false
}

// prompt muestra el texto y lee una línea. ok=false si la entrada se agotó.
func (s *Shell) prompt(text string) (string, bool) {
	fmt.Fprint(s.out, text)
	line, err := s.in.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return strings.TrimSpace(line), true
}

// promptInt pide un número entero y reintenta ante entrada no numérica.
func (s *Shell) promptInt(text string) (int, bool) {
	for {
		raw, ok := s.prompt(text)
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			fmt.Fprintln(s.out, "Debe ser un valor numérico.")
			continue
		}
		return n, true
	}
}
