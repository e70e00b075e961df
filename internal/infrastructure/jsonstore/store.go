// Package jsonstore implementa los puertos de persistencia sobre archivos
// JSON planos, un archivo por colección. Cada mutación reescribe la colección
// completa; con colecciones de decenas a pocos miles de registros el costo
// O(n) por escritura es aceptable y no hay escritores concurrentes.
package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Nombres de archivo heredados del sistema original; se mantienen para poder
// leer los datos ya existentes.
const (
	ClientsFile   = "clientes.json"
	InventoryFile = "estoque.json"
	OrdersFile    = "ordens_de_servico.json"
	UsersFile     = "usuarios.json"
)

// Store lee y escribe colecciones en un directorio de datos. No mantiene
// estado propio: es una función pura de lectura/escritura.
type Store struct {
	dir string
}

// NewStore crea el adaptador sobre el directorio indicado, creándolo si no existe.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de datos: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Path devuelve la ruta absoluta del archivo de una colección.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name)
}

// Load lee la colección completa del archivo indicado. Archivo inexistente o
// contenido no parseable → colección vacía sin error: comportamiento heredado
// del sistema original y documentado como riesgo de pérdida silenciosa (un
// Save posterior sobrescribe el archivo corrupto con la colección vacía).
// Cualquier otro fallo de E/S sí se devuelve al llamador.
func Load[T any](s *Store, name string) ([]T, error) {
	data, err := os.ReadFile(s.Path(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("leer almacén %s: %w", name, err)
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, nil
	}
	return items, nil
}

// Save serializa la colección completa con sangría de 4 espacios (legible por
// humanos, igual que los archivos originales) y reemplaza el archivo de forma
// atómica: escribe a un temporal en el mismo directorio, hace fsync y renombra
// sobre el destino. Un Load posterior nunca ve un archivo truncado.
func Save[T any](s *Store, name string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.MarshalIndent(items, "", "    ")
	if err != nil {
		return fmt.Errorf("serializar almacén %s: %w", name, err)
	}
	data = append(data, '\n')

	target := s.Path(name)
	tmp, err := os.CreateTemp(s.dir, "."+name+".tmp-*")
	if err != nil {
		return fmt.Errorf("escribir almacén %s: %w", name, err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("escribir almacén %s: %w", name, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("escribir almacén %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("escribir almacén %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		return fmt.Errorf("reemplazar almacén %s: %w", name, err)
	}
	return nil
}
