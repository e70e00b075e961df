package jsonstore

import "github.com/tu-usuario/renova-gestion/internal/domain"

// collection es el motor común de los repositorios sobre archivo: colección
// en memoria cargada al construirse, en orden de inserción, persistida
// completa tras cada mutación. Cada mutación aplica y persiste por completo o
// falla dejando memoria y disco intactos.
type collection[T any] struct {
	store *Store
	name  string
	items []T
	key   func(T) int
}

// newCollection carga la colección desde el Store. key extrae el
// identificador numérico de un registro.
func newCollection[T any](store *Store, name string, key func(T) int) (*collection[T], error) {
	items, err := Load[T](store, name)
	if err != nil {
		return nil, err
	}
	return &collection[T]{store: store, name: name, items: items, key: key}, nil
}

// nextID calcula el siguiente identificador como máximo existente + 1 (1 si
// la colección está vacía). Se deriva de la colección cargada, no de un
// contador aparte: tras un borrado los identificadores no se reutilizan y el
// valor se auto-corrige según el contenido real del archivo.
func (c *collection[T]) nextID() int {
	max := 0
	for _, it := range c.items {
		if k := c.key(it); k > max {
			max = k
		}
	}
	return max + 1
}

// all devuelve la colección en orden de inserción. Los llamadores no deben
// mutarla directamente; toda mutación pasa por el repositorio.
func (c *collection[T]) all() []T {
	return c.items
}

// find busca el primer registro con el identificador dado (escaneo lineal).
// Devuelve el cero de T si no existe.
func (c *collection[T]) find(id int) (T, bool) {
	for _, it := range c.items {
		if c.key(it) == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// add agrega el registro y persiste; si la escritura falla, revierte la memoria.
func (c *collection[T]) add(item T) error {
	c.items = append(c.items, item)
	if err := c.persist(); err != nil {
		c.items = c.items[:len(c.items)-1]
		return err
	}
	return nil
}

// remove elimina el registro con el identificador dado y persiste. Los
// identificadores de los demás registros no cambian. domain.ErrNotFound si no
// existe; si la escritura falla, revierte la memoria.
func (c *collection[T]) remove(id int) error {
	for i, it := range c.items {
		if c.key(it) == id {
			removed := it
			c.items = append(c.items[:i], c.items[i+1:]...)
			if err := c.persist(); err != nil {
				c.items = append(c.items[:i], append([]T{removed}, c.items[i:]...)...)
				return err
			}
			return nil
		}
	}
	return domain.ErrNotFound
}

// persist escribe la colección completa en el Store.
func (c *collection[T]) persist() error {
	return Save(c.store, c.name, c.items)
}
