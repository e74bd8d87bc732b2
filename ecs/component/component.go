package component

import (
	"errors"
	"sync/atomic"
)

var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

type ComponentID uint32

var nextComponentID atomic.Uint32

// ComponentKind identifies a component store holding values of type T.
type ComponentKind[T any] struct {
	id   ComponentID
	name string
}

func NewComponentKind[T any]() ComponentKind[T] {
	return ComponentKind[T]{id: ComponentID(nextComponentID.Add(1))}
}

func (k ComponentKind[T]) ID() ComponentID {
	return k.id
}

func (k ComponentKind[T]) Name() string {
	return k.name
}

func (k ComponentKind[T]) Valid() bool {
	return k.id != 0
}

// ComponentHandle is the exported registration of a component type.
type ComponentHandle[T any] struct {
	kind ComponentKind[T]
}

// NewComponent registers a component type. The name shows up in logs.
func NewComponent[T any](name string) ComponentHandle[T] {
	kind := NewComponentKind[T]()
	kind.name = name
	return ComponentHandle[T]{kind: kind}
}

func (h ComponentHandle[T]) Kind() ComponentKind[T] {
	return h.kind
}
