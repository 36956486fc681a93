package storage

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("not found")

	// ErrConflict: violación de unicidad detectada por el storage (p.ej. carrera
	// entre dos altas que pasaron la validación en proceso).
	ErrConflict = errors.New("constraint conflict")
)

// NotFoundError lleva la entidad y el identificador pedido.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func NotFound(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// ConflictError indica qué restricción se violó.
type ConflictError struct {
	Entity     string
	Constraint string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: unique constraint %s violated", e.Entity, e.Constraint)
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

func Conflict(entity, constraint string) error {
	return &ConflictError{Entity: entity, Constraint: constraint}
}
