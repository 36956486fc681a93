package validation

import (
	"errors"
	"sort"
	"strings"
)

// ErrInvalid permite errors.Is(err, validation.ErrInvalid) sin conocer el tipo concreto.
var ErrInvalid = errors.New("validation failed")

// Errors agrupa mensajes por campo. El orden de los mensajes de un campo es el
// orden en que se detectaron.
type Errors map[string][]string

func (e Errors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

// Has indica si el campo ya acumuló algún error.
func (e Errors) Has(field string) bool {
	return len(e[field]) > 0
}

func (e Errors) Empty() bool {
	return len(e) == 0
}

// Merge copia los mensajes de other respetando el orden de cada campo.
func (e Errors) Merge(other Errors) {
	for _, f := range other.Fields() {
		for _, m := range other[f] {
			e.Add(f, m)
		}
	}
}

// Fields devuelve los campos con error ordenados alfabéticamente.
func (e Errors) Fields() []string {
	out := make([]string, 0, len(e))
	for f := range e {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Err devuelve nil si no hay errores, o un *Error con una copia del mapa.
func (e Errors) Err() error {
	if e.Empty() {
		return nil
	}
	cp := make(Errors, len(e))
	cp.Merge(e)
	return &Error{Fields: cp}
}

// Error es el rechazo de validación (uno o más campos).
type Error struct {
	Fields Errors
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields.Fields() {
		parts = append(parts, f+": "+strings.Join(e.Fields[f], ", "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *Error) Is(target error) bool {
	return target == ErrInvalid
}

// FieldErrors extrae el mapa de errores si err es (o envuelve) un *Error.
func FieldErrors(err error) (Errors, bool) {
	var ve *Error
	if errors.As(err, &ve) {
		return ve.Fields, true
	}
	return nil, false
}
