// Package respond escribe respuestas JSON y traduce errores de dominio a status HTTP.
package respond

import (
	"encoding/json"
	"errors"
	"net/http"

	"genotrack/internal/domain/validation"
	"genotrack/internal/platform/logger"
	"genotrack/internal/ports/storage"

	chimw "github.com/go-chi/chi/v5/middleware"
)

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ErrorBody es el cuerpo de los errores que no son de validación.
type ErrorBody struct {
	Error string `json:"error"`
}

// ValidationBody lleva todos los campos rechazados con sus mensajes.
type ValidationBody struct {
	Errors map[string][]string `json:"errors"`
}

func BadRequest(w http.ResponseWriter, msg string) {
	JSON(w, http.StatusBadRequest, ErrorBody{Error: msg})
}

// Error mapea:
//   - validación => 422 {"errors": {...}}
//   - not found => 404
//   - conflicto de unicidad en storage => 409
//   - resto => 500 (se loguea, no se expone)
func Error(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	if fields, ok := validation.FieldErrors(err); ok {
		JSON(w, http.StatusUnprocessableEntity, ValidationBody{Errors: fields})
		return
	}

	switch {
	case errors.Is(err, storage.ErrNotFound):
		JSON(w, http.StatusNotFound, ErrorBody{Error: err.Error()})
	case errors.Is(err, storage.ErrConflict):
		JSON(w, http.StatusConflict, ErrorBody{Error: err.Error()})
	default:
		if log != nil {
			log.Error("request failed", map[string]any{
				"request_id": chimw.GetReqID(r.Context()),
				"path":       r.URL.Path,
				"err":        err.Error(),
			})
		}
		JSON(w, http.StatusInternalServerError, ErrorBody{Error: "internal error"})
	}
}

// DecodeJSON rechaza campos desconocidos para que un typo no pase en silencio.
func DecodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
