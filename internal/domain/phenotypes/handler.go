package phenotypes

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"genotrack/internal/domain/vocabulary"
	"genotrack/internal/platform/logger"
	"genotrack/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, vocab *vocabulary.Vocabulary, log logger.Logger) {
	r.Route("/patients/{patientID}/phenotypes", func(pr chi.Router) {
		pr.Get("/", listPatientPhenotypesHandler(svc, vocab, log))
		pr.Post("/", createPhenotypeHandler(svc, vocab, log))

		pr.Get("/{phenotypeID}", getPhenotypeHandler(svc, vocab, log))
		pr.Patch("/{phenotypeID}", updatePhenotypeHandler(svc, vocab, log))
		pr.Delete("/{phenotypeID}", deletePhenotypeHandler(svc, log))
	})

	r.Get("/phenotypes", listPhenotypesHandler(svc, vocab, log))
}

type createPhenotypeRequest struct {
	HPOCode     string   `json:"hpo_code" example:"HP:0003124"`
	Description string   `json:"description" example:"Hipercolesterolemia familiar"`
	Severity    Severity `json:"severity" enums:"mild,moderate,severe,profound"`
	AgeOfOnset  Onset    `json:"age_of_onset" enums:"congenital,neonatal,infantile,childhood,juvenile,adult"` // opcional
}

type updatePhenotypeRequest struct {
	HPOCode     *string   `json:"hpo_code"`
	Description *string   `json:"description"`
	Severity    *Severity `json:"severity"`
	AgeOfOnset  *Onset    `json:"age_of_onset"` // "" limpia el valor
}

// Response es el fenotipo con sus vistas derivadas.
type Response struct {
	ID              string    `json:"id"`
	PatientID       string    `json:"patient_id"`
	HPOCode         string    `json:"hpo_code"`
	HPOTermName     string    `json:"hpo_term_name,omitempty" example:"Hipercolesterolemia"`
	Description     string    `json:"description"`
	Severity        Severity  `json:"severity"`
	AgeOfOnset      Onset     `json:"age_of_onset,omitempty"`
	IsSevere        bool      `json:"is_severe"`
	FullDescription string    `json:"full_description"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type listPhenotypesResponse struct {
	Phenotypes []Response `json:"phenotypes"`
	Total      int        `json:"total"`
}

func NewResponse(p Phenotype, vocab *vocabulary.Vocabulary) Response {
	term, _ := p.HPOTermName(vocab)
	return Response{
		ID:              p.ID,
		PatientID:       p.PatientID,
		HPOCode:         p.HPOCode,
		HPOTermName:     term,
		Description:     p.Description,
		Severity:        p.Severity,
		AgeOfOnset:      p.AgeOfOnset,
		IsSevere:        p.IsSevere(),
		FullDescription: p.FullDescription(vocab),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func newListResponse(items []Phenotype, vocab *vocabulary.Vocabulary) listPhenotypesResponse {
	out := make([]Response, 0, len(items))
	for _, p := range items {
		out = append(out, NewResponse(p, vocab))
	}
	return listPhenotypesResponse{Phenotypes: out, Total: len(out)}
}

// listPatientPhenotypesHandler godoc
// @Summary Listar fenotipos del paciente
// @Tags phenotypes
// @Produce json
// @Param patientID path string true "ID interno del paciente"
// @Success 200 {object} listPhenotypesResponse
// @Failure 404 {object} respond.ErrorBody "paciente inexistente"
// @Router /patients/{patientID}/phenotypes [get]
func listPatientPhenotypesHandler(svc *Service, vocab *vocabulary.Vocabulary, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListByPatient(r.Context(), chi.URLParam(r, "patientID"))
		if err != nil {
			respond.Error(w, r, log, err)
			return
		}
		respond.JSON(w, http.StatusOK, newListResponse(items, vocab))
	}
}

// createPhenotypeHandler godoc
// @Summary Registrar fenotipo
// @Description Código HPO con formato HP:0000000 presente en el vocabulario, único por paciente. La descripción debe contener la primera palabra del término HPO.
// @Tags phenotypes
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID del investigador"
// @Param Authorization header string false "Bearer token en producción"
// @Param patientID path string true "ID interno del paciente"
// @Param payload body createPhenotypeRequest true "Fenotipo"
// @Success 201 {object} Response
// @Failure 400 {object} respond.ErrorBody "invalid json"
// @Failure 404 {object} respond.ErrorBody "paciente inexistente"
// @Failure 409 {object} respond.ErrorBody "conflicto de unicidad en storage"
// @Failure 422 {object} respond.ValidationBody "errores por campo"
// @Router /patients/{patientID}/phenotypes [post]
func createPhenotypeHandler(svc *Service, vocab *vocabulary.Vocabulary, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPhenotypeRequest
		if err := respond.DecodeJSON(r, &req); err != nil {
			respond.BadRequest(w, "invalid json")
			return
		}

		p, err := svc.Create(r.Context(), chi.URLParam(r, "patientID"), Input{
			HPOCode:     req.HPOCode,
			Description: req.Description,
			Severity:    req.Severity,
			AgeOfOnset:  req.AgeOfOnset,
		})
		if err != nil {
			respond.Error(w, r, log, err)
			return
		}

		respond.JSON(w, http.StatusCreated, NewResponse(p, vocab))
	}
}

// getPhenotypeHandler godoc
// @Summary Obtener fenotipo
// @Tags phenotypes
// @Produce json
// @Param patientID path string true "ID interno del paciente"
// @Param phenotypeID path string true "ID del fenotipo"
// @Success 200 {object} Response
// @Failure 404 {object} respond.ErrorBody "paciente o fenotipo inexistente"
// @Router /patients/{patientID}/phenotypes/{phenotypeID} [get]
func getPhenotypeHandler(svc *Service, vocab *vocabulary.Vocabulary, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.Get(r.Context(), chi.URLParam(r, "patientID"), chi.URLParam(r, "phenotypeID"))
		if err != nil {
			respond.Error(w, r, log, err)
			return
		}
		respond.JSON(w, http.StatusOK, NewResponse(p, vocab))
	}
}

// updatePhenotypeHandler godoc
// @Summary Actualizar fenotipo
// @Tags phenotypes
// @Accept json
// @Produce json
// @Param patientID path string true "ID interno del paciente"
// @Param phenotypeID path string true "ID del fenotipo"
// @Param payload body updatePhenotypeRequest true "Campos a modificar"
// @Success 200 {object} Response
// @Failure 400 {object} respond.ErrorBody "invalid json"
// @Failure 404 {object} respond.ErrorBody "paciente o fenotipo inexistente"
// @Failure 422 {object} respond.ValidationBody "errores por campo"
// @Router /patients/{patientID}/phenotypes/{phenotypeID} [patch]
func updatePhenotypeHandler(svc *Service, vocab *vocabulary.Vocabulary, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updatePhenotypeRequest
		if err := respond.DecodeJSON(r, &req); err != nil {
			respond.BadRequest(w, "invalid json")
			return
		}

		p, err := svc.Update(r.Context(), chi.URLParam(r, "patientID"), chi.URLParam(r, "phenotypeID"), Patch{
			HPOCode:     req.HPOCode,
			Description: req.Description,
			Severity:    req.Severity,
			AgeOfOnset:  req.AgeOfOnset,
		})
		if err != nil {
			respond.Error(w, r, log, err)
			return
		}

		respond.JSON(w, http.StatusOK, NewResponse(p, vocab))
	}
}

// deletePhenotypeHandler godoc
// @Summary Borrar fenotipo
// @Tags phenotypes
// @Param patientID path string true "ID interno del paciente"
// @Param phenotypeID path string true "ID del fenotipo"
// @Success 204
// @Failure 404 {object} respond.ErrorBody "paciente o fenotipo inexistente"
// @Router /patients/{patientID}/phenotypes/{phenotypeID} [delete]
func deletePhenotypeHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "patientID"), chi.URLParam(r, "phenotypeID")); err != nil {
			respond.Error(w, r, log, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// listPhenotypesHandler godoc
// @Summary Listar fenotipos
// @Description Filtros combinados con AND, en orden de alta. severe=true equivale a severity en {severe, profound}.
// @Tags phenotypes
// @Produce json
// @Param severity query string false "Severidad exacta" Enums(mild, moderate, severe, profound)
// @Param severe query bool false "Sólo severe / profound"
// @Param age_of_onset query string false "Edad de inicio exacta" Enums(congenital, neonatal, infantile, childhood, juvenile, adult)
// @Success 200 {object} listPhenotypesResponse
// @Failure 400 {object} respond.ErrorBody "filtro inválido"
// @Router /phenotypes [get]
func listPhenotypesHandler(svc *Service, vocab *vocabulary.Vocabulary, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		filter := ListFilter{
			Severity:   Severity(strings.TrimSpace(q.Get("severity"))),
			AgeOfOnset: Onset(strings.TrimSpace(q.Get("age_of_onset"))),
		}
		if filter.Severity != "" && !filter.Severity.Valid() {
			respond.BadRequest(w, "unknown severity")
			return
		}
		if filter.AgeOfOnset != "" && !filter.AgeOfOnset.Valid() {
			respond.BadRequest(w, "unknown age_of_onset")
			return
		}
		if v := strings.TrimSpace(q.Get("severe")); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				respond.BadRequest(w, "severe must be true or false")
				return
			}
			filter.SevereOnly = b
		}

		items, err := svc.List(r.Context(), filter)
		if err != nil {
			respond.Error(w, r, log, err)
			return
		}
		respond.JSON(w, http.StatusOK, newListResponse(items, vocab))
	}
}
