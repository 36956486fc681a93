package patients

import (
	"net/http"
	"time"

	"genotrack/internal/domain/genomes"
	"genotrack/internal/domain/phenotypes"
	"genotrack/internal/domain/vocabulary"
	"genotrack/internal/platform/logger"
	"genotrack/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, vocab *vocabulary.Vocabulary, log logger.Logger) {
	r.Route("/patients", func(pr chi.Router) {
		pr.Post("/", createPatientHandler(svc, log))
		pr.Get("/", listPatientsHandler(svc, vocab, log))

		pr.Get("/{patientID}", getPatientHandler(svc, vocab, log))
		pr.Patch("/{patientID}", updatePatientHandler(svc, log))
		pr.Delete("/{patientID}", deletePatientHandler(svc, log))
	})
}

type createPatientRequest struct {
	PatientID string `json:"patient_id" example:"BR-PACIENTE-0321"`
	Name      string `json:"name" example:"Ana Silva"`
	BirthDate string `json:"birth_date" example:"1980-05-17"` // YYYY-MM-DD
	Gender    Gender `json:"gender" enums:"M,F,O"`
}

type updatePatientRequest struct {
	// Punteros para PATCH real: nil = no tocar.
	PatientID *string `json:"patient_id"`
	Name      *string `json:"name"`
	BirthDate *string `json:"birth_date"`
	Gender    *Gender `json:"gender"`
}

// patientResponse es el paciente sin asociaciones (respuesta de altas y cambios).
type patientResponse struct {
	ID        string    `json:"id"`
	PatientID string    `json:"patient_id"`
	Name      string    `json:"name"`
	BirthDate string    `json:"birth_date"`
	Gender    Gender    `json:"gender"`
	Age       int       `json:"age"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type associationResponse struct {
	Gene       string   `json:"gene"`
	Phenotypes []string `json:"phenotypes"`
	Variant    string   `json:"variant"`
}

// recordResponse es el paciente con genoma, fenotipos y vistas derivadas.
type recordResponse struct {
	patientResponse
	Stage                    Stage                 `json:"stage" enums:"draft,complete"`
	Genome                   *genomes.Response     `json:"genome"`
	Phenotypes               []phenotypes.Response `json:"phenotypes"`
	PhenotypeCodes           []string              `json:"phenotype_codes"`
	GenePhenotypeAssociation *associationResponse  `json:"gene_phenotype_association"`
}

type listPatientsResponse struct {
	Patients []recordResponse `json:"patients"`
	Total    int              `json:"total"`
}

func toPatientResponse(p Patient, now time.Time) patientResponse {
	return patientResponse{
		ID:        p.ID,
		PatientID: p.Identifier,
		Name:      p.Name,
		BirthDate: p.BirthDate.Format(dateLayout),
		Gender:    p.Gender,
		Age:       p.Age(now),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func toRecordResponse(rec Record, vocab *vocabulary.Vocabulary, now time.Time) recordResponse {
	out := recordResponse{
		patientResponse: toPatientResponse(rec.Patient, now),
		Stage:           rec.Stage(),
		Phenotypes:      make([]phenotypes.Response, 0, len(rec.Phenotypes)),
		PhenotypeCodes:  rec.PhenotypeCodes(),
	}
	if rec.Genome != nil {
		g := genomes.NewResponse(*rec.Genome)
		out.Genome = &g
	}
	for _, ph := range rec.Phenotypes {
		out.Phenotypes = append(out.Phenotypes, phenotypes.NewResponse(ph, vocab))
	}
	if a := rec.GenePhenotypeAssociation(); a != nil {
		out.GenePhenotypeAssociation = &associationResponse{
			Gene:       a.Gene,
			Phenotypes: a.Phenotypes,
			Variant:    a.Variant,
		}
	}
	return out
}

// createPatientHandler godoc
// @Summary Crear paciente
// @Description Primer paso del alta: el paciente queda en estado draft hasta registrar su genoma. Cualquier PATCH posterior exige genoma.
// @Tags patients
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID del investigador"
// @Param Authorization header string false "Bearer token en producción"
// @Param payload body createPatientRequest true "Paciente"
// @Success 201 {object} patientResponse
// @Failure 400 {object} respond.ErrorBody "invalid json"
// @Failure 409 {object} respond.ErrorBody "conflicto de unicidad en storage"
// @Failure 422 {object} respond.ValidationBody "errores por campo"
// @Router /patients [post]
func createPatientHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPatientRequest
		if err := respond.DecodeJSON(r, &req); err != nil {
			respond.BadRequest(w, "invalid json")
			return
		}

		p, err := svc.Create(r.Context(), Input{
			Identifier: req.PatientID,
			Name:       req.Name,
			BirthDate:  req.BirthDate,
			Gender:     req.Gender,
		})
		if err != nil {
			respond.Error(w, r, log, err)
			return
		}

		respond.JSON(w, http.StatusCreated, toPatientResponse(p, svc.Now()))
	}
}

// listPatientsHandler godoc
// @Summary Listar pacientes
// @Description Filtros combinados con AND: hpo_code (algún fenotipo con ese código) y gene_symbol (gen del genoma). Orden de alta.
// @Tags patients
// @Produce json
// @Param hpo_code query string false "Código HPO exacto"
// @Param gene_symbol query string false "Símbolo exacto del gen"
// @Success 200 {object} listPatientsResponse
// @Router /patients [get]
func listPatientsHandler(svc *Service, vocab *vocabulary.Vocabulary, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		items, err := svc.List(r.Context(), ListFilter{
			HPOCode:    q.Get("hpo_code"),
			GeneSymbol: q.Get("gene_symbol"),
		})
		if err != nil {
			respond.Error(w, r, log, err)
			return
		}

		now := svc.Now()
		out := make([]recordResponse, 0, len(items))
		for _, rec := range items {
			out = append(out, toRecordResponse(rec, vocab, now))
		}
		respond.JSON(w, http.StatusOK, listPatientsResponse{Patients: out, Total: len(out)})
	}
}

// getPatientHandler godoc
// @Summary Obtener paciente
// @Description Incluye edad, etapa (draft/complete), genoma, fenotipos y la asociación gen-fenotipo.
// @Tags patients
// @Produce json
// @Param patientID path string true "ID interno del paciente"
// @Success 200 {object} recordResponse
// @Failure 404 {object} respond.ErrorBody "paciente inexistente"
// @Router /patients/{patientID} [get]
func getPatientHandler(svc *Service, vocab *vocabulary.Vocabulary, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := svc.Record(r.Context(), chi.URLParam(r, "patientID"))
		if err != nil {
			respond.Error(w, r, log, err)
			return
		}
		respond.JSON(w, http.StatusOK, toRecordResponse(rec, vocab, svc.Now()))
	}
}

// updatePatientHandler godoc
// @Summary Actualizar paciente
// @Description Falla con genome "é obrigatório" mientras el paciente no tenga genoma.
// @Tags patients
// @Accept json
// @Produce json
// @Param patientID path string true "ID interno del paciente"
// @Param payload body updatePatientRequest true "Campos a modificar"
// @Success 200 {object} patientResponse
// @Failure 400 {object} respond.ErrorBody "invalid json"
// @Failure 404 {object} respond.ErrorBody "paciente inexistente"
// @Failure 422 {object} respond.ValidationBody "errores por campo"
// @Router /patients/{patientID} [patch]
func updatePatientHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updatePatientRequest
		if err := respond.DecodeJSON(r, &req); err != nil {
			respond.BadRequest(w, "invalid json")
			return
		}

		p, err := svc.Update(r.Context(), chi.URLParam(r, "patientID"), Patch{
			Identifier: req.PatientID,
			Name:       req.Name,
			BirthDate:  req.BirthDate,
			Gender:     req.Gender,
		})
		if err != nil {
			respond.Error(w, r, log, err)
			return
		}

		respond.JSON(w, http.StatusOK, toPatientResponse(p, svc.Now()))
	}
}

// deletePatientHandler godoc
// @Summary Borrar paciente
// @Description Borra en cascada genoma y fenotipos.
// @Tags patients
// @Param patientID path string true "ID interno del paciente"
// @Success 204
// @Failure 404 {object} respond.ErrorBody "paciente inexistente"
// @Router /patients/{patientID} [delete]
func deletePatientHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "patientID")); err != nil {
			respond.Error(w, r, log, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
