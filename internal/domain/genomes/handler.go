package genomes

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"genotrack/internal/platform/logger"
	"genotrack/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/patients/{patientID}/genome", func(gr chi.Router) {
		gr.Get("/", getGenomeHandler(svc, log))
		gr.Post("/", createGenomeHandler(svc, log))
		gr.Patch("/", updateGenomeHandler(svc, log))
		gr.Delete("/", deleteGenomeHandler(svc, log))
	})

	r.Get("/genomes", listGenomesHandler(svc, log))
}

// createGenomeRequest es la variante a registrar para el paciente.
type createGenomeRequest struct {
	GeneSymbol      string        `json:"gene_symbol" example:"LDLR"`
	Chromosome      string        `json:"chromosome" example:"19"`
	Position        position      `json:"position" swaggertype:"integer" example:"11200138"`
	ReferenceAllele string        `json:"reference_allele" example:"C"`
	AlternateAllele string        `json:"alternate_allele" example:"T"`
	VariantType     VariantType   `json:"variant_type" enums:"SNV,INDEL,CNV,SV"`
	Pathogenicity   Pathogenicity `json:"pathogenicity" enums:"pathogenic,likely_pathogenic,uncertain,benign,likely_benign"`
}

// position acepta cualquier valor JSON para que un no-entero termine como
// error de campo (422) y no como JSON inválido (400). null equivale a ausente.
type position struct {
	Value      *int64
	NotInteger bool
}

func (p *position) UnmarshalJSON(b []byte) error {
	*p = position{}
	if string(b) == "null" {
		return nil
	}
	var v int64
	if err := json.Unmarshal(b, &v); err != nil {
		p.NotInteger = true
		return nil
	}
	p.Value = &v
	return nil
}

type updateGenomeRequest struct {
	// Punteros para PATCH real: nil = no tocar.
	GeneSymbol      *string        `json:"gene_symbol"`
	Chromosome      *string        `json:"chromosome"`
	Position        position       `json:"position" swaggertype:"integer"`
	ReferenceAllele *string        `json:"reference_allele"`
	AlternateAllele *string        `json:"alternate_allele"`
	VariantType     *VariantType   `json:"variant_type"`
	Pathogenicity   *Pathogenicity `json:"pathogenicity"`
}

// Response es el genoma con sus vistas derivadas.
type Response struct {
	ID                 string        `json:"id"`
	PatientID          string        `json:"patient_id"`
	GeneSymbol         string        `json:"gene_symbol"`
	Chromosome         string        `json:"chromosome"`
	Position           int64         `json:"position"`
	ReferenceAllele    string        `json:"reference_allele"`
	AlternateAllele    string        `json:"alternate_allele"`
	VariantType        VariantType   `json:"variant_type"`
	Pathogenicity      Pathogenicity `json:"pathogenicity"`
	VariantDescription string        `json:"variant_description" example:"LDLR:C>T (SNV)"`
	GenomicCoordinates string        `json:"genomic_coordinates" example:"19:11200138"`
	IsPathogenic       bool          `json:"is_pathogenic"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
}

type listGenomesResponse struct {
	Genomes []Response `json:"genomes"`
	Total   int        `json:"total"`
}

func NewResponse(g Genome) Response {
	return Response{
		ID:                 g.ID,
		PatientID:          g.PatientID,
		GeneSymbol:         g.GeneSymbol,
		Chromosome:         g.Chromosome,
		Position:           g.Position,
		ReferenceAllele:    g.ReferenceAllele,
		AlternateAllele:    g.AlternateAllele,
		VariantType:        g.VariantType,
		Pathogenicity:      g.Pathogenicity,
		VariantDescription: g.VariantDescription(),
		GenomicCoordinates: g.GenomicCoordinates(),
		IsPathogenic:       g.IsPathogenic(),
		CreatedAt:          g.CreatedAt,
		UpdatedAt:          g.UpdatedAt,
	}
}

// getGenomeHandler godoc
// @Summary Obtener genoma del paciente
// @Tags genomes
// @Produce json
// @Param patientID path string true "ID interno del paciente"
// @Success 200 {object} Response
// @Failure 404 {object} respond.ErrorBody "paciente o genoma inexistente"
// @Router /patients/{patientID}/genome [get]
func getGenomeHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		g, err := svc.GetByPatient(r.Context(), chi.URLParam(r, "patientID"))
		if err != nil {
			respond.Error(w, r, log, err)
			return
		}
		respond.JSON(w, http.StatusOK, NewResponse(g))
	}
}

// createGenomeHandler godoc
// @Summary Registrar genoma
// @Description Registra la única variante del paciente; el paciente pasa a estado complete. Valida gen conocido, formato de cromosoma, consistencia gen-cromosoma, alelos A/T/C/G distintos entre sí.
// @Tags genomes
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID del investigador"
// @Param Authorization header string false "Bearer token en producción"
// @Param patientID path string true "ID interno del paciente"
// @Param payload body createGenomeRequest true "Variante"
// @Success 201 {object} Response
// @Failure 400 {object} respond.ErrorBody "invalid json"
// @Failure 404 {object} respond.ErrorBody "paciente inexistente"
// @Failure 409 {object} respond.ErrorBody "conflicto de unicidad en storage"
// @Failure 422 {object} respond.ValidationBody "errores por campo"
// @Router /patients/{patientID}/genome [post]
func createGenomeHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createGenomeRequest
		if err := respond.DecodeJSON(r, &req); err != nil {
			respond.BadRequest(w, "invalid json")
			return
		}

		g, err := svc.Create(r.Context(), chi.URLParam(r, "patientID"), Input{
			GeneSymbol:         req.GeneSymbol,
			Chromosome:         req.Chromosome,
			Position:           req.Position.Value,
			PositionNotInteger: req.Position.NotInteger,
			ReferenceAllele:    req.ReferenceAllele,
			AlternateAllele:    req.AlternateAllele,
			VariantType:        req.VariantType,
			Pathogenicity:      req.Pathogenicity,
		})
		if err != nil {
			respond.Error(w, r, log, err)
			return
		}

		respond.JSON(w, http.StatusCreated, NewResponse(g))
	}
}

// updateGenomeHandler godoc
// @Summary Actualizar genoma
// @Description Aplica los campos enviados y revalida la variante completa.
// @Tags genomes
// @Accept json
// @Produce json
// @Param patientID path string true "ID interno del paciente"
// @Param payload body updateGenomeRequest true "Campos a modificar"
// @Success 200 {object} Response
// @Failure 400 {object} respond.ErrorBody "invalid json"
// @Failure 404 {object} respond.ErrorBody "paciente o genoma inexistente"
// @Failure 422 {object} respond.ValidationBody "errores por campo"
// @Router /patients/{patientID}/genome [patch]
func updateGenomeHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateGenomeRequest
		if err := respond.DecodeJSON(r, &req); err != nil {
			respond.BadRequest(w, "invalid json")
			return
		}

		g, err := svc.Update(r.Context(), chi.URLParam(r, "patientID"), Patch{
			GeneSymbol:         req.GeneSymbol,
			Chromosome:         req.Chromosome,
			Position:           req.Position.Value,
			PositionNotInteger: req.Position.NotInteger,
			ReferenceAllele:    req.ReferenceAllele,
			AlternateAllele:    req.AlternateAllele,
			VariantType:        req.VariantType,
			Pathogenicity:      req.Pathogenicity,
		})
		if err != nil {
			respond.Error(w, r, log, err)
			return
		}

		respond.JSON(w, http.StatusOK, NewResponse(g))
	}
}

// deleteGenomeHandler godoc
// @Summary Borrar genoma
// @Description El paciente vuelve a estado draft.
// @Tags genomes
// @Param patientID path string true "ID interno del paciente"
// @Success 204
// @Failure 404 {object} respond.ErrorBody "paciente o genoma inexistente"
// @Router /patients/{patientID}/genome [delete]
func deleteGenomeHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "patientID")); err != nil {
			respond.Error(w, r, log, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// listGenomesHandler godoc
// @Summary Listar genomas
// @Description Filtros combinados con AND, en orden de alta.
// @Tags genomes
// @Produce json
// @Param gene_symbol query string false "Símbolo exacto del gen"
// @Param chromosome query string false "Cromosoma exacto (tal como se registró)"
// @Param pathogenic query bool false "Sólo pathogenic / likely_pathogenic"
// @Success 200 {object} listGenomesResponse
// @Failure 400 {object} respond.ErrorBody "pathogenic inválido"
// @Router /genomes [get]
func listGenomesHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		filter := ListFilter{
			GeneSymbol: q.Get("gene_symbol"),
			Chromosome: q.Get("chromosome"),
		}
		if v := strings.TrimSpace(q.Get("pathogenic")); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				respond.BadRequest(w, "pathogenic must be true or false")
				return
			}
			filter.PathogenicOnly = b
		}

		items, err := svc.List(r.Context(), filter)
		if err != nil {
			respond.Error(w, r, log, err)
			return
		}

		out := make([]Response, 0, len(items))
		for _, g := range items {
			out = append(out, NewResponse(g))
		}
		respond.JSON(w, http.StatusOK, listGenomesResponse{Genomes: out, Total: len(out)})
	}
}
