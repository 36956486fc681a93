package router

import (
	"net/http"

	"genotrack/internal/domain/genomes"
	"genotrack/internal/domain/patients"
	"genotrack/internal/domain/phenotypes"
	"genotrack/internal/domain/vocabulary"
	"genotrack/internal/platform/respond"
)

type vocabularyResponse struct {
	Genes           []string          `json:"genes"`
	GeneChromosomes map[string]string `json:"gene_chromosomes"`
	HPOTerms        []vocabulary.Term `json:"hpo_terms"`

	Genders         []patients.Gender       `json:"genders"`
	VariantTypes    []genomes.VariantType   `json:"variant_types"`
	Pathogenicities []genomes.Pathogenicity `json:"pathogenicities"`
	Severities      []phenotypes.Severity   `json:"severities"`
	AgeOfOnset      []phenotypes.Onset      `json:"age_of_onset"`
}

// vocabularyHandler godoc
// @Summary Tablas de referencia y enumeraciones
// @Tags vocabulary
// @Produce json
// @Success 200 {object} vocabularyResponse
// @Router /vocabulary [get]
func vocabularyHandler(vocab *vocabulary.Vocabulary) http.HandlerFunc {
	// El vocabulario es inmutable: la respuesta se arma una sola vez.
	chromosomes := make(map[string]string)
	for _, gc := range vocab.GeneChromosomes() {
		chromosomes[gc.Gene] = gc.Chromosome
	}
	body := vocabularyResponse{
		Genes:           vocab.Genes(),
		GeneChromosomes: chromosomes,
		HPOTerms:        vocab.Terms(),
		Genders:         patients.Genders(),
		VariantTypes:    genomes.VariantTypes(),
		Pathogenicities: genomes.Pathogenicities(),
		Severities:      phenotypes.Severities(),
		AgeOfOnset:      phenotypes.Onsets(),
	}

	return func(w http.ResponseWriter, _ *http.Request) {
		respond.JSON(w, http.StatusOK, body)
	}
}
