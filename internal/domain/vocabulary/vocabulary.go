package vocabulary

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

var hpoCodePattern = regexp.MustCompile(`^HP:\d{7}$`)

// Term es una entrada de la tabla HPO.
type Term struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// GeneChromosome es el cromosoma esperado para un gen.
type GeneChromosome struct {
	Gene       string `json:"gene"`
	Chromosome string `json:"chromosome"`
}

// Tables es la forma "cruda" de las tablas, en el orden en que se declararon.
type Tables struct {
	Genes           []string
	GeneChromosomes []GeneChromosome
	HPOTerms        []Term
}

// Vocabulary es inmutable una vez construido; se comparte por referencia.
type Vocabulary struct {
	genes       map[string]struct{}
	geneOrder   []string
	chromosomes map[string]string
	terms       map[string]string
	termOrder   []string
}

// New construye el vocabulario y falla ante claves duplicadas o referencias rotas.
func New(t Tables) (*Vocabulary, error) {
	v := &Vocabulary{
		genes:       make(map[string]struct{}, len(t.Genes)),
		chromosomes: make(map[string]string, len(t.GeneChromosomes)),
		terms:       make(map[string]string, len(t.HPOTerms)),
	}

	for _, g := range t.Genes {
		g = strings.TrimSpace(g)
		if g == "" {
			return nil, fmt.Errorf("vocabulary: empty gene symbol")
		}
		if _, dup := v.genes[g]; dup {
			return nil, fmt.Errorf("vocabulary: duplicate gene %q", g)
		}
		v.genes[g] = struct{}{}
		v.geneOrder = append(v.geneOrder, g)
	}

	for _, gc := range t.GeneChromosomes {
		if _, ok := v.genes[gc.Gene]; !ok {
			return nil, fmt.Errorf("vocabulary: chromosome given for unknown gene %q", gc.Gene)
		}
		if _, dup := v.chromosomes[gc.Gene]; dup {
			return nil, fmt.Errorf("vocabulary: duplicate chromosome entry for gene %q", gc.Gene)
		}
		if strings.TrimSpace(gc.Chromosome) == "" {
			return nil, fmt.Errorf("vocabulary: empty chromosome for gene %q", gc.Gene)
		}
		v.chromosomes[gc.Gene] = gc.Chromosome
	}

	for _, term := range t.HPOTerms {
		if !hpoCodePattern.MatchString(term.Code) {
			return nil, fmt.Errorf("vocabulary: malformed HPO code %q", term.Code)
		}
		if _, dup := v.terms[term.Code]; dup {
			return nil, fmt.Errorf("vocabulary: duplicate HPO code %q", term.Code)
		}
		if strings.TrimSpace(term.Name) == "" {
			return nil, fmt.Errorf("vocabulary: empty term name for %q", term.Code)
		}
		v.terms[term.Code] = term.Name
		v.termOrder = append(v.termOrder, term.Code)
	}

	return v, nil
}

func (v *Vocabulary) IsKnownGene(symbol string) bool {
	_, ok := v.genes[symbol]
	return ok
}

// ExpectedChromosome devuelve el cromosoma esperado; ok=false si el gen no
// tiene expectativa (el chequeo de consistencia se omite).
func (v *Vocabulary) ExpectedChromosome(gene string) (string, bool) {
	c, ok := v.chromosomes[gene]
	return c, ok
}

func (v *Vocabulary) TermName(code string) (string, bool) {
	n, ok := v.terms[code]
	return n, ok
}

// Genes en orden de declaración.
func (v *Vocabulary) Genes() []string {
	return append([]string(nil), v.geneOrder...)
}

// GeneChromosomes ordenado por gen.
func (v *Vocabulary) GeneChromosomes() []GeneChromosome {
	out := make([]GeneChromosome, 0, len(v.chromosomes))
	for g, c := range v.chromosomes {
		out = append(out, GeneChromosome{Gene: g, Chromosome: c})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Gene < out[j].Gene })
	return out
}

// Terms en orden de declaración.
func (v *Vocabulary) Terms() []Term {
	out := make([]Term, 0, len(v.termOrder))
	for _, code := range v.termOrder {
		out = append(out, Term{Code: code, Name: v.terms[code]})
	}
	return out
}
