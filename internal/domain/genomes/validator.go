package genomes

import (
	"fmt"
	"regexp"
	"strings"

	"genotrack/internal/domain/validation"
	"genotrack/internal/domain/vocabulary"
)

const (
	FieldGenome          = "genome"
	FieldGeneSymbol      = "gene_symbol"
	FieldChromosome      = "chromosome"
	FieldPosition        = "position"
	FieldReferenceAllele = "reference_allele"
	FieldAlternateAllele = "alternate_allele"
	FieldVariantType     = "variant_type"
	FieldPathogenicity   = "pathogenicity"
)

const (
	msgUnknownGene       = "deve ser um gene conhecido no sistema"
	msgChromosomeFormat  = "deve ser um cromossomo válido (1-22, X, Y, MT)"
	msgPositionPositive  = "deve ser maior que 0"
	msgPositionInteger   = "deve ser um número inteiro"
	msgAllelesMustDiffer = "deve ser diferente do alelo de referência"
	msgGenomeExists      = "já existe para este paciente"
)

var (
	chromosomePattern = regexp.MustCompile(`(?i)^(chr)?(1[0-9]|2[0-2]|[1-9]|X|Y|MT)$`)
	chrPrefix         = regexp.MustCompile(`(?i)^chr`)
	allelePattern     = regexp.MustCompile(`(?i)^[ATCG]+$`)
)

// Validator aplica las reglas de campo y las reglas cruzadas que no
// necesitan storage.
type Validator struct {
	vocab *vocabulary.Vocabulary
}

func NewValidator(vocab *vocabulary.Vocabulary) *Validator {
	return &Validator{vocab: vocab}
}

func (v *Validator) Validate(in Input) validation.Errors {
	errs := validation.Errors{}

	if validation.Required(errs, FieldGeneSymbol, in.GeneSymbol) && !v.vocab.IsKnownGene(in.GeneSymbol) {
		errs.Add(FieldGeneSymbol, msgUnknownGene)
	}

	if validation.Required(errs, FieldChromosome, in.Chromosome) {
		validation.Format(errs, FieldChromosome, in.Chromosome, chromosomePattern, msgChromosomeFormat)
	}

	switch {
	case in.PositionNotInteger:
		errs.Add(FieldPosition, msgPositionInteger)
	case in.Position == nil:
		errs.Add(FieldPosition, validation.MsgBlank)
	case *in.Position <= 0:
		errs.Add(FieldPosition, msgPositionPositive)
	}

	if validation.Required(errs, FieldReferenceAllele, in.ReferenceAllele) {
		validation.Format(errs, FieldReferenceAllele, in.ReferenceAllele, allelePattern, "")
	}
	if validation.Required(errs, FieldAlternateAllele, in.AlternateAllele) {
		validation.Format(errs, FieldAlternateAllele, in.AlternateAllele, allelePattern, "")
	}

	if validation.Required(errs, FieldVariantType, string(in.VariantType)) && !in.VariantType.Valid() {
		errs.Add(FieldVariantType, validation.MsgNotIncluded)
	}
	if validation.Required(errs, FieldPathogenicity, string(in.Pathogenicity)) && !in.Pathogenicity.Valid() {
		errs.Add(FieldPathogenicity, validation.MsgNotIncluded)
	}

	// Reglas cruzadas: sólo si los campos que tocan pasaron sus chequeos.
	if !errs.Has(FieldReferenceAllele) && !errs.Has(FieldAlternateAllele) {
		if strings.EqualFold(in.ReferenceAllele, in.AlternateAllele) {
			errs.Add(FieldAlternateAllele, msgAllelesMustDiffer)
		}
	}

	if !errs.Has(FieldGeneSymbol) && !errs.Has(FieldChromosome) {
		if msg, ok := v.chromosomeMismatch(in.GeneSymbol, in.Chromosome); ok {
			errs.Add(FieldChromosome, msg)
		}
	}

	return errs
}

// chromosomeMismatch compara el cromosoma sin prefijo "chr" contra la tabla.
// La comparación es sensible a mayúsculas ("chrx" no coincide con "X").
func (v *Validator) chromosomeMismatch(gene, chromosome string) (string, bool) {
	expected, ok := v.vocab.ExpectedChromosome(gene)
	if !ok {
		return "", false
	}
	if NormalizeChromosome(chromosome) == expected {
		return "", false
	}
	return fmt.Sprintf("inconsistente com o gene %s (esperado: %s)", gene, expected), true
}

// NormalizeChromosome quita un prefijo chr/Chr/CHR.
func NormalizeChromosome(chromosome string) string {
	return chrPrefix.ReplaceAllString(chromosome, "")
}
