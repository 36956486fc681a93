package phenotypes

import (
	"fmt"
	"regexp"
	"strings"

	"genotrack/internal/domain/validation"
	"genotrack/internal/domain/vocabulary"
)

const (
	FieldHPOCode     = "hpo_code"
	FieldDescription = "description"
	FieldSeverity    = "severity"
	FieldAgeOfOnset  = "age_of_onset"
)

const (
	msgHPOFormat    = "deve seguir o formato HP:0000000"
	msgHPOUnknown   = "deve ser um código HPO válido no sistema"
	msgHPODuplicate = "já existe para este paciente"
	msgSeverity     = "deve ser mild, moderate, severe ou profound"
)

var hpoPattern = regexp.MustCompile(`^HP:\d{7}$`)

type Validator struct {
	vocab *vocabulary.Vocabulary
}

func NewValidator(vocab *vocabulary.Vocabulary) *Validator {
	return &Validator{vocab: vocab}
}

func (v *Validator) Validate(in Input) validation.Errors {
	errs := validation.Errors{}

	if validation.Required(errs, FieldHPOCode, in.HPOCode) &&
		validation.Format(errs, FieldHPOCode, in.HPOCode, hpoPattern, msgHPOFormat) {
		if _, ok := v.vocab.TermName(in.HPOCode); !ok {
			errs.Add(FieldHPOCode, msgHPOUnknown)
		}
	}

	if validation.Required(errs, FieldDescription, in.Description) {
		validation.Length(errs, FieldDescription, in.Description, 5, 500)
	}

	if validation.Required(errs, FieldSeverity, string(in.Severity)) && !in.Severity.Valid() {
		errs.Add(FieldSeverity, msgSeverity)
	}

	if strings.TrimSpace(string(in.AgeOfOnset)) != "" && !in.AgeOfOnset.Valid() {
		errs.Add(FieldAgeOfOnset, validation.MsgNotIncluded)
	}

	if !errs.Has(FieldHPOCode) && !errs.Has(FieldDescription) {
		if msg, ok := v.descriptionMismatch(in.HPOCode, in.Description); ok {
			errs.Add(FieldDescription, msg)
		}
	}

	return errs
}

// descriptionMismatch es heurístico: sólo exige que la descripción contenga la
// primera palabra del término (ambos en minúsculas). No es un chequeo semántico.
func (v *Validator) descriptionMismatch(code, description string) (string, bool) {
	term, ok := v.vocab.TermName(code)
	if !ok {
		return "", false
	}
	words := strings.Fields(strings.ToLower(term))
	if len(words) == 0 {
		return "", false
	}
	if strings.Contains(strings.ToLower(description), words[0]) {
		return "", false
	}
	return fmt.Sprintf("deve ser consistente com o termo HPO %s", term), true
}
