package patients

import (
	"regexp"
	"time"

	"genotrack/internal/domain/validation"
)

const (
	FieldIdentifier = "patient_id"
	FieldName       = "name"
	FieldBirthDate  = "birth_date"
	FieldGender     = "gender"
	FieldGenome     = "genome"
)

const (
	msgIdentifierFormat = "deve seguir o formato BR-PACIENTE-XXXX"
	msgBirthDateFuture  = "não pode ser no futuro"
	msgGender           = "deve ser M, F ou O"
	msgGenomeRequired   = "é obrigatório"
)

var identifierPattern = regexp.MustCompile(`^BR-PACIENTE-\d{4}$`)

// Validate corre las reglas de campo. La unicidad del identificador y la
// exigencia de genoma dependen del storage y las agrega el Service.
func Validate(in Input, now time.Time) validation.Errors {
	errs := validation.Errors{}

	if validation.Required(errs, FieldIdentifier, in.Identifier) {
		validation.Format(errs, FieldIdentifier, in.Identifier, identifierPattern, msgIdentifierFormat)
	}

	if validation.Required(errs, FieldName, in.Name) {
		validation.Length(errs, FieldName, in.Name, 2, 100)
	}

	if validation.Required(errs, FieldBirthDate, in.BirthDate) {
		bd, err := ParseBirthDate(in.BirthDate)
		switch {
		case err != nil:
			errs.Add(FieldBirthDate, validation.MsgInvalid)
		case bd.After(civilDate(now)):
			errs.Add(FieldBirthDate, msgBirthDateFuture)
		}
	}

	if validation.Required(errs, FieldGender, string(in.Gender)) && !in.Gender.Valid() {
		errs.Add(FieldGender, msgGender)
	}

	return errs
}
