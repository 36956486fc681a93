package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	MsgBlank       = "não pode ficar em branco"
	MsgInvalid     = "não é válido"
	MsgNotIncluded = "não está incluído na lista"
	MsgTaken       = "já está em uso"
)

// Required registra MsgBlank si value está vacío (espacios cuentan como vacío).
// Devuelve true si el campo está presente.
func Required(errs Errors, field, value string) bool {
	if strings.TrimSpace(value) == "" {
		errs.Add(field, MsgBlank)
		return false
	}
	return true
}

// Length valida longitud en caracteres (runes), no bytes.
func Length(errs Errors, field, value string, min, max int) bool {
	n := utf8.RuneCountInString(value)
	switch {
	case n < min:
		errs.Add(field, fmt.Sprintf("é muito curto (mínimo: %d caracteres)", min))
		return false
	case n > max:
		errs.Add(field, fmt.Sprintf("é muito longo (máximo: %d caracteres)", max))
		return false
	}
	return true
}

// Format valida value contra re; msg vacío usa MsgInvalid.
func Format(errs Errors, field, value string, re *regexp.Regexp, msg string) bool {
	if re.MatchString(value) {
		return true
	}
	if msg == "" {
		msg = MsgInvalid
	}
	errs.Add(field, msg)
	return false
}
