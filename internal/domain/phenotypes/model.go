package phenotypes

import (
	"fmt"
	"time"

	"genotrack/internal/domain/vocabulary"
)

// Severity define la gravedad observada.
// @Enum mild, moderate, severe, profound
type Severity string

const (
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
	SeverityProfound Severity = "profound"
)

func (s Severity) Valid() bool {
	switch s {
	case SeverityMild, SeverityModerate, SeveritySevere, SeverityProfound:
		return true
	}
	return false
}

// IsSevere: severe o profound.
func (s Severity) IsSevere() bool {
	switch s {
	case SeveritySevere, SeverityProfound:
		return true
	}
	return false
}

func Severities() []Severity {
	return []Severity{SeverityMild, SeverityModerate, SeveritySevere, SeverityProfound}
}

// Onset es la etapa de inicio. Vacío = no informado.
// @Enum congenital, neonatal, infantile, childhood, juvenile, adult
type Onset string

const (
	OnsetCongenital Onset = "congenital"
	OnsetNeonatal   Onset = "neonatal"
	OnsetInfantile  Onset = "infantile"
	OnsetChildhood  Onset = "childhood"
	OnsetJuvenile   Onset = "juvenile"
	OnsetAdult      Onset = "adult"
)

func (o Onset) Valid() bool {
	switch o {
	case OnsetCongenital, OnsetNeonatal, OnsetInfantile, OnsetChildhood, OnsetJuvenile, OnsetAdult:
		return true
	}
	return false
}

func Onsets() []Onset {
	return []Onset{OnsetCongenital, OnsetNeonatal, OnsetInfantile, OnsetChildhood, OnsetJuvenile, OnsetAdult}
}

// Phenotype es una observación clínica codificada con HPO.
type Phenotype struct {
	ID        string
	PatientID string

	HPOCode     string
	Description string
	Severity    Severity
	AgeOfOnset  Onset // opcional

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (p Phenotype) IsSevere() bool {
	return p.Severity.IsSevere()
}

// HPOTermName busca el término; ok=false si el código no está en el vocabulario.
func (p Phenotype) HPOTermName(vocab *vocabulary.Vocabulary) (string, bool) {
	return vocab.TermName(p.HPOCode)
}

// FullDescription: "{code} - {term}: {description}".
func (p Phenotype) FullDescription(vocab *vocabulary.Vocabulary) string {
	term, _ := p.HPOTermName(vocab)
	return fmt.Sprintf("%s - %s: %s", p.HPOCode, term, p.Description)
}

type Input struct {
	HPOCode     string
	Description string
	Severity    Severity
	AgeOfOnset  Onset
}

// Patch: nil = no tocar. AgeOfOnset con puntero a "" limpia el valor.
type Patch struct {
	HPOCode     *string
	Description *string
	Severity    *Severity
	AgeOfOnset  *Onset
}

func (p Patch) Apply(ph Phenotype) Input {
	in := Input{
		HPOCode:     ph.HPOCode,
		Description: ph.Description,
		Severity:    ph.Severity,
		AgeOfOnset:  ph.AgeOfOnset,
	}
	if p.HPOCode != nil {
		in.HPOCode = *p.HPOCode
	}
	if p.Description != nil {
		in.Description = *p.Description
	}
	if p.Severity != nil {
		in.Severity = *p.Severity
	}
	if p.AgeOfOnset != nil {
		in.AgeOfOnset = *p.AgeOfOnset
	}
	return in
}
