package patients

import (
	"time"

	"genotrack/internal/domain/genomes"
	"genotrack/internal/domain/phenotypes"
)

// Gender
// @Enum M, F, O
type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
	GenderOther  Gender = "O"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

func Genders() []Gender {
	return []Gender{GenderMale, GenderFemale, GenderOther}
}

// Stage es la etapa del alta en dos pasos: draft sin genoma, complete con genoma.
// No se persiste; se deriva de la presencia del genoma.
type Stage string

const (
	StageDraft    Stage = "draft"
	StageComplete Stage = "complete"
)

const dateLayout = "2006-01-02"

// Patient es la raíz del agregado. ID es interno; Identifier es el código
// clínico BR-PACIENTE-NNNN.
type Patient struct {
	ID         string
	Identifier string
	Name       string
	BirthDate  time.Time // fecha calendario (UTC 00:00)
	Gender     Gender

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Age devuelve años cumplidos como floor(días / 365.25). La fecha de
// nacimiento es obligatoria en toda alta y edición, así que siempre existe;
// 0001-01-01 es una fecha válida y no significa "sin fecha".
func (p Patient) Age(now time.Time) int {
	days := daysBetween(p.BirthDate, now)
	if days < 0 {
		return 0
	}
	// días*4/1461 evita el redondeo de float sobre 365.25.
	return int(days * 4 / 1461)
}

// daysBetween cuenta días calendario completos. No usa time.Duration, que
// satura a ~292 años.
func daysBetween(from, to time.Time) int64 {
	a := civilDate(from)
	b := civilDate(to)
	return (b.Unix() - a.Unix()) / 86400
}

func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseBirthDate acepta YYYY-MM-DD.
func ParseBirthDate(s string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, s, time.UTC)
}

// Input: BirthDate viaja como texto para que el validador reporte formato.
type Input struct {
	Identifier string
	Name       string
	BirthDate  string
	Gender     Gender
}

type Patch struct {
	Identifier *string
	Name       *string
	BirthDate  *string
	Gender     *Gender
}

func (p Patch) Apply(pt Patient) Input {
	in := Input{
		Identifier: pt.Identifier,
		Name:       pt.Name,
		BirthDate:  pt.BirthDate.Format(dateLayout),
		Gender:     pt.Gender,
	}
	if p.Identifier != nil {
		in.Identifier = *p.Identifier
	}
	if p.Name != nil {
		in.Name = *p.Name
	}
	if p.BirthDate != nil {
		in.BirthDate = *p.BirthDate
	}
	if p.Gender != nil {
		in.Gender = *p.Gender
	}
	return in
}

// Record es el paciente con sus asociaciones cargadas.
type Record struct {
	Patient    Patient
	Genome     *genomes.Genome
	Phenotypes []phenotypes.Phenotype
}

func (r Record) Stage() Stage {
	if r.Genome == nil {
		return StageDraft
	}
	return StageComplete
}

// PhenotypeCodes respeta el orden en que el storage devolvió los fenotipos.
func (r Record) PhenotypeCodes() []string {
	out := make([]string, 0, len(r.Phenotypes))
	for _, ph := range r.Phenotypes {
		out = append(out, ph.HPOCode)
	}
	return out
}

type Association struct {
	Gene       string
	Phenotypes []string
	Variant    string
}

// GenePhenotypeAssociation es nil si el paciente no tiene genoma.
func (r Record) GenePhenotypeAssociation() *Association {
	if r.Genome == nil {
		return nil
	}
	return &Association{
		Gene:       r.Genome.GeneSymbol,
		Phenotypes: r.PhenotypeCodes(),
		Variant:    r.Genome.VariantDescription(),
	}
}
