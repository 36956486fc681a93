package phenotypes

import "context"

type Repository interface {
	Create(ctx context.Context, p Phenotype) error
	Update(ctx context.Context, p Phenotype) error
	GetByID(ctx context.Context, id string) (Phenotype, error)
	Delete(ctx context.Context, id string) error

	// ListByPatient respeta el orden de alta.
	ListByPatient(ctx context.Context, patientID string) ([]Phenotype, error)
	List(ctx context.Context, filter ListFilter) ([]Phenotype, error)

	// ExistsHPOCode busca otro fenotipo del paciente con el mismo código,
	// excluyendo excludeID (update de sí mismo).
	ExistsHPOCode(ctx context.Context, patientID, hpoCode, excludeID string) (bool, error)
}

type ListFilter struct {
	Severity   Severity
	SevereOnly bool
	AgeOfOnset Onset
}

func (f ListFilter) Matches(p Phenotype) bool {
	if f.Severity != "" && p.Severity != f.Severity {
		return false
	}
	if f.SevereOnly && !p.IsSevere() {
		return false
	}
	if f.AgeOfOnset != "" && p.AgeOfOnset != f.AgeOfOnset {
		return false
	}
	return true
}
