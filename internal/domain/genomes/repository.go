package genomes

import "context"

type Repository interface {
	Create(ctx context.Context, g Genome) error
	Update(ctx context.Context, g Genome) error
	GetByPatient(ctx context.Context, patientID string) (Genome, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ListFilter) ([]Genome, error)
}

// ListFilter combina filtros con AND; campos vacíos no filtran.
type ListFilter struct {
	PathogenicOnly bool
	GeneSymbol     string
	Chromosome     string
}

// Matches evalúa el filtro en memoria (adapters sin SQL).
func (f ListFilter) Matches(g Genome) bool {
	if f.PathogenicOnly && !g.IsPathogenic() {
		return false
	}
	if f.GeneSymbol != "" && g.GeneSymbol != f.GeneSymbol {
		return false
	}
	if f.Chromosome != "" && g.Chromosome != f.Chromosome {
		return false
	}
	return true
}
