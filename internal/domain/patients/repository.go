package patients

import "context"

type Repository interface {
	Create(ctx context.Context, p Patient) error
	Update(ctx context.Context, p Patient) error
	GetByID(ctx context.Context, id string) (Patient, error)

	// Delete borra el paciente con su genoma y fenotipos (misma transacción).
	Delete(ctx context.Context, id string) error

	// ExistsIdentifier busca otro paciente con el identificador, excluyendo excludeID.
	ExistsIdentifier(ctx context.Context, identifier, excludeID string) (bool, error)

	// List filtra por asociaciones (join) y respeta el orden de alta.
	List(ctx context.Context, filter ListFilter) ([]Patient, error)
}

// ListFilter: campos vacíos no filtran; los presentes se combinan con AND.
type ListFilter struct {
	HPOCode    string // algún fenotipo con ese código
	GeneSymbol string // genoma con ese gen
}
