package memory

import (
	"context"
	"errors"
	"strings"

	"genotrack/internal/domain/genomes"
	"genotrack/internal/ports/storage"
)

type genomeRepo struct {
	s *Store
}

func (r *genomeRepo) Create(ctx context.Context, g genomes.Genome) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if strings.TrimSpace(g.ID) == "" {
		return errors.New("genome id required")
	}
	if _, ok := r.s.patients[g.PatientID]; !ok {
		return storage.NotFound("patient", g.PatientID)
	}
	if _, exists := r.s.genomes[g.ID]; exists {
		return storage.Conflict("genome", "genomes_pkey")
	}
	if _, taken := r.s.genomeOf(g.PatientID); taken {
		return storage.Conflict("genome", "genomes_patient_id_key")
	}
	r.s.genomes[g.ID] = g
	r.s.track(g.ID)
	return nil
}

func (r *genomeRepo) Update(ctx context.Context, g genomes.Genome) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.genomes[g.ID]; !exists {
		return storage.NotFound("genome", g.ID)
	}
	r.s.genomes[g.ID] = g
	return nil
}

func (r *genomeRepo) GetByPatient(ctx context.Context, patientID string) (genomes.Genome, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	g, ok := r.s.genomeOf(patientID)
	if !ok {
		return genomes.Genome{}, storage.NotFound("genome", patientID)
	}
	return g, nil
}

func (r *genomeRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.genomes[id]; !ok {
		return storage.NotFound("genome", id)
	}
	delete(r.s.genomes, id)
	r.s.forget(id)
	return nil
}

func (r *genomeRepo) List(ctx context.Context, filter genomes.ListFilter) ([]genomes.Genome, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	ids := make([]string, 0, len(r.s.genomes))
	for id, g := range r.s.genomes {
		if filter.Matches(g) {
			ids = append(ids, id)
		}
	}
	r.s.sortByOrder(ids)

	out := make([]genomes.Genome, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.s.genomes[id])
	}
	return out, nil
}
