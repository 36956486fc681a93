package memory

import (
	"context"
	"errors"
	"strings"

	"genotrack/internal/domain/phenotypes"
	"genotrack/internal/ports/storage"
)

type phenotypeRepo struct {
	s *Store
}

func (r *phenotypeRepo) Create(ctx context.Context, p phenotypes.Phenotype) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errors.New("phenotype id required")
	}
	if _, ok := r.s.patients[p.PatientID]; !ok {
		return storage.NotFound("patient", p.PatientID)
	}
	if _, exists := r.s.phenotypes[p.ID]; exists {
		return storage.Conflict("phenotype", "phenotypes_pkey")
	}
	if r.codeTaken(p.PatientID, p.HPOCode, "") {
		return storage.Conflict("phenotype", "phenotypes_patient_id_hpo_code_key")
	}
	r.s.phenotypes[p.ID] = p
	r.s.track(p.ID)
	return nil
}

func (r *phenotypeRepo) Update(ctx context.Context, p phenotypes.Phenotype) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.phenotypes[p.ID]; !exists {
		return storage.NotFound("phenotype", p.ID)
	}
	if r.codeTaken(p.PatientID, p.HPOCode, p.ID) {
		return storage.Conflict("phenotype", "phenotypes_patient_id_hpo_code_key")
	}
	r.s.phenotypes[p.ID] = p
	return nil
}

func (r *phenotypeRepo) GetByID(ctx context.Context, id string) (phenotypes.Phenotype, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.phenotypes[id]
	if !ok {
		return phenotypes.Phenotype{}, storage.NotFound("phenotype", id)
	}
	return p, nil
}

func (r *phenotypeRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.phenotypes[id]; !ok {
		return storage.NotFound("phenotype", id)
	}
	delete(r.s.phenotypes, id)
	r.s.forget(id)
	return nil
}

func (r *phenotypeRepo) ListByPatient(ctx context.Context, patientID string) ([]phenotypes.Phenotype, error) {
	return r.list(func(p phenotypes.Phenotype) bool { return p.PatientID == patientID }), nil
}

func (r *phenotypeRepo) List(ctx context.Context, filter phenotypes.ListFilter) ([]phenotypes.Phenotype, error) {
	return r.list(filter.Matches), nil
}

func (r *phenotypeRepo) ExistsHPOCode(ctx context.Context, patientID, hpoCode, excludeID string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.codeTaken(patientID, hpoCode, excludeID), nil
}

func (r *phenotypeRepo) list(keep func(phenotypes.Phenotype) bool) []phenotypes.Phenotype {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	ids := make([]string, 0)
	for id, p := range r.s.phenotypes {
		if keep(p) {
			ids = append(ids, id)
		}
	}
	r.s.sortByOrder(ids)

	out := make([]phenotypes.Phenotype, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.s.phenotypes[id])
	}
	return out
}

func (r *phenotypeRepo) codeTaken(patientID, hpoCode, excludeID string) bool {
	for id, p := range r.s.phenotypes {
		if id != excludeID && p.PatientID == patientID && p.HPOCode == hpoCode {
			return true
		}
	}
	return false
}
