package memory

import (
	"context"
	"errors"
	"strings"

	"genotrack/internal/domain/patients"
	"genotrack/internal/ports/storage"
)

type patientRepo struct {
	s *Store
}

func (r *patientRepo) Create(ctx context.Context, p patients.Patient) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errors.New("patient id required")
	}
	if _, exists := r.s.patients[p.ID]; exists {
		return storage.Conflict("patient", "patients_pkey")
	}
	if r.identifierTaken(p.Identifier, "") {
		return storage.Conflict("patient", "patients_patient_id_key")
	}
	r.s.patients[p.ID] = p
	r.s.track(p.ID)
	return nil
}

func (r *patientRepo) Update(ctx context.Context, p patients.Patient) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.patients[p.ID]; !exists {
		return storage.NotFound("patient", p.ID)
	}
	if r.identifierTaken(p.Identifier, p.ID) {
		return storage.Conflict("patient", "patients_patient_id_key")
	}
	r.s.patients[p.ID] = p
	return nil
}

func (r *patientRepo) GetByID(ctx context.Context, id string) (patients.Patient, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.patients[id]
	if !ok {
		return patients.Patient{}, storage.NotFound("patient", id)
	}
	return p, nil
}

func (r *patientRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.patients[id]; !ok {
		return storage.NotFound("patient", id)
	}

	for gid, g := range r.s.genomes {
		if g.PatientID == id {
			delete(r.s.genomes, gid)
			r.s.forget(gid)
		}
	}
	for pid, ph := range r.s.phenotypes {
		if ph.PatientID == id {
			delete(r.s.phenotypes, pid)
			r.s.forget(pid)
		}
	}
	delete(r.s.patients, id)
	r.s.forget(id)
	return nil
}

func (r *patientRepo) ExistsIdentifier(ctx context.Context, identifier, excludeID string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.identifierTaken(identifier, excludeID), nil
}

func (r *patientRepo) List(ctx context.Context, filter patients.ListFilter) ([]patients.Patient, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	ids := make([]string, 0, len(r.s.patients))
	for id := range r.s.patients {
		if r.matches(id, filter) {
			ids = append(ids, id)
		}
	}
	r.s.sortByOrder(ids)

	out := make([]patients.Patient, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.s.patients[id])
	}
	return out, nil
}

func (r *patientRepo) identifierTaken(identifier, excludeID string) bool {
	for id, p := range r.s.patients {
		if id != excludeID && p.Identifier == identifier {
			return true
		}
	}
	return false
}

func (r *patientRepo) matches(id string, f patients.ListFilter) bool {
	if f.GeneSymbol != "" {
		g, ok := r.s.genomeOf(id)
		if !ok || g.GeneSymbol != f.GeneSymbol {
			return false
		}
	}
	if f.HPOCode != "" {
		found := false
		for _, ph := range r.s.phenotypes {
			if ph.PatientID == id && ph.HPOCode == f.HPOCode {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
