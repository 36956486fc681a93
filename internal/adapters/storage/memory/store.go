package memory

import (
	"sort"
	"sync"

	"genotrack/internal/domain/genomes"
	"genotrack/internal/domain/patients"
	"genotrack/internal/domain/phenotypes"
)

// Store guarda los tres agregados bajo un único lock: los filtros de pacientes
// cruzan genomas y fenotipos, y el borrado en cascada toca los tres mapas.
type Store struct {
	mu sync.RWMutex

	seq   uint64
	order map[string]uint64 // id -> orden de alta

	patients   map[string]patients.Patient
	genomes    map[string]genomes.Genome
	phenotypes map[string]phenotypes.Phenotype
}

func NewStore() *Store {
	return &Store{
		order:      make(map[string]uint64),
		patients:   make(map[string]patients.Patient),
		genomes:    make(map[string]genomes.Genome),
		phenotypes: make(map[string]phenotypes.Phenotype),
	}
}

func (s *Store) Patients() patients.Repository {
	return &patientRepo{s: s}
}

func (s *Store) Genomes() genomes.Repository {
	return &genomeRepo{s: s}
}

func (s *Store) Phenotypes() phenotypes.Repository {
	return &phenotypeRepo{s: s}
}

// track registra el orden de alta; llamar con el lock tomado.
func (s *Store) track(id string) {
	s.seq++
	s.order[id] = s.seq
}

func (s *Store) forget(id string) {
	delete(s.order, id)
}

// sortByOrder ordena ids por orden de alta; llamar con el lock tomado.
func (s *Store) sortByOrder(ids []string) {
	sort.Slice(ids, func(i, j int) bool {
		return s.order[ids[i]] < s.order[ids[j]]
	})
}

func (s *Store) genomeOf(patientID string) (genomes.Genome, bool) {
	for _, g := range s.genomes {
		if g.PatientID == patientID {
			return g, true
		}
	}
	return genomes.Genome{}, false
}
