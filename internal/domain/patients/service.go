package patients

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"genotrack/internal/domain/genomes"
	"genotrack/internal/domain/phenotypes"
	"genotrack/internal/domain/validation"
	"genotrack/internal/platform/logger"
	"genotrack/internal/ports/storage"

	"github.com/google/uuid"
)

type Service struct {
	repo       Repository
	genomes    genomes.Repository
	phenotypes phenotypes.Repository
	log        logger.Logger
	now        func() time.Time
}

func NewService(repo Repository, genomeRepo genomes.Repository, phenotypeRepo phenotypes.Repository, log logger.Logger) *Service {
	if log == nil {
		log = logger.Discard()
	}
	return &Service{
		repo:       repo,
		genomes:    genomeRepo,
		phenotypes: phenotypeRepo,
		log:        log.With(map[string]any{"component": "patients"}),
		now:        time.Now,
	}
}

// Now es el reloj que usan la validación y la edad.
func (s *Service) Now() time.Time {
	return s.now()
}

// Validate corre todas las reglas del paciente. existingID vacío = alta (draft).
// Con existingID, el paciente ya está persistido y debe tener genoma.
func (s *Service) Validate(ctx context.Context, existingID string, in Input) error {
	errs := Validate(in, s.now())

	if !errs.Has(FieldIdentifier) {
		taken, err := s.repo.ExistsIdentifier(ctx, in.Identifier, existingID)
		if err != nil {
			return fmt.Errorf("patients: lookup identifier: %w", err)
		}
		if taken {
			errs.Add(FieldIdentifier, validation.MsgTaken)
		}
	}

	if existingID != "" {
		has, err := s.hasGenome(ctx, existingID)
		if err != nil {
			return err
		}
		if !has {
			errs.Add(FieldGenome, msgGenomeRequired)
		}
	}

	return errs.Err()
}

func (s *Service) Create(ctx context.Context, in Input) (Patient, error) {
	in = normalize(in)
	if err := s.Validate(ctx, "", in); err != nil {
		s.logRejected("", err)
		return Patient{}, err
	}

	now := s.now()
	p := Patient{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := assign(&p, in); err != nil {
		return Patient{}, err
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Patient{}, err
	}

	s.log.Info("patient created", map[string]any{"patient": p.ID, "identifier": p.Identifier})
	return p, nil
}

// Update exige que el paciente ya tenga genoma (stage complete).
func (s *Service) Update(ctx context.Context, id string, patch Patch) (Patient, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return Patient{}, err
	}

	in := normalize(patch.Apply(current))
	if err := s.Validate(ctx, current.ID, in); err != nil {
		s.logRejected(current.ID, err)
		return Patient{}, err
	}

	if err := assign(&current, in); err != nil {
		return Patient{}, err
	}
	current.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, current); err != nil {
		return Patient{}, err
	}

	s.log.Info("patient updated", map[string]any{"patient": current.ID})
	return current, nil
}

func (s *Service) Get(ctx context.Context, id string) (Patient, error) {
	return s.repo.GetByID(ctx, strings.TrimSpace(id))
}

// Exists devuelve storage.ErrNotFound (envuelto) si el paciente no existe.
func (s *Service) Exists(ctx context.Context, id string) error {
	_, err := s.Get(ctx, id)
	return err
}

// Record carga el paciente con genoma y fenotipos.
func (s *Service) Record(ctx context.Context, id string) (Record, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return Record{}, err
	}
	return s.load(ctx, p)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Record, error) {
	filter.HPOCode = strings.TrimSpace(filter.HPOCode)
	filter.GeneSymbol = strings.TrimSpace(filter.GeneSymbol)

	items, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	out := make([]Record, 0, len(items))
	for _, p := range items {
		rec, err := s.load(ctx, p)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

// Delete borra en cascada genoma y fenotipos.
func (s *Service) Delete(ctx context.Context, id string) error {
	p, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, p.ID); err != nil {
		return err
	}
	s.log.Info("patient deleted", map[string]any{"patient": p.ID, "identifier": p.Identifier})
	return nil
}

func (s *Service) load(ctx context.Context, p Patient) (Record, error) {
	rec := Record{Patient: p}

	g, err := s.genomes.GetByPatient(ctx, p.ID)
	switch {
	case err == nil:
		rec.Genome = &g
	case errors.Is(err, storage.ErrNotFound):
	default:
		return Record{}, fmt.Errorf("patients: load genome: %w", err)
	}

	phs, err := s.phenotypes.ListByPatient(ctx, p.ID)
	if err != nil {
		return Record{}, fmt.Errorf("patients: load phenotypes: %w", err)
	}
	rec.Phenotypes = phs
	return rec, nil
}

func (s *Service) hasGenome(ctx context.Context, patientID string) (bool, error) {
	_, err := s.genomes.GetByPatient(ctx, patientID)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, storage.ErrNotFound):
		return false, nil
	default:
		return false, fmt.Errorf("patients: lookup genome: %w", err)
	}
}

func (s *Service) logRejected(id string, err error) {
	fields, ok := validation.FieldErrors(err)
	if !ok {
		return
	}
	s.log.Debug("patient rejected", map[string]any{"patient": id, "fields": fields.Fields()})
}

// normalize sólo recorta espacios en la fecha; el resto se valida tal cual llega.
func normalize(in Input) Input {
	in.BirthDate = strings.TrimSpace(in.BirthDate)
	return in
}

func assign(p *Patient, in Input) error {
	bd, err := ParseBirthDate(in.BirthDate)
	if err != nil {
		return fmt.Errorf("patients: birth date: %w", err)
	}
	p.Identifier = in.Identifier
	p.Name = in.Name
	p.BirthDate = bd
	p.Gender = in.Gender
	return nil
}
