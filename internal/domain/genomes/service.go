package genomes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"genotrack/internal/domain/validation"
	"genotrack/internal/domain/vocabulary"
	"genotrack/internal/platform/logger"
	"genotrack/internal/ports/storage"

	"github.com/google/uuid"
)

// PatientChecker confirma que el paciente existe.
// Lo implementa patients.Service; se define acá para evitar ciclos de imports.
type PatientChecker interface {
	Exists(ctx context.Context, patientID string) error
}

type Service struct {
	repo      Repository
	patients  PatientChecker
	validator *Validator
	log       logger.Logger
	now       func() time.Time
}

func NewService(repo Repository, patients PatientChecker, vocab *vocabulary.Vocabulary, log logger.Logger) *Service {
	if log == nil {
		log = logger.Discard()
	}
	return &Service{
		repo:      repo,
		patients:  patients,
		validator: NewValidator(vocab),
		log:       log.With(map[string]any{"component": "genomes"}),
		now:       time.Now,
	}
}

// Validate corre todas las reglas (campo, cruzadas y de registro) sin persistir.
// existingID vacío = alta; en ese caso se exige que el paciente no tenga genoma.
func (s *Service) Validate(ctx context.Context, patientID, existingID string, in Input) error {
	errs := s.validator.Validate(in)

	if existingID == "" {
		_, err := s.repo.GetByPatient(ctx, patientID)
		switch {
		case err == nil:
			errs.Add(FieldGenome, msgGenomeExists)
		case errors.Is(err, storage.ErrNotFound):
		default:
			return fmt.Errorf("genomes: lookup existing genome: %w", err)
		}
	}

	return errs.Err()
}

func (s *Service) Create(ctx context.Context, patientID string, in Input) (Genome, error) {
	patientID = strings.TrimSpace(patientID)
	if err := s.patients.Exists(ctx, patientID); err != nil {
		return Genome{}, err
	}

	if err := s.Validate(ctx, patientID, "", in); err != nil {
		s.logRejected(patientID, err)
		return Genome{}, err
	}

	now := s.now()
	g := Genome{
		ID:        uuid.NewString(),
		PatientID: patientID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	assign(&g, in)

	if err := s.repo.Create(ctx, g); err != nil {
		return Genome{}, err
	}

	s.log.Info("genome created", map[string]any{
		"patient": patientID,
		"genome":  g.ID,
		"variant": g.VariantDescription(),
	})
	return g, nil
}

// Update aplica el patch sobre el genoma actual y valida el candidato completo.
func (s *Service) Update(ctx context.Context, patientID string, p Patch) (Genome, error) {
	current, err := s.GetByPatient(ctx, patientID)
	if err != nil {
		return Genome{}, err
	}

	in := p.Apply(current)
	if err := s.Validate(ctx, current.PatientID, current.ID, in); err != nil {
		s.logRejected(current.PatientID, err)
		return Genome{}, err
	}

	assign(&current, in)
	current.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, current); err != nil {
		return Genome{}, err
	}

	s.log.Info("genome updated", map[string]any{"patient": current.PatientID, "genome": current.ID})
	return current, nil
}

func (s *Service) GetByPatient(ctx context.Context, patientID string) (Genome, error) {
	patientID = strings.TrimSpace(patientID)
	if err := s.patients.Exists(ctx, patientID); err != nil {
		return Genome{}, err
	}
	return s.repo.GetByPatient(ctx, patientID)
}

// Delete borra el genoma; el paciente vuelve a estado draft.
func (s *Service) Delete(ctx context.Context, patientID string) error {
	g, err := s.GetByPatient(ctx, patientID)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, g.ID); err != nil {
		return err
	}
	s.log.Info("genome deleted", map[string]any{"patient": g.PatientID, "genome": g.ID})
	return nil
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Genome, error) {
	filter.GeneSymbol = strings.TrimSpace(filter.GeneSymbol)
	filter.Chromosome = strings.TrimSpace(filter.Chromosome)
	return s.repo.List(ctx, filter)
}

func (s *Service) logRejected(patientID string, err error) {
	fields, ok := validation.FieldErrors(err)
	if !ok {
		return
	}
	s.log.Debug("genome rejected", map[string]any{"patient": patientID, "fields": fields.Fields()})
}

func assign(g *Genome, in Input) {
	g.GeneSymbol = in.GeneSymbol
	g.Chromosome = in.Chromosome
	if in.Position != nil {
		g.Position = *in.Position
	}
	g.ReferenceAllele = in.ReferenceAllele
	g.AlternateAllele = in.AlternateAllele
	g.VariantType = in.VariantType
	g.Pathogenicity = in.Pathogenicity
}
