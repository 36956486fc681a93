package phenotypes

import (
	"context"
	"fmt"
	"strings"
	"time"

	"genotrack/internal/domain/validation"
	"genotrack/internal/domain/vocabulary"
	"genotrack/internal/platform/logger"
	"genotrack/internal/ports/storage"

	"github.com/google/uuid"
)

// PatientChecker confirma que el paciente existe (lo implementa patients.Service).
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
		log:       log.With(map[string]any{"component": "phenotypes"}),
		now:       time.Now,
	}
}

// Validate corre reglas de campo y la unicidad del código HPO dentro del paciente.
// excludeID es el propio fenotipo en un update.
func (s *Service) Validate(ctx context.Context, patientID, excludeID string, in Input) error {
	errs := s.validator.Validate(in)

	if !errs.Has(FieldHPOCode) {
		taken, err := s.repo.ExistsHPOCode(ctx, patientID, in.HPOCode, excludeID)
		if err != nil {
			return fmt.Errorf("phenotypes: lookup hpo code: %w", err)
		}
		if taken {
			errs.Add(FieldHPOCode, msgHPODuplicate)
		}
	}

	return errs.Err()
}

func (s *Service) Create(ctx context.Context, patientID string, in Input) (Phenotype, error) {
	patientID = strings.TrimSpace(patientID)
	if err := s.patients.Exists(ctx, patientID); err != nil {
		return Phenotype{}, err
	}

	if err := s.Validate(ctx, patientID, "", in); err != nil {
		s.logRejected(patientID, err)
		return Phenotype{}, err
	}

	now := s.now()
	p := Phenotype{
		ID:        uuid.NewString(),
		PatientID: patientID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	assign(&p, in)

	if err := s.repo.Create(ctx, p); err != nil {
		return Phenotype{}, err
	}

	s.log.Info("phenotype created", map[string]any{
		"patient":   patientID,
		"phenotype": p.ID,
		"hpo_code":  p.HPOCode,
	})
	return p, nil
}

func (s *Service) Update(ctx context.Context, patientID, phenotypeID string, patch Patch) (Phenotype, error) {
	current, err := s.Get(ctx, patientID, phenotypeID)
	if err != nil {
		return Phenotype{}, err
	}

	in := patch.Apply(current)
	if err := s.Validate(ctx, current.PatientID, current.ID, in); err != nil {
		s.logRejected(current.PatientID, err)
		return Phenotype{}, err
	}

	assign(&current, in)
	current.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, current); err != nil {
		return Phenotype{}, err
	}

	s.log.Info("phenotype updated", map[string]any{"patient": current.PatientID, "phenotype": current.ID})
	return current, nil
}

// Get devuelve el fenotipo sólo si pertenece al paciente indicado.
func (s *Service) Get(ctx context.Context, patientID, phenotypeID string) (Phenotype, error) {
	patientID = strings.TrimSpace(patientID)
	phenotypeID = strings.TrimSpace(phenotypeID)
	if err := s.patients.Exists(ctx, patientID); err != nil {
		return Phenotype{}, err
	}

	p, err := s.repo.GetByID(ctx, phenotypeID)
	if err != nil {
		return Phenotype{}, err
	}
	if p.PatientID != patientID {
		return Phenotype{}, storage.NotFound("phenotype", phenotypeID)
	}
	return p, nil
}

func (s *Service) ListByPatient(ctx context.Context, patientID string) ([]Phenotype, error) {
	patientID = strings.TrimSpace(patientID)
	if err := s.patients.Exists(ctx, patientID); err != nil {
		return nil, err
	}
	return s.repo.ListByPatient(ctx, patientID)
}

func (s *Service) Delete(ctx context.Context, patientID, phenotypeID string) error {
	p, err := s.Get(ctx, patientID, phenotypeID)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, p.ID); err != nil {
		return err
	}
	s.log.Info("phenotype deleted", map[string]any{"patient": p.PatientID, "phenotype": p.ID})
	return nil
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Phenotype, error) {
	return s.repo.List(ctx, filter)
}

func (s *Service) logRejected(patientID string, err error) {
	fields, ok := validation.FieldErrors(err)
	if !ok {
		return
	}
	s.log.Debug("phenotype rejected", map[string]any{"patient": patientID, "fields": fields.Fields()})
}

func assign(p *Phenotype, in Input) {
	p.HPOCode = in.HPOCode
	p.Description = in.Description
	p.Severity = in.Severity
	p.AgeOfOnset = in.AgeOfOnset
}
