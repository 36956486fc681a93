package sqlite_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"genotrack/internal/adapters/storage/sqlite"
	"genotrack/internal/adapters/storage/sqlstore"
	"genotrack/internal/domain/genomes"
	"genotrack/internal/domain/patients"
	"genotrack/internal/domain/phenotypes"
	"genotrack/internal/ports/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *sqlstore.Store {
	t.Helper()

	db, err := sqlite.Open(context.Background(), filepath.Join(t.TempDir(), "genotrack.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return sqlite.NewStore(db)
}

var base = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

func patient(id, identifier string, offset time.Duration) patients.Patient {
	return patients.Patient{
		ID:         id,
		Identifier: identifier,
		Name:       "Ana Silva",
		BirthDate:  time.Date(1980, 5, 17, 0, 0, 0, 0, time.UTC),
		Gender:     patients.GenderFemale,
		CreatedAt:  base.Add(offset),
		UpdatedAt:  base.Add(offset),
	}
}

func genome(id, patientID, gene string, p genomes.Pathogenicity) genomes.Genome {
	return genomes.Genome{
		ID:              id,
		PatientID:       patientID,
		GeneSymbol:      gene,
		Chromosome:      "19",
		Position:        11200138,
		ReferenceAllele: "C",
		AlternateAllele: "T",
		VariantType:     genomes.VariantSNV,
		Pathogenicity:   p,
		CreatedAt:       base,
		UpdatedAt:       base,
	}
}

func phenotype(id, patientID, code string, sev phenotypes.Severity, offset time.Duration) phenotypes.Phenotype {
	return phenotypes.Phenotype{
		ID:          id,
		PatientID:   patientID,
		HPOCode:     code,
		Description: "hipercolesterolemia familiar",
		Severity:    sev,
		AgeOfOnset:  phenotypes.OnsetAdult,
		CreatedAt:   base.Add(offset),
		UpdatedAt:   base.Add(offset),
	}
}

func TestPatientsRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newStore(t).Patients()

	p := patient("p1", "BR-PACIENTE-0001", 0)
	require.NoError(t, repo.Create(ctx, p))

	got, err := repo.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "BR-PACIENTE-0001", got.Identifier)
	assert.Equal(t, patients.GenderFemale, got.Gender)
	assert.True(t, p.BirthDate.Equal(got.BirthDate))
	assert.True(t, p.CreatedAt.Equal(got.CreatedAt))

	taken, err := repo.ExistsIdentifier(ctx, "BR-PACIENTE-0001", "")
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = repo.ExistsIdentifier(ctx, "BR-PACIENTE-0001", "p1")
	require.NoError(t, err)
	assert.False(t, taken, "self is excluded")

	got.Name = "Ana Souza"
	require.NoError(t, repo.Update(ctx, got))
	got, err = repo.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Ana Souza", got.Name)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	err = repo.Update(ctx, patient("missing", "BR-PACIENTE-0009", 0))
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestPatientIdentifierConflict(t *testing.T) {
	ctx := context.Background()
	repo := newStore(t).Patients()

	require.NoError(t, repo.Create(ctx, patient("p1", "BR-PACIENTE-0001", 0)))

	err := repo.Create(ctx, patient("p2", "BR-PACIENTE-0001", time.Second))
	require.ErrorIs(t, err, storage.ErrConflict)

	var ce *storage.ConflictError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "patients.patient_id", ce.Constraint)
}

func TestGenomeOnePerPatient(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	require.NoError(t, s.Patients().Create(ctx, patient("p1", "BR-PACIENTE-0001", 0)))

	require.NoError(t, s.Genomes().Create(ctx, genome("g1", "p1", "LDLR", genomes.Pathogenic)))
	err := s.Genomes().Create(ctx, genome("g2", "p1", "BRCA1", genomes.Benign))
	assert.ErrorIs(t, err, storage.ErrConflict)

	g, err := s.Genomes().GetByPatient(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "LDLR:C>T (SNV)", g.VariantDescription())
	assert.Equal(t, int64(11200138), g.Position)

	require.NoError(t, s.Genomes().Delete(ctx, "g1"))
	_, err = s.Genomes().GetByPatient(ctx, "p1")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestPhenotypeCodeUniquePerPatient(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	require.NoError(t, s.Patients().Create(ctx, patient("p1", "BR-PACIENTE-0001", 0)))
	require.NoError(t, s.Patients().Create(ctx, patient("p2", "BR-PACIENTE-0002", time.Second)))

	repo := s.Phenotypes()
	require.NoError(t, repo.Create(ctx, phenotype("f1", "p1", "HP:0003124", phenotypes.SeverityModerate, 0)))
	require.NoError(t, repo.Create(ctx, phenotype("f2", "p2", "HP:0003124", phenotypes.SeverityModerate, 0)))

	err := repo.Create(ctx, phenotype("f3", "p1", "HP:0003124", phenotypes.SeverityMild, time.Second))
	assert.ErrorIs(t, err, storage.ErrConflict)

	taken, err := repo.ExistsHPOCode(ctx, "p1", "HP:0003124", "f1")
	require.NoError(t, err)
	assert.False(t, taken)

	taken, err = repo.ExistsHPOCode(ctx, "p1", "HP:0003124", "")
	require.NoError(t, err)
	assert.True(t, taken)
}

func TestListFiltersAndOrder(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	require.NoError(t, s.Patients().Create(ctx, patient("p1", "BR-PACIENTE-0001", 0)))
	require.NoError(t, s.Patients().Create(ctx, patient("p2", "BR-PACIENTE-0002", time.Minute)))
	require.NoError(t, s.Patients().Create(ctx, patient("p3", "BR-PACIENTE-0003", 2*time.Minute)))

	require.NoError(t, s.Genomes().Create(ctx, genome("g1", "p1", "LDLR", genomes.Pathogenic)))
	require.NoError(t, s.Genomes().Create(ctx, genome("g2", "p2", "LDLR", genomes.Benign)))

	require.NoError(t, s.Phenotypes().Create(ctx, phenotype("f1", "p1", "HP:0003124", phenotypes.SeverityModerate, 0)))
	require.NoError(t, s.Phenotypes().Create(ctx, phenotype("f2", "p1", "HP:0001250", phenotypes.SeveritySevere, time.Second)))
	require.NoError(t, s.Phenotypes().Create(ctx, phenotype("f3", "p3", "HP:0001250", phenotypes.SeverityProfound, 2*time.Second)))

	all, err := s.Patients().List(ctx, patients.ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"p1", "p2", "p3"}, patientIDs(all))

	byGene, err := s.Patients().List(ctx, patients.ListFilter{GeneSymbol: "LDLR"})
	require.NoError(t, err)
	assert.Equal(t, []string{"p1", "p2"}, patientIDs(byGene))

	both, err := s.Patients().List(ctx, patients.ListFilter{GeneSymbol: "LDLR", HPOCode: "HP:0001250"})
	require.NoError(t, err)
	assert.Equal(t, []string{"p1"}, patientIDs(both))

	pathogenic, err := s.Genomes().List(ctx, genomes.ListFilter{PathogenicOnly: true})
	require.NoError(t, err)
	require.Len(t, pathogenic, 1)
	assert.Equal(t, "g1", pathogenic[0].ID)

	severe, err := s.Phenotypes().List(ctx, phenotypes.ListFilter{SevereOnly: true})
	require.NoError(t, err)
	require.Len(t, severe, 2)
	assert.Equal(t, "f2", severe[0].ID)
	assert.Equal(t, "f3", severe[1].ID)

	byPatient, err := s.Phenotypes().ListByPatient(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, byPatient, 2)
	assert.Equal(t, "HP:0003124", byPatient[0].HPOCode)
}

func TestListOrderFollowsInsertionWithEqualTimestamps(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	// Mismo created_at e ids en orden inverso al alta.
	ids := []string{"pc", "pb", "pa"}
	for i, id := range ids {
		require.NoError(t, s.Patients().Create(ctx, patient(id, fmt.Sprintf("BR-PACIENTE-%04d", i+1), 0)))
	}
	all, err := s.Patients().List(ctx, patients.ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, ids, patientIDs(all))

	require.NoError(t, s.Phenotypes().Create(ctx, phenotype("fz", "pa", "HP:0003124", phenotypes.SeverityMild, 0)))
	require.NoError(t, s.Phenotypes().Create(ctx, phenotype("fy", "pa", "HP:0001250", phenotypes.SeverityMild, 0)))
	byPatient, err := s.Phenotypes().ListByPatient(ctx, "pa")
	require.NoError(t, err)
	require.Len(t, byPatient, 2)
	assert.Equal(t, "fz", byPatient[0].ID)
	assert.Equal(t, "fy", byPatient[1].ID)

	require.NoError(t, s.Genomes().Create(ctx, genome("gz", "pb", "LDLR", genomes.Benign)))
	require.NoError(t, s.Genomes().Create(ctx, genome("gy", "pa", "LDLR", genomes.Benign)))
	list, err := s.Genomes().List(ctx, genomes.ListFilter{})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "gz", list[0].ID)
	assert.Equal(t, "gy", list[1].ID)
}

func TestDeletePatientCascades(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	require.NoError(t, s.Patients().Create(ctx, patient("p1", "BR-PACIENTE-0001", 0)))
	require.NoError(t, s.Genomes().Create(ctx, genome("g1", "p1", "LDLR", genomes.Pathogenic)))
	require.NoError(t, s.Phenotypes().Create(ctx, phenotype("f1", "p1", "HP:0003124", phenotypes.SeverityModerate, 0)))

	require.NoError(t, s.Patients().Delete(ctx, "p1"))

	_, err := s.Genomes().GetByPatient(ctx, "p1")
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = s.Phenotypes().GetByID(ctx, "f1")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	assert.ErrorIs(t, s.Patients().Delete(ctx, "p1"), storage.ErrNotFound)
}

func patientIDs(items []patients.Patient) []string {
	out := make([]string, 0, len(items))
	for _, p := range items {
		out = append(out, p.ID)
	}
	return out
}
