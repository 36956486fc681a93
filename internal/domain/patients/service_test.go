package patients_test

import (
	"context"
	"testing"
	"time"

	"genotrack/internal/adapters/storage/memory"
	"genotrack/internal/domain/genomes"
	"genotrack/internal/domain/patients"
	"genotrack/internal/domain/phenotypes"
	"genotrack/internal/domain/validation"
	"genotrack/internal/domain/vocabulary"
	"genotrack/internal/ports/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type services struct {
	patients   *patients.Service
	genomes    *genomes.Service
	phenotypes *phenotypes.Service
}

func newServices() services {
	store := memory.NewStore()
	vocab := vocabulary.MustDefault()

	ps := patients.NewService(store.Patients(), store.Genomes(), store.Phenotypes(), nil)
	return services{
		patients:   ps,
		genomes:    genomes.NewService(store.Genomes(), ps, vocab, nil),
		phenotypes: phenotypes.NewService(store.Phenotypes(), ps, vocab, nil),
	}
}

// birthYearsAgo deja margen de días para que floor(días/365.25) no dependa
// de cuántos 29 de febrero caen en el rango.
func birthYearsAgo(years int) string {
	return time.Now().AddDate(-years, 0, -10).Format("2006-01-02")
}

func ana() patients.Input {
	return patients.Input{
		Identifier: "BR-PACIENTE-0321",
		Name:       "Ana Silva",
		BirthDate:  birthYearsAgo(45),
		Gender:     patients.GenderFemale,
	}
}

func ldlr() genomes.Input {
	pos := int64(11200138)
	return genomes.Input{
		GeneSymbol:      "LDLR",
		Chromosome:      "19",
		Position:        &pos,
		ReferenceAllele: "C",
		AlternateAllele: "T",
		VariantType:     genomes.VariantSNV,
		Pathogenicity:   genomes.Pathogenic,
	}
}

func hypercholesterolemia() phenotypes.Input {
	return phenotypes.Input{
		HPOCode:     "HP:0003124",
		Description: "Hipercolesterolemia familiar",
		Severity:    phenotypes.SeverityModerate,
		AgeOfOnset:  phenotypes.OnsetAdult,
	}
}

func fieldErrors(t *testing.T, err error) validation.Errors {
	t.Helper()
	require.ErrorIs(t, err, validation.ErrInvalid)
	fields, ok := validation.FieldErrors(err)
	require.True(t, ok)
	return fields
}

func TestTwoStepWorkflow(t *testing.T) {
	ctx := context.Background()
	s := newServices()

	p, err := s.patients.Create(ctx, ana())
	require.NoError(t, err)

	rec, err := s.patients.Record(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, patients.StageDraft, rec.Stage())

	assert.Equal(t, 45, rec.Patient.Age(s.patients.Now()))

	// draft: re-guardar falla hasta que tenga genoma
	name := "Ana Souza"
	_, err = s.patients.Update(ctx, p.ID, patients.Patch{Name: &name})
	assert.Equal(t, []string{"é obrigatório"}, fieldErrors(t, err)[patients.FieldGenome])

	g, err := s.genomes.Create(ctx, p.ID, ldlr())
	require.NoError(t, err)
	assert.True(t, g.IsPathogenic())

	ph, err := s.phenotypes.Create(ctx, p.ID, hypercholesterolemia())
	require.NoError(t, err)
	term, _ := ph.HPOTermName(vocabulary.MustDefault())
	assert.Equal(t, "Hipercolesterolemia", term)

	updated, err := s.patients.Update(ctx, p.ID, patients.Patch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Ana Souza", updated.Name)

	rec, err = s.patients.Record(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, patients.StageComplete, rec.Stage())
	assoc := rec.GenePhenotypeAssociation()
	require.NotNil(t, assoc)
	assert.Equal(t, []string{"HP:0003124"}, assoc.Phenotypes)
	assert.Equal(t, "LDLR:C>T (SNV)", assoc.Variant)

	// sin genoma vuelve a draft
	require.NoError(t, s.genomes.Delete(ctx, p.ID))
	rec, err = s.patients.Record(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, patients.StageDraft, rec.Stage())
}

func TestCreateRejectsDuplicateIdentifier(t *testing.T) {
	ctx := context.Background()
	s := newServices()

	_, err := s.patients.Create(ctx, ana())
	require.NoError(t, err)

	_, err = s.patients.Create(ctx, ana())
	assert.Equal(t, []string{"já está em uso"}, fieldErrors(t, err)[patients.FieldIdentifier])
}

func TestUpdateKeepsOwnIdentifier(t *testing.T) {
	ctx := context.Background()
	s := newServices()

	p, err := s.patients.Create(ctx, ana())
	require.NoError(t, err)
	_, err = s.genomes.Create(ctx, p.ID, ldlr())
	require.NoError(t, err)

	gender := patients.GenderOther
	_, err = s.patients.Update(ctx, p.ID, patients.Patch{Gender: &gender})
	require.NoError(t, err)

	other := ana()
	other.Identifier = "BR-PACIENTE-0322"
	q, err := s.patients.Create(ctx, other)
	require.NoError(t, err)
	_, err = s.genomes.Create(ctx, q.ID, ldlr())
	require.NoError(t, err)

	taken := "BR-PACIENTE-0321"
	_, err = s.patients.Update(ctx, q.ID, patients.Patch{Identifier: &taken})
	assert.Equal(t, []string{"já está em uso"}, fieldErrors(t, err)[patients.FieldIdentifier])
}

func TestFutureBirthDate(t *testing.T) {
	in := ana()
	in.BirthDate = time.Now().AddDate(0, 0, 2).Format("2006-01-02")

	_, err := newServices().patients.Create(context.Background(), in)
	assert.Equal(t, []string{"não pode ser no futuro"}, fieldErrors(t, err)[patients.FieldBirthDate])
}

func TestEarliestBirthDateStaysEditable(t *testing.T) {
	ctx := context.Background()
	s := newServices()

	in := ana()
	in.BirthDate = "0001-01-01"
	p, err := s.patients.Create(ctx, in)
	require.NoError(t, err)

	_, err = s.genomes.Create(ctx, p.ID, ldlr())
	require.NoError(t, err)

	name := "Ana Souza"
	updated, err := s.patients.Update(ctx, p.ID, patients.Patch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "0001-01-01", updated.BirthDate.Format("2006-01-02"))
	assert.Greater(t, updated.Age(time.Now()), 2000)
}

func TestGetUnknownPatient(t *testing.T) {
	ctx := context.Background()
	s := newServices()

	_, err := s.patients.Record(ctx, "nope")
	require.ErrorIs(t, err, storage.ErrNotFound)

	var nf *storage.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "nope", nf.ID)

	_, err = s.genomes.Create(ctx, "nope", ldlr())
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = s.phenotypes.Create(ctx, "nope", hypercholesterolemia())
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestListFiltersByAssociations(t *testing.T) {
	ctx := context.Background()
	s := newServices()

	a, err := s.patients.Create(ctx, ana())
	require.NoError(t, err)
	_, err = s.genomes.Create(ctx, a.ID, ldlr())
	require.NoError(t, err)
	_, err = s.phenotypes.Create(ctx, a.ID, hypercholesterolemia())
	require.NoError(t, err)

	in := ana()
	in.Identifier = "BR-PACIENTE-0400"
	in.Name = "Bruno Lima"
	b, err := s.patients.Create(ctx, in)
	require.NoError(t, err)
	brca := ldlr()
	brca.GeneSymbol = "BRCA1"
	brca.Chromosome = "17"
	_, err = s.genomes.Create(ctx, b.ID, brca)
	require.NoError(t, err)

	all, err := s.patients.List(ctx, patients.ListFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, a.ID, all[0].Patient.ID)
	assert.Equal(t, b.ID, all[1].Patient.ID)

	byCode, err := s.patients.List(ctx, patients.ListFilter{HPOCode: "HP:0003124"})
	require.NoError(t, err)
	require.Len(t, byCode, 1)
	assert.Equal(t, a.ID, byCode[0].Patient.ID)

	byGene, err := s.patients.List(ctx, patients.ListFilter{GeneSymbol: "BRCA1"})
	require.NoError(t, err)
	require.Len(t, byGene, 1)
	assert.Equal(t, b.ID, byGene[0].Patient.ID)

	none, err := s.patients.List(ctx, patients.ListFilter{GeneSymbol: "BRCA1", HPOCode: "HP:0003124"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestDeleteCascades(t *testing.T) {
	ctx := context.Background()
	s := newServices()

	p, err := s.patients.Create(ctx, ana())
	require.NoError(t, err)
	_, err = s.genomes.Create(ctx, p.ID, ldlr())
	require.NoError(t, err)
	ph, err := s.phenotypes.Create(ctx, p.ID, hypercholesterolemia())
	require.NoError(t, err)

	require.NoError(t, s.patients.Delete(ctx, p.ID))

	gs, err := s.genomes.List(ctx, genomes.ListFilter{})
	require.NoError(t, err)
	assert.Empty(t, gs)

	phs, err := s.phenotypes.List(ctx, phenotypes.ListFilter{})
	require.NoError(t, err)
	assert.Empty(t, phs)

	_, err = s.phenotypes.Get(ctx, p.ID, ph.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
