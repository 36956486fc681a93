package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"genotrack/internal/domain/genomes"
	"genotrack/internal/ports/storage"
)

type genomeRepo struct {
	s *Store
}

const genomeColumns = `id, patient_id, gene_symbol, chromosome, position, reference_allele, alternate_allele,
	variant_type, pathogenicity, created_at, updated_at`

func (r *genomeRepo) Create(ctx context.Context, g genomes.Genome) error {
	_, err := r.s.exec(ctx, r.s.db, `
		INSERT INTO genomes (`+genomeColumns+`)
		VALUES (?,?,?,?,?,?,?,?,?,?,?)
	`,
		g.ID,
		g.PatientID,
		g.GeneSymbol,
		g.Chromosome,
		g.Position,
		g.ReferenceAllele,
		g.AlternateAllele,
		string(g.VariantType),
		string(g.Pathogenicity),
		r.s.dialect.Timestamp(g.CreatedAt),
		r.s.dialect.Timestamp(g.UpdatedAt),
	)
	return r.s.conflict("genome", err)
}

func (r *genomeRepo) Update(ctx context.Context, g genomes.Genome) error {
	res, err := r.s.exec(ctx, r.s.db, `
		UPDATE genomes
		SET
			gene_symbol = ?,
			chromosome = ?,
			position = ?,
			reference_allele = ?,
			alternate_allele = ?,
			variant_type = ?,
			pathogenicity = ?,
			updated_at = ?
		WHERE id = ?
	`,
		g.GeneSymbol,
		g.Chromosome,
		g.Position,
		g.ReferenceAllele,
		g.AlternateAllele,
		string(g.VariantType),
		string(g.Pathogenicity),
		r.s.dialect.Timestamp(g.UpdatedAt),
		g.ID,
	)
	if err != nil {
		return r.s.conflict("genome", err)
	}
	return mustAffect(res, "genome", g.ID)
}

func (r *genomeRepo) GetByPatient(ctx context.Context, patientID string) (genomes.Genome, error) {
	row := r.s.queryRow(ctx, `SELECT `+genomeColumns+` FROM genomes WHERE patient_id = ?`, patientID)
	g, err := scanGenome(row)
	if errors.Is(err, sql.ErrNoRows) {
		return genomes.Genome{}, storage.NotFound("genome", patientID)
	}
	return g, err
}

func (r *genomeRepo) Delete(ctx context.Context, id string) error {
	res, err := r.s.exec(ctx, r.s.db, `DELETE FROM genomes WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return mustAffect(res, "genome", id)
}

func (r *genomeRepo) List(ctx context.Context, filter genomes.ListFilter) ([]genomes.Genome, error) {
	var w where
	if filter.PathogenicOnly {
		w.add(`pathogenicity IN (?, ?)`, string(genomes.Pathogenic), string(genomes.LikelyPathogenic))
	}
	if filter.GeneSymbol != "" {
		w.add(`gene_symbol = ?`, filter.GeneSymbol)
	}
	if filter.Chromosome != "" {
		w.add(`chromosome = ?`, filter.Chromosome)
	}

	rows, err := r.s.query(ctx, `
		SELECT `+genomeColumns+`
		FROM genomes`+w.String()+`
		ORDER BY `+r.s.dialect.InsertionOrder()+` ASC
	`, w.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]genomes.Genome, 0)
	for rows.Next() {
		g, err := scanGenome(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func scanGenome(row scanner) (genomes.Genome, error) {
	var g genomes.Genome
	var variantType, pathogenicity string
	if err := row.Scan(
		&g.ID,
		&g.PatientID,
		&g.GeneSymbol,
		&g.Chromosome,
		&g.Position,
		&g.ReferenceAllele,
		&g.AlternateAllele,
		&variantType,
		&pathogenicity,
		scanTime(&g.CreatedAt),
		scanTime(&g.UpdatedAt),
	); err != nil {
		return genomes.Genome{}, err
	}
	g.VariantType = genomes.VariantType(variantType)
	g.Pathogenicity = genomes.Pathogenicity(pathogenicity)
	return g, nil
}
