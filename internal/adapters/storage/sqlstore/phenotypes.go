package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"genotrack/internal/domain/phenotypes"
	"genotrack/internal/ports/storage"
)

type phenotypeRepo struct {
	s *Store
}

const phenotypeColumns = `id, patient_id, hpo_code, description, severity, age_of_onset, created_at, updated_at`

func (r *phenotypeRepo) Create(ctx context.Context, p phenotypes.Phenotype) error {
	_, err := r.s.exec(ctx, r.s.db, `
		INSERT INTO phenotypes (`+phenotypeColumns+`)
		VALUES (?,?,?,?,?,?,?,?)
	`,
		p.ID,
		p.PatientID,
		p.HPOCode,
		p.Description,
		string(p.Severity),
		string(p.AgeOfOnset),
		r.s.dialect.Timestamp(p.CreatedAt),
		r.s.dialect.Timestamp(p.UpdatedAt),
	)
	return r.s.conflict("phenotype", err)
}

func (r *phenotypeRepo) Update(ctx context.Context, p phenotypes.Phenotype) error {
	res, err := r.s.exec(ctx, r.s.db, `
		UPDATE phenotypes
		SET
			hpo_code = ?,
			description = ?,
			severity = ?,
			age_of_onset = ?,
			updated_at = ?
		WHERE id = ?
	`,
		p.HPOCode,
		p.Description,
		string(p.Severity),
		string(p.AgeOfOnset),
		r.s.dialect.Timestamp(p.UpdatedAt),
		p.ID,
	)
	if err != nil {
		return r.s.conflict("phenotype", err)
	}
	return mustAffect(res, "phenotype", p.ID)
}

func (r *phenotypeRepo) GetByID(ctx context.Context, id string) (phenotypes.Phenotype, error) {
	row := r.s.queryRow(ctx, `SELECT `+phenotypeColumns+` FROM phenotypes WHERE id = ?`, id)
	p, err := scanPhenotype(row)
	if errors.Is(err, sql.ErrNoRows) {
		return phenotypes.Phenotype{}, storage.NotFound("phenotype", id)
	}
	return p, err
}

func (r *phenotypeRepo) Delete(ctx context.Context, id string) error {
	res, err := r.s.exec(ctx, r.s.db, `DELETE FROM phenotypes WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return mustAffect(res, "phenotype", id)
}

func (r *phenotypeRepo) ListByPatient(ctx context.Context, patientID string) ([]phenotypes.Phenotype, error) {
	var w where
	w.add(`patient_id = ?`, patientID)
	return r.list(ctx, w)
}

func (r *phenotypeRepo) List(ctx context.Context, filter phenotypes.ListFilter) ([]phenotypes.Phenotype, error) {
	var w where
	if filter.Severity != "" {
		w.add(`severity = ?`, string(filter.Severity))
	}
	if filter.SevereOnly {
		w.add(`severity IN (?, ?)`, string(phenotypes.SeveritySevere), string(phenotypes.SeverityProfound))
	}
	if filter.AgeOfOnset != "" {
		w.add(`age_of_onset = ?`, string(filter.AgeOfOnset))
	}
	return r.list(ctx, w)
}

func (r *phenotypeRepo) ExistsHPOCode(ctx context.Context, patientID, hpoCode, excludeID string) (bool, error) {
	return r.s.exists(ctx,
		`SELECT 1 FROM phenotypes WHERE patient_id = ? AND hpo_code = ? AND id <> ? LIMIT 1`,
		patientID, hpoCode, excludeID,
	)
}

func (r *phenotypeRepo) list(ctx context.Context, w where) ([]phenotypes.Phenotype, error) {
	rows, err := r.s.query(ctx, `
		SELECT `+phenotypeColumns+`
		FROM phenotypes`+w.String()+`
		ORDER BY `+r.s.dialect.InsertionOrder()+` ASC
	`, w.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]phenotypes.Phenotype, 0)
	for rows.Next() {
		p, err := scanPhenotype(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func scanPhenotype(row scanner) (phenotypes.Phenotype, error) {
	var p phenotypes.Phenotype
	var severity, onset string
	if err := row.Scan(
		&p.ID,
		&p.PatientID,
		&p.HPOCode,
		&p.Description,
		&severity,
		&onset,
		scanTime(&p.CreatedAt),
		scanTime(&p.UpdatedAt),
	); err != nil {
		return phenotypes.Phenotype{}, err
	}
	p.Severity = phenotypes.Severity(severity)
	p.AgeOfOnset = phenotypes.Onset(onset)
	return p, nil
}
