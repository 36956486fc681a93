package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"genotrack/internal/domain/patients"
	"genotrack/internal/ports/storage"
)

type patientRepo struct {
	s *Store
}

const patientColumns = `id, patient_id, name, birth_date, gender, created_at, updated_at`

func (r *patientRepo) Create(ctx context.Context, p patients.Patient) error {
	_, err := r.s.exec(ctx, r.s.db, `
		INSERT INTO patients (`+patientColumns+`)
		VALUES (?,?,?,?,?,?,?)
	`,
		p.ID,
		p.Identifier,
		p.Name,
		r.s.dialect.Date(p.BirthDate),
		string(p.Gender),
		r.s.dialect.Timestamp(p.CreatedAt),
		r.s.dialect.Timestamp(p.UpdatedAt),
	)
	return r.s.conflict("patient", err)
}

func (r *patientRepo) Update(ctx context.Context, p patients.Patient) error {
	res, err := r.s.exec(ctx, r.s.db, `
		UPDATE patients
		SET
			patient_id = ?,
			name = ?,
			birth_date = ?,
			gender = ?,
			updated_at = ?
		WHERE id = ?
	`,
		p.Identifier,
		p.Name,
		r.s.dialect.Date(p.BirthDate),
		string(p.Gender),
		r.s.dialect.Timestamp(p.UpdatedAt),
		p.ID,
	)
	if err != nil {
		return r.s.conflict("patient", err)
	}
	return mustAffect(res, "patient", p.ID)
}

func (r *patientRepo) GetByID(ctx context.Context, id string) (patients.Patient, error) {
	row := r.s.queryRow(ctx, `SELECT `+patientColumns+` FROM patients WHERE id = ?`, id)
	p, err := scanPatient(row)
	if errors.Is(err, sql.ErrNoRows) {
		return patients.Patient{}, storage.NotFound("patient", id)
	}
	return p, err
}

// Delete borra hijos y paciente en una transacción; no depende de ON DELETE CASCADE.
func (r *patientRepo) Delete(ctx context.Context, id string) error {
	tx, err := r.s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := r.s.exec(ctx, tx, `DELETE FROM phenotypes WHERE patient_id = ?`, id); err != nil {
		return fmt.Errorf("delete phenotypes: %w", err)
	}
	if _, err := r.s.exec(ctx, tx, `DELETE FROM genomes WHERE patient_id = ?`, id); err != nil {
		return fmt.Errorf("delete genome: %w", err)
	}
	res, err := r.s.exec(ctx, tx, `DELETE FROM patients WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete patient: %w", err)
	}
	if err := mustAffect(res, "patient", id); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *patientRepo) ExistsIdentifier(ctx context.Context, identifier, excludeID string) (bool, error) {
	return r.s.exists(ctx,
		`SELECT 1 FROM patients WHERE patient_id = ? AND id <> ? LIMIT 1`,
		identifier, excludeID,
	)
}

func (r *patientRepo) List(ctx context.Context, filter patients.ListFilter) ([]patients.Patient, error) {
	var w where
	if filter.HPOCode != "" {
		w.add(`EXISTS (SELECT 1 FROM phenotypes ph WHERE ph.patient_id = p.id AND ph.hpo_code = ?)`, filter.HPOCode)
	}
	if filter.GeneSymbol != "" {
		w.add(`EXISTS (SELECT 1 FROM genomes g WHERE g.patient_id = p.id AND g.gene_symbol = ?)`, filter.GeneSymbol)
	}

	rows, err := r.s.query(ctx, `
		SELECT p.id, p.patient_id, p.name, p.birth_date, p.gender, p.created_at, p.updated_at
		FROM patients p`+w.String()+`
		ORDER BY p.`+r.s.dialect.InsertionOrder()+` ASC
	`, w.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]patients.Patient, 0)
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPatient(row scanner) (patients.Patient, error) {
	var p patients.Patient
	var gender string
	if err := row.Scan(
		&p.ID,
		&p.Identifier,
		&p.Name,
		scanTime(&p.BirthDate),
		&gender,
		scanTime(&p.CreatedAt),
		scanTime(&p.UpdatedAt),
	); err != nil {
		return patients.Patient{}, err
	}
	p.Gender = patients.Gender(gender)
	return p, nil
}
