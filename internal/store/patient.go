package store

import (
	"context"

	"hospital-scheduler/internal/model"
)

func (s *Store) CreatePatient(ctx context.Context, p *model.Patient) error {
	err := s.q.QueryRow(ctx,
		`INSERT INTO patients (first_name, last_name, age, email) VALUES ($1,$2,$3,$4) RETURNING id`,
		p.FirstName, p.LastName, p.Age, p.Email,
	).Scan(&p.ID)
	return translate(err)
}

func (s *Store) Patient(ctx context.Context, id int64) (*model.Patient, error) {
	p := &model.Patient{}
	err := s.q.QueryRow(ctx,
		`SELECT id, first_name, last_name, age, email FROM patients WHERE id = $1`, id,
	).Scan(&p.ID, &p.FirstName, &p.LastName, &p.Age, &p.Email)
	if err != nil {
		return nil, translate(err)
	}
	return p, nil
}

func (s *Store) Patients(ctx context.Context) ([]model.Patient, error) {
	rows, err := s.q.Query(ctx, `SELECT id, first_name, last_name, age, email FROM patients ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Patient
	for rows.Next() {
		var p model.Patient
		if err := rows.Scan(&p.ID, &p.FirstName, &p.LastName, &p.Age, &p.Email); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *Store) DeletePatient(ctx context.Context, id int64) error {
	return s.deleteOne(ctx, `DELETE FROM patients WHERE id = $1`, id)
}

func (s *Store) DeleteAllPatients(ctx context.Context) error {
	_, err := s.q.Exec(ctx, `DELETE FROM patients`)
	return err
}
