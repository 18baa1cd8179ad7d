package store

import (
	"context"

	"hospital-scheduler/internal/model"
)

func (s *Store) CreateDoctor(ctx context.Context, d *model.Doctor) error {
	err := s.q.QueryRow(ctx,
		`INSERT INTO doctors (first_name, last_name, age, email) VALUES ($1,$2,$3,$4) RETURNING id`,
		d.FirstName, d.LastName, d.Age, d.Email,
	).Scan(&d.ID)
	return translate(err)
}

func (s *Store) Doctor(ctx context.Context, id int64) (*model.Doctor, error) {
	d := &model.Doctor{}
	err := s.q.QueryRow(ctx,
		`SELECT id, first_name, last_name, age, email FROM doctors WHERE id = $1`, id,
	).Scan(&d.ID, &d.FirstName, &d.LastName, &d.Age, &d.Email)
	if err != nil {
		return nil, translate(err)
	}
	return d, nil
}

func (s *Store) Doctors(ctx context.Context) ([]model.Doctor, error) {
	rows, err := s.q.Query(ctx, `SELECT id, first_name, last_name, age, email FROM doctors ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Doctor
	for rows.Next() {
		var d model.Doctor
		if err := rows.Scan(&d.ID, &d.FirstName, &d.LastName, &d.Age, &d.Email); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (s *Store) DeleteDoctor(ctx context.Context, id int64) error {
	return s.deleteOne(ctx, `DELETE FROM doctors WHERE id = $1`, id)
}

func (s *Store) DeleteAllDoctors(ctx context.Context) error {
	_, err := s.q.Exec(ctx, `DELETE FROM doctors`)
	return err
}
