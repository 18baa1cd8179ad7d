package store

import (
	"context"

	"hospital-scheduler/internal/model"
)

func (s *Store) CreateRoom(ctx context.Context, r model.Room) error {
	if err := r.Validate(); err != nil {
		return err
	}
	_, err := s.q.Exec(ctx, `INSERT INTO rooms (name) VALUES ($1)`, r.Name)
	return translate(err)
}

func (s *Store) Room(ctx context.Context, name string) (*model.Room, error) {
	r := &model.Room{}
	err := s.q.QueryRow(ctx, `SELECT name FROM rooms WHERE name = $1`, name).Scan(&r.Name)
	if err != nil {
		return nil, translate(err)
	}
	return r, nil
}

func (s *Store) Rooms(ctx context.Context) ([]model.Room, error) {
	rows, err := s.q.Query(ctx, `SELECT name FROM rooms ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Room
	for rows.Next() {
		var r model.Room
		if err := rows.Scan(&r.Name); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) DeleteRoom(ctx context.Context, name string) error {
	return s.deleteOne(ctx, `DELETE FROM rooms WHERE name = $1`, name)
}

func (s *Store) DeleteAllRooms(ctx context.Context) error {
	_, err := s.q.Exec(ctx, `DELETE FROM rooms`)
	return err
}
