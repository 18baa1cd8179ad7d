package store

import (
	"context"

	"github.com/jackc/pgx/v5"

	"hospital-scheduler/internal/model"
)

const appointmentCols = `id, patient_id, doctor_id, room_name, starts_at, finishes_at`

// AppointmentFilter narrows ListAppointments; nil fields match everything.
type AppointmentFilter struct {
	DoctorID  *int64
	RoomName  *string
	PatientID *int64
}

func (s *Store) SaveAppointment(ctx context.Context, a *model.Appointment) error {
	if a.ID == 0 {
		err := s.q.QueryRow(ctx,
			`INSERT INTO appointments (patient_id, doctor_id, room_name, starts_at, finishes_at)
			 VALUES ($1,$2,$3,$4,$5) RETURNING id`,
			a.PatientID, a.DoctorID, a.RoomName, a.Interval.Start, a.Interval.End,
		).Scan(&a.ID)
		return translate(err)
	}

	tag, err := s.q.Exec(ctx,
		`UPDATE appointments
		 SET patient_id=$1, doctor_id=$2, room_name=$3, starts_at=$4, finishes_at=$5, updated_at=NOW()
		 WHERE id=$6`,
		a.PatientID, a.DoctorID, a.RoomName, a.Interval.Start, a.Interval.End, a.ID,
	)
	if err != nil {
		return translate(err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (s *Store) FindAppointmentByID(ctx context.Context, id int64) (*model.Appointment, error) {
	a, err := scanAppointment(s.q.QueryRow(ctx,
		`SELECT `+appointmentCols+` FROM appointments WHERE id = $1`, id))
	if err != nil {
		return nil, translate(err)
	}
	return a, nil
}

func (s *Store) FindAppointmentsByDoctor(ctx context.Context, doctorID int64) ([]model.Appointment, error) {
	return s.queryAppointments(ctx, `WHERE doctor_id = $1`, doctorID)
}

func (s *Store) FindAppointmentsByRoom(ctx context.Context, roomName string) ([]model.Appointment, error) {
	return s.queryAppointments(ctx, `WHERE room_name = $1`, roomName)
}

func (s *Store) FindAppointmentsByPatient(ctx context.Context, patientID int64) ([]model.Appointment, error) {
	return s.queryAppointments(ctx, `WHERE patient_id = $1`, patientID)
}

func (s *Store) ListAppointments(ctx context.Context, f AppointmentFilter) ([]model.Appointment, error) {
	return s.queryAppointments(ctx,
		`WHERE ($1::bigint IS NULL OR doctor_id = $1)
		   AND ($2::text IS NULL OR room_name = $2)
		   AND ($3::bigint IS NULL OR patient_id = $3)`,
		f.DoctorID, f.RoomName, f.PatientID,
	)
}

func (s *Store) DeleteAppointment(ctx context.Context, id int64) error {
	return s.deleteOne(ctx, `DELETE FROM appointments WHERE id = $1`, id)
}

func (s *Store) DeleteAllAppointments(ctx context.Context) error {
	_, err := s.q.Exec(ctx, `DELETE FROM appointments`)
	return err
}

func (s *Store) queryAppointments(ctx context.Context, where string, args ...any) ([]model.Appointment, error) {
	rows, err := s.q.Query(ctx,
		`SELECT `+appointmentCols+` FROM appointments `+where+`
		 ORDER BY starts_at NULLS LAST, id`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	return out, rows.Err()
}

func scanAppointment(row pgx.Row) (*model.Appointment, error) {
	a := &model.Appointment{}
	err := row.Scan(&a.ID, &a.PatientID, &a.DoctorID, &a.RoomName, &a.Interval.Start, &a.Interval.End)
	if err != nil {
		return nil, err
	}
	return a, nil
}
