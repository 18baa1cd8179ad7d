package booking

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"hospital-scheduler/internal/model"
)

type Service struct {
	repo Repository
	log  *zap.Logger
}

func NewService(repo Repository, log *zap.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Book validates candidate against every appointment sharing its doctor,
// room or patient and persists it when nothing collides.
func (s *Service) Book(ctx context.Context, candidate model.Appointment) (*model.Appointment, error) {
	candidate.ID = 0

	err := s.repo.Atomically(ctx, func(ctx context.Context, tx Repository) error {
		existing, err := related(ctx, tx, candidate)
		if err != nil {
			return err
		}
		if res := Validate(candidate, existing); !res.OK() {
			return res.Err()
		}
		if err := tx.SaveAppointment(ctx, &candidate); err != nil {
			return storageErr("save appointment", err)
		}
		return nil
	})
	if err != nil {
		s.logFailure("book", err)
		return nil, wrapTx(err)
	}

	s.log.Info("appointment booked", zap.Int64("appointment_id", candidate.ID))
	return &candidate, nil
}

// Reschedule moves an existing appointment to iv, keeping its doctor, room
// and patient. The appointment never conflicts with its own previous slot.
func (s *Service) Reschedule(ctx context.Context, id int64, iv model.Interval) (*model.Appointment, error) {
	var out model.Appointment

	err := s.repo.Atomically(ctx, func(ctx context.Context, tx Repository) error {
		cur, err := tx.FindAppointmentByID(ctx, id)
		if errors.Is(err, model.ErrNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return storageErr("find appointment", err)
		}

		candidate := cur.WithInterval(iv)
		existing, err := related(ctx, tx, candidate)
		if err != nil {
			return err
		}
		if res := Validate(candidate, ExcludeID(existing, id)); !res.OK() {
			return res.Err()
		}
		if err := tx.SaveAppointment(ctx, &candidate); err != nil {
			return storageErr("save appointment", err)
		}
		out = candidate
		return nil
	})
	if err != nil {
		s.logFailure("reschedule", err, zap.Int64("appointment_id", id))
		return nil, wrapTx(err)
	}

	s.log.Info("appointment rescheduled", zap.Int64("appointment_id", id))
	return &out, nil
}

// related loads the appointments that could collide with c, deduplicated.
func related(ctx context.Context, tx Repository, c model.Appointment) ([]model.Appointment, error) {
	var byDoctor, byRoom, byPatient []model.Appointment
	var err error

	if c.DoctorID != nil {
		if byDoctor, err = tx.FindAppointmentsByDoctor(ctx, *c.DoctorID); err != nil {
			return nil, storageErr("find by doctor", err)
		}
	}
	if c.RoomName != nil {
		if byRoom, err = tx.FindAppointmentsByRoom(ctx, *c.RoomName); err != nil {
			return nil, storageErr("find by room", err)
		}
	}
	if c.PatientID != nil {
		if byPatient, err = tx.FindAppointmentsByPatient(ctx, *c.PatientID); err != nil {
			return nil, storageErr("find by patient", err)
		}
	}
	return merge(byDoctor, byRoom, byPatient), nil
}

// wrapTx leaves domain errors alone and wraps anything the unit of work
// itself produced (begin, commit, retries exhausted).
func wrapTx(err error) error {
	var se *StorageError
	if errors.Is(err, ErrNotFound) || IsConflict(err) || errors.As(err, &se) {
		return err
	}
	return &StorageError{Op: "transaction", Err: err}
}

func (s *Service) logFailure(op string, err error, fields ...zap.Field) {
	fields = append(fields, zap.String("op", op), zap.Error(err))
	if errors.Is(err, ErrNotFound) || IsConflict(err) {
		s.log.Info("booking rejected", fields...)
		return
	}
	s.log.Error("booking failed", fields...)
}
