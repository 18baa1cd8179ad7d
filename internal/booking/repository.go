package booking

import (
	"context"

	"hospital-scheduler/internal/model"
)

// Repository is the persistence boundary the booking service depends on.
//
// Atomically must run fn as a unit of work that is serializable with respect
// to other Atomically calls touching the same doctor, room or patient;
// otherwise two overlapping bookings can both pass validation. A store may
// instead enforce exclusion itself and report violations as *ConflictError.
type Repository interface {
	FindAppointmentsByDoctor(ctx context.Context, doctorID int64) ([]model.Appointment, error)
	FindAppointmentsByRoom(ctx context.Context, roomName string) ([]model.Appointment, error)
	FindAppointmentsByPatient(ctx context.Context, patientID int64) ([]model.Appointment, error)

	// FindAppointmentByID returns model.ErrNotFound when absent.
	FindAppointmentByID(ctx context.Context, id int64) (*model.Appointment, error)

	// SaveAppointment inserts when a.ID is zero, assigning the id, and
	// updates otherwise.
	SaveAppointment(ctx context.Context, a *model.Appointment) error

	Atomically(ctx context.Context, fn func(ctx context.Context, tx Repository) error) error
}
