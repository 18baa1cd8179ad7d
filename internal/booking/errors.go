package booking

import (
	"errors"
	"fmt"

	"hospital-scheduler/internal/model"
)

// ErrNotFound is returned when a reschedule target does not exist.
var ErrNotFound = fmt.Errorf("appointment %w", model.ErrNotFound)

type ConflictKind int

const (
	NoConflict ConflictKind = iota
	DoctorConflict
	RoomConflict
	PatientConflict
)

func (k ConflictKind) String() string {
	switch k {
	case DoctorConflict:
		return "doctor"
	case RoomConflict:
		return "room"
	case PatientConflict:
		return "patient"
	}
	return "none"
}

// ConflictError rejects a booking. With is nil when the collision was
// detected by the storage layer rather than by Validate.
type ConflictError struct {
	Kind ConflictKind
	With *model.Appointment
}

func (e *ConflictError) Error() string {
	if e.With != nil && e.With.ID != 0 {
		return fmt.Sprintf("%s already booked by appointment %d", e.Kind, e.With.ID)
	}
	return fmt.Sprintf("%s already booked for this time", e.Kind)
}

// StorageError wraps any failure from the persistence collaborator.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *StorageError) Unwrap() error { return e.Err }

func storageErr(op string, err error) error {
	var ce *ConflictError
	if errors.As(err, &ce) {
		return ce
	}
	return &StorageError{Op: op, Err: err}
}

func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}
