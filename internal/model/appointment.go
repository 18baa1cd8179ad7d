package model

// Appointment links a patient, a doctor and a room over an interval. Every
// reference is optional; a zero Appointment is a valid placeholder.
type Appointment struct {
	ID        int64
	PatientID *int64
	DoctorID  *int64
	RoomName  *string
	Interval  Interval
}

// Overlaps is purely temporal: it ignores who and where.
func (a Appointment) Overlaps(o Appointment) bool {
	return a.Interval.Overlaps(o.Interval)
}

func (a Appointment) SharesDoctor(o Appointment) bool  { return idEq(a.DoctorID, o.DoctorID) }
func (a Appointment) SharesPatient(o Appointment) bool { return idEq(a.PatientID, o.PatientID) }

func (a Appointment) SharesRoom(o Appointment) bool {
	return a.RoomName != nil && o.RoomName != nil && *a.RoomName == *o.RoomName
}

// SameEntity compares by identity once both sides are persisted and by value
// before that.
func (a Appointment) SameEntity(o Appointment) bool {
	if a.ID != 0 && o.ID != 0 {
		return a.ID == o.ID
	}
	return a.ID == o.ID &&
		ptrEq(a.PatientID, o.PatientID) &&
		ptrEq(a.DoctorID, o.DoctorID) &&
		ptrEq(a.RoomName, o.RoomName) &&
		a.Interval.Equal(o.Interval)
}

func (a Appointment) WithInterval(iv Interval) Appointment {
	a.Interval = iv
	return a
}

func (a Appointment) WithDoctor(id int64) Appointment {
	a.DoctorID = &id
	return a
}

func (a Appointment) WithPatient(id int64) Appointment {
	a.PatientID = &id
	return a
}

func (a Appointment) WithRoom(name string) Appointment {
	a.RoomName = &name
	return a
}

func idEq(a, b *int64) bool {
	return a != nil && b != nil && *a == *b
}

func ptrEq[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
