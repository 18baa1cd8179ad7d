package booking

import "hospital-scheduler/internal/model"

type Result struct {
	Kind ConflictKind
	With *model.Appointment
}

func (r Result) OK() bool { return r.Kind == NoConflict }

func (r Result) Err() error {
	if r.OK() {
		return nil
	}
	return &ConflictError{Kind: r.Kind, With: r.With}
}

// Validate reports the first appointment in existing that overlaps c and
// shares its doctor, room or patient, checked in that order for each entry.
// existing is scanned in the order given and is not modified. Entries with
// the same identity as c are not skipped; see ExcludeID.
func Validate(c model.Appointment, existing []model.Appointment) Result {
	if !c.Interval.Complete() {
		return Result{}
	}
	for _, e := range existing {
		if !e.Overlaps(c) {
			continue
		}
		switch {
		case e.SharesDoctor(c):
			return Result{Kind: DoctorConflict, With: &e}
		case e.SharesRoom(c):
			return Result{Kind: RoomConflict, With: &e}
		case e.SharesPatient(c):
			return Result{Kind: PatientConflict, With: &e}
		}
	}
	return Result{}
}

// ExcludeID returns a copy of appts without the appointment with the given id.
func ExcludeID(appts []model.Appointment, id int64) []model.Appointment {
	out := make([]model.Appointment, 0, len(appts))
	for _, a := range appts {
		if a.ID == id {
			continue
		}
		out = append(out, a)
	}
	return out
}

// merge concatenates sets, keeping the first copy of each persisted id.
func merge(sets ...[]model.Appointment) []model.Appointment {
	seen := make(map[int64]bool)
	var out []model.Appointment
	for _, set := range sets {
		for _, a := range set {
			if a.ID != 0 {
				if seen[a.ID] {
					continue
				}
				seen[a.ID] = true
			}
			out = append(out, a)
		}
	}
	return out
}
