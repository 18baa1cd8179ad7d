package booking_test

import (
	"testing"
	"time"

	"hospital-scheduler/internal/booking"
	"hospital-scheduler/internal/model"
)

var day = time.Date(2023, 4, 24, 0, 0, 0, 0, time.UTC)

func hm(h, m int) time.Time {
	return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
}

func slot(h1, m1, h2, m2 int) model.Interval {
	return model.Between(hm(h1, m1), hm(h2, m2))
}

func appt(id int64, iv model.Interval) model.Appointment {
	return model.Appointment{ID: id, Interval: iv}
}

func TestValidate(t *testing.T) {
	drA := appt(0, slot(19, 45, 20, 15)).WithDoctor(1).WithRoom("Dermatology").WithPatient(10)

	tests := []struct {
		name      string
		candidate model.Appointment
		existing  []model.Appointment
		kind      booking.ConflictKind
		withID    int64
	}{
		{
			name:      "no existing appointments",
			candidate: drA,
			kind:      booking.NoConflict,
		},
		{
			name:      "later slots for same doctor",
			candidate: appt(0, slot(19, 45, 20, 0)).WithDoctor(1),
			existing: []model.Appointment{
				appt(1, slot(20, 15, 20, 30)).WithDoctor(1),
				appt(2, slot(20, 45, 21, 0)).WithDoctor(1),
			},
			kind: booking.NoConflict,
		},
		{
			name:      "starts before existing ends",
			candidate: appt(0, slot(19, 45, 20, 15)).WithDoctor(1),
			existing:  []model.Appointment{appt(1, slot(19, 30, 20, 0)).WithDoctor(1)},
			kind:      booking.DoctorConflict,
			withID:    1,
		},
		{
			name:      "identical times same doctor",
			candidate: appt(0, slot(19, 30, 20, 0)).WithDoctor(1),
			existing:  []model.Appointment{appt(4, slot(19, 30, 20, 0)).WithDoctor(1)},
			kind:      booking.DoctorConflict,
			withID:    4,
		},
		{
			name:      "touching boundary",
			candidate: appt(0, slot(20, 0, 20, 30)).WithDoctor(1),
			existing:  []model.Appointment{appt(1, slot(19, 30, 20, 0)).WithDoctor(1)},
			kind:      booking.DoctorConflict,
			withID:    1,
		},
		{
			name:      "overlap with unrelated resources only",
			candidate: drA,
			existing: []model.Appointment{
				appt(1, slot(19, 30, 20, 0)).WithDoctor(2).WithRoom("Gynecology").WithPatient(11),
			},
			kind: booking.NoConflict,
		},
		{
			name:      "room conflict",
			candidate: drA,
			existing:  []model.Appointment{appt(1, slot(20, 0, 20, 30)).WithDoctor(2).WithRoom("Dermatology")},
			kind:      booking.RoomConflict,
			withID:    1,
		},
		{
			name:      "patient conflict",
			candidate: drA,
			existing:  []model.Appointment{appt(1, slot(20, 0, 20, 30)).WithDoctor(2).WithPatient(10)},
			kind:      booking.PatientConflict,
			withID:    1,
		},
		{
			name:      "doctor wins over room and patient on the same pair",
			candidate: drA,
			existing:  []model.Appointment{appt(1, slot(20, 0, 20, 30)).WithDoctor(1).WithRoom("Dermatology").WithPatient(10)},
			kind:      booking.DoctorConflict,
			withID:    1,
		},
		{
			name:      "room wins over patient on the same pair",
			candidate: drA,
			existing:  []model.Appointment{appt(1, slot(20, 0, 20, 30)).WithRoom("Dermatology").WithPatient(10)},
			kind:      booking.RoomConflict,
			withID:    1,
		},
		{
			name:      "first colliding entry wins",
			candidate: drA,
			existing: []model.Appointment{
				appt(1, slot(18, 0, 18, 30)).WithDoctor(1),
				appt(2, slot(20, 0, 20, 30)).WithPatient(10),
				appt(3, slot(19, 0, 20, 0)).WithDoctor(1),
			},
			kind:   booking.PatientConflict,
			withID: 2,
		},
		{
			name:      "candidate without times",
			candidate: model.Appointment{}.WithDoctor(1).WithRoom("Dermatology"),
			existing: []model.Appointment{
				appt(1, slot(19, 30, 20, 0)).WithDoctor(1).WithRoom("Dermatology"),
			},
			kind: booking.NoConflict,
		},
		{
			name:      "existing without times",
			candidate: drA,
			existing:  []model.Appointment{model.Appointment{ID: 1}.WithDoctor(1)},
			kind:      booking.NoConflict,
		},
		{
			name:      "same identity is not skipped",
			candidate: appt(5, slot(19, 30, 20, 0)).WithDoctor(1),
			existing:  []model.Appointment{appt(5, slot(19, 30, 20, 0)).WithDoctor(1)},
			kind:      booking.DoctorConflict,
			withID:    5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := booking.Validate(tt.candidate, tt.existing)
			if res.Kind != tt.kind {
				t.Fatalf("kind = %s, want %s", res.Kind, tt.kind)
			}
			if tt.kind == booking.NoConflict {
				if !res.OK() || res.Err() != nil || res.With != nil {
					t.Fatalf("expected ok result, got %+v", res)
				}
				return
			}
			if res.With == nil || res.With.ID != tt.withID {
				t.Fatalf("conflict with %+v, want id %d", res.With, tt.withID)
			}
			if !booking.IsConflict(res.Err()) {
				t.Fatalf("Err() = %v, want conflict error", res.Err())
			}
		})
	}
}

func TestValidateDoesNotMutateInput(t *testing.T) {
	existing := []model.Appointment{
		appt(1, slot(19, 30, 20, 0)).WithDoctor(1),
		appt(2, slot(21, 0, 21, 30)).WithDoctor(1),
	}
	before := append([]model.Appointment(nil), existing...)

	res := booking.Validate(appt(0, slot(19, 45, 20, 15)).WithDoctor(1), existing)
	res.With.ID = 99

	for i := range existing {
		if !existing[i].SameEntity(before[i]) {
			t.Fatalf("existing[%d] changed: %+v", i, existing[i])
		}
	}
}

func TestExcludeID(t *testing.T) {
	in := []model.Appointment{appt(1, model.Interval{}), appt(2, model.Interval{}), appt(3, model.Interval{})}
	out := booking.ExcludeID(in, 2)
	if len(out) != 2 || out[0].ID != 1 || out[1].ID != 3 {
		t.Fatalf("ExcludeID = %+v", out)
	}
	if len(in) != 3 {
		t.Fatal("input modified")
	}
}

func TestConflictErrorMessage(t *testing.T) {
	err := &booking.ConflictError{Kind: booking.RoomConflict, With: &model.Appointment{ID: 7}}
	if got, want := err.Error(), "room already booked by appointment 7"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	err = &booking.ConflictError{Kind: booking.DoctorConflict}
	if got, want := err.Error(), "doctor already booked for this time"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
