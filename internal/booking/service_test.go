package booking_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"go.uber.org/zap"

	"hospital-scheduler/internal/booking"
	"hospital-scheduler/internal/model"
	"hospital-scheduler/internal/store"
)

type fixture struct {
	svc     *booking.Service
	mem     *store.Memory
	doctor  int64
	doctor2 int64
	patient int64
	room    string
}

func setup(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	mem := store.NewMemory()

	d1 := &model.Doctor{FirstName: model.Ptr("Perla"), LastName: model.Ptr("Amalia"), Age: 24}
	d2 := &model.Doctor{FirstName: model.Ptr("Miren"), LastName: model.Ptr("Iniesta"), Age: 24}
	p := &model.Patient{FirstName: model.Ptr("Jose Luis"), LastName: model.Ptr("Olaya"), Age: 37}
	for _, err := range []error{
		mem.CreateDoctor(ctx, d1),
		mem.CreateDoctor(ctx, d2),
		mem.CreatePatient(ctx, p),
		mem.CreateRoom(ctx, model.Room{Name: "Dermatology"}),
	} {
		if err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	return &fixture{
		svc:     booking.NewService(mem, zap.NewNop()),
		mem:     mem,
		doctor:  d1.ID,
		doctor2: d2.ID,
		patient: p.ID,
		room:    "Dermatology",
	}
}

func (f *fixture) book(t *testing.T, a model.Appointment) *model.Appointment {
	t.Helper()
	got, err := f.svc.Book(context.Background(), a)
	if err != nil {
		t.Fatalf("book: %v", err)
	}
	return got
}

func TestBookPersists(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	got := f.book(t, appt(0, slot(19, 30, 20, 30)).WithDoctor(f.doctor).WithPatient(f.patient).WithRoom(f.room))
	if got.ID == 0 {
		t.Fatal("no id assigned")
	}

	stored, err := f.mem.FindAppointmentByID(ctx, got.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if !stored.SameEntity(*got) || !stored.Interval.Equal(got.Interval) {
		t.Errorf("stored %+v, returned %+v", stored, got)
	}
	if *stored.DoctorID != f.doctor || *stored.PatientID != f.patient || *stored.RoomName != f.room {
		t.Errorf("references not persisted: %+v", stored)
	}
}

func TestBookPlaceholder(t *testing.T) {
	f := setup(t)
	got := f.book(t, model.Appointment{})
	if got.ID == 0 {
		t.Fatal("placeholder got no id")
	}
	if got.DoctorID != nil || got.PatientID != nil || got.RoomName != nil || got.Interval.Start != nil || got.Interval.End != nil {
		t.Errorf("placeholder gained fields: %+v", got)
	}
}

func TestBookIgnoresCallerID(t *testing.T) {
	f := setup(t)
	first := f.book(t, model.Appointment{})
	second := f.book(t, model.Appointment{ID: first.ID})
	if second.ID == first.ID {
		t.Fatal("book overwrote an existing appointment")
	}
}

func TestBookDoctorConflict(t *testing.T) {
	f := setup(t)
	existing := f.book(t, appt(0, slot(19, 30, 20, 0)).WithDoctor(f.doctor))

	_, err := f.svc.Book(context.Background(), appt(0, slot(19, 45, 20, 15)).WithDoctor(f.doctor))
	var ce *booking.ConflictError
	if !errors.As(err, &ce) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if ce.Kind != booking.DoctorConflict || ce.With == nil || ce.With.ID != existing.ID {
		t.Errorf("conflict = %+v", ce)
	}

	all, _ := f.mem.ListAppointments(context.Background(), store.AppointmentFilter{})
	if len(all) != 1 {
		t.Errorf("rejected booking was persisted: %d appointments", len(all))
	}
}

func TestBookRoomAndPatientConflicts(t *testing.T) {
	f := setup(t)
	f.book(t, appt(0, slot(19, 30, 20, 0)).WithDoctor(f.doctor).WithRoom(f.room))
	f.book(t, appt(0, slot(21, 0, 21, 30)).WithDoctor(f.doctor).WithPatient(f.patient))

	_, err := f.svc.Book(context.Background(), appt(0, slot(19, 45, 20, 15)).WithDoctor(f.doctor2).WithRoom(f.room))
	var ce *booking.ConflictError
	if !errors.As(err, &ce) || ce.Kind != booking.RoomConflict {
		t.Fatalf("expected room conflict, got %v", err)
	}

	_, err = f.svc.Book(context.Background(), appt(0, slot(21, 15, 21, 45)).WithDoctor(f.doctor2).WithPatient(f.patient))
	if !errors.As(err, &ce) || ce.Kind != booking.PatientConflict {
		t.Fatalf("expected patient conflict, got %v", err)
	}
}

func TestBookSequentialSlots(t *testing.T) {
	f := setup(t)
	f.book(t, appt(0, slot(20, 15, 20, 30)).WithDoctor(f.doctor))
	f.book(t, appt(0, slot(20, 45, 21, 0)).WithDoctor(f.doctor))
	f.book(t, appt(0, slot(19, 45, 20, 0)).WithDoctor(f.doctor))
	// another doctor may take the same slot
	f.book(t, appt(0, slot(19, 45, 20, 0)).WithDoctor(f.doctor2))
}

func TestBookWithoutTimesAlwaysSucceeds(t *testing.T) {
	f := setup(t)
	f.book(t, appt(0, slot(19, 0, 21, 0)).WithDoctor(f.doctor).WithRoom(f.room).WithPatient(f.patient))
	for range 3 {
		f.book(t, model.Appointment{}.WithDoctor(f.doctor).WithRoom(f.room).WithPatient(f.patient))
	}
}

func TestBookUnknownReference(t *testing.T) {
	f := setup(t)
	_, err := f.svc.Book(context.Background(), appt(0, slot(19, 0, 19, 30)).WithDoctor(999))

	var se *booking.StorageError
	if !errors.As(err, &se) {
		t.Fatalf("expected storage error, got %v", err)
	}
	if !errors.Is(err, model.ErrUnknownReference) {
		t.Errorf("expected unknown reference, got %v", err)
	}
}

func TestBookConcurrentOnlyOneWins(t *testing.T) {
	f := setup(t)

	const n = 8
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.Book(context.Background(), appt(0, slot(9, 0, 9, 30)).WithDoctor(f.doctor))
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var ok, conflicts int
	for err := range errs {
		switch {
		case err == nil:
			ok++
		case booking.IsConflict(err):
			conflicts++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	if ok != 1 || conflicts != n-1 {
		t.Errorf("ok=%d conflicts=%d", ok, conflicts)
	}
}

func TestReschedule(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	x := f.book(t, appt(0, slot(19, 30, 20, 0)).WithDoctor(f.doctor).WithRoom(f.room).WithPatient(f.patient))

	// overlaps only its own previous slot
	got, err := f.svc.Reschedule(ctx, x.ID, slot(19, 45, 20, 15))
	if err != nil {
		t.Fatalf("reschedule: %v", err)
	}
	if got.ID != x.ID || !got.Interval.Equal(slot(19, 45, 20, 15)) {
		t.Errorf("rescheduled = %+v", got)
	}
	if *got.DoctorID != f.doctor || *got.RoomName != f.room || *got.PatientID != f.patient {
		t.Errorf("references changed: %+v", got)
	}

	stored, _ := f.mem.FindAppointmentByID(ctx, x.ID)
	if !stored.Interval.Equal(slot(19, 45, 20, 15)) {
		t.Errorf("stored interval not updated: %+v", stored.Interval)
	}
}

func TestRescheduleConflict(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	x := f.book(t, appt(0, slot(19, 30, 20, 0)).WithDoctor(f.doctor))
	y := f.book(t, appt(0, slot(21, 0, 21, 30)).WithDoctor(f.doctor))

	_, err := f.svc.Reschedule(ctx, x.ID, slot(20, 45, 21, 15))
	var ce *booking.ConflictError
	if !errors.As(err, &ce) || ce.Kind != booking.DoctorConflict || ce.With.ID != y.ID {
		t.Fatalf("expected doctor conflict with %d, got %v", y.ID, err)
	}

	stored, _ := f.mem.FindAppointmentByID(ctx, x.ID)
	if !stored.Interval.Equal(slot(19, 30, 20, 0)) {
		t.Errorf("rejected reschedule changed interval: %+v", stored.Interval)
	}
}

func TestRescheduleNotFound(t *testing.T) {
	f := setup(t)
	_, err := f.svc.Reschedule(context.Background(), 404, slot(9, 0, 9, 30))
	if !errors.Is(err, booking.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if !errors.Is(err, model.ErrNotFound) {
		t.Fatal("ErrNotFound should wrap model.ErrNotFound")
	}
}

type failingRepo struct {
	booking.Repository
	err error
}

func (r failingRepo) Atomically(ctx context.Context, fn func(context.Context, booking.Repository) error) error {
	return fn(ctx, r)
}

func (r failingRepo) FindAppointmentsByDoctor(context.Context, int64) ([]model.Appointment, error) {
	return nil, r.err
}

func (r failingRepo) FindAppointmentByID(context.Context, int64) (*model.Appointment, error) {
	return nil, r.err
}

func TestStorageFailurePropagates(t *testing.T) {
	boom := errors.New("connection reset")
	svc := booking.NewService(failingRepo{err: boom}, zap.NewNop())

	_, err := svc.Book(context.Background(), appt(0, slot(9, 0, 9, 30)).WithDoctor(1))
	var se *booking.StorageError
	if !errors.As(err, &se) || !errors.Is(err, boom) {
		t.Fatalf("book: expected storage error wrapping boom, got %v", err)
	}

	_, err = svc.Reschedule(context.Background(), 1, slot(9, 0, 9, 30))
	if !errors.As(err, &se) || !errors.Is(err, boom) {
		t.Fatalf("reschedule: expected storage error wrapping boom, got %v", err)
	}
}

type txFailRepo struct {
	booking.Repository
}

func (txFailRepo) Atomically(context.Context, func(context.Context, booking.Repository) error) error {
	return context.DeadlineExceeded
}

func TestTransactionFailureIsStorageError(t *testing.T) {
	svc := booking.NewService(txFailRepo{}, zap.NewNop())
	_, err := svc.Book(context.Background(), model.Appointment{})
	var se *booking.StorageError
	if !errors.As(err, &se) || !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected storage error, got %v", err)
	}
}
