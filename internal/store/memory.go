package store

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"hospital-scheduler/internal/booking"
	"hospital-scheduler/internal/model"
)

// Memory is an in-process store with the same behaviour as Store. Units of
// work run one at a time, which is what makes booking safe here.
type Memory struct {
	work sync.Mutex

	mu           sync.RWMutex
	nextID       int64
	doctors      map[int64]model.Doctor
	patients     map[int64]model.Patient
	rooms        map[string]model.Room
	appointments map[int64]model.Appointment
}

func NewMemory() *Memory {
	return &Memory{
		doctors:      make(map[int64]model.Doctor),
		patients:     make(map[int64]model.Patient),
		rooms:        make(map[string]model.Room),
		appointments: make(map[int64]model.Appointment),
	}
}

func (m *Memory) id() int64 {
	m.nextID++
	return m.nextID
}

func (m *Memory) Atomically(ctx context.Context, fn func(ctx context.Context, tx booking.Repository) error) error {
	m.work.Lock()
	defer m.work.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(ctx, m)
}

// appointments

func (m *Memory) SaveAppointment(ctx context.Context, a *model.Appointment) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.checkRefs(*a); err != nil {
		return err
	}
	if a.ID == 0 {
		a.ID = m.id()
	} else if _, ok := m.appointments[a.ID]; !ok {
		return model.ErrNotFound
	}
	m.appointments[a.ID] = clone(*a)
	return nil
}

// clone detaches the stored copy from the caller's pointers.
func clone(a model.Appointment) model.Appointment {
	if a.PatientID != nil {
		a.PatientID = model.Ptr(*a.PatientID)
	}
	if a.DoctorID != nil {
		a.DoctorID = model.Ptr(*a.DoctorID)
	}
	if a.RoomName != nil {
		a.RoomName = model.Ptr(*a.RoomName)
	}
	if a.Interval.Start != nil {
		a.Interval.Start = model.Ptr(*a.Interval.Start)
	}
	if a.Interval.End != nil {
		a.Interval.End = model.Ptr(*a.Interval.End)
	}
	return a
}

func (m *Memory) checkRefs(a model.Appointment) error {
	if a.DoctorID != nil {
		if _, ok := m.doctors[*a.DoctorID]; !ok {
			return model.ErrUnknownReference
		}
	}
	if a.PatientID != nil {
		if _, ok := m.patients[*a.PatientID]; !ok {
			return model.ErrUnknownReference
		}
	}
	if a.RoomName != nil {
		if _, ok := m.rooms[*a.RoomName]; !ok {
			return model.ErrUnknownReference
		}
	}
	return nil
}

func (m *Memory) FindAppointmentByID(ctx context.Context, id int64) (*model.Appointment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.appointments[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	a = clone(a)
	return &a, nil
}

func (m *Memory) FindAppointmentsByDoctor(ctx context.Context, doctorID int64) ([]model.Appointment, error) {
	return m.ListAppointments(ctx, AppointmentFilter{DoctorID: &doctorID})
}

func (m *Memory) FindAppointmentsByRoom(ctx context.Context, roomName string) ([]model.Appointment, error) {
	return m.ListAppointments(ctx, AppointmentFilter{RoomName: &roomName})
}

func (m *Memory) FindAppointmentsByPatient(ctx context.Context, patientID int64) ([]model.Appointment, error) {
	return m.ListAppointments(ctx, AppointmentFilter{PatientID: &patientID})
}

func (m *Memory) ListAppointments(ctx context.Context, f AppointmentFilter) ([]model.Appointment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []model.Appointment
	for _, a := range m.appointments {
		if f.DoctorID != nil && (a.DoctorID == nil || *a.DoctorID != *f.DoctorID) {
			continue
		}
		if f.RoomName != nil && (a.RoomName == nil || *a.RoomName != *f.RoomName) {
			continue
		}
		if f.PatientID != nil && (a.PatientID == nil || *a.PatientID != *f.PatientID) {
			continue
		}
		out = append(out, clone(a))
	}
	// same order as the postgres store: by start, missing starts last, then id
	slices.SortFunc(out, func(a, b model.Appointment) int {
		as, bs := a.Interval.Start, b.Interval.Start
		switch {
		case as == nil && bs != nil:
			return 1
		case as != nil && bs == nil:
			return -1
		case as != nil && bs != nil && !as.Equal(*bs):
			return as.Compare(*bs)
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out, nil
}

func (m *Memory) DeleteAppointment(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.appointments[id]; !ok {
		return model.ErrNotFound
	}
	delete(m.appointments, id)
	return nil
}

func (m *Memory) DeleteAllAppointments(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	clear(m.appointments)
	return nil
}

// doctors

func (m *Memory) CreateDoctor(ctx context.Context, d *model.Doctor) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	d.ID = m.id()
	m.doctors[d.ID] = *d
	return nil
}

func (m *Memory) Doctor(ctx context.Context, id int64) (*model.Doctor, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	d, ok := m.doctors[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	return &d, nil
}

func (m *Memory) Doctors(ctx context.Context) ([]model.Doctor, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]model.Doctor, 0, len(m.doctors))
	for _, d := range m.doctors {
		out = append(out, d)
	}
	slices.SortFunc(out, func(a, b model.Doctor) int { return cmp.Compare(a.ID, b.ID) })
	return out, nil
}

func (m *Memory) DeleteDoctor(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.doctors[id]; !ok {
		return model.ErrNotFound
	}
	delete(m.doctors, id)
	m.detach(func(a *model.Appointment) bool {
		if a.DoctorID != nil && *a.DoctorID == id {
			a.DoctorID = nil
			return true
		}
		return false
	})
	return nil
}

func (m *Memory) DeleteAllDoctors(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	clear(m.doctors)
	m.detach(func(a *model.Appointment) bool {
		changed := a.DoctorID != nil
		a.DoctorID = nil
		return changed
	})
	return nil
}

// patients

func (m *Memory) CreatePatient(ctx context.Context, p *model.Patient) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p.ID = m.id()
	m.patients[p.ID] = *p
	return nil
}

func (m *Memory) Patient(ctx context.Context, id int64) (*model.Patient, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.patients[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	return &p, nil
}

func (m *Memory) Patients(ctx context.Context) ([]model.Patient, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]model.Patient, 0, len(m.patients))
	for _, p := range m.patients {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b model.Patient) int { return cmp.Compare(a.ID, b.ID) })
	return out, nil
}

func (m *Memory) DeletePatient(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.patients[id]; !ok {
		return model.ErrNotFound
	}
	delete(m.patients, id)
	m.detach(func(a *model.Appointment) bool {
		if a.PatientID != nil && *a.PatientID == id {
			a.PatientID = nil
			return true
		}
		return false
	})
	return nil
}

func (m *Memory) DeleteAllPatients(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	clear(m.patients)
	m.detach(func(a *model.Appointment) bool {
		changed := a.PatientID != nil
		a.PatientID = nil
		return changed
	})
	return nil
}

// rooms

func (m *Memory) CreateRoom(ctx context.Context, r model.Room) error {
	if err := r.Validate(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rooms[r.Name]; ok {
		return model.ErrAlreadyExists
	}
	m.rooms[r.Name] = r
	return nil
}

func (m *Memory) Room(ctx context.Context, name string) (*model.Room, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.rooms[name]
	if !ok {
		return nil, model.ErrNotFound
	}
	return &r, nil
}

func (m *Memory) Rooms(ctx context.Context) ([]model.Room, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]model.Room, 0, len(m.rooms))
	for _, r := range m.rooms {
		out = append(out, r)
	}
	slices.SortFunc(out, func(a, b model.Room) int { return cmp.Compare(a.Name, b.Name) })
	return out, nil
}

func (m *Memory) DeleteRoom(ctx context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rooms[name]; !ok {
		return model.ErrNotFound
	}
	delete(m.rooms, name)
	m.detach(func(a *model.Appointment) bool {
		if a.RoomName != nil && *a.RoomName == name {
			a.RoomName = nil
			return true
		}
		return false
	})
	return nil
}

func (m *Memory) DeleteAllRooms(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	clear(m.rooms)
	m.detach(func(a *model.Appointment) bool {
		changed := a.RoomName != nil
		a.RoomName = nil
		return changed
	})
	return nil
}

// detach mirrors ON DELETE SET NULL. Callers hold mu.
func (m *Memory) detach(clearRef func(a *model.Appointment) bool) {
	for id, a := range m.appointments {
		if clearRef(&a) {
			m.appointments[id] = a
		}
	}
}
