package rpc

import "time"

type Empty struct{}

func (*Empty) appendWire(b []byte) []byte { return b }
func (*Empty) consumeWire(b []byte) error {
	return eachField(b, func(field) error { return nil })
}

// Person carries a doctor or a patient.
type Person struct {
	Id        int64
	FirstName *string
	LastName  *string
	Age       int64
	Email     *string
}

func (m *Person) appendWire(b []byte) []byte {
	b = appendInt(b, 1, m.Id)
	b = appendOptString(b, 2, m.FirstName)
	b = appendOptString(b, 3, m.LastName)
	b = appendInt(b, 4, m.Age)
	b = appendOptString(b, 5, m.Email)
	return b
}

func (m *Person) consumeWire(b []byte) error {
	*m = Person{}
	return eachField(b, func(f field) error {
		switch {
		case f.num == 1 && f.isVarint():
			m.Id = int64(f.varint)
		case f.num == 2 && f.isBytes():
			m.FirstName = optString(f)
		case f.num == 3 && f.isBytes():
			m.LastName = optString(f)
		case f.num == 4 && f.isVarint():
			m.Age = int64(f.varint)
		case f.num == 5 && f.isBytes():
			m.Email = optString(f)
		}
		return nil
	})
}

type Room struct {
	Name string
}

func (m *Room) appendWire(b []byte) []byte {
	if m.Name == "" {
		return b
	}
	return appendString(b, 1, m.Name)
}

func (m *Room) consumeWire(b []byte) error {
	*m = Room{}
	return eachField(b, func(f field) error {
		if f.num == 1 && f.isBytes() {
			m.Name = string(f.bytes)
		}
		return nil
	})
}

type Appointment struct {
	Id         int64
	PatientId  *int64
	DoctorId   *int64
	RoomName   *string
	StartsAt   *time.Time
	FinishesAt *time.Time
}

func (m *Appointment) appendWire(b []byte) []byte {
	b = appendInt(b, 1, m.Id)
	b = appendOptInt(b, 2, m.PatientId)
	b = appendOptInt(b, 3, m.DoctorId)
	b = appendOptString(b, 4, m.RoomName)
	b = appendTime(b, 5, m.StartsAt)
	b = appendTime(b, 6, m.FinishesAt)
	return b
}

func (m *Appointment) consumeWire(b []byte) error {
	*m = Appointment{}
	return eachField(b, func(f field) error {
		var err error
		switch {
		case f.num == 1 && f.isVarint():
			m.Id = int64(f.varint)
		case f.num == 2 && f.isVarint():
			m.PatientId = optInt(f)
		case f.num == 3 && f.isVarint():
			m.DoctorId = optInt(f)
		case f.num == 4 && f.isBytes():
			m.RoomName = optString(f)
		case f.num == 5 && f.isBytes():
			m.StartsAt, err = parseTime(f.bytes)
		case f.num == 6 && f.isBytes():
			m.FinishesAt, err = parseTime(f.bytes)
		}
		if err != nil {
			return wireErr("appointment", err)
		}
		return nil
	})
}

type IDRequest struct {
	Id int64
}

func (m *IDRequest) appendWire(b []byte) []byte { return appendInt(b, 1, m.Id) }

func (m *IDRequest) consumeWire(b []byte) error {
	*m = IDRequest{}
	return eachField(b, func(f field) error {
		if f.num == 1 && f.isVarint() {
			m.Id = int64(f.varint)
		}
		return nil
	})
}

type RescheduleRequest struct {
	Id         int64
	StartsAt   *time.Time
	FinishesAt *time.Time
}

func (m *RescheduleRequest) appendWire(b []byte) []byte {
	b = appendInt(b, 1, m.Id)
	b = appendTime(b, 2, m.StartsAt)
	b = appendTime(b, 3, m.FinishesAt)
	return b
}

func (m *RescheduleRequest) consumeWire(b []byte) error {
	*m = RescheduleRequest{}
	return eachField(b, func(f field) error {
		var err error
		switch {
		case f.num == 1 && f.isVarint():
			m.Id = int64(f.varint)
		case f.num == 2 && f.isBytes():
			m.StartsAt, err = parseTime(f.bytes)
		case f.num == 3 && f.isBytes():
			m.FinishesAt, err = parseTime(f.bytes)
		}
		if err != nil {
			return wireErr("reschedule request", err)
		}
		return nil
	})
}

type ListAppointmentsRequest struct {
	DoctorId  *int64
	RoomName  *string
	PatientId *int64
}

func (m *ListAppointmentsRequest) appendWire(b []byte) []byte {
	b = appendOptInt(b, 1, m.DoctorId)
	b = appendOptString(b, 2, m.RoomName)
	b = appendOptInt(b, 3, m.PatientId)
	return b
}

func (m *ListAppointmentsRequest) consumeWire(b []byte) error {
	*m = ListAppointmentsRequest{}
	return eachField(b, func(f field) error {
		switch {
		case f.num == 1 && f.isVarint():
			m.DoctorId = optInt(f)
		case f.num == 2 && f.isBytes():
			m.RoomName = optString(f)
		case f.num == 3 && f.isVarint():
			m.PatientId = optInt(f)
		}
		return nil
	})
}

type People struct {
	People []*Person
}

func (m *People) appendWire(b []byte) []byte {
	for _, p := range m.People {
		b = appendMessage(b, 1, p)
	}
	return b
}

func (m *People) consumeWire(b []byte) error {
	*m = People{}
	return eachField(b, func(f field) error {
		if f.num != 1 || !f.isBytes() {
			return nil
		}
		p := &Person{}
		if err := p.consumeWire(f.bytes); err != nil {
			return err
		}
		m.People = append(m.People, p)
		return nil
	})
}

type Rooms struct {
	Rooms []*Room
}

func (m *Rooms) appendWire(b []byte) []byte {
	for _, r := range m.Rooms {
		b = appendMessage(b, 1, r)
	}
	return b
}

func (m *Rooms) consumeWire(b []byte) error {
	*m = Rooms{}
	return eachField(b, func(f field) error {
		if f.num != 1 || !f.isBytes() {
			return nil
		}
		r := &Room{}
		if err := r.consumeWire(f.bytes); err != nil {
			return err
		}
		m.Rooms = append(m.Rooms, r)
		return nil
	})
}

type Appointments struct {
	Appointments []*Appointment
}

func (m *Appointments) appendWire(b []byte) []byte {
	for _, a := range m.Appointments {
		b = appendMessage(b, 1, a)
	}
	return b
}

func (m *Appointments) consumeWire(b []byte) error {
	*m = Appointments{}
	return eachField(b, func(f field) error {
		if f.num != 1 || !f.isBytes() {
			return nil
		}
		a := &Appointment{}
		if err := a.consumeWire(f.bytes); err != nil {
			return err
		}
		m.Appointments = append(m.Appointments, a)
		return nil
	})
}
