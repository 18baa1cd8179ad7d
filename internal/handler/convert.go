package handler

import (
	"hospital-scheduler/internal/model"
	"hospital-scheduler/internal/rpc"
)

func doctorToProto(d *model.Doctor) *rpc.Person {
	return &rpc.Person{Id: d.ID, FirstName: d.FirstName, LastName: d.LastName, Age: int64(d.Age), Email: d.Email}
}

func patientToProto(p *model.Patient) *rpc.Person {
	return &rpc.Person{Id: p.ID, FirstName: p.FirstName, LastName: p.LastName, Age: int64(p.Age), Email: p.Email}
}

func appointmentToProto(a *model.Appointment) *rpc.Appointment {
	return &rpc.Appointment{
		Id:         a.ID,
		PatientId:  a.PatientID,
		DoctorId:   a.DoctorID,
		RoomName:   a.RoomName,
		StartsAt:   a.Interval.Start,
		FinishesAt: a.Interval.End,
	}
}

func appointmentFromProto(in *rpc.Appointment) model.Appointment {
	return model.Appointment{
		ID:        in.Id,
		PatientID: in.PatientId,
		DoctorID:  in.DoctorId,
		RoomName:  in.RoomName,
		Interval:  model.NewInterval(in.StartsAt, in.FinishesAt),
	}
}
