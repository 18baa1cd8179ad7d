package handler

import (
	"context"
	"math"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"hospital-scheduler/internal/model"
	"hospital-scheduler/internal/rpc"
)

func validatePerson(in *rpc.Person) error {
	// the age column is a 32-bit integer
	if in.Age < 0 || in.Age > math.MaxInt32 {
		return status.Error(codes.InvalidArgument, "age out of range")
	}
	return nil
}

func (h *Handler) CreateDoctor(ctx context.Context, req *rpc.Person) (*rpc.Person, error) {
	if err := validatePerson(req); err != nil {
		return nil, err
	}
	d := &model.Doctor{FirstName: req.FirstName, LastName: req.LastName, Age: int(req.Age), Email: req.Email}
	if err := h.store.CreateDoctor(ctx, d); err != nil {
		return nil, h.toStatus(ctx, "create doctor", err)
	}
	return doctorToProto(d), nil
}

func (h *Handler) GetDoctor(ctx context.Context, req *rpc.IDRequest) (*rpc.Person, error) {
	if err := requireID(req.Id); err != nil {
		return nil, err
	}
	d, err := h.store.Doctor(ctx, req.Id)
	if err != nil {
		return nil, h.toStatus(ctx, "get doctor", err)
	}
	return doctorToProto(d), nil
}

func (h *Handler) ListDoctors(ctx context.Context, _ *rpc.Empty) (*rpc.People, error) {
	ds, err := h.store.Doctors(ctx)
	if err != nil {
		return nil, h.toStatus(ctx, "list doctors", err)
	}
	out := &rpc.People{People: make([]*rpc.Person, len(ds))}
	for i := range ds {
		out.People[i] = doctorToProto(&ds[i])
	}
	return out, nil
}

func (h *Handler) DeleteDoctor(ctx context.Context, req *rpc.IDRequest) (*rpc.Empty, error) {
	if err := requireID(req.Id); err != nil {
		return nil, err
	}
	if err := h.store.DeleteDoctor(ctx, req.Id); err != nil {
		return nil, h.toStatus(ctx, "delete doctor", err)
	}
	return &rpc.Empty{}, nil
}

func (h *Handler) DeleteAllDoctors(ctx context.Context, _ *rpc.Empty) (*rpc.Empty, error) {
	if err := h.store.DeleteAllDoctors(ctx); err != nil {
		return nil, h.toStatus(ctx, "delete doctors", err)
	}
	return &rpc.Empty{}, nil
}

func (h *Handler) CreatePatient(ctx context.Context, req *rpc.Person) (*rpc.Person, error) {
	if err := validatePerson(req); err != nil {
		return nil, err
	}
	p := &model.Patient{FirstName: req.FirstName, LastName: req.LastName, Age: int(req.Age), Email: req.Email}
	if err := h.store.CreatePatient(ctx, p); err != nil {
		return nil, h.toStatus(ctx, "create patient", err)
	}
	return patientToProto(p), nil
}

func (h *Handler) GetPatient(ctx context.Context, req *rpc.IDRequest) (*rpc.Person, error) {
	if err := requireID(req.Id); err != nil {
		return nil, err
	}
	p, err := h.store.Patient(ctx, req.Id)
	if err != nil {
		return nil, h.toStatus(ctx, "get patient", err)
	}
	return patientToProto(p), nil
}

func (h *Handler) ListPatients(ctx context.Context, _ *rpc.Empty) (*rpc.People, error) {
	ps, err := h.store.Patients(ctx)
	if err != nil {
		return nil, h.toStatus(ctx, "list patients", err)
	}
	out := &rpc.People{People: make([]*rpc.Person, len(ps))}
	for i := range ps {
		out.People[i] = patientToProto(&ps[i])
	}
	return out, nil
}

func (h *Handler) DeletePatient(ctx context.Context, req *rpc.IDRequest) (*rpc.Empty, error) {
	if err := requireID(req.Id); err != nil {
		return nil, err
	}
	if err := h.store.DeletePatient(ctx, req.Id); err != nil {
		return nil, h.toStatus(ctx, "delete patient", err)
	}
	return &rpc.Empty{}, nil
}

func (h *Handler) DeleteAllPatients(ctx context.Context, _ *rpc.Empty) (*rpc.Empty, error) {
	if err := h.store.DeleteAllPatients(ctx); err != nil {
		return nil, h.toStatus(ctx, "delete patients", err)
	}
	return &rpc.Empty{}, nil
}
