package handler

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"hospital-scheduler/internal/booking"
	"hospital-scheduler/internal/metrics"
	"hospital-scheduler/internal/middleware"
	"hospital-scheduler/internal/model"
	"hospital-scheduler/internal/rpc"
	"hospital-scheduler/internal/store"
)

// Store is the CRUD surface shared by store.Store and store.Memory.
type Store interface {
	booking.Repository

	CreateDoctor(ctx context.Context, d *model.Doctor) error
	Doctor(ctx context.Context, id int64) (*model.Doctor, error)
	Doctors(ctx context.Context) ([]model.Doctor, error)
	DeleteDoctor(ctx context.Context, id int64) error
	DeleteAllDoctors(ctx context.Context) error

	CreatePatient(ctx context.Context, p *model.Patient) error
	Patient(ctx context.Context, id int64) (*model.Patient, error)
	Patients(ctx context.Context) ([]model.Patient, error)
	DeletePatient(ctx context.Context, id int64) error
	DeleteAllPatients(ctx context.Context) error

	CreateRoom(ctx context.Context, r model.Room) error
	Room(ctx context.Context, name string) (*model.Room, error)
	Rooms(ctx context.Context) ([]model.Room, error)
	DeleteRoom(ctx context.Context, name string) error
	DeleteAllRooms(ctx context.Context) error

	ListAppointments(ctx context.Context, f store.AppointmentFilter) ([]model.Appointment, error)
	DeleteAppointment(ctx context.Context, id int64) error
	DeleteAllAppointments(ctx context.Context) error
}

var (
	_ Store = (*store.Store)(nil)
	_ Store = (*store.Memory)(nil)
)

type Handler struct {
	store   Store
	booking *booking.Service
	log     *zap.Logger
	metrics *metrics.Collector
}

var _ rpc.HospitalServer = (*Handler)(nil)

func New(st Store, log *zap.Logger, m *metrics.Collector) *Handler {
	return &Handler{
		store:   st,
		booking: booking.NewService(st, log.Named("booking")),
		log:     log,
		metrics: m,
	}
}

// toStatus maps domain errors onto gRPC codes. Anything unrecognised is
// logged and hidden behind Internal.
func (h *Handler) toStatus(ctx context.Context, op string, err error) error {
	var ce *booking.ConflictError
	switch {
	case errors.As(err, &ce):
		return status.Error(codes.AlreadyExists, ce.Error())
	case errors.Is(err, model.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, model.ErrAlreadyExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, model.ErrEmptyRoomName):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, model.ErrUnknownReference):
		return status.Error(codes.FailedPrecondition, model.ErrUnknownReference.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "request canceled")
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "deadline exceeded")
	}
	h.log.Error("request failed",
		zap.String("op", op),
		zap.String("request_id", middleware.RequestID(ctx)),
		zap.Error(err))
	return status.Error(codes.Internal, "internal error")
}

func requireID(id int64) error {
	if id <= 0 {
		return status.Error(codes.InvalidArgument, "id required")
	}
	return nil
}
