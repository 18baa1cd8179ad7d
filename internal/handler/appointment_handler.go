package handler

import (
	"context"
	"errors"

	"hospital-scheduler/internal/booking"
	"hospital-scheduler/internal/model"
	"hospital-scheduler/internal/rpc"
	"hospital-scheduler/internal/store"
)

// BookAppointment ignores any id the caller sends; the store assigns one.
func (h *Handler) BookAppointment(ctx context.Context, req *rpc.Appointment) (*rpc.Appointment, error) {
	a, err := h.booking.Book(ctx, appointmentFromProto(req))
	h.countBooking("book", err)
	if err != nil {
		return nil, h.toStatus(ctx, "book appointment", err)
	}
	return appointmentToProto(a), nil
}

func (h *Handler) RescheduleAppointment(ctx context.Context, req *rpc.RescheduleRequest) (*rpc.Appointment, error) {
	if err := requireID(req.Id); err != nil {
		return nil, err
	}
	a, err := h.booking.Reschedule(ctx, req.Id, model.NewInterval(req.StartsAt, req.FinishesAt))
	h.countBooking("reschedule", err)
	if err != nil {
		return nil, h.toStatus(ctx, "reschedule appointment", err)
	}
	return appointmentToProto(a), nil
}

func (h *Handler) GetAppointment(ctx context.Context, req *rpc.IDRequest) (*rpc.Appointment, error) {
	if err := requireID(req.Id); err != nil {
		return nil, err
	}
	a, err := h.store.FindAppointmentByID(ctx, req.Id)
	if err != nil {
		return nil, h.toStatus(ctx, "get appointment", err)
	}
	return appointmentToProto(a), nil
}

func (h *Handler) ListAppointments(ctx context.Context, req *rpc.ListAppointmentsRequest) (*rpc.Appointments, error) {
	as, err := h.store.ListAppointments(ctx, store.AppointmentFilter{
		DoctorID:  req.DoctorId,
		RoomName:  req.RoomName,
		PatientID: req.PatientId,
	})
	if err != nil {
		return nil, h.toStatus(ctx, "list appointments", err)
	}
	out := &rpc.Appointments{Appointments: make([]*rpc.Appointment, len(as))}
	for i := range as {
		out.Appointments[i] = appointmentToProto(&as[i])
	}
	return out, nil
}

func (h *Handler) DeleteAppointment(ctx context.Context, req *rpc.IDRequest) (*rpc.Empty, error) {
	if err := requireID(req.Id); err != nil {
		return nil, err
	}
	if err := h.store.DeleteAppointment(ctx, req.Id); err != nil {
		return nil, h.toStatus(ctx, "delete appointment", err)
	}
	return &rpc.Empty{}, nil
}

func (h *Handler) DeleteAllAppointments(ctx context.Context, _ *rpc.Empty) (*rpc.Empty, error) {
	if err := h.store.DeleteAllAppointments(ctx); err != nil {
		return nil, h.toStatus(ctx, "delete appointments", err)
	}
	return &rpc.Empty{}, nil
}

func (h *Handler) countBooking(op string, err error) {
	if h.metrics == nil {
		return
	}
	h.metrics.BookingsTotal.WithLabelValues(op, outcome(err)).Inc()
}

func outcome(err error) string {
	var ce *booking.ConflictError
	switch {
	case err == nil:
		return "ok"
	case errors.As(err, &ce):
		return ce.Kind.String()
	case errors.Is(err, model.ErrNotFound):
		return "not_found"
	}
	return "error"
}
