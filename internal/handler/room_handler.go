package handler

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"hospital-scheduler/internal/model"
	"hospital-scheduler/internal/rpc"
)

func (h *Handler) CreateRoom(ctx context.Context, req *rpc.Room) (*rpc.Room, error) {
	r := model.Room{Name: req.Name}
	if err := h.store.CreateRoom(ctx, r); err != nil {
		return nil, h.toStatus(ctx, "create room", err)
	}
	return &rpc.Room{Name: r.Name}, nil
}

func (h *Handler) GetRoom(ctx context.Context, req *rpc.Room) (*rpc.Room, error) {
	if req.Name == "" {
		return nil, status.Error(codes.InvalidArgument, "room name required")
	}
	r, err := h.store.Room(ctx, req.Name)
	if err != nil {
		return nil, h.toStatus(ctx, "get room", err)
	}
	return &rpc.Room{Name: r.Name}, nil
}

func (h *Handler) ListRooms(ctx context.Context, _ *rpc.Empty) (*rpc.Rooms, error) {
	rs, err := h.store.Rooms(ctx)
	if err != nil {
		return nil, h.toStatus(ctx, "list rooms", err)
	}
	out := &rpc.Rooms{Rooms: make([]*rpc.Room, len(rs))}
	for i, r := range rs {
		out.Rooms[i] = &rpc.Room{Name: r.Name}
	}
	return out, nil
}

func (h *Handler) DeleteRoom(ctx context.Context, req *rpc.Room) (*rpc.Empty, error) {
	if req.Name == "" {
		return nil, status.Error(codes.InvalidArgument, "room name required")
	}
	if err := h.store.DeleteRoom(ctx, req.Name); err != nil {
		return nil, h.toStatus(ctx, "delete room", err)
	}
	return &rpc.Empty{}, nil
}

func (h *Handler) DeleteAllRooms(ctx context.Context, _ *rpc.Empty) (*rpc.Empty, error) {
	if err := h.store.DeleteAllRooms(ctx); err != nil {
		return nil, h.toStatus(ctx, "delete rooms", err)
	}
	return &rpc.Empty{}, nil
}
