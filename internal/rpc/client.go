package rpc

import (
	"context"

	"google.golang.org/grpc"
)

type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func invoke[Resp any, PResp interface {
	*Resp
	Message
}](ctx context.Context, c *Client, method string, in Message, opts []grpc.CallOption) (PResp, error) {
	out := PResp(new(Resp))
	opts = append(opts, grpc.ForceCodec(Codec{}))
	if err := c.cc.Invoke(ctx, FullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateDoctor(ctx context.Context, in *Person, opts ...grpc.CallOption) (*Person, error) {
	return invoke[Person](ctx, c, "CreateDoctor", in, opts)
}

func (c *Client) GetDoctor(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*Person, error) {
	return invoke[Person](ctx, c, "GetDoctor", in, opts)
}

func (c *Client) ListDoctors(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*People, error) {
	return invoke[People](ctx, c, "ListDoctors", in, opts)
}

func (c *Client) DeleteDoctor(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c, "DeleteDoctor", in, opts)
}

func (c *Client) DeleteAllDoctors(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c, "DeleteAllDoctors", in, opts)
}

func (c *Client) CreatePatient(ctx context.Context, in *Person, opts ...grpc.CallOption) (*Person, error) {
	return invoke[Person](ctx, c, "CreatePatient", in, opts)
}

func (c *Client) GetPatient(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*Person, error) {
	return invoke[Person](ctx, c, "GetPatient", in, opts)
}

func (c *Client) ListPatients(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*People, error) {
	return invoke[People](ctx, c, "ListPatients", in, opts)
}

func (c *Client) DeletePatient(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c, "DeletePatient", in, opts)
}

func (c *Client) DeleteAllPatients(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c, "DeleteAllPatients", in, opts)
}

func (c *Client) CreateRoom(ctx context.Context, in *Room, opts ...grpc.CallOption) (*Room, error) {
	return invoke[Room](ctx, c, "CreateRoom", in, opts)
}

func (c *Client) GetRoom(ctx context.Context, in *Room, opts ...grpc.CallOption) (*Room, error) {
	return invoke[Room](ctx, c, "GetRoom", in, opts)
}

func (c *Client) ListRooms(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Rooms, error) {
	return invoke[Rooms](ctx, c, "ListRooms", in, opts)
}

func (c *Client) DeleteRoom(ctx context.Context, in *Room, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c, "DeleteRoom", in, opts)
}

func (c *Client) DeleteAllRooms(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c, "DeleteAllRooms", in, opts)
}

func (c *Client) BookAppointment(ctx context.Context, in *Appointment, opts ...grpc.CallOption) (*Appointment, error) {
	return invoke[Appointment](ctx, c, "BookAppointment", in, opts)
}

func (c *Client) RescheduleAppointment(ctx context.Context, in *RescheduleRequest, opts ...grpc.CallOption) (*Appointment, error) {
	return invoke[Appointment](ctx, c, "RescheduleAppointment", in, opts)
}

func (c *Client) GetAppointment(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*Appointment, error) {
	return invoke[Appointment](ctx, c, "GetAppointment", in, opts)
}

func (c *Client) ListAppointments(ctx context.Context, in *ListAppointmentsRequest, opts ...grpc.CallOption) (*Appointments, error) {
	return invoke[Appointments](ctx, c, "ListAppointments", in, opts)
}

func (c *Client) DeleteAppointment(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c, "DeleteAppointment", in, opts)
}

func (c *Client) DeleteAllAppointments(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c, "DeleteAllAppointments", in, opts)
}
