package rpc

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
)

const ServiceName = "hospital.v1.HospitalService"

// Codec marshals the Message types in this package. It is registered on
// the server with grpc.ForceServerCodec and on clients with grpc.ForceCodec.
type Codec struct{}

func (Codec) Marshal(v any) ([]byte, error) {
	m, ok := v.(Message)
	if !ok {
		return nil, fmt.Errorf("rpc: cannot marshal %T", v)
	}
	return m.appendWire(nil), nil
}

func (Codec) Unmarshal(data []byte, v any) error {
	m, ok := v.(Message)
	if !ok {
		return fmt.Errorf("rpc: cannot unmarshal into %T", v)
	}
	return m.consumeWire(data)
}

// Name matches the default content-subtype so grpc-web and generated
// clients interoperate.
func (Codec) Name() string { return "proto" }

func FullMethod(name string) string { return "/" + ServiceName + "/" + name }

type HospitalServer interface {
	CreateDoctor(context.Context, *Person) (*Person, error)
	GetDoctor(context.Context, *IDRequest) (*Person, error)
	ListDoctors(context.Context, *Empty) (*People, error)
	DeleteDoctor(context.Context, *IDRequest) (*Empty, error)
	DeleteAllDoctors(context.Context, *Empty) (*Empty, error)

	CreatePatient(context.Context, *Person) (*Person, error)
	GetPatient(context.Context, *IDRequest) (*Person, error)
	ListPatients(context.Context, *Empty) (*People, error)
	DeletePatient(context.Context, *IDRequest) (*Empty, error)
	DeleteAllPatients(context.Context, *Empty) (*Empty, error)

	CreateRoom(context.Context, *Room) (*Room, error)
	GetRoom(context.Context, *Room) (*Room, error)
	ListRooms(context.Context, *Empty) (*Rooms, error)
	DeleteRoom(context.Context, *Room) (*Empty, error)
	DeleteAllRooms(context.Context, *Empty) (*Empty, error)

	BookAppointment(context.Context, *Appointment) (*Appointment, error)
	RescheduleAppointment(context.Context, *RescheduleRequest) (*Appointment, error)
	GetAppointment(context.Context, *IDRequest) (*Appointment, error)
	ListAppointments(context.Context, *ListAppointmentsRequest) (*Appointments, error)
	DeleteAppointment(context.Context, *IDRequest) (*Empty, error)
	DeleteAllAppointments(context.Context, *Empty) (*Empty, error)
}

func RegisterHospitalServer(s grpc.ServiceRegistrar, srv HospitalServer) {
	s.RegisterService(&ServiceDesc, srv)
}

var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*HospitalServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("CreateDoctor", HospitalServer.CreateDoctor),
		unary("GetDoctor", HospitalServer.GetDoctor),
		unary("ListDoctors", HospitalServer.ListDoctors),
		unary("DeleteDoctor", HospitalServer.DeleteDoctor),
		unary("DeleteAllDoctors", HospitalServer.DeleteAllDoctors),

		unary("CreatePatient", HospitalServer.CreatePatient),
		unary("GetPatient", HospitalServer.GetPatient),
		unary("ListPatients", HospitalServer.ListPatients),
		unary("DeletePatient", HospitalServer.DeletePatient),
		unary("DeleteAllPatients", HospitalServer.DeleteAllPatients),

		unary("CreateRoom", HospitalServer.CreateRoom),
		unary("GetRoom", HospitalServer.GetRoom),
		unary("ListRooms", HospitalServer.ListRooms),
		unary("DeleteRoom", HospitalServer.DeleteRoom),
		unary("DeleteAllRooms", HospitalServer.DeleteAllRooms),

		unary("BookAppointment", HospitalServer.BookAppointment),
		unary("RescheduleAppointment", HospitalServer.RescheduleAppointment),
		unary("GetAppointment", HospitalServer.GetAppointment),
		unary("ListAppointments", HospitalServer.ListAppointments),
		unary("DeleteAppointment", HospitalServer.DeleteAppointment),
		unary("DeleteAllAppointments", HospitalServer.DeleteAllAppointments),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "hospital/v1/hospital.proto",
}

// unary builds the method handler protoc would otherwise generate.
func unary[Req any, PReq interface {
	*Req
	Message
}, Resp Message](name string, call func(HospitalServer, context.Context, PReq) (Resp, error)) grpc.MethodDesc {
	full := FullMethod(name)
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := PReq(new(Req))
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(HospitalServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: full}
			return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
				return call(srv.(HospitalServer), ctx, req.(PReq))
			})
		},
	}
}
