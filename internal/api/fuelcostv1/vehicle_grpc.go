package fuelcostv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

const (
	VehicleServiceName = "fuelcost.v1.VehicleService"

	VehicleService_CreateVehicle_FullMethodName = "/fuelcost.v1.VehicleService/CreateVehicle"
	VehicleService_GetVehicle_FullMethodName    = "/fuelcost.v1.VehicleService/GetVehicle"
	VehicleService_UpdateVehicle_FullMethodName = "/fuelcost.v1.VehicleService/UpdateVehicle"
	VehicleService_DeleteVehicle_FullMethodName = "/fuelcost.v1.VehicleService/DeleteVehicle"
	VehicleService_ListVehicles_FullMethodName  = "/fuelcost.v1.VehicleService/ListVehicles"
)

type VehicleServiceServer interface {
	CreateVehicle(context.Context, *CreateVehicleRequest) (*Vehicle, error)
	GetVehicle(context.Context, *GetVehicleRequest) (*Vehicle, error)
	UpdateVehicle(context.Context, *UpdateVehicleRequest) (*Vehicle, error)
	DeleteVehicle(context.Context, *DeleteVehicleRequest) (*emptypb.Empty, error)
	ListVehicles(context.Context, *ListVehiclesRequest) (*ListVehiclesResponse, error)
}

// UnimplementedVehicleServiceServer can be embedded to have forward
// compatible implementations.
type UnimplementedVehicleServiceServer struct{}

func (UnimplementedVehicleServiceServer) CreateVehicle(context.Context, *CreateVehicleRequest) (*Vehicle, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateVehicle not implemented")
}
func (UnimplementedVehicleServiceServer) GetVehicle(context.Context, *GetVehicleRequest) (*Vehicle, error) {
	return nil, status.Error(codes.Unimplemented, "method GetVehicle not implemented")
}
func (UnimplementedVehicleServiceServer) UpdateVehicle(context.Context, *UpdateVehicleRequest) (*Vehicle, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateVehicle not implemented")
}
func (UnimplementedVehicleServiceServer) DeleteVehicle(context.Context, *DeleteVehicleRequest) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteVehicle not implemented")
}
func (UnimplementedVehicleServiceServer) ListVehicles(context.Context, *ListVehiclesRequest) (*ListVehiclesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListVehicles not implemented")
}

var VehicleService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: VehicleServiceName,
	HandlerType: (*VehicleServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateVehicle",
			Handler:    unaryHandler(VehicleService_CreateVehicle_FullMethodName, VehicleServiceServer.CreateVehicle),
		},
		{
			MethodName: "GetVehicle",
			Handler:    unaryHandler(VehicleService_GetVehicle_FullMethodName, VehicleServiceServer.GetVehicle),
		},
		{
			MethodName: "UpdateVehicle",
			Handler:    unaryHandler(VehicleService_UpdateVehicle_FullMethodName, VehicleServiceServer.UpdateVehicle),
		},
		{
			MethodName: "DeleteVehicle",
			Handler:    unaryHandler(VehicleService_DeleteVehicle_FullMethodName, VehicleServiceServer.DeleteVehicle),
		},
		{
			MethodName: "ListVehicles",
			Handler:    unaryHandler(VehicleService_ListVehicles_FullMethodName, VehicleServiceServer.ListVehicles),
		},
	},
	Streams: []grpc.StreamDesc{},
}

func RegisterVehicleServiceServer(s grpc.ServiceRegistrar, srv VehicleServiceServer) {
	s.RegisterService(&VehicleService_ServiceDesc, srv)
}

type VehicleServiceClient interface {
	CreateVehicle(ctx context.Context, in *CreateVehicleRequest, opts ...grpc.CallOption) (*Vehicle, error)
	GetVehicle(ctx context.Context, in *GetVehicleRequest, opts ...grpc.CallOption) (*Vehicle, error)
	UpdateVehicle(ctx context.Context, in *UpdateVehicleRequest, opts ...grpc.CallOption) (*Vehicle, error)
	DeleteVehicle(ctx context.Context, in *DeleteVehicleRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
	ListVehicles(ctx context.Context, in *ListVehiclesRequest, opts ...grpc.CallOption) (*ListVehiclesResponse, error)
}

type vehicleServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewVehicleServiceClient(cc grpc.ClientConnInterface) VehicleServiceClient {
	return &vehicleServiceClient{cc}
}

func (c *vehicleServiceClient) CreateVehicle(ctx context.Context, in *CreateVehicleRequest, opts ...grpc.CallOption) (*Vehicle, error) {
	return invoke[Vehicle](ctx, c.cc, VehicleService_CreateVehicle_FullMethodName, in, opts)
}

func (c *vehicleServiceClient) GetVehicle(ctx context.Context, in *GetVehicleRequest, opts ...grpc.CallOption) (*Vehicle, error) {
	return invoke[Vehicle](ctx, c.cc, VehicleService_GetVehicle_FullMethodName, in, opts)
}

func (c *vehicleServiceClient) UpdateVehicle(ctx context.Context, in *UpdateVehicleRequest, opts ...grpc.CallOption) (*Vehicle, error) {
	return invoke[Vehicle](ctx, c.cc, VehicleService_UpdateVehicle_FullMethodName, in, opts)
}

func (c *vehicleServiceClient) DeleteVehicle(ctx context.Context, in *DeleteVehicleRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, VehicleService_DeleteVehicle_FullMethodName, in, opts)
}

func (c *vehicleServiceClient) ListVehicles(ctx context.Context, in *ListVehiclesRequest, opts ...grpc.CallOption) (*ListVehiclesResponse, error) {
	return invoke[ListVehiclesResponse](ctx, c.cc, VehicleService_ListVehicles_FullMethodName, in, opts)
}
