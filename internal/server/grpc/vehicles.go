package grpc

import (
	"context"

	"github.com/dmitrijs2005/fuelcost/internal/api/fuelcostv1"
	"github.com/dmitrijs2005/fuelcost/internal/common"
	"google.golang.org/protobuf/types/known/emptypb"
)

func (s *GRPCServer) CreateVehicle(ctx context.Context, req *fuelcostv1.CreateVehicleRequest) (*fuelcostv1.Vehicle, error) {
	if req.Vehicle == nil {
		return nil, s.toStatus(ctx, common.RequiredArgument("vehicle"))
	}

	vehicle, err := s.vehicles.Create(ctx, req.Parent, req.Vehicle.GetDisplayName())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	s.logger.Info(ctx, "Vehicle created", "name", vehicle.Name().String())
	return vehicleToWire(vehicle), nil
}

func (s *GRPCServer) GetVehicle(ctx context.Context, req *fuelcostv1.GetVehicleRequest) (*fuelcostv1.Vehicle, error) {
	vehicle, err := s.vehicles.Get(ctx, req.Name)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return vehicleToWire(vehicle), nil
}

// UpdateVehicle replaces every mutable attribute; an empty display_name
// clears it.
func (s *GRPCServer) UpdateVehicle(ctx context.Context, req *fuelcostv1.UpdateVehicleRequest) (*fuelcostv1.Vehicle, error) {
	if req.Vehicle == nil {
		return nil, s.toStatus(ctx, common.RequiredArgument("vehicle"))
	}

	v := req.Vehicle
	vehicle, err := s.vehicles.Update(ctx, v.GetName(), v.GetEtag(), v.GetDisplayName())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return vehicleToWire(vehicle), nil
}

func (s *GRPCServer) DeleteVehicle(ctx context.Context, req *fuelcostv1.DeleteVehicleRequest) (*emptypb.Empty, error) {
	if err := s.vehicles.Delete(ctx, req.Name, req.Etag); err != nil {
		return nil, s.toStatus(ctx, err)
	}

	s.logger.Info(ctx, "Vehicle deleted", "name", req.Name)
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) ListVehicles(ctx context.Context, req *fuelcostv1.ListVehiclesRequest) (*fuelcostv1.ListVehiclesResponse, error) {
	page, err := s.vehicles.List(ctx, req.Parent, req.PageSize, req.PageToken)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	resp := &fuelcostv1.ListVehiclesResponse{
		Vehicles:      make([]*fuelcostv1.Vehicle, 0, len(page.Vehicles)),
		NextPageToken: page.NextPageToken,
	}
	for _, v := range page.Vehicles {
		resp.Vehicles = append(resp.Vehicles, vehicleToWire(v))
	}
	return resp, nil
}
