package fuelcostv1

import (
	"context"

	"google.golang.org/grpc"
)

// ListAllAccounts follows page tokens until the last page.
func ListAllAccounts(ctx context.Context, c AccountServiceClient, pageSize int32, opts ...grpc.CallOption) ([]*Account, error) {
	var all []*Account
	req := &ListAccountsRequest{PageSize: pageSize}
	for {
		resp, err := c.ListAccounts(ctx, req, opts...)
		if err != nil {
			return nil, err
		}
		all = append(all, resp.Accounts...)
		if resp.NextPageToken == "" {
			return all, nil
		}
		req.PageToken = resp.NextPageToken
	}
}

// ListAllVehicles follows page tokens until the last page of parent's vehicles.
func ListAllVehicles(ctx context.Context, c VehicleServiceClient, parent string, pageSize int32, opts ...grpc.CallOption) ([]*Vehicle, error) {
	var all []*Vehicle
	req := &ListVehiclesRequest{Parent: parent, PageSize: pageSize}
	for {
		resp, err := c.ListVehicles(ctx, req, opts...)
		if err != nil {
			return nil, err
		}
		all = append(all, resp.Vehicles...)
		if resp.NextPageToken == "" {
			return all, nil
		}
		req.PageToken = resp.NextPageToken
	}
}
