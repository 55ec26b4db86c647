package grpc

import (
	"github.com/dmitrijs2005/fuelcost/internal/api/fuelcostv1"
	"github.com/dmitrijs2005/fuelcost/internal/etag"
	"github.com/dmitrijs2005/fuelcost/internal/server/models"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func accountToWire(a *models.Account) *fuelcostv1.Account {
	return &fuelcostv1.Account{
		Name:       a.Name().String(),
		Etag:       etag.Format(a.Version),
		CreateTime: timestamppb.New(a.CreateTime),
		UpdateTime: timestamppb.New(a.UpdateTime),
	}
}

func vehicleToWire(v *models.Vehicle) *fuelcostv1.Vehicle {
	out := &fuelcostv1.Vehicle{
		Name:       v.Name().String(),
		Etag:       etag.Format(v.Version),
		CreateTime: timestamppb.New(v.CreateTime),
		UpdateTime: timestamppb.New(v.UpdateTime),
	}
	if v.DisplayName != nil {
		out.DisplayName = *v.DisplayName
	}
	return out
}
