// Package fuelcostv1 is the Go side of api/fuelcost/v1/fuelcost.proto:
// message types, service descriptors, client stubs and the protobuf codec
// both sides must use.
package fuelcostv1

import "google.golang.org/protobuf/types/known/timestamppb"

type Account struct {
	Name       string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Etag       string                 `protobuf:"bytes,2,opt,name=etag,proto3" json:"etag,omitempty"`
	CreateTime *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=create_time,proto3" json:"create_time,omitempty"`
	UpdateTime *timestamppb.Timestamp `protobuf:"bytes,4,opt,name=update_time,proto3" json:"update_time,omitempty"`
}

func (x *Account) GetName() string {
	if x == nil {
		return ""
	}
	return x.Name
}

func (x *Account) GetEtag() string {
	if x == nil {
		return ""
	}
	return x.Etag
}

type Vehicle struct {
	Name        string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Etag        string                 `protobuf:"bytes,2,opt,name=etag,proto3" json:"etag,omitempty"`
	CreateTime  *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=create_time,proto3" json:"create_time,omitempty"`
	UpdateTime  *timestamppb.Timestamp `protobuf:"bytes,4,opt,name=update_time,proto3" json:"update_time,omitempty"`
	DisplayName string                 `protobuf:"bytes,5,opt,name=display_name,proto3" json:"display_name,omitempty"`
}

func (x *Vehicle) GetName() string {
	if x == nil {
		return ""
	}
	return x.Name
}

func (x *Vehicle) GetEtag() string {
	if x == nil {
		return ""
	}
	return x.Etag
}

func (x *Vehicle) GetDisplayName() string {
	if x == nil {
		return ""
	}
	return x.DisplayName
}

type CreateAccountRequest struct {
	Account *Account `protobuf:"bytes,1,opt,name=account,proto3" json:"account,omitempty"`
}

type GetAccountRequest struct {
	Name string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
}

// UpdateAccountRequest carries the account's name and, for a conditional
// update, its etag.
type UpdateAccountRequest struct {
	Account *Account `protobuf:"bytes,1,opt,name=account,proto3" json:"account,omitempty"`
}

type DeleteAccountRequest struct {
	Name string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Etag string `protobuf:"bytes,2,opt,name=etag,proto3" json:"etag,omitempty"`
}

type ListAccountsRequest struct {
	PageSize  int32  `protobuf:"varint,1,opt,name=page_size,proto3" json:"page_size,omitempty"`
	PageToken string `protobuf:"bytes,2,opt,name=page_token,proto3" json:"page_token,omitempty"`
}

type ListAccountsResponse struct {
	Accounts      []*Account `protobuf:"bytes,1,rep,name=accounts,proto3" json:"accounts,omitempty"`
	NextPageToken string     `protobuf:"bytes,2,opt,name=next_page_token,proto3" json:"next_page_token,omitempty"`
}

type CreateVehicleRequest struct {
	Parent  string   `protobuf:"bytes,1,opt,name=parent,proto3" json:"parent,omitempty"`
	Vehicle *Vehicle `protobuf:"bytes,2,opt,name=vehicle,proto3" json:"vehicle,omitempty"`
}

type GetVehicleRequest struct {
	Name string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
}

type UpdateVehicleRequest struct {
	Vehicle *Vehicle `protobuf:"bytes,1,opt,name=vehicle,proto3" json:"vehicle,omitempty"`
}

type DeleteVehicleRequest struct {
	Name string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Etag string `protobuf:"bytes,2,opt,name=etag,proto3" json:"etag,omitempty"`
}

type ListVehiclesRequest struct {
	Parent    string `protobuf:"bytes,1,opt,name=parent,proto3" json:"parent,omitempty"`
	PageSize  int32  `protobuf:"varint,2,opt,name=page_size,proto3" json:"page_size,omitempty"`
	PageToken string `protobuf:"bytes,3,opt,name=page_token,proto3" json:"page_token,omitempty"`
}

type ListVehiclesResponse struct {
	Vehicles      []*Vehicle `protobuf:"bytes,1,rep,name=vehicles,proto3" json:"vehicles,omitempty"`
	NextPageToken string     `protobuf:"bytes,2,opt,name=next_page_token,proto3" json:"next_page_token,omitempty"`
}
