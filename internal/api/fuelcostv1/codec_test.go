package fuelcostv1

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/testing/protocmp"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/timestamppb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func TestCodec_VehicleBytes(t *testing.T) {
	b, err := NewCodec().Marshal(&Vehicle{
		Name:        "v",
		CreateTime:  &timestamppb.Timestamp{Seconds: 10, Nanos: 5},
		DisplayName: "Volvo",
	})
	require.NoError(t, err)

	want := []byte{
		0x0a, 0x01, 'v',
		0x1a, 0x04, 0x08, 0x0a, 0x10, 0x05,
		0x2a, 0x05, 'V', 'o', 'l', 'v', 'o',
	}
	assert.Equal(t, want, b)
}

// A message whose only field is string 1 has the layout of
// google.protobuf.StringValue, and one with int32 1 that of Int32Value.
func TestCodec_MatchesProtobufRuntime(t *testing.T) {
	c := NewCodec()

	ours, err := c.Marshal(&GetAccountRequest{Name: "accounts/1"})
	require.NoError(t, err)
	theirs, err := proto.Marshal(wrapperspb.String("accounts/1"))
	require.NoError(t, err)
	assert.Equal(t, theirs, ours)

	ours, err = c.Marshal(&ListAccountsRequest{PageSize: -5})
	require.NoError(t, err)
	theirs, err = proto.Marshal(wrapperspb.Int32(-5))
	require.NoError(t, err)
	assert.Equal(t, theirs, ours)

	var req ListAccountsRequest
	require.NoError(t, c.Unmarshal(theirs, &req))
	assert.Equal(t, int32(-5), req.PageSize)
}

func TestCodec_RoundTrip(t *testing.T) {
	c := NewCodec()
	ts := timestamppb.Now()

	msgs := []struct {
		in, out any
	}{
		{&CreateVehicleRequest{Parent: "accounts/1", Vehicle: &Vehicle{DisplayName: "Saab"}}, &CreateVehicleRequest{}},
		{&UpdateAccountRequest{Account: &Account{Name: "accounts/1", Etag: `W/"3"`}}, &UpdateAccountRequest{}},
		{&DeleteVehicleRequest{Name: "accounts/1/vehicles/2", Etag: `W/"1"`}, &DeleteVehicleRequest{}},
		{&ListVehiclesRequest{Parent: "accounts/1", PageSize: 1000, PageToken: "abc"}, &ListVehiclesRequest{}},
		{&ListAccountsResponse{
			Accounts:      []*Account{{Name: "accounts/1", CreateTime: ts, UpdateTime: ts}, {Name: "accounts/2"}},
			NextPageToken: "next",
		}, &ListAccountsResponse{}},
		{&ListVehiclesResponse{Vehicles: []*Vehicle{{Name: "accounts/1/vehicles/1", Etag: `W/"1"`}}}, &ListVehiclesResponse{}},
	}
	for _, m := range msgs {
		b, err := c.Marshal(m.in)
		require.NoError(t, err)
		require.NoError(t, c.Unmarshal(b, m.out))
		if diff := cmp.Diff(m.in, m.out, protocmp.Transform()); diff != "" {
			t.Errorf("%T round trip (-want +got):\n%s", m.in, diff)
		}
	}
}

func TestCodec_SkipsUnknownFields(t *testing.T) {
	b := protowire.AppendTag(nil, 9, protowire.VarintType)
	b = protowire.AppendVarint(b, 42)
	b = protowire.AppendTag(b, 1, protowire.BytesType)
	b = protowire.AppendString(b, "accounts/7")

	var req GetAccountRequest
	require.NoError(t, NewCodec().Unmarshal(b, &req))
	assert.Equal(t, "accounts/7", req.Name)
}

func TestCodec_RejectsMalformed(t *testing.T) {
	c := NewCodec()

	wrongType := protowire.AppendTag(nil, 1, protowire.VarintType)
	wrongType = protowire.AppendVarint(wrongType, 1)
	assert.Error(t, c.Unmarshal(wrongType, &GetAccountRequest{}))

	full, err := c.Marshal(&DeleteAccountRequest{Name: "accounts/1", Etag: `W/"1"`})
	require.NoError(t, err)
	assert.Error(t, c.Unmarshal(full[:len(full)-1], &DeleteAccountRequest{}))

	_, err = c.Marshal("not a message")
	assert.Error(t, err)
	assert.Error(t, c.Unmarshal([]byte{}, new(string)))
}

func TestCodec_Empty(t *testing.T) {
	c := NewCodec()
	b, err := c.Marshal(&emptypb.Empty{})
	require.NoError(t, err)
	assert.Empty(t, b)
	require.NoError(t, c.Unmarshal(nil, &emptypb.Empty{}))
	assert.Equal(t, CodecName, c.Name())

	b, err = c.Marshal(&CreateAccountRequest{})
	require.NoError(t, err)
	assert.Empty(t, b)
}

func TestGetters_NilSafe(t *testing.T) {
	var a *Account
	var v *Vehicle
	assert.Empty(t, a.GetName())
	assert.Empty(t, a.GetEtag())
	assert.Empty(t, v.GetName())
	assert.Empty(t, v.GetDisplayName())
}
