package fuelcostv1

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"
)

var errWireType = errors.New("unexpected wire type")

// wireMessage is implemented by every message in api/fuelcost/v1/fuelcost.proto.
type wireMessage interface {
	appendWire(b []byte) ([]byte, error)
	// consumeField decodes one field value from b and returns the bytes it
	// used, or 0 when num is not a field of the message.
	consumeField(num protowire.Number, typ protowire.Type, b []byte) (int, error)
}

func marshalWire(m wireMessage) ([]byte, error) {
	return m.appendWire(nil)
}

func unmarshalWire(b []byte, m wireMessage) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]

		n, err := m.consumeField(num, typ, b)
		if err != nil {
			return fmt.Errorf("field %d: %w", num, err)
		}
		if n == 0 {
			n = protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return protowire.ParseError(n)
			}
		}
		b = b[n:]
	}
	return nil
}

func appendString(b []byte, num protowire.Number, s string) []byte {
	if s == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, s)
}

func appendInt32(b []byte, num protowire.Number, v int32) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(int64(v)))
}

func appendTimestamp(b []byte, num protowire.Number, ts *timestamppb.Timestamp) ([]byte, error) {
	if ts == nil {
		return b, nil
	}
	v, err := proto.Marshal(ts)
	if err != nil {
		return nil, err
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v), nil
}

func appendMessage(b []byte, num protowire.Number, m wireMessage) ([]byte, error) {
	v, err := m.appendWire(nil)
	if err != nil {
		return nil, err
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v), nil
}

func consumeBytes(typ protowire.Type, b []byte) ([]byte, int, error) {
	if typ != protowire.BytesType {
		return nil, 0, errWireType
	}
	v, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return nil, 0, protowire.ParseError(n)
	}
	return v, n, nil
}

func consumeString(typ protowire.Type, b []byte, dst *string) (int, error) {
	v, n, err := consumeBytes(typ, b)
	if err != nil {
		return 0, err
	}
	*dst = string(v)
	return n, nil
}

func consumeInt32(typ protowire.Type, b []byte, dst *int32) (int, error) {
	if typ != protowire.VarintType {
		return 0, errWireType
	}
	v, n := protowire.ConsumeVarint(b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	*dst = int32(v)
	return n, nil
}

func consumeTimestamp(typ protowire.Type, b []byte, dst **timestamppb.Timestamp) (int, error) {
	v, n, err := consumeBytes(typ, b)
	if err != nil {
		return 0, err
	}
	if *dst == nil {
		*dst = new(timestamppb.Timestamp)
	}
	if err := (proto.UnmarshalOptions{Merge: true}).Unmarshal(v, *dst); err != nil {
		return 0, err
	}
	return n, nil
}

func consumeMessage(typ protowire.Type, b []byte, m wireMessage) (int, error) {
	v, n, err := consumeBytes(typ, b)
	if err != nil {
		return 0, err
	}
	if err := unmarshalWire(v, m); err != nil {
		return 0, err
	}
	return n, nil
}

func (x *Account) appendWire(b []byte) (_ []byte, err error) {
	b = appendString(b, 1, x.Name)
	b = appendString(b, 2, x.Etag)
	if b, err = appendTimestamp(b, 3, x.CreateTime); err != nil {
		return nil, err
	}
	return appendTimestamp(b, 4, x.UpdateTime)
}

func (x *Account) consumeField(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	switch num {
	case 1:
		return consumeString(typ, b, &x.Name)
	case 2:
		return consumeString(typ, b, &x.Etag)
	case 3:
		return consumeTimestamp(typ, b, &x.CreateTime)
	case 4:
		return consumeTimestamp(typ, b, &x.UpdateTime)
	}
	return 0, nil
}

func (x *Vehicle) appendWire(b []byte) (_ []byte, err error) {
	b = appendString(b, 1, x.Name)
	b = appendString(b, 2, x.Etag)
	if b, err = appendTimestamp(b, 3, x.CreateTime); err != nil {
		return nil, err
	}
	if b, err = appendTimestamp(b, 4, x.UpdateTime); err != nil {
		return nil, err
	}
	return appendString(b, 5, x.DisplayName), nil
}

func (x *Vehicle) consumeField(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	switch num {
	case 1:
		return consumeString(typ, b, &x.Name)
	case 2:
		return consumeString(typ, b, &x.Etag)
	case 3:
		return consumeTimestamp(typ, b, &x.CreateTime)
	case 4:
		return consumeTimestamp(typ, b, &x.UpdateTime)
	case 5:
		return consumeString(typ, b, &x.DisplayName)
	}
	return 0, nil
}

func (x *CreateAccountRequest) appendWire(b []byte) ([]byte, error) {
	if x.Account == nil {
		return b, nil
	}
	return appendMessage(b, 1, x.Account)
}

func (x *CreateAccountRequest) consumeField(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	if num != 1 {
		return 0, nil
	}
	if x.Account == nil {
		x.Account = new(Account)
	}
	return consumeMessage(typ, b, x.Account)
}

func (x *GetAccountRequest) appendWire(b []byte) ([]byte, error) {
	return appendString(b, 1, x.Name), nil
}

func (x *GetAccountRequest) consumeField(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	if num != 1 {
		return 0, nil
	}
	return consumeString(typ, b, &x.Name)
}

func (x *UpdateAccountRequest) appendWire(b []byte) ([]byte, error) {
	if x.Account == nil {
		return b, nil
	}
	return appendMessage(b, 1, x.Account)
}

func (x *UpdateAccountRequest) consumeField(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	if num != 1 {
		return 0, nil
	}
	if x.Account == nil {
		x.Account = new(Account)
	}
	return consumeMessage(typ, b, x.Account)
}

func (x *DeleteAccountRequest) appendWire(b []byte) ([]byte, error) {
	b = appendString(b, 1, x.Name)
	return appendString(b, 2, x.Etag), nil
}

func (x *DeleteAccountRequest) consumeField(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	switch num {
	case 1:
		return consumeString(typ, b, &x.Name)
	case 2:
		return consumeString(typ, b, &x.Etag)
	}
	return 0, nil
}

func (x *ListAccountsRequest) appendWire(b []byte) ([]byte, error) {
	b = appendInt32(b, 1, x.PageSize)
	return appendString(b, 2, x.PageToken), nil
}

func (x *ListAccountsRequest) consumeField(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	switch num {
	case 1:
		return consumeInt32(typ, b, &x.PageSize)
	case 2:
		return consumeString(typ, b, &x.PageToken)
	}
	return 0, nil
}

func (x *ListAccountsResponse) appendWire(b []byte) (_ []byte, err error) {
	for _, a := range x.Accounts {
		if a == nil {
			a = &Account{}
		}
		if b, err = appendMessage(b, 1, a); err != nil {
			return nil, err
		}
	}
	return appendString(b, 2, x.NextPageToken), nil
}

func (x *ListAccountsResponse) consumeField(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	switch num {
	case 1:
		a := new(Account)
		n, err := consumeMessage(typ, b, a)
		if err != nil {
			return 0, err
		}
		x.Accounts = append(x.Accounts, a)
		return n, nil
	case 2:
		return consumeString(typ, b, &x.NextPageToken)
	}
	return 0, nil
}

func (x *CreateVehicleRequest) appendWire(b []byte) ([]byte, error) {
	b = appendString(b, 1, x.Parent)
	if x.Vehicle == nil {
		return b, nil
	}
	return appendMessage(b, 2, x.Vehicle)
}

func (x *CreateVehicleRequest) consumeField(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	switch num {
	case 1:
		return consumeString(typ, b, &x.Parent)
	case 2:
		if x.Vehicle == nil {
			x.Vehicle = new(Vehicle)
		}
		return consumeMessage(typ, b, x.Vehicle)
	}
	return 0, nil
}

func (x *GetVehicleRequest) appendWire(b []byte) ([]byte, error) {
	return appendString(b, 1, x.Name), nil
}

func (x *GetVehicleRequest) consumeField(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	if num != 1 {
		return 0, nil
	}
	return consumeString(typ, b, &x.Name)
}

func (x *UpdateVehicleRequest) appendWire(b []byte) ([]byte, error) {
	if x.Vehicle == nil {
		return b, nil
	}
	return appendMessage(b, 1, x.Vehicle)
}

func (x *UpdateVehicleRequest) consumeField(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	if num != 1 {
		return 0, nil
	}
	if x.Vehicle == nil {
		x.Vehicle = new(Vehicle)
	}
	return consumeMessage(typ, b, x.Vehicle)
}

func (x *DeleteVehicleRequest) appendWire(b []byte) ([]byte, error) {
	b = appendString(b, 1, x.Name)
	return appendString(b, 2, x.Etag), nil
}

func (x *DeleteVehicleRequest) consumeField(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	switch num {
	case 1:
		return consumeString(typ, b, &x.Name)
	case 2:
		return consumeString(typ, b, &x.Etag)
	}
	return 0, nil
}

func (x *ListVehiclesRequest) appendWire(b []byte) ([]byte, error) {
	b = appendString(b, 1, x.Parent)
	b = appendInt32(b, 2, x.PageSize)
	return appendString(b, 3, x.PageToken), nil
}

func (x *ListVehiclesRequest) consumeField(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	switch num {
	case 1:
		return consumeString(typ, b, &x.Parent)
	case 2:
		return consumeInt32(typ, b, &x.PageSize)
	case 3:
		return consumeString(typ, b, &x.PageToken)
	}
	return 0, nil
}

func (x *ListVehiclesResponse) appendWire(b []byte) (_ []byte, err error) {
	for _, v := range x.Vehicles {
		if v == nil {
			v = &Vehicle{}
		}
		if b, err = appendMessage(b, 1, v); err != nil {
			return nil, err
		}
	}
	return appendString(b, 2, x.NextPageToken), nil
}

func (x *ListVehiclesResponse) consumeField(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	switch num {
	case 1:
		v := new(Vehicle)
		n, err := consumeMessage(typ, b, v)
		if err != nil {
			return 0, err
		}
		x.Vehicles = append(x.Vehicles, v)
		return n, nil
	case 2:
		return consumeString(typ, b, &x.NextPageToken)
	}
	return 0, nil
}
