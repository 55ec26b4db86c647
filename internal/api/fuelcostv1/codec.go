package fuelcostv1

import (
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/proto"
)

// CodecName is the content subtype announced on the wire. It is the one
// protobuf clients use, so generated stubs for fuelcost.proto interoperate.
const CodecName = "proto"

// Codec encodes the fuelcost.v1 messages in the protobuf binary format.
// Well-known types such as emptypb.Empty go through the protobuf runtime.
// It is not registered globally: servers pass ServerCodecOption and clients
// pass CallCodecOption.
type Codec struct{}

func NewCodec() *Codec {
	return &Codec{}
}

func (c *Codec) Marshal(v any) ([]byte, error) {
	var (
		b   []byte
		err error
	)
	switch m := v.(type) {
	case wireMessage:
		b, err = marshalWire(m)
	case proto.Message:
		b, err = proto.Marshal(m)
	default:
		return nil, fmt.Errorf("marshal %T: not a fuelcost.v1 message", v)
	}
	if err != nil {
		return nil, fmt.Errorf("marshal %T: %w", v, err)
	}
	return b, nil
}

func (c *Codec) Unmarshal(data []byte, v any) error {
	var err error
	switch m := v.(type) {
	case wireMessage:
		err = unmarshalWire(data, m)
	case proto.Message:
		err = proto.Unmarshal(data, m)
	default:
		return fmt.Errorf("unmarshal %T: not a fuelcost.v1 message", v)
	}
	if err != nil {
		return fmt.Errorf("unmarshal %T: %w", v, err)
	}
	return nil
}

func (c *Codec) Name() string {
	return CodecName
}

var defaultCodec = NewCodec()

// ServerCodecOption makes a grpc.Server speak this contract.
func ServerCodecOption() grpc.ServerOption {
	return grpc.ForceServerCodec(defaultCodec)
}

// CallCodecOption makes a client call speak this contract.
func CallCodecOption() grpc.CallOption {
	return grpc.ForceCodec(defaultCodec)
}
