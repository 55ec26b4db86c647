// Package pagetoken turns list continuation records into opaque, URL-safe
// page tokens and back.
//
// Records are serialized as CBOR arrays (structs tagged `cbor:",toarray"`)
// and then base64url encoded without padding. Decoding is strict: unknown
// fields, trailing bytes and arrays of the wrong length are rejected, so a
// token minted for one record shape never decodes as another.
package pagetoken

import (
	"encoding/base64"
	"fmt"

	"github.com/dmitrijs2005/fuelcost/internal/common"
	"github.com/fxamacker/cbor/v2"
)

// maxTokenLen bounds the encoded token accepted by Decode.
const maxTokenLen = 512

// Record is a continuation record. Valid reports whether a freshly decoded
// record is usable, typically by checking its kind tag and key ranges.
type Record interface {
	Valid() bool
}

// Codec encodes and decodes page tokens. It holds its own CBOR modes and
// is safe for concurrent use.
type Codec struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

// NewCodec builds a Codec with canonical encoding and strict decoding.
func NewCodec() (*Codec, error) {
	enc, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return nil, fmt.Errorf("page token encoder: %w", err)
	}
	dec, err := cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyEnforcedAPF,
		ExtraReturnErrors: cbor.ExtraDecErrorUnknownField,
		MaxNestedLevels:   4,
		MaxArrayElements:  16,
		MaxMapPairs:       16,
		IndefLength:       cbor.IndefLengthForbidden,
		TagsMd:            cbor.TagsForbidden,
	}.DecMode()
	if err != nil {
		return nil, fmt.Errorf("page token decoder: %w", err)
	}
	return &Codec{enc: enc, dec: dec}, nil
}

// MustNewCodec is like NewCodec but panics on error.
func MustNewCodec() *Codec {
	c, err := NewCodec()
	if err != nil {
		panic(err)
	}
	return c
}

// Encode serializes r into a token.
func (c *Codec) Encode(r Record) (string, error) {
	b, err := c.enc.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("encode page token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// Decode fills r from token. An empty token means "first page" and yields
// ok == false with no error. Anything that is not a token produced by Encode
// for the same record shape fails with common.ErrInvalidArgument.
func (c *Codec) Decode(token string, r Record) (ok bool, err error) {
	if token == "" {
		return false, nil
	}
	if len(token) > maxTokenLen {
		return false, invalid()
	}
	b, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return false, invalid()
	}
	if err := c.dec.Unmarshal(b, r); err != nil {
		return false, invalid()
	}
	if !r.Valid() {
		return false, invalid()
	}
	return true, nil
}

func invalid() error {
	return fmt.Errorf("%w: invalid page token", common.ErrInvalidArgument)
}
