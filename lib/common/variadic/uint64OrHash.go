// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package variadic

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/ChainSafe/wirebuf/lib/common"
	"github.com/ChainSafe/wirebuf/pkg/buffer"
)

const (
	hashTag   byte = 0
	numberTag byte = 1
)

var (
	ErrUnsupportedType = errors.New("unsupported type")
	ErrInvalidTag      = errors.New("invalid tag")
)

// Uint64OrHash is either a block number or a block hash.
// On the wire, it is a tag byte, 0 for a hash followed by its
// 32 bytes, or 1 for a number followed by its little endian uint64.
type Uint64OrHash struct {
	value interface{}
}

// NewUint64OrHash returns a new Uint64OrHash from an int, an uint64
// or a common.Hash.
func NewUint64OrHash(value interface{}) (*Uint64OrHash, error) {
	switch v := value.(type) {
	case int:
		if v < 0 {
			return nil, fmt.Errorf("%w: negative int %d", ErrUnsupportedType, v)
		}
		return &Uint64OrHash{value: uint64(v)}, nil
	case uint64:
		return &Uint64OrHash{value: v}, nil
	case common.Hash:
		return &Uint64OrHash{value: v}, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, value)
	}
}

// ParseUint64OrHash parses a decimal number, or a hex hash
// optionally 0x prefixed.
func ParseUint64OrHash(s string) (*Uint64OrHash, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err == nil {
		return &Uint64OrHash{value: n}, nil
	}

	h, err := common.HexToHash(s)
	if err != nil {
		return nil, fmt.Errorf("%q is neither a number nor a hash: %w", s, err)
	}
	return &Uint64OrHash{value: h}, nil
}

// Value returns the interface value, either an uint64 or a common.Hash.
func (x *Uint64OrHash) Value() interface{} {
	return x.value
}

// IsHash returns true if the value is a hash.
func (x *Uint64OrHash) IsHash() bool {
	_, ok := x.value.(common.Hash)
	return ok
}

// String returns the number in decimal or the hash in hex.
func (x *Uint64OrHash) String() string {
	switch v := x.value.(type) {
	case common.Hash:
		return v.Hex()
	case uint64:
		return strconv.FormatUint(v, 10)
	default:
		return "<nil>"
	}
}

// EncodeBuffer writes the tag and the value to b.
func (x *Uint64OrHash) EncodeBuffer(b *buffer.Buffer) {
	switch v := x.value.(type) {
	case common.Hash:
		b.WriteU8(hashTag)
		b.WriteHash(v)
	case uint64:
		b.WriteU8(numberTag)
		b.WriteU64(v)
	}
}

// DecodeBuffer reads the tag and the value from b.
func (x *Uint64OrHash) DecodeBuffer(b *buffer.Buffer) error {
	tag, err := b.ReadU8()
	if err != nil {
		return fmt.Errorf("cannot read tag: %w", err)
	}

	switch tag {
	case hashTag:
		h, err := b.ReadHash()
		if err != nil {
			return fmt.Errorf("cannot read hash: %w", err)
		}
		x.value = h
	case numberTag:
		n, err := b.ReadU64()
		if err != nil {
			return fmt.Errorf("cannot read number: %w", err)
		}
		x.value = n
	default:
		return fmt.Errorf("%w: %d", ErrInvalidTag, tag)
	}
	return nil
}
