// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package common

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
)

// Uint256Length is the fixed byte length of an encoded Uint256.
const Uint256Length = 32

var (
	ErrUint256Overflow = errors.New("value overflows 256 bits")
	ErrUint256Negative = errors.New("value is negative")
)

// Uint256 represents an unsigned 256 bit integer
type Uint256 struct {
	value uint256.Int
}

// MaxUint256 is the maximum uint256 value
var MaxUint256 = Uint256{value: uint256.Int{
	^uint64(0), ^uint64(0), ^uint64(0), ^uint64(0),
}}

// NewUint256 is constructor for Uint256 that accepts an optional binary.ByteOrder.
// The order is only used when the input is of type []byte, in which case
// binary.LittleEndian is the default. Byte slices shorter than 32 bytes are
// zero extended.
func NewUint256(in interface{}, order ...binary.ByteOrder) (u Uint256, err error) {
	switch in := in.(type) {
	case uint64:
		u.value.SetUint64(in)
	case *big.Int:
		if in.Sign() < 0 {
			return u, fmt.Errorf("%w: %s", ErrUint256Negative, in)
		}
		value, overflow := uint256.FromBig(in)
		if overflow {
			return u, fmt.Errorf("%w: %s", ErrUint256Overflow, in)
		}
		u.value = *value
	case []byte:
		if len(in) > Uint256Length {
			return u, fmt.Errorf("%w: %d bytes", ErrUint256Overflow, len(in))
		}
		var o binary.ByteOrder = binary.LittleEndian
		if len(order) > 0 {
			o = order[0]
		}
		var padded [Uint256Length]byte
		switch o {
		case binary.BigEndian:
			copy(padded[Uint256Length-len(in):], in)
			u.value.SetBytes32(padded[:])
		default:
			copy(padded[:], in)
			u = Uint256FromLEBytes(padded)
		}
	default:
		err = fmt.Errorf("unsupported type: %T", in)
	}
	return u, err
}

// MustNewUint256 will panic if NewUint256 returns an error
func MustNewUint256(in interface{}, order ...binary.ByteOrder) Uint256 {
	u, err := NewUint256(in, order...)
	if err != nil {
		panic(err)
	}
	return u
}

// Uint256FromLEBytes converts 32 little endian bytes to a Uint256.
func Uint256FromLEBytes(b [Uint256Length]byte) (u Uint256) {
	for i := range u.value {
		u.value[i] = binary.LittleEndian.Uint64(b[i*8:])
	}
	return u
}

// LEBytes returns the fixed width little endian encoding of the Uint256.
func (u Uint256) LEBytes() (b [Uint256Length]byte) {
	for i, limb := range u.value {
		binary.LittleEndian.PutUint64(b[i*8:], limb)
	}
	return b
}

// Bytes returns the Uint256 as 32 bytes in little endian format by default.
// A variadic parameter order can be used to specify the binary.ByteOrder used.
func (u Uint256) Bytes(order ...binary.ByteOrder) []byte {
	if len(order) > 0 && order[0] == binary.BigEndian {
		b := u.value.Bytes32()
		return b[:]
	}
	b := u.LEBytes()
	return b[:]
}

// Big returns the value as a big integer.
func (u Uint256) Big() *big.Int {
	return u.value.ToBig()
}

// Uint64 returns the lowest 64 bits of the value.
func (u Uint256) Uint64() uint64 {
	return u.value.Uint64()
}

// IsZero returns true if the value is zero.
func (u Uint256) IsZero() bool {
	return u.value.IsZero()
}

// Compare returns 1 if the receiver is greater than other, 0 if they are equal, and -1 otherwise.
func (u Uint256) Compare(other Uint256) int {
	return u.value.Cmp(&other.value)
}

// String returns the decimal representation of the value.
func (u Uint256) String() string {
	return u.Big().String()
}

// MarshalJSON encodes the value as a decimal JSON number.
func (u Uint256) MarshalJSON() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalJSON converts a decimal JSON number to Uint256.
func (u *Uint256) UnmarshalJSON(data []byte) error {
	intVal, ok := big.NewInt(0).SetString(string(data), 10)
	if !ok {
		return fmt.Errorf("failed to unmarshal Uint256")
	}

	dec, err := NewUint256(intVal)
	if err != nil {
		return err
	}
	*u = dec
	return nil
}
