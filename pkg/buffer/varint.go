// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package buffer

import (
	"encoding/binary"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Varint tags announcing the width of the payload following them.
const (
	varIntTag16 = 0xfd
	varIntTag32 = 0xfe
	varIntTag64 = 0xff
)

// VarInt is an unsigned integer encoded on the wire as a CompactSize:
// values below 0xfd take a single byte, larger values take a one byte
// tag followed by a 2, 4 or 8 bytes little endian payload.
// Any value is valid; only decoding enforces the minimal encoding.
type VarInt uint64

// NewVarInt converts an unsigned integer of any width to a VarInt.
func NewVarInt[T constraints.Unsigned](n T) VarInt {
	return VarInt(n)
}

// Uint64 returns the value of the varint.
func (v VarInt) Uint64() uint64 { return uint64(v) }

// EncodedSize returns the number of bytes of the varint encoding.
func (v VarInt) EncodedSize() int { return EncodedSize(uint64(v)) }

// EncodedSize returns the number of bytes needed to encode n
// as a varint: 1, 3, 5 or 9.
func EncodedSize(n uint64) int {
	switch {
	case n < varIntTag16:
		return 1
	case n <= math.MaxUint16:
		return 3
	case n <= math.MaxUint32:
		return 5
	default:
		return 9
	}
}

// AppendVarInt appends the minimal varint encoding of n to dst
// and returns the extended slice.
func AppendVarInt(dst []byte, n uint64) []byte {
	switch {
	case n < varIntTag16:
		return append(dst, byte(n))
	case n <= math.MaxUint16:
		dst = append(dst, varIntTag16)
		return binary.LittleEndian.AppendUint16(dst, uint16(n))
	case n <= math.MaxUint32:
		dst = append(dst, varIntTag32)
		return binary.LittleEndian.AppendUint32(dst, uint32(n))
	default:
		dst = append(dst, varIntTag64)
		return binary.LittleEndian.AppendUint64(dst, n)
	}
}

// DecodeVarInt decodes the varint at the start of src and returns it
// together with the number of bytes it occupies.
func DecodeVarInt(src []byte) (v VarInt, n int, err error) {
	b := NewFromBytes(src)
	v, err = b.ReadVarInt()
	if err != nil {
		return 0, 0, err
	}
	return v, b.offset, nil
}

// ReadVarInt reads a varint, rejecting encodings which are not minimal
// with an error wrapping ErrNonMinimalVarInt.
// The offset is left unchanged on error.
func (b *Buffer) ReadVarInt() (v VarInt, err error) {
	start := b.offset
	defer func() {
		if err != nil {
			b.offset = start
		}
	}()

	tag, err := b.ReadU8()
	if err != nil {
		return 0, err
	}

	switch tag {
	case varIntTag64:
		n, err := b.ReadU64()
		if err != nil {
			return 0, err
		}
		if n < 1<<32 {
			return 0, errNonMinimal(tag, n)
		}
		return VarInt(n), nil
	case varIntTag32:
		n, err := b.ReadU32()
		if err != nil {
			return 0, err
		}
		if n < 1<<16 {
			return 0, errNonMinimal(tag, uint64(n))
		}
		return VarInt(n), nil
	case varIntTag16:
		n, err := b.ReadU16()
		if err != nil {
			return 0, err
		}
		if n < varIntTag16 {
			return 0, errNonMinimal(tag, uint64(n))
		}
		return VarInt(n), nil
	default:
		return VarInt(tag), nil
	}
}

func errNonMinimal(tag byte, n uint64) error {
	return fmt.Errorf("%w: value %d encoded with tag 0x%x",
		ErrNonMinimalVarInt, n, tag)
}
