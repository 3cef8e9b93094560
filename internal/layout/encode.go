// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package layout

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"

	"github.com/ChainSafe/wirebuf/lib/common"
	"github.com/ChainSafe/wirebuf/lib/common/variadic"
	"github.com/ChainSafe/wirebuf/pkg/buffer"
)

var (
	ErrValueCount = errors.New("wrong number of values")
	ErrValueSize  = errors.New("wrong value size")
	ErrValue      = errors.New("invalid value")
)

// Encode writes the values given to a new buffer, in the order of the
// layout fields. Integers are given in decimal or with a 0x prefix,
// hashes and bytes in hex and strings as text. A u64orhash value is a
// decimal number or a hex hash. Skip fields take no value and are
// written as zero bytes.
func (l Layout) Encode(values []string) (*buffer.Buffer, error) {
	if len(values) != l.Values() {
		return nil, fmt.Errorf("%w: layout %s needs %d values, got %d",
			ErrValueCount, l, l.Values(), len(values))
	}

	b := buffer.New()
	valueIndex := 0
	for _, field := range l {
		if !field.TakesValue() {
			b.Fill(0, field.Size)
			continue
		}

		err := encodeField(b, field, values[valueIndex])
		if err != nil {
			return nil, fmt.Errorf("cannot encode field %s: %w", field.Name, err)
		}
		valueIndex++
	}

	logger.Debugf("encoded %d values in %d bytes", len(values), b.Len())
	return b, nil
}

func encodeField(b *buffer.Buffer, field Field, value string) error {
	switch field.Kind {
	case U8, U16, U32, U64:
		return encodeUnsigned(b, field, value)
	case I8, I16, I32, I64:
		return encodeSigned(b, field, value)
	case U256:
		n, ok := new(big.Int).SetString(value, 0)
		if !ok {
			return fmt.Errorf("%w: %q is not an integer", ErrValue, value)
		}
		u, err := common.NewUint256(n)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrValue, err)
		}
		b.WriteU256(u)
	case Hash:
		h, err := common.HexToHash(value)
		if err != nil {
			return err
		}
		b.WriteHash(h)
	case VarInt:
		n, err := strconv.ParseUint(value, 0, 64)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrValue, err)
		}
		b.WriteVarInt(n)
	case VarBytes:
		p, err := common.HexToBytes(value)
		if err != nil {
			return err
		}
		b.WriteVarBytes(p)
	case Bytes:
		p, err := common.HexToBytes(value)
		if err != nil {
			return err
		}
		if len(p) != field.Size {
			return fmt.Errorf("%w: expected %d bytes, got %d", ErrValueSize, field.Size, len(p))
		}
		b.WriteBytes(p)
	case U64OrHash:
		x, err := variadic.ParseUint64OrHash(value)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrValue, err)
		}
		x.EncodeBuffer(b)
	case String:
		if len(value) != field.Size {
			return fmt.Errorf("%w: expected %d bytes, got %d", ErrValueSize, field.Size, len(value))
		}
		b.WriteString(value)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKind, field.Kind)
	}
	return nil
}

func encodeUnsigned(b *buffer.Buffer, field Field, value string) error {
	n, err := strconv.ParseUint(value, 0, bitSize(field.Kind))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrValue, err)
	}

	switch {
	case field.Kind == U8 && field.BigEndian:
		b.WriteU8BE(uint8(n))
	case field.Kind == U8:
		b.WriteU8(uint8(n))
	case field.Kind == U16 && field.BigEndian:
		b.WriteU16BE(uint16(n))
	case field.Kind == U16:
		b.WriteU16(uint16(n))
	case field.Kind == U32 && field.BigEndian:
		b.WriteU32BE(uint32(n))
	case field.Kind == U32:
		b.WriteU32(uint32(n))
	case field.BigEndian:
		b.WriteU64BE(n)
	default:
		b.WriteU64(n)
	}
	return nil
}

func encodeSigned(b *buffer.Buffer, field Field, value string) error {
	n, err := strconv.ParseInt(value, 0, bitSize(field.Kind))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrValue, err)
	}

	switch {
	case field.Kind == I8 && field.BigEndian:
		b.WriteI8BE(int8(n))
	case field.Kind == I8:
		b.WriteI8(int8(n))
	case field.Kind == I16 && field.BigEndian:
		b.WriteI16BE(int16(n))
	case field.Kind == I16:
		b.WriteI16(int16(n))
	case field.Kind == I32 && field.BigEndian:
		b.WriteI32BE(int32(n))
	case field.Kind == I32:
		b.WriteI32(int32(n))
	case field.BigEndian:
		b.WriteI64BE(n)
	default:
		b.WriteI64(n)
	}
	return nil
}

func bitSize(k Kind) int {
	switch k {
	case U8, I8:
		return 8
	case U16, I16:
		return 16
	case U32, I32:
		return 32
	default:
		return 64
	}
}
