// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package layout

import (
	"fmt"
	"strconv"

	"github.com/ChainSafe/wirebuf/lib/common"
	"github.com/ChainSafe/wirebuf/lib/common/variadic"
	"github.com/ChainSafe/wirebuf/pkg/buffer"
)

// Value is a decoded field value rendered as text, in the
// same format Encode accepts.
type Value struct {
	Name string
	Kind string
	Text string
}

func (v Value) String() string {
	return fmt.Sprintf("%s (%s) = %s", v.Name, v.Kind, v.Text)
}

// Decode reads the layout fields in order from the read offset of b.
// Skip fields are skipped and produce no value. On failure, the values
// decoded so far are discarded and the error names the failing field.
func (l Layout) Decode(b *buffer.Buffer) (values []Value, err error) {
	values = make([]Value, 0, l.Values())
	for _, field := range l {
		start := b.Offset()

		if !field.TakesValue() {
			err = b.Skip(field.Size)
			if err != nil {
				return nil, fmt.Errorf("cannot skip field %s: %w", field.Name, err)
			}
			continue
		}

		text, err := decodeField(b, field)
		if err != nil {
			return nil, fmt.Errorf("cannot decode field %s at offset %d: %w",
				field.Name, start, err)
		}

		values = append(values, Value{
			Name: field.Name,
			Kind: field.KindString(),
			Text: text,
		})
	}

	logger.Debugf("decoded %d values, %d bytes remaining", len(values), b.Remaining())
	return values, nil
}

func decodeField(b *buffer.Buffer, field Field) (text string, err error) {
	switch field.Kind {
	case U8, U16, U32, U64:
		n, err := decodeUnsigned(b, field)
		if err != nil {
			return "", err
		}
		return strconv.FormatUint(n, 10), nil
	case I8, I16, I32, I64:
		n, err := decodeSigned(b, field)
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(n, 10), nil
	case U256:
		u, err := b.ReadU256()
		if err != nil {
			return "", err
		}
		return u.String(), nil
	case Hash:
		h, err := b.ReadHash()
		if err != nil {
			return "", err
		}
		return h.Hex(), nil
	case VarInt:
		v, err := b.ReadVarInt()
		if err != nil {
			return "", err
		}
		return strconv.FormatUint(v.Uint64(), 10), nil
	case VarBytes:
		p, err := b.ReadVarBytes()
		if err != nil {
			return "", err
		}
		return common.BytesToHex(p), nil
	case Bytes:
		p, err := b.ReadBytes(field.Size)
		if err != nil {
			return "", err
		}
		return common.BytesToHex(p), nil
	case String:
		return b.ReadString(field.Size)
	case U64OrHash:
		x := new(variadic.Uint64OrHash)
		err = x.DecodeBuffer(b)
		if err != nil {
			return "", err
		}
		return x.String(), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKind, field.Kind)
	}
}

func decodeUnsigned(b *buffer.Buffer, field Field) (n uint64, err error) {
	switch field.Kind {
	case U8:
		v, err := b.ReadU8()
		return uint64(v), err
	case U16:
		var v uint16
		if field.BigEndian {
			v, err = b.ReadU16BE()
		} else {
			v, err = b.ReadU16()
		}
		return uint64(v), err
	case U32:
		var v uint32
		if field.BigEndian {
			v, err = b.ReadU32BE()
		} else {
			v, err = b.ReadU32()
		}
		return uint64(v), err
	default:
		if field.BigEndian {
			return b.ReadU64BE()
		}
		return b.ReadU64()
	}
}

func decodeSigned(b *buffer.Buffer, field Field) (n int64, err error) {
	switch field.Kind {
	case I8:
		v, err := b.ReadI8()
		return int64(v), err
	case I16:
		var v int16
		if field.BigEndian {
			v, err = b.ReadI16BE()
		} else {
			v, err = b.ReadI16()
		}
		return int64(v), err
	case I32:
		var v int32
		if field.BigEndian {
			v, err = b.ReadI32BE()
		} else {
			v, err = b.ReadI32()
		}
		return int64(v), err
	default:
		if field.BigEndian {
			return b.ReadI64BE()
		}
		return b.ReadI64()
	}
}
