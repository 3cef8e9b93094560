// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package buffer

import (
	"encoding/binary"

	"github.com/ChainSafe/wirebuf/lib/common"
)

// WriteU8 appends an uint8.
func (b *Buffer) WriteU8(v uint8) { b.data = append(b.data, v) }

// WriteU16 appends an uint16 in little endian.
func (b *Buffer) WriteU16(v uint16) { b.data = binary.LittleEndian.AppendUint16(b.data, v) }

// WriteU32 appends an uint32 in little endian.
func (b *Buffer) WriteU32(v uint32) { b.data = binary.LittleEndian.AppendUint32(b.data, v) }

// WriteU64 appends an uint64 in little endian.
func (b *Buffer) WriteU64(v uint64) { b.data = binary.LittleEndian.AppendUint64(b.data, v) }

// WriteU8BE appends an uint8. It is identical to WriteU8.
func (b *Buffer) WriteU8BE(v uint8) { b.WriteU8(v) }

// WriteU16BE appends an uint16 in big endian.
func (b *Buffer) WriteU16BE(v uint16) { b.data = binary.BigEndian.AppendUint16(b.data, v) }

// WriteU32BE appends an uint32 in big endian.
func (b *Buffer) WriteU32BE(v uint32) { b.data = binary.BigEndian.AppendUint32(b.data, v) }

// WriteU64BE appends an uint64 in big endian.
func (b *Buffer) WriteU64BE(v uint64) { b.data = binary.BigEndian.AppendUint64(b.data, v) }

// WriteI8 appends an int8 in two's complement.
func (b *Buffer) WriteI8(v int8) { b.WriteU8(uint8(v)) }

// WriteI16 appends an int16 in little endian two's complement.
func (b *Buffer) WriteI16(v int16) { b.WriteU16(uint16(v)) }

// WriteI32 appends an int32 in little endian two's complement.
func (b *Buffer) WriteI32(v int32) { b.WriteU32(uint32(v)) }

// WriteI64 appends an int64 in little endian two's complement.
func (b *Buffer) WriteI64(v int64) { b.WriteU64(uint64(v)) }

// WriteI8BE appends an int8 in two's complement. It is identical to WriteI8.
func (b *Buffer) WriteI8BE(v int8) { b.WriteU8(uint8(v)) }

// WriteI16BE appends an int16 in big endian two's complement.
func (b *Buffer) WriteI16BE(v int16) { b.WriteU16BE(uint16(v)) }

// WriteI32BE appends an int32 in big endian two's complement.
func (b *Buffer) WriteI32BE(v int32) { b.WriteU32BE(uint32(v)) }

// WriteI64BE appends an int64 in big endian two's complement.
func (b *Buffer) WriteI64BE(v int64) { b.WriteU64BE(uint64(v)) }

// WriteU256 appends the 32 bytes little endian encoding of v.
func (b *Buffer) WriteU256(v common.Uint256) {
	le := v.LEBytes()
	b.data = append(b.data, le[:]...)
}

// WriteHash appends the 32 bytes of the hash.
func (b *Buffer) WriteHash(h common.Hash) {
	b.data = append(b.data, h[:]...)
}

// WriteBytes appends the bytes as they are.
func (b *Buffer) WriteBytes(p []byte) {
	b.data = append(b.data, p...)
}

// WriteVarBytes appends the length of p as a varint followed by p.
// An empty p is written as the single byte 0x00.
func (b *Buffer) WriteVarBytes(p []byte) {
	b.WriteVarInt(uint64(len(p)))
	if len(p) == 0 {
		return
	}
	b.data = append(b.data, p...)
}

// WriteString appends the UTF-8 bytes of s, with
// no length prefix and no terminator.
func (b *Buffer) WriteString(s string) {
	b.data = append(b.data, s...)
}

// WriteVarInt appends the canonical varint encoding of n.
func (b *Buffer) WriteVarInt(n uint64) {
	b.data = AppendVarInt(b.data, n)
}

// Fill appends amount copies of value.
func (b *Buffer) Fill(value byte, amount int) {
	if amount <= 0 {
		return
	}
	start := len(b.data)
	b.data = append(b.data, make([]byte, amount)...)
	if value == 0 {
		return
	}
	for i := start; i < len(b.data); i++ {
		b.data[i] = value
	}
}

// Extend appends all the bytes of other, ignoring its read offset.
func (b *Buffer) Extend(other *Buffer) {
	b.data = append(b.data, other.data...)
}

// ExtendFromSlice appends the bytes of p.
func (b *Buffer) ExtendFromSlice(p []byte) {
	b.data = append(b.data, p...)
}

// Write implements io.Writer and never returns an error.
func (b *Buffer) Write(p []byte) (n int, err error) {
	b.ExtendFromSlice(p)
	return len(p), nil
}
