// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package buffer implements a growable byte buffer with a read cursor,
// used to encode and decode binary wire formats.
//
// Writes always append at the end of the buffer and never fail.
// Reads start at the cursor, are bounds checked and advance the cursor
// by the number of bytes consumed. Integers are little endian unless
// the method name ends with BE.
//
// A Buffer is not safe for concurrent use.
package buffer

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/ChainSafe/wirebuf/lib/common"
)

// Buffer is a byte sequence with a read offset.
// The zero value is an empty buffer ready to use.
type Buffer struct {
	data   []byte
	offset int
}

// New creates an empty buffer.
func New() *Buffer {
	return &Buffer{}
}

// NewFromBytes creates a buffer reading from data.
// The buffer takes ownership of data, which must not be used by the
// caller afterwards.
func NewFromBytes(data []byte) *Buffer {
	return &Buffer{data: data}
}

// NewFromSlice creates a buffer reading from a copy of data.
func NewFromSlice(data []byte) *Buffer {
	return &Buffer{data: append([]byte(nil), data...)}
}

// FromHex creates a buffer from a hex string without prefix.
// Uppercase and lowercase digits are both accepted.
func FromHex(s string) (*Buffer, error) {
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", common.ErrInvalidHex, err)
	}
	return NewFromBytes(data), nil
}

// Offset returns the current read offset.
func (b *Buffer) Offset() int { return b.offset }

// Len returns the total number of bytes in the buffer,
// regardless of the read offset.
func (b *Buffer) Len() int { return len(b.data) }

// Remaining returns the number of bytes left to read.
func (b *Buffer) Remaining() int { return len(b.data) - b.offset }

// Bytes returns the underlying bytes of the buffer. The slice aliases the
// buffer content: modifying it modifies the buffer, which is useful to patch
// a region reserved earlier. It is only valid until the next write.
func (b *Buffer) Bytes() []byte { return b.data }

// Unread returns the bytes from the read offset to the end of the buffer,
// without copying them.
func (b *Buffer) Unread() []byte { return b.data[b.offset:] }

// ToVec returns a copy of the buffer bytes.
func (b *Buffer) ToVec() []byte {
	return append([]byte(nil), b.data...)
}

// Hex returns the buffer bytes as a lowercase hex string.
func (b *Buffer) Hex() string {
	return hex.EncodeToString(b.data)
}

// IntoHex returns the buffer bytes as a lowercase hex string
// and resets the buffer.
func (b *Buffer) IntoHex() string {
	s := b.Hex()
	b.data = nil
	b.offset = 0
	return s
}

// Equal returns true if both buffers have the same bytes
// and the same read offset.
func (b *Buffer) Equal(other *Buffer) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.offset == other.offset && bytes.Equal(b.data, other.data)
}

// String returns the offset and the hex encoded bytes of the buffer.
func (b *Buffer) String() string {
	return fmt.Sprintf("Offset: %d, Buffer: %s", b.offset, b.Hex())
}
