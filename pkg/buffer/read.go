// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package buffer

import (
	"encoding/binary"
	"fmt"
	"unicode/utf8"

	"github.com/ChainSafe/wirebuf/lib/common"
)

// Check returns an error wrapping ErrOutOfBounds if
// size bytes cannot be read from the current offset.
func (b *Buffer) Check(size int) error {
	if size < 0 || size > b.Remaining() {
		return b.errOutOfBounds(size)
	}
	return nil
}

func (b *Buffer) errOutOfBounds(size interface{}) error {
	return fmt.Errorf("%w: cannot read %v bytes at offset %d, %d bytes remaining",
		ErrOutOfBounds, size, b.offset, b.Remaining())
}

// next returns the next size bytes, without copying them,
// and advances the offset.
func (b *Buffer) next(size int) ([]byte, error) {
	if err := b.Check(size); err != nil {
		return nil, err
	}
	p := b.data[b.offset : b.offset+size]
	b.offset += size
	return p, nil
}

// Skip advances the offset by n bytes without reading them.
func (b *Buffer) Skip(n int) error {
	_, err := b.next(n)
	return err
}

// ReadU8 reads an uint8.
func (b *Buffer) ReadU8() (uint8, error) {
	p, err := b.next(1)
	if err != nil {
		return 0, err
	}
	return p[0], nil
}

// ReadU16 reads a little endian uint16.
func (b *Buffer) ReadU16() (uint16, error) {
	p, err := b.next(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(p), nil
}

// ReadU32 reads a little endian uint32.
func (b *Buffer) ReadU32() (uint32, error) {
	p, err := b.next(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(p), nil
}

// ReadU64 reads a little endian uint64.
func (b *Buffer) ReadU64() (uint64, error) {
	p, err := b.next(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(p), nil
}

// ReadU8BE reads an uint8. It is identical to ReadU8.
func (b *Buffer) ReadU8BE() (uint8, error) { return b.ReadU8() }

// ReadU16BE reads a big endian uint16.
func (b *Buffer) ReadU16BE() (uint16, error) {
	p, err := b.next(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(p), nil
}

// ReadU32BE reads a big endian uint32.
func (b *Buffer) ReadU32BE() (uint32, error) {
	p, err := b.next(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(p), nil
}

// ReadU64BE reads a big endian uint64.
func (b *Buffer) ReadU64BE() (uint64, error) {
	p, err := b.next(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(p), nil
}

// ReadI8 reads an int8.
func (b *Buffer) ReadI8() (int8, error) {
	v, err := b.ReadU8()
	return int8(v), err
}

// ReadI16 reads a little endian int16.
func (b *Buffer) ReadI16() (int16, error) {
	v, err := b.ReadU16()
	return int16(v), err
}

// ReadI32 reads a little endian int32.
func (b *Buffer) ReadI32() (int32, error) {
	v, err := b.ReadU32()
	return int32(v), err
}

// ReadI64 reads a little endian int64.
func (b *Buffer) ReadI64() (int64, error) {
	v, err := b.ReadU64()
	return int64(v), err
}

// ReadI8BE reads an int8. It is identical to ReadI8.
func (b *Buffer) ReadI8BE() (int8, error) { return b.ReadI8() }

// ReadI16BE reads a big endian int16.
func (b *Buffer) ReadI16BE() (int16, error) {
	v, err := b.ReadU16BE()
	return int16(v), err
}

// ReadI32BE reads a big endian int32.
func (b *Buffer) ReadI32BE() (int32, error) {
	v, err := b.ReadU32BE()
	return int32(v), err
}

// ReadI64BE reads a big endian int64.
func (b *Buffer) ReadI64BE() (int64, error) {
	v, err := b.ReadU64BE()
	return int64(v), err
}

// ReadU256 reads a 32 bytes little endian unsigned integer.
func (b *Buffer) ReadU256() (common.Uint256, error) {
	p, err := b.next(common.Uint256Length)
	if err != nil {
		return common.Uint256{}, err
	}
	var le [common.Uint256Length]byte
	copy(le[:], p)
	return common.Uint256FromLEBytes(le), nil
}

// ReadHash reads a 32 bytes hash.
func (b *Buffer) ReadHash() (common.Hash, error) {
	p, err := b.next(common.HashLength)
	if err != nil {
		return common.Hash{}, err
	}
	return common.NewHash(p), nil
}

// ReadBytes reads and returns a copy of the next size bytes.
func (b *Buffer) ReadBytes(size int) ([]byte, error) {
	p, err := b.next(size)
	if err != nil {
		return nil, err
	}
	return append([]byte{}, p...), nil
}

// ReadVarBytes reads a varint length followed by that many bytes.
// The offset is left unchanged if either read fails.
func (b *Buffer) ReadVarBytes() ([]byte, error) {
	start := b.offset
	length, err := b.ReadVarInt()
	if err != nil {
		return nil, err
	}

	if length.Uint64() > uint64(b.Remaining()) {
		err = b.errOutOfBounds(length.Uint64())
		b.offset = start
		return nil, err
	}

	return b.ReadBytes(int(length))
}

// ReadString reads size bytes as an UTF-8 string.
// If the bytes are not valid UTF-8, the returned error wraps both
// ErrInvalidString and an *UTF8Error, and the offset has already
// moved past the size bytes.
func (b *Buffer) ReadString(size int) (string, error) {
	p, err := b.next(size)
	if err != nil {
		return "", err
	}

	if utf8Err := validateUTF8(p); utf8Err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidString, utf8Err)
	}
	return string(p), nil
}

func validateUTF8(p []byte) *UTF8Error {
	for i := 0; i < len(p); {
		r, size := utf8.DecodeRune(p[i:])
		if r == utf8.RuneError && size == 1 {
			return &UTF8Error{Index: i, Byte: p[i]}
		}
		i += size
	}
	return nil
}
