// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package buffer

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfBounds      = errors.New("read out of bounds")
	ErrInvalidString    = errors.New("invalid string")
	ErrNonMinimalVarInt = errors.New("non-minimal varint")
	ErrTrailingBytes    = errors.New("trailing bytes after decoding")
)

// UTF8Error describes the first byte of a string field which does not
// start a valid UTF-8 sequence.
type UTF8Error struct {
	// Index is the position of the invalid byte within the string field,
	// which is also the length of its valid UTF-8 prefix.
	Index int
	Byte  byte
}

func (e *UTF8Error) Error() string {
	return fmt.Sprintf("invalid utf-8 byte 0x%02x at index %d", e.Byte, e.Index)
}
