// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package buffer

import "fmt"

//go:generate mockgen -destination=mocks_test.go -package=$GOPACKAGE . Encoder,Decoder

// Encoder is implemented by values which can append their
// wire encoding to a buffer.
type Encoder interface {
	EncodeBuffer(b *Buffer)
}

// Decoder is implemented by values which can decode themselves
// from the read offset of a buffer.
type Decoder interface {
	DecodeBuffer(b *Buffer) error
}

// Marshal returns the wire encoding of v.
func Marshal(v Encoder) []byte {
	b := New()
	v.EncodeBuffer(b)
	return b.data
}

// Unmarshal decodes data into v. It fails if v does not
// consume all of data.
func Unmarshal(data []byte, v Decoder) error {
	b := NewFromBytes(data)
	err := v.DecodeBuffer(b)
	if err != nil {
		return err
	}

	if b.Remaining() > 0 {
		return fmt.Errorf("%w: %d bytes left at offset %d",
			ErrTrailingBytes, b.Remaining(), b.offset)
	}
	return nil
}
