// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package buffer

import (
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/vmihailenco/msgpack/v5"
)

// The methods below let each serialization format pick the representation
// of a Buffer: text based formats use the lowercase hex string while binary
// formats carry the raw bytes. Decoding always resets the read offset.

// MarshalText returns the buffer bytes as lowercase hex text.
func (b *Buffer) MarshalText() ([]byte, error) {
	return []byte(b.Hex()), nil
}

// UnmarshalText sets the buffer bytes from hex text.
func (b *Buffer) UnmarshalText(text []byte) error {
	decoded, err := FromHex(string(text))
	if err != nil {
		return err
	}
	*b = *decoded
	return nil
}

// MarshalJSON returns the buffer bytes as a JSON hex string.
func (b *Buffer) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.Hex())
}

// UnmarshalJSON sets the buffer bytes from a JSON hex string.
func (b *Buffer) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("cannot decode buffer hex string: %w", err)
	}
	return b.UnmarshalText([]byte(s))
}

// MarshalBinary returns a copy of the buffer bytes.
func (b *Buffer) MarshalBinary() ([]byte, error) {
	return b.ToVec(), nil
}

// UnmarshalBinary sets the buffer bytes from a copy of data.
func (b *Buffer) UnmarshalBinary(data []byte) error {
	*b = *NewFromSlice(data)
	return nil
}

// MarshalCBOR encodes the buffer bytes as a CBOR byte string.
func (b *Buffer) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(b.nonNilBytes())
}

// UnmarshalCBOR decodes a CBOR byte string into the buffer bytes.
func (b *Buffer) UnmarshalCBOR(data []byte) error {
	var raw []byte
	if err := cbor.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("cannot decode buffer cbor byte string: %w", err)
	}
	*b = *NewFromBytes(raw)
	return nil
}

// EncodeMsgpack encodes the buffer bytes as a msgpack bin value.
func (b *Buffer) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeBytes(b.nonNilBytes())
}

// DecodeMsgpack decodes a msgpack bin value into the buffer bytes.
func (b *Buffer) DecodeMsgpack(dec *msgpack.Decoder) error {
	raw, err := dec.DecodeBytes()
	if err != nil {
		return fmt.Errorf("cannot decode buffer msgpack bin: %w", err)
	}
	*b = *NewFromBytes(raw)
	return nil
}

// nonNilBytes avoids nil being encoded as a null value
// by the binary formats.
func (b *Buffer) nonNilBytes() []byte {
	if b.data == nil {
		return []byte{}
	}
	return b.data
}
