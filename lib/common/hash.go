// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package common

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	// HashLength is the expected length of the common.Hash type
	HashLength = 32
)

// ErrInvalidHashLength is returned when decoding a hash from
// a byte sequence which is not exactly 32 bytes long.
var ErrInvalidHashLength = errors.New("invalid hash length")

// EmptyHash is the zero value hash.
var EmptyHash = Hash{}

// Hash is a fixed size 32 bytes value, typically the output of a
// 256-bit hashing function.
type Hash [HashLength]byte

// NewHash casts a byte slice to a Hash.
// If the input is longer than 32 bytes, it takes the first 32 bytes.
func NewHash(in []byte) (res Hash) {
	copy(res[:], in)
	return res
}

// HashFromArray converts a 32 bytes array to a Hash.
func HashFromArray(array [HashLength]byte) Hash {
	return Hash(array)
}

// BytesToHash sets b to hash.
// If b is larger than len(h), b will be cropped from the left.
func BytesToHash(b []byte) Hash {
	var h Hash
	h.SetBytes(b)
	return h
}

// ToArray returns the hash as a 32 bytes array.
func (h Hash) ToArray() [HashLength]byte {
	return [HashLength]byte(h)
}

// Bytes returns a copy of the hash bytes as a slice.
func (h Hash) Bytes() []byte {
	b := [HashLength]byte(h)
	return b[:]
}

// IsEmpty returns true if the hash is empty, false otherwise.
func (h Hash) IsEmpty() bool {
	return h == EmptyHash
}

// Equal compares two hashes byte by byte.
func (h Hash) Equal(other Hash) bool {
	return bytes.Equal(h[:], other[:])
}

// Hex returns the lowercase hex string of the hash, without prefix.
func (h Hash) Hex() string {
	return BytesToHex(h[:])
}

// String returns the hex string for the hash.
func (h Hash) String() string {
	return h.Hex()
}

// Short returns the first 4 bytes and the last 4 bytes of the hex string for the hash
func (h Hash) Short() string {
	const nBytes = 4
	return fmt.Sprintf("%x...%x", h[:nBytes], h[len(h)-nBytes:])
}

// SetBytes sets the hash to the value of b.
// If b is larger than len(h), b will be cropped from the left.
func (h *Hash) SetBytes(b []byte) {
	if len(b) > len(h) {
		b = b[len(b)-HashLength:]
	}

	copy(h[HashLength-len(b):], b)
}

// HexToHash turns a hex string, optionally 0x prefixed, into a Hash.
// The decoded value must be exactly 32 bytes long.
func HexToHash(in string) (Hash, error) {
	out, err := HexToBytes(in)
	if err != nil {
		return Hash{}, err
	}
	return hashFromSlice(out)
}

// MustHexToHash turns a hex string into a Hash
// and panics if it cannot do so.
func MustHexToHash(in string) Hash {
	h, err := HexToHash(in)
	if err != nil {
		panic(err)
	}
	return h
}

func hashFromSlice(b []byte) (h Hash, err error) {
	if len(b) != HashLength {
		return Hash{}, fmt.Errorf("%w: expected %d bytes but got %d",
			ErrInvalidHashLength, HashLength, len(b))
	}
	copy(h[:], b)
	return h, nil
}

// MarshalText encodes the hash as lowercase hex text.
func (h Hash) MarshalText() ([]byte, error) {
	return []byte(h.Hex()), nil
}

// UnmarshalText decodes hex text into the hash.
func (h *Hash) UnmarshalText(text []byte) error {
	decoded, err := HexToHash(string(text))
	if err != nil {
		return err
	}
	*h = decoded
	return nil
}

// MarshalJSON converts hash to a hex JSON string.
func (h Hash) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.Hex())
}

// UnmarshalJSON converts a hex JSON string to hash.
func (h *Hash) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid hash format: %w", err)
	}
	return h.UnmarshalText([]byte(s))
}

// MarshalBinary returns the raw 32 bytes of the hash.
func (h Hash) MarshalBinary() ([]byte, error) {
	return h.Bytes(), nil
}

// UnmarshalBinary sets the hash from exactly 32 raw bytes.
func (h *Hash) UnmarshalBinary(data []byte) error {
	decoded, err := hashFromSlice(data)
	if err != nil {
		return err
	}
	*h = decoded
	return nil
}

// MarshalCBOR encodes the hash as a CBOR byte string.
func (h Hash) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(h[:])
}

// UnmarshalCBOR decodes a CBOR byte string of 32 bytes into the hash.
func (h *Hash) UnmarshalCBOR(data []byte) error {
	var raw []byte
	if err := cbor.Unmarshal(data, &raw); err != nil {
		return err
	}
	return h.UnmarshalBinary(raw)
}

// EncodeMsgpack encodes the hash as a msgpack bin value.
func (h Hash) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeBytes(h[:])
}

// DecodeMsgpack decodes a msgpack bin value of 32 bytes into the hash.
func (h *Hash) DecodeMsgpack(dec *msgpack.Decoder) error {
	raw, err := dec.DecodeBytes()
	if err != nil {
		return err
	}
	return h.UnmarshalBinary(raw)
}
