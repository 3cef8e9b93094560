// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package common

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidHex is returned when a string cannot be decoded as hex.
var ErrInvalidHex = errors.New("invalid hex string")

// BytesToHex encodes the bytes as a lowercase hex string, without prefix.
func BytesToHex(in []byte) string {
	return hex.EncodeToString(in)
}

// HexToBytes decodes a hex string, optionally 0x prefixed, into bytes.
// Both lowercase and uppercase digits are accepted.
func HexToBytes(in string) ([]byte, error) {
	in = strings.TrimPrefix(in, "0x")
	out, err := hex.DecodeString(in)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidHex, err)
	}
	return out, nil
}

// MustHexToBytes decodes a hex string and panics on failure.
func MustHexToBytes(in string) []byte {
	out, err := HexToBytes(in)
	if err != nil {
		panic(err)
	}
	return out
}
