// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package common

import (
	"crypto/sha256"
	"encoding/binary"
	"hash"

	"github.com/OneOfOne/xxhash"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

func sum(h hash.Hash, in []byte) (Hash, error) {
	_, err := h.Write(in)
	if err != nil {
		return Hash{}, err
	}
	return NewHash(h.Sum(nil)), nil
}

// Blake2bHash returns the 256-bit blake2b hash of the input data
func Blake2bHash(in []byte) (Hash, error) {
	h, err := blake2b.New256(nil)
	if err != nil {
		return Hash{}, err
	}
	return sum(h, in)
}

// MustBlake2bHash returns the 256-bit blake2b hash of the input data. It panics if it fails to hash.
func MustBlake2bHash(in []byte) Hash {
	h, err := Blake2bHash(in)
	if err != nil {
		panic(err)
	}

	return h
}

// Keccak256 returns the keccak256 hash of the input data
func Keccak256(in []byte) (Hash, error) {
	return sum(sha3.NewLegacyKeccak256(), in)
}

// Twox256 returns the twox256 hash of the input data: four xxHash64
// digests seeded 0 to 3, each little endian, concatenated.
func Twox256(in []byte) (Hash, error) {
	var out Hash
	for seed := uint64(0); seed < 4; seed++ {
		h := xxhash.NewS64(seed)
		_, err := h.Write(in)
		if err != nil {
			return Hash{}, err
		}
		binary.LittleEndian.PutUint64(out[seed*8:], h.Sum64())
	}
	return out, nil
}

// Sha256 returns the SHA2-256 hash of the input data
func Sha256(in []byte) Hash {
	return Hash(sha256.Sum256(in))
}
