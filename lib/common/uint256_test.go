// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package common

import (
	"encoding/binary"
	"encoding/json"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUint256FromBigInt(t *testing.T) {
	bytes := []byte{1, 2, 3, 4, 5, 6, 7, 8, 1, 2, 3, 4, 5, 6}
	bi := new(big.Int).SetBytes(bytes)
	u, err := NewUint256(bi)
	require.NoError(t, err)

	res := u.Bytes(binary.BigEndian)
	require.Len(t, res, Uint256Length)
	require.Equal(t, bytes, res[Uint256Length-len(bytes):])
	require.Equal(t, 0, bi.Cmp(u.Big()))
}

func TestUint256FromLEBytes(t *testing.T) {
	bytes := []byte{1, 2, 3, 4, 5, 6, 7, 8, 1, 2, 3, 4, 5, 6}
	u, err := NewUint256(bytes)
	require.NoError(t, err)

	res := u.Bytes()
	require.Len(t, res, Uint256Length)
	require.Equal(t, bytes, res[:len(bytes)])

	var array [Uint256Length]byte
	copy(array[:], bytes)
	require.Equal(t, array, u.LEBytes())
	require.Equal(t, u, Uint256FromLEBytes(array))
}

func TestUint256FromBEBytes(t *testing.T) {
	le, err := NewUint256([]byte{0x01, 0x02})
	require.NoError(t, err)
	be, err := NewUint256([]byte{0x02, 0x01}, binary.BigEndian)
	require.NoError(t, err)

	require.Equal(t, 0, le.Compare(be))
	require.Equal(t, uint64(0x0201), be.Uint64())
}

func TestNewUint256_Errors(t *testing.T) {
	t.Parallel()

	tooBig := new(big.Int).Lsh(big.NewInt(1), 256)

	testCases := map[string]struct {
		in         interface{}
		errWrapped error
		errMessage string
	}{
		"negative big int": {
			in:         big.NewInt(-1),
			errWrapped: ErrUint256Negative,
			errMessage: "value is negative: -1",
		},
		"big int overflow": {
			in:         tooBig,
			errWrapped: ErrUint256Overflow,
			errMessage: "value overflows 256 bits: " + tooBig.String(),
		},
		"too many bytes": {
			in:         make([]byte, 33),
			errWrapped: ErrUint256Overflow,
			errMessage: "value overflows 256 bits: 33 bytes",
		},
		"unsupported type": {
			in:         "1",
			errMessage: "unsupported type: string",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := NewUint256(testCase.in)

			require.Error(t, err)
			if testCase.errWrapped != nil {
				assert.ErrorIs(t, err, testCase.errWrapped)
			}
			assert.EqualError(t, err, testCase.errMessage)
		})
	}
}

func TestUint256_Compare(t *testing.T) {
	small := MustNewUint256(uint64(1))
	large := MustNewUint256(uint64(2))

	require.Equal(t, -1, small.Compare(large))
	require.Equal(t, 1, large.Compare(small))
	require.Equal(t, 0, small.Compare(small))
	require.Equal(t, 1, MaxUint256.Compare(large))
	require.True(t, Uint256{}.IsZero())
}

func TestUint256_JSON(t *testing.T) {
	u := MaxUint256
	encoded, err := json.Marshal(u)
	require.NoError(t, err)

	const max = "115792089237316195423570985008687907853269984665640564039457584007913129639935"
	require.Equal(t, max, string(encoded))

	var decoded Uint256
	err = json.Unmarshal(encoded, &decoded)
	require.NoError(t, err)
	require.Equal(t, u, decoded)

	err = decoded.UnmarshalJSON([]byte(`"x"`))
	require.EqualError(t, err, "failed to unmarshal Uint256")
}
