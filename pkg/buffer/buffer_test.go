// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package buffer

import (
	"testing"

	"github.com/ChainSafe/wirebuf/lib/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewFromBytes(t *testing.T) {
	t.Parallel()

	data := []byte{1, 2, 3}
	b := NewFromBytes(data)

	assert.Equal(t, 0, b.Offset())
	assert.Equal(t, 3, b.Len())
	assert.Equal(t, 3, b.Remaining())

	data[0] = 9
	assert.Equal(t, byte(9), b.Bytes()[0], "buffer must own the given slice")
}

func Test_NewFromSlice(t *testing.T) {
	t.Parallel()

	data := []byte{1, 2, 3}
	b := NewFromSlice(data)

	data[0] = 9
	assert.Equal(t, []byte{1, 2, 3}, b.Bytes(), "buffer must copy the given slice")
}

func Test_Buffer_Equal(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		a     *Buffer
		b     *Buffer
		equal bool
	}{
		"both empty": {
			a:     New(),
			b:     NewFromBytes([]byte{}),
			equal: true,
		},
		"same bytes": {
			a:     NewFromBytes([]byte{1, 2}),
			b:     NewFromSlice([]byte{1, 2}),
			equal: true,
		},
		"different bytes": {
			a: NewFromBytes([]byte{1, 2}),
			b: NewFromBytes([]byte{1, 3}),
		},
		"same bytes different offsets": {
			a: NewFromBytes([]byte{1, 2}),
			b: &Buffer{data: []byte{1, 2}, offset: 1},
		},
		"nil and non nil": {
			a: nil,
			b: New(),
		},
		"both nil": {
			equal: true,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.equal, testCase.a.Equal(testCase.b))
		})
	}
}

func Test_Buffer_Hex(t *testing.T) {
	t.Parallel()

	b := New()
	b.WriteU32(123456789)

	assert.Equal(t, "15cd5b07", b.Hex())
	assert.Equal(t, "15cd5b07", b.Hex(), "hex must not consume the buffer")
	assert.Equal(t, "Offset: 0, Buffer: 15cd5b07", b.String())

	assert.Equal(t, "15cd5b07", b.IntoHex())
	assert.Zero(t, b.Len())
	assert.Equal(t, "", b.Hex())
}

func Test_FromHex(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		s          string
		buffer     *Buffer
		errWrapped error
		errMessage string
	}{
		"lowercase": {
			s:      "ff00",
			buffer: NewFromBytes([]byte{0xff, 0x00}),
		},
		"uppercase": {
			s:      "FF00",
			buffer: NewFromBytes([]byte{0xff, 0x00}),
		},
		"empty": {
			buffer: NewFromBytes([]byte{}),
		},
		"odd length": {
			s:          "ff0",
			errWrapped: common.ErrInvalidHex,
			errMessage: "invalid hex string: encoding/hex: odd length hex string",
		},
		"non hex digit": {
			s:          "fg00",
			errWrapped: common.ErrInvalidHex,
			errMessage: "invalid hex string: encoding/hex: invalid byte: U+0067 'g'",
		},
		"prefixed": {
			s:          "0xff",
			errWrapped: common.ErrInvalidHex,
			errMessage: "invalid hex string: encoding/hex: invalid byte: U+0078 'x'",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			b, err := FromHex(testCase.s)

			assert.ErrorIs(t, err, testCase.errWrapped)
			if testCase.errWrapped != nil {
				assert.EqualError(t, err, testCase.errMessage)
				assert.Nil(t, b)
				return
			}
			assert.True(t, testCase.buffer.Equal(b))
		})
	}
}

func Test_Buffer_HexRoundTrip(t *testing.T) {
	t.Parallel()

	b, err := FromHex("ff00")
	require.NoError(t, err)
	assert.Equal(t, "ff00", b.Hex())
}

func Test_Buffer_BytesAliasing(t *testing.T) {
	t.Parallel()

	b := New()
	b.WriteU32(0) // reserved checksum
	b.WriteString("payload")

	copy(b.Bytes()[:4], []byte{0xde, 0xad, 0xbe, 0xef})

	value, err := b.ReadU32BE()
	require.NoError(t, err)
	assert.Equal(t, uint32(0xdeadbeef), value)

	vec := b.ToVec()
	vec[0] = 0
	assert.Equal(t, byte(0xde), b.Bytes()[0], "ToVec must return a copy")
}

func Test_Buffer_Unread(t *testing.T) {
	t.Parallel()

	outer := New()
	outer.WriteU8(1)
	outer.WriteVarBytes([]byte{2, 3})

	_, err := outer.ReadU8()
	require.NoError(t, err)

	inner := NewFromBytes(outer.Unread())
	payload, err := inner.ReadVarBytes()
	require.NoError(t, err)
	assert.Equal(t, []byte{2, 3}, payload)
}
