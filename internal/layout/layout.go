// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package layout describes binary records as a list of named fields,
// and encodes or decodes them using a buffer.
//
// A layout is written as comma separated name:kind pairs, for example
// "version:u32,inputs:varint,prev:hash,script:varbytes".
package layout

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ChainSafe/wirebuf/internal/log"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "layout"))

var (
	ErrMalformedField = errors.New("malformed field")
	ErrUnknownKind    = errors.New("unknown kind")
	ErrDuplicateName  = errors.New("duplicate field name")
)

// Kind is the wire type of a field.
type Kind uint8

const (
	U8 Kind = iota
	U16
	U32
	U64
	I8
	I16
	I32
	I64
	U256
	Hash
	VarInt
	VarBytes
	Bytes
	String
	Skip
	// U64OrHash is a block number or a block hash, prefixed with a tag byte.
	U64OrHash
)

var kindStrings = [...]string{
	U8:       "u8",
	U16:      "u16",
	U32:      "u32",
	U64:      "u64",
	I8:       "i8",
	I16:      "i16",
	I32:      "i32",
	I64:      "i64",
	U256:     "u256",
	Hash:     "hash",
	VarInt:   "varint",
	VarBytes: "varbytes",
	Bytes:    "bytes",
	String:   "string",
	Skip:     "skip",

	U64OrHash: "u64orhash",
}

var kindNames = func() map[string]Kind {
	names := make(map[string]Kind, len(kindStrings))
	for kind, name := range kindStrings {
		names[name] = Kind(kind)
	}
	return names
}()

func (k Kind) String() string {
	if int(k) >= len(kindStrings) {
		return "unknown"
	}
	return kindStrings[k]
}

func (k Kind) integer() bool { return k <= I64 }

func (k Kind) sized() bool { return k == Bytes || k == String || k == Skip }

// Field is a named field of a layout.
type Field struct {
	Name      string
	Kind      Kind
	BigEndian bool
	// Size is the number of bytes of bytes, string and skip fields.
	Size int
}

// TakesValue returns false for fields which do not carry a value,
// such as padding.
func (f Field) TakesValue() bool { return f.Kind != Skip }

// KindString returns the kind as written in a layout, such as u32be or bytes[4].
func (f Field) KindString() string {
	switch {
	case f.Kind.sized():
		return f.Kind.String() + "[" + strconv.Itoa(f.Size) + "]"
	case f.BigEndian:
		return f.Kind.String() + "be"
	default:
		return f.Kind.String()
	}
}

func (f Field) String() string {
	return f.Name + ":" + f.KindString()
}

// Layout is an ordered list of fields.
type Layout []Field

func (l Layout) String() string {
	fields := make([]string, len(l))
	for i, field := range l {
		fields[i] = field.String()
	}
	return strings.Join(fields, ",")
}

// Values returns the number of values needed to encode the layout.
func (l Layout) Values() (n int) {
	for _, field := range l {
		if field.TakesValue() {
			n++
		}
	}
	return n
}

// Parse parses a comma separated list of name:kind fields.
func Parse(s string) (layout Layout, err error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("%w: empty layout", ErrMalformedField)
	}

	parts := strings.Split(s, ",")
	layout = make(Layout, 0, len(parts))
	names := make(map[string]struct{}, len(parts))

	for i, part := range parts {
		field, err := parseField(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("field %d: %w", i, err)
		}

		if _, ok := names[field.Name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateName, field.Name)
		}
		names[field.Name] = struct{}{}

		layout = append(layout, field)
	}

	logger.Tracef("parsed layout %s", layout)
	return layout, nil
}

// MustParse parses a layout and panics on failure.
func MustParse(s string) Layout {
	layout, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return layout
}

func parseField(s string) (field Field, err error) {
	name, kind, ok := strings.Cut(s, ":")
	name = strings.TrimSpace(name)
	kind = strings.TrimSpace(kind)
	if !ok || name == "" || kind == "" {
		return field, fmt.Errorf("%w: %q is not name:kind", ErrMalformedField, s)
	}
	field.Name = name

	if open := strings.IndexByte(kind, '['); open >= 0 {
		return parseSizedField(field, kind, open)
	}

	if strings.HasSuffix(kind, "be") {
		k, ok := kindNames[strings.TrimSuffix(kind, "be")]
		if ok && k.integer() {
			field.Kind = k
			field.BigEndian = true
			return field, nil
		}
	}

	k, ok := kindNames[kind]
	if !ok || k.sized() {
		return field, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	field.Kind = k
	return field, nil
}

func parseSizedField(field Field, kind string, open int) (Field, error) {
	k, ok := kindNames[kind[:open]]
	if !ok || !k.sized() {
		return field, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}

	if !strings.HasSuffix(kind, "]") {
		return field, fmt.Errorf("%w: %s has no closing bracket", ErrMalformedField, kind)
	}

	size, err := strconv.Atoi(kind[open+1 : len(kind)-1])
	if err != nil || size < 0 {
		return field, fmt.Errorf("%w: %s has an invalid size", ErrMalformedField, kind)
	}

	field.Kind = k
	field.Size = size
	return field, nil
}
