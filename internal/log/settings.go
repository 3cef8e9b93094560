// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"io"
	"os"
)

type settings struct {
	writer  io.Writer
	level   *Level
	colour  *bool
	caller  callerSettings
	context []contextKeyValues
}

type contextKeyValues struct {
	key    string
	values []string
}

func newSettings(options []Option) (s settings) {
	for _, option := range options {
		option(&s)
	}
	return s
}

// mergeWith sets the values of other on s if they are set,
// and appends the context values of other to the ones of s.
func (s *settings) mergeWith(other settings) {
	if other.writer != nil {
		s.writer = other.writer
	}

	if other.level != nil {
		value := *other.level
		s.level = &value
	}

	if other.colour != nil {
		value := *other.colour
		s.colour = &value
	}

	s.caller.mergeWith(other.caller)

	context := make([]contextKeyValues, 0, len(s.context)+len(other.context))
	for _, kv := range s.context {
		context = append(context, contextKeyValues{
			key:    kv.key,
			values: append([]string(nil), kv.values...),
		})
	}
	for _, kv := range other.context {
		context = addContext(context, kv.key, kv.values...)
	}
	if len(context) > 0 {
		s.context = context
	}
}

func (s *settings) setDefaults() {
	if s.writer == nil {
		s.writer = os.Stdout
	}

	if s.level == nil {
		value := Info
		s.level = &value
	}

	if s.colour == nil {
		value := false
		s.colour = &value
	}

	s.caller.setDefaults()
}

func addContext(context []contextKeyValues, key string,
	values ...string) []contextKeyValues {
	for i := range context {
		if context[i].key == key {
			context[i].values = append(context[i].values, values...)
			return context
		}
	}
	return append(context, contextKeyValues{
		key:    key,
		values: append([]string(nil), values...),
	})
}
