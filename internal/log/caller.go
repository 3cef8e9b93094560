// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

type callerSettings struct {
	file *bool
	line *bool
	funC *bool
}

func (c *callerSettings) mergeWith(other callerSettings) {
	c.file = mergeBool(c.file, other.file)
	c.line = mergeBool(c.line, other.line)
	c.funC = mergeBool(c.funC, other.funC)
}

func mergeBool(current, other *bool) *bool {
	if other == nil {
		return current
	}
	value := *other
	return &value
}

func (c *callerSettings) setDefaults() {
	disabled := false
	if c.file == nil {
		c.file = &disabled
	}
	if c.line == nil {
		c.line = &disabled
	}
	if c.funC == nil {
		c.funC = &disabled
	}
}

func (c callerSettings) enabled() bool {
	return *c.file || *c.line || *c.funC
}

// callerString returns the caller information as file:Lline:function,
// where skip is the number of stack frames to ascend from the caller
// of callerString.
func (c callerSettings) callerString(skip int) (s string) {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return "unknown caller"
	}

	fields := make([]string, 0, 3)

	if *c.file {
		fields = append(fields, filepath.Base(file))
	}

	if *c.line {
		fields = append(fields, "L"+strconv.Itoa(line))
	}

	if *c.funC {
		details := runtime.FuncForPC(pc)
		if details != nil {
			funcName := strings.TrimLeft(filepath.Ext(details.Name()), ".")
			fields = append(fields, funcName)
		}
	}

	return strings.Join(fields, ":")
}
