// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"github.com/urfave/cli"
)

// Global flags
var (
	// LogFlag sets the log level, overriding the configuration file.
	LogFlag = cli.StringFlag{
		Name:  "log",
		Usage: "Log level. Supports levels crit (silent), eror, warn, info, dbug and trce (trace)",
	}
	// ConfigFlag is the path to the TOML configuration file.
	ConfigFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
)

// Command flags
var (
	// LayoutFlag is a layout definition or the name of a configured layout.
	LayoutFlag = cli.StringFlag{
		Name:  "layout",
		Usage: "Layout definition, eg. --layout=version:u32,script:varbytes, or name of a layout from the configuration file",
	}
	// StrictFlag makes decoding fail if bytes are left after the last field.
	StrictFlag = cli.BoolFlag{
		Name:  "strict",
		Usage: "Fail if bytes are left after decoding all fields",
	}
	// AlgoFlag is the hashing algorithm.
	AlgoFlag = cli.StringFlag{
		Name:  "algo",
		Usage: "Hashing algorithm: blake2b, keccak256, sha256 or twox256",
		Value: "blake2b",
	}
)
