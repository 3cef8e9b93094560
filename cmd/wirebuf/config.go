// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ChainSafe/wirebuf/internal/layout"
	"github.com/ChainSafe/wirebuf/internal/log"
	"github.com/go-playground/validator/v10"
	"github.com/naoina/toml"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the wirebuf TOML configuration.
type Config struct {
	Log LogConfig `toml:"log"`
	// Layouts maps layout names to layout definitions, so they
	// can be given by name to the --layout flag.
	Layouts map[string]string `toml:"layouts" validate:"dive,keys,required,endkeys,layout"`
}

// LogConfig is the logging configuration.
type LogConfig struct {
	Level string `toml:"level" validate:"omitempty,loglevel"`
}

// DefaultConfig returns the configuration used without a configuration file.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level: "info",
		},
		Layouts: map[string]string{},
	}
}

func newValidator() *validator.Validate {
	validate := validator.New()

	// These cannot fail since the tags and functions are non empty.
	_ = validate.RegisterValidation("layout", func(fl validator.FieldLevel) bool {
		_, err := layout.Parse(fl.Field().String())
		return err == nil
	})
	_ = validate.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		_, err := log.ParseLevel(fl.Field().String())
		return err == nil
	})

	return validate
}

// loadConfig reads the TOML file at path on top of the default
// configuration and validates the result.
func loadConfig(path string) (config *Config, err error) {
	path, err = filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve config path: %w", err)
	}

	/* #nosec */
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("cannot open config file: %w", err)
	}
	defer func() {
		closeErr := f.Close()
		if closeErr != nil {
			logger.Warnf("cannot close config file: %s", closeErr)
		}
	}()

	config = DefaultConfig()
	err = toml.NewDecoder(f).Decode(config)
	if err != nil {
		return nil, fmt.Errorf("cannot decode config file: %w", err)
	}

	err = newValidator().Struct(config)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return config, nil
}

// resolveLayout returns the layout named s in the configuration,
// or parses s as a layout definition.
func (c *Config) resolveLayout(s string) (layout.Layout, error) {
	if definition, ok := c.Layouts[s]; ok {
		logger.Debugf("using layout %s from configuration", s)
		s = definition
	}
	return layout.Parse(s)
}
