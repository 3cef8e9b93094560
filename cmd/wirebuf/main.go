// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"fmt"
	"os"

	"github.com/ChainSafe/wirebuf/internal/log"
	"github.com/urfave/cli"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "cmd"))

// app holds the state shared by the commands once
// the global flags are processed.
type app struct {
	config *Config
}

func newApp() *cli.App {
	a := &app{config: DefaultConfig()}

	cliApp := cli.NewApp()
	cliApp.Name = "wirebuf"
	cliApp.Usage = "Encode and decode binary records"
	cliApp.HideVersion = true
	cliApp.Flags = []cli.Flag{
		LogFlag,
		ConfigFlag,
	}
	cliApp.Before = a.setup
	cliApp.Commands = []cli.Command{
		encodeCommand(a),
		decodeCommand(a),
		varintCommand,
		hashCommand,
	}
	return cliApp
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads the configuration file if any and sets up the global
// logger, the --log flag taking precedence over the configuration.
func (a *app) setup(ctx *cli.Context) (err error) {
	if path := ctx.GlobalString(ConfigFlag.Name); path != "" {
		a.config, err = loadConfig(path)
		if err != nil {
			return err
		}
	}

	levelString := a.config.Log.Level
	if flagLevel := ctx.GlobalString(LogFlag.Name); flagLevel != "" {
		levelString = flagLevel
	}

	level, err := log.ParseLevel(levelString)
	if err != nil {
		return fmt.Errorf("cannot parse log level: %w", err)
	}

	writer := ctx.App.ErrWriter
	if writer == nil {
		writer = os.Stderr
	}

	log.Patch(
		log.SetWriter(writer),
		log.SetLevel(level),
	)

	logger.Debugf("log level set to %s", level)
	return nil
}
