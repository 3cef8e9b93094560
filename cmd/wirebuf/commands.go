// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/ChainSafe/wirebuf/internal/layout"
	"github.com/ChainSafe/wirebuf/lib/common"
	"github.com/ChainSafe/wirebuf/pkg/buffer"
	"github.com/urfave/cli"
)

var (
	ErrArguments     = errors.New("wrong arguments")
	ErrMissingLayout = errors.New("layout flag is required")
	ErrUnknownAlgo   = errors.New("unknown hashing algorithm")
)

func encodeCommand(a *app) cli.Command {
	return cli.Command{
		Name:      "encode",
		Usage:     "Encode values with a layout and print the hex encoding",
		ArgsUsage: "<value>...",
		Flags:     []cli.Flag{LayoutFlag},
		Action:    a.encode,
	}
}

func decodeCommand(a *app) cli.Command {
	return cli.Command{
		Name:      "decode",
		Usage:     "Decode hex encoded bytes with a layout and print the values",
		ArgsUsage: "<hex>",
		Flags:     []cli.Flag{LayoutFlag, StrictFlag},
		Action:    a.decode,
	}
}

var varintCommand = cli.Command{
	Name:  "varint",
	Usage: "Encode or decode a single varint",
	Subcommands: []cli.Command{
		{
			Name:      "encode",
			Usage:     "Print the hex encoding of an unsigned integer",
			ArgsUsage: "<n>",
			Action:    varintEncode,
		},
		{
			Name:      "decode",
			Usage:     "Print the value and size of a hex encoded varint",
			ArgsUsage: "<hex>",
			Action:    varintDecode,
		},
	},
}

var hashCommand = cli.Command{
	Name:      "hash",
	Usage:     "Print the hash of hex encoded bytes",
	ArgsUsage: "<hex>",
	Flags:     []cli.Flag{AlgoFlag},
	Action:    hashAction,
}

func (a *app) encode(ctx *cli.Context) error {
	l, err := a.layoutFromFlag(ctx)
	if err != nil {
		return err
	}

	b, err := l.Encode([]string(ctx.Args()))
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(ctx.App.Writer, b.Hex())
	return err
}

func (a *app) decode(ctx *cli.Context) error {
	l, err := a.layoutFromFlag(ctx)
	if err != nil {
		return err
	}

	data, err := singleHexArgument(ctx)
	if err != nil {
		return err
	}

	b := buffer.NewFromBytes(data)
	values, err := l.Decode(b)
	if err != nil {
		return err
	}

	for _, value := range values {
		_, err = fmt.Fprintln(ctx.App.Writer, value)
		if err != nil {
			return err
		}
	}

	if b.Remaining() > 0 {
		if ctx.Bool(StrictFlag.Name) {
			return fmt.Errorf("%w: %d bytes left at offset %d",
				buffer.ErrTrailingBytes, b.Remaining(), b.Offset())
		}
		logger.Warnf("%d trailing bytes left at offset %d: %s",
			b.Remaining(), b.Offset(), common.BytesToHex(b.Unread()))
	}

	return nil
}

func varintEncode(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return fmt.Errorf("%w: expected 1 integer, got %d arguments", ErrArguments, ctx.NArg())
	}

	n, err := strconv.ParseUint(ctx.Args().First(), 0, 64)
	if err != nil {
		return fmt.Errorf("cannot parse integer: %w", err)
	}

	_, err = fmt.Fprintln(ctx.App.Writer, common.BytesToHex(buffer.AppendVarInt(nil, n)))
	return err
}

func varintDecode(ctx *cli.Context) error {
	data, err := singleHexArgument(ctx)
	if err != nil {
		return err
	}

	v, size, err := buffer.DecodeVarInt(data)
	if err != nil {
		return err
	}

	if size < len(data) {
		logger.Warnf("%d trailing bytes after varint", len(data)-size)
	}

	_, err = fmt.Fprintf(ctx.App.Writer, "%d (%d bytes)\n", v, size)
	return err
}

func hashAction(ctx *cli.Context) error {
	data, err := singleHexArgument(ctx)
	if err != nil {
		return err
	}

	var h common.Hash
	switch algo := ctx.String(AlgoFlag.Name); algo {
	case "blake2b":
		h, err = common.Blake2bHash(data)
	case "keccak256":
		h, err = common.Keccak256(data)
	case "sha256":
		h = common.Sha256(data)
	case "twox256":
		h, err = common.Twox256(data)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownAlgo, algo)
	}
	if err != nil {
		return fmt.Errorf("cannot hash: %w", err)
	}

	_, err = fmt.Fprintln(ctx.App.Writer, h.Hex())
	return err
}

func (a *app) layoutFromFlag(ctx *cli.Context) (layout.Layout, error) {
	s := ctx.String(LayoutFlag.Name)
	if s == "" {
		return nil, ErrMissingLayout
	}
	return a.config.resolveLayout(s)
}

func singleHexArgument(ctx *cli.Context) ([]byte, error) {
	if ctx.NArg() != 1 {
		return nil, fmt.Errorf("%w: expected 1 hex string, got %d arguments", ErrArguments, ctx.NArg())
	}
	return common.HexToBytes(ctx.Args().First())
}
