// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command optz recognizes command line options the way optz parsers do and
// prints what it finds.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"github.com/shayne/yargs"
	"github.com/yeetrun/optz/pkg/cli"
	"github.com/yeetrun/optz/pkg/colors"
	"github.com/yeetrun/optz/pkg/optz"
	"tailscale.com/types/logger"
)

type globalFlagsParsed struct {
	Verbose bool   `flag:"verbose" help:"Log recognition steps to stderr"`
	Config  string `flag:"config" help:"Config file (OPTZ_CONFIG)"`
}

func parseGlobalFlags(args []string) (globalFlagsParsed, []string, error) {
	result, err := yargs.ParseKnownFlags[globalFlagsParsed](args, yargs.KnownFlagsOptions{})
	if err != nil {
		return globalFlagsParsed{}, nil, err
	}
	return result.Flags, result.RemainingArgs, nil
}

// app holds the state shared by subcommand handlers.
type app struct {
	cfg    config
	flags  globalFlagsParsed
	stdout io.Writer
	// tail holds the arguments after "--". They are never interpreted as
	// optz flags.
	tail []string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		printCLIError(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	args, tail := splitArgs(args)
	flags, args, err := parseGlobalFlags(args)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(flags.Config)
	if err != nil {
		return err
	}
	level, err := cfg.colorLevel()
	if err != nil {
		return err
	}
	if err := colors.Default().ForceLevel(level); err != nil {
		return err
	}

	c := &app{cfg: cfg, flags: flags, stdout: stdout, tail: tail}
	handlers := map[string]yargs.SubcommandHandler{
		"parse":   c.handleParse,
		"syntax":  c.handleSyntax,
		"options": c.handleOptions,
	}
	return yargs.RunSubcommands(ctx, args, cli.HelpConfig(), globalFlagsParsed{}, handlers)
}

// splitArgs splits args at the first "--".
func splitArgs(args []string) (head, tail []string) {
	i := slices.Index(args, "--")
	if i < 0 {
		return args, nil
	}
	return args[:i], args[i+1:]
}

// logf returns the recognition trace logger.
func (c *app) logf() logger.Logf {
	if !c.flags.Verbose {
		return logger.Discard
	}
	return log.Printf
}

func printCLIError(w io.Writer, err error) {
	if err == nil {
		return
	}
	var optErr *optz.OptionError
	if errors.As(err, &optErr) {
		fmt.Fprintf(w, "Error: %v\n", optErr)
		fmt.Fprintf(w, "  at %s\n", optErr.Location)
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}
