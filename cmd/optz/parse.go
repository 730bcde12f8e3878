// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"text/tabwriter"

	"github.com/google/shlex"
	"github.com/yeetrun/optz/pkg/cli"
	"github.com/yeetrun/optz/pkg/colors"
	"github.com/yeetrun/optz/pkg/help"
	"github.com/yeetrun/optz/pkg/optz"
	"gopkg.in/yaml.v3"
)

func (c *app) handleParse(ctx context.Context, args []string) error {
	if len(args) > 0 && args[0] == "parse" {
		args = args[1:]
	}
	flags, input, err := cli.ParseParse(args)
	if err != nil {
		return err
	}

	format := c.cfg.Format
	if flags.Format != "" {
		if err := validateFormat(flags.Format); err != nil {
			return err
		}
		format = flags.Format
	}

	input = append(input, c.tail...)
	if flags.Line != "" {
		if len(input) > 0 {
			return fmt.Errorf("--line can not be combined with arguments")
		}
		input, err = shlex.Split(flags.Line)
		if err != nil {
			return fmt.Errorf("failed to split --line: %w", err)
		}
	}
	if flags.From < 0 || flags.From > len(input) {
		return fmt.Errorf("--from %d is out of range", flags.From)
	}

	rec, err := c.newParser(c.helpMode()).ParseWith(ctx, input, optz.ParseOptions[optz.Recognized]{
		FromIndex: flags.From,
	})
	if err != nil {
		return err
	}
	if _, ok := rec["--help"]; ok {
		return nil
	}
	return writeRecognized(c.stdout, format, rec)
}

func (c *app) handleOptions(ctx context.Context, args []string) error {
	if len(args) > 0 && args[0] == "options" {
		args = args[1:]
	}
	flags, err := cli.ParseOptions(args)
	if err != nil {
		return err
	}
	mode := c.helpMode()
	if flags.Brief {
		mode = help.Brief
	}
	_, err = c.newParser(mode).Parse(ctx, []string{"--help"})
	return err
}

func (c *app) helpMode() help.Mode {
	if c.cfg.Help == "brief" {
		return help.Brief
	}
	return help.Detailed
}

func (c *app) newParser(mode help.Mode) *optz.SimpleParser {
	return optz.NewSimpleParser(optz.SimpleConfig{
		Options:    c.readers(mode),
		Logf:       c.logf(),
		MaxRetries: c.cfg.MaxRetries,
	})
}

// readers returns the options recognized by the parse command.
func (c *app) readers(mode help.Mode) []optz.Source[optz.Recognized] {
	return []optz.Source[optz.Recognized]{
		optz.Set[optz.Recognized]{
			optz.BindMeta("--help", optz.Meta{
				Help: "Print the supported options",
			}, help.Reader(help.Config[optz.Recognized]{Mode: mode, Out: c.stdout})),
		},
		colors.Options(colors.Config[optz.Recognized]{}),
		optz.DefaultReaders(),
	}
}

func writeRecognized(w io.Writer, format string, rec optz.Recognized) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rec)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rec); err != nil {
			return err
		}
		return enc.Close()
	}

	names := make([]string, 0, len(rec))
	for name := range rec {
		names = append(names, name)
	}
	slices.Sort(names)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, name := range names {
		fmt.Fprintf(tw, "%s\t%s\n", name, quoteAll(rec[name]))
	}
	return tw.Flush()
}
