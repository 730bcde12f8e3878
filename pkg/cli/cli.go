// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli describes the optz commands and parses their flags.
package cli

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/shayne/yargs"
)

type FlagSpec struct {
	ConsumesValue bool
}

type CommandInfo struct {
	Name        string
	Description string
	Usage       string
	Examples    []string
	Hidden      bool
	Aliases     []string
}

// ParseFlags are the flags of the parse command.
type ParseFlags struct {
	Format string
	Line   string
	From   int
}

type parseFlagsParsed struct {
	Format string `flag:"format" short:"f" help:"Output format (json|yaml|text)"`
	Line   string `flag:"line" help:"Command line to split and recognize instead of ARGS"`
	From   int    `flag:"from" help:"Index of the first argument to recognize"`
}

type syntaxFlagsParsed struct{}

type optionsFlagsParsed struct {
	Brief bool `flag:"brief" help:"Only list options with help text"`
}

// OptionsFlags are the flags of the options command.
type OptionsFlags struct {
	Brief bool
}

var commandInfos = map[string]CommandInfo{
	"parse": {
		Name:        "parse",
		Description: "Recognize arguments and print the recognized options",
		Usage:       "[--format=json|yaml|text] [--line LINE] [--from N] [ARGS...] [-- ARGS...]",
		Examples: []string{
			"optz parse --name=value -abc file.txt",
			"optz parse -f json -- --help",
			"optz parse --from 1 cmd --x y",
		},
	},
	"syntax": {
		Name:        "syntax",
		Description: "Print the candidate inputs proposed for each argument",
		Usage:       "[ARGS...] [-- ARGS...]",
		Examples:    []string{"optz syntax -abc --x=1"},
	},
	"options": {
		Name:        "options",
		Description: "Print the supported options of the parse command",
		Usage:       "[--brief]",
	},
}

var flagSpecs = map[string]map[string]FlagSpec{
	"parse":   flagSpecsFromStruct(parseFlagsParsed{}),
	"syntax":  flagSpecsFromStruct(syntaxFlagsParsed{}),
	"options": flagSpecsFromStruct(optionsFlagsParsed{}),
}

// CommandNames returns the sorted command names.
func CommandNames() []string {
	names := make([]string, 0, len(commandInfos))
	for name := range commandInfos {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func CommandInfos() map[string]CommandInfo {
	return commandInfos
}

// HelpConfig returns the yargs help configuration of the optz command.
func HelpConfig() yargs.HelpConfig {
	subcommands := make(map[string]yargs.SubCommandInfo, len(commandInfos))
	for name, info := range commandInfos {
		subcommands[name] = toSubCommandInfo(name, info)
	}
	return yargs.HelpConfig{
		Command: yargs.CommandInfo{
			Name:        "optz",
			Description: "Recognize command line options and show how they are read",
			Examples: []string{
				"optz parse --name=value -abc file.txt",
				`optz parse --format json --line "--color=256 -v"`,
				"optz syntax -abc --x=1",
				"optz options --brief",
			},
		},
		SubCommands: subcommands,
	}
}

func toSubCommandInfo(name string, info CommandInfo) yargs.SubCommandInfo {
	return yargs.SubCommandInfo{
		Name:        name,
		Description: info.Description,
		Usage:       info.Usage,
		Examples:    info.Examples,
		Hidden:      info.Hidden,
		Aliases:     info.Aliases,
	}
}

// ParseParse parses the flags of the parse command. Arguments starting at
// the first flag the command does not know are returned as is.
func ParseParse(args []string) (ParseFlags, []string, error) {
	specs := flagSpecs["parse"]
	parseArgs, extraArgs := splitArgsForParsing(args, specs)
	parsed, err := parseFlags[parseFlagsParsed](parseArgs)
	if err != nil {
		return ParseFlags{}, nil, err
	}
	flags := ParseFlags{
		Format: parsed.Flags.Format,
		Line:   parsed.Flags.Line,
		From:   parsed.Flags.From,
	}
	argsOut := append(parsed.Args, extraArgs...)
	return flags, argsOut, nil
}

// ParseSyntax returns the arguments of the syntax command.
func ParseSyntax(args []string) ([]string, error) {
	specs := flagSpecs["syntax"]
	parseArgs, extraArgs := splitArgsForParsing(args, specs)
	parsed, err := parseFlags[syntaxFlagsParsed](parseArgs)
	if err != nil {
		return nil, err
	}
	return append(parsed.Args, extraArgs...), nil
}

func ParseOptions(args []string) (OptionsFlags, error) {
	parsed, err := parseFlags[optionsFlagsParsed](args)
	if err != nil {
		return OptionsFlags{}, err
	}
	if err := RequireArgsAtMost("options", parsed.Args, 0); err != nil {
		return OptionsFlags{}, err
	}
	return OptionsFlags{Brief: parsed.Flags.Brief}, nil
}

type parsedFlags[T any] struct {
	Flags  T
	Args   []string
	Parser *yargs.Parser
}

func parseFlags[T any](args []string) (parsedFlags[T], error) {
	result, err := yargs.ParseFlags[T](args)
	if err != nil {
		return parsedFlags[T]{}, err
	}
	argsOut := append([]string{}, result.Args...)
	if len(result.RemainingArgs) > 0 {
		argsOut = append(argsOut, result.RemainingArgs...)
	}
	return parsedFlags[T]{Flags: result.Flags, Args: argsOut, Parser: result.Parser}, nil
}

// splitArgsForParsing splits args before the first argument that is not a
// known flag of specs, or at "--" which is dropped.
func splitArgsForParsing(args []string, specs map[string]FlagSpec) ([]string, []string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			if i+1 < len(args) {
				return args[:i], args[i+1:]
			}
			return args[:i], nil
		}
		if strings.HasPrefix(arg, "--") && len(arg) > 2 {
			name, _, hasValue := strings.Cut(arg, "=")
			spec, ok := specs[name]
			if !ok {
				return args[:i], args[i:]
			}
			if spec.ConsumesValue && !hasValue {
				i++
			}
			continue
		}
		if strings.HasPrefix(arg, "-") && arg != "-" {
			if name, _, ok := strings.Cut(arg, "="); ok {
				if _, known := specs[name]; known {
					continue
				}
				return args[:i], args[i:]
			}
			if len(arg) == 2 {
				spec, ok := specs[arg]
				if !ok {
					return args[:i], args[i:]
				}
				if spec.ConsumesValue {
					i++
				}
				continue
			}
			// -fVALUE
			if _, ok := specs[arg[:2]]; !ok {
				return args[:i], args[i:]
			}
		}
	}
	return args, nil
}

func flagSpecsFromStruct(v any) map[string]FlagSpec {
	specs := make(map[string]FlagSpec)
	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return specs
	}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name := field.Tag.Get("flag")
		if name == "" {
			name = strings.ToLower(field.Name)
		}
		spec := FlagSpec{ConsumesValue: consumesValue(field.Type)}
		specs["--"+name] = spec
		if short := field.Tag.Get("short"); short != "" {
			specs["-"+short] = spec
		}
	}
	return specs
}

func consumesValue(t reflect.Type) bool {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Kind() != reflect.Bool
}

func RequireArgsAtMost(subcmd string, args []string, count int) error {
	if len(args) > count {
		return fmt.Errorf("'%s' accepts at most %d argument(s), got %d", subcmd, count, len(args))
	}
	return nil
}
