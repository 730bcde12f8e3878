// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseParseFlagsAndArgs(t *testing.T) {
	args := []string{
		"--format", "yaml",
		"--from", "2",
		"cmd", "sub",
		"--name=value", "-abc", "--format", "x",
	}

	flags, outArgs, err := ParseParse(args)
	if err != nil {
		t.Fatalf("ParseParse failed: %v", err)
	}
	if flags.Format != "yaml" {
		t.Errorf("Format = %q, want %q", flags.Format, "yaml")
	}
	if flags.From != 2 {
		t.Errorf("From = %d, want %d", flags.From, 2)
	}
	want := []string{"cmd", "sub", "--name=value", "-abc", "--format", "x"}
	if !reflect.DeepEqual(outArgs, want) {
		t.Errorf("args = %q, want %q", outArgs, want)
	}
}

func TestParseParseShortFormat(t *testing.T) {
	flags, outArgs, err := ParseParse([]string{"-f", "json", "-x"})
	if err != nil {
		t.Fatalf("ParseParse failed: %v", err)
	}
	if flags.Format != "json" {
		t.Errorf("Format = %q, want %q", flags.Format, "json")
	}
	if got := strings.Join(outArgs, " "); got != "-x" {
		t.Errorf("args = %q, want %q", got, "-x")
	}
}

func TestParseParseLine(t *testing.T) {
	flags, outArgs, err := ParseParse([]string{"--line=--msg 'hi there'"})
	if err != nil {
		t.Fatalf("ParseParse failed: %v", err)
	}
	if flags.Line != "--msg 'hi there'" {
		t.Errorf("Line = %q, want %q", flags.Line, "--msg 'hi there'")
	}
	if len(outArgs) != 0 {
		t.Errorf("args = %q, want none", outArgs)
	}
}

func TestParseSyntax(t *testing.T) {
	args, err := ParseSyntax([]string{"a", "-abc", "--x=1"})
	if err != nil {
		t.Fatalf("ParseSyntax failed: %v", err)
	}
	want := []string{"a", "-abc", "--x=1"}
	if !reflect.DeepEqual(args, want) {
		t.Errorf("args = %q, want %q", args, want)
	}
}

func TestParseOptions(t *testing.T) {
	flags, err := ParseOptions([]string{"--brief"})
	if err != nil {
		t.Fatalf("ParseOptions failed: %v", err)
	}
	if !flags.Brief {
		t.Errorf("Brief = false, want true")
	}
	if _, err := ParseOptions([]string{"extra"}); err == nil {
		t.Errorf("ParseOptions with args: error = nil")
	}
}

func TestSplitArgsForParsing(t *testing.T) {
	specs := map[string]FlagSpec{
		"--format": {ConsumesValue: true},
		"-f":       {ConsumesValue: true},
		"--brief":  {},
	}
	tests := []struct {
		name       string
		args       []string
		head, tail []string
	}{
		{"all known", []string{"--format", "json", "--brief", "a"}, []string{"--format", "json", "--brief", "a"}, nil},
		{"inline value", []string{"--format=json", "--x"}, []string{"--format=json"}, []string{"--x"}},
		{"unknown long", []string{"a", "--x", "--brief"}, []string{"a"}, []string{"--x", "--brief"}},
		{"unknown short", []string{"-x", "--brief"}, []string{}, []string{"-x", "--brief"}},
		{"short with value", []string{"-f", "yaml", "-z"}, []string{"-f", "yaml"}, []string{"-z"}},
		{"short stacked", []string{"-abc"}, []string{}, []string{"-abc"}},
		{"double dash", []string{"--brief", "--", "--format"}, []string{"--brief"}, []string{"--format"}},
		{"trailing double dash", []string{"a", "--"}, []string{"a"}, nil},
		{"stdin", []string{"-", "b"}, []string{"-", "b"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			head, tail := splitArgsForParsing(tt.args, specs)
			if !reflect.DeepEqual(head, tt.head) {
				t.Errorf("head = %q, want %q", head, tt.head)
			}
			if !reflect.DeepEqual(tail, tt.tail) {
				t.Errorf("tail = %q, want %q", tail, tt.tail)
			}
		})
	}
}

func TestHelpConfig(t *testing.T) {
	cfg := HelpConfig()
	if cfg.Command.Name != "optz" {
		t.Errorf("Command.Name = %q, want optz", cfg.Command.Name)
	}
	for _, name := range CommandNames() {
		info, ok := cfg.SubCommands[name]
		if !ok {
			t.Errorf("SubCommands missing %q", name)
			continue
		}
		if info.Description == "" {
			t.Errorf("SubCommands[%q] has no description", name)
		}
	}
	if got, want := CommandNames(), []string{"options", "parse", "syntax"}; !reflect.DeepEqual(got, want) {
		t.Errorf("CommandNames() = %q, want %q", got, want)
	}
}

func TestFlagSpecsFromStruct(t *testing.T) {
	got := flagSpecsFromStruct(parseFlagsParsed{})
	want := map[string]FlagSpec{
		"--format": {ConsumesValue: true},
		"-f":       {ConsumesValue: true},
		"--line":   {ConsumesValue: true},
		"--from":   {ConsumesValue: true},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("flagSpecsFromStruct() = %v, want %v", got, want)
	}
	if got := flagSpecsFromStruct(optionsFlagsParsed{}); got["--brief"].ConsumesValue {
		t.Errorf("--brief consumes a value")
	}
}
