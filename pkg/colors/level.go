// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors controls terminal color support and styles option help.
package colors

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// Level is a terminal color support level.
type Level int

const (
	None      Level = iota // No colors.
	Basic                  // 16 colors.
	Ansi256                // 256 colors.
	TrueColor              // 16 million colors.
)

func (l Level) String() string {
	switch l {
	case None:
		return "none"
	case Basic:
		return "basic"
	case Ansi256:
		return "256"
	case TrueColor:
		return "truecolor"
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

var levels = map[string]Level{
	"16m":       TrueColor,
	"full":      TrueColor,
	"truecolor": TrueColor,
	"256":       Ansi256,
	"true":      Basic,
	"always":    Basic,
	"false":     None,
	"never":     None,
}

// ParseLevel returns the level for a color mode as accepted by --color=MODE.
func ParseLevel(mode string) (Level, bool) {
	l, ok := levels[mode]
	return l, ok
}

var (
	isTerminalFn = term.IsTerminal
	getenv       = os.Getenv
)

// Auto detects the color level supported by stdout.
func Auto() Level {
	if getenv("NO_COLOR") != "" {
		return None
	}
	t := getenv("TERM")
	if t == "" || t == "dumb" {
		return None
	}
	if !isTerminalFn(int(os.Stdout.Fd())) {
		return None
	}
	switch ct := getenv("COLORTERM"); {
	case ct == "truecolor" || ct == "24bit":
		return TrueColor
	case strings.Contains(t, "256color"):
		return Ansi256
	}
	return Basic
}
