// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package help

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/yeetrun/optz/pkg/colors"
	"github.com/yeetrun/optz/pkg/optz"
)

// Formatter formats help as two columns: option usage and text.
type Formatter struct {
	// Usage styles usage lines. Defaults to colors.Usage.
	Usage func(string) string
}

const (
	usageIndent = "  "
	columnGap   = "  "
)

// Format returns the help text for entries. Each entry is preceded by an
// empty line. The text column holds the help, an empty line, and the
// description.
func (f *Formatter) Format(entries []Entry) string {
	style := f.Usage
	if style == nil {
		style = colors.Usage
	}

	width := 0
	for _, e := range entries {
		for _, u := range e.Meta.Usage {
			width = max(width, visibleWidth(u))
		}
	}

	var b strings.Builder
	for _, e := range entries {
		b.WriteString("\n")

		usage := e.Meta.Usage
		text := textLines(e.Meta)
		for i := range max(len(usage), len(text)) {
			var line strings.Builder
			line.WriteString(usageIndent)
			u := ""
			if i < len(usage) {
				u = usage[i]
				line.WriteString(style(u))
			}
			if i < len(text) && text[i] != "" {
				line.WriteString(strings.Repeat(" ", width-visibleWidth(u)))
				line.WriteString(columnGap)
				line.WriteString(text[i])
			}
			b.WriteString(strings.TrimRight(line.String(), " "))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func textLines(meta optz.CombinedMeta) []string {
	help := strings.TrimSpace(meta.Help)
	desc := strings.TrimSpace(meta.Description)

	var text string
	switch {
	case help != "" && desc != "":
		text = help + "\n\n" + desc
	case help != "":
		text = help
	default:
		text = desc
	}
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

var sgr = regexp.MustCompile("\x1b\\[[0-9;]*m")

// visibleWidth returns the width of s on a terminal, ignoring color escapes.
func visibleWidth(s string) int {
	return utf8.RuneCountInString(sgr.ReplaceAllString(s, ""))
}
