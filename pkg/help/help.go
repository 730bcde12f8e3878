// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package help implements a --help option reader printing the supported
// options.
package help

import (
	"cmp"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/yeetrun/optz/pkg/optz"
)

// Mode is the help verbosity.
type Mode int

const (
	// Detailed lists all supported options with their descriptions.
	Detailed Mode = iota
	// Brief lists options that have help text, without descriptions.
	Brief
)

// Entry is a supported option listed in help.
type Entry struct {
	Key  string
	Meta optz.CombinedMeta
}

// Config configures the help reader.
type Config[T any] struct {
	Mode Mode
	// Compare orders entries. Defaults to Compare.
	Compare func(a, b Entry) int
	// Display shows the entries. When nil, the entries are formatted with
	// Formatter and written to Out.
	Display func(entries []Entry, opt *optz.Option[T]) error
	// Out defaults to os.Stdout.
	Out io.Writer
}

// Reader returns a reader recognizing the option and displaying the
// supported options once it is recognized.
func Reader[T any](config Config[T]) optz.ReaderFunc[T] {
	compare := config.Compare
	if compare == nil {
		compare = Compare
	}
	display := config.Display
	if display == nil {
		display = func(entries []Entry, _ *optz.Option[T]) error {
			out := config.Out
			if out == nil {
				out = os.Stdout
			}
			_, err := fmt.Fprint(out, (&Formatter{}).Format(entries))
			return err
		}
	}

	return func(opt *optz.Option[T]) error {
		opt.Recognize(func() error {
			entries := Entries(opt, config.Mode)
			slices.SortStableFunc(entries, compare)
			return display(entries, opt)
		})
		return nil
	}
}

// Entries returns the supported options of opt in registration order.
// In Brief mode, options without help are skipped and descriptions dropped.
func Entries[T any](opt *optz.Option[T], mode Mode) []Entry {
	var entries []Entry
	for _, key := range opt.SupportedOptions() {
		meta := opt.OptionMeta(key)
		if mode == Brief {
			if meta.Help == "" {
				continue
			}
			meta.Description = ""
		}
		entries = append(entries, Entry{Key: key, Meta: meta})
	}
	return entries
}

// Compare orders entries by group, then by key. Entries without a group
// go last.
func Compare(a, b Entry) int {
	if c := compareGroups(a.Meta.Group, b.Meta.Group); c != 0 {
		return c
	}
	return cmp.Compare(a.Key, b.Key)
}

func compareGroups(a, b string) int {
	switch {
	case a == b:
		return 0
	case a == "":
		return 1
	case b == "":
		return -1
	}
	return cmp.Compare(a, b)
}
