// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package optz

import (
	"slices"
	"strings"
)

// Input is one interpretation of the remaining command line arguments,
// produced by a Syntax and offered to the readers registered for its key.
type Input struct {
	// Name is the option name, placed at the current argument index.
	Name string
	// Key is used to find option readers. Defaults to Name when empty.
	Key string
	// Values are the arguments following the option that the syntax proposes
	// as its values.
	Values []string
	// Tail are the arguments following the values.
	Tail []string
	// Retry replaces the current arguments with Name, Values and Tail and
	// restarts the candidate search from the replaced arguments.
	Retry bool
}

// LookupKey returns the key to look option readers up by.
func (in Input) LookupKey() string {
	if in.Key == "" {
		return in.Name
	}
	return in.Key
}

// Equal reports whether in and other describe the same candidate.
// Retry is not compared.
func (in Input) Equal(other Input) bool {
	return in.Name == other.Name &&
		in.LookupKey() == other.LookupKey() &&
		slices.Equal(in.Values, other.Values) &&
		slices.Equal(in.Tail, other.Tail)
}

// ValuesOf returns the option values among args starting at index from.
// Values end at the first argument that looks like an option, i.e. starts with "-".
func ValuesOf(args []string, from int) []string {
	if from >= len(args) {
		return nil
	}
	end := from
	for end < len(args) && !strings.HasPrefix(args[end], "-") {
		end++
	}
	return args[from:end:end]
}
