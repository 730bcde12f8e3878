// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package optz

import "fmt"

// Location is a span of command line arguments containing an option.
//
// A Location built by NewLocation always satisfies
// 0 <= Index <= EndIndex <= len(Args). When Index == len(Args) the location
// points past the last argument and both offsets are zero.
type Location struct {
	// Args are the command line arguments containing the option.
	Args []string
	// Index of the first argument of the span.
	Index int
	// EndIndex is the index of the argument following the span.
	EndIndex int
	// Offset of the first relevant character within Args[Index].
	Offset int
	// EndOffset is the end offset of relevant characters within Args[EndIndex-1].
	EndOffset int
}

// LocationInit holds the initial properties of a Location.
// Nil fields take their defaults.
type LocationInit struct {
	// Index of the first argument. Defaults to 0, or to the option's own
	// index when passed to Option.Location.
	Index *int
	// EndIndex defaults to Index+1.
	EndIndex *int
	// Offset defaults to 0.
	Offset *int
	// EndOffset defaults to the length of Args[EndIndex-1].
	EndOffset *int
}

// NewLocation resolves init against args, clamping every property into range.
func NewLocation(args []string, init LocationInit) Location {
	index := max(deref(init.Index, 0), 0)
	if index >= len(args) {
		return Location{Args: args, Index: len(args), EndIndex: len(args)}
	}

	endIndex := clamp(deref(init.EndIndex, index+1), index+1, len(args))
	offset := clamp(deref(init.Offset, 0), 0, len(args[index]))

	lastLen := len(args[endIndex-1])
	endOffset := clamp(deref(init.EndOffset, lastLen), 0, lastLen)
	if index == endIndex-1 && endOffset < offset {
		endOffset = offset
	}

	return Location{
		Args:      args,
		Index:     index,
		EndIndex:  endIndex,
		Offset:    offset,
		EndOffset: endOffset,
	}
}

// PastEnd reports whether the location points after the last argument.
func (l Location) PastEnd() bool {
	return l.Index >= len(l.Args)
}

// Text returns the text covered by the location.
func (l Location) Text() string {
	if l.PastEnd() {
		return ""
	}
	if l.EndIndex-1 == l.Index {
		return l.Args[l.Index][l.Offset:l.EndOffset]
	}
	text := l.Args[l.Index][l.Offset:]
	for i := l.Index + 1; i < l.EndIndex-1; i++ {
		text += " " + l.Args[i]
	}
	return text + " " + l.Args[l.EndIndex-1][:l.EndOffset]
}

func (l Location) String() string {
	if l.PastEnd() {
		return fmt.Sprintf("end of arguments (arg %d)", l.Index)
	}
	if l.EndIndex-1 == l.Index {
		return fmt.Sprintf("arg %d %q", l.Index, l.Text())
	}
	return fmt.Sprintf("args %d-%d %q", l.Index, l.EndIndex-1, l.Text())
}

func deref(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
