// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package optz

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// DefaultErrorMessage is the message of an OptionError built without one.
const DefaultErrorMessage = "Unrecognized command line option"

var (
	// ErrUnrecognized is wrapped by the error returned when no reader
	// recognized an option.
	ErrUnrecognized = errors.New("unrecognized option")
	// ErrRetryLimit is wrapped by the error returned when the syntax requested
	// more argument replacements than Config.MaxRetries allows.
	ErrRetryLimit = errors.New("too many argument replacements")
)

// OptionError is returned when a command line option can not be recognized
// or has an invalid value.
type OptionError struct {
	Location   Location // The offending argument span.
	Message    string   // User-facing message.
	Suggestion string   // Supported option close to the offending one, if any.
	Err        error    // Underlying error, if any.
}

// NewOptionError returns an OptionError located at the span of args
// described by init. An empty message is replaced with DefaultErrorMessage.
func NewOptionError(args []string, init LocationInit, message string) *OptionError {
	if message == "" {
		message = DefaultErrorMessage
	}
	return &OptionError{
		Location: NewLocation(args, init),
		Message:  message,
	}
}

func (e *OptionError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%s (did you mean %q?)", e.Message, e.Suggestion)
	}
	return e.Message
}

func (e *OptionError) Unwrap() error {
	return e.Err
}

// suggest returns the supported option closest to name, or "" if none is
// close enough. Wildcard keys are never suggested.
func suggest(name string, supported []string) string {
	name = strings.TrimLeft(name, "-")
	if name == "" {
		return ""
	}

	var targets []string
	for _, key := range supported {
		if !isWildcard(key) {
			targets = append(targets, key)
		}
	}

	ranks := fuzzy.RankFindFold(name, targets)
	if len(ranks) == 0 {
		return ""
	}
	sort.Sort(ranks)
	return ranks[0].Target
}

func isWildcard(key string) bool {
	return strings.ContainsAny(key, "*?")
}
