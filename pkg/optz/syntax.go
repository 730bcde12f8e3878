// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package optz

import (
	"slices"
	"strings"
	"sync"
)

// Syntax converts the remaining command line arguments into candidate inputs,
// in priority order. args is never empty; args[0] is the argument to recognize.
//
// A Syntax returns nil when the argument has another syntax.
type Syntax func(args []string) []Input

// Syntaxes builds a syntax supporting all of the given ones, in order.
// Candidates equal to an earlier one are dropped.
func Syntaxes(syntaxes ...Syntax) Syntax {
	if len(syntaxes) == 1 {
		return syntaxes[0]
	}
	return func(args []string) []Input {
		var tried []Input
		for _, syntax := range syntaxes {
			for _, in := range syntax(args) {
				if slices.ContainsFunc(tried, in.Equal) {
					continue
				}
				tried = append(tried, in)
			}
		}
		return tried
	}
}

var defaultSyntax = sync.OnceValue(func() Syntax {
	return Syntaxes(LongOptions, ShortOptions, AnyOption)
})

// DefaultSyntax supports LongOptions, ShortOptions, and AnyOption as a fallback.
func DefaultSyntax() Syntax {
	return defaultSyntax()
}

// LongOptions is the long option syntax.
//
// It supports the following formats:
//   - --name=VALUE, with keys "--name=VALUE", "--name=*", "--name",
//     and fallbacks "--*=*" and "--*".
//   - --name [VALUE...], with key "--name" and fallback "--*".
func LongOptions(args []string) []Input {
	name := args[0]
	if !strings.HasPrefix(name, "--") {
		return nil
	}

	if eq := indexFrom(name, "=", 3); eq > 0 {
		value := name[eq+1:]
		values := []string{value}
		tail := args[1:]
		name = name[:eq]

		return []Input{
			{Key: name + "=" + value, Name: name, Values: values, Tail: tail},
			{Key: name + "=*", Name: name, Values: values, Tail: tail},
			{Name: name, Values: values, Tail: tail},
			{Key: "--*=*", Name: name, Values: values, Tail: tail},
			{Key: "--*", Name: name, Values: values, Tail: tail},
		}
	}

	values := ValuesOf(args, 1)
	tail := args[len(values)+1:]

	return []Input{
		{Name: name, Values: values, Tail: tail},
		{Key: "--*", Name: name, Values: values, Tail: tail},
	}
}

// ShortOptions is the short option syntax.
//
// It supports the following formats:
//   - -name=VALUE, with keys "-name=VALUE", "-name=*", "-name", and fallbacks
//     "-*=*", "-?" (one-letter names only), and "-*".
//   - -name [VALUE...], with key "-name".
//   - -n[m[o...]], with key "-n" for the first letter. The remaining letters
//     are recognized as the next argument.
//   - -nVALUE, with key "-n*".
//
// "-?" is a fallback for one-letter options, and "-*" is a generic one.
func ShortOptions(args []string) []Input {
	name := args[0]
	if len(name) < 2 || !strings.HasPrefix(name, "-") || strings.HasPrefix(name, "--") {
		return nil
	}

	if eq := indexFrom(name, "=", 2); eq > 0 {
		value := name[eq+1:]
		values := []string{value}
		tail := args[1:]
		name = name[:eq]

		result := []Input{
			{Key: name + "=" + value, Name: name, Values: values, Tail: tail},
			{Key: name + "=*", Name: name, Values: values, Tail: tail},
			{Name: name, Values: values, Tail: tail},
			{Key: "-*=*", Name: name, Values: values, Tail: tail},
		}
		if len(name) == 2 {
			result = append(result, Input{Key: "-?", Name: name, Values: values, Tail: tail})
		}
		return append(result, Input{Key: "-*", Name: name, Values: values, Tail: tail})
	}

	restArgs := args[1:]
	values := ValuesOf(restArgs, 0)
	tail := args[len(values)+1:]
	restLetters := name[2:]

	result := []Input{{Name: name, Values: values, Tail: tail}}

	if restLetters != "" {
		letter := name[:2]
		letterTail := append([]string{"-" + restLetters}, restArgs...)

		result = append(result,
			Input{Key: letter + "*", Name: letter, Values: []string{restLetters}, Tail: restArgs},
			Input{Name: letter, Tail: letterTail},
			Input{Key: "-?", Name: letter, Tail: letterTail},
		)
	} else {
		result = append(result, Input{Key: "-?", Name: name, Values: values, Tail: tail})
	}

	return append(result, Input{Key: "-*", Name: name, Values: values, Tail: tail})
}

// AnyOption treats the argument as a positional name followed by its values.
// It supports the name [VALUE...] format with key "name" and fallback "*".
func AnyOption(args []string) []Input {
	name := args[0]
	values := ValuesOf(args, 1)
	tail := args[len(values)+1:]

	return []Input{
		{Name: name, Values: values, Tail: tail},
		{Key: "*", Name: name, Values: values, Tail: tail},
	}
}

// indexFrom returns the index of the first sep in s at or after from, or -1.
func indexFrom(s, sep string, from int) int {
	if from >= len(s) {
		return -1
	}
	i := strings.Index(s[from:], sep)
	if i < 0 {
		return -1
	}
	return from + i
}
