// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package optz recognizes command line options with a set of readers keyed by
// option name or wildcard.
//
// The parser walks the arguments left to right. For every unconsumed argument
// it asks the configured syntax for candidate inputs, and offers each candidate
// to the readers registered for its key. A reader claims arguments by calling
// one of the recognition methods of the Option it receives. Parsing fails with
// an *OptionError when nobody claims an argument.
//
// # Basic Usage
//
// The simple parser records every recognized option along with its values:
//
//	parser := optz.NewSimpleParser(optz.Config[optz.Recognized]{
//	    Options: []optz.Source[optz.Recognized]{
//	        optz.Set[optz.Recognized]{
//	            optz.Bind("--output", func(opt *optz.Option[optz.Recognized]) error {
//	                opt.ValuesN(1)
//	                return nil
//	            }),
//	        },
//	    },
//	})
//	recognized, err := parser.Parse(ctx, os.Args[1:])
//
// # Custom Targets
//
// Parser is generic over the target the readers fill in:
//
//	type settings struct {
//	    Verbose bool
//	    Files   []string
//	}
//
//	parser := optz.NewParser(optz.Config[*settings]{
//	    Options: []optz.Source[*settings]{
//	        optz.Set[*settings]{
//	            optz.Bind("-v", func(opt *optz.Option[*settings]) error {
//	                opt.Recognize(func() error {
//	                    opt.Target().Verbose = true
//	                    return nil
//	                })
//	                return nil
//	            }),
//	            optz.Bind("*", func(opt *optz.Option[*settings]) error {
//	                opt.Target().Files = append(opt.Target().Files, opt.Name())
//	                opt.ValuesN(0)
//	                return nil
//	            }),
//	        },
//	    },
//	})
//	s, err := parser.Parse(ctx, &settings{}, os.Args[1:])
//
// # Option Syntax
//
// The default syntax supports:
//   - Long options: --name=VALUE, --name [VALUE...]
//   - Short options: -name=VALUE, -name [VALUE...], stacked one-letter flags -abc,
//     and one-letter options with inline values -nVALUE
//   - Anything else as a positional name followed by its values
//
// Readers may be registered for wildcard keys consulted when no exact reader
// recognized the option: "--*=*", "--*", "-*=*", "-?", "-*" and "*".
//
// # Multiple Readers
//
// Several readers may share one key. They are consulted in registration order
// until one of them recognizes the option. A reader may Defer its decision until
// another one recognized the option; once recognized, the option becomes read-only
// and later readers observe the arguments claimed by the first one.
package optz
