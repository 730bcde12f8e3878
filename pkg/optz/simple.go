// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package optz

import (
	"context"
	"sync"
)

// Recognized maps recognized option names to their values. Values of an
// option given several times accumulate.
type Recognized map[string][]string

// SimpleParser records the values of every recognized option.
type SimpleParser struct {
	parser *Parser[Recognized]
}

// SimpleConfig configures a SimpleParser.
type SimpleConfig = Config[Recognized]

// NewSimpleParser returns a parser recording recognized options.
// When config has no options, DefaultReaders are used.
func NewSimpleParser(config SimpleConfig) *SimpleParser {
	if len(config.Options) == 0 {
		config.Options = []Source[Recognized]{DefaultReaders()}
	}
	onOption := config.OnOption
	config.OnOption = func(opt *Option[Recognized]) {
		opt.WhenRecognized(record)
		if onOption != nil {
			onOption(opt)
		}
	}
	return &SimpleParser{parser: NewParser(config)}
}

func record(opt *Option[Recognized]) {
	rec := opt.Target()
	values := append(rec[opt.Name()], opt.Values()...)
	if values == nil {
		values = []string{}
	}
	rec[opt.Name()] = values
}

// Parse recognizes args and returns the recognized options.
func (p *SimpleParser) Parse(ctx context.Context, args []string) (Recognized, error) {
	return p.ParseWith(ctx, args, ParseOptions[Recognized]{})
}

// ParseString splits line using shell quoting rules and parses it.
func (p *SimpleParser) ParseString(ctx context.Context, line string) (Recognized, error) {
	return done(p.parser.ParseString(ctx, make(Recognized), line))
}

// ParseWith is like Parse, with per-call options.
func (p *SimpleParser) ParseWith(ctx context.Context, args []string, opts ParseOptions[Recognized]) (Recognized, error) {
	return done(p.parser.ParseWith(ctx, make(Recognized), args, opts))
}

func done(rec Recognized, err error) (Recognized, error) {
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// DefaultReaders returns hidden readers recognizing any option. Long and
// short options claim the values the syntax proposes; positional arguments
// claim none.
func DefaultReaders() Set[Recognized] {
	hidden := Meta{Hidden: true}
	values := func(opt *Option[Recognized]) error {
		opt.Values()
		return nil
	}
	return Set[Recognized]{
		BindMeta("--*", hidden, values),
		BindMeta("-*", hidden, values),
		BindMeta("*", hidden, func(opt *Option[Recognized]) error {
			opt.ValuesN(0)
			return nil
		}),
	}
}

var defaultSimpleParser = sync.OnceValue(func() *SimpleParser {
	return NewSimpleParser(SimpleConfig{})
})

// ParseArgs recognizes args with DefaultReaders.
func ParseArgs(ctx context.Context, args []string) (Recognized, error) {
	return defaultSimpleParser().Parse(ctx, args)
}
