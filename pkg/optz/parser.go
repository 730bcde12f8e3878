// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package optz

import (
	"context"
	"fmt"

	"github.com/google/shlex"
	"tailscale.com/types/lazy"
	"tailscale.com/types/logger"
)

// Config configures a Parser.
type Config[T any] struct {
	// Options are the supported options. Bindings of all sources are
	// consulted in order.
	Options []Source[T]
	// Syntax converts arguments into candidate inputs.
	// Defaults to DefaultSyntax.
	Syntax Syntax
	// OnOption, if non-nil, is called for every option before any reader
	// sees it.
	OnOption func(*Option[T])
	// Logf receives a trace of the parse. Defaults to logger.Discard.
	Logf logger.Logf
	// MaxRetries limits the number of argument replacements per option when
	// positive. Zero means no limit.
	MaxRetries int
}

// ParseOptions are per-call parse options.
type ParseOptions[T any] struct {
	// FromIndex is the index of the first argument to process. Arguments
	// before it are left as is.
	FromIndex int
	// Options are consulted after the ones of the parser's Config.
	Options []Source[T]
}

// Parser parses command line options into a target of type T.
// A Parser is safe for concurrent use when its readers are.
type Parser[T any] struct {
	config Config[T]
	syntax Syntax
	logf   logger.Logf
}

// NewParser returns a new Parser.
func NewParser[T any](config Config[T]) *Parser[T] {
	p := &Parser[T]{
		config: config,
		syntax: config.Syntax,
		logf:   config.Logf,
	}
	if p.syntax == nil {
		p.syntax = DefaultSyntax()
	}
	if p.logf == nil {
		p.logf = logger.Discard
	}
	return p
}

// Parse recognizes args with the configured readers and returns target.
// It stops at the first option that can not be recognized.
func (p *Parser[T]) Parse(ctx context.Context, target T, args []string) (T, error) {
	return p.ParseWith(ctx, target, args, ParseOptions[T]{})
}

// ParseString splits line into arguments using shell quoting rules, and
// parses them.
func (p *Parser[T]) ParseString(ctx context.Context, target T, line string) (T, error) {
	args, err := shlex.Split(line)
	if err != nil {
		return target, fmt.Errorf("failed to split command line: %w", err)
	}
	return p.Parse(ctx, target, args)
}

// ParseWith is like Parse, with per-call options.
func (p *Parser[T]) ParseWith(ctx context.Context, target T, args []string, opts ParseOptions[T]) (T, error) {
	reg := newRegistry(target, p.config.Options, opts.Options)
	meta := new(lazy.SyncValue[*metaIndex])

	for argIndex := max(opts.FromIndex, 0); argIndex < len(args); {
		if err := ctx.Err(); err != nil {
			return target, err
		}

		st := newState[T](args, argIndex)
		opt := &Option[T]{
			ctx:    ctx,
			target: target,
			st:     st,
			reg:    reg,
			meta:   meta,
		}
		if p.config.OnOption != nil {
			p.config.OnOption(opt)
		}

		var err error
		args, err = p.recognize(st, opt, reg)
		if err != nil {
			return target, err
		}

		next, err := st.done(opt)
		if err != nil {
			p.logf("optz: %s: %v", opt.Location(LocationInit{}), err)
			return target, err
		}
		p.logf("optz: %q recognized as %q with %q", st.name, st.key, st.claimed)
		argIndex = next
	}

	return target, nil
}

// recognize offers the candidate inputs for the current argument to the
// readers, until one of them recognizes the option. It returns the arguments
// as replaced by the candidates.
func (p *Parser[T]) recognize(st *state[T], opt *Option[T], reg *registry[T]) ([]string, error) {
	args := st.args
	for retries := 0; ; retries++ {
		if p.config.MaxRetries > 0 && retries > p.config.MaxRetries {
			return args, &OptionError{
				Location: opt.Location(LocationInit{}),
				Message:  fmt.Sprintf("Too many replacements of command line option: %q", st.name),
				Err:      ErrRetryLimit,
			}
		}

		retry := false
		for _, in := range p.syntax(st.tail()) {
			args = st.setInput(in)
			if in.Retry {
				p.logf("optz: arguments replaced with %q", st.tail())
				retry = true
				break
			}

			readers := reg.lookup(st.key)
			p.logf("optz: trying %q as %q (%d readers)", st.name, st.key, len(readers))
			for _, r := range readers {
				if err := st.read(opt, r); err != nil {
					return args, err
				}
			}
			if st.isRecognized() {
				return args, nil
			}
		}
		if !retry {
			return args, nil
		}
	}
}
