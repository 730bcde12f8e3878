// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package optz

import (
	"context"
	"fmt"
	"slices"

	"tailscale.com/types/lazy"
)

// Option is the command line option passed to readers.
//
// Readers claim the option by calling Values, Rest or Recognize. Once a reader
// claimed it, the option is recognized: its claimed arguments can no longer
// change, and readers consulted afterwards observe them.
type Option[T any] struct {
	ctx    context.Context
	target T
	st     *state[T]
	reg    *registry[T]
	meta   *lazy.SyncValue[*metaIndex]
}

// Name returns the option name as it appears in the arguments, e.g. "--foo"
// for "--foo=bar".
func (o *Option[T]) Name() string { return o.st.name }

// Key returns the key the current reader is registered for. It is either
// the option name or a wildcard.
func (o *Option[T]) Key() string { return o.st.key }

// Args returns the command line arguments as seen by the current syntax.
// They may differ from the original ones, e.g. stacked one-letter options
// are split.
func (o *Option[T]) Args() []string { return slices.Clone(o.st.args) }

// ArgIndex returns the index of the option name within Args.
func (o *Option[T]) ArgIndex() int { return o.st.argIndex }

// Target returns the value passed to Parse. Readers fill it in.
func (o *Option[T]) Target() T { return o.target }

// Context returns the context of the parse.
func (o *Option[T]) Context() context.Context { return o.ctx }

// Values recognizes the option along with the values the syntax proposes
// for it, and returns them.
//
// If the option is already recognized, Values returns the values claimed
// by then.
func (o *Option[T]) Values() []string {
	o.st.recognize(nil)
	return o.st.take(false, 0, false)
}

// ValuesN is like Values, but claims at most max values. A negative max is
// treated as zero.
func (o *Option[T]) ValuesN(max int) []string {
	o.st.recognize(nil)
	return o.st.take(false, max, true)
}

// Rest recognizes the option along with all arguments following it,
// whether they look like options or not.
//
// If the option is already recognized, Rest returns the values claimed
// by then.
func (o *Option[T]) Rest() []string {
	o.st.recognize(nil)
	return o.st.take(true, 0, false)
}

// RestN is like Rest, but claims at most max arguments. A negative max is
// treated as zero.
func (o *Option[T]) RestN(max int) []string {
	o.st.recognize(nil)
	return o.st.take(true, max, true)
}

// Recognize recognizes the option, claiming at least its name. If action is
// non-nil, it is called once the option is known to be recognized. Actions of
// a reader that ends up deferring or unrecognizing the option never run.
func (o *Option[T]) Recognize(action func() error) {
	o.st.recognize(action)
}

// Defer drops whatever the current reader claimed and postpones its decision.
// If the option gets recognized by another reader, then is called with the
// recognized option. A nil then is a no-op.
//
// Several readers may defer. Their callbacks run in order.
func (o *Option[T]) Defer(then ReaderFunc[T]) {
	o.st.unrecognize(nil)
	o.st.deferTo(then)
}

// Unrecognize drops whatever the current reader claimed. It has no effect
// when another reader already recognized the option.
//
// A non-nil reason is returned from Parse if no reader recognizes the option.
// When several readers supply reasons, the first one wins.
func (o *Option[T]) Unrecognize(reason error) {
	o.st.unrecognize(reason)
}

// WhenRecognized registers fn to be called once the option is recognized,
// whichever reader recognizes it.
func (o *Option[T]) WhenRecognized(fn func(*Option[T])) {
	o.st.observe(func(opt *Option[T]) error {
		fn(opt)
		return nil
	})
}

// Location returns the location of the option within Args. A nil init.Index
// means the option's own index.
func (o *Option[T]) Location(init LocationInit) Location {
	if init.Index == nil {
		index := o.st.argIndex
		init.Index = &index
	}
	return NewLocation(o.st.args, init)
}

// Errorf returns an OptionError located at the option name.
func (o *Option[T]) Errorf(format string, args ...any) *OptionError {
	return &OptionError{
		Location: o.Location(LocationInit{}),
		Message:  fmt.Sprintf(format, args...),
	}
}

// SupportedOptions returns the keys of all options that are not hidden, in
// registration order. Aliases are reported under the option they alias.
func (o *Option[T]) SupportedOptions() []string {
	return supported(o.metaIndex())
}

// OptionMeta returns the combined meta of the option with the given key.
// Unsupported and hidden options have empty usage.
func (o *Option[T]) OptionMeta(key string) CombinedMeta {
	return lookupMeta(o.metaIndex(), key)
}

func (o *Option[T]) metaIndex() *metaIndex {
	return o.meta.Get(func() *metaIndex {
		return combineMeta(o.reg.bindings)
	})
}

func (o *Option[T]) unrecognizedError() error {
	return &OptionError{
		Location:   o.Location(LocationInit{}),
		Message:    fmt.Sprintf("%s: %q", DefaultErrorMessage, o.st.name),
		Suggestion: suggest(o.st.name, o.SupportedOptions()),
		Err:        ErrUnrecognized,
	}
}
