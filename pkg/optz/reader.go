// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package optz

import "tailscale.com/util/mak"

// Reader reads a command line option.
//
// Read calls the recognition methods of opt to claim the option. Returning
// without calling any of them leaves the option to other readers. A non-nil
// error aborts parsing and is returned from Parse as is.
type Reader[T any] interface {
	Read(opt *Option[T]) error
}

// ReaderFunc adapts a function to the Reader interface.
type ReaderFunc[T any] func(opt *Option[T]) error

func (f ReaderFunc[T]) Read(opt *Option[T]) error {
	return f(opt)
}

// Binding registers a reader for an option key.
type Binding[T any] struct {
	// Key is the option name, or one of the wildcard keys: "--*=*", "--*",
	// "-*=*", "-?", "-*", "*".
	Key    string
	Reader Reader[T]
	// Meta describes the option for help output. Optional.
	Meta *Meta
}

// Bind returns a binding of fn to key.
func Bind[T any](key string, fn ReaderFunc[T]) Binding[T] {
	return Binding[T]{Key: key, Reader: fn}
}

// BindMeta returns a binding of fn to key, described by meta.
func BindMeta[T any](key string, meta Meta, fn ReaderFunc[T]) Binding[T] {
	return Binding[T]{Key: key, Reader: fn, Meta: &meta}
}

// Source supplies option bindings for a parse.
type Source[T any] interface {
	// Bindings returns the bindings to use for target. It is called once
	// per parse.
	Bindings(target T) []Binding[T]
}

// Set is an ordered list of bindings.
type Set[T any] []Binding[T]

func (s Set[T]) Bindings(T) []Binding[T] {
	return s
}

// Provider builds bindings for the parse target.
type Provider[T any] func(target T) Set[T]

func (p Provider[T]) Bindings(target T) []Binding[T] {
	return p(target)
}

// registry holds the bindings of one parse.
type registry[T any] struct {
	bindings []Binding[T]
	readers  map[string][]Reader[T]
}

func newRegistry[T any](target T, sources ...[]Source[T]) *registry[T] {
	r := &registry[T]{}
	for _, list := range sources {
		for _, src := range list {
			if src == nil {
				continue
			}
			for _, b := range src.Bindings(target) {
				if b.Reader == nil {
					continue
				}
				if fn, ok := b.Reader.(ReaderFunc[T]); ok && fn == nil {
					continue
				}
				r.bindings = append(r.bindings, b)
				mak.Set(&r.readers, b.Key, append(r.readers[b.Key], b.Reader))
			}
		}
	}
	return r
}

// lookup returns the readers for key, in registration order.
func (r *registry[T]) lookup(key string) []Reader[T] {
	return r.readers[key]
}
