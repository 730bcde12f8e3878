// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"errors"
	"sync"

	"github.com/fatih/color"
	"tailscale.com/types/lazy"
)

// Backend renders styled text and controls the color level.
type Backend interface {
	// ForceLevel makes the backend use the given color level.
	ForceLevel(Level) error
	// Usage styles option usage, e.g. "--color".
	Usage(text string) string
	// Param styles an option parameter placeholder, e.g. "MODE".
	Param(text string) string
	// Bullet returns a list bullet.
	Bullet() string
}

// ErrBackendSet is returned by Use when the default backend was already
// replaced.
var ErrBackendSet = errors.New("default color backend already set")

var (
	mu       sync.Mutex
	replaced Backend

	builtin lazy.SyncValue[Backend]
)

// Default returns the process-wide backend. Unless replaced with Use, it is
// built on first use and renders with github.com/fatih/color.
func Default() Backend {
	mu.Lock()
	b := replaced
	mu.Unlock()
	if b != nil {
		return b
	}
	return builtin.Get(func() Backend {
		return newFatihBackend()
	})
}

// Use replaces the default backend. It may be called only once.
func Use(b Backend) error {
	if b == nil {
		return errors.New("nil color backend")
	}
	mu.Lock()
	defer mu.Unlock()
	if replaced != nil {
		return ErrBackendSet
	}
	replaced = b
	return nil
}

// Usage styles text with the default backend.
func Usage(text string) string { return Default().Usage(text) }

// Param styles text with the default backend.
func Param(text string) string { return Default().Param(text) }

// Bullet returns a bullet rendered by the default backend.
func Bullet() string { return Default().Bullet() }

type fatihBackend struct {
	usage  *color.Color
	param  *color.Color
	bullet *color.Color
}

func newFatihBackend() *fatihBackend {
	return &fatihBackend{
		usage:  color.New(color.FgGreen),
		param:  color.New(color.FgYellow, color.Italic),
		bullet: color.New(color.FgHiBlack),
	}
}

// ForceLevel toggles github.com/fatih/color globally. It does not
// distinguish color levels above Basic.
func (b *fatihBackend) ForceLevel(l Level) error {
	color.NoColor = l == None
	return nil
}

func (b *fatihBackend) Usage(text string) string { return b.usage.Sprint(text) }

func (b *fatihBackend) Param(text string) string { return b.param.Sprint(text) }

func (b *fatihBackend) Bullet() string { return b.bullet.Sprint("•") }
