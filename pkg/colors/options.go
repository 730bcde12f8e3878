// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"

	"github.com/yeetrun/optz/pkg/optz"
	"tailscale.com/types/ptr"
)

// Group is the help group of the color options.
const Group = "tty:colors"

// Config configures the color options.
type Config[T any] struct {
	// Force applies the color level requested on the command line.
	// Defaults to forcing the level of Default().
	Force func(level Level, opt *optz.Option[T]) error
}

func (c Config[T]) force(level Level, opt *optz.Option[T]) error {
	if c.Force != nil {
		return c.Force(level, opt)
	}
	return Default().ForceLevel(level)
}

// Options returns the color options:
//
//	--color          enables basic colors
//	--color=MODE     enables colors as MODE requests, see ParseLevel
//	--no-color       disables colors
//	--no-colors      an alias of --no-color
func Options[T any](config Config[T]) optz.Set[T] {
	forceTo := func(level Level) optz.ReaderFunc[T] {
		return func(opt *optz.Option[T]) error {
			opt.Recognize(func() error {
				return config.force(level, opt)
			})
			return nil
		}
	}

	return optz.Set[T]{
		optz.BindMeta("--color", optz.Meta{
			Help:        "Force color terminal support",
			Group:       Group,
			Description: modeDescription(),
		}, forceTo(Basic)),
		optz.BindMeta("--color=*", optz.Meta{
			AliasOf: "--color",
			Usage:   []string{"--color=" + Param("MODE")},
		}, func(opt *optz.Option[T]) error {
			var mode string
			if values := opt.Values(); len(values) > 0 {
				mode = values[0]
			}
			level, ok := ParseLevel(mode)
			if !ok {
				return optz.NewOptionError(
					opt.Args(),
					optz.LocationInit{Index: ptr.To(opt.ArgIndex() + 1)},
					fmt.Sprintf("Unrecognized terminal color mode: %q", mode),
				)
			}
			return config.force(level, opt)
		}),
		optz.BindMeta("--no-color", optz.Meta{
			Help:  "Forcibly disable color terminal support",
			Group: Group,
		}, forceTo(None)),
		optz.BindMeta("--no-colors", optz.Meta{
			AliasOf: "--no-color",
		}, forceTo(None)),
	}
}

func modeDescription() string {
	b := Bullet()
	return fmt.Sprintf(`%s can be one of:

%s %s, %s, or %s - enable TrueColor support;
%s %s - enable 256 colors support;
%s %s, %s, or none - enable basic colors support;
%s %s, %s - disable colors.`,
		Param("MODE"),
		b, Usage("16m"), Usage("full"), Usage("truecolor"),
		b, Usage("256"),
		b, Usage("true"), Usage("always"),
		b, Usage("false"), Usage("never"),
	)
}
