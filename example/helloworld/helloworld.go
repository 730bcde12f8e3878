// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/yeetrun/optz/pkg/colors"
	"github.com/yeetrun/optz/pkg/help"
	"github.com/yeetrun/optz/pkg/optz"
)

type settings struct {
	name     string
	times    int
	interval time.Duration
	shout    bool
	help     bool
}

func options() optz.Set[*settings] {
	name := func(opt *optz.Option[*settings]) error {
		values := opt.ValuesN(1)
		if len(values) == 0 {
			return opt.Errorf("%s requires a name", opt.Name())
		}
		opt.Target().name = values[0]
		return nil
	}
	return optz.Set[*settings]{
		optz.BindMeta("--name", optz.Meta{
			Usage: []string{"--name " + colors.Param("NAME")},
			Help:  "Who to greet",
		}, name),
		optz.BindMeta("-n", optz.Meta{AliasOf: "--name"}, name),
		optz.BindMeta("--times", optz.Meta{
			Usage: []string{"--times " + colors.Param("N")},
			Help:  "Greet N times",
		}, func(opt *optz.Option[*settings]) error {
			values := opt.ValuesN(1)
			if len(values) == 0 {
				return opt.Errorf("%s requires a number", opt.Name())
			}
			n, err := strconv.Atoi(values[0])
			if err != nil || n < 1 {
				return opt.Errorf("invalid number of greetings: %q", values[0])
			}
			opt.Target().times = n
			return nil
		}),
		optz.BindMeta("--every", optz.Meta{
			Usage: []string{"--every " + colors.Param("DURATION")},
			Help:  "Pause between greetings",
		}, func(opt *optz.Option[*settings]) error {
			values := opt.ValuesN(1)
			if len(values) == 0 {
				return opt.Errorf("%s requires a duration", opt.Name())
			}
			d, err := time.ParseDuration(values[0])
			if err != nil {
				return opt.Errorf("invalid duration: %q", values[0])
			}
			opt.Target().interval = d
			return nil
		}),
		optz.BindMeta("--shout", optz.Meta{Help: "Greet loudly"}, func(opt *optz.Option[*settings]) error {
			opt.Recognize(func() error {
				opt.Target().shout = true
				return nil
			})
			return nil
		}),
		optz.BindMeta("--help", optz.Meta{Help: "Show this help"}, func(opt *optz.Option[*settings]) error {
			opt.WhenRecognized(func(opt *optz.Option[*settings]) { opt.Target().help = true })
			return help.Reader(help.Config[*settings]{})(opt)
		}),
	}
}

func main() {
	parser := optz.NewParser(optz.Config[*settings]{
		Options: []optz.Source[*settings]{
			options(),
			colors.Options(colors.Config[*settings]{}),
		},
	})
	s, err := parser.Parse(context.Background(), &settings{name: "World", times: 1}, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if s.help {
		return
	}

	greeting := fmt.Sprintf("Hello, %s!", s.name)
	if s.shout {
		greeting = strings.ToUpper(greeting)
	}
	for i := range s.times {
		if i > 0 {
			time.Sleep(s.interval)
		}
		fmt.Println(greeting)
	}
}
