// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/yeetrun/optz/pkg/cli"
	"github.com/yeetrun/optz/pkg/optz"
)

func (c *app) handleSyntax(_ context.Context, args []string) error {
	if len(args) > 0 && args[0] == "syntax" {
		args = args[1:]
	}
	args, err := cli.ParseSyntax(args)
	if err != nil {
		return err
	}
	return writeCandidates(c.stdout, optz.DefaultSyntax(), append(args, c.tail...))
}

// writeCandidates prints, for every argument, the inputs syntax proposes
// when recognition reaches it.
func writeCandidates(w io.Writer, syntax optz.Syntax, args []string) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ARG\tNAME\tKEY\tVALUES\tTAIL\tRETRY")
	for i := range args {
		for _, in := range syntax(args[i:]) {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
				i, in.Name, in.LookupKey(), quoteAll(in.Values), quoteAll(in.Tail), strconv.FormatBool(in.Retry))
		}
	}
	return tw.Flush()
}

func quoteAll(ss []string) string {
	if len(ss) == 0 {
		return "-"
	}
	quoted := make([]string, len(ss))
	for i, s := range ss {
		quoted[i] = strconv.Quote(s)
	}
	return strings.Join(quoted, " ")
}
