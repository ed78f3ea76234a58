// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"log"
	"os"

	"github.com/aclements/go-binhist/histplot"
	"github.com/aclements/go-gg/table"
)

var cmdTextFlags = flag.NewFlagSet(os.Args[0]+" text", flag.ExitOnError)
var cmdTableFlags = flag.NewFlagSet(os.Args[0]+" table", flag.ExitOnError)

func init() {
	f := cmdTextFlags
	setUsage(f, "text", "lo hi N [inputs...]")
	addCommonFlags(f)
	registerSubcommand("text", "[flags] lo hi N [inputs...] - print bins and counts", cmdText, f)

	f = cmdTableFlags
	setUsage(f, "table", "lo hi N [inputs...]")
	addCommonFlags(f)
	registerSubcommand("table", "[flags] lo hi N [inputs...] - print a table of every bin", cmdTable, f)
}

func cmdText() {
	h := mustHistogram(cmdTextFlags)
	f := createOutput()
	defer closeOutput(f)

	if err := histplot.Fprint(f, h); err != nil {
		log.Fatal(err)
	}
}

func cmdTable() {
	h := mustHistogram(cmdTableFlags)
	f := createOutput()
	defer closeOutput(f)

	tab, err := histplot.Table(h)
	if err != nil {
		log.Fatal(err)
	}
	table.Fprint(f, tab)
}
