// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"log"
	"os"
	"unicode/utf8"

	"github.com/aclements/go-binhist/histplot"
	"golang.org/x/term"
)

var cmdASCIIFlags = flag.NewFlagSet(os.Args[0]+" ascii", flag.ExitOnError)

var ascii struct {
	width int
	bar   string
}

func init() {
	f := cmdASCIIFlags
	setUsage(f, "ascii", "lo hi N [inputs...]")
	addCommonFlags(f)
	f.IntVar(&ascii.width, "width", histplot.DefaultASCIIWidth, "draw the longest bar `n` bars long, or 0 to fit the terminal")
	f.StringVar(&ascii.bar, "bar", "#", "draw bars with `string`")
	registerSubcommand("ascii", "[flags] lo hi N [inputs...] - print a bar chart", cmdASCII, f)
}

func cmdASCII() {
	h := mustHistogram(cmdASCIIFlags)
	f := createOutput()
	defer closeOutput(f)

	width := ascii.width
	if width == 0 {
		width = terminalWidth(f, ascii.bar)
	}
	if err := histplot.WriteASCII(f, h, histplot.ASCIIConfig{Width: width, Bar: ascii.bar}); err != nil {
		log.Fatal(err)
	}
}

// asciiIndent is the column at which ASCII bars start.
const asciiIndent = 24

// terminalWidth returns the number of bars that fit on a line of f
// if f is a terminal, or the default width if it is not.
func terminalWidth(f *os.File, bar string) int {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return histplot.DefaultASCIIWidth
	}
	cols, _, err := term.GetSize(fd)
	if err != nil {
		return histplot.DefaultASCIIWidth
	}
	return barsInColumns(cols-asciiIndent, bar)
}

// barsInColumns returns the number of copies of bar that fit in cols
// columns, at least 1.
func barsInColumns(cols int, bar string) int {
	n := utf8.RuneCountInString(bar)
	if n == 0 {
		n = 1
	}
	if cols/n < 1 {
		return 1
	}
	return cols / n
}
