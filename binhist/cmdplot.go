// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"image/png"
	"log"
	"os"
	"strings"

	"github.com/aclements/go-binhist/histplot"
	"github.com/aclements/go-gg/gg"
)

var cmdSVGFlags = flag.NewFlagSet(os.Args[0]+" svg", flag.ExitOnError)
var cmdPNGFlags = flag.NewFlagSet(os.Args[0]+" png", flag.ExitOnError)

var svg struct {
	width, height int
}

var pngCell int

func init() {
	f := cmdSVGFlags
	setUsage(f, "svg", "lo hi N [inputs...]")
	addCommonFlags(f)
	f.IntVar(&svg.width, "width", 500, "plot `width` in pixels")
	f.IntVar(&svg.height, "height", 350, "plot `height` in pixels")
	registerSubcommand("svg", "[flags] lo hi N [inputs...] - plot as SVG", cmdSVG, f)

	f = cmdPNGFlags
	setUsage(f, "png", "lo hi N [inputs...]")
	addCommonFlags(f)
	f.IntVar(&pngCell, "cell", 8, "draw each bin as a square `n` pixels wide")
	registerSubcommand("png", "[flags] lo hi N [inputs...] - draw a 2-D heatmap as PNG", cmdPNG, f)
}

func cmdSVG() {
	j := mustJob(cmdSVGFlags, true)
	h, err := j.histogram()
	if err != nil {
		log.Fatal(err)
	}
	p, err := histplot.Plot(h)
	if err != nil {
		log.Fatal(err)
	}
	if !(len(j.paths) == 0 || len(j.paths) == 1 && j.paths[0] == "-") {
		p.Add(gg.Title(strings.Join(j.paths, " ")))
	}

	f := createOutput()
	defer closeOutput(f)
	if err := p.WriteSVG(f, svg.width, svg.height); err != nil {
		log.Fatal(err)
	}
}

func cmdPNG() {
	h := mustHistogram(cmdPNGFlags)
	img, err := histplot.Heatmap(h, pngCell)
	if err != nil {
		log.Fatal(err)
	}

	f := createOutput()
	defer closeOutput(f)
	if err := png.Encode(f, img); err != nil {
		log.Fatal(err)
	}
}
