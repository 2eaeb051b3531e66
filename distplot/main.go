package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"

	"github.com/pkg/profile"
	"go-hep.org/x/hep/hbook"
	"go-hep.org/x/hep/hplot"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/tickwerk/autoticks"
)

var (
	nDraws = flag.Int("n", 100000, "number of draws per distribution")
	nBins  = flag.Int("nbins", 80, "number of bins")
	mean   = flag.Float64("mean", 0, "mean of the sampled distributions")
	seed   = flag.Uint64("seed", 1, "random seed")
	title  = flag.String("title", "", "plot title")
	prefix = flag.String("prefix", "dist", "output file prefix")
)

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: `+os.Args[0]+` [options]

options:
`,
	)
	flag.PrintDefaults()
}

func main() {
	defer profile.Start().Stop()

	sigmas := autoticks.FloatList{Values: []float64{0.5, 1, 2}}
	flag.Var(&sigmas, "sigma", "standard deviation of a sampled distribution (repeatable)")

	flag.Usage = printUsage
	flag.Parse()
	if flag.NArg() != 0 || len(sigmas.Values) == 0 {
		printUsage()
		log.Fatal("Invalid arguments")
	}

	maxSigma := sigmas.Values[0]
	for _, sigma := range sigmas.Values {
		if sigma > maxSigma {
			maxSigma = sigma
		}
	}
	low := *mean - 4*maxSigma
	high := *mean + 4*maxSigma

	p, _ := plot.New()
	p.Title.Text = *title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "draws"
	p.X.Tick.Marker = autoticks.Marker{Length: 6 * vg.Inch}
	p.Y.Tick.Marker = autoticks.Marker{Length: 4 * vg.Inch, Vertical: true}

	for i, sigma := range sigmas.Values {
		hist := hbook.NewH1D(*nBins, low, high)
		dist := distuv.Normal{
			Mu:    *mean,
			Sigma: sigma,
			Src:   rand.NewSource(*seed + uint64(i)),
		}
		for j := 0; j < *nDraws; j++ {
			hist.Fill(dist.Rand(), 1)
		}

		lineColor := color.RGBA{A: 255}
		switch i {
		case 1:
			lineColor = color.RGBA{G: 255, A: 255}
		case 2:
			lineColor = color.RGBA{B: 255, A: 255}
		case 3:
			lineColor = color.RGBA{R: 255, B: 127, G: 127, A: 255}
		}

		h := hplot.NewH1D(hist)
		h.FillColor = nil
		h.LineStyle.Color = lineColor
		h.Infos.Style = hplot.HInfoNone

		p.Add(h)
	}

	p.Save(6*vg.Inch, 4*vg.Inch, *prefix+".pdf")
	p.Save(6*vg.Inch, 4*vg.Inch, *prefix+".png")
}
