package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"unicode/utf8"

	"golang.org/x/text/language"

	"github.com/tickwerk/autoticks"
)

var (
	edge       = flag.Float64("edge", 500, "axis length in pixels")
	vertical   = flag.Bool("vertical", false, "lay ticks out for a vertical axis")
	nMinor     = flag.Int("nminor", 5, "number of minor intervals per major interval")
	locale     = flag.String("locale", "en", "BCP 47 tag used to format labels")
	charWidth  = flag.Float64("charwidth", 8, "assumed label character width in pixels")
	lineHeight = flag.Float64("lineheight", 16, "assumed label height in pixels")
)

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: `+os.Args[0]+` [options]

options:
`,
	)
	flag.PrintDefaults()
}

func main() {
	ranges := autoticks.FloatList{Values: []float64{0, 100}}
	flag.Var(&ranges, "range", "axis range as min,max (repeatable)")

	flag.Usage = printUsage
	flag.Parse()
	if flag.NArg() != 0 || len(ranges.Values) == 0 || len(ranges.Values)%2 != 0 {
		printUsage()
		log.Fatal("Invalid arguments")
	}

	tag, err := language.Parse(*locale)
	if err != nil {
		log.Fatal(err)
	}

	gen := autoticks.Generator{
		NMinor:   *nMinor,
		Vertical: *vertical,
		Format:   autoticks.NewLabelFormatter(tag),
		Measurer: autoticks.MeasurerFunc(func(labels []string) (width, height float64) {
			longest := 0
			for _, label := range labels {
				if n := utf8.RuneCountInString(label); n > longest {
					longest = n
				}
			}
			return float64(longest) * *charWidth, *lineHeight
		}),
	}

	for i := 0; i+1 < len(ranges.Values); i += 2 {
		min, max := ranges.Values[i], ranges.Values[i+1]
		ticks, err := gen.Generate(min, max, *edge)
		if err != nil {
			log.Fatal(err)
		}

		fmt.Printf("[%v, %v] over %v px:\n", min, max, *edge)
		for _, tick := range ticks {
			if tick.IsMinor() {
				fmt.Printf("\t%-12v\n", tick.Value)
			} else {
				fmt.Printf("\t%-12v %s\n", tick.Value, tick.Label)
			}
		}
	}
}
