package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"math"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/alice-hep/trigpt"
)

var (
	trigger     = flag.String("trigger", "MinBias", "trigger class to evaluate")
	binningPath = flag.String("binning", "", "YAML binning configuration file")
	pTMin       = flag.Float64("minpt", 0.5, "minimum transverse momentum")
	pTMax       = flag.Float64("maxpt", 100, "maximum transverse momentum")
	jetLow      = flag.Float64("jetlow", 10, "low jet-trigger threshold on leading track pt")
	jetHigh     = flag.Float64("jethigh", 20, "high jet-trigger threshold on leading track pt")
	gammaLow    = flag.Float64("gammalow", 5, "low gamma-trigger threshold on leading cluster energy")
	gammaHigh   = flag.Float64("gammahigh", 10, "high gamma-trigger threshold on leading cluster energy")
	title       = flag.String("title", "", "plot title")
	prefix      = flag.String("prefix", "out", "output file prefix")
)

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: `+os.Args[0]+` [options] <proio-input-files>...

options:
`,
	)
	flag.PrintDefaults()
}

func main() {
	flag.Usage = printUsage
	flag.Parse()
	if flag.NArg() < 1 {
		printUsage()
		log.Fatal("Invalid arguments")
	}

	binning := trigpt.DefaultBinning()
	if *binningPath != "" {
		var err error
		if binning, err = trigpt.LoadBinning(*binningPath); err != nil {
			log.Fatal(err)
		}
	}
	etaBinning, err := binning.Get("eta")
	if err != nil {
		log.Fatal(err)
	}

	p, _ := plot.New()
	p.Title.Text = *title
	p.X.Label.Text = "eta"
	p.Y.Label.Text = "cluster-match efficiency"
	p.X.Tick.Marker = trigpt.PreciseTicks{NSuggestedTicks: 5}
	p.Y.Tick.Marker = trigpt.PreciseTicks{NSuggestedTicks: 5}

	for i, filename := range flag.Args() {
		sink := runFile(filename, binning)

		allHist, err := sink.Project1D("hMCTrackHist"+*trigger, 1)
		if err != nil {
			log.Fatal(err)
		}
		matchedHist, err := sink.Project1D("hMCTrackInAcceptanceHist"+*trigger, 1)
		if err != nil {
			log.Fatal(err)
		}

		nBins := etaBinning.NBins
		points := make(plotter.XYs, nBins)
		xErrors := make(plotter.XErrors, nBins)
		yErrors := make(plotter.YErrors, nBins)
		binHalfWidth := (etaBinning.High - etaBinning.Low) / float64(2*nBins)
		binSigma := binHalfWidth / math.Sqrt(3.)
		for i := range points {
			allX, allY := allHist.XY(i)

			points[i].X = allX + binHalfWidth
			xErrors[i].Low = binSigma
			xErrors[i].High = binSigma

			_, matchedY := matchedHist.XY(i)
			if allY > 0 {
				points[i].Y = matchedY / allY
				yErrors[i].Low = math.Sqrt((1 - matchedY/allY) * matchedY / math.Pow(allY, 2))
				yErrors[i].High = yErrors[i].Low
			}
		}
		errPoints := plotutil.ErrorPoints{points, xErrors, yErrors}
		xerr, _ := plotter.NewXErrorBars(errPoints)
		yerr, _ := plotter.NewYErrorBars(errPoints)

		pointColor := color.RGBA{A: 255}
		switch i {
		case 1:
			pointColor = color.RGBA{G: 255, A: 255}
		case 2:
			pointColor = color.RGBA{B: 255, A: 255}
		}
		xerr.LineStyle.Color = pointColor
		yerr.LineStyle.Color = pointColor

		p.Add(xerr)
		p.Add(yerr)
	}

	p.Save(6*vg.Inch, 4*vg.Inch, *prefix+".pdf")
	p.Save(6*vg.Inch, 4*vg.Inch, *prefix+".png")
}

func runFile(filename string, binning trigpt.BinningConfig) *trigpt.HistogramSink {
	task := trigpt.NewTask(binning)

	tracks := trigpt.NewRecTrackComponent("tracks")
	tracks.Kine = &trigpt.KineCuts{Pt: trigpt.NewCutRange(*pTMin, *pTMax)}
	tracks.Selection = trigpt.AcceptAll{}
	tracks.RequireMC = true
	task.AddComponent(tracks)

	if err := task.Init(); err != nil {
		log.Fatal(err)
	}

	src, err := trigpt.OpenProio(filename, trigpt.EmulatedTrigger(*jetLow, *jetHigh, *gammaLow, *gammaHigh))
	if err != nil {
		log.Fatal(err)
	}
	defer src.Close()

	if _, err := task.Run(src); err != nil {
		log.Fatal(err)
	}
	return task.Sink()
}
