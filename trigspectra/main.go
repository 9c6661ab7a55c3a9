package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"

	"go-hep.org/x/hep/hbook"
	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/alice-hep/trigpt"
)

var (
	trigger     = flag.String("trigger", "MinBias", "trigger class to plot")
	binningPath = flag.String("binning", "", "YAML binning configuration file")
	pTMin       = flag.Float64("minpt", 0.5, "minimum transverse momentum")
	pTMax       = flag.Float64("maxpt", 100, "maximum transverse momentum")
	etaLimit    = flag.Float64("etalimit", 0.8, "maximum absolute value of eta")
	jetLow      = flag.Float64("jetlow", 10, "low jet-trigger threshold on leading track pt")
	jetHigh     = flag.Float64("jethigh", 20, "high jet-trigger threshold on leading track pt")
	gammaLow    = flag.Float64("gammalow", 5, "low gamma-trigger threshold on leading cluster energy")
	gammaHigh   = flag.Float64("gammahigh", 10, "high gamma-trigger threshold on leading cluster energy")
	combined    = flag.Bool("combined", false, "use combinatorial trigger names")
	swapEta     = flag.Bool("swapeta", false, "flip the eta sign in all fills")
	title       = flag.String("title", "", "plot title")
	output      = flag.String("output", "out.png", "output file")
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

	p, _ := plot.New()
	p.Title.Text = *title
	p.X.Label.Text = "p_T (GeV/c)"
	p.X.Tick.Marker = trigpt.PreciseTicks{NSuggestedTicks: 5}
	p.Y.Tick.Marker = trigpt.LogTicks{}
	p.Y.Scale = trigpt.LogScale{}
	p.Y.Min = 0.5

	for i, filename := range flag.Args() {
		hist := makeSpectrum(filename, binning)

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

	p.Save(6*vg.Inch, 4*vg.Inch, *output)
}

func makeSpectrum(filename string, binning trigpt.BinningConfig) *hbook.H1D {
	task := trigpt.NewTask(binning)

	tracks := trigpt.NewRecTrackComponent("tracks")
	tracks.Kine = &trigpt.KineCuts{
		Pt:  trigpt.NewCutRange(*pTMin, *pTMax),
		Eta: trigpt.NewCutRange(-*etaLimit, *etaLimit),
	}
	tracks.Selection = trigpt.AcceptAll{}
	tracks.SwapEta = *swapEta
	if *combined {
		tracks.TriggerMethod = trigpt.TriggerCombined
	}
	task.AddComponent(tracks)

	clusters := trigpt.NewClusterComponent("clusters")
	if *combined {
		clusters.TriggerMethod = trigpt.TriggerCombined
	}
	task.AddComponent(clusters)

	if err := task.Init(); err != nil {
		log.Fatal(err)
	}

	src, err := trigpt.OpenProio(filename, trigpt.EmulatedTrigger(*jetLow, *jetHigh, *gammaLow, *gammaHigh))
	if err != nil {
		log.Fatal(err)
	}
	defer src.Close()

	n, err := task.Run(src)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("%s: %d events", filename, n)

	hist, err := task.Sink().Project1D("hTrackHist"+*trigger, 0)
	if err != nil {
		log.Fatal(err)
	}
	return hist
}
