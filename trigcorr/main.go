package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/pkg/profile"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/alice-hep/trigpt"
)

var (
	binningPath = flag.String("binning", "", "YAML binning configuration file")
	pTMin       = flag.Float64("minpt", 0.5, "minimum transverse momentum")
	pTMax       = flag.Float64("maxpt", 100, "maximum transverse momentum")
	maxWeight   = flag.Float64("maxweight", 100, "maximum bin weight in the color map")
	title       = flag.String("title", "", "plot title")
	output      = flag.String("output", "out.png", "output file")
)

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: `+os.Args[0]+` [options] <proio-input-file>

options:
`,
	)
	flag.PrintDefaults()
}

func main() {
	defer profile.Start().Stop()

	flag.Usage = printUsage
	flag.Parse()
	if flag.NArg() != 1 {
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

	task := trigpt.NewTask(binning)
	tracks := trigpt.NewRecTrackComponent("tracks")
	tracks.Kine = &trigpt.KineCuts{Pt: trigpt.NewCutRange(*pTMin, *pTMax)}
	tracks.Selection = trigpt.AcceptAll{}
	tracks.RequireMC = true
	task.AddComponent(tracks)

	if err := task.Init(); err != nil {
		log.Fatal(err)
	}

	src, err := trigpt.OpenProio(flag.Arg(0), nil)
	if err != nil {
		log.Fatal(err)
	}
	defer src.Close()

	if _, err := task.Run(src); err != nil {
		log.Fatal(err)
	}

	corrHist, err := task.Sink().Project2D("hTrackPtCorrelation", 0, 1)
	if err != nil {
		log.Fatal(err)
	}

	p, _ := plot.New()
	p.Title.Text = *title
	p.X.Label.Text = "generated p_T (GeV/c)"
	p.Y.Label.Text = "reconstructed p_T (GeV/c)"
	p.X.Tick.Marker = trigpt.PreciseTicks{NSuggestedTicks: 5}
	p.Y.Tick.Marker = trigpt.PreciseTicks{NSuggestedTicks: 5}

	img := vgimg.New(670, 400)
	dc := draw.New(img)
	dc0 := draw.Crop(dc, 0, -70, 0, 0)
	dc1 := draw.Crop(dc, 620, 0, 0, 0)

	colorMap := moreland.ExtendedBlackBody()
	colorMap.SetMin(0)
	colorMap.SetMax(*maxWeight)
	pal := colorMap.Palette(1000)
	heatMap := plotter.NewHeatMap(corrHist.GridXYZ(), pal)
	heatMap.Min = 0
	heatMap.Max = *maxWeight
	p.Add(heatMap)

	p.Draw(dc0)

	p, _ = plot.New()

	colorBar := &plotter.ColorBar{ColorMap: colorMap}
	colorBar.Vertical = true
	p.Add(colorBar)
	p.HideX()
	p.Y.Padding = 0

	p.Draw(dc1)

	w, err := os.Create(*output)
	if err != nil {
		log.Panic(err)
	}
	png := vgimg.PngCanvas{Canvas: img}
	if _, err = png.WriteTo(w); err != nil {
		log.Panic(err)
	}
}
