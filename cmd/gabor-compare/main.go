package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"

	"github.com/jvlmdr/go-gabor/graph"
	"github.com/jvlmdr/go-gabor/gwt"
	"github.com/jvlmdr/go-gabor/jetsim"
)

func init() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage:", os.Args[0], "[flags] model.(png|jpg) probe.(png|jpg)")
		fmt.Fprintln(os.Stderr, "Compares two images by the similarity of their Gabor graphs.")
		flag.PrintDefaults()
	}
}

func main() {
	var (
		paramsFile = flag.String("gwt", "", "Load wavelet family parameters from file (.json|.gob) instead of flags.")
		scales     = flag.Int("scales", gwt.DefaultParams().Scales, "Number of scales of the wavelet family.")
		directions = flag.Int("directions", gwt.DefaultParams().Directions, "Number of directions of the wavelet family.")
		sigma      = flag.Float64("sigma", gwt.DefaultParams().Sigma, "Width of the wavelets.")
		kMax       = flag.Float64("k-max", gwt.DefaultParams().KMax, "Highest frequency magnitude.")
		kFac       = flag.Float64("k-fac", gwt.DefaultParams().KFac, "Frequency factor between scales.")
		powOfK     = flag.Float64("pow-of-k", gwt.DefaultParams().PowOfK, "Power of |k| prefactor.")
		dcFree     = flag.Bool("dc-free", gwt.DefaultParams().DCFree, "Suppress response to average brightness.")
		width      = flag.Int("width", 0, "Resize both images to this width before the transform (0: keep).")
		height     = flag.Int("height", 0, "Resize both images to this height before the transform (0: keep).")
		gridStep   = flag.Int("grid-step", 8, "Distance between grid nodes in pixels.")
		gridMargin = flag.Int("grid-margin", 8, "Distance of the outermost nodes from the image border.")
		simName    = flag.String("sim", "scalar", "Jet similarity: scalar, canberra, disparity, phase, phase-canberra.")
	)
	flag.Parse()
	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(1)
	}

	params := gwt.Params{
		Scales:     *scales,
		Directions: *directions,
		Sigma:      *sigma,
		KMax:       *kMax,
		KFac:       *kFac,
		PowOfK:     *powOfK,
		DCFree:     *dcFree,
	}
	if *paramsFile != "" {
		var err error
		params, err = gwt.LoadParams(*paramsFile)
		if err != nil {
			log.Fatalln("load params:", err)
		}
	}
	trans, err := gwt.New(params)
	if err != nil {
		log.Fatalln("create transform:", err)
	}

	model, err := loadGray(flag.Arg(0), *width, *height)
	if err != nil {
		log.Fatalln("load model image:", err)
	}
	probe, err := loadGray(flag.Arg(1), *width, *height)
	if err != nil {
		log.Fatalln("load probe image:", err)
	}
	if model.Width != probe.Width || model.Height != probe.Height {
		log.Fatalf("image sizes differ: %dx%d, %dx%d (use -width/-height)",
			model.Width, model.Height, probe.Width, probe.Height)
	}

	fn, err := similarity(*simName, params)
	if err != nil {
		log.Fatalln(err)
	}

	log.Printf("transform model %dx%d", model.Width, model.Height)
	modelJets, err := trans.JetImage(gwt.Complex(model), true)
	if err != nil {
		log.Fatalln("transform model:", err)
	}
	log.Printf("transform probe %dx%d", probe.Width, probe.Height)
	probeJets, err := trans.JetImage(gwt.Complex(probe), true)
	if err != nil {
		log.Fatalln("transform probe:", err)
	}

	first := image.Pt(*gridMargin, *gridMargin)
	last := image.Pt(model.Width-1-*gridMargin, model.Height-1-*gridMargin)
	step := image.Pt(*gridStep, *gridStep)
	g, err := graph.NewGrid(first, last, step)
	if err != nil {
		log.Fatalln("create grid:", err)
	}
	log.Printf("grid: %d nodes", g.NumNodes())

	modelGraph, err := g.Extract(modelJets)
	if err != nil {
		log.Fatalln("extract model graph:", err)
	}
	probeGraph, err := g.Extract(probeJets)
	if err != nil {
		log.Fatalln("extract probe graph:", err)
	}

	fmt.Println(graph.Similarity(modelGraph, probeGraph, fn))
}

func similarity(name string, p gwt.Params) (jetsim.Similarity, error) {
	switch name {
	case "scalar":
		return jetsim.ScalarProduct{}, nil
	case "canberra":
		return jetsim.Canberra{}, nil
	case "disparity":
		return jetsim.NewDisparity(p), nil
	case "phase":
		return jetsim.NewPhaseDiff(p), nil
	case "phase-canberra":
		return jetsim.NewPhaseDiffPlusCanberra(p), nil
	}
	return nil, fmt.Errorf("unknown similarity: %q", name)
}
