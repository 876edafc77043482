package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"math"
	"os"
	"path"

	"github.com/jvlmdr/go-cv/rimg64"
	"github.com/jvlmdr/go-gabor/gwt"
)

func init() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage:", os.Args[0], "[flags] out-dir")
		fmt.Fprintln(os.Stderr, "Writes the frequency-domain kernel images of a wavelet family as PNGs.")
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
		width      = flag.Int("width", 128, "Image width to build the kernels for.")
		height     = flag.Int("height", 128, "Image height to build the kernels for.")
	)
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	dir := flag.Arg(0)

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
	trans.EnsureKernels(*width, *height)

	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Fatalln("create output dir:", err)
	}
	for j := 0; j < trans.NumKernels(); j++ {
		im := trans.Kernel(j).Image()
		fname := path.Join(dir, fmt.Sprintf("kernel-%02d.png", j))
		if err := savePNG(fname, toGray(im)); err != nil {
			log.Fatalln("save kernel image:", err)
		}
		log.Printf("wrote %s (%d coefficients)", fname, trans.Kernel(j).NumPoints())
	}
}

// toGray maps pixel values to [0, 255] by the largest magnitude.
// Negative coefficients of DC-free kernels map below the mid gray.
func toGray(f *rimg64.Image) *image.Gray {
	var max float64
	for x := 0; x < f.Width; x++ {
		for y := 0; y < f.Height; y++ {
			if v := f.At(x, y); v > max {
				max = v
			} else if -v > max {
				max = -v
			}
		}
	}
	im := image.NewGray(image.Rect(0, 0, f.Width, f.Height))
	if max == 0 {
		return im
	}
	for x := 0; x < f.Width; x++ {
		for y := 0; y < f.Height; y++ {
			v := f.At(x, y) / max
			im.SetGray(x, y, color.Gray{Y: uint8(math.Round((v + 1) / 2 * 255))})
		}
	}
	return im
}

func savePNG(fname string, im image.Image) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, im)
}
