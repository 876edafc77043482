package main

import (
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/jvlmdr/go-cv/rimg64"
	"github.com/nfnt/resize"
)

func loadImage(name string) (image.Image, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	im, _, err := image.Decode(file)
	if err != nil {
		return nil, err
	}
	return im, nil
}

// loadGray loads an image as intensities in [0, 255], optionally
// resized first. A zero width or height keeps the original extent on
// that axis (preserving aspect ratio if the other is set).
func loadGray(name string, width, height int) (*rimg64.Image, error) {
	im, err := loadImage(name)
	if err != nil {
		return nil, err
	}
	if width > 0 || height > 0 {
		im = resize.Resize(uint(width), uint(height), im, resize.Bicubic)
	}
	return grayImage(im), nil
}

func grayImage(im image.Image) *rimg64.Image {
	b := im.Bounds()
	f := rimg64.New(b.Dx(), b.Dy())
	for x := 0; x < b.Dx(); x++ {
		for y := 0; y < b.Dy(); y++ {
			g := color.GrayModel.Convert(im.At(b.Min.X+x, b.Min.Y+y)).(color.Gray)
			f.Set(x, y, float64(g.Y))
		}
	}
	return f
}
