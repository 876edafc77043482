package gwt

import (
	"fmt"

	"github.com/jvlmdr/go-cv/rimg64"
	"github.com/jvlmdr/go-fftw/fftw"
)

// Complex copies a real-valued image into a complex array.
func Complex(im *rimg64.Image) *fftw.Array2 {
	x := fftw.NewArray2(im.Width, im.Height)
	for i := 0; i < im.Width; i++ {
		for j := 0; j < im.Height; j++ {
			x.Set(i, j, complex(im.At(i, j), 0))
		}
	}
	return x
}

// RealPart copies the real part of a complex array into an image.
func RealPart(x *fftw.Array2) *rimg64.Image {
	w, h := x.Dims()
	im := rimg64.New(w, h)
	for i := 0; i < w; i++ {
		for j := 0; j < h; j++ {
			im.Set(i, j, real(x.At(i, j)))
		}
	}
	return im
}

func copyArray(dst, src *fftw.Array2) {
	m, n := dst.Dims()
	if w, h := src.Dims(); w != m || h != n {
		panic(fmt.Sprintf("array sizes differ: %dx%d, %dx%d", m, n, w, h))
	}
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			dst.Set(i, j, src.At(i, j))
		}
	}
}
