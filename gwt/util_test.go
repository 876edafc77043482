package gwt

import (
	"math"
	"math/rand"

	"github.com/jvlmdr/go-fftw/fftw"
)

const eps = 1e-9

func epsEq(want, got, eps float64) bool {
	return math.Abs(want-got) <= eps
}

// randImage generates a complex-valued noise image.
func randImage(width, height int, rng *rand.Rand) *fftw.Array2 {
	x := fftw.NewArray2(width, height)
	for i := 0; i < width; i++ {
		for j := 0; j < height; j++ {
			x.Set(i, j, complex(rng.NormFloat64(), 0))
		}
	}
	return x
}
