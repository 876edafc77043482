/*
Package gwt performs the Gabor wavelet transform of an image.

A Transform owns a family of Gabor wavelets in the frequency domain.
The expensive per-resolution state (sparse kernels, FFT plans) is built
lazily and re-used across images of the same size:

	t, err := gwt.New(gwt.DefaultParams())
	if err != nil {
		return err
	}
	im := gwt.Complex(gray)
	jets, err := t.JetImage(im, true)
	if err != nil {
		return err
	}
	jet := jets.At(x, y)

Each pixel of a jet image holds one Gabor jet: the magnitude and phase
of the responses to all NumberOfScales*NumberOfDirections wavelets.
Jets are the input to the similarity functions in package jetsim and
the graphs in package graph.

A Transform is not safe for concurrent use. Use one per goroutine or
serialize access externally.
*/
package gwt
