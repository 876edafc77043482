/*
Package jetsim compares Gabor jets.

The magnitude-only functions (ScalarProduct, Canberra) are cheap and
ignore phases. The phase-aware functions estimate the 2D displacement
(disparity) between the image locations of the two jets from their
phase differences and score phase agreement after correcting for it:

	d := jetsim.NewDisparity(gwt.DefaultParams())
	res := d.Estimate(a, b)
	// res.Similarity, res.Disparity, res.Converged

Jets are assumed to be unit-normalized (see gwt.Jet.Normalize); the
scalar product of two unit jets is their cosine similarity.
*/
package jetsim
