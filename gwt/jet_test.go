package gwt

import (
	"errors"
	"math/rand"
	"testing"
)

func TestJet_normalizeIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	jet := NewJet(40)
	for j := range jet.Abs {
		jet.Abs[j] = rng.Float64() + 0.1
		jet.Phase[j] = rng.NormFloat64()
	}
	if err := jet.Normalize(); err != nil {
		t.Fatal(err)
	}
	want := jet.Clone()
	if err := jet.Normalize(); err != nil {
		t.Fatal(err)
	}
	for j := range jet.Abs {
		if !epsEq(want.Abs[j], jet.Abs[j], 1e-8) {
			t.Errorf("entry %d: want %g, got %g", j, want.Abs[j], jet.Abs[j])
		}
		if jet.Phase[j] != want.Phase[j] {
			t.Errorf("entry %d: phase modified", j)
		}
	}
}

func TestJet_normalizeDegenerate(t *testing.T) {
	jet := NewJet(8)
	if err := jet.Normalize(); !errors.Is(err, ErrDegenerateJet) {
		t.Errorf("want ErrDegenerateJet, got %v", err)
	}
}

// At must expose the packed storage, not copies.
func TestJetImage_atAliases(t *testing.T) {
	im := NewJetImage(4, 3, 5)
	jet := im.At(2, 1)
	jet.Abs[3] = 0.5
	jet.Phase[3] = -1
	off := (1*4+2)*5 + 3
	if im.Abs[off] != 0.5 || im.Phase[off] != -1 {
		t.Error("jet does not alias image storage")
	}
}
