package circuit

import (
	"math"
	"testing"
)

func TestAudioTaperEndpoints(t *testing.T) {
	taper := AudioTaper{Exponent: 3}

	if f := taper.Fraction(0); f != 0 {
		t.Fatalf("expected Fraction(0)=0, got %g", f)
	}

	if f := taper.Fraction(10); f != 1 {
		t.Fatalf("expected Fraction(10)=1, got %g", f)
	}
}

func TestAudioTaperMidpoint(t *testing.T) {
	// A cubic taper leaves (1/2)^3 = 12.5 % of the track at half rotation.
	taper := AudioTaper{Exponent: 3}

	if f := taper.Fraction(5); math.Abs(f-0.125) > 1e-12 {
		t.Fatalf("expected Fraction(5)=0.125, got %g", f)
	}
}

func TestTaperMonotonic(t *testing.T) {
	tapers := map[string]Taper{
		"audio":  AudioTaper{Exponent: 3},
		"gentle": AudioTaper{Exponent: 2},
		"linear": LinearTaper{},
	}

	for name, taper := range tapers {
		prev := -1.0
		for p := 0.0; p <= 10.0; p += 0.05 {
			f := taper.Fraction(p)
			if f < prev {
				t.Fatalf("%s taper not monotonic at position %g: %g < %g", name, p, f, prev)
			}
			if f < 0 || f > 1 {
				t.Fatalf("%s taper out of range at position %g: %g", name, p, f)
			}
			prev = f
		}
	}
}

func TestTaperClampsPosition(t *testing.T) {
	taper := AudioTaper{Exponent: 3}

	if f := taper.Fraction(-2); f != 0 {
		t.Fatalf("expected clamped Fraction(-2)=0, got %g", f)
	}

	if f := taper.Fraction(12); f != 1 {
		t.Fatalf("expected clamped Fraction(12)=1, got %g", f)
	}
}

func TestPotSpecDefaultTaper(t *testing.T) {
	// A nil Taper must behave like DefaultTaper.
	withNil := PotSpec{Total: 250e3, Position: 5}
	withDefault := PotSpec{Total: 250e3, Position: 5, Taper: DefaultTaper}

	upNil, downNil := withNil.Split()
	upDef, downDef := withDefault.Split()

	if upNil != upDef || downNil != downDef {
		t.Fatalf("nil taper split (%g, %g) differs from DefaultTaper split (%g, %g)",
			upNil, downNil, upDef, downDef)
	}
}

func TestPotSplitConservesTotal(t *testing.T) {
	pot := PotSpec{Total: 500e3}

	for p := 0.0; p <= 10.0; p += 0.5 {
		pot.Position = p
		upper, lower := pot.Split()

		if math.Abs(upper+lower-pot.Total) > 1e-6 {
			t.Fatalf("position %g: track halves %g + %g do not sum to %g", p, upper, lower, pot.Total)
		}
	}
}

func TestPotSplitExtremes(t *testing.T) {
	pot := PotSpec{Total: 250e3, Position: 10}

	upper, lower := pot.Split()
	if upper != 0 || lower != 250e3 {
		t.Fatalf("position 10: expected (0, 250k), got (%g, %g)", upper, lower)
	}

	pot.Position = 0
	upper, lower = pot.Split()
	if upper != 250e3 || lower != 0 {
		t.Fatalf("position 0: expected (250k, 0), got (%g, %g)", upper, lower)
	}
}

func TestRheostat(t *testing.T) {
	pot := PotSpec{Total: 250e3, Position: 10}
	if r := pot.Rheostat(); r != 250e3 {
		t.Fatalf("position 10: expected full track, got %g", r)
	}

	pot.Position = 0
	if r := pot.Rheostat(); r != 0 {
		t.Fatalf("position 0: expected zero track, got %g", r)
	}
}
