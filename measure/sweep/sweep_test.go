package sweep

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/werktisch/bass-circuit/circuit"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		name  string
		sweep Sweep
		want  error
	}{
		{"default", Default(), nil},
		{"zero start", Sweep{StartFreq: 0, EndFreq: 100, Points: 10}, ErrInvalidFrequency},
		{"negative end", Sweep{StartFreq: 20, EndFreq: -1, Points: 10}, ErrInvalidFrequency},
		{"reversed", Sweep{StartFreq: 100, EndFreq: 20, Points: 10}, ErrFrequencyOrder},
		{"one point", Sweep{StartFreq: 20, EndFreq: 20000, Points: 1}, ErrTooFewPoints},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.sweep.Validate(); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestFrequenciesEndpointsAndSpacing(t *testing.T) {
	freqs, err := Default().Frequencies()
	if err != nil {
		t.Fatalf("Frequencies: %v", err)
	}

	if len(freqs) != 500 {
		t.Fatalf("expected 500 points, got %d", len(freqs))
	}

	if freqs[0] != 20 {
		t.Fatalf("expected first point 20 Hz, got %g", freqs[0])
	}

	if math.Abs(freqs[len(freqs)-1]-20000) > 1e-9 {
		t.Fatalf("expected last point 20 kHz, got %g", freqs[len(freqs)-1])
	}

	// Log spacing: the ratio between neighbours is constant.
	ratio := freqs[1] / freqs[0]
	for i := 2; i < len(freqs); i++ {
		r := freqs[i] / freqs[i-1]
		if math.Abs(r-ratio) > 1e-9 {
			t.Fatalf("spacing not logarithmic at %d: ratio %g vs %g", i, r, ratio)
		}
	}
}

func TestRunDeterministic(t *testing.T) {
	n, err := circuit.NewNetwork(circuit.DefaultConfig())
	if err != nil {
		t.Fatalf("NewNetwork: %v", err)
	}

	a, err := Default().Run(n)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	b, err := Default().Run(n)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	for i := range a.H {
		if a.H[i] != b.H[i] {
			t.Fatalf("point %d differs between identical runs: %v vs %v", i, a.H[i], b.H[i])
		}
	}
}

func TestRunFiniteMagnitude(t *testing.T) {
	n, err := circuit.NewNetwork(circuit.DefaultConfig())
	if err != nil {
		t.Fatalf("NewNetwork: %v", err)
	}

	resp, err := Default().Run(n)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	for i, m := range resp.Magnitude() {
		if math.IsNaN(m) || math.IsInf(m, 0) || m < 0 {
			t.Fatalf("magnitude not finite/non-negative at %g Hz: %g", resp.Frequencies[i], m)
		}
	}
}

func TestMagnitudeMatchesAbs(t *testing.T) {
	resp := &Response{
		Frequencies: []float64{100, 200, 300},
		H:           []complex128{0.5 + 0.5i, -0.25i, 1},
	}

	mag := resp.Magnitude()
	for i, h := range resp.H {
		if diff := math.Abs(mag[i] - cmplx.Abs(h)); diff > 1e-15 {
			t.Fatalf("point %d: vectorized magnitude %g differs from |H| %g", i, mag[i], cmplx.Abs(h))
		}
	}
}

func TestMagnitudeDBZeroMapsToNegInf(t *testing.T) {
	resp := &Response{Frequencies: []float64{100}, H: []complex128{0}}

	db := resp.MagnitudeDB()
	if !math.IsInf(db[0], -1) {
		t.Fatalf("expected -Inf for zero magnitude, got %g", db[0])
	}
}

func TestPhaseDegrees(t *testing.T) {
	resp := &Response{
		Frequencies: []float64{1, 2, 3, 4},
		H:           []complex128{1, 1i, -1, 1 - 1i},
	}

	want := []float64{0, 90, 180, -45}
	for i, p := range resp.PhaseDegrees() {
		if math.Abs(p-want[i]) > 1e-12 {
			t.Fatalf("phase[%d] = %g, want %g", i, p, want[i])
		}
	}
}
