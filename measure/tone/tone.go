// Package tone measures the network's single-tone gain by analyzing the
// synthesized oscilloscope pair in the frequency domain.
//
// It is an independent cross-check of the analytic solver: the waveform
// covers an integer number of cycles at a power-of-two sample count, so
// the test tone lands exactly on an FFT bin and the complex ratio of the
// output and input spectra at that bin recovers the transfer value
// without windowing or leakage.
package tone

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/werktisch/bass-circuit/circuit"
	"github.com/werktisch/bass-circuit/waveform"
)

// ErrNoTone is returned when the synthesized traces carry no detectable
// spectral line, which cannot happen for valid networks.
var ErrNoTone = errors.New("tone: no spectral line detected")

// Result holds one single-tone measurement.
type Result struct {
	Frequency float64    // detected tone frequency in Hz
	Gain      complex128 // complex output/input ratio at the tone bin
	GainDB    float64    // 20·log10(|Gain|)
	Phase     float64    // arg(Gain) in radians
}

// Measure synthesizes the input/output pair at freqHz and recovers the
// complex gain from the spectra.
func Measure(n *circuit.Network, freqHz float64) (Result, error) {
	pair, err := waveform.Synthesize(n, freqHz)
	if err != nil {
		return Result{}, err
	}

	return Analyze(pair)
}

// Analyze recovers the complex gain from an existing waveform pair.
func Analyze(pair *waveform.Pair) (Result, error) {
	n := pair.Len()

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return Result{}, fmt.Errorf("tone: failed to create FFT plan: %w", err)
	}

	inFreq, err := transform(plan, pair.Input)
	if err != nil {
		return Result{}, err
	}

	outFreq, err := transform(plan, pair.Output)
	if err != nil {
		return Result{}, err
	}

	// The tone sits at the strongest non-DC bin of the output up to
	// Nyquist. For a synthesized pair that is bin [waveform.Cycles].
	bin := 0
	best := 0.0
	for i := 1; i <= n/2; i++ {
		if m := cmplx.Abs(outFreq[i]); m > best {
			best = m
			bin = i
		}
	}

	if bin == 0 || cmplx.Abs(inFreq[bin]) == 0 {
		return Result{}, ErrNoTone
	}

	gain := outFreq[bin] / inFreq[bin]

	return Result{
		Frequency: float64(bin) * pair.SampleRate / float64(n),
		Gain:      gain,
		GainDB:    gainToDB(cmplx.Abs(gain)),
		Phase:     cmplx.Phase(gain),
	}, nil
}

func transform(plan *algofft.Plan[complex128], samples []float64) ([]complex128, error) {
	in := make([]complex128, len(samples))
	for i, v := range samples {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, len(samples))
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("tone: forward FFT failed: %w", err)
	}

	return out, nil
}

func gainToDB(v float64) float64 {
	if v <= 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(v)
}
