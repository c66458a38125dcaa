// Package waveform reconstructs matched input/output time-domain traces
// for one test frequency, the way an oscilloscope would show them.
//
// The input is a unit sine at the test frequency; the output is the same
// sine scaled by |H| and shifted by arg(H), with H taken from the
// analytic network solution. Both traces cover exactly [Cycles] full
// input periods at a fixed per-cycle sample density, so the effective
// sample rate scales with the test frequency and high test tones render
// as smoothly as low ones.
package waveform

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/werktisch/bass-circuit/circuit"
)

// ErrInvalidFrequency is returned for a non-positive test frequency.
var ErrInvalidFrequency = errors.New("waveform: test frequency must be positive")

const (
	// Cycles is the number of full input periods in a synthesized pair.
	Cycles = 4

	// SamplesPerCycle is the per-period sample density. With Cycles of 4
	// this yields 1024 samples, a power of two, which keeps the pair
	// directly usable by FFT-based checks.
	SamplesPerCycle = 256
)

// Pair holds time-aligned input and output traces for one test frequency.
type Pair struct {
	Frequency  float64   // test frequency in Hz
	SampleRate float64   // samples per second, SamplesPerCycle · Frequency
	Time       []float64 // seconds
	Input      []float64 // unit sine
	Output     []float64 // |H|·sin(ωt + arg H)
}

// Len returns the number of samples per trace.
func (p *Pair) Len() int {
	return len(p.Time)
}

// Synthesize evaluates the network at freqHz and renders the matched
// input/output pair.
func Synthesize(n *circuit.Network, freqHz float64) (*Pair, error) {
	if freqHz <= 0 {
		return nil, ErrInvalidFrequency
	}

	h, err := n.Transfer(freqHz)
	if err != nil {
		return nil, fmt.Errorf("waveform: transfer at %g Hz: %w", freqHz, err)
	}

	gain := cmplx.Abs(h)
	phase := cmplx.Phase(h)

	samples := Cycles * SamplesPerCycle
	sampleRate := SamplesPerCycle * freqHz

	p := &Pair{
		Frequency:  freqHz,
		SampleRate: sampleRate,
		Time:       make([]float64, samples),
		Input:      make([]float64, samples),
		Output:     make([]float64, samples),
	}

	omega := 2 * math.Pi * freqHz
	for i := 0; i < samples; i++ {
		t := float64(i) / sampleRate
		p.Time[i] = t
		p.Input[i] = math.Sin(omega * t)
		p.Output[i] = gain * math.Sin(omega*t+phase)
	}

	return p, nil
}
