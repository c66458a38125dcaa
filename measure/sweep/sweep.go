package sweep

import (
	"errors"
	"fmt"
	"math"

	"github.com/werktisch/bass-circuit/circuit"
)

// Errors returned by sweep functions.
var (
	ErrInvalidFrequency = errors.New("sweep: frequency must be positive")
	ErrFrequencyOrder   = errors.New("sweep: start frequency must be less than end frequency")
	ErrTooFewPoints     = errors.New("sweep: at least 2 points required")
)

// Sweep describes a logarithmic frequency grid.
type Sweep struct {
	StartFreq float64 // first grid frequency in Hz, inclusive
	EndFreq   float64 // last grid frequency in Hz, inclusive
	Points    int     // number of grid points
}

// Default returns the audio-band sweep used throughout: 500 points from
// 20 Hz to 20 kHz.
func Default() Sweep {
	return Sweep{StartFreq: 20, EndFreq: 20000, Points: 500}
}

// Validate checks that the sweep parameters are valid.
func (s Sweep) Validate() error {
	if s.StartFreq <= 0 || s.EndFreq <= 0 {
		return ErrInvalidFrequency
	}

	if s.StartFreq >= s.EndFreq {
		return ErrFrequencyOrder
	}

	if s.Points < 2 {
		return ErrTooFewPoints
	}

	return nil
}

// Frequencies returns the grid: Points values spaced so that
//
//	f_i = start · (end/start)^(i/(Points−1))
//
// with both endpoints included exactly.
func (s Sweep) Frequencies() ([]float64, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	out := make([]float64, s.Points)
	ratio := s.EndFreq / s.StartFreq
	for i := range out {
		out[i] = s.StartFreq * math.Pow(ratio, float64(i)/float64(s.Points-1))
	}

	return out, nil
}

// Run evaluates the network's transfer function at every grid frequency.
func (s Sweep) Run(n *circuit.Network) (*Response, error) {
	freqs, err := s.Frequencies()
	if err != nil {
		return nil, err
	}

	h := make([]complex128, len(freqs))
	for i, f := range freqs {
		h[i], err = n.Transfer(f)
		if err != nil {
			return nil, fmt.Errorf("sweep: transfer at %g Hz: %w", f, err)
		}
	}

	return &Response{Frequencies: freqs, H: h}, nil
}
