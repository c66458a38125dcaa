// Package response extracts resonance and bandwidth figures from a swept
// magnitude curve.
//
// All levels are in dB relative to unity source voltage. The reference
// level for the bandwidth search is the magnitude at the lowest swept
// frequency, which for this network sits on the flat low-frequency
// shelf; the same convention is used for the relative peak level. This
// keeps peak and cutoff consistent whether or not the curve has a
// distinct resonance hump.
package response

import (
	"math"

	"github.com/werktisch/bass-circuit/measure/sweep"
)

// CutoffDropDB is the level drop below the reference that defines the
// upper bandwidth edge.
const CutoffDropDB = 3.0

// Stats summarizes one frequency response curve.
type Stats struct {
	ReferenceDB float64 // level at the lowest swept frequency

	PeakFreq  float64 // frequency of maximum magnitude
	PeakDB    float64 // level at the peak
	PeakRelDB float64 // peak level minus reference

	// CutoffFreq is the first frequency at or above the peak where the
	// level has dropped CutoffDropDB below the reference. Valid only when
	// CutoffFound is true; a curve that never crosses inside the swept
	// band reports CutoffFound == false rather than a boundary value.
	CutoffFreq  float64
	CutoffFound bool
}

// Analyze computes Stats from parallel frequency and dB-magnitude slices.
// Both slices must have the same length; empty input yields zero Stats.
func Analyze(freqs, magDB []float64) Stats {
	n := len(magDB)
	if n == 0 || len(freqs) != n {
		return Stats{}
	}

	var s Stats
	s.ReferenceDB = magDB[0]

	peak := 0
	for i, v := range magDB {
		if v > magDB[peak] {
			peak = i
		}
	}
	s.PeakFreq = freqs[peak]
	s.PeakDB = magDB[peak]
	s.PeakRelDB = s.PeakDB - s.ReferenceDB

	// Search from the peak (or from the start of a monotonically falling
	// curve, where peak == 0) upward for the first -3 dB crossing.
	threshold := s.ReferenceDB - CutoffDropDB
	for i := peak; i < n; i++ {
		if magDB[i] < threshold {
			s.CutoffFreq = freqs[i]
			s.CutoffFound = true
			break
		}
	}

	return s
}

// AnalyzeResponse computes Stats directly from a swept response.
func AnalyzeResponse(r *sweep.Response) Stats {
	return Analyze(r.Frequencies, r.MagnitudeDB())
}

// HalfPowerRatio is the linear amplitude ratio corresponding to the
// -3 dB bandwidth definition, ≈ 0.708.
func HalfPowerRatio() float64 {
	return math.Pow(10, -CutoffDropDB/20)
}
