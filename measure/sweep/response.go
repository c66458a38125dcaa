package sweep

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Response is one swept frequency response: the grid and the complex
// transfer value at each grid point.
type Response struct {
	Frequencies []float64
	H           []complex128
}

// Len returns the number of swept points.
func (r *Response) Len() int {
	return len(r.H)
}

// Magnitude returns |H| per grid point.
func (r *Response) Magnitude() []float64 {
	n := len(r.H)
	re := make([]float64, n)
	im := make([]float64, n)
	for i, h := range r.H {
		re[i] = real(h)
		im[i] = imag(h)
	}

	out := make([]float64, n)
	vecmath.Magnitude(out, re, im)

	return out
}

// MagnitudeDB returns 20·log10(|H|) per grid point. A magnitude of
// exactly zero maps to -Inf.
func (r *Response) MagnitudeDB() []float64 {
	mag := r.Magnitude()

	out := make([]float64, len(mag))
	for i, v := range mag {
		if v <= 0 {
			out[i] = math.Inf(-1)
			continue
		}
		out[i] = 20 * math.Log10(v)
	}

	return out
}

// PhaseDegrees returns the transfer phase per grid point, in degrees.
func (r *Response) PhaseDegrees() []float64 {
	out := make([]float64, len(r.H))
	for i, h := range r.H {
		out[i] = math.Atan2(imag(h), real(h)) * 180 / math.Pi
	}

	return out
}
