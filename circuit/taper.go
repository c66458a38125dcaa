package circuit

import "math"

// Taper maps a pot's control position (0..10) to the electrical fraction
// of its resistance track in [0, 1].
//
// Implementations must be monotonically non-decreasing with Fraction(0) = 0
// and Fraction(10) = 1.
type Taper interface {
	Fraction(position float64) float64
}

// AudioTaper approximates an audio ("A-curve") taper with a power law:
//
//	f(p) = (p/10)^Exponent
//
// An exponent of 3 places roughly 12.5 % of the track at half rotation,
// close to the common "10 % at 50 %" audio-pot characteristic.
type AudioTaper struct {
	Exponent float64
}

// Fraction returns the track fraction for a control position.
// Positions outside [0, 10] are clamped.
func (t AudioTaper) Fraction(position float64) float64 {
	e := t.Exponent
	if e <= 0 {
		e = defaultTaperExponent
	}
	return math.Pow(clampPosition(position)/PositionMax, e)
}

// LinearTaper is a linear ("B-curve") taper: f(p) = p/10.
type LinearTaper struct{}

// Fraction returns the track fraction for a control position.
// Positions outside [0, 10] are clamped.
func (LinearTaper) Fraction(position float64) float64 {
	return clampPosition(position) / PositionMax
}

const defaultTaperExponent = 3.0

// DefaultTaper is the taper used when a PotSpec leaves Taper nil.
var DefaultTaper Taper = AudioTaper{Exponent: defaultTaperExponent}

func clampPosition(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > PositionMax {
		return PositionMax
	}
	return p
}
