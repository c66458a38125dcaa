package circuit

import "errors"

// Errors returned by spec validation.
var (
	ErrInvalidInductance    = errors.New("circuit: inductance must be positive")
	ErrInvalidResistance    = errors.New("circuit: resistance must be positive")
	ErrInvalidCapacitance   = errors.New("circuit: capacitance must be positive")
	ErrInvalidPotTotal      = errors.New("circuit: pot total resistance must be positive")
	ErrPositionOutOfRange   = errors.New("circuit: pot position must be in [0, 10]")
	ErrToleranceOutOfRange  = errors.New("circuit: cap tolerance must be in [-10, 10] percent")
	ErrNegativeCable        = errors.New("circuit: cable capacitance must not be negative")
	ErrGroundOutOfRange     = errors.New("circuit: ground resistance must be in [0, 5] ohms")
	ErrInvalidAmplifierLoad = errors.New("circuit: amplifier input resistance must be positive")
)

// PositionMax is the upper end of the pot control range (0..10).
const PositionMax = 10.0

// CableCapacitancePerMeter is the assumed capacitance per meter of
// instrument cable, in farads (100 pF/m).
const CableCapacitancePerMeter = 100e-12

// PickupSpec describes a passive magnetic pickup: coil inductance and
// series resistance, with the winding's stray capacitance as a shunt.
type PickupSpec struct {
	Inductance  float64 // henries
	Resistance  float64 // ohms
	Capacitance float64 // farads
}

// Validate checks that the pickup values are physically valid.
func (p PickupSpec) Validate() error {
	if p.Inductance <= 0 {
		return ErrInvalidInductance
	}
	if p.Resistance <= 0 {
		return ErrInvalidResistance
	}
	if p.Capacitance <= 0 {
		return ErrInvalidCapacitance
	}
	return nil
}

// PotSpec describes a potentiometer: the total track resistance, the
// control position in [0, 10], and the taper law. A nil Taper means
// [DefaultTaper] (audio taper).
type PotSpec struct {
	Total    float64 // ohms, e.g. 250e3 or 500e3
	Position float64 // 0..10
	Taper    Taper
}

// Validate checks that the pot values are physically valid.
func (p PotSpec) Validate() error {
	if p.Total <= 0 {
		return ErrInvalidPotTotal
	}
	if p.Position < 0 || p.Position > PositionMax {
		return ErrPositionOutOfRange
	}
	return nil
}

// fraction applies the configured taper, falling back to [DefaultTaper].
func (p PotSpec) fraction() float64 {
	t := p.Taper
	if t == nil {
		t = DefaultTaper
	}
	return t.Fraction(p.Position)
}

// Split returns the two halves of the track at the current position:
// upper is wiper→lug3 (toward the output bus), lower is wiper→lug1
// (toward ground).
func (p PotSpec) Split() (upper, lower float64) {
	lower = p.Total * p.fraction()
	return p.Total - lower, lower
}

// Rheostat returns the pot's resistance when wired as a series variable
// resistor, as in the tone leg: full track at position 10, zero at 0.
func (p PotSpec) Rheostat() float64 {
	return p.Total * p.fraction()
}

// ToneCapSpec describes the tone capacitor as a nominal value plus a
// manufacturing tolerance in percent.
type ToneCapSpec struct {
	Nominal          float64 // farads, e.g. 47e-9
	TolerancePercent float64 // -10..+10
}

// Validate checks the nominal value and the tolerance range.
func (c ToneCapSpec) Validate() error {
	if c.Nominal <= 0 {
		return ErrInvalidCapacitance
	}
	if c.TolerancePercent < -10 || c.TolerancePercent > 10 {
		return ErrToleranceOutOfRange
	}
	return nil
}

// Effective returns the capacitance including tolerance:
// nominal · (1 + tolerance/100).
func (c ToneCapSpec) Effective() float64 {
	return c.Nominal * (1 + c.TolerancePercent/100)
}

// WiringSpec describes the signal path outside the instrument: the cable's
// capacitance to ground and the resistance of the ground return, which
// models poor ground continuity.
type WiringSpec struct {
	CableCapacitance float64 // farads
	GroundResistance float64 // ohms, 0..5
}

// Validate checks the wiring values.
func (w WiringSpec) Validate() error {
	if w.CableCapacitance < 0 {
		return ErrNegativeCable
	}
	if w.GroundResistance < 0 || w.GroundResistance > 5 {
		return ErrGroundOutOfRange
	}
	return nil
}

// CableCapacitanceForLength converts a cable length in meters to farads
// at [CableCapacitancePerMeter].
func CableCapacitanceForLength(meters float64) float64 {
	if meters < 0 {
		return 0
	}
	return meters * CableCapacitancePerMeter
}

// AmplifierSpec describes the amplifier input as a pure resistance.
type AmplifierSpec struct {
	InputResistance float64 // ohms, typically 1e6
}

// Validate checks the amplifier load.
func (a AmplifierSpec) Validate() error {
	if a.InputResistance <= 0 {
		return ErrInvalidAmplifierLoad
	}
	return nil
}

// Config is the complete, self-contained parameter bundle for one
// network evaluation.
type Config struct {
	Neck   PickupSpec
	Bridge PickupSpec

	NeckVolume   PotSpec
	BridgeVolume PotSpec
	Tone         PotSpec
	ToneCap      ToneCapSpec

	Wiring    WiringSpec
	Amplifier AmplifierSpec
}

// Validate checks every component spec and returns the first violation.
func (c Config) Validate() error {
	if err := c.Neck.Validate(); err != nil {
		return err
	}
	if err := c.Bridge.Validate(); err != nil {
		return err
	}
	if err := c.NeckVolume.Validate(); err != nil {
		return err
	}
	if err := c.BridgeVolume.Validate(); err != nil {
		return err
	}
	if err := c.Tone.Validate(); err != nil {
		return err
	}
	if err := c.ToneCap.Validate(); err != nil {
		return err
	}
	if err := c.Wiring.Validate(); err != nil {
		return err
	}
	return c.Amplifier.Validate()
}

// DefaultConfig returns a typical jazz-bass setup: alnico pickups, 250 kΩ
// audio-taper pots on 10, a 47 nF tone cap, a 4 m cable, and a 1 MΩ
// amplifier input.
func DefaultConfig() Config {
	return Config{
		Neck:         PickupSpec{Inductance: 3.0, Resistance: 7000, Capacitance: 150e-12},
		Bridge:       PickupSpec{Inductance: 3.5, Resistance: 7500, Capacitance: 150e-12},
		NeckVolume:   PotSpec{Total: 250e3, Position: 10},
		BridgeVolume: PotSpec{Total: 250e3, Position: 10},
		Tone:         PotSpec{Total: 250e3, Position: 10},
		ToneCap:      ToneCapSpec{Nominal: 47e-9},
		Wiring: WiringSpec{
			CableCapacitance: CableCapacitanceForLength(4),
			GroundResistance: 0.01,
		},
		Amplifier: AmplifierSpec{InputResistance: 1e6},
	}
}
