package circuit

import (
	"math"
	"math/cmplx"
	"testing"
)

// scenarioConfig is the reference setup used throughout the network tests:
// matched pickups, 250 kΩ audio pots on 10, 47 nF tone cap, 3 m cable,
// perfect ground, 1 MΩ amplifier input.
func scenarioConfig() Config {
	return Config{
		Neck:         PickupSpec{Inductance: 3.5, Resistance: 8000, Capacitance: 150e-12},
		Bridge:       PickupSpec{Inductance: 3.5, Resistance: 8000, Capacitance: 150e-12},
		NeckVolume:   PotSpec{Total: 250e3, Position: 10},
		BridgeVolume: PotSpec{Total: 250e3, Position: 10},
		Tone:         PotSpec{Total: 250e3, Position: 10},
		ToneCap:      ToneCapSpec{Nominal: 47e-9},
		Wiring:       WiringSpec{CableCapacitance: 300e-12},
		Amplifier:    AmplifierSpec{InputResistance: 1e6},
	}
}

func transferMagDB(t *testing.T, cfg Config, freqHz float64) float64 {
	t.Helper()

	n, err := NewNetwork(cfg)
	if err != nil {
		t.Fatalf("NewNetwork: %v", err)
	}

	h, err := n.Transfer(freqHz)
	if err != nil {
		t.Fatalf("Transfer(%g): %v", freqHz, err)
	}

	return 20 * math.Log10(cmplx.Abs(h))
}

func TestTransferFiniteAcrossBand(t *testing.T) {
	// Extreme control settings must never put a pole on the swept band.
	positions := []float64{0, 0.1, 5, 10}

	for _, vol := range positions {
		for _, tone := range positions {
			cfg := scenarioConfig()
			cfg.NeckVolume.Position = vol
			cfg.BridgeVolume.Position = 0
			cfg.Tone.Position = tone

			n, err := NewNetwork(cfg)
			if err != nil {
				t.Fatalf("NewNetwork: %v", err)
			}

			for _, f := range []float64{0, 20, 100, 1000, 10000, 20000} {
				h, err := n.Transfer(f)
				if err != nil {
					t.Fatalf("vol=%g tone=%g f=%g: %v", vol, tone, f, err)
				}
				if cmplx.IsNaN(h) || cmplx.IsInf(h) {
					t.Fatalf("vol=%g tone=%g f=%g: non-finite H %v", vol, tone, f, h)
				}
			}
		}
	}
}

func TestTransferDCLimit(t *testing.T) {
	// At DC the network is purely resistive: coil resistances against the
	// pot and amplifier loads give a divider just below unity.
	mag := transferMagDB(t, scenarioConfig(), 0)

	if mag > 0 || mag < -3 {
		t.Fatalf("expected DC response within (-3, 0] dB, got %.2f dB", mag)
	}
}

func TestIndependentVolumeIsolation(t *testing.T) {
	// Bridge volume on 0 shorts the bridge pickup at its own wiper, not
	// the shared bus: the neck signal must still reach the output at
	// nearly full level.
	cfg := scenarioConfig()
	cfg.BridgeVolume.Position = 0

	mag := transferMagDB(t, cfg, 100)
	if mag < -3 {
		t.Fatalf("bridge volume 0 muted the bus: %.2f dB at 100 Hz", mag)
	}
}

func TestMutedSourceMatchesRemovedSource(t *testing.T) {
	// With the bridge volume on 0, the bridge source contributes nothing:
	// driving it or replacing it by its internal impedance must give the
	// same output.
	cfg := scenarioConfig()
	cfg.BridgeVolume.Position = 0

	driven, err := NewNetwork(cfg)
	if err != nil {
		t.Fatalf("NewNetwork: %v", err)
	}

	muted, err := NewNetwork(cfg)
	if err != nil {
		t.Fatalf("NewNetwork: %v", err)
	}
	muted.BridgeDrive = 0

	for _, f := range []float64{20, 100, 1000, 10000} {
		hDriven, err := driven.Transfer(f)
		if err != nil {
			t.Fatalf("Transfer: %v", err)
		}
		hMuted, err := muted.Transfer(f)
		if err != nil {
			t.Fatalf("Transfer: %v", err)
		}

		if diff := cmplx.Abs(hDriven - hMuted); diff > 1e-6 {
			t.Fatalf("f=%g: driven and muted bridge differ by %g", f, diff)
		}
	}
}

func TestPickupSymmetry(t *testing.T) {
	// Swapping neck and bridge specs together with their volume settings
	// must leave the transfer function unchanged.
	a := scenarioConfig()
	a.Neck = PickupSpec{Inductance: 3.0, Resistance: 7000, Capacitance: 150e-12}
	a.Bridge = PickupSpec{Inductance: 3.5, Resistance: 8000, Capacitance: 150e-12}
	a.NeckVolume.Position = 7
	a.BridgeVolume.Position = 4

	b := scenarioConfig()
	b.Neck, b.Bridge = a.Bridge, a.Neck
	b.NeckVolume.Position, b.BridgeVolume.Position = a.BridgeVolume.Position, a.NeckVolume.Position

	na, err := NewNetwork(a)
	if err != nil {
		t.Fatalf("NewNetwork: %v", err)
	}
	nb, err := NewNetwork(b)
	if err != nil {
		t.Fatalf("NewNetwork: %v", err)
	}

	for _, f := range []float64{20, 234, 1234, 5678, 20000} {
		ha, err := na.Transfer(f)
		if err != nil {
			t.Fatalf("Transfer: %v", err)
		}
		hb, err := nb.Transfer(f)
		if err != nil {
			t.Fatalf("Transfer: %v", err)
		}

		if diff := cmplx.Abs(ha - hb); diff > 1e-12 {
			t.Fatalf("f=%g: swapped configuration differs by %g", f, diff)
		}
	}
}

func TestToneControlCutsTreble(t *testing.T) {
	// Tone on 0 puts the cap straight on the bus: highs collapse while
	// lows stay put. Tone on 10 isolates the cap behind the full track.
	closed := scenarioConfig()
	closed.Tone.Position = 0

	lowClosed := transferMagDB(t, closed, 100)
	highClosed := transferMagDB(t, closed, 5000)

	if highClosed > lowClosed-10 {
		t.Fatalf("tone 0: expected strong treble cut, got %.2f dB at 100 Hz vs %.2f dB at 5 kHz",
			lowClosed, highClosed)
	}

	open := scenarioConfig()
	highOpen := transferMagDB(t, open, 5000)

	if highOpen < highClosed+10 {
		t.Fatalf("tone 10 should pass far more treble than tone 0: %.2f dB vs %.2f dB",
			highOpen, highClosed)
	}
}

func TestCableCapacitanceLoadsTreble(t *testing.T) {
	// More cable means more shunt capacitance: the response at 10 kHz must
	// fall strictly with cable length.
	prev := math.Inf(1)
	for meters := 0.0; meters <= 10; meters += 2 {
		cfg := scenarioConfig()
		cfg.Wiring.CableCapacitance = CableCapacitanceForLength(meters) + 1e-12

		mag := transferMagDB(t, cfg, 10000)
		if mag >= prev {
			t.Fatalf("%g m cable: %.3f dB at 10 kHz did not fall below %.3f dB", meters, mag, prev)
		}
		prev = mag
	}
}

func TestGroundResistanceKeepsNetworkSolvable(t *testing.T) {
	for _, ohms := range []float64{0, 0.5, 5} {
		cfg := scenarioConfig()
		cfg.Wiring.GroundResistance = ohms

		mag := transferMagDB(t, cfg, 1000)
		if math.IsNaN(mag) || math.IsInf(mag, 0) {
			t.Fatalf("ground %g Ω: non-finite response %v", ohms, mag)
		}
	}
}
