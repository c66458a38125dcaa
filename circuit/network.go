package circuit

import (
	"math"

	"github.com/werktisch/bass-circuit/internal/nodal"
)

// Network is the assembled impedance network for one Config. It is built
// once per parameter change and evaluated at arbitrary frequencies.
//
// Node numbering (node 0..4, earth is the implicit reference):
//
//	0  neck pickup hot  = neck volume wiper
//	1  bridge pickup hot = bridge volume wiper
//	2  shared output bus = lug 3 of both volume pots
//	3  junction between tone rheostat and tone cap
//	4  control-plate ground, tied to earth through the ground-return
//	   resistance
//
// The pot track halves are resolved at assembly time; only the reactive
// stamps depend on frequency.
type Network struct {
	cfg Config

	// Resolved resistive elements, in ohms.
	neckUpper   float64
	neckLower   float64
	bridgeUpper float64
	bridgeLower float64
	toneSeries  float64

	toneCap float64 // effective farads

	// Source drive levels. Both default to 1 (unit, in phase). Setting a
	// drive to 0 replaces that pickup's source by its internal impedance,
	// which keeps its loading in the network, as superposition requires.
	NeckDrive   float64
	BridgeDrive float64
}

const nodeCount = 5

// NewNetwork validates cfg and assembles the network.
func NewNetwork(cfg Config) (*Network, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	n := &Network{
		cfg:         cfg,
		toneCap:     cfg.ToneCap.Effective(),
		NeckDrive:   1,
		BridgeDrive: 1,
	}
	n.neckUpper, n.neckLower = cfg.NeckVolume.Split()
	n.bridgeUpper, n.bridgeLower = cfg.BridgeVolume.Split()

	// Tone pot as rheostat: full track at 10 isolates the cap, zero track
	// at 0 puts the cap straight on the bus. Floored at 1 Ω.
	n.toneSeries = math.Max(1, cfg.Tone.Rheostat())

	return n, nil
}

// Config returns the parameter bundle the network was assembled from.
func (n *Network) Config() Config {
	return n.cfg
}

// Transfer evaluates the complex voltage transfer H(jω) = V_out / V_source
// at a frequency in hertz. Both pickups are driven at their configured
// drive levels; the output is the bus voltage relative to the control
// ground.
//
// freqHz may be zero: all stamps have finite DC limits.
func (n *Network) Transfer(freqHz float64) (complex128, error) {
	omega := 2 * math.Pi * freqHz
	cfg := &n.cfg

	yNeckSeries := cfg.Neck.SeriesAdmittance(omega)
	yNeckShunt := cfg.Neck.ShuntAdmittance(omega)
	yBridgeSeries := cfg.Bridge.SeriesAdmittance(omega)
	yBridgeShunt := cfg.Bridge.ShuntAdmittance(omega)

	yNeckUp := conductance(n.neckUpper)
	yNeckDown := conductance(n.neckLower)
	yBridgeUp := conductance(n.bridgeUpper)
	yBridgeDown := conductance(n.bridgeLower)

	yTone := conductance(n.toneSeries)
	yToneCap := capacitorAdmittance(omega, n.toneCap)
	yCable := capacitorAdmittance(omega, cfg.Wiring.CableCapacitance)
	yAmp := conductance(cfg.Amplifier.InputResistance)
	yGround := complex(1/(cfg.Wiring.GroundResistance+minGroundResistance), 0)

	a := make([][]complex128, nodeCount)
	for i := range a {
		a[i] = make([]complex128, nodeCount)
	}
	b := make([]complex128, nodeCount)

	// Node 0: neck hot. Coil branch to the source, stray cap and lower
	// track half to control ground, upper track half to the bus.
	a[0][0] = yNeckSeries + yNeckShunt + yNeckDown + yNeckUp
	a[0][2] = -yNeckUp
	a[0][4] = -(yNeckShunt + yNeckDown)
	b[0] = complex(n.NeckDrive, 0) * yNeckSeries

	// Node 1: bridge hot, mirror of node 0.
	a[1][1] = yBridgeSeries + yBridgeShunt + yBridgeDown + yBridgeUp
	a[1][2] = -yBridgeUp
	a[1][4] = -(yBridgeShunt + yBridgeDown)
	b[1] = complex(n.BridgeDrive, 0) * yBridgeSeries

	// Node 2: output bus. Upper track halves in, tone leg, cable and amp
	// out. The lower halves terminate at the wiper nodes, never here.
	a[2][0] = -yNeckUp
	a[2][1] = -yBridgeUp
	a[2][2] = yNeckUp + yBridgeUp + yTone + yCable + yAmp
	a[2][3] = -yTone
	a[2][4] = -(yCable + yAmp)

	// Node 3: tone rheostat / tone cap junction.
	a[3][2] = -yTone
	a[3][3] = yTone + yToneCap
	a[3][4] = -yToneCap

	// Node 4: control ground, tied to earth through the ground return.
	a[4][0] = -(yNeckShunt + yNeckDown)
	a[4][1] = -(yBridgeShunt + yBridgeDown)
	a[4][2] = -(yCable + yAmp)
	a[4][3] = -yToneCap
	a[4][4] = yNeckShunt + yBridgeShunt + yNeckDown + yBridgeDown +
		yToneCap + yCable + yAmp + yGround

	v, err := nodal.Solve(a, b)
	if err != nil {
		return 0, err
	}

	return v[2] - v[4], nil
}
