package circuit

// Admittance primitives for the network stamps. Everything is expressed
// as admittance Y = 1/Z so that the DC limit ω = 0 needs no special case:
// a capacitor's admittance jωC goes to zero (open) and the pickup branch
// admittance 1/(R + jωL) goes to 1/R (the inductor becomes a short).

// minResistance floors resistances before inversion so that an exact-zero
// track segment stamps as a very good conductor instead of dividing by
// zero. This realizes the physical limit rather than raising an error.
const minResistance = 1e-3

// minGroundResistance keeps the ground-return stamp regular when the
// configured ground resistance is exactly zero.
const minGroundResistance = 1e-9

// conductance returns 1/R with R floored at [minResistance].
func conductance(r float64) complex128 {
	if r < minResistance {
		r = minResistance
	}
	return complex(1/r, 0)
}

// capacitorAdmittance returns jωC.
func capacitorAdmittance(omega, farads float64) complex128 {
	return complex(0, omega*farads)
}

// SeriesAdmittance returns the admittance of the pickup's coil branch,
// 1/(R + jωL).
func (p PickupSpec) SeriesAdmittance(omega float64) complex128 {
	return 1 / complex(p.Resistance, omega*p.Inductance)
}

// ShuntAdmittance returns the admittance of the pickup's stray
// capacitance, jωC.
func (p PickupSpec) ShuntAdmittance(omega float64) complex128 {
	return capacitorAdmittance(omega, p.Capacitance)
}

// Impedance returns the impedance seen looking back into the unloaded
// pickup: the coil branch R + jωL in parallel with the stray capacitance.
// Its magnitude peaks at the pickup's own resonance, close to
// 1/(2π√(LC)) for light damping.
func (p PickupSpec) Impedance(omega float64) complex128 {
	return 1 / (p.SeriesAdmittance(omega) + p.ShuntAdmittance(omega))
}
