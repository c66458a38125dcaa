// Package circuit models the passive electronics of a two-pickup bass:
// two pickups, two independently wired volume pots, a master tone control,
// the instrument cable, and the amplifier input.
//
// The model is a linear AC network. Component specs map to complex
// impedances at an angular frequency, the assembler stamps them into a
// five-node admittance matrix, and the solver returns the complex voltage
// transfer ratio H(jω) = V_out / V_source.
//
// # Independent volume wiring
//
// Both volume pots use the wiper as the signal input and lug 3 as the
// output toward the shared bus, with lug 1 grounded. At position p with
// taper fraction f(p):
//
//	R(wiper→lug3)  = R_total · (1 − f(p))
//	R(wiper→lug1)  = R_total · f(p)
//
// Turning one volume to zero shorts that pickup to ground at its own
// wiper, behind a full R_total toward the bus, so the other pickup keeps
// its path to the output. This is the defining property of the wiring and
// is exercised by the package tests.
//
// Every evaluation takes a complete, self-contained Config and returns a
// fresh result; the package holds no state and is safe for concurrent use.
package circuit
