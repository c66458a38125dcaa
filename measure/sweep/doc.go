// Package sweep evaluates a circuit network across a logarithmically
// spaced frequency grid and collects the complex transfer function into a
// Response with magnitude and phase views.
//
// Log spacing gives uniform point density per octave, which is what a
// log-log response plot and the downstream peak/cutoff analysis want.
// A sweep is deterministic: identical network parameters always produce
// an identical Response.
//
// # Usage
//
//	n, _ := circuit.NewNetwork(circuit.DefaultConfig())
//	resp, err := sweep.Default().Run(n)
//	if err != nil {
//	    ...
//	}
//	db := resp.MagnitudeDB()
package sweep
