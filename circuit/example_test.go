package circuit_test

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/werktisch/bass-circuit/circuit"
)

func ExampleNewNetwork() {
	cfg := circuit.DefaultConfig()

	n, err := circuit.NewNetwork(cfg)
	if err != nil {
		panic(err)
	}

	h, err := n.Transfer(1000)
	if err != nil {
		panic(err)
	}

	fmt.Printf("|H(1 kHz)| = %.3f\n", cmplx.Abs(h))
	fmt.Printf("phase = %.2f rad\n", cmplx.Phase(h))

	// Output:
	// |H(1 kHz)| = 0.987
	// phase = -0.15 rad
}

func ExamplePotSpec_Split() {
	pot := circuit.PotSpec{Total: 250e3, Position: 5}

	upper, lower := pot.Split()
	fmt.Printf("wiper to bus:    %.1f kΩ\n", upper/1e3)
	fmt.Printf("wiper to ground: %.1f kΩ\n", lower/1e3)

	// Output:
	// wiper to bus:    218.8 kΩ
	// wiper to ground: 31.2 kΩ
}

func ExamplePickupSpec_Impedance() {
	pickup := circuit.PickupSpec{Inductance: 3.5, Resistance: 8000, Capacitance: 150e-12}

	f0 := 1 / (2 * math.Pi * math.Sqrt(pickup.Inductance*pickup.Capacitance))
	fmt.Printf("unloaded resonance near %.0f Hz\n", f0)

	// Output:
	// unloaded resonance near 6946 Hz
}
