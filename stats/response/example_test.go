package response_test

import (
	"fmt"

	"github.com/werktisch/bass-circuit/stats/response"
)

func ExampleAnalyze() {
	freqs := []float64{100, 500, 1000, 2000, 4000, 8000, 16000}
	magDB := []float64{0, 0.2, 0.8, 2.5, 4.0, -5.0, -20.0}

	s := response.Analyze(freqs, magDB)

	fmt.Printf("peak: %.1f dB at %.0f Hz\n", s.PeakRelDB, s.PeakFreq)
	fmt.Printf("-3 dB cutoff: %.0f Hz (found=%v)\n", s.CutoffFreq, s.CutoffFound)

	// Output:
	// peak: 4.0 dB at 4000 Hz
	// -3 dB cutoff: 8000 Hz (found=true)
}
