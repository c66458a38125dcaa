// Command bassplot sweeps the control network and writes a Bode magnitude
// plot to a PNG file.
//
// Usage:
//
//	bassplot [flags]
//
// Examples:
//
//	bassplot -o response.png
//	bassplot -tone 2 -cable 6 -o dark.png
//	bassplot -neck-vol 10 -bridge-vol 0 -pot 500000
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/werktisch/bass-circuit/circuit"
	"github.com/werktisch/bass-circuit/measure/sweep"
	"github.com/werktisch/bass-circuit/stats/response"
)

func main() {
	out := flag.String("o", "response.png", "output PNG file")
	neckVol := flag.Float64("neck-vol", 10, "neck volume knob position, 0..10")
	bridgeVol := flag.Float64("bridge-vol", 10, "bridge volume knob position, 0..10")
	toneKnob := flag.Float64("tone", 10, "tone knob position, 0..10")
	pot := flag.Float64("pot", 250e3, "pot track resistance in ohms")
	toneCap := flag.Float64("cap", 0.047, "tone capacitor in microfarads")
	cable := flag.Float64("cable", 4, "instrument cable length in meters")
	points := flag.Int("points", 500, "number of sweep points")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: bassplot [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Sweeps the passive control network and writes a Bode magnitude plot.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  bassplot -o response.png\n")
		fmt.Fprintf(os.Stderr, "  bassplot -tone 2 -cable 6 -o dark.png\n")
	}
	flag.Parse()

	cfg := circuit.DefaultConfig()
	cfg.NeckVolume.Position = *neckVol
	cfg.BridgeVolume.Position = *bridgeVol
	cfg.Tone.Position = *toneKnob
	cfg.NeckVolume.Total = *pot
	cfg.BridgeVolume.Total = *pot
	cfg.Tone.Total = *pot
	cfg.ToneCap.Nominal = *toneCap * 1e-6
	cfg.Wiring.CableCapacitance = circuit.CableCapacitanceForLength(*cable)

	n, err := circuit.NewNetwork(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	sw := sweep.Default()
	sw.Points = *points
	resp, err := sw.Run(n)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	st := response.AnalyzeResponse(resp)
	printStats(st)

	if err := savePlot(resp, st, *out); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s\n", *out)
}

func printStats(st response.Stats) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Reference\tPeak\tPeak Height\tCutoff (-3 dB)\n")
	fmt.Fprintf(tw, "---------\t----\t-----------\t--------------\n")
	cutoff := "none in band"
	if st.CutoffFound {
		cutoff = fmt.Sprintf("%.0f Hz", st.CutoffFreq)
	}
	fmt.Fprintf(tw, "%.2f dB\t%.0f Hz\t%.2f dB\t%s\n", st.ReferenceDB, st.PeakFreq, st.PeakRelDB, cutoff)
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func savePlot(resp *sweep.Response, st response.Stats, path string) error {
	p := plot.New()
	p.Title.Text = "Passive control network response"
	p.X.Label.Text = "Frequency [Hz]"
	p.Y.Label.Text = "Magnitude [dB]"
	p.X.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Add(plotter.NewGrid())

	magDB := resp.MagnitudeDB()
	pts := make(plotter.XYs, resp.Len())
	for i := range pts {
		pts[i].X = resp.Frequencies[i]
		pts[i].Y = magDB[i]
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(line)
	p.Legend.Add(fmt.Sprintf("peak %.0f Hz", st.PeakFreq), line)

	return p.Save(8*vg.Inch, 5*vg.Inch, path)
}
