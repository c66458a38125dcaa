// Package dashboard renders interactive HTML charts of simulation results.
package dashboard

import (
	"fmt"
	"io"
	"net/http"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"github.com/rs/zerolog/log"

	"github.com/werktisch/bass-circuit/measure/sweep"
	"github.com/werktisch/bass-circuit/stats/response"
	"github.com/werktisch/bass-circuit/waveform"
)

// Charts holds one simulation run ready for rendering.
type Charts struct {
	Response *sweep.Response
	Stats    response.Stats
	Pair     *waveform.Pair
}

// Render writes the dashboard page to w.
func (c *Charts) Render(w io.Writer) error {
	page := components.NewPage()
	page.AddCharts(
		c.magnitudeChart(),
		c.phaseChart(),
		c.waveformChart(),
	)
	return page.Render(w)
}

// Handler serves the dashboard page over HTTP.
func (c *Charts) Handler(w http.ResponseWriter, _ *http.Request) {
	if err := c.Render(w); err != nil {
		log.Error().Err(err).Msg("Failed to render dashboard")
	}
}

func (c *Charts) magnitudeChart() *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title: "Frequency response",
			Subtitle: fmt.Sprintf("peak %.0f Hz, +%.1f dB above low-frequency level",
				c.Stats.PeakFreq, c.Stats.PeakRelDB),
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Frequency [Hz]",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:  "Magnitude [dB]",
			Scale: opts.Bool(true),
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			XAxisIndex: []int{0},
		}),
	)

	magDB := c.Response.MagnitudeDB()
	items := make([]opts.LineData, c.Response.Len())
	for i, v := range magDB {
		items[i] = opts.LineData{Value: v}
	}
	line.SetXAxis(frequencyLabels(c.Response.Frequencies)).
		AddSeries("magnitude", items).
		SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{
			Smooth:     opts.Bool(true),
			ShowSymbol: opts.Bool(false),
		}))
	return line
}

func (c *Charts) phaseChart() *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Phase response",
			Subtitle: "output phase relative to the pickup source",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Frequency [Hz]",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:  "Phase [deg]",
			Scale: opts.Bool(true),
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
	)

	phase := c.Response.PhaseDegrees()
	items := make([]opts.LineData, c.Response.Len())
	for i, v := range phase {
		items[i] = opts.LineData{Value: v}
	}
	line.SetXAxis(frequencyLabels(c.Response.Frequencies)).
		AddSeries("phase", items).
		SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{
			Smooth:     opts.Bool(true),
			ShowSymbol: opts.Bool(false),
		}))
	return line
}

func (c *Charts) waveformChart() *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Oscilloscope",
			Subtitle: fmt.Sprintf("%.0f Hz test tone, input vs. output", c.Pair.Frequency),
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Time [ms]",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Scale: opts.Bool(true),
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
	)

	labels := make([]string, c.Pair.Len())
	in := make([]opts.LineData, c.Pair.Len())
	out := make([]opts.LineData, c.Pair.Len())
	for i := range labels {
		labels[i] = fmt.Sprintf("%.3f", c.Pair.Time[i]*1e3)
		in[i] = opts.LineData{Value: c.Pair.Input[i]}
		out[i] = opts.LineData{Value: c.Pair.Output[i]}
	}
	line.SetXAxis(labels).
		AddSeries("input", in).
		AddSeries("output", out).
		SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{
			ShowSymbol: opts.Bool(false),
		}))
	return line
}

func frequencyLabels(freqs []float64) []string {
	labels := make([]string, len(freqs))
	for i, f := range freqs {
		labels[i] = fmt.Sprintf("%.0f", f)
	}
	return labels
}
