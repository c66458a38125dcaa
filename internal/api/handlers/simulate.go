package handlers

import (
	"context"
	"math"

	"github.com/danielgtaylor/huma/v2"
	"github.com/rs/zerolog/log"

	"github.com/werktisch/bass-circuit/circuit"
	"github.com/werktisch/bass-circuit/measure/sweep"
	"github.com/werktisch/bass-circuit/measure/tone"
	"github.com/werktisch/bass-circuit/pkg/models"
	"github.com/werktisch/bass-circuit/stats/response"
	"github.com/werktisch/bass-circuit/waveform"
)

// SimulateHandler handles circuit simulation HTTP requests
type SimulateHandler struct {
	sweep sweep.Sweep
}

// NewSimulateHandler creates a simulation handler using the given sweep
// parameters for all frequency-domain requests.
func NewSimulateHandler(s sweep.Sweep) *SimulateHandler {
	return &SimulateHandler{sweep: s}
}

// ComputeResponse sweeps the transfer function of the requested setup and
// returns the sampled curve together with its resonance summary.
func (h *SimulateHandler) ComputeResponse(ctx context.Context, req *models.ComputeResponseRequest) (*models.ComputeResponseResponse, error) {
	resp, st, err := h.run(req.Body)
	if err != nil {
		return nil, err
	}

	magDB := resp.MagnitudeDB()
	phase := resp.PhaseDegrees()
	points := make([]models.FrequencyPoint, resp.Len())
	for i := range points {
		points[i] = models.FrequencyPoint{
			Frequency:   resp.Frequencies[i],
			MagnitudeDB: magDB[i],
			PhaseDeg:    phase[i],
		}
	}

	log.Info().Int("points", len(points)).Float64("peakFreq", st.PeakFreq).Msg("Computed frequency response")

	out := &models.ComputeResponseResponse{}
	out.Body.Points = points
	out.Body.Stats = statsPayload(st)
	return out, nil
}

// AnalyzeResponse returns the resonance summary of the requested setup.
func (h *SimulateHandler) AnalyzeResponse(ctx context.Context, req *models.AnalyzeResponseRequest) (*models.AnalyzeResponseResponse, error) {
	_, st, err := h.run(req.Body)
	if err != nil {
		return nil, err
	}
	return &models.AnalyzeResponseResponse{Body: statsPayload(st)}, nil
}

// SynthesizeWaveform returns time-domain input/output traces at the
// requested test frequency, plus the measured gain and phase.
func (h *SimulateHandler) SynthesizeWaveform(ctx context.Context, req *models.SynthesizeWaveformRequest) (*models.SynthesizeWaveformResponse, error) {
	n, err := h.network(req.Body.Params)
	if err != nil {
		return nil, err
	}

	pair, err := waveform.Synthesize(n, req.Body.Frequency)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity("Invalid test frequency", err)
	}
	res, err := tone.Analyze(pair)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to measure tone", err)
	}

	points := make([]models.WaveformPoint, pair.Len())
	for i := range points {
		points[i] = models.WaveformPoint{
			Time:   pair.Time[i],
			Input:  pair.Input[i],
			Output: pair.Output[i],
		}
	}

	log.Info().Float64("frequency", pair.Frequency).Float64("gainDB", res.GainDB).Msg("Synthesized waveform")

	out := &models.SynthesizeWaveformResponse{}
	out.Body.Frequency = pair.Frequency
	out.Body.SampleRate = pair.SampleRate
	out.Body.GainDB = res.GainDB
	out.Body.PhaseDeg = res.Phase * 180 / math.Pi
	out.Body.Points = points
	return out, nil
}

func (h *SimulateHandler) network(params models.CircuitParams) (*circuit.Network, error) {
	n, err := circuit.NewNetwork(params.ToConfig())
	if err != nil {
		return nil, huma.Error422UnprocessableEntity("Invalid circuit parameters", err)
	}
	return n, nil
}

func (h *SimulateHandler) run(params models.CircuitParams) (*sweep.Response, response.Stats, error) {
	n, err := h.network(params)
	if err != nil {
		return nil, response.Stats{}, err
	}
	resp, err := h.sweep.Run(n)
	if err != nil {
		return nil, response.Stats{}, huma.Error500InternalServerError("Sweep failed", err)
	}
	return resp, response.AnalyzeResponse(resp), nil
}

func statsPayload(st response.Stats) models.ResponseStats {
	out := models.ResponseStats{
		ReferenceDB: st.ReferenceDB,
		PeakFreq:    st.PeakFreq,
		PeakDB:      st.PeakDB,
		PeakRelDB:   st.PeakRelDB,
	}
	if st.CutoffFound {
		f := st.CutoffFreq
		out.CutoffFreq = &f
	}
	return out
}
