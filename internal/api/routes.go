package api

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/werktisch/bass-circuit/internal/api/handlers"
	"github.com/werktisch/bass-circuit/measure/sweep"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(api huma.API, s sweep.Sweep) {
	simulateHandler := handlers.NewSimulateHandler(s)

	huma.Register(api, huma.Operation{
		OperationID: "computeResponse",
		Method:      http.MethodPost,
		Path:        "/api/response",
		Summary:     "Compute frequency response",
		Description: "Sweeps the transfer function of a control setup across the audio band",
		Tags:        []string{"Simulation"},
	}, simulateHandler.ComputeResponse)

	huma.Register(api, huma.Operation{
		OperationID: "analyzeResponse",
		Method:      http.MethodPost,
		Path:        "/api/response/stats",
		Summary:     "Analyze frequency response",
		Description: "Returns resonance peak and -3 dB cutoff of a control setup",
		Tags:        []string{"Simulation"},
	}, simulateHandler.AnalyzeResponse)

	huma.Register(api, huma.Operation{
		OperationID: "synthesizeWaveform",
		Method:      http.MethodPost,
		Path:        "/api/waveform",
		Summary:     "Synthesize waveform",
		Description: "Returns time-domain input/output traces for a sine test tone",
		Tags:        []string{"Simulation"},
	}, simulateHandler.SynthesizeWaveform)
}
