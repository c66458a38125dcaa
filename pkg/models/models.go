package models

import (
	"time"

	"github.com/werktisch/bass-circuit/circuit"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Body struct {
		Status  string    `json:"status" example:"healthy" doc:"Service health status"`
		Version string    `json:"version" example:"1.0.0" doc:"API version"`
		Time    time.Time `json:"time" doc:"Current server time"`
	}
}

// CircuitParams describes one control setup of the instrument. All fields
// are optional; zero values fall back to the defaults of circuit.DefaultConfig.
// Units follow the instrument-facing convention: resistances in ohms except
// pickup DC resistance, capacitances in microfarads, cable length in meters.
type CircuitParams struct {
	NeckInductance   float64  `json:"neck_inductance,omitempty" minimum:"0" maximum:"20" doc:"Neck pickup inductance in henries"`
	NeckResistance   float64  `json:"neck_resistance,omitempty" minimum:"0" maximum:"50000" doc:"Neck pickup DC resistance in ohms"`
	BridgeInductance float64  `json:"bridge_inductance,omitempty" minimum:"0" maximum:"20" doc:"Bridge pickup inductance in henries"`
	BridgeResistance float64  `json:"bridge_resistance,omitempty" minimum:"0" maximum:"50000" doc:"Bridge pickup DC resistance in ohms"`
	NeckVolume       *float64 `json:"neck_volume,omitempty" minimum:"0" maximum:"10" doc:"Neck volume knob position, 0..10"`
	BridgeVolume     *float64 `json:"bridge_volume,omitempty" minimum:"0" maximum:"10" doc:"Bridge volume knob position, 0..10"`
	Tone             *float64 `json:"tone,omitempty" minimum:"0" maximum:"10" doc:"Tone knob position, 0..10"`
	PotTotal         float64  `json:"pot_total,omitempty" minimum:"0" doc:"Pot track resistance in ohms, e.g. 250000"`
	ToneCapMicro     float64  `json:"tone_cap,omitempty" minimum:"0" maximum:"1" doc:"Tone capacitor value in microfarads"`
	CapTolerance     float64  `json:"cap_tolerance,omitempty" minimum:"-10" maximum:"10" doc:"Tone capacitor tolerance in percent"`
	CableMeters      float64  `json:"cable_length,omitempty" minimum:"0" maximum:"30" doc:"Instrument cable length in meters"`
	GroundResistance *float64 `json:"ground_resistance,omitempty" minimum:"0" maximum:"5" doc:"Shared control-ground resistance in ohms"`
	AmpInput         float64  `json:"amp_input,omitempty" minimum:"0" doc:"Amplifier input resistance in ohms"`
}

// ToConfig converts the request parameters into a circuit configuration,
// filling unset fields from the stock setup.
func (p CircuitParams) ToConfig() circuit.Config {
	cfg := circuit.DefaultConfig()
	if p.NeckInductance > 0 {
		cfg.Neck.Inductance = p.NeckInductance
	}
	if p.NeckResistance > 0 {
		cfg.Neck.Resistance = p.NeckResistance
	}
	if p.BridgeInductance > 0 {
		cfg.Bridge.Inductance = p.BridgeInductance
	}
	if p.BridgeResistance > 0 {
		cfg.Bridge.Resistance = p.BridgeResistance
	}
	if p.NeckVolume != nil {
		cfg.NeckVolume.Position = *p.NeckVolume
	}
	if p.BridgeVolume != nil {
		cfg.BridgeVolume.Position = *p.BridgeVolume
	}
	if p.Tone != nil {
		cfg.Tone.Position = *p.Tone
	}
	if p.PotTotal > 0 {
		cfg.NeckVolume.Total = p.PotTotal
		cfg.BridgeVolume.Total = p.PotTotal
		cfg.Tone.Total = p.PotTotal
	}
	if p.ToneCapMicro > 0 {
		cfg.ToneCap.Nominal = p.ToneCapMicro * 1e-6
	}
	cfg.ToneCap.TolerancePercent = p.CapTolerance
	if p.CableMeters > 0 {
		cfg.Wiring.CableCapacitance = circuit.CableCapacitanceForLength(p.CableMeters)
	}
	if p.GroundResistance != nil {
		cfg.Wiring.GroundResistance = *p.GroundResistance
	}
	if p.AmpInput > 0 {
		cfg.Amplifier.InputResistance = p.AmpInput
	}
	return cfg
}

// FrequencyPoint represents one sample of the transfer function
type FrequencyPoint struct {
	Frequency   float64 `json:"frequency" doc:"Frequency in Hz"`
	MagnitudeDB float64 `json:"magnitude_db" doc:"Magnitude in dB"`
	PhaseDeg    float64 `json:"phase_deg" doc:"Phase in degrees"`
}

// ResponseStats summarizes the resonance behavior of a swept response
type ResponseStats struct {
	ReferenceDB  float64  `json:"reference_db" doc:"Magnitude at the lowest swept frequency in dB"`
	PeakFreq     float64  `json:"peak_frequency" doc:"Resonance peak frequency in Hz"`
	PeakDB       float64  `json:"peak_db" doc:"Magnitude at the peak in dB"`
	PeakRelDB    float64  `json:"peak_rel_db" doc:"Peak height above the low-frequency reference in dB"`
	CutoffFreq   *float64 `json:"cutoff_frequency,omitempty" doc:"-3 dB cutoff frequency in Hz, absent when the response never drops below the threshold"`
}

// ComputeResponseRequest asks for a frequency sweep of one control setup
type ComputeResponseRequest struct {
	Body CircuitParams
}

// ComputeResponseResponse carries the swept transfer function and its stats
type ComputeResponseResponse struct {
	Body struct {
		Points []FrequencyPoint `json:"points" doc:"Log-spaced frequency response samples"`
		Stats  ResponseStats    `json:"stats" doc:"Resonance summary of the response"`
	}
}

// AnalyzeResponseRequest asks for the resonance summary only
type AnalyzeResponseRequest struct {
	Body CircuitParams
}

// AnalyzeResponseResponse carries the resonance summary of a setup
type AnalyzeResponseResponse struct {
	Body ResponseStats
}

// WaveformPoint is one oscilloscope sample of the input/output pair
type WaveformPoint struct {
	Time   float64 `json:"time" doc:"Sample time in seconds"`
	Input  float64 `json:"input" doc:"Source sine value"`
	Output float64 `json:"output" doc:"Circuit output value"`
}

// SynthesizeWaveformRequest asks for time-domain traces at a test frequency
type SynthesizeWaveformRequest struct {
	Body struct {
		Params    CircuitParams `json:"params" doc:"Control setup to simulate"`
		Frequency float64       `json:"frequency" minimum:"1" maximum:"20000" required:"true" doc:"Test tone frequency in Hz"`
	}
}

// SynthesizeWaveformResponse carries the synthesized traces
type SynthesizeWaveformResponse struct {
	Body struct {
		Frequency  float64         `json:"frequency" doc:"Test tone frequency in Hz"`
		SampleRate float64         `json:"sample_rate" doc:"Synthesis sample rate in Hz"`
		GainDB     float64         `json:"gain_db" doc:"Circuit gain at the test frequency in dB"`
		PhaseDeg   float64         `json:"phase_deg" doc:"Circuit phase at the test frequency in degrees"`
		Points     []WaveformPoint `json:"points" doc:"Time-aligned input/output samples"`
	}
}
