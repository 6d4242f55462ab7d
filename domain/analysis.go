package domain

import (
	"encoding/json"
	"fmt"
)

// Analysis is the structured result of one lyrics analysis. The JSON keys are
// the wire format the model is instructed to produce and the browser client
// reads; the four required fields come from the model, the last two are filled
// in by the pipeline.
type Analysis struct {
	Emotion        string          `json:"情感"`
	Tempo          json.RawMessage `json:"BPM"`
	Chords         json.RawMessage `json:"和弦"`
	VocalStyle     string          `json:"語音風格"`
	SynthesisStyle string          `json:"英文語音風格(TTS用),omitempty"`
	AudioURL       string          `json:"音頻檔案連結,omitempty"`
}

// Validate checks that every required field survived parsing. Tempo and Chords
// are kept raw because models emit them as numbers, strings or arrays
// interchangeably; they only need to be present and non-null.
func (a *Analysis) Validate() error {
	if a.Emotion == "" {
		return fmt.Errorf("%w: missing 情感", ErrMalformedAnalysis)
	}
	if rawMissing(a.Tempo) {
		return fmt.Errorf("%w: missing BPM", ErrMalformedAnalysis)
	}
	if rawMissing(a.Chords) {
		return fmt.Errorf("%w: missing 和弦", ErrMalformedAnalysis)
	}
	if a.VocalStyle == "" {
		return fmt.Errorf("%w: missing 語音風格", ErrMalformedAnalysis)
	}
	return nil
}

func rawMissing(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}
