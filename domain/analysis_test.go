package domain

import (
	"encoding/json"
	"errors"
	"regexp"
	"testing"
)

func TestAnalysis_UnmarshalAndValidate(t *testing.T) {
	payload := `{"情感":"悲傷","BPM":72,"和弦":["Am","F","C","G"],"語音風格":"悲傷"}`

	var analysis Analysis
	if err := json.Unmarshal([]byte(payload), &analysis); err != nil {
		t.Fatal("Failed to unmarshal analysis:", err)
	}
	if err := analysis.Validate(); err != nil {
		t.Fatal("Expected valid analysis, got:", err)
	}
	if analysis.Emotion != "悲傷" || analysis.VocalStyle != "悲傷" {
		t.Fatalf("Unexpected fields: %+v", analysis)
	}
}

func TestAnalysis_ValidateMissingFields(t *testing.T) {
	payloads := []string{
		`{"BPM":72,"和弦":"Am-F","語音風格":"悲傷"}`,
		`{"情感":"悲傷","和弦":"Am-F","語音風格":"悲傷"}`,
		`{"情感":"悲傷","BPM":72,"語音風格":"悲傷"}`,
		`{"情感":"悲傷","BPM":72,"和弦":"Am-F"}`,
		`{"情感":"悲傷","BPM":null,"和弦":"Am-F","語音風格":"悲傷"}`,
	}

	for _, payload := range payloads {
		var analysis Analysis
		if err := json.Unmarshal([]byte(payload), &analysis); err != nil {
			t.Fatal("Failed to unmarshal analysis:", err)
		}
		if err := analysis.Validate(); !errors.Is(err, ErrMalformedAnalysis) {
			t.Fatalf("Validate(%s) = %v, want ErrMalformedAnalysis", payload, err)
		}
	}
}

func TestAnalysis_DerivedFieldsOmittedUntilSet(t *testing.T) {
	analysis := Analysis{
		Emotion:    "歡快",
		Tempo:      json.RawMessage(`128`),
		Chords:     json.RawMessage(`"C-G-Am-F"`),
		VocalStyle: "歡快",
	}

	payload, err := json.Marshal(&analysis)
	if err != nil {
		t.Fatal("Failed to marshal analysis:", err)
	}
	if regexp.MustCompile(`音頻檔案連結|TTS用`).Match(payload) {
		t.Fatalf("Derived keys should be omitted before the pipeline sets them: %s", payload)
	}

	analysis.SynthesisStyle = "joyful"
	analysis.AudioURL = "https://storage.googleapis.com/bucket/audio.mp3"
	payload, err = json.Marshal(&analysis)
	if err != nil {
		t.Fatal("Failed to marshal analysis:", err)
	}
	for _, key := range []string{`"情感"`, `"BPM"`, `"和弦"`, `"語音風格"`, `"英文語音風格(TTS用)"`, `"音頻檔案連結"`} {
		if !regexp.MustCompile(regexp.QuoteMeta(key)).Match(payload) {
			t.Fatalf("Marshalled analysis is missing %s: %s", key, payload)
		}
	}
}

func TestNewAudioArtifact_Naming(t *testing.T) {
	content := []byte{0xFF, 0xFB, 0x90}
	artifact := NewAudioArtifact(content)

	if artifact.ContentType != "audio/mp3" {
		t.Fatalf("ContentType = %q, want audio/mp3", artifact.ContentType)
	}
	namePattern := regexp.MustCompile(`^audio-\d+-[0-9a-f]{8}\.mp3$`)
	if !namePattern.MatchString(artifact.Name) {
		t.Fatalf("Name %q does not match the audio-<ts>-<suffix>.mp3 convention", artifact.Name)
	}

	other := NewAudioArtifact(content)
	if other.Name == artifact.Name {
		t.Fatalf("Two artifacts shared a name: %q", artifact.Name)
	}
}
