package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// AudioArtifact is a synthesized MP3 held in memory between the TTS call and
// the object storage upload. The name is unique per request, so the uploaded
// object is immutable and can be cached forever.
type AudioArtifact struct {
	Name        string
	Content     []byte
	ContentType string
}

// NewAudioArtifact wraps audio bytes with a generated object name of the form
// audio-<unix-ms>-<8 hex chars>.mp3. No collision check is done; the random
// suffix keeps the probability negligible.
func NewAudioArtifact(content []byte) AudioArtifact {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return AudioArtifact{
		Name:        fmt.Sprintf("audio-%d-%s.mp3", time.Now().UnixMilli(), suffix),
		Content:     content,
		ContentType: "audio/mp3",
	}
}

// HistoryRecord is one insert-only row of the analysis audit trail.
type HistoryRecord struct {
	InputLyrics    string
	OutputAnalysis string
	GenderUsed     string
	AudioFileURL   string
}
