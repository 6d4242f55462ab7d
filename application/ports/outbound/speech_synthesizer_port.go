package outbound

import "context"

type SynthesizeSpeechRequest struct {
	Text   string
	Style  string
	Gender string
}

type SpeechSynthesizerPort interface {
	Synthesize(ctx context.Context, req SynthesizeSpeechRequest) ([]byte, error)
}
