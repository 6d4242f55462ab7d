package outbound

import (
	"context"

	"github.com/cocoWang-19/AI-Lyric-Assistant/domain"
)

type LyricsAnalyzerPort interface {
	Analyze(ctx context.Context, lyrics string) (*domain.Analysis, error)
}
