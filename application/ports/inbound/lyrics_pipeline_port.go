package inbound

import (
	"context"

	"github.com/cocoWang-19/AI-Lyric-Assistant/domain"
)

type AnalyzeLyricsParams struct {
	Lyrics string
	Gender string
}

type LyricsPipelinePort interface {
	AnalyzeLyrics(ctx context.Context, params AnalyzeLyricsParams) (*domain.Analysis, error)
}
