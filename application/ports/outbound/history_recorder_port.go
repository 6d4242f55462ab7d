package outbound

import (
	"context"

	"github.com/cocoWang-19/AI-Lyric-Assistant/domain"
)

type HistoryRecorderPort interface {
	Record(ctx context.Context, record domain.HistoryRecord) error
}
