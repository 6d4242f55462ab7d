package outbound

import (
	"context"

	"github.com/cocoWang-19/AI-Lyric-Assistant/domain"
)

type ArtifactStorePort interface {
	// EnsureConfigured fails with domain.ErrStorageNotConfigured when no
	// bucket is set. The pipeline calls it before synthesis so no audio is
	// generated that could never be stored.
	EnsureConfigured() error
	// Save uploads the artifact publicly and returns its public URL.
	Save(ctx context.Context, artifact domain.AudioArtifact) (string, error)
}
