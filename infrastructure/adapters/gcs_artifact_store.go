package adapters

import (
	"context"
	"fmt"

	"cloud.google.com/go/storage"
	"github.com/cocoWang-19/AI-Lyric-Assistant/application/ports/outbound"
	"github.com/cocoWang-19/AI-Lyric-Assistant/config"
	"github.com/cocoWang-19/AI-Lyric-Assistant/domain"
)

// Uploaded objects are never rewritten, so a year of caching is safe.
const artifactCacheControl = "public, max-age=31536000"

type gcsArtifactStore struct {
	client        *storage.Client
	storageConfig *config.StorageConfig
	logger        outbound.LoggerPort
}

func NewGcsArtifactStore(client *storage.Client, storageConfig *config.StorageConfig, logger outbound.LoggerPort) outbound.ArtifactStorePort {
	return &gcsArtifactStore{
		client:        client,
		storageConfig: storageConfig,
		logger:        logger,
	}
}

func (s *gcsArtifactStore) EnsureConfigured() error {
	if s.storageConfig.Bucket == "" {
		return domain.ErrStorageNotConfigured
	}
	return nil
}

func (s *gcsArtifactStore) Save(ctx context.Context, artifact domain.AudioArtifact) (string, error) {
	if err := s.EnsureConfigured(); err != nil {
		return "", err
	}

	w := s.client.Bucket(s.storageConfig.Bucket).Object(artifact.Name).NewWriter(ctx)
	w.ContentType = artifact.ContentType
	w.CacheControl = artifactCacheControl
	w.PredefinedACL = "publicRead"

	if _, err := w.Write(artifact.Content); err != nil {
		_ = w.Close()
		s.logger.ErrorWithFields(err, "Failed to upload object to GCS", map[string]interface{}{
			"bucket":   s.storageConfig.Bucket,
			"fileName": artifact.Name,
		})
		return "", err
	}
	if err := w.Close(); err != nil {
		s.logger.ErrorWithFields(err, "Failed to finalize GCS upload", map[string]interface{}{
			"bucket":   s.storageConfig.Bucket,
			"fileName": artifact.Name,
		})
		return "", err
	}

	url := s.publicURL(artifact.Name)
	s.logger.DebugWithFields("Uploaded audio artifact to GCS", map[string]interface{}{
		"url": url,
	})

	return url, nil
}

func (s *gcsArtifactStore) publicURL(name string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.storageConfig.Bucket, name)
}
