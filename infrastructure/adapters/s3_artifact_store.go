package adapters

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/cocoWang-19/AI-Lyric-Assistant/application/ports/outbound"
	"github.com/cocoWang-19/AI-Lyric-Assistant/config"
	"github.com/cocoWang-19/AI-Lyric-Assistant/domain"
)

// s3ArtifactStore is the STORAGE_PROVIDER=s3 alternative to GCS, with the
// same public-read and immutable-cache semantics.
type s3ArtifactStore struct {
	s3Svc         *s3.S3
	storageConfig *config.StorageConfig
	logger        outbound.LoggerPort
}

func NewS3ArtifactStore(s3Svc *s3.S3, storageConfig *config.StorageConfig, logger outbound.LoggerPort) outbound.ArtifactStorePort {
	return &s3ArtifactStore{
		s3Svc:         s3Svc,
		storageConfig: storageConfig,
		logger:        logger,
	}
}

func (s *s3ArtifactStore) EnsureConfigured() error {
	if s.storageConfig.Bucket == "" {
		return domain.ErrStorageNotConfigured
	}
	return nil
}

func (s *s3ArtifactStore) Save(ctx context.Context, artifact domain.AudioArtifact) (string, error) {
	if err := s.EnsureConfigured(); err != nil {
		return "", err
	}

	putInput := &s3.PutObjectInput{
		Bucket:        aws.String(s.storageConfig.Bucket),
		Key:           aws.String(artifact.Name),
		Body:          bytes.NewReader(artifact.Content),
		ContentLength: aws.Int64(int64(len(artifact.Content))),
		ContentType:   aws.String(artifact.ContentType),
		CacheControl:  aws.String(artifactCacheControl),
		ACL:           aws.String("public-read"),
	}

	if _, err := s.s3Svc.PutObjectWithContext(ctx, putInput); err != nil {
		s.logger.ErrorWithFields(err, "Failed to upload object to S3", map[string]interface{}{
			"bucket":   s.storageConfig.Bucket,
			"fileName": artifact.Name,
		})
		return "", err
	}

	url := s.publicURL(artifact.Name)
	s.logger.DebugWithFields("Uploaded audio artifact to S3", map[string]interface{}{
		"url": url,
	})

	return url, nil
}

func (s *s3ArtifactStore) publicURL(name string) string {
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.storageConfig.Bucket, name)
}
