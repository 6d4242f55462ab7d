package config

import "os"

const (
	StorageProviderGCS = "gcs"
	StorageProviderS3  = "s3"
)

type StorageConfig struct {
	Provider string
	Bucket   string
	Region   string
}

// GetStorageConfig tolerates a missing bucket name at startup; the pipeline
// fails each request with a configuration error until one is set.
func GetStorageConfig() *StorageConfig {
	provider := os.Getenv("STORAGE_PROVIDER")
	if provider == "" {
		provider = StorageProviderGCS
	}

	bucket := os.Getenv("GCS_BUCKET_NAME")
	if provider == StorageProviderS3 {
		bucket = os.Getenv("S3_BUCKET_NAME")
	}

	return &StorageConfig{
		Provider: provider,
		Bucket:   bucket,
		Region:   os.Getenv("AWS_REGION"),
	}
}
