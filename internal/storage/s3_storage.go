package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/cinelog/cinelog-backend/config"
)

// Upload folders the API hands out presigned URLs for. Posters and
// backdrops belong to movies, portraits to people, avatars to users.
var UploadFolders = map[string]bool{
	"posters":   true,
	"backdrops": true,
	"portraits": true,
	"avatars":   true,
}

// MaxUploadSize caps a single upload at 10 MiB.
const MaxUploadSize = 10 << 20

var allowedImageTypes = []string{
	"image/jpeg",
	"image/png",
	"image/webp",
}

const presignExpiry = 15 * time.Minute

type S3Storage struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

type PresignedUpload struct {
	UploadURL string `json:"upload_url"`
	FileURL   string `json:"file_url"`
	Key       string `json:"key"`
}

func NewS3Storage(cfg config.S3Config) *S3Storage {
	var awsCfg aws.Config

	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		awsCfg = aws.Config{
			Region: cfg.Region,
			Credentials: credentials.NewStaticCredentialsProvider(
				cfg.AccessKeyID,
				cfg.SecretAccessKey,
				"",
			),
		}
	} else {
		// Fall back to the default chain (env, shared config, IAM role).
		loaded, err := awsconfig.LoadDefaultConfig(context.TODO(),
			awsconfig.WithRegion(cfg.Region),
		)
		if err != nil {
			loaded = aws.Config{Region: cfg.Region}
		}
		awsCfg = loaded
	}

	return &S3Storage{
		client:  s3.NewFromConfig(awsCfg),
		bucket:  cfg.Bucket,
		baseURL: cfg.BaseURL,
	}
}

// PresignUpload returns a short-lived PUT URL for a new object in the
// given folder. The object key is a fresh UUID; the client's filename
// only contributes its extension.
func (s *S3Storage) PresignUpload(filename, contentType, folder string) (*PresignedUpload, error) {
	key := fmt.Sprintf("%s/%s%s", folder, uuid.New().String(), filepath.Ext(filename))

	presignClient := s3.NewPresignClient(s.client)
	req, err := presignClient.PresignPutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return nil, fmt.Errorf("failed to presign upload: %w", err)
	}

	fileURL := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.client.Options().Region, key)
	if s.baseURL != "" {
		fileURL = fmt.Sprintf("%s/%s", s.baseURL, key)
	}

	return &PresignedUpload{
		UploadURL: req.URL,
		FileURL:   fileURL,
		Key:       key,
	}, nil
}

// ValidateUpload checks the declared content type and size before any
// presigned URL is issued.
func (s *S3Storage) ValidateUpload(contentType string, size int64) error {
	allowed := false
	for _, t := range allowedImageTypes {
		if contentType == t {
			allowed = true
			break
		}
	}
	if !allowed {
		return fmt.Errorf("content type %s is not allowed", contentType)
	}
	if size > MaxUploadSize {
		return fmt.Errorf("file size exceeds maximum allowed size of %d bytes", int64(MaxUploadSize))
	}
	return nil
}
