package media

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/lucasmonteiro/portfolio-api/internal/config"
)

// Uploader stores processed media in an S3-compatible bucket
// (AWS S3 or MinIO via S3_ENDPOINT).
type Uploader struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

func NewUploader(cfg *config.Config) *Uploader {
	opts := s3.Options{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
	}

	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
		opts.UsePathStyle = true
	}

	baseURL := strings.TrimRight(cfg.S3BaseURL, "/")
	if baseURL == "" {
		if cfg.S3Endpoint != "" {
			baseURL = fmt.Sprintf("%s/%s", strings.TrimRight(cfg.S3Endpoint, "/"), cfg.S3Bucket)
		} else {
			baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3Bucket, cfg.S3Region)
		}
	}

	return &Uploader{
		client:  s3.New(opts),
		bucket:  cfg.S3Bucket,
		baseURL: baseURL,
	}
}

// Upload writes body under key and returns the public URL.
func (u *Uploader) Upload(
	ctx context.Context,
	key string,
	contentType string,
	body []byte,
) (string, error) {

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}

	return u.baseURL + "/" + key, nil
}
