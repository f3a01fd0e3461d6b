package utils

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"
)

// S3Config holds the connection settings for the S3-compatible object
// storage that listing images live in.
type S3Config struct {
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	Endpoint  string
	PublicURL string
}

// S3Storage uploads and deletes listing images. Objects are public-read;
// the returned URL goes straight into the listing record.
type S3Storage struct {
	client *s3.S3
	bucket string
	public string
}

func NewS3Storage(cfg S3Config) (*S3Storage, error) {
	sess, err := session.NewSession(&aws.Config{
		Region:   aws.String(cfg.Region),
		Endpoint: aws.String(cfg.Endpoint),
		Credentials: credentials.NewStaticCredentials(
			cfg.AccessKey, cfg.SecretKey, "",
		),
	})
	if err != nil {
		return nil, fmt.Errorf("create s3 session: %w", err)
	}
	return &S3Storage{
		client: s3.New(sess),
		bucket: cfg.Bucket,
		public: strings.TrimRight(cfg.PublicURL, "/"),
	}, nil
}

// Upload stores the image under images/{uid}/{uuid}_{filename} and returns
// its public URL.
func (s *S3Storage) Upload(ctx context.Context, data []byte, contentType, uid, filename string) (string, error) {
	key := fmt.Sprintf("images/%s/%s_%s", Sanitize(uid), uuid.New().String(), Sanitize(filename))

	_, err := s.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(contentType),
		ACL:           aws.String("public-read"),
	})
	if err != nil {
		return "", fmt.Errorf("unable to upload file to S3: %w", err)
	}

	return fmt.Sprintf("%s/%s", s.public, key), nil
}

// Delete removes one image object. Filenames are as returned by Upload,
// without the images/{uid}/ prefix.
func (s *S3Storage) Delete(ctx context.Context, filename, uid string) error {
	key := fmt.Sprintf("images/%s/%s", Sanitize(uid), Sanitize(filename))

	_, err := s.client.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("unable to delete file from S3: %w", err)
	}
	return nil
}

// Sanitize strips characters that break object keys. Newlines in filenames
// or uids would otherwise corrupt the stored path.
func Sanitize(s string) string {
	s = strings.ReplaceAll(s, "\n", "")
	s = strings.ReplaceAll(s, "\r", "")
	return strings.ReplaceAll(s, "/", "_")
}
