package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/dmitrijs2005/artfolio/internal/common"
	"github.com/dmitrijs2005/artfolio/internal/server/config"
)

// Seams for tests.
var (
	loadDefaultAWSConfig  = awsconfig.LoadDefaultConfig
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}
	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		return c.PutObject(ctx, in, optFns...)
	}
)

// S3Store uploads objects to an S3-compatible bucket with public-read ACL.
// Keys are used exactly as given; uniqueness is the caller's job.
type S3Store struct {
	accessKeyID     string
	secretAccessKey string
	bucket          string
	region          string
	baseEndpoint    string
	publicBaseURL   string

	mu     sync.Mutex
	client *s3.Client
}

func NewS3Store(cfg *config.Config) *S3Store {
	return &S3Store{
		accessKeyID:     cfg.S3AccessKeyID,
		secretAccessKey: cfg.S3SecretAccessKey,
		bucket:          cfg.S3Bucket,
		region:          cfg.S3Region,
		baseEndpoint:    cfg.S3BaseEndpoint,
		publicBaseURL:   strings.TrimRight(cfg.S3PublicBaseURL, "/"),
	}
}

func (s *S3Store) Ready() error {
	if s.accessKeyID == "" || s.secretAccessKey == "" {
		return common.ErrStorageNotConfigured
	}
	return nil
}

func (s *S3Store) getClient(ctx context.Context) (*s3.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client != nil {
		return s.client, nil
	}

	cfg, err := loadDefaultAWSConfig(ctx,
		awsconfig.WithRegion(s.region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.accessKeyID, s.secretAccessKey, "",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("aws config: %w", err)
	}

	s.client = newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if s.baseEndpoint != "" {
			o.BaseEndpoint = aws.String(s.baseEndpoint)
			o.UsePathStyle = true
		}
	})
	return s.client, nil
}

// Put stores data under name and returns the object's public URL.
func (s *S3Store) Put(ctx context.Context, name string, data []byte, contentType string) (string, error) {
	if err := s.Ready(); err != nil {
		return "", err
	}

	client, err := s.getClient(ctx)
	if err != nil {
		return "", err
	}

	_, err = putObject(client, ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(name),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(contentType),
		ACL:           types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", fmt.Errorf("s3 put %s: %w", name, err)
	}

	return s.objectURL(name), nil
}

func (s *S3Store) objectURL(key string) string {
	switch {
	case s.publicBaseURL != "":
		return s.publicBaseURL + "/" + key
	case s.baseEndpoint != "":
		return strings.TrimRight(s.baseEndpoint, "/") + "/" + s.bucket + "/" + key
	default:
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
	}
}
