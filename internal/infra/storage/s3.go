// Package storage holds documents in S3 (or any S3-compatible
// endpoint). The database keeps only metadata rows; the object body
// lives here.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	appconfig "lexsuite-app/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
)

// ErrNotConfigured is returned while S3 env vars are absent.
var ErrNotConfigured = errors.New("document storage not configured")

// ObjectClient is the slice of the S3 API the store uses. Tests swap
// in a fake.
type ObjectClient interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// ObjectPresigner produces short-lived download URLs.
type ObjectPresigner interface {
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

type DocumentStore struct {
	client    ObjectClient
	presigner ObjectPresigner
	bucket    string
}

// Store is the process-wide document store. Nil until Init succeeds;
// handlers answer 503 while it is nil.
var Store *DocumentStore

// Init wires the store from env config. Missing configuration is
// logged and left as a placeholder rather than crashing startup.
func Init(ctx context.Context) {
	store, err := NewDocumentStore(ctx)
	if err != nil {
		log.Printf("⚠️ document storage disabled: %v", err)
		return
	}
	Store = store
	fmt.Println("✅ Document storage ready (bucket:", store.bucket+")")
}

func NewDocumentStore(ctx context.Context) (*DocumentStore, error) {
	if appconfig.S3_BUCKET == "" || appconfig.S3_REGION == "" {
		return nil, ErrNotConfigured
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(appconfig.S3_REGION),
	}
	if appconfig.S3_ACCESS_KEY_ID != "" && appconfig.S3_SECRET_ACCESS_KEY != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				appconfig.S3_ACCESS_KEY_ID,
				appconfig.S3_SECRET_ACCESS_KEY,
				"",
			),
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if appconfig.S3_ENDPOINT != "" {
			o.BaseEndpoint = aws.String(appconfig.S3_ENDPOINT)
			o.UsePathStyle = true
		}
	})

	return &DocumentStore{
		client:    client,
		presigner: s3.NewPresignClient(client),
		bucket:    appconfig.S3_BUCKET,
	}, nil
}

// NewDocumentStoreWithClient builds a store around injected clients,
// for tests.
func NewDocumentStoreWithClient(client ObjectClient, presigner ObjectPresigner, bucket string) *DocumentStore {
	return &DocumentStore{client: client, presigner: presigner, bucket: bucket}
}

func (s *DocumentStore) Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		return fmt.Errorf("put object %s: %w", key, err)
	}
	return nil
}

// PresignDownload returns a URL valid for 15 minutes.
func (s *DocumentStore) PresignDownload(ctx context.Context, key string) (string, error) {
	req, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, func(o *s3.PresignOptions) {
		o.Expires = 15 * time.Minute
	})
	if err != nil {
		return "", fmt.Errorf("presign %s: %w", key, err)
	}
	return req.URL, nil
}

func (s *DocumentStore) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete object %s: %w", key, err)
	}
	return nil
}
