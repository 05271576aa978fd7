package output

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// UploadTimeout bounds a single Publish call
const UploadTimeout = 10 * time.Second

// ErrNoBucket is returned when publishing is configured without a bucket
var ErrNoBucket = errors.New("S3 bucket not configured")

// S3Config holds the object storage settings, usually read from S3_* env vars
type S3Config struct {
	Bucket    string
	Region    string
	Endpoint  string // Empty means the AWS endpoint for Region
	AccessKey string // Empty means the default credential chain
	SecretKey string
}

// Enabled reports whether a bucket is configured
func (c S3Config) Enabled() bool {
	return c.Bucket != ""
}

// Publisher uploads rendered images to an S3-compatible bucket
type Publisher struct {
	client s3iface.S3API
	bucket string
	logger core.Logger
}

// NewPublisher creates a session from cfg and returns a publisher for its bucket
func NewPublisher(cfg S3Config, logger core.Logger) (*Publisher, error) {
	if !cfg.Enabled() {
		return nil, ErrNoBucket
	}

	awsConfig := &aws.Config{
		Region: aws.String(cfg.Region),
	}
	if cfg.Endpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.Endpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
	}
	if cfg.AccessKey != "" {
		awsConfig.Credentials = credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, "")
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 session: %w", err)
	}

	return NewPublisherWithClient(s3.New(sess), cfg.Bucket, logger), nil
}

// NewPublisherWithClient wraps an existing S3 client
func NewPublisherWithClient(client s3iface.S3API, bucket string, logger core.Logger) *Publisher {
	if logger == nil {
		logger = core.LoggerFunc(func(string, ...interface{}) {})
	}
	return &Publisher{client: client, bucket: bucket, logger: logger}
}

// Publish uploads data under key
func (p *Publisher) Publish(ctx context.Context, key string, data []byte, contentType string) error {
	ctx, cancel := context.WithTimeout(ctx, UploadTimeout)
	defer cancel()

	size := int64(len(data))
	_, err := p.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(p.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}

	p.logger.Printf("Uploaded %s to s3://%s (%d bytes)\n", key, p.bucket, size)
	return nil
}

// PublishFramebuffer encodes fb in the named format and uploads it
func (p *Publisher) PublishFramebuffer(ctx context.Context, key string, fb *core.Framebuffer, format string) error {
	var buf bytes.Buffer
	if err := Encode(&buf, fb, format); err != nil {
		return err
	}
	return p.Publish(ctx, key, buf.Bytes(), ContentType(format))
}
