package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3Options configures an S3-backed source. Credentials are optional; when
// AccessKeyID is empty the SDK's default chain (env, shared config, IMDS)
// is used instead of static credentials.
type S3Options struct {
	Bucket          string
	Region          string
	Prefix          string
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
}

// S3 serves files from one S3 bucket, optionally under a key prefix.
type S3 struct {
	client *s3.Client
	bucket string
	prefix string
}

// NewS3 builds an S3 source from the given options.
func NewS3(ctx context.Context, opts S3Options) (*S3, error) {
	if strings.TrimSpace(opts.Bucket) == "" {
		return nil, fmt.Errorf("bucket name is required")
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{}
	if opts.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(opts.Region))
	}
	if opts.AccessKeyID != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, opts.SessionToken),
		))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return &S3{
		client: s3.NewFromConfig(cfg),
		bucket: opts.Bucket,
		prefix: strings.TrimPrefix(opts.Prefix, "/"),
	}, nil
}

// Fetch downloads one object in full.
func (s *S3) Fetch(ctx context.Context, key string) ([]byte, error) {
	if strings.TrimSpace(key) == "" {
		return nil, fmt.Errorf("empty file key: %w", ErrNotFound)
	}
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.qualify(key)),
	})
	if err != nil {
		if isS3NotFound(err) {
			return nil, fmt.Errorf("s3://%s/%s: %w", s.bucket, key, ErrNotFound)
		}
		return nil, fmt.Errorf("get object %s: %w", key, err)
	}
	defer func() {
		_ = out.Body.Close()
	}()
	b, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("read object %s: %w", key, err)
	}
	return b, nil
}

// List pages through the bucket and returns the parseable object keys,
// relative to the configured prefix.
func (s *S3) List(ctx context.Context) ([]string, error) {
	var names []string
	p := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(s.prefix),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			if isS3NotFound(err) {
				return nil, fmt.Errorf("s3://%s: %w", s.bucket, ErrNotFound)
			}
			return nil, fmt.Errorf("list bucket %s: %w", s.bucket, err)
		}
		for _, obj := range page.Contents {
			key := aws.ToString(obj.Key)
			if s.prefix != "" {
				key = strings.TrimPrefix(strings.TrimPrefix(key, s.prefix), "/")
			}
			if key == "" || !Supported(key) {
				continue
			}
			names = append(names, key)
		}
	}
	return names, nil
}

func (s *S3) qualify(key string) string {
	if s.prefix == "" {
		return key
	}
	return strings.TrimSuffix(s.prefix, "/") + "/" + key
}

func isS3NotFound(err error) bool {
	var noKey *types.NoSuchKey
	var noBucket *types.NoSuchBucket
	return errors.As(err, &noKey) || errors.As(err, &noBucket)
}
