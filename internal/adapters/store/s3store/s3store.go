// Package s3store implements ports.ObjectStorage on an S3-compatible object
// store (AWS S3, MinIO, R2). Each content bucket maps to an S3 bucket of the
// same name.
package s3store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/MiguelCav2025/sitecav/internal/domain"
	"github.com/MiguelCav2025/sitecav/internal/platform/config"
	"github.com/MiguelCav2025/sitecav/internal/ports"
)

var _ ports.ObjectStorage = (*Store)(nil)

// Store uploads through the S3 API and serves objects from PublicURL.
type Store struct {
	client    *s3.Client
	publicURL string
}

// Open builds an S3 client from cfg. Static credentials are used when set;
// otherwise the default AWS credential chain applies.
func Open(ctx context.Context, cfg config.S3Config) (*Store, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading AWS configuration: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
		o.RequestChecksumCalculation = aws.RequestChecksumCalculationWhenRequired
		o.ResponseChecksumValidation = aws.ResponseChecksumValidationWhenRequired
	})

	publicURL := cfg.PublicURL
	if publicURL == "" {
		publicURL = cfg.Endpoint
	}
	return New(client, publicURL), nil
}

// New wraps an S3 client. Objects are public at {publicURL}/{bucket}/{path}.
func New(client *s3.Client, publicURL string) *Store {
	return &Store{client: client, publicURL: strings.TrimSuffix(publicURL, "/")}
}

// Upload puts the object unless one already exists at path. The body is
// buffered so the request can be signed without a trailing checksum, which
// some S3-compatible servers reject.
func (s *Store) Upload(ctx context.Context, bucket, path string, body io.Reader, contentType string) (string, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return "", fmt.Errorf("reading upload body: %w", err)
	}

	input := &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(path),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		IfNoneMatch:   aws.String("*"),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", translate(err)
	}
	return path, nil
}

// PublicURL returns {publicURL}/{bucket}/{path} with each path segment
// escaped.
func (s *Store) PublicURL(bucket, path string) string {
	return s.publicURL + "/" + escapePath(bucket, path)
}

// ObjectPath is the inverse of PublicURL.
func (s *Store) ObjectPath(bucket, rawURL string) (string, bool) {
	rest, ok := strings.CutPrefix(rawURL, s.publicURL+"/"+url.PathEscape(bucket)+"/")
	if !ok || rest == "" {
		return "", false
	}
	if i := strings.IndexAny(rest, "?#"); i >= 0 {
		rest = rest[:i]
	}
	path, err := url.PathUnescape(rest)
	if err != nil {
		return "", false
	}
	return path, true
}

// Remove deletes the objects in one DeleteObjects call. Missing keys are
// not reported by S3.
func (s *Store) Remove(ctx context.Context, bucket string, paths ...string) error {
	if len(paths) == 0 {
		return nil
	}

	objects := make([]types.ObjectIdentifier, len(paths))
	for i, p := range paths {
		objects[i] = types.ObjectIdentifier{Key: aws.String(p)}
	}

	out, err := s.client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
		Bucket: aws.String(bucket),
		Delete: &types.Delete{Objects: objects, Quiet: aws.Bool(true)},
	})
	if err != nil {
		return translate(err)
	}
	if len(out.Errors) > 0 {
		first := out.Errors[0]
		return fmt.Errorf("removing %s/%s: %s: %s", bucket,
			aws.ToString(first.Key), aws.ToString(first.Code), aws.ToString(first.Message))
	}
	return nil
}

// translate maps S3 API errors onto domain sentinels.
func translate(err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "PreconditionFailed", "ConditionalRequestConflict":
			return fmt.Errorf("%w: %w", domain.ErrConflict, err)
		case "NoSuchBucket", "NoSuchKey":
			return fmt.Errorf("%w: %w", domain.ErrNotFound, err)
		case "AccessDenied", "InvalidAccessKeyId", "SignatureDoesNotMatch":
			return fmt.Errorf("%w: %w", domain.ErrForbidden, err)
		case "SlowDown", "ServiceUnavailable", "InternalError":
			return fmt.Errorf("%w: %w", domain.ErrUnavailable, err)
		}
	}
	return err
}

func escapePath(bucket, path string) string {
	segments := strings.Split(strings.TrimPrefix(path, "/"), "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return url.PathEscape(bucket) + "/" + strings.Join(segments, "/")
}
