package imagestore

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// PutObjectAPI is the slice of *s3.Client the store needs.
type PutObjectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type s3Store struct {
	client PutObjectAPI
	bucket string
	prefix string
	now    func() time.Time
}

// NewS3 loads the default AWS credential chain and stores images in bucket
// under prefix.
func NewS3(ctx context.Context, bucket, prefix string) (Store, error) {
	if bucket == "" {
		return nil, fmt.Errorf("s3 image store: S3_BUCKET is not set")
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}
	return NewS3WithClient(s3.NewFromConfig(cfg), bucket, prefix, nil), nil
}

func NewS3WithClient(client PutObjectAPI, bucket, prefix string, now func() time.Time) Store {
	if now == nil {
		now = time.Now
	}
	return &s3Store{client: client, bucket: bucket, prefix: prefix, now: now}
}

// Save returns the file name only; the object key is prefix+name.
func (s *s3Store) Save(ctx context.Context, userID uint, data []byte) (string, error) {
	name := FileName(userID, s.now())
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(s.prefix + name),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String("image/png"),
	})
	if err != nil {
		return "", fmt.Errorf("put s3://%s/%s%s: %w", s.bucket, s.prefix, name, err)
	}
	return name, nil
}
