package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Config is the opaque storage configuration handed to the gateway at
// construction time.
type Config struct {
	Endpoint        string
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	UsePathStyle    bool
}

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}
)

type objectAPI interface {
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	HeadBucket(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
}

type presignAPI interface {
	PresignPutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// S3Gateway implements Gateway on top of aws-sdk-go-v2. It works with AWS
// S3, Cloudflare R2 and MinIO.
type S3Gateway struct {
	bucket    string
	client    objectAPI
	presigner presignAPI
	now       func() time.Time
}

// NewS3Gateway builds the S3 client once from cfg. The client is reused for
// the lifetime of the process.
func NewS3Gateway(ctx context.Context, cfg Config) (*S3Gateway, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("storage: bucket is required")
	}

	awsCfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("storage: load aws config: %w", err)
	}

	client := newS3ClientFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(strings.TrimRight(cfg.Endpoint, "/"))
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	return NewS3GatewayFromClient(client, cfg.Bucket), nil
}

// NewS3GatewayFromClient wraps an already configured client.
func NewS3GatewayFromClient(client *s3.Client, bucket string) *S3Gateway {
	return &S3Gateway{
		bucket:    bucket,
		client:    client,
		presigner: s3.NewPresignClient(client),
		now:       time.Now,
	}
}

func (g *S3Gateway) List(ctx context.Context, token string, limit int) (ListResult, error) {
	in := &s3.ListObjectsV2Input{
		Bucket: aws.String(g.bucket),
	}
	if token != "" {
		in.ContinuationToken = aws.String(token)
	}
	if limit > 0 {
		in.MaxKeys = aws.Int32(int32(limit))
	}

	out, err := g.client.ListObjectsV2(ctx, in)
	if err != nil {
		return ListResult{}, err
	}

	res := ListResult{Objects: make([]Object, 0, len(out.Contents))}
	for _, o := range out.Contents {
		res.Objects = append(res.Objects, Object{
			Key:          aws.ToString(o.Key),
			Size:         aws.ToInt64(o.Size),
			LastModified: aws.ToTime(o.LastModified),
		})
	}

	if aws.ToBool(out.IsTruncated) {
		res.NextToken = aws.ToString(out.NextContinuationToken)
	}

	return res, nil
}

func (g *S3Gateway) PresignPut(ctx context.Context, key, contentType string, ttl time.Duration) (PresignedRequest, error) {
	issued := g.now()

	req, err := g.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(g.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return PresignedRequest{}, err
	}

	return PresignedRequest{
		URL:          req.URL,
		Method:       req.Method,
		SignedHeader: req.SignedHeader,
		ExpiresAt:    issued.Add(ttl),
	}, nil
}

func (g *S3Gateway) PresignGet(ctx context.Context, key string, ttl time.Duration) (PresignedRequest, error) {
	issued := g.now()

	req, err := g.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(g.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return PresignedRequest{}, err
	}

	return PresignedRequest{
		URL:          req.URL,
		Method:       req.Method,
		SignedHeader: req.SignedHeader,
		ExpiresAt:    issued.Add(ttl),
	}, nil
}

func (g *S3Gateway) Delete(ctx context.Context, key string) error {
	_, err := g.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(g.bucket),
		Key:    aws.String(key),
	})
	return err
}

func (g *S3Gateway) Ping(ctx context.Context) error {
	_, err := g.client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(g.bucket),
	})
	return err
}
