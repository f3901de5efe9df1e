package bucket

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/bitrise-io/go-utils/v2/log"
)

// s3API is the part of the S3 client used here, kept narrow so tests can fake it.
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	PutObjectAcl(ctx context.Context, params *s3.PutObjectAclInput, optFns ...func(*s3.Options)) (*s3.PutObjectAclOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
	CreateMultipartUpload(ctx context.Context, params *s3.CreateMultipartUploadInput, optFns ...func(*s3.Options)) (*s3.CreateMultipartUploadOutput, error)
	UploadPart(ctx context.Context, params *s3.UploadPartInput, optFns ...func(*s3.Options)) (*s3.UploadPartOutput, error)
	CompleteMultipartUpload(ctx context.Context, params *s3.CompleteMultipartUploadInput, optFns ...func(*s3.Options)) (*s3.CompleteMultipartUploadOutput, error)
	AbortMultipartUpload(ctx context.Context, params *s3.AbortMultipartUploadInput, optFns ...func(*s3.Options)) (*s3.AbortMultipartUploadOutput, error)
}

var _ s3API = (*s3.Client)(nil)

// S3Client implements Client on top of an aws-sdk-go-v2 S3 client bound to a single bucket.
type S3Client struct {
	api    s3API
	bucket string
	logger log.Logger
}

var _ Client = (*S3Client)(nil)

// NewS3Client loads the AWS configuration for params and returns a client bound to params.Bucket.
func NewS3Client(ctx context.Context, params Params, logger log.Logger) (*S3Client, error) {
	if params.Bucket == "" {
		return nil, fmt.Errorf("bucket must not be empty")
	}

	cfg, err := loadAWSConfig(ctx, params, logger)
	if err != nil {
		return nil, fmt.Errorf("load aws credentials: %w", err)
	}

	client := s3.NewFromConfig(*cfg, func(o *s3.Options) {
		if params.Endpoint != "" {
			o.BaseEndpoint = aws.String(params.Endpoint)
			o.UsePathStyle = true
		}
	})

	return newS3Client(client, params.Bucket, logger), nil
}

func newS3Client(api s3API, bucket string, logger log.Logger) *S3Client {
	return &S3Client{
		api:    api,
		bucket: bucket,
		logger: logger,
	}
}

// Bucket returns the name of the bucket the client is bound to.
func (c *S3Client) Bucket() string {
	return c.bucket
}

// NewKey ...
func (c *S3Client) NewKey(remotePath string) Key {
	return Key{Name: remotePath}
}

// UploadFromFile uploads the file with a single PutObject call.
func (c *S3Client) UploadFromFile(ctx context.Context, key Key, localPath string) (int64, error) {
	file, err := os.Open(localPath)
	if err != nil {
		return 0, fmt.Errorf("open file: %w", err)
	}
	defer file.Close() //nolint:errcheck

	info, err := file.Stat()
	if err != nil {
		return 0, fmt.Errorf("stat file: %w", err)
	}

	c.logger.Debugf("Putting %s to s3://%s/%s", localPath, c.bucket, key.Name)
	_, err = c.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(c.bucket),
		Key:           aws.String(key.Name),
		Body:          file,
		ContentLength: aws.Int64(info.Size()),
	})
	if err != nil {
		return 0, fmt.Errorf("put object: %w", err)
	}

	return info.Size(), nil
}

// SetPublicRead applies the public-read canned ACL to the object.
func (c *S3Client) SetPublicRead(ctx context.Context, key Key) error {
	_, err := c.api.PutObjectAcl(ctx, &s3.PutObjectAclInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key.Name),
		ACL:    types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return fmt.Errorf("set public-read acl: %w", err)
	}
	return nil
}

// InitiateMultipart ...
func (c *S3Client) InitiateMultipart(ctx context.Context, remotePath string) (*MultipartSession, error) {
	output, err := c.api.CreateMultipartUpload(ctx, &s3.CreateMultipartUploadInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(remotePath),
	})
	if err != nil {
		return nil, fmt.Errorf("create multipart upload: %w", err)
	}

	uploadID := aws.ToString(output.UploadId)
	if uploadID == "" {
		return nil, fmt.Errorf("create multipart upload: empty upload id")
	}
	c.logger.Debugf("Multipart upload ID: %s", uploadID)

	return NewMultipartSession(c.NewKey(remotePath), uploadID), nil
}

// UploadPart uploads one part and records its ETag in the session.
func (c *S3Client) UploadPart(ctx context.Context, session *MultipartSession, partNumber int32, body io.ReadSeeker, size int64) error {
	if session.finalized {
		return ErrSessionFinalized
	}

	output, err := c.api.UploadPart(ctx, &s3.UploadPartInput{
		Bucket:        aws.String(c.bucket),
		Key:           aws.String(session.Key.Name),
		UploadId:      aws.String(session.UploadID),
		PartNumber:    aws.Int32(partNumber),
		Body:          body,
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		return fmt.Errorf("upload part %d: %w", partNumber, err)
	}

	session.addPart(partNumber, output.ETag)
	return nil
}

// CompleteMultipart commits the session. The object becomes visible only after this call succeeds.
func (c *S3Client) CompleteMultipart(ctx context.Context, session *MultipartSession) error {
	if session.finalized {
		return ErrSessionFinalized
	}

	_, err := c.api.CompleteMultipartUpload(ctx, &s3.CompleteMultipartUploadInput{
		Bucket:   aws.String(c.bucket),
		Key:      aws.String(session.Key.Name),
		UploadId: aws.String(session.UploadID),
		MultipartUpload: &types.CompletedMultipartUpload{
			Parts: session.completedParts(),
		},
	})
	if err != nil {
		return fmt.Errorf("complete multipart upload: %w", err)
	}

	session.finalized = true
	return nil
}

// AbortMultipart discards the session and the parts uploaded so far.
func (c *S3Client) AbortMultipart(ctx context.Context, session *MultipartSession) error {
	if session.finalized {
		return ErrSessionFinalized
	}

	_, err := c.api.AbortMultipartUpload(ctx, &s3.AbortMultipartUploadInput{
		Bucket:   aws.String(c.bucket),
		Key:      aws.String(session.Key.Name),
		UploadId: aws.String(session.UploadID),
	})
	if err != nil {
		return fmt.Errorf("abort multipart upload: %w", err)
	}

	session.finalized = true
	return nil
}

// ListKeys pages through ListObjectsV2 and keeps the backend order.
func (c *S3Client) ListKeys(ctx context.Context, prefix string) ([]Object, error) {
	paginator := s3.NewListObjectsV2Paginator(c.api, &s3.ListObjectsV2Input{
		Bucket: aws.String(c.bucket),
		Prefix: aws.String(prefix),
	})

	var objects []Object
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("list objects: %w", err)
		}

		for _, obj := range page.Contents {
			objects = append(objects, Object{
				Name:         aws.ToString(obj.Key),
				Size:         obj.Size,
				LastModified: obj.LastModified,
			})
		}
	}

	return objects, nil
}

// GetKey checks whether an object exists at path.
func (c *S3Client) GetKey(ctx context.Context, path string) (*Key, error) {
	_, err := c.api.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(path),
	})
	if err != nil {
		var apiError smithy.APIError
		if errors.As(err, &apiError) {
			switch apiError.(type) {
			case *types.NotFound, *types.NoSuchKey:
				c.logger.Debugf("key %s not found in bucket: %s", path, err)
				return nil, nil
			default:
				return nil, fmt.Errorf("aws api error: %w", err)
			}
		}
		return nil, fmt.Errorf("generic aws error: %w", err)
	}

	key := c.NewKey(path)
	return &key, nil
}

// DeleteKey ...
func (c *S3Client) DeleteKey(ctx context.Context, key Key) error {
	_, err := c.api.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key.Name),
	})
	if err != nil {
		return fmt.Errorf("delete object: %w", err)
	}
	return nil
}

// DownloadToFile writes the object content to localPath, creating parent directories as needed.
// A partially written file is removed on failure.
func (c *S3Client) DownloadToFile(ctx context.Context, key Key, localPath string) (int64, error) {
	if err := os.MkdirAll(filepath.Dir(localPath), 0755); err != nil {
		return 0, fmt.Errorf("create parent directory: %w", err)
	}

	file, err := os.Create(localPath)
	if err != nil {
		return 0, fmt.Errorf("creating file: %w", err)
	}

	downloader := manager.NewDownloader(c.api)
	n, err := downloader.Download(ctx, file, &s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key.Name),
	})
	closeErr := file.Close()
	if err != nil {
		if removeErr := os.Remove(localPath); removeErr != nil {
			c.logger.Warnf("Failed to remove partial download %s: %s", localPath, removeErr)
		}
		return 0, fmt.Errorf("download object: %w", err)
	}
	if closeErr != nil {
		return 0, fmt.Errorf("close file: %w", closeErr)
	}

	return n, nil
}
