package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path"
	"strings"

	"github.com/GioMjds/paynal-prajik/config"
	"github.com/GioMjds/paynal-prajik/infras/otel"
	"github.com/GioMjds/paynal-prajik/shared/constant"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
)

const (
	otelAttrFileName = "file_name"
	otelAttrBucket   = "bucket"
)

// S3 stores booking ID documents and room images in an S3 compatible bucket.
// An empty bucketName falls back to the configured bucket.
type S3 interface {
	UploadFile(ctx context.Context, bucketName, directory string, file multipart.File, fileHeader *multipart.FileHeader, fileName string) (url string, err error)
	UploadFileBytes(ctx context.Context, bucketName, directory, fileName, contentType string, fileData []byte) (url string, err error)
	DeleteFile(ctx context.Context, bucketName, directory, objectName string) error
	GetObjectNameFromURL(bucketName, url string) (objectName string)
}

type s3Impl struct {
	client *s3.Client
	config *config.Config
	otel   otel.Otel
}

func (svc *s3Impl) bucket(name string) string {
	if name == constant.Empty {
		return svc.config.External.S3.BucketName
	}

	return name
}

func (svc *s3Impl) newScope(ctx context.Context, operation, bucket, fileName string) (context.Context, otel.Scope) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+"."+operation)
	scope.SetAttributes(map[string]any{
		otelAttrFileName: fileName,
		otelAttrBucket:   bucket,
	})

	return ctx, scope
}

// publicBase is the URL prefix uploaded objects are served under. Without a public
// domain objects are addressed path style on the API endpoint.
func (svc *s3Impl) publicBase(bucket string) string {
	if domain := strings.TrimSuffix(svc.config.External.S3.PublicDomain, "/"); domain != constant.Empty {
		return domain
	}

	return strings.TrimSuffix(svc.config.External.S3.APIEndpoint, "/") + "/" + bucket
}

func (svc *s3Impl) UploadFile(ctx context.Context, bucketName, directory string, file multipart.File, fileHeader *multipart.FileHeader, fileName string) (url string, err error) {
	bucketName = svc.bucket(bucketName)

	ctx, scope := svc.newScope(ctx, "UploadFile", bucketName, fileName)
	defer scope.End()
	defer scope.TraceIfError(&err)

	data, err := io.ReadAll(file)
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to read file: %w", err)
	}

	contentType := fileHeader.Header.Get(constant.RequestHeaderContentType)

	return svc.upload(ctx, bucketName, directory, fileName, contentType, data)
}

func (svc *s3Impl) UploadFileBytes(ctx context.Context, bucketName, directory, fileName, contentType string, fileData []byte) (url string, err error) {
	bucketName = svc.bucket(bucketName)

	ctx, scope := svc.newScope(ctx, "UploadFileBytes", bucketName, fileName)
	defer scope.End()
	defer scope.TraceIfError(&err)

	return svc.upload(ctx, bucketName, directory, fileName, contentType, fileData)
}

func (svc *s3Impl) DeleteFile(ctx context.Context, bucketName, directory, objectName string) (err error) {
	bucketName = svc.bucket(bucketName)

	ctx, scope := svc.newScope(ctx, "DeleteFile", bucketName, objectName)
	defer scope.End()
	defer scope.TraceIfError(&err)

	_, err = svc.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucketName),
		Key:    aws.String(path.Join(directory, objectName)),
	})
	if err != nil {
		log.Error().Err(err).Str("object", objectName).Msg("failed to delete file from S3")

		return fmt.Errorf("failed to delete file from S3: %w", err)
	}

	return nil
}

// GetObjectNameFromURL returns the object key of a URL produced by upload, or "" for foreign URLs.
func (svc *s3Impl) GetObjectNameFromURL(bucketName, url string) (objectName string) {
	bucketName = svc.bucket(bucketName)

	prefixes := []string{
		svc.publicBase(bucketName) + "/",
		strings.TrimSuffix(svc.config.External.S3.APIEndpoint, "/") + "/" + bucketName + "/",
	}

	for _, prefix := range prefixes {
		if name, ok := strings.CutPrefix(url, prefix); ok && prefix != "/" {
			return name
		}
	}

	return constant.Empty
}

func (svc *s3Impl) upload(ctx context.Context, bucket, directory, fileName, contentType string, data []byte) (string, error) {
	objectKey := path.Join(directory, fileName)

	_, err := svc.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(objectKey),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		log.Error().Err(err).Str("object", objectKey).Msg("failed to upload file to S3")

		return constant.Empty, fmt.Errorf("failed to upload file to S3: %w", err)
	}

	return svc.publicBase(bucket) + "/" + objectKey, nil
}

func New(config *config.Config, otel otel.Otel) S3 {
	s3Config := config.External.S3

	cfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithRegion(s3Config.Region),
		awsConfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s3Config.AccessKeyID,
			s3Config.SecretAccessKey,
			constant.Empty,
		)),
	)
	if err != nil {
		log.Error().Err(err).Msg("Error loading AWS configuration")
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if s3Config.APIEndpoint != constant.Empty {
			o.BaseEndpoint = aws.String(s3Config.APIEndpoint)
		}

		o.UsePathStyle = true
	})

	return &s3Impl{
		client: client,
		config: config,
		otel:   otel,
	}
}
