package providers

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/felipemarinho/ewallet/internal/logger"
)

// UploadResult describes a stored object.
type UploadResult struct {
	FileName string
	FileURL  string
}

// S3StorageProvider stores avatar files in an S3-compatible bucket.
type S3StorageProvider struct {
	client  *minio.Client
	bucket  string
	baseURL string
}

// NewS3StorageProvider connects to an S3-compatible endpoint.
func NewS3StorageProvider(endpoint, accessKey, secretKey, bucket string, useSSL bool) (*S3StorageProvider, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, err
	}

	scheme := "http"
	if useSSL {
		scheme = "https"
	}

	return &S3StorageProvider{
		client:  client,
		bucket:  bucket,
		baseURL: fmt.Sprintf("%s://%s/%s", scheme, endpoint, bucket),
	}, nil
}

// UploadFile stores the object under folder/fileName and returns its URL.
func (p *S3StorageProvider) UploadFile(ctx context.Context, reader io.Reader, size int64, folder, fileName, contentType string) (UploadResult, error) {
	objectName := path.Join(folder, fileName)

	_, err := p.client.PutObject(ctx, p.bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})

	logger.Log.Infow("storage upload", "bucket", p.bucket, "object", objectName, "error", err)

	if err != nil {
		return UploadResult{}, err
	}

	return UploadResult{
		FileName: objectName,
		FileURL:  fmt.Sprintf("%s/%s", p.baseURL, objectName),
	}, nil
}

// DeleteFile removes the object behind a previously returned URL. A missing
// object is not an error; the previous avatar may already be gone.
func (p *S3StorageProvider) DeleteFile(ctx context.Context, fileURL string) error {
	objectName := strings.TrimPrefix(fileURL, p.baseURL+"/")

	err := p.client.RemoveObject(ctx, p.bucket, objectName, minio.RemoveObjectOptions{})

	logger.Log.Infow("storage delete", "bucket", p.bucket, "object", objectName, "error", err)

	return err
}
