package storage

import (
	"context"
	"io"
	"log"
	"time"

	"github.com/cscportal/portal-go/internal/config"
	"github.com/google/uuid"
	minioSDK "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var Client *minioSDK.Client
var BucketName string

func Init() {
	BucketName = config.MinioBucket

	minioClient, err := minioSDK.New(config.MinioEndpoint, &minioSDK.Options{
		Creds:  credentials.NewStaticV4(config.MinioAccessKey, config.MinioSecretKey, ""),
		Secure: config.MinioUseSSL,
	})
	if err != nil {
		log.Fatalf("Failed to connect to MinIO: %v", err)
	}

	ctx := context.Background()
	exists, err := minioClient.BucketExists(ctx, BucketName)
	if err != nil {
		log.Fatalf("Failed to check bucket existence: %v", err)
	}
	if !exists {
		if err := minioClient.MakeBucket(ctx, BucketName, minioSDK.MakeBucketOptions{}); err != nil {
			log.Fatalf("Failed to create bucket: %v", err)
		}
		log.Printf("Bucket created: %s", BucketName)
	}

	Client = minioClient
}

// Upload stores an attached document and returns its object key.
func Upload(ctx context.Context, r io.Reader, size int64, contentType string) (string, error) {
	key := uuid.New().String()
	_, err := Client.PutObject(ctx, BucketName, key, r, size, minioSDK.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}
	return key, nil
}

// PresignedGet returns a time-limited download URL for an object key.
func PresignedGet(ctx context.Context, key string, expiry time.Duration) (string, error) {
	u, err := Client.PresignedGetObject(ctx, BucketName, key, expiry, nil)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}
