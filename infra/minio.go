package infra

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/madmin-go/v3"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/rflkt/rflkt-storage-service/config"
	"github.com/rflkt/rflkt-storage-service/provider"
)

type MinioClient struct {
	Admin    *madmin.AdminClient
	Client   *minio.Client
	Endpoint string
}

func InitMinioClient(cfg *config.EnvConfig) *MinioClient {
	endpoint := cfg.Storage.Endpoint
	if endpoint == "" {
		panic("storage endpoint is not configured")
	}

	accessKey := cfg.Storage.AccessKey
	if accessKey == "" {
		panic("storage access key is not configured")
	}

	secretKey := cfg.Storage.SecretKey
	if secretKey == "" {
		panic("storage secret key is not configured")
	}

	madminClient, err := madmin.New(endpoint, accessKey, secretKey, cfg.Storage.UseSSL)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize storage admin client: %v", err))
	}

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: cfg.Storage.UseSSL,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize storage client: %v", err))
	}

	return &MinioClient{
		Admin:    madminClient,
		Client:   minioClient,
		Endpoint: endpoint,
	}
}

// MakeBucket creates a bucket. An empty location means no location
// constraint is sent (required for us-east-1).
func (m *MinioClient) MakeBucket(ctx context.Context, name, location string) error {
	if name == "" {
		return fmt.Errorf("bucket name cannot be empty")
	}

	return m.Client.MakeBucket(ctx, name, minio.MakeBucketOptions{
		Region: location,
	})
}

func (m *MinioClient) BucketExists(ctx context.Context, name string) (bool, error) {
	if name == "" {
		return false, fmt.Errorf("bucket name cannot be empty")
	}

	return m.Client.BucketExists(ctx, name)
}

func (m *MinioClient) ListBuckets(ctx context.Context) ([]provider.BucketInfo, error) {
	buckets, err := m.Client.ListBuckets(ctx)
	if err != nil {
		return nil, err
	}

	infos := make([]provider.BucketInfo, 0, len(buckets))
	for _, b := range buckets {
		infos = append(infos, provider.BucketInfo{
			Name:      b.Name,
			CreatedAt: b.CreationDate,
		})
	}
	return infos, nil
}

func (m *MinioClient) GetBucketLocation(ctx context.Context, name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("bucket name cannot be empty")
	}

	return m.Client.GetBucketLocation(ctx, name)
}

func (m *MinioClient) PutObject(ctx context.Context, bucket, key string, data io.Reader, size int64, contentType string) error {
	_, err := m.Client.PutObject(ctx, bucket, key, data, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

// ListObjects drains the client's listing channel. A non-recursive listing
// uses the "/" delimiter, so common prefixes come back as entries with a
// trailing slash.
func (m *MinioClient) ListObjects(ctx context.Context, bucket, prefix string, recursive bool) ([]provider.ObjectInfo, error) {
	objectCh := m.Client.ListObjects(ctx, bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: recursive,
	})

	var objects []provider.ObjectInfo
	for obj := range objectCh {
		if obj.Err != nil {
			return nil, obj.Err
		}
		objects = append(objects, provider.ObjectInfo{
			Key:          obj.Key,
			Size:         obj.Size,
			LastModified: obj.LastModified,
		})
	}
	return objects, nil
}

// RemoveObjectsWithPrefix deletes every object under the prefix via the
// batch removal API.
func (m *MinioClient) RemoveObjectsWithPrefix(ctx context.Context, bucket, prefix string) error {
	objectCh := m.Client.ListObjects(ctx, bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	})

	objectsToDelete := make(chan minio.ObjectInfo)

	// A listing fault must not pass as a clean delete: remember the first
	// error and report it once the removals have drained.
	var listErr error
	go func() {
		defer close(objectsToDelete)
		for obj := range objectCh {
			if obj.Err != nil {
				if listErr == nil {
					listErr = obj.Err
				}
				continue
			}
			objectsToDelete <- obj
		}
	}()

	errorCh := m.Client.RemoveObjects(ctx, bucket, objectsToDelete, minio.RemoveObjectsOptions{})

	for err := range errorCh {
		if err.Err != nil {
			return fmt.Errorf("failed to remove object %s: %w", err.ObjectName, err.Err)
		}
	}

	if listErr != nil {
		return fmt.Errorf("failed to list objects under %s: %w", prefix, listErr)
	}
	return nil
}

// HealthCheck probes the storage backend through the admin API.
func (m *MinioClient) HealthCheck(ctx context.Context) error {
	_, err := m.Admin.ServerInfo(ctx)
	if err != nil {
		return fmt.Errorf("storage health check failed: %w", err)
	}
	return nil
}
