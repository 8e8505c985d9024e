package provider

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rflkt/rflkt-storage-service/utils"
)

// ObjectStore is the capability set the gateway needs from the object
// storage vendor. infra.MinioClient implements it; tests substitute an
// in-memory fake.
type ObjectStore interface {
	MakeBucket(ctx context.Context, name, location string) error
	BucketExists(ctx context.Context, name string) (bool, error)
	ListBuckets(ctx context.Context) ([]BucketInfo, error)
	GetBucketLocation(ctx context.Context, name string) (string, error)
	PutObject(ctx context.Context, bucket, key string, data io.Reader, size int64, contentType string) error
	ListObjects(ctx context.Context, bucket, prefix string, recursive bool) ([]ObjectInfo, error)
	RemoveObjectsWithPrefix(ctx context.Context, bucket, prefix string) error
}

type BucketInfo struct {
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type ObjectInfo struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`
}

type BucketDetails struct {
	Name   string `json:"name"`
	Region string `json:"region"`
}

// LocationCache memoizes bucket-location lookups so that public URL
// construction does not hit the store on every request.
type LocationCache interface {
	GetLocation(ctx context.Context, bucket string) (string, bool)
	SetLocation(ctx context.Context, bucket, region string)
}

// StorageService fronts the object store: it validates and generates names,
// normalizes folder prefixes and translates vendor errors into the taxonomy.
// It holds no state of its own beyond configuration.
type StorageService struct {
	store         ObjectStore
	cache         LocationCache
	domain        string
	defaultRegion string
}

func NewStorageService(store ObjectStore, cache LocationCache, domain, defaultRegion string) *StorageService {
	if store == nil {
		panic("StorageService requires an object store")
	}
	return &StorageService{
		store:         store,
		cache:         cache,
		domain:        domain,
		defaultRegion: defaultRegion,
	}
}

// CreateBucket validates (or generates) the bucket name and creates it in
// the given region. The us-east-1 region must be requested without a
// location constraint or the vendor call fails; every other region passes
// an explicit one.
func (s *StorageService) CreateBucket(ctx context.Context, name, region string) (string, error) {
	if name == "" {
		name = utils.GenerateBucketName()
	}
	if !utils.ValidateBucketName(name) {
		return "", E(KindInvalidArgument, fmt.Sprintf("invalid bucket name %q", name))
	}
	if region == "" {
		region = s.defaultRegion
	}

	location := region
	if region == "us-east-1" {
		location = ""
	}

	if err := s.store.MakeBucket(ctx, name, location); err != nil {
		return "", Classify("failed to create bucket", err)
	}
	return name, nil
}

// CreateBucketWithFolder creates the bucket and seeds it with a single
// zero-byte {folder}/ key so the folder shows up in delimiter listings.
func (s *StorageService) CreateBucketWithFolder(ctx context.Context, name, region, folder string) (string, string, error) {
	prefix := utils.NormalizeFolderPrefix(folder)
	if prefix == "" {
		return "", "", E(KindInvalidArgument, "folder name cannot be empty")
	}

	bucketName, err := s.CreateBucket(ctx, name, region)
	if err != nil {
		return "", "", err
	}

	if err := s.store.PutObject(ctx, bucketName, prefix, bytes.NewReader(nil), 0, "application/x-directory"); err != nil {
		return "", "", Classify("failed to seed folder", err)
	}
	return bucketName, prefix, nil
}

func (s *StorageService) ListBuckets(ctx context.Context) ([]BucketInfo, error) {
	buckets, err := s.store.ListBuckets(ctx)
	if err != nil {
		return nil, Classify("failed to list buckets", err)
	}
	return buckets, nil
}

// GetBucketDetails reports the bucket's resolved region. A missing bucket
// is NotFound, not an empty result.
func (s *StorageService) GetBucketDetails(ctx context.Context, name string) (*BucketDetails, error) {
	exists, err := s.store.BucketExists(ctx, name)
	if err != nil {
		return nil, Classify("failed to check bucket existence", err)
	}
	if !exists {
		return nil, E(KindNotFound, fmt.Sprintf("bucket %q not found", name))
	}

	region, err := s.resolveBucketRegion(ctx, name)
	if err != nil {
		return nil, err
	}
	return &BucketDetails{Name: name, Region: region}, nil
}

// ListTopLevelFolders lists the distinct common prefixes the store returns
// for a "/"-delimited listing at the bucket root. The grouping is the
// store's, not re-derived from full keys. An empty bucket yields an empty
// list.
func (s *StorageService) ListTopLevelFolders(ctx context.Context, bucket string) ([]string, error) {
	entries, err := s.store.ListObjects(ctx, bucket, "", false)
	if err != nil {
		return nil, Classify("failed to list folders", err)
	}

	folders := make([]string, 0, len(entries))
	for _, entry := range entries {
		if strings.HasSuffix(entry.Key, "/") {
			folders = append(folders, strings.TrimSuffix(entry.Key, "/"))
		}
	}
	return folders, nil
}

// ListFolderContents lists every object under the normalized folder prefix.
func (s *StorageService) ListFolderContents(ctx context.Context, bucket, folder string) ([]ObjectInfo, error) {
	prefix := utils.NormalizeFolderPrefix(folder)
	objects, err := s.store.ListObjects(ctx, bucket, prefix, true)
	if err != nil {
		return nil, Classify("failed to list folder contents", err)
	}
	return objects, nil
}

// FolderImageURLs returns the public URL for every object under the folder
// prefix, skipping the folder placeholder key itself.
func (s *StorageService) FolderImageURLs(ctx context.Context, bucket, folder string) ([]string, error) {
	prefix := utils.NormalizeFolderPrefix(folder)
	objects, err := s.store.ListObjects(ctx, bucket, prefix, true)
	if err != nil {
		return nil, Classify("failed to list folder contents", err)
	}

	region, err := s.resolveBucketRegion(ctx, bucket)
	if err != nil {
		return nil, err
	}

	urls := make([]string, 0, len(objects))
	for _, obj := range objects {
		if strings.HasSuffix(obj.Key, "/") {
			continue
		}
		urls = append(urls, s.publicURL(bucket, region, obj.Key))
	}
	return urls, nil
}

// PublicObjectURL builds the public URL for a single key, resolving the
// bucket's actual region first so the URL never embeds a wrong one.
func (s *StorageService) PublicObjectURL(ctx context.Context, bucket, key string) (string, error) {
	region, err := s.resolveBucketRegion(ctx, bucket)
	if err != nil {
		return "", err
	}
	return s.publicURL(bucket, region, key), nil
}

// EnsureBucket creates the bucket in the default region when it does not
// exist yet.
func (s *StorageService) EnsureBucket(ctx context.Context, name string) error {
	exists, err := s.store.BucketExists(ctx, name)
	if err != nil {
		return Classify("failed to check bucket existence", err)
	}
	if exists {
		return nil
	}
	_, err = s.CreateBucket(ctx, name, s.defaultRegion)
	return err
}

func (s *StorageService) publicURL(bucket, region, key string) string {
	return fmt.Sprintf("https://%s.%s.%s/%s", bucket, region, s.domain, key)
}

// resolveBucketRegion asks the store for the bucket location; an unset
// location means the default region. Results are memoized when a cache is
// configured.
func (s *StorageService) resolveBucketRegion(ctx context.Context, bucket string) (string, error) {
	if s.cache != nil {
		if region, ok := s.cache.GetLocation(ctx, bucket); ok {
			return region, nil
		}
	}

	region, err := s.store.GetBucketLocation(ctx, bucket)
	if err != nil {
		return "", Classify("failed to resolve bucket location", err)
	}
	if region == "" {
		region = s.defaultRegion
	}

	if s.cache != nil {
		s.cache.SetLocation(ctx, bucket, region)
	}
	return region, nil
}
