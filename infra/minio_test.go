package infra

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/require"
)

func newTestMinioClient(t *testing.T, handler http.Handler) (*MinioClient, func()) {
	t.Helper()
	srv := httptest.NewServer(handler)

	client, err := minio.New(strings.TrimPrefix(srv.URL, "http://"), &minio.Options{
		Creds:  credentials.NewStaticV4("test-access", "test-secret", ""),
		Secure: false,
		Region: "us-east-1",
	})
	require.NoError(t, err)

	return &MinioClient{Client: client, Endpoint: srv.URL}, srv.Close
}

func TestRemoveObjectsWithPrefixSurfacesListingFailure(t *testing.T) {
	// every request fails with a non-retryable error, so the listing
	// channel carries an error instead of objects
	client, closeSrv := newTestMinioClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml")
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `<?xml version="1.0" encoding="UTF-8"?><Error><Code>NoSuchBucket</Code><Message>The specified bucket does not exist</Message><Resource>/gone-bucket</Resource><RequestId>1</RequestId><HostId>1</HostId></Error>`)
	}))
	defer closeSrv()

	err := client.RemoveObjectsWithPrefix(context.Background(), "gone-bucket", "folder/")
	require.Error(t, err, "a failed listing must not pass as a clean delete")
	require.Contains(t, err.Error(), "failed to list objects")
}

func TestRemoveObjectsWithPrefixEmptyListing(t *testing.T) {
	// an empty listing is a clean no-op delete
	client, closeSrv := newTestMinioClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml")
		fmt.Fprint(w, `<?xml version="1.0" encoding="UTF-8"?><ListBucketResult xmlns="http://s3.amazonaws.com/doc/2006-03-01/"><Name>empty-bucket</Name><Prefix>folder/</Prefix><KeyCount>0</KeyCount><MaxKeys>1000</MaxKeys><IsTruncated>false</IsTruncated></ListBucketResult>`)
	}))
	defer closeSrv()

	err := client.RemoveObjectsWithPrefix(context.Background(), "empty-bucket", "folder/")
	require.NoError(t, err)
}
