package provider

import (
	"context"
	"errors"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyStoreErrorCodes(t *testing.T) {
	cases := []struct {
		code string
		want Kind
	}{
		{"NoSuchBucket", KindNotFound},
		{"NoSuchKey", KindNotFound},
		{"NotFound", KindNotFound},
		{"BucketAlreadyExists", KindConflict},
		{"BucketAlreadyOwnedByYou", KindConflict},
		{"AccessDenied", KindPermissionDenied},
		{"AllAccessDisabled", KindPermissionDenied},
		{"InvalidBucketName", KindInvalidArgument},
		{"XMinioInvalidObjectName", KindInvalidArgument},
		{"SlowDown", KindUnavailable},
		{"ServiceUnavailable", KindUnavailable},
		{"RequestTimeout", KindUnavailable},
		{"SomeUnknownCode", KindInternal},
	}

	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			err := Classify("store call failed", minio.ErrorResponse{Code: tc.code, Message: "boom"})
			require.NotNil(t, err)
			assert.Equal(t, tc.want, err.Kind)
		})
	}
}

type timeoutError struct{}

func (timeoutError) Error() string   { return "dial tcp: i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

func TestClassifyNetworkFaults(t *testing.T) {
	err := Classify("store unreachable", timeoutError{})
	require.NotNil(t, err)
	assert.Equal(t, KindUnavailable, err.Kind)

	err = Classify("store call timed out", context.DeadlineExceeded)
	require.NotNil(t, err)
	assert.Equal(t, KindUnavailable, err.Kind)
}

func TestClassifyGenericErrorIsInternal(t *testing.T) {
	err := Classify("something broke", errors.New("unexpected"))
	require.NotNil(t, err)
	assert.Equal(t, KindInternal, err.Kind)
}

func TestClassifyPreservesExistingKind(t *testing.T) {
	original := E(KindNotFound, "bucket missing")
	err := Classify("outer context", original)
	assert.Equal(t, KindNotFound, err.Kind)
}

func TestClassifyNil(t *testing.T) {
	assert.Nil(t, Classify("no error", nil))
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindConflict, KindOf(E(KindConflict, "taken")))
	assert.Equal(t, KindInternal, KindOf(errors.New("plain")))

	wrapped := &Error{Kind: KindInternal, Message: "lookup failed", Err: E(KindNotFound, "inner")}
	assert.Equal(t, KindInternal, KindOf(wrapped), "the outermost classification wins")
}

func TestErrorStringIncludesKind(t *testing.T) {
	err := E(KindPermissionDenied, "bucket policy forbids access")
	assert.Contains(t, err.Error(), "permission_denied")
}
