package provider

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/minio/minio-go/v7"
)

// Kind is the error taxonomy surfaced to callers. Vendor errors are
// classified exactly once and never retried.
type Kind int

const (
	KindInvalidArgument Kind = iota + 1
	KindNotFound
	KindConflict
	KindPermissionDenied
	KindUnavailable
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid_argument"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindPermissionDenied:
		return "permission_denied"
	case KindUnavailable:
		return "unavailable"
	default:
		return "internal"
	}
}

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func E(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// KindOf returns the taxonomy kind of err, or KindInternal for anything
// that is not a classified *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// storeErrorKinds maps vendor error codes onto the taxonomy.
var storeErrorKinds = map[string]Kind{
	"NoSuchBucket":            KindNotFound,
	"NoSuchKey":               KindNotFound,
	"NotFound":                KindNotFound,
	"BucketAlreadyExists":     KindConflict,
	"BucketAlreadyOwnedByYou": KindConflict,
	"AccessDenied":            KindPermissionDenied,
	"AllAccessDisabled":       KindPermissionDenied,
	"InvalidBucketName":       KindInvalidArgument,
	"InvalidArgument":         KindInvalidArgument,
	"XMinioInvalidObjectName": KindInvalidArgument,
	"SlowDown":                KindUnavailable,
	"ServiceUnavailable":      KindUnavailable,
	"RequestTimeout":          KindUnavailable,
	"BadGateway":              KindUnavailable,
}

// Classify wraps a vendor error into the taxonomy. Network faults and
// timeouts become Unavailable, unknown codes become Internal.
func Classify(message string, err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}

	resp := minio.ToErrorResponse(err)
	if resp.Code != "" {
		if kind, ok := storeErrorKinds[resp.Code]; ok {
			return &Error{Kind: kind, Message: message, Err: err}
		}
		return &Error{Kind: KindInternal, Message: message, Err: err}
	}

	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, context.DeadlineExceeded) {
		return &Error{Kind: KindUnavailable, Message: message, Err: err}
	}

	return &Error{Kind: KindInternal, Message: message, Err: err}
}
