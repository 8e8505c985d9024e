package utils

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	minBucketNameLength = 3
	maxBucketNameLength = 63

	defaultBucketPrefix = "bucket-"
	defaultObjectPrefix = "uploads/"
)

// ValidateBucketName reports whether name is a valid bucket name: 3-63
// characters, all lowercase, containing only letters, digits and hyphens.
func ValidateBucketName(name string) bool {
	if len(name) < minBucketNameLength || len(name) > maxBucketNameLength {
		return false
	}
	if name != strings.ToLower(name) {
		return false
	}
	for _, c := range name {
		if c == '-' {
			continue
		}
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}

// GenerateBucketName returns a random bucket name that always passes
// ValidateBucketName.
func GenerateBucketName() string {
	return defaultBucketPrefix + RandomHexSuffix()
}

// GenerateObjectKey returns a random object key under the given folder
// prefix. An empty prefix falls back to "uploads/".
func GenerateObjectKey(prefix string) string {
	if prefix == "" {
		prefix = defaultObjectPrefix
	}
	return NormalizeFolderPrefix(prefix) + RandomHexSuffix()
}

// NormalizeFolderPrefix appends a trailing slash when missing. The empty
// prefix stays empty and means the bucket root. Idempotent.
func NormalizeFolderPrefix(folder string) string {
	if folder == "" {
		return ""
	}
	if !strings.HasSuffix(folder, "/") {
		return folder + "/"
	}
	return folder
}

// SanitizeFolderName lowercases the title, joins whitespace runs with a
// single hyphen and drops everything that is not alphanumeric or a hyphen.
func SanitizeFolderName(title string) string {
	sanitized := strings.Join(strings.Fields(strings.ToLower(title)), "-")
	var b strings.Builder
	for _, c := range sanitized {
		if c == '-' || (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
			b.WriteRune(c)
		}
	}
	return b.String()
}

// NewFolderName builds a product folder name from the title plus a random
// correlation id suffix, and returns both.
func NewFolderName(title string) (string, string) {
	correlationID := RandomHexSuffix()
	return SanitizeFolderName(title) + "-" + correlationID, correlationID
}

// CorrelationIDFromFolder extracts the trailing -xxxxxxxx suffix that ties
// a product folder back to its database row.
func CorrelationIDFromFolder(folder string) (string, error) {
	idx := strings.LastIndex(folder, "-")
	if idx < 0 {
		return "", fmt.Errorf("folder name %q has no correlation id suffix", folder)
	}
	suffix := folder[idx+1:]
	if len(suffix) != 8 {
		return "", fmt.Errorf("folder name %q has a malformed correlation id suffix", folder)
	}
	for _, c := range suffix {
		if (c < 'a' || c > 'f') && (c < '0' || c > '9') {
			return "", fmt.Errorf("folder name %q has a malformed correlation id suffix", folder)
		}
	}
	return suffix, nil
}

// RandomHexSuffix returns 8 lowercase hex characters. Collisions are
// negligible for interactive use; this is not a cryptographic identifier.
func RandomHexSuffix() string {
	u := uuid.New()
	return hex.EncodeToString(u[:4])
}
