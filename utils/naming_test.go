package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reference predicate straight from the naming rules, used to cross-check
// the validator on a corpus of inputs
func referenceValidate(s string) bool {
	if len(s) < 3 || len(s) > 63 {
		return false
	}
	if s != strings.ToLower(s) {
		return false
	}
	for _, c := range s {
		if !(c == '-' || (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')) {
			return false
		}
	}
	return true
}

func TestValidateBucketName(t *testing.T) {
	cases := []struct {
		name  string
		valid bool
	}{
		{"abc", true},
		{"my-bucket-01", true},
		{"123", true},
		{"---", true},
		{"a-b", true},
		{strings.Repeat("a", 63), true},
		{"", false},
		{"ab", false},
		{strings.Repeat("a", 64), false},
		{"MyBucket", false},
		{"my_bucket", false},
		{"my bucket", false},
		{"bucket.name", false},
		{"bücket", false},
		{"bucket!", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.valid, ValidateBucketName(tc.name), "name %q", tc.name)
		assert.Equal(t, referenceValidate(tc.name), ValidateBucketName(tc.name), "name %q disagrees with reference", tc.name)
	}
}

func TestGenerateBucketNameAlwaysValid(t *testing.T) {
	for i := 0; i < 100; i++ {
		name := GenerateBucketName()
		assert.True(t, ValidateBucketName(name), "generated name %q must validate", name)
		assert.True(t, strings.HasPrefix(name, "bucket-"))
	}
}

func TestGenerateObjectKey(t *testing.T) {
	key := GenerateObjectKey("")
	assert.True(t, strings.HasPrefix(key, "uploads/"))

	key = GenerateObjectKey("media")
	assert.True(t, strings.HasPrefix(key, "media/"))
	assert.Len(t, strings.TrimPrefix(key, "media/"), 8)
}

func TestNormalizeFolderPrefix(t *testing.T) {
	assert.Equal(t, "photos/", NormalizeFolderPrefix("photos"))
	assert.Equal(t, "photos/", NormalizeFolderPrefix("photos/"))
	assert.Equal(t, "a/b/", NormalizeFolderPrefix("a/b"))
	// empty prefix means the bucket root
	assert.Equal(t, "", NormalizeFolderPrefix(""))
}

func TestNormalizeFolderPrefixIdempotent(t *testing.T) {
	inputs := []string{"", "a", "a/", "a/b", "a/b/", "new-folder/"}
	for _, in := range inputs {
		once := NormalizeFolderPrefix(in)
		assert.Equal(t, once, NormalizeFolderPrefix(once), "input %q", in)
	}
}

func TestSanitizeFolderName(t *testing.T) {
	assert.Equal(t, "strength-and-honor", SanitizeFolderName("Strength And Honor"))
	assert.Equal(t, "t-shirt-v2", SanitizeFolderName("  T-Shirt!   v2  "))
	assert.Equal(t, "blue-denim-20", SanitizeFolderName("Blue Denim 2.0"))
	assert.Equal(t, "", SanitizeFolderName("!!!"))
}

func TestNewFolderName(t *testing.T) {
	folder, correlationID := NewFolderName("Strength And Honor")
	assert.Len(t, correlationID, 8)
	assert.Equal(t, "strength-and-honor-"+correlationID, folder)

	parsed, err := CorrelationIDFromFolder(folder)
	require.NoError(t, err)
	assert.Equal(t, correlationID, parsed)
}

func TestCorrelationIDFromFolder(t *testing.T) {
	id, err := CorrelationIDFromFolder("red-shirt-1a2b3c4d")
	require.NoError(t, err)
	assert.Equal(t, "1a2b3c4d", id)

	_, err = CorrelationIDFromFolder("nosuffix")
	assert.Error(t, err)

	_, err = CorrelationIDFromFolder("shirt-short")
	assert.Error(t, err)

	_, err = CorrelationIDFromFolder("shirt-ZZZZZZZZ")
	assert.Error(t, err)
}

func TestRandomHexSuffix(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		s := RandomHexSuffix()
		assert.Len(t, s, 8)
		for _, c := range s {
			assert.True(t, (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f'), "suffix %q", s)
		}
		seen[s] = true
	}
	assert.Greater(t, len(seen), 1)
}
