package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSKU(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 0, 0, time.UTC)

	// "Men" -> "ME", "T-shirt" -> "T-" -> "T", "red" -> "RE",
	// "Strength And Honor" -> "Str" -> "STR"
	sku := GenerateSKU("Strength And Honor", "Men", "red", "T-shirt", now)
	assert.Equal(t, "METRESTR-2401020304", sku)
}

func TestGenerateSKUTruncation(t *testing.T) {
	now := time.Date(2025, 12, 31, 23, 59, 0, 0, time.UTC)

	// short inputs contribute what they have
	assert.Equal(t, "AB-2512312359", GenerateSKU("", "a", "", "b", now))

	// punctuation-only attributes contribute nothing
	assert.Equal(t, "-2512312359", GenerateSKU("!!!", "--", "..", "??", now))
}

func TestGenerateSKUDeterministicPerMinute(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)
	later := now.Add(45 * time.Second) // same minute

	first := GenerateSKU("Hoodie Classic", "Unisex", "black", "Hoodie", now)
	second := GenerateSKU("Hoodie Classic", "Unisex", "black", "Hoodie", later)
	assert.Equal(t, first, second, "same attributes within one minute yield the same SKU")

	nextMinute := GenerateSKU("Hoodie Classic", "Unisex", "black", "Hoodie", now.Add(time.Minute))
	assert.NotEqual(t, first, nextMinute)
}

func TestGenerateSKUTimestampFormat(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 0, 0, time.UTC)
	sku := GenerateSKU("Tee", "Men", "red", "Tee", now)
	assert.Regexp(t, `-2401020304$`, sku)
}
