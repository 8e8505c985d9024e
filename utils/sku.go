package utils

import (
	"strings"
	"time"
	"unicode"
)

// GenerateSKU derives a product SKU of the form
// {CATEGORY}{TYPE}{COLOR}{TITLE}-{YYMMDDHHmm}. Each attribute is cut to its
// leading characters first (3 for the title, 2 for the rest), then stripped
// of non-alphanumerics and uppercased, so short or punctuation-heavy inputs
// may contribute fewer characters, even none. Two calls with the same
// attributes inside the same minute return the same SKU.
func GenerateSKU(title, category, color, typ string, now time.Time) string {
	titleCode := skuCode(title, 3)
	categoryCode := skuCode(category, 2)
	colorCode := skuCode(color, 2)
	typeCode := skuCode(typ, 2)
	return categoryCode + typeCode + colorCode + titleCode + "-" + now.Format("0601021504")
}

func skuCode(s string, n int) string {
	runes := []rune(s)
	if len(runes) > n {
		runes = runes[:n]
	}
	var b strings.Builder
	for _, c := range runes {
		if unicode.IsLetter(c) || unicode.IsDigit(c) {
			b.WriteRune(unicode.ToUpper(c))
		}
	}
	return b.String()
}
