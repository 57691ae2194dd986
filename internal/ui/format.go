package ui

import (
	"strconv"
	"strings"
)

// FormatPriceJPY renders a per-project price the way the listing shows it:
// yen sign plus comma-grouped integer, e.g. 5000 -> "¥5,000".
func FormatPriceJPY(price int) string {
	if price < 0 {
		price = 0
	}

	digits := strconv.Itoa(price)
	var sb strings.Builder
	sb.WriteString("¥")
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			sb.WriteString(",")
		}
		sb.WriteRune(d)
	}
	return sb.String()
}

// CoercePrice converts the raw price form field into the stored integer.
// Invalid, empty and negative input all become 0.
func CoercePrice(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// AvatarOrDefault substitutes the placeholder image reference when a profile
// has no avatar set.
func AvatarOrDefault(avatarURL, defaultURL string) string {
	if strings.TrimSpace(avatarURL) == "" {
		return defaultURL
	}
	return avatarURL
}
