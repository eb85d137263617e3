package utils

import "github.com/dustin/go-humanize"

// FormatWon formats a whole-won amount with thousands separators.
// Example: 12400 -> "12,400원"
func FormatWon(amount int) string {
	return humanize.Comma(int64(amount)) + "원"
}
