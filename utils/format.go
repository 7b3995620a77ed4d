package utils

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var rupiahPrinter = message.NewPrinter(language.Indonesian)

// FormatRupiah renders an amount as "Rp 3.585.000" (id-ID grouping, no decimals).
func FormatRupiah(amount int) string {
	return rupiahPrinter.Sprintf("Rp %d", amount)
}

// TimeAgo renders a human-relative age: Just now, then minutes, hours, days.
func TimeAgo(t, now time.Time) string {
	diff := now.Sub(t)
	if diff < time.Minute {
		return "Just now"
	}

	minutes := int(diff.Minutes())
	if minutes < 60 {
		return fmt.Sprintf("%d %s ago", minutes, pluralize(minutes, "minute"))
	}

	hours := minutes / 60
	if hours < 24 {
		return fmt.Sprintf("%d %s ago", hours, pluralize(hours, "hour"))
	}

	days := hours / 24
	return fmt.Sprintf("%d %s ago", days, pluralize(days, "day"))
}

func pluralize(n int, unit string) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}
