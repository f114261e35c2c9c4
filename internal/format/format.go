// Package format renders numbers and dates for display in either locale.
package format

import (
	"fmt"
	"strconv"
	"time"

	"github.com/dev-760/portfolio-v2/internal/i18n"
)

var arabicMonths = [...]string{
	"يناير", "فبراير", "مارس", "أبريل", "مايو", "يونيو",
	"يوليو", "أغسطس", "سبتمبر", "أكتوبر", "نوفمبر", "ديسمبر",
}

// Counter renders a zero-based position as "i / n".
func Counter(pos, total int) string {
	if total <= 0 {
		return ""
	}
	return fmt.Sprintf("%d / %d", pos+1, total)
}

// Year renders y, or "" for an unknown year.
func Year(y int) string {
	if y <= 0 {
		return ""
	}
	return strconv.Itoa(y)
}

// Date formats t in a locale-friendly long form.
func Date(t time.Time, l i18n.Locale) string {
	if t.IsZero() {
		return ""
	}
	switch l {
	case i18n.Arabic:
		return fmt.Sprintf("%d %s %d", t.Day(), arabicMonths[t.Month()-1], t.Year())
	default:
		return t.Format("January 2, 2006")
	}
}

// ISODate formats t as YYYY-MM-DD for machine-readable attributes.
func ISODate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}
