package formatters

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateStyle selects how a normalized month is displayed.
type DateStyle int

const (
	// Numeric renders "2020-01" as "01/2020".
	Numeric DateStyle = iota
	// MonthName renders "2020-01" as "Jan 2020".
	MonthName
)

// ParseDateStyle maps a configuration value onto a DateStyle. Unknown values
// fall back to Numeric.
func ParseDateStyle(s string) DateStyle {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "month_name", "monthname", "name":
		return MonthName
	}
	return Numeric
}

// FormatMonth normalizes a "YYYY-MM" value for display using the Numeric style.
func FormatMonth(s string) string {
	return FormatMonthStyle(s, Numeric)
}

// FormatMonthStyle normalizes a "YYYY-MM" value for display. It never fails:
// anything that is not a valid year and month comes back unchanged, and an
// empty input yields an empty output.
func FormatMonthStyle(s string, style DateStyle) string {
	if s == "" {
		return ""
	}
	parts := strings.Split(s, "-")
	if len(parts) < 2 {
		return s
	}
	year, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || year < 1 || year > 9999 {
		return s
	}
	month, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || month < 1 || month > 12 {
		return s
	}
	d := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	if style == MonthName {
		return d.Format("Jan 2006")
	}
	return fmt.Sprintf("%02d/%04d", int(d.Month()), d.Year())
}
