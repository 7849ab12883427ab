package parser

import (
	"errors"
	"fmt"
	"strings"
)

// Date normalization errors.
var (
	ErrBadDateFormat = errors.New("date is not in 'day month year' form")
	ErrUnknownMonth  = errors.New("unknown month abbreviation")
)

// monthNumbers maps the export's three-letter month abbreviations to
// two-digit month numbers. Lookups are case-sensitive on purpose: the
// export always emits this exact casing, and anything else is malformed.
var monthNumbers = map[string]string{
	"Jan": "01",
	"Feb": "02",
	"Mar": "03",
	"Apr": "04",
	"May": "05",
	"Jun": "06",
	"Jul": "07",
	"Aug": "08",
	"Sep": "09",
	"Oct": "10",
	"Nov": "11",
	"Dec": "12",
}

// NormalizeDate converts a date like "14 Dec 2025" into "2025-12-14".
//
// The rearrangement is purely syntactic: the day is zero-padded, the
// month abbreviation is looked up in the fixed table, and the year is
// passed through unchanged. No calendar or timezone logic is applied.
func NormalizeDate(text string) (string, error) {
	parts := strings.Fields(text)
	if len(parts) != 3 {
		return "", fmt.Errorf("%w: %q", ErrBadDateFormat, text)
	}

	day := parts[0]
	if len(day) == 1 {
		day = "0" + day
	}

	month, ok := monthNumbers[parts[1]]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownMonth, parts[1])
	}

	return fmt.Sprintf("%s-%s-%s", parts[2], month, day), nil
}
