package eliqonline

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the only date-time form the API uses: no zone, no fractional seconds.
const DateLayout = "2006-01-02T15:04:05"

// ToDate parses text in the exact form YYYY-MM-DDTHH:MM:SS. The result is in UTC.
// Anything else, including fractional seconds and zone offsets, is a *FormatError.
func ToDate(text string) (time.Time, error) {
	// time.Parse tolerates fractional seconds and single-digit hours, the length does not
	if len(text) != len(DateLayout) {
		return time.Time{}, &FormatError{
			Kind:  "date",
			Value: text,
			Err:   fmt.Errorf("expected layout %s", DateLayout),
		}
	}

	t, err := time.Parse(DateLayout, text)
	if err != nil {
		return time.Time{}, &FormatError{Kind: "date", Value: text, Err: err}
	}
	return t, nil
}

// MaybeToDate returns nil for a nil text and ToDate(*text) otherwise.
func MaybeToDate(text *string) (*time.Time, error) {
	if text == nil {
		return nil, nil
	}

	t, err := ToDate(*text)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ToFloat parses text as a decimal floating-point literal. "inf", "infinity"
// and "nan" are accepted in any case. Magnitudes beyond float64 resolve to
// ±Inf and underflow resolves to zero.
func ToFloat(text string) (float64, error) {
	// ParseFloat follows Go literal syntax: hex mantissas and _ digit separators
	if strings.ContainsAny(text, "xX_") {
		return 0, &FormatError{Kind: "float", Value: text, Err: strconv.ErrSyntax}
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return f, nil
		}
		return 0, &FormatError{Kind: "float", Value: text, Err: errors.Unwrap(err)}
	}
	return f, nil
}

// MaybeToFloat returns nil for a nil text and ToFloat(*text) otherwise.
func MaybeToFloat(text *string) (*float64, error) {
	if text == nil {
		return nil, nil
	}

	f, err := ToFloat(*text)
	if err != nil {
		return nil, err
	}
	return &f, nil
}
