// Package textutil holds small string and date helpers consumed alongside
// the similarity scorer by crawler-side code.
//
// Unlike the scoring core, which always returns a defined numeric result,
// these helpers surface bad input explicitly: unparseable dates come back as
// errors or a false ok flag, never as a silent sentinel value.
package textutil

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// IsBlankOrNA reports whether s carries no usable value: empty,
// whitespace-only, or one of the placeholder literals "N/A" and "NA" in any
// casing.
func IsBlankOrNA(s string) bool {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return true
	}
	upper := strings.ToUpper(trimmed)
	return upper == "N/A" || upper == "NA"
}

// ReformatDate parses a free-form date string and re-renders it with the
// given Go reference layout. A value that cannot be parsed is returned as an
// error; there is no fallback result.
func ReformatDate(value, layout string) (string, error) {
	parsed, err := dateparse.ParseAny(value)
	if err != nil {
		return "", fmt.Errorf("parsing date %q: %w", value, err)
	}
	return parsed.Format(layout), nil
}

// DaysSince parses value with the given Go reference layout and returns the
// number of whole days between that date and now. The second return value is
// false when the value does not match the layout, so callers must branch on
// the missing count instead of receiving a fake zero.
func DaysSince(value, layout string) (int, bool) {
	parsed, err := time.Parse(layout, value)
	if err != nil {
		return 0, false
	}
	return int(time.Since(parsed).Hours() / 24), true
}
