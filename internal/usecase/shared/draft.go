// Package shared holds helpers used by several use cases.
package shared

import (
	"strconv"
	"strings"

	"github.com/runoshun/recur/internal/domain"
)

// NormalizeDraft trims text fields, normalizes custom days and validates the result.
// Custom days are kept only for RepeatCustom, which needs at least one.
func NormalizeDraft(d domain.TaskDraft) (domain.TaskDraft, error) {
	d.Title = strings.TrimSpace(d.Title)
	d.Description = strings.TrimSpace(d.Description)
	if d.Title == "" {
		return domain.TaskDraft{}, domain.ErrEmptyTitle
	}
	if !d.RepeatFrequency.IsValid() {
		d.RepeatFrequency = domain.RepeatOnce
	}

	if d.RepeatFrequency != domain.RepeatCustom {
		d.CustomDays = nil
		return d, nil
	}
	d.CustomDays = domain.NormalizeCustomDays(d.CustomDays)
	if len(d.CustomDays) == 0 {
		return domain.TaskDraft{}, domain.ErrNoCustomDays
	}
	return d, nil
}

// ParseCustomDays parses a comma or space separated list of days of month
// such as "1, 15". Entries that are not numbers or outside 1-31 are dropped.
func ParseCustomDays(s string) []int {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' '
	})
	days := make([]int, 0, len(fields))
	for _, f := range fields {
		if n, err := strconv.Atoi(f); err == nil {
			days = append(days, n)
		}
	}
	return domain.NormalizeCustomDays(days)
}

// FormatCustomDays renders days as "1, 15".
func FormatCustomDays(days []int) string {
	parts := make([]string, 0, len(days))
	for _, d := range days {
		parts = append(parts, strconv.Itoa(d))
	}
	return strings.Join(parts, ", ")
}
