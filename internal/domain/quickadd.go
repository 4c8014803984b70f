package domain

import (
	"regexp"
	"strings"
	"time"
)

// quickAddRule maps literal phrases to a frequency. Rules are checked in order.
type quickAddRule struct {
	freq    RepeatFrequency
	phrases []string
}

var quickAddRules = []quickAddRule{
	{freq: RepeatDaily, phrases: []string{"every day", "daily"}},
	{freq: RepeatWeekly, phrases: []string{"every week", "weekly"}},
	{freq: RepeatMonthly, phrases: []string{"every month", "monthly"}},
}

// quickAddKeyword finds the first frequency keyword preceded by whitespace.
var quickAddKeyword = regexp.MustCompile(`(?i)\s+(?:every|daily|weekly|monthly)`)

// ParseQuickAdd builds a draft from free text such as "Water plants every week".
// It is best effort: the frequency comes from literal phrases and the title is
// the text before the first frequency keyword. The due date is today.
func ParseQuickAdd(text string, today time.Time) TaskDraft {
	return TaskDraft{
		Title:           quickAddTitle(text),
		RepeatFrequency: quickAddFrequency(text),
		DueDate:         StartOfDay(today),
	}
}

func quickAddFrequency(text string) RepeatFrequency {
	lower := strings.ToLower(text)
	for _, rule := range quickAddRules {
		for _, p := range rule.phrases {
			if strings.Contains(lower, p) {
				return rule.freq
			}
		}
	}
	return RepeatOnce
}

func quickAddTitle(text string) string {
	if loc := quickAddKeyword.FindStringIndex(text); loc != nil {
		return strings.TrimSpace(text[:loc[0]])
	}
	return strings.TrimSpace(text)
}
