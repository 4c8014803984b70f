package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseQuickAdd(t *testing.T) {
	today := time.Date(2026, time.October, 18, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		text      string
		wantTitle string
		wantFreq  RepeatFrequency
	}{
		{name: "every day", text: "Stretch every day", wantTitle: "Stretch", wantFreq: RepeatDaily},
		{name: "daily", text: "Journal daily", wantTitle: "Journal", wantFreq: RepeatDaily},
		{name: "every week", text: "Water plants every week", wantTitle: "Water plants", wantFreq: RepeatWeekly},
		{name: "weekly uppercase", text: "Groceries WEEKLY", wantTitle: "Groceries", wantFreq: RepeatWeekly},
		{name: "every month", text: "Pay rent every month", wantTitle: "Pay rent", wantFreq: RepeatMonthly},
		{name: "monthly", text: "Backup photos monthly", wantTitle: "Backup photos", wantFreq: RepeatMonthly},
		{name: "no keyword", text: "  Call mom  ", wantTitle: "Call mom", wantFreq: RepeatOnce},
		{name: "daily wins over weekly", text: "Review weekly goals daily", wantTitle: "Review", wantFreq: RepeatDaily},
		{name: "every without unit", text: "Read every evening", wantTitle: "Read", wantFreq: RepeatOnce},
		{name: "keyword only", text: "daily", wantTitle: "daily", wantFreq: RepeatDaily},
		{name: "empty", text: "", wantTitle: "", wantFreq: RepeatOnce},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := ParseQuickAdd(tt.text, today)

			assert.Equal(t, tt.wantTitle, d.Title)
			assert.Equal(t, tt.wantFreq, d.RepeatFrequency)
			assert.Equal(t, time.Date(2026, time.October, 18, 0, 0, 0, 0, time.UTC), d.DueDate)
			assert.False(t, d.Completed)
			assert.Empty(t, d.Description)
		})
	}
}
