package domain

import "strings"

// RepeatFrequency is the recurrence rule of a task.
type RepeatFrequency string

const (
	RepeatOnce    RepeatFrequency = "once"    // Never repeats
	RepeatDaily   RepeatFrequency = "daily"   // Next occurrence one day later
	RepeatWeekly  RepeatFrequency = "weekly"  // Next occurrence one week later
	RepeatMonthly RepeatFrequency = "monthly" // Next occurrence one calendar month later
	RepeatCustom  RepeatFrequency = "custom"  // Next occurrence on the next listed day of month
)

// AllRepeatFrequencies returns all valid frequency values in picker order.
func AllRepeatFrequencies() []RepeatFrequency {
	return []RepeatFrequency{
		RepeatOnce,
		RepeatDaily,
		RepeatWeekly,
		RepeatMonthly,
		RepeatCustom,
	}
}

// ParseRepeatFrequency parses s case-insensitively.
// Anything that is not a known frequency yields RepeatOnce.
func ParseRepeatFrequency(s string) RepeatFrequency {
	f := RepeatFrequency(strings.ToLower(strings.TrimSpace(s)))
	if f.IsValid() {
		return f
	}
	return RepeatOnce
}

// IsValid returns true if the frequency is a known value.
func (f RepeatFrequency) IsValid() bool {
	switch f {
	case RepeatOnce, RepeatDaily, RepeatWeekly, RepeatMonthly, RepeatCustom:
		return true
	default:
		return false
	}
}

// IsRepeating returns true if completing a task with this frequency spawns a successor.
func (f RepeatFrequency) IsRepeating() bool {
	switch f {
	case RepeatDaily, RepeatWeekly, RepeatMonthly, RepeatCustom:
		return true
	case RepeatOnce:
		return false
	default:
		return false
	}
}

// TracksStreak returns true if consecutive completions keep counting up.
// Monthly and custom tasks get 1 on their first completion and 0 on every later one.
func (f RepeatFrequency) TracksStreak() bool {
	return f == RepeatDaily || f == RepeatWeekly
}

// Display returns a human-readable representation of the frequency.
func (f RepeatFrequency) Display() string {
	switch f {
	case RepeatOnce:
		return "Once"
	case RepeatDaily:
		return "Daily"
	case RepeatWeekly:
		return "Weekly"
	case RepeatMonthly:
		return "Monthly"
	case RepeatCustom:
		return "Custom"
	default:
		return string(f)
	}
}

// Next returns the frequency after f in picker order, wrapping around.
func (f RepeatFrequency) Next() RepeatFrequency {
	all := AllRepeatFrequencies()
	for i, v := range all {
		if v == f {
			return all[(i+1)%len(all)]
		}
	}
	return RepeatOnce
}

// Prev returns the frequency before f in picker order, wrapping around.
func (f RepeatFrequency) Prev() RepeatFrequency {
	all := AllRepeatFrequencies()
	for i, v := range all {
		if v == f {
			return all[(i+len(all)-1)%len(all)]
		}
	}
	return RepeatOnce
}
