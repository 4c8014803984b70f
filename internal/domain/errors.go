package domain

import "errors"

// Domain errors.
var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrEmptyTitle       = errors.New("title cannot be empty")
	ErrNoFieldsToUpdate = errors.New("no fields to update")
	ErrNoCustomDays     = errors.New("custom repeat needs at least one day of month (1-31)")
	ErrConfigExists     = errors.New("config file already exists")
	ErrConfigNil        = errors.New("config is nil")
	ErrInvalidMonth     = errors.New("invalid month (want YYYY-MM)")
	ErrInvalidWeekday   = errors.New("invalid weekday")
	ErrInvalidDate      = errors.New("invalid date (want YYYY-MM-DD)")
	ErrEmptyFile        = errors.New("file is empty")
	ErrNoTasksInFile    = errors.New("no tasks found in file")
	ErrNoLogFile        = errors.New("no log file")
)
