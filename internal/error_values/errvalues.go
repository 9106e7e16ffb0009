package errorvalues

import "errors"

var (
	ErrInvalidTimeFormat    = errors.New("time string must look like H:MM AM/PM")
	ErrReminderNotFound     = errors.New("reminder doesn't exists")
	ErrReminderExists       = errors.New("reminder with such name already exists")
	ErrSchedulerUnavailable = errors.New("notification scheduler unavailable")
	ErrStoreUnavailable     = errors.New("reminder store unavailable")
	ErrUnknownWeekday       = errors.New("unknown weekday name")
	ErrNoDaysSelected       = errors.New("weekly reminder needs at least one weekday")
)
