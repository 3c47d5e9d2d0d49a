package calendar

import "errors"

var (
	// ErrDateNotExist reports a date that does not exist: an invalid
	// Gregorian day/month combination, a leap month the target lunar
	// year does not contain, or a lunar day beyond the month's real
	// length (29 or 30).
	ErrDateNotExist = errors.New("date does not exist")

	// ErrYearOutOfRange reports a year no calculation strategy covers.
	// The lookup table returns it internally for years outside
	// 1800–2099, which triggers the astronomical fallback; it only
	// surfaces to callers for pathological inputs.
	ErrYearOutOfRange = errors.New("year out of supported range")
)
