package calendar

import "fmt"

// LunarDate is an immutable Vietnamese lunar calendar date. Leap marks
// the inserted leap month (tháng nhuận), which always carries the same
// number as the ordinary month it follows.
type LunarDate struct {
	Day   int
	Month int
	Year  int
	Leap  bool
}

// NewLunarDate validates ranges (day 1–30, month 1–12) and builds a
// LunarDate. Whether the day exists in that particular month instance
// (29- vs 30-day) is only decidable during conversion; LunarToSolar
// performs that check.
func NewLunarDate(day, month, year int, leap bool) (LunarDate, error) {
	if month < 1 || month > 12 {
		return LunarDate{}, fmt.Errorf("%w: invalid lunar month %d", ErrDateNotExist, month)
	}
	if day < 1 || day > 30 {
		return LunarDate{}, fmt.Errorf("%w: invalid lunar day %d", ErrDateNotExist, day)
	}
	return LunarDate{Day: day, Month: month, Year: year, Leap: leap}, nil
}

// ToSolar converts to the Gregorian date of this lunar day.
func (l LunarDate) ToSolar(timezone float64) (SolarDate, error) {
	return LunarToSolar(l.Day, l.Month, l.Year, l.Leap, timezone)
}

// Before reports whether l is strictly earlier than other. Within the
// same month number the ordinary month precedes its leap twin.
func (l LunarDate) Before(other LunarDate) bool {
	if l.Year != other.Year {
		return l.Year < other.Year
	}
	if l.Month != other.Month {
		return l.Month < other.Month
	}
	if l.Leap != other.Leap {
		return !l.Leap
	}
	return l.Day < other.Day
}

func (l LunarDate) String() string {
	if l.Leap {
		return fmt.Sprintf("%02d/%02d/%04d (nhuận)", l.Day, l.Month, l.Year)
	}
	return fmt.Sprintf("%02d/%02d/%04d", l.Day, l.Month, l.Year)
}
