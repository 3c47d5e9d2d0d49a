package calendar

import (
	"fmt"
	"time"
)

// SolarDate is an immutable Gregorian calendar date. Construct it with
// NewSolarDate so that validation happens exactly once.
type SolarDate struct {
	Day   int
	Month int
	Year  int
}

// NewSolarDate validates and builds a SolarDate. It fails with
// ErrDateNotExist for day/month combinations that do not exist.
func NewSolarDate(day, month, year int) (SolarDate, error) {
	if !ValidSolarDate(day, month, year) {
		return SolarDate{}, fmt.Errorf("%w: invalid solar date %02d/%02d/%04d", ErrDateNotExist, day, month, year)
	}
	return SolarDate{Day: day, Month: month, Year: year}, nil
}

// SolarDateFromJD builds the SolarDate for a Julian Day Number.
func SolarDateFromJD(jd int) SolarDate {
	d, m, y := JDToDate(jd)
	return SolarDate{Day: d, Month: m, Year: y}
}

// SolarDateFromTime builds the SolarDate for the calendar day of t.
func SolarDateFromTime(t time.Time) SolarDate {
	return SolarDate{Day: t.Day(), Month: int(t.Month()), Year: t.Year()}
}

var monthDays = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// ValidSolarDate reports whether the triple denotes a real Gregorian
// date, respecting month lengths and the 4/100/400 leap-year rule.
func ValidSolarDate(day, month, year int) bool {
	if month < 1 || month > 12 || day < 1 {
		return false
	}
	max := monthDays[month]
	if month == 2 && IsLeapYear(year) {
		max = 29
	}
	return day <= max
}

// IsLeapYear reports whether a Gregorian year is a leap year.
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// JD returns the Julian Day Number of the date.
func (s SolarDate) JD() int {
	return JDFromDate(s.Day, s.Month, s.Year)
}

// ToLunar converts to the lunar date containing this solar day.
func (s SolarDate) ToLunar(timezone float64) (LunarDate, error) {
	return SolarToLunar(s.Day, s.Month, s.Year, timezone)
}

// Before reports whether s is strictly earlier than other.
func (s SolarDate) Before(other SolarDate) bool {
	if s.Year != other.Year {
		return s.Year < other.Year
	}
	if s.Month != other.Month {
		return s.Month < other.Month
	}
	return s.Day < other.Day
}

func (s SolarDate) String() string {
	return fmt.Sprintf("%02d/%02d/%04d", s.Day, s.Month, s.Year)
}
