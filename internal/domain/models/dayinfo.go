package models

import "github.com/vnlunar/amlich/internal/canchi"

// DayInfo is the full almanac entry for one solar day: both calendar
// dates, the sexagenary names, the governing solar term and the day's
// twelve double-hours.
//
// This model is assembled by the almanac service and mapped to
// dto.DayInfoResponse at the API boundary.
type DayInfo struct {
	SolarDay   int
	SolarMonth int
	SolarYear  int

	LunarDay   int
	LunarMonth int
	LunarYear  int
	LunarLeap  bool

	JulianDay int
	Weekday   string // Vietnamese weekday name, e.g. "Thứ bảy"

	YearName   string // Can Chi of the lunar year
	MonthName  string // Can Chi of the lunar month
	DayName    string // Can Chi of the day
	TyHourName string // Can Chi of the day's first double-hour

	SolarTerm   string // Vietnamese Tiết Khí name
	SolarTermEn string

	Hours []canchi.HourInfo // all 12 double-hours, 6 of them lucky
}
