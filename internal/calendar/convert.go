package calendar

import (
	"errors"
	"fmt"
)

// Conversion engine: Solar ↔ Lunar with a two-tier strategy.
//
// The lookup tier decodes the precomputed year-code table and is
// authoritative for solar years 1800–2099. Outside that span the
// engine silently falls through to the astronomical tier, which is
// unbounded. The table was generated from the astronomical tier, so
// the two agree exactly wherever both apply.
//
// The lookup tier is fixed to the official Vietnamese calendar
// (UTC+7); the timezone parameter only steers the astronomical tier.

// DefaultTimezone is the UTC offset of the Vietnamese civil calendar.
const DefaultTimezone = 7.0

// SolarToLunar converts a Gregorian date to the Vietnamese lunar date
// containing it. It fails only for solar dates that do not exist.
func SolarToLunar(dd, mm, yy int, timezone float64) (LunarDate, error) {
	if !ValidSolarDate(dd, mm, yy) {
		return LunarDate{}, fmt.Errorf("%w: invalid solar date %02d/%02d/%04d", ErrDateNotExist, dd, mm, yy)
	}
	if ld, ok := solarToLunarLookup(dd, mm, yy); ok {
		return ld, nil
	}
	return solarToLunarAstro(dd, mm, yy, timezone), nil
}

// LunarToSolar converts a Vietnamese lunar date to its Gregorian date.
// It fails with ErrDateNotExist when the requested leap month does not
// occur in that lunar year or the day exceeds the month's real length.
func LunarToSolar(dd, mm, yy int, leap bool, timezone float64) (SolarDate, error) {
	if dd < 1 || dd > 30 || mm < 1 || mm > 12 {
		return SolarDate{}, fmt.Errorf("%w: invalid lunar date %02d/%02d/%04d", ErrDateNotExist, dd, mm, yy)
	}
	sd, err := lunarToSolarLookup(dd, mm, yy, leap)
	if err == nil {
		return sd, nil
	}
	if !errors.Is(err, ErrYearOutOfRange) {
		return SolarDate{}, err
	}
	return lunarToSolarAstro(dd, mm, yy, leap, timezone)
}

// SolarToLunarAstro converts through the astronomical tier only,
// bypassing the year-code table. The two tiers must agree wherever the
// table applies; the validate command sweeps exactly that property.
func SolarToLunarAstro(dd, mm, yy int, timezone float64) (LunarDate, error) {
	if !ValidSolarDate(dd, mm, yy) {
		return LunarDate{}, fmt.Errorf("%w: invalid solar date %02d/%02d/%04d", ErrDateNotExist, dd, mm, yy)
	}
	return solarToLunarAstro(dd, mm, yy, timezone), nil
}

// ---- Lookup tier ----

func solarToLunarLookup(dd, mm, yy int) (LunarDate, bool) {
	jd := JDFromDate(dd, mm, yy)

	tetJD, months, err := DecodeLunarYear(yy)
	if err != nil {
		return LunarDate{}, false
	}
	lunarYear := yy
	if jd < tetJD {
		// Before Tết the date belongs to the previous lunar year.
		if _, months, err = DecodeLunarYear(yy - 1); err != nil {
			return LunarDate{}, false
		}
		lunarYear = yy - 1
	}

	// Last month starting on or before jd.
	for i := len(months) - 1; i >= 0; i-- {
		m := months[i]
		if jd >= m.Start {
			return LunarDate{Day: jd - m.Start + 1, Month: m.Month, Year: lunarYear, Leap: m.Leap}, true
		}
	}
	return LunarDate{}, false
}

func lunarToSolarLookup(dd, mm, yy int, leap bool) (SolarDate, error) {
	_, months, err := DecodeLunarYear(yy)
	if err != nil {
		return SolarDate{}, err
	}

	for _, m := range months {
		if m.Month != mm || m.Leap != leap {
			continue
		}
		if dd > m.Days {
			return SolarDate{}, fmt.Errorf("%w: day %d exceeds length %d of lunar month %02d/%04d",
				ErrDateNotExist, dd, m.Days, mm, yy)
		}
		d, mo, y := JDToDate(m.Start + dd - 1)
		return SolarDate{Day: d, Month: mo, Year: y}, nil
	}
	if leap {
		return SolarDate{}, fmt.Errorf("%w: month %d is not a leap month in lunar year %d", ErrDateNotExist, mm, yy)
	}
	return SolarDate{}, fmt.Errorf("%w: lunar date %02d/%02d/%04d", ErrDateNotExist, dd, mm, yy)
}

// ---- Astronomical tier ----

func solarToLunarAstro(dd, mm, yy int, timezone float64) LunarDate {
	jd := JDFromDate(dd, mm, yy)

	// New moon at or before jd. The lunation estimate can land up to
	// two months late near month boundaries; step back until the month
	// start no longer exceeds the target day.
	k := intFloor((float64(jd) - newMoonEpoch) / synodicMonth)
	monthStart := NewMoonDay(k+1, timezone)
	for i := 0; i < 2 && monthStart > jd; i++ {
		k--
		monthStart = NewMoonDay(k+1, timezone)
	}

	a11 := lunarMonth11(yy, timezone)
	b11 := a11
	lunarYear := yy
	if a11 >= monthStart {
		a11 = lunarMonth11(yy-1, timezone)
	} else {
		lunarYear = yy + 1
		b11 = lunarMonth11(yy+1, timezone)
	}

	lunarDay := jd - monthStart + 1
	diff := intFloor(float64(monthStart-a11) / 29)

	lunarLeap := false
	lunarMonth := diff + 11
	if b11-a11 > 365 {
		// Leap lunar year: months at or past the leap offset shift
		// down by one, and the month exactly at it is the leap month.
		leapDiff := leapMonthOffset(a11, timezone)
		if diff >= leapDiff {
			lunarMonth = diff + 10
			if diff == leapDiff {
				lunarLeap = true
			}
		}
	}
	if lunarMonth > 12 {
		lunarMonth -= 12
	}
	if lunarMonth >= 11 && diff < 4 {
		lunarYear--
	}

	return LunarDate{Day: lunarDay, Month: lunarMonth, Year: lunarYear, Leap: lunarLeap}
}

func lunarToSolarAstro(dd, mm, yy int, leap bool, timezone float64) (SolarDate, error) {
	var a11, b11 int
	if mm < 11 {
		a11 = lunarMonth11(yy-1, timezone)
		b11 = lunarMonth11(yy, timezone)
	} else {
		a11 = lunarMonth11(yy, timezone)
		b11 = lunarMonth11(yy+1, timezone)
	}

	k := intFloor(0.5 + (float64(a11)-newMoonEpoch)/synodicMonth)

	off := mm - 11
	if off < 0 {
		off += 12
	}

	if b11-a11 > 365 {
		leapOff := leapMonthOffset(a11, timezone)
		leapMonth := leapOff - 2
		if leapMonth < 0 {
			leapMonth += 12
		}
		if leap && mm != leapMonth {
			return SolarDate{}, fmt.Errorf("%w: month %d is not a leap month in lunar year %d", ErrDateNotExist, mm, yy)
		}
		if leap || off >= leapOff {
			off++
		}
	} else if leap {
		return SolarDate{}, fmt.Errorf("%w: lunar year %d has no leap month", ErrDateNotExist, yy)
	}

	monthStart := NewMoonDay(k+off, timezone)
	monthDays := NewMoonDay(k+off+1, timezone) - monthStart
	if dd > monthDays {
		return SolarDate{}, fmt.Errorf("%w: day %d exceeds length %d of lunar month %02d/%04d",
			ErrDateNotExist, dd, monthDays, mm, yy)
	}

	d, mo, y := JDToDate(monthStart + dd - 1)
	return SolarDate{Day: d, Month: mo, Year: y}, nil
}
