package calendar

// Julian Day Number arithmetic (Fliegel–Van Flandern).
//
// A JDN here is a plain day-resolution integer: the astronomical
// noon-based convention is irrelevant because every consumer works at
// local-midnight day granularity. Both directions switch formula at
// JDN 2299161 (15 Oct 1582), the Gregorian reform boundary, so dates
// before the reform round-trip through the Julian calendar exactly.

// gregorianReformJDN is the first day of the Gregorian calendar.
const gregorianReformJDN = 2299161

// JDFromDate computes the Julian Day Number of a calendar date.
//
// The date is interpreted as Gregorian on or after 15 Oct 1582 and as
// Julian before it. Any integer input is accepted; this layer is pure
// arithmetic, not a validator — callers wanting validation go through
// NewSolarDate.
func JDFromDate(dd, mm, yy int) int {
	a := (14 - mm) / 12
	y := yy + 4800 - a
	m := mm + 12*a - 3

	jd := dd + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
	if jd < gregorianReformJDN {
		// Julian calendar regime: no century corrections.
		jd = dd + (153*m+2)/5 + 365*y + y/4 - 32083
	}
	return jd
}

// JDToDate is the exact inverse of JDFromDate, branching on the same
// reform boundary.
func JDToDate(jd int) (day, month, year int) {
	var b, c int
	if jd > gregorianReformJDN-1 {
		a := jd + 32044
		b = (4*a + 3) / 146097
		c = a - (b*146097)/4
	} else {
		b = 0
		c = jd + 32082
	}

	d := (4*c + 3) / 1461
	e := c - (1461*d)/4
	m := (5*e + 2) / 153

	day = e - (153*m+2)/5 + 1
	month = m + 3 - 12*(m/10)
	year = b*100 + d - 4800 + m/10
	return day, month, year
}
