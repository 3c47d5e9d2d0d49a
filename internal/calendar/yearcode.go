package calendar

// LunarMonth is one month span of a decoded lunar year.
//
// Months come out in chronological order: ordinary months 1..12, with
// at most one leap entry inserted immediately after the ordinary month
// of the same number.
type LunarMonth struct {
	Month int  // lunar month number, 1..12
	Days  int  // actual length, 29 or 30
	Leap  bool // true for the inserted leap month
	Start int  // JDN of day 1 of this month
}

// DecodeLunarYear unrolls the packed year code for the given solar
// year into the JDN of Tết and the year's 12 or 13 consecutive month
// spans. It returns ErrYearOutOfRange for years outside the table's
// 1800–2099 coverage; the conversion engine treats that as the signal
// to fall through to the astronomical tier.
func DecodeLunarYear(year int) (tetJD int, months []LunarMonth, err error) {
	idx := year - yearCodeFirst
	if idx < 0 || idx >= len(yearCodes) {
		return 0, nil, ErrYearOutOfRange
	}
	code := yearCodes[idx]

	tetJD = JDFromDate(1, 1, year) + int(code>>17)

	leapMonth := int(code & 0xF)
	leapDays := 29
	if code>>16&1 == 1 {
		leapDays = 30
	}

	// Bits 15 down to 4 flag 30-day ordinary months 1..12.
	var days [12]int
	for m := 1; m <= 12; m++ {
		days[m-1] = 29
		if code>>(16-m)&1 == 1 {
			days[m-1] = 30
		}
	}

	months = make([]LunarMonth, 0, 13)
	cur := tetJD
	for m := 1; m <= 12; m++ {
		months = append(months, LunarMonth{Month: m, Days: days[m-1], Start: cur})
		cur += days[m-1]

		if m == leapMonth {
			months = append(months, LunarMonth{Month: m, Days: leapDays, Leap: true, Start: cur})
			cur += leapDays
		}
	}
	return tetJD, months, nil
}
