package calendar

import (
	"math"
	"sync"
)

// Astronomical primitives: mean new-moon times and solar ecliptic
// longitude, after the approximations in Jean Meeus, "Astronomical
// Algorithms" (1998), as adapted for the Vietnamese calendar by
// Hồ Ngọc Đức. These are approximation series, not exact astronomy;
// month boundaries are sensitive to off-by-one errors near segment
// transitions, so operation order and constants follow the reference
// formulas exactly.

const (
	degToRad = math.Pi / 180

	// newMoonEpoch is the fractional JDN of the k=0 reference new moon
	// (shortly after 1900-01-01) used to estimate lunation indices.
	newMoonEpoch = 2415021.076998695

	// synodicMonth is the mean lunation length in days.
	synodicMonth = 29.530588853
)

// intFloor truncates toward negative infinity. The reference
// algorithm's INT() is a floor, not a cast; truncation toward zero
// silently corrupts lunation indices for dates before 1900.
func intFloor(d float64) int {
	return int(math.Floor(d))
}

// memo is a small mutex-guarded cache for pure integer-keyed
// astronomical searches. It is a speed optimization only: entries are
// referentially transparent, so the whole map is simply dropped when
// it grows past cap.
type memo[K comparable, V any] struct {
	mu  sync.Mutex
	cap int
	m   map[K]V
}

func newMemo[K comparable, V any](capacity int) *memo[K, V] {
	return &memo[K, V]{cap: capacity, m: make(map[K]V)}
}

func (c *memo[K, V]) get(k K, compute func() V) V {
	c.mu.Lock()
	if v, ok := c.m[k]; ok {
		c.mu.Unlock()
		return v
	}
	c.mu.Unlock()

	v := compute()

	c.mu.Lock()
	if len(c.m) >= c.cap {
		c.m = make(map[K]V)
	}
	c.m[k] = v
	c.mu.Unlock()
	return v
}

var newMoonCache = newMemo[int, float64](1024)

// NewMoon returns the fractional JDN of the k-th new moon counted from
// the epoch near 1900-01-01. The series is a polynomial in elapsed
// lunations plus periodic corrections in the solar mean anomaly M,
// the lunar mean anomaly Mpr and the argument of latitude F, with a
// tidal-deceleration (ΔT) correction that bifurcates at T < -11.
func NewMoon(k int) float64 {
	return newMoonCache.get(k, func() float64 { return newMoonRaw(k) })
}

func newMoonRaw(k int) float64 {
	t := float64(k) / 1236.85 // time in Julian centuries from 1900
	t2 := t * t
	t3 := t2 * t

	jd1 := 2415020.75933 + 29.53058868*float64(k) + 0.0001178*t2 - 0.000000155*t3
	jd1 += 0.00033 * math.Sin((166.56+132.87*t-0.009173*t2)*degToRad)

	m := 359.2242 + 29.10535608*float64(k) - 0.0000333*t2 - 0.00000347*t3
	mpr := 306.0253 + 385.81691806*float64(k) + 0.0107306*t2 + 0.00001236*t3
	f := 21.2964 + 390.67050646*float64(k) - 0.0016528*t2 - 0.00000239*t3

	c1 := (0.1734-0.000393*t)*math.Sin(m*degToRad) + 0.0021*math.Sin(2*degToRad*m)
	c1 = c1 - 0.4068*math.Sin(mpr*degToRad) + 0.0161*math.Sin(degToRad*2*mpr)
	c1 = c1 - 0.0004*math.Sin(degToRad*3*mpr)
	c1 = c1 + 0.0104*math.Sin(degToRad*2*f) - 0.0051*math.Sin(degToRad*(m+mpr))
	c1 = c1 - 0.0074*math.Sin(degToRad*(m-mpr)) + 0.0004*math.Sin(degToRad*(2*f+m))
	c1 = c1 - 0.0004*math.Sin(degToRad*(2*f-m)) - 0.0006*math.Sin(degToRad*(2*f+mpr))
	c1 = c1 + 0.0010*math.Sin(degToRad*(2*f-mpr)) + 0.0005*math.Sin(degToRad*(2*mpr+m))

	var deltaT float64
	if t < -11 {
		deltaT = 0.001 + 0.000839*t + 0.0002261*t2 - 0.00000845*t3 - 0.000000081*t*t3
	} else {
		deltaT = -0.000278 + 0.000265*t + 0.000262*t2
	}

	return jd1 + c1 - deltaT
}

// NewMoonDay returns the integer JDN of the day containing the k-th
// new moon, where days run midnight-to-midnight at the given UTC
// offset in hours.
func NewMoonDay(k int, timezone float64) int {
	return intFloor(NewMoon(k) + 0.5 + timezone/24.0)
}

// SunLongitude computes the ecliptic longitude of the sun at the given
// fractional JDN, in radians normalized to [0, 2π). Mean longitude
// plus two periodic correction terms in the mean anomaly.
func SunLongitude(jd float64) float64 {
	t := (jd - 2451545.0) / 36525.0 // centuries from J2000
	t2 := t * t

	m := 357.52910 + 35999.05030*t - 0.0001559*t2 - 0.00000048*t*t2
	l0 := 280.46645 + 36000.76983*t + 0.0003032*t2

	dl := (1.914600 - 0.004817*t - 0.000014*t2) * math.Sin(degToRad*m)
	dl += (0.019993 - 0.000101*t) * math.Sin(degToRad*2*m)
	dl += 0.000290 * math.Sin(degToRad*3*m)

	l := (l0 + dl) * degToRad
	l -= 2 * math.Pi * float64(intFloor(l/(2*math.Pi)))
	if l < 0 {
		l += 2 * math.Pi
	}
	return l
}

// SunLongitudeSegment buckets the sun's longitude at local midnight of
// the given day into one of twelve 30° segments, returning 0..11.
// Segment transitions mark major solar terms and, by extension, lunar
// month boundaries.
func SunLongitudeSegment(jd int, timezone float64) int {
	return intFloor(SunLongitude(float64(jd)-0.5-timezone/24.0) / math.Pi * 6)
}

type yearTZKey struct {
	year int
	tz   float64
}

type dayTZKey struct {
	jd int
	tz float64
}

var (
	month11Cache    = newMemo[yearTZKey, int](256)
	leapOffsetCache = newMemo[dayTZKey, int](256)
)

// lunarMonth11 returns the JDN starting lunar month 11 of the given
// solar year: the month containing the winter solstice (sun longitude
// 270°, segment 9 onward).
func lunarMonth11(year int, timezone float64) int {
	return month11Cache.get(yearTZKey{year, timezone}, func() int {
		off := float64(JDFromDate(31, 12, year)) - 2415021.0
		k := intFloor(off / synodicMonth)
		nm := NewMoonDay(k, timezone)
		if SunLongitudeSegment(nm, timezone) >= 9 {
			nm = NewMoonDay(k-1, timezone)
		}
		return nm
	})
}

// leapMonthOffset scans the 13 lunations after the month starting at
// a11 for two consecutive months whose mid-start longitude segment is
// identical — the signature of an inserted leap month — and returns
// the offset of the first such month, or 0 when none is found.
func leapMonthOffset(a11 int, timezone float64) int {
	return leapOffsetCache.get(dayTZKey{a11, timezone}, func() int {
		k := intFloor((float64(a11)-newMoonEpoch)/synodicMonth + 0.5)
		last := SunLongitudeSegment(NewMoonDay(k, timezone), timezone)
		for i := 1; i < 14; i++ {
			arc := SunLongitudeSegment(NewMoonDay(k+i, timezone), timezone)
			if i > 1 && arc == last {
				return i - 1
			}
			last = arc
		}
		return 0
	})
}
