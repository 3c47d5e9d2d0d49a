// Package canchi derives sexagenary (Can Chi) names and the lucky-hour
// partition of a day. Everything here is closed-form modular arithmetic
// over the 10 Heavenly Stems and 12 Earthly Branches; day and hour
// names key off a Julian Day Number, year and month names need only the
// lunar (year, month) pair.
package canchi

import (
	"fmt"

	"github.com/vnlunar/amlich/internal/calendar"
)

// Can lists the 10 Heavenly Stems (Thiên Can).
var Can = [10]string{"Giáp", "Ất", "Bính", "Đinh", "Mậu", "Kỷ", "Canh", "Tân", "Nhâm", "Quý"}

// Chi lists the 12 Earthly Branches (Địa Chi).
var Chi = [12]string{"Tý", "Sửu", "Dần", "Mão", "Thìn", "Tỵ", "Ngọ", "Mùi", "Thân", "Dậu", "Tuất", "Hợi"}

// hourStarts[i] is the clock hour opening double-hour i; each spans
// two hours, with Tý (index 0) wrapping midnight at 23:00–01:00.
var hourStarts = [12]int{23, 1, 3, 5, 7, 9, 11, 13, 15, 17, 19, 21}

// luckyPatterns partitions the 12 double-hours into 6 lucky (Hoàng
// Đạo) and 6 unlucky (Hắc Đạo), indexed by the day's branch mod 6.
var luckyPatterns = [6][12]byte{
	{1, 1, 0, 1, 0, 0, 1, 0, 1, 1, 0, 0}, // Tý, Ngọ
	{0, 0, 1, 1, 0, 1, 0, 0, 1, 0, 1, 1}, // Sửu, Mùi
	{1, 1, 0, 0, 1, 1, 0, 1, 0, 0, 1, 0}, // Dần, Thân
	{1, 0, 1, 1, 0, 0, 1, 1, 0, 1, 0, 0}, // Mão, Dậu
	{0, 0, 1, 0, 1, 1, 0, 0, 1, 1, 0, 1}, // Thìn, Tuất
	{0, 1, 0, 0, 1, 0, 1, 1, 0, 0, 1, 1}, // Tỵ, Hợi
}

// YearName returns the Can Chi name of a lunar year, e.g. "Giáp Thìn"
// for 2024.
func YearName(year int) string {
	return Can[mod(year+6, 10)] + " " + Chi[mod(year+8, 12)]
}

// MonthName returns the Can Chi name of a lunar month. A leap month
// shares its ordinary twin's name.
func MonthName(month, year int) string {
	return Can[mod(year*12+month+3, 10)] + " " + Chi[mod(month+1, 12)]
}

// DayName returns the Can Chi name of the day with the given JDN.
func DayName(jd int) string {
	return Can[mod(jd+9, 10)] + " " + Chi[mod(jd+1, 12)]
}

// HourName returns the Can Chi name of Giờ Tý, the first double-hour
// (23:00–01:00) of the day with the given JDN. The stem of every later
// double-hour follows by advancing one step per branch.
func HourName(jd int) string {
	return Can[mod((jd-1)*2, 10)] + " " + Chi[0]
}

// HourChiIndex maps a clock hour (0–23) to its double-hour branch
// index (0–11). 23:00 maps to Tý of the following cycle.
func HourChiIndex(hour int) (int, error) {
	if hour < 0 || hour > 23 {
		return 0, fmt.Errorf("hour must be 0-23, got %d", hour)
	}
	return ((hour + 1) / 2) % 12, nil
}

// HourInfo is the full Can Chi description of one double-hour.
type HourInfo struct {
	Can   string // Heavenly Stem, e.g. "Nhâm"
	Chi   string // Earthly Branch, e.g. "Dần"
	Name  string // combined, e.g. "Nhâm Dần"
	Start int    // opening clock hour, 0-23
	End   int    // closing clock hour, 1-23
	Lucky bool   // Giờ Hoàng Đạo
}

// HourInfoAt resolves the double-hour containing the given clock hour
// on a solar date. Hours 23:00–23:59 belong to Giờ Tý of the next
// day's cycle, so the stem is computed against jd+1.
func HourInfoAt(hour, dd, mm, yy int) (HourInfo, error) {
	chiIdx, err := HourChiIndex(hour)
	if err != nil {
		return HourInfo{}, err
	}

	jd := calendar.JDFromDate(dd, mm, yy)
	if hour >= 23 {
		jd++
	}

	tyCanIdx := mod((jd-1)*2, 10)
	canIdx := mod(tyCanIdx+chiIdx, 10)

	pattern := luckyPatterns[mod(jd+1, 12)%6]

	return HourInfo{
		Can:   Can[canIdx],
		Chi:   Chi[chiIdx],
		Name:  Can[canIdx] + " " + Chi[chiIdx],
		Start: hourStarts[chiIdx],
		End:   (hourStarts[chiIdx] + 2) % 24,
		Lucky: pattern[chiIdx] == 1,
	}, nil
}

// LuckyHours returns the day's 12 double-hours with their lucky flags;
// exactly 6 of them are lucky for every day.
func LuckyHours(jd int) []HourInfo {
	tyCanIdx := mod((jd-1)*2, 10)
	pattern := luckyPatterns[mod(jd+1, 12)%6]

	hours := make([]HourInfo, 12)
	for i := 0; i < 12; i++ {
		canIdx := mod(tyCanIdx+i, 10)
		hours[i] = HourInfo{
			Can:   Can[canIdx],
			Chi:   Chi[i],
			Name:  Can[canIdx] + " " + Chi[i],
			Start: hourStarts[i],
			End:   (hourStarts[i] + 2) % 24,
			Lucky: pattern[i] == 1,
		}
	}
	return hours
}

// LuckyHourNames returns just the branch names of the day's 6 lucky
// double-hours.
func LuckyHourNames(jd int) []string {
	names := make([]string, 0, 6)
	for _, h := range LuckyHours(jd) {
		if h.Lucky {
			names = append(names, h.Chi)
		}
	}
	return names
}

// mod is the positive remainder; jd-based indices can go negative for
// proleptic dates.
func mod(a, n int) int {
	return ((a % n) + n) % n
}
