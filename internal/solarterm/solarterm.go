// Package solarterm resolves the 24 solar terms (Tiết Khí). The
// underlying detector works at 12-segment (30°) resolution, so only
// the even-indexed "major" terms are ever resolved; the odd "minor"
// terms exist in the name tables for completeness of the classical
// nomenclature.
package solarterm

import (
	"github.com/vnlunar/amlich/internal/calendar"
)

// Names lists the 24 solar terms in Vietnamese, starting from Xuân
// phân (Spring Equinox, 0°) in 15° steps.
var Names = [24]string{
	"Xuân phân", "Thanh minh", "Cốc vũ",
	"Lập hạ", "Tiểu mãn", "Mang chủng",
	"Hạ chí", "Tiểu thử", "Đại thử",
	"Lập thu", "Xử thử", "Bạch lộ",
	"Thu phân", "Hàn lộ", "Sương giáng",
	"Lập đông", "Tiểu tuyết", "Đại tuyết",
	"Đông chí", "Tiểu hàn", "Đại hàn",
	"Lập xuân", "Vũ thủy", "Kinh trập",
}

// EnglishNames lists the same 24 terms in English.
var EnglishNames = [24]string{
	"Spring Equinox", "Clear and Bright", "Grain Rain",
	"Start of Summer", "Grain Full", "Grain in Ear",
	"Summer Solstice", "Minor Heat", "Major Heat",
	"Start of Autumn", "End of Heat", "White Dew",
	"Autumnal Equinox", "Cold Dew", "Frost's Descent",
	"Start of Winter", "Minor Snow", "Major Snow",
	"Winter Solstice", "Minor Cold", "Major Cold",
	"Start of Spring", "Rain Water", "Awakening of Insects",
}

// Index returns the term index (0–23, always even) governing the day
// with the given JDN. The jd+1 offset follows Hồ Ngọc Đức's
// day-boundary convention: the longitude is sampled at local midnight
// ending the day.
func Index(jd int, timezone float64) int {
	return calendar.SunLongitudeSegment(jd+1, timezone) * 2
}

// Term returns the Vietnamese name of the day's solar term.
func Term(jd int, timezone float64) string {
	return Names[Index(jd, timezone)]
}

// TermEnglish returns the English name of the day's solar term.
func TermEnglish(jd int, timezone float64) string {
	return EnglishNames[Index(jd, timezone)]
}

// Occurrence is one solar-term boundary day within a year.
type Occurrence struct {
	Index int                // term index 0-23 (even)
	Name  string             // Vietnamese name
	JD    int                // JDN of the first day of the term
	Date  calendar.SolarDate // solar date of that day
}

// AllInYear scans the solar year day by day for longitude-segment
// transitions and returns the term boundaries in order. The scan is
// O(366) with constant per-day cost.
func AllInYear(year int, timezone float64) []Occurrence {
	start := calendar.JDFromDate(1, 1, year)
	end := calendar.JDFromDate(31, 12, year)

	occs := make([]Occurrence, 0, 12)
	prev := calendar.SunLongitudeSegment(start+1, timezone)
	for jd := start + 1; jd <= end; jd++ {
		cur := calendar.SunLongitudeSegment(jd+1, timezone)
		if cur != prev {
			idx := cur * 2
			occs = append(occs, Occurrence{
				Index: idx,
				Name:  Names[idx],
				JD:    jd,
				Date:  calendar.SolarDateFromJD(jd),
			})
			prev = cur
		}
	}
	return occs
}
