package canchi

import (
	"testing"

	"github.com/vnlunar/amlich/internal/calendar"
)

func TestYearName(t *testing.T) {
	cases := []struct {
		year int
		want string
	}{
		{2024, "Giáp Thìn"},
		{2023, "Quý Mão"},
		{2020, "Canh Tý"},
		{2000, "Canh Thìn"},
		{1975, "Ất Mão"},
		{1945, "Ất Dậu"},
	}
	for _, tc := range cases {
		if got := YearName(tc.year); got != tc.want {
			t.Fatalf("YearName(%d) = %q, want %q", tc.year, got, tc.want)
		}
	}
	// 60-year cycle.
	if YearName(2024) != YearName(2084) || YearName(2024) == YearName(2025) {
		t.Fatal("sexagenary year cycle broken")
	}
}

func TestMonthName(t *testing.T) {
	cases := []struct {
		month, year int
		want        string
	}{
		{1, 2024, "Bính Dần"},
		{11, 2024, "Bính Tý"},
		{12, 2024, "Đinh Sửu"},
		{4, 2020, "Tân Tỵ"},
	}
	for _, tc := range cases {
		if got := MonthName(tc.month, tc.year); got != tc.want {
			t.Fatalf("MonthName(%d,%d) = %q, want %q", tc.month, tc.year, got, tc.want)
		}
	}
}

func TestDayName(t *testing.T) {
	cases := []struct {
		d, m, y int
		want    string
	}{
		{10, 2, 2024, "Giáp Thìn"},
		{1, 1, 2000, "Mậu Ngọ"},
		{30, 4, 1975, "Bính Ngọ"},
		{2, 9, 1945, "Giáp Tuất"},
	}
	for _, tc := range cases {
		jd := calendar.JDFromDate(tc.d, tc.m, tc.y)
		if got := DayName(jd); got != tc.want {
			t.Fatalf("DayName(%d/%d/%d) = %q, want %q", tc.d, tc.m, tc.y, got, tc.want)
		}
	}
	// 60-day cycle.
	jd := calendar.JDFromDate(10, 2, 2024)
	if DayName(jd) != DayName(jd+60) || DayName(jd) == DayName(jd+1) {
		t.Fatal("sexagenary day cycle broken")
	}
}

func TestHourName(t *testing.T) {
	cases := []struct {
		d, m, y int
		want    string
	}{
		{10, 2, 2024, "Giáp Tý"},
		{1, 1, 2000, "Nhâm Tý"},
		{30, 4, 1975, "Mậu Tý"},
	}
	for _, tc := range cases {
		jd := calendar.JDFromDate(tc.d, tc.m, tc.y)
		if got := HourName(jd); got != tc.want {
			t.Fatalf("HourName(%d/%d/%d) = %q, want %q", tc.d, tc.m, tc.y, got, tc.want)
		}
	}
}

func TestHourChiIndex(t *testing.T) {
	cases := []struct {
		hour, want int
	}{
		{23, 0}, {0, 0}, {1, 1}, {2, 1}, {3, 2}, {11, 6}, {12, 6}, {22, 11},
	}
	for _, tc := range cases {
		got, err := HourChiIndex(tc.hour)
		if err != nil {
			t.Fatalf("HourChiIndex(%d): %v", tc.hour, err)
		}
		if got != tc.want {
			t.Fatalf("HourChiIndex(%d) = %d, want %d", tc.hour, got, tc.want)
		}
	}
	for _, h := range []int{-1, 24, 99} {
		if _, err := HourChiIndex(h); err == nil {
			t.Fatalf("HourChiIndex(%d) accepted out-of-range hour", h)
		}
	}
}

func TestHourInfoAt(t *testing.T) {
	info, err := HourInfoAt(3, 11, 7, 1989)
	if err != nil {
		t.Fatalf("HourInfoAt: %v", err)
	}
	if info.Name != "Nhâm Dần" || info.Lucky {
		t.Fatalf("03:00 on 11/7/1989 = %+v, want unlucky Nhâm Dần", info)
	}
	if info.Start != 3 || info.End != 5 {
		t.Fatalf("Dần spans %d-%d, want 3-5", info.Start, info.End)
	}

	// 23:00 rolls into the next day's Tý.
	late, err := HourInfoAt(23, 9, 2, 2024)
	if err != nil {
		t.Fatalf("HourInfoAt: %v", err)
	}
	early, err := HourInfoAt(0, 10, 2, 2024)
	if err != nil {
		t.Fatalf("HourInfoAt: %v", err)
	}
	if late.Name != early.Name || late.Name != "Giáp Tý" {
		t.Fatalf("midnight wrap: 23h = %q, 0h next day = %q, want both Giáp Tý", late.Name, early.Name)
	}

	if _, err := HourInfoAt(24, 1, 1, 2024); err == nil {
		t.Fatal("hour 24 accepted")
	}
}

func TestLuckyHours(t *testing.T) {
	cases := []struct {
		d, m, y int
		want    []string
	}{
		{1, 1, 2024, []string{"Tý", "Sửu", "Mão", "Ngọ", "Thân", "Dậu"}},
		{10, 2, 2024, []string{"Dần", "Thìn", "Tỵ", "Thân", "Dậu", "Hợi"}},
		{11, 7, 1989, []string{"Tý", "Sửu", "Thìn", "Tỵ", "Mùi", "Tuất"}},
	}
	for _, tc := range cases {
		jd := calendar.JDFromDate(tc.d, tc.m, tc.y)
		got := LuckyHourNames(jd)
		if len(got) != len(tc.want) {
			t.Fatalf("LuckyHourNames(%d/%d/%d) = %v, want %v", tc.d, tc.m, tc.y, got, tc.want)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("LuckyHourNames(%d/%d/%d) = %v, want %v", tc.d, tc.m, tc.y, got, tc.want)
			}
		}
	}
}

func TestLuckyHours_AlwaysSix(t *testing.T) {
	start := calendar.JDFromDate(1, 1, 2024)
	for jd := start; jd < start+366; jd++ {
		hours := LuckyHours(jd)
		if len(hours) != 12 {
			t.Fatalf("jd %d: %d double-hours", jd, len(hours))
		}
		lucky := 0
		for i, h := range hours {
			if h.Chi != Chi[i] {
				t.Fatalf("jd %d: hour %d branch %q", jd, i, h.Chi)
			}
			if h.Lucky {
				lucky++
			}
		}
		if lucky != 6 {
			t.Fatalf("jd %d: %d lucky hours, want 6", jd, lucky)
		}
	}
}
