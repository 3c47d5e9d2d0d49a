package service

import (
	"context"
	"errors"
	"testing"

	"github.com/vnlunar/amlich/internal/calendar"
)

func TestAlmanacService_ConvertSolar(t *testing.T) {
	svc := NewAlmanacService(calendar.DefaultTimezone)

	got, err := svc.ConvertSolar(context.Background(), 10, 2, 2024)
	if err != nil {
		t.Fatalf("ConvertSolar: %v", err)
	}
	if want := (calendar.LunarDate{Day: 1, Month: 1, Year: 2024}); got != want {
		t.Fatalf("ConvertSolar = %v, want %v", got, want)
	}

	if _, err := svc.ConvertSolar(context.Background(), 30, 2, 2024); !errors.Is(err, calendar.ErrDateNotExist) {
		t.Fatalf("err = %v, want ErrDateNotExist", err)
	}
}

func TestAlmanacService_ConvertLunar(t *testing.T) {
	svc := NewAlmanacService(calendar.DefaultTimezone)

	got, err := svc.ConvertLunar(context.Background(), 1, 4, 2020, true)
	if err != nil {
		t.Fatalf("ConvertLunar: %v", err)
	}
	if want := (calendar.SolarDate{Day: 23, Month: 5, Year: 2020}); got != want {
		t.Fatalf("ConvertLunar = %v, want %v", got, want)
	}

	if _, err := svc.ConvertLunar(context.Background(), 1, 4, 2024, true); !errors.Is(err, calendar.ErrDateNotExist) {
		t.Fatalf("err = %v, want ErrDateNotExist", err)
	}
}

func TestAlmanacService_DayInfo(t *testing.T) {
	svc := NewAlmanacService(calendar.DefaultTimezone)

	info, err := svc.DayInfo(context.Background(), 10, 2, 2024)
	if err != nil {
		t.Fatalf("DayInfo: %v", err)
	}
	if info.LunarDay != 1 || info.LunarMonth != 1 || info.LunarYear != 2024 || info.LunarLeap {
		t.Fatalf("lunar part = %+v", info)
	}
	if info.JulianDay != 2460351 {
		t.Fatalf("jd = %d", info.JulianDay)
	}
	if info.Weekday != "Thứ bảy" {
		t.Fatalf("weekday = %q, want Thứ bảy", info.Weekday)
	}
	if info.YearName != "Giáp Thìn" || info.DayName != "Giáp Thìn" || info.MonthName != "Bính Dần" {
		t.Fatalf("can chi names = %+v", info)
	}
	if info.TyHourName != "Giáp Tý" {
		t.Fatalf("ty hour = %q", info.TyHourName)
	}
	if len(info.Hours) != 12 {
		t.Fatalf("hours = %d, want 12", len(info.Hours))
	}

	if _, err := svc.DayInfo(context.Background(), 31, 2, 2024); !errors.Is(err, calendar.ErrDateNotExist) {
		t.Fatalf("err = %v, want ErrDateNotExist", err)
	}
}

func TestAlmanacService_SolarTerms(t *testing.T) {
	svc := NewAlmanacService(calendar.DefaultTimezone)

	terms := svc.SolarTerms(context.Background(), 2024)
	if len(terms) != 12 {
		t.Fatalf("terms = %d, want 12", len(terms))
	}
	first := terms[0]
	if first.Name != "Đại hàn" || first.Date.Day != 20 || first.Date.Month != 1 {
		t.Fatalf("first term = %+v", first)
	}
}
