package validate

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/vnlunar/amlich/internal/calendar"
)

func TestCheckYear(t *testing.T) {
	days, err := checkYear(2024, calendar.DefaultTimezone)
	if err != nil {
		t.Fatalf("checkYear(2024): %v", err)
	}
	if days != 366 {
		t.Fatalf("days = %d, want 366", days)
	}
}

func TestRun_SmallRange(t *testing.T) {
	if err := Run(context.Background(), 2020, 2024, 2, calendar.DefaultTimezone); err != nil {
		t.Fatalf("Run: %v", err)
	}
}

func TestRun_ClampsToTableSpan(t *testing.T) {
	// 1790–1799 clamps to an empty range.
	err := Run(context.Background(), 1790, 1799, 1, calendar.DefaultTimezone)
	if err == nil || !strings.Contains(err.Error(), "empty year range") {
		t.Fatalf("err = %v, want empty-range error", err)
	}
}

func TestRun_ReportsMismatch(t *testing.T) {
	old := astroConvert
	t.Cleanup(func() { astroConvert = old })
	astroConvert = func(dd, mm, yy int, timezone float64) (calendar.LunarDate, error) {
		return calendar.LunarDate{Day: 99}, nil
	}

	err := Run(context.Background(), 2024, 2024, 1, calendar.DefaultTimezone)
	if err == nil || !strings.Contains(err.Error(), "tier mismatch") {
		t.Fatalf("err = %v, want mismatch", err)
	}
}

func TestRun_AstroError(t *testing.T) {
	old := astroConvert
	t.Cleanup(func() { astroConvert = old })
	boom := errors.New("boom")
	astroConvert = func(dd, mm, yy int, timezone float64) (calendar.LunarDate, error) {
		return calendar.LunarDate{}, boom
	}

	if err := Run(context.Background(), 2024, 2024, 1, calendar.DefaultTimezone); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped boom", err)
	}
}
