package service

import (
	"context"

	"github.com/vnlunar/amlich/internal/calendar"
	"github.com/vnlunar/amlich/internal/canchi"
	"github.com/vnlunar/amlich/internal/domain/models"
	"github.com/vnlunar/amlich/internal/solarterm"
)

// weekdays is indexed by (jd+1) mod 7, so index 0 is Sunday.
var weekdays = [7]string{"Chủ nhật", "Thứ hai", "Thứ ba", "Thứ tư", "Thứ năm", "Thứ sáu", "Thứ bảy"}

// AlmanacService defines the business logic of the calendar API.
// This decouples HTTP handlers from the conversion engine.
type AlmanacService interface {
	ConvertSolar(ctx context.Context, dd, mm, yy int) (calendar.LunarDate, error)
	ConvertLunar(ctx context.Context, dd, mm, yy int, leap bool) (calendar.SolarDate, error)
	DayInfo(ctx context.Context, dd, mm, yy int) (*models.DayInfo, error)
	SolarTerms(ctx context.Context, year int) []solarterm.Occurrence
}

type almanacService struct {
	timezone float64
}

// NewAlmanacService builds an AlmanacService fixed to the given
// timezone offset in hours. Vietnam uses calendar.DefaultTimezone.
func NewAlmanacService(timezone float64) AlmanacService {
	return &almanacService{timezone: timezone}
}

func (s *almanacService) ConvertSolar(_ context.Context, dd, mm, yy int) (calendar.LunarDate, error) {
	return calendar.SolarToLunar(dd, mm, yy, s.timezone)
}

func (s *almanacService) ConvertLunar(_ context.Context, dd, mm, yy int, leap bool) (calendar.SolarDate, error) {
	return calendar.LunarToSolar(dd, mm, yy, leap, s.timezone)
}

func (s *almanacService) DayInfo(_ context.Context, dd, mm, yy int) (*models.DayInfo, error) {
	lunar, err := calendar.SolarToLunar(dd, mm, yy, s.timezone)
	if err != nil {
		return nil, err
	}
	jd := calendar.JDFromDate(dd, mm, yy)

	return &models.DayInfo{
		SolarDay:   dd,
		SolarMonth: mm,
		SolarYear:  yy,

		LunarDay:   lunar.Day,
		LunarMonth: lunar.Month,
		LunarYear:  lunar.Year,
		LunarLeap:  lunar.Leap,

		JulianDay: jd,
		Weekday:   weekdays[mod(jd+1, 7)],

		YearName:   canchi.YearName(lunar.Year),
		MonthName:  canchi.MonthName(lunar.Month, lunar.Year),
		DayName:    canchi.DayName(jd),
		TyHourName: canchi.HourName(jd),

		SolarTerm:   solarterm.Term(jd, s.timezone),
		SolarTermEn: solarterm.TermEnglish(jd, s.timezone),

		Hours: canchi.LuckyHours(jd),
	}, nil
}

func (s *almanacService) SolarTerms(_ context.Context, year int) []solarterm.Occurrence {
	return solarterm.AllInYear(year, s.timezone)
}

func mod(a, n int) int {
	return ((a % n) + n) % n
}
