package dto

// Fields in this package match the API contract and may differ from
// internal domain models. This keeps the API surface decoupled from
// the calendar engine's types.

// SolarDateDTO is a Gregorian calendar date as exposed by the API.
type SolarDateDTO struct {
	Day   int `json:"day" example:"10"`
	Month int `json:"month" example:"2"`
	Year  int `json:"year" example:"2024"`
}

// LunarDateDTO is a Vietnamese lunar calendar date as exposed by the API.
type LunarDateDTO struct {
	Day   int  `json:"day" example:"1"`
	Month int  `json:"month" example:"1"`
	Year  int  `json:"year" example:"2024"`
	Leap  bool `json:"leap" example:"false"` // true for tháng nhuận
}

// ConvertSolarResponse is returned by GET /api/v1/convert/solar.
type ConvertSolarResponse struct {
	Solar SolarDateDTO `json:"solar"`
	Lunar LunarDateDTO `json:"lunar"`
}

// ConvertLunarResponse is returned by GET /api/v1/convert/lunar.
type ConvertLunarResponse struct {
	Lunar LunarDateDTO `json:"lunar"`
	Solar SolarDateDTO `json:"solar"`
}

// HourDTO describes one of the day's 12 double-hours.
type HourDTO struct {
	Name  string `json:"name" example:"Giáp Tý"` // Can Chi name
	Chi   string `json:"chi" example:"Tý"`       // Earthly Branch
	Start int    `json:"start" example:"23"`     // opening clock hour
	End   int    `json:"end" example:"1"`        // closing clock hour
	Lucky bool   `json:"lucky" example:"true"`   // Giờ Hoàng Đạo
}

// DayInfoResponse is the full almanac entry returned by
// GET /api/v1/almanac/day.
type DayInfoResponse struct {
	Solar       SolarDateDTO `json:"solar"`
	Lunar       LunarDateDTO `json:"lunar"`
	JulianDay   int          `json:"julian_day" example:"2460351"`
	Weekday     string       `json:"weekday" example:"Thứ bảy"`
	YearName    string       `json:"year_name" example:"Giáp Thìn"`
	MonthName   string       `json:"month_name" example:"Bính Dần"`
	DayName     string       `json:"day_name" example:"Giáp Thìn"`
	TyHourName  string       `json:"ty_hour_name" example:"Giáp Tý"`
	SolarTerm   string       `json:"solar_term" example:"Lập xuân"`
	SolarTermEn string       `json:"solar_term_en" example:"Start of Spring"`
	LuckyHours  []HourDTO    `json:"lucky_hours"`
}

// SolarTermDTO is one solar-term boundary within a year.
type SolarTermDTO struct {
	Index  int          `json:"index" example:"18"`
	Name   string       `json:"name" example:"Đông chí"`
	NameEn string       `json:"name_en" example:"Winter Solstice"`
	Date   SolarDateDTO `json:"date"`
}

// SolarTermsResponse is returned by GET /api/v1/almanac/solar-terms.
type SolarTermsResponse struct {
	Year  int            `json:"year" example:"2024"`
	Terms []SolarTermDTO `json:"terms"`
}
