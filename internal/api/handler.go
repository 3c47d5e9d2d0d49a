package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vnlunar/amlich/internal/calendar"
	"github.com/vnlunar/amlich/internal/domain/dto"
	"github.com/vnlunar/amlich/internal/service"
	"github.com/vnlunar/amlich/internal/solarterm"
)

// Handler provides HTTP handlers for the calendar endpoints.
//
// Responsibilities:
//   - Validate incoming HTTP query parameters
//   - Call the almanac service for conversions and day lookups
//   - Translate engine results into response DTOs
//   - Return structured JSON responses with appropriate HTTP status codes
type Handler struct {
	svc service.AlmanacService
}

// NewHandler constructs a new Handler instance.
//
// Parameters:
//   - svc (service.AlmanacService): Almanac service used for all calendar logic.
//
// Returns:
//   - *Handler: A handler ready to be registered with the router.
func NewHandler(svc service.AlmanacService) *Handler {
	return &Handler{svc: svc}
}

// intQuery parses a required integer query parameter, writing a 400
// response when it is missing or malformed.
func intQuery(c *gin.Context, name string) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(name+" is required", nil))
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid "+name, err))
		return 0, false
	}
	return v, true
}

// writeEngineError maps engine errors to HTTP status codes. A date that
// does not exist is a client error; everything else is internal.
func writeEngineError(c *gin.Context, err error) {
	if errors.Is(err, calendar.ErrDateNotExist) {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("date does not exist", err))
		return
	}
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("conversion failed", err))
}

func solarDTO(d calendar.SolarDate) dto.SolarDateDTO {
	return dto.SolarDateDTO{Day: d.Day, Month: d.Month, Year: d.Year}
}

func lunarDTO(d calendar.LunarDate) dto.LunarDateDTO {
	return dto.LunarDateDTO{Day: d.Day, Month: d.Month, Year: d.Year, Leap: d.Leap}
}

// ConvertSolar handles GET /api/v1/convert/solar requests.
//
// Query Parameters:
//   - day, month, year (int, required): Gregorian date to convert.
//
// Responses:
//   - 200 OK: Returns ConvertSolarResponse with the lunar equivalent.
//   - 400 Bad Request: Missing parameters or nonexistent date.
//
// ConvertSolar godoc
// @Summary      Convert a solar date to the lunar calendar
// @Description  Returns the Vietnamese lunar date for a Gregorian date
// @Tags         convert
// @Produce      json
// @Param        day    query     int  true  "Day of month"  example(10)
// @Param        month  query     int  true  "Month"         example(2)
// @Param        year   query     int  true  "Year"          example(2024)
// @Success      200    {object}  dto.ConvertSolarResponse  "Success"
// @Failure      400    {object}  dto.ErrorResponse         "Bad Request"
// @Router       /api/v1/convert/solar [get]
func (h *Handler) ConvertSolar(c *gin.Context) {
	day, ok := intQuery(c, "day")
	if !ok {
		return
	}
	month, ok := intQuery(c, "month")
	if !ok {
		return
	}
	year, ok := intQuery(c, "year")
	if !ok {
		return
	}

	lunar, err := h.svc.ConvertSolar(c.Request.Context(), day, month, year)
	if err != nil {
		writeEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ConvertSolarResponse{
		Solar: dto.SolarDateDTO{Day: day, Month: month, Year: year},
		Lunar: lunarDTO(lunar),
	})
}

// ConvertLunar handles GET /api/v1/convert/lunar requests.
//
// Query Parameters:
//   - day, month, year (int, required): Lunar date to convert.
//   - leap (bool, optional): Whether the month is the leap month. Default false.
//
// Responses:
//   - 200 OK: Returns ConvertLunarResponse with the solar equivalent.
//   - 400 Bad Request: Missing parameters or nonexistent lunar date.
//
// ConvertLunar godoc
// @Summary      Convert a lunar date to the solar calendar
// @Description  Returns the Gregorian date for a Vietnamese lunar date
// @Tags         convert
// @Produce      json
// @Param        day    query     int   true   "Lunar day"    example(1)
// @Param        month  query     int   true   "Lunar month"  example(4)
// @Param        year   query     int   true   "Lunar year"   example(2020)
// @Param        leap   query     bool  false  "Leap month"   example(true)
// @Success      200    {object}  dto.ConvertLunarResponse  "Success"
// @Failure      400    {object}  dto.ErrorResponse         "Bad Request"
// @Router       /api/v1/convert/lunar [get]
func (h *Handler) ConvertLunar(c *gin.Context) {
	day, ok := intQuery(c, "day")
	if !ok {
		return
	}
	month, ok := intQuery(c, "month")
	if !ok {
		return
	}
	year, ok := intQuery(c, "year")
	if !ok {
		return
	}

	leap := false
	if raw := c.Query("leap"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid leap", err))
			return
		}
		leap = parsed
	}

	solar, err := h.svc.ConvertLunar(c.Request.Context(), day, month, year, leap)
	if err != nil {
		writeEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ConvertLunarResponse{
		Lunar: dto.LunarDateDTO{Day: day, Month: month, Year: year, Leap: leap},
		Solar: solarDTO(solar),
	})
}

// DayInfo handles GET /api/v1/almanac/day requests.
//
// Query Parameters:
//   - day, month, year (int, required): Gregorian date to look up.
//
// Responses:
//   - 200 OK: Returns DayInfoResponse with the full almanac entry.
//   - 400 Bad Request: Missing parameters or nonexistent date.
//
// DayInfo godoc
// @Summary      Full almanac entry for a solar date
// @Description  Lunar date, Can Chi names, solar term and lucky hours for a day
// @Tags         almanac
// @Produce      json
// @Param        day    query     int  true  "Day of month"  example(10)
// @Param        month  query     int  true  "Month"         example(2)
// @Param        year   query     int  true  "Year"          example(2024)
// @Success      200    {object}  dto.DayInfoResponse  "Success"
// @Failure      400    {object}  dto.ErrorResponse    "Bad Request"
// @Router       /api/v1/almanac/day [get]
func (h *Handler) DayInfo(c *gin.Context) {
	day, ok := intQuery(c, "day")
	if !ok {
		return
	}
	month, ok := intQuery(c, "month")
	if !ok {
		return
	}
	year, ok := intQuery(c, "year")
	if !ok {
		return
	}

	info, err := h.svc.DayInfo(c.Request.Context(), day, month, year)
	if err != nil {
		writeEngineError(c, err)
		return
	}

	hours := make([]dto.HourDTO, 0, 6)
	for _, hr := range info.Hours {
		if !hr.Lucky {
			continue
		}
		hours = append(hours, dto.HourDTO{
			Name:  hr.Name,
			Chi:   hr.Chi,
			Start: hr.Start,
			End:   hr.End,
			Lucky: hr.Lucky,
		})
	}

	c.JSON(http.StatusOK, dto.DayInfoResponse{
		Solar:       dto.SolarDateDTO{Day: info.SolarDay, Month: info.SolarMonth, Year: info.SolarYear},
		Lunar:       dto.LunarDateDTO{Day: info.LunarDay, Month: info.LunarMonth, Year: info.LunarYear, Leap: info.LunarLeap},
		JulianDay:   info.JulianDay,
		Weekday:     info.Weekday,
		YearName:    info.YearName,
		MonthName:   info.MonthName,
		DayName:     info.DayName,
		TyHourName:  info.TyHourName,
		SolarTerm:   info.SolarTerm,
		SolarTermEn: info.SolarTermEn,
		LuckyHours:  hours,
	})
}

// SolarTerms handles GET /api/v1/almanac/solar-terms requests.
//
// Query Parameters:
//   - year (int, required): Gregorian year to scan.
//
// Responses:
//   - 200 OK: Returns SolarTermsResponse with the year's term boundaries.
//   - 400 Bad Request: Missing or invalid year.
//
// SolarTerms godoc
// @Summary      Solar term boundaries of a year
// @Description  Returns the days on which a new solar term (Tiết Khí) begins
// @Tags         almanac
// @Produce      json
// @Param        year  query     int  true  "Year"  example(2024)
// @Success      200   {object}  dto.SolarTermsResponse  "Success"
// @Failure      400   {object}  dto.ErrorResponse       "Bad Request"
// @Router       /api/v1/almanac/solar-terms [get]
func (h *Handler) SolarTerms(c *gin.Context) {
	year, ok := intQuery(c, "year")
	if !ok {
		return
	}

	occs := h.svc.SolarTerms(c.Request.Context(), year)
	terms := make([]dto.SolarTermDTO, 0, len(occs))
	for _, o := range occs {
		terms = append(terms, dto.SolarTermDTO{
			Index:  o.Index,
			Name:   o.Name,
			NameEn: solarterm.EnglishNames[o.Index],
			Date:   solarDTO(o.Date),
		})
	}

	c.JSON(http.StatusOK, dto.SolarTermsResponse{Year: year, Terms: terms})
}
