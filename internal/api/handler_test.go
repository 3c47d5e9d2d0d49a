package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/vnlunar/amlich/internal/calendar"
	"github.com/vnlunar/amlich/internal/domain/dto"
	"github.com/vnlunar/amlich/internal/domain/models"
	"github.com/vnlunar/amlich/internal/service"
	"github.com/vnlunar/amlich/internal/solarterm"
)

// mockAlmanacService lets tests force engine failures without a broken
// date.
type mockAlmanacService struct {
	err error
}

func (m *mockAlmanacService) ConvertSolar(_ context.Context, _, _, _ int) (calendar.LunarDate, error) {
	return calendar.LunarDate{}, m.err
}
func (m *mockAlmanacService) ConvertLunar(_ context.Context, _, _, _ int, _ bool) (calendar.SolarDate, error) {
	return calendar.SolarDate{}, m.err
}
func (m *mockAlmanacService) DayInfo(_ context.Context, _, _, _ int) (*models.DayInfo, error) {
	return nil, m.err
}
func (m *mockAlmanacService) SolarTerms(_ context.Context, _ int) []solarterm.Occurrence {
	return nil
}

var _ service.AlmanacService = (*mockAlmanacService)(nil)

func setupRouter(s service.AlmanacService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s)
	r := gin.New()
	v1 := r.Group("/api/v1")
	v1.GET("/convert/solar", h.ConvertSolar)
	v1.GET("/convert/lunar", h.ConvertLunar)
	v1.GET("/almanac/day", h.DayInfo)
	v1.GET("/almanac/solar-terms", h.SolarTerms)
	return r
}

func realService() service.AlmanacService {
	return service.NewAlmanacService(calendar.DefaultTimezone)
}

func TestConvertSolar_TableDriven(t *testing.T) {
	cases := []struct {
		name   string
		svc    service.AlmanacService
		query  string
		status int
		assert func(t *testing.T, body []byte)
	}{
		{
			name:   "missing day",
			svc:    realService(),
			query:  "/api/v1/convert/solar?month=2&year=2024",
			status: http.StatusBadRequest,
		},
		{
			name:   "non-numeric month",
			svc:    realService(),
			query:  "/api/v1/convert/solar?day=10&month=feb&year=2024",
			status: http.StatusBadRequest,
		},
		{
			name:   "nonexistent date",
			svc:    realService(),
			query:  "/api/v1/convert/solar?day=30&month=2&year=2024",
			status: http.StatusBadRequest,
		},
		{
			name:   "internal error",
			svc:    &mockAlmanacService{err: errors.New("boom")},
			query:  "/api/v1/convert/solar?day=10&month=2&year=2024",
			status: http.StatusInternalServerError,
		},
		{
			name:   "success",
			svc:    realService(),
			query:  "/api/v1/convert/solar?day=10&month=2&year=2024",
			status: http.StatusOK,
			assert: func(t *testing.T, body []byte) {
				var out dto.ConvertSolarResponse
				if err := json.Unmarshal(body, &out); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				want := dto.LunarDateDTO{Day: 1, Month: 1, Year: 2024}
				if out.Lunar != want {
					t.Fatalf("unexpected lunar: %+v", out.Lunar)
				}
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := setupRouter(tc.svc)
			req := httptest.NewRequest(http.MethodGet, tc.query, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d (%s)", tc.status, w.Code, w.Body.String())
			}
			if tc.assert != nil {
				tc.assert(t, w.Body.Bytes())
			}
		})
	}
}

func TestConvertLunar_TableDriven(t *testing.T) {
	cases := []struct {
		name   string
		query  string
		status int
		assert func(t *testing.T, body []byte)
	}{
		{
			name:   "missing year",
			query:  "/api/v1/convert/lunar?day=1&month=4",
			status: http.StatusBadRequest,
		},
		{
			name:   "invalid leap flag",
			query:  "/api/v1/convert/lunar?day=1&month=4&year=2020&leap=maybe",
			status: http.StatusBadRequest,
		},
		{
			name:   "no such leap month",
			query:  "/api/v1/convert/lunar?day=1&month=4&year=2024&leap=true",
			status: http.StatusBadRequest,
		},
		{
			name:   "success leap month",
			query:  "/api/v1/convert/lunar?day=1&month=4&year=2020&leap=true",
			status: http.StatusOK,
			assert: func(t *testing.T, body []byte) {
				var out dto.ConvertLunarResponse
				if err := json.Unmarshal(body, &out); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				want := dto.SolarDateDTO{Day: 23, Month: 5, Year: 2020}
				if out.Solar != want {
					t.Fatalf("unexpected solar: %+v", out.Solar)
				}
			},
		},
		{
			name:   "success default leap",
			query:  "/api/v1/convert/lunar?day=1&month=1&year=2024",
			status: http.StatusOK,
			assert: func(t *testing.T, body []byte) {
				var out dto.ConvertLunarResponse
				if err := json.Unmarshal(body, &out); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				want := dto.SolarDateDTO{Day: 10, Month: 2, Year: 2024}
				if out.Solar != want {
					t.Fatalf("unexpected solar: %+v", out.Solar)
				}
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := setupRouter(realService())
			req := httptest.NewRequest(http.MethodGet, tc.query, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d (%s)", tc.status, w.Code, w.Body.String())
			}
			if tc.assert != nil {
				tc.assert(t, w.Body.Bytes())
			}
		})
	}
}

func TestDayInfo(t *testing.T) {
	r := setupRouter(realService())
	req := httptest.NewRequest(http.MethodGet, "/api/v1/almanac/day?day=10&month=2&year=2024", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}

	var out dto.DayInfoResponse
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if out.Lunar != (dto.LunarDateDTO{Day: 1, Month: 1, Year: 2024}) {
		t.Fatalf("unexpected lunar: %+v", out.Lunar)
	}
	if out.YearName != "Giáp Thìn" || out.Weekday != "Thứ bảy" {
		t.Fatalf("unexpected names: %+v", out)
	}
	if len(out.LuckyHours) != 6 {
		t.Fatalf("lucky hours = %d, want 6", len(out.LuckyHours))
	}
	for _, h := range out.LuckyHours {
		if !h.Lucky {
			t.Fatalf("non-lucky hour in response: %+v", h)
		}
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/almanac/day?day=31&month=2&year=2024", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestSolarTerms(t *testing.T) {
	r := setupRouter(realService())
	req := httptest.NewRequest(http.MethodGet, "/api/v1/almanac/solar-terms?year=2024", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}

	var out dto.SolarTermsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if out.Year != 2024 || len(out.Terms) != 12 {
		t.Fatalf("unexpected body: year=%d terms=%d", out.Year, len(out.Terms))
	}
	if out.Terms[0].Name != "Đại hàn" || out.Terms[0].NameEn != "Major Cold" {
		t.Fatalf("unexpected first term: %+v", out.Terms[0])
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/almanac/solar-terms", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
