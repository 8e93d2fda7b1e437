package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"grana/internal/services"
)

// --- mock summary service ---

type mockSummaryService struct {
	getMonthlyTotalsFn func(userID uint, month, year int) (*services.MonthlyTotals, error)
	getAnnualSummaryFn func(userID uint, year int) (*services.AnnualSummary, error)
	projectFn          func(userID uint, startMonth, startYear, periods int) *services.Projection
}

func (m *mockSummaryService) GetMonthlyTotals(userID uint, month, year int) (*services.MonthlyTotals, error) {
	if m.getMonthlyTotalsFn != nil {
		return m.getMonthlyTotalsFn(userID, month, year)
	}
	return &services.MonthlyTotals{Month: month, Year: year}, nil
}

func (m *mockSummaryService) GetAnnualSummary(userID uint, year int) (*services.AnnualSummary, error) {
	if m.getAnnualSummaryFn != nil {
		return m.getAnnualSummaryFn(userID, year)
	}
	return &services.AnnualSummary{Year: year}, nil
}

func (m *mockSummaryService) Project(userID uint, startMonth, startYear, periods int) *services.Projection {
	if m.projectFn != nil {
		return m.projectFn(userID, startMonth, startYear, periods)
	}
	return &services.Projection{}
}

var _ services.SummaryServicer = (*mockSummaryService)(nil)

func setupSummaryRouter(handler *SummaryHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(1))
	auth.GET("/summary/monthly", handler.GetMonthlySummary)
	auth.GET("/summary/annual", handler.GetAnnualSummary)
	auth.GET("/summary/projection", handler.GetProjection)
	return r
}

func TestSummaryHandler_GetMonthlySummary(t *testing.T) {
	t.Run("returns the monthly totals", func(t *testing.T) {
		svc := &mockSummaryService{
			getMonthlyTotalsFn: func(_ uint, month, year int) (*services.MonthlyTotals, error) {
				return &services.MonthlyTotals{
					Month:           month,
					Year:            year,
					TotalIncome:     5000,
					TotalExpense:    1500,
					TotalInvestment: 500,
					Balance:         3500,
				}, nil
			},
		}
		handler := NewSummaryHandler(svc)
		r := setupSummaryRouter(handler)

		rec := doRequest(r, "GET", "/summary/monthly?month=3&year=2025", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["balance"].(float64) != 3500 {
			t.Errorf("expected balance 3500, got %v", result["balance"])
		}
	})

	t.Run("returns 400 on missing period", func(t *testing.T) {
		handler := NewSummaryHandler(&mockSummaryService{})
		r := setupSummaryRouter(handler)

		rec := doRequest(r, "GET", "/summary/monthly?month=3", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})
}

func TestSummaryHandler_GetAnnualSummary(t *testing.T) {
	t.Run("returns the annual summary", func(t *testing.T) {
		svc := &mockSummaryService{
			getAnnualSummaryFn: func(_ uint, year int) (*services.AnnualSummary, error) {
				s := &services.AnnualSummary{Year: year, TotalIncome: 60000}
				s.Months = make([]services.MonthBreakdown, 12)
				return s, nil
			},
		}
		handler := NewSummaryHandler(svc)
		r := setupSummaryRouter(handler)

		rec := doRequest(r, "GET", "/summary/annual?year=2025", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		months := result["months"].([]interface{})
		if len(months) != 12 {
			t.Errorf("expected 12 month buckets, got %d", len(months))
		}
	})

	t.Run("returns 400 on missing year", func(t *testing.T) {
		handler := NewSummaryHandler(&mockSummaryService{})
		r := setupSummaryRouter(handler)

		rec := doRequest(r, "GET", "/summary/annual", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestSummaryHandler_GetProjection(t *testing.T) {
	t.Run("returns 400 on periods out of range", func(t *testing.T) {
		handler := NewSummaryHandler(&mockSummaryService{})
		r := setupSummaryRouter(handler)

		rec := doRequest(r, "GET", "/summary/projection?month=1&year=2025&periods=0", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("drains the projection into the response", func(t *testing.T) {
		var gotPeriods int
		svc := &mockSummaryService{
			projectFn: func(_ uint, _, _, periods int) *services.Projection {
				gotPeriods = periods
				return &services.Projection{}
			},
		}
		handler := NewSummaryHandler(svc)
		r := setupSummaryRouter(handler)

		rec := doRequest(r, "GET", "/summary/projection?month=1&year=2025", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotPeriods != 12 {
			t.Errorf("expected default of 12 periods, got %d", gotPeriods)
		}
		result := parseJSON(t, rec)
		if _, ok := result["periods"].([]interface{}); !ok {
			t.Errorf("expected periods array, got %v", result["periods"])
		}
	})
}
