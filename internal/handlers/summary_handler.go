package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "grana/internal/errors"
	"grana/internal/services"
)

// defaultProjectionPeriods matches the planning horizon shown by the
// dashboard.
const defaultProjectionPeriods = 12

// SummaryHandler handles read-only ledger aggregates.
type SummaryHandler struct {
	summaryService services.SummaryServicer
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(summaryService services.SummaryServicer) *SummaryHandler {
	return &SummaryHandler{summaryService: summaryService}
}

// GetMonthlySummary handles the monthly totals view.
// @Summary     Get monthly totals
// @Description Get total income, expense, investment, and balance for a month
// @Tags        summary
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       month query int true "Month (1-12)"
// @Param       year  query int true "Year"
// @Success     200 {object} services.MonthlyTotals "Monthly totals"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /summary/monthly [get]
func (h *SummaryHandler) GetMonthlySummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	month, year, err := parsePeriodQuery(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	totals, err := h.summaryService.GetMonthlyTotals(userID, month, year)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, totals)
}

// GetAnnualSummary handles the annual breakdown view.
// @Summary     Get annual summary
// @Description Get year totals plus the twelve-month breakdown
// @Tags        summary
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       year query int true "Year"
// @Success     200 {object} services.AnnualSummary "Annual summary"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /summary/annual [get]
func (h *SummaryHandler) GetAnnualSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 1 {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "year must be a positive integer"))
		return
	}

	summary, err := h.summaryService.GetAnnualSummary(userID, year)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetProjection handles the forward projection view.
// @Summary     Get projection
// @Description Replay recurring history forward from a starting month, one summary per period
// @Tags        summary
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       month   query int true  "Start month (1-12)"
// @Param       year    query int true  "Start year"
// @Param       periods query int false "Number of periods (default 12, max 60)"
// @Success     200 {array} services.PeriodSummary "Projected periods"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /summary/projection [get]
func (h *SummaryHandler) GetProjection(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	month, year, err := parsePeriodQuery(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	periods := defaultProjectionPeriods
	if v := c.Query("periods"); v != "" {
		periods, err = strconv.Atoi(v)
		if err != nil || periods < 1 || periods > 60 {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "periods must be an integer between 1 and 60"))
			return
		}
	}

	projection := h.summaryService.Project(userID, month, year, periods)
	result, err := projection.Collect()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"periods": result})
}
