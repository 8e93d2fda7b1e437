package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "grana/internal/errors"
	"grana/internal/services"
)

// IncomeHandler handles income ledger requests.
type IncomeHandler struct {
	incomeService services.IncomeServicer
}

// NewIncomeHandler creates a new IncomeHandler.
func NewIncomeHandler(incomeService services.IncomeServicer) *IncomeHandler {
	return &IncomeHandler{incomeService: incomeService}
}

// CreateIncomeRequest represents the request payload for recording an income.
// A recurring income is materialized as twelve monthly rows starting at the
// given month.
type CreateIncomeRequest struct {
	SourceName  string  `json:"source_name" binding:"required,min=1,max=100"`
	Value       float64 `json:"value" binding:"min=0"`
	Category    string  `json:"category" binding:"omitempty,max=50"`
	Month       int     `json:"month" binding:"required,ledger_month"`
	Year        int     `json:"year" binding:"required,min=1"`
	IsRecurring bool    `json:"is_recurring"`
}

// CreateIncome handles recording a new income.
// @Summary     Record an income
// @Description Record an income for a month; recurring incomes expand to twelve monthly rows
// @Tags        incomes
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateIncomeRequest true "Income details"
// @Success     201 {array} models.Income "Created income rows"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /incomes [post]
func (h *IncomeHandler) CreateIncome(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	incomes, err := h.incomeService.AddIncome(
		userID, req.SourceName, req.Value, req.Category, req.Month, req.Year, req.IsRecurring,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"incomes": incomes})
}

// GetIncomes handles listing incomes for a month.
// @Summary     Get incomes
// @Description Get all incomes for the authenticated user in a given month
// @Tags        incomes
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       month query int true "Month (1-12)"
// @Param       year  query int true "Year"
// @Success     200 {array} models.Income "Incomes for the month"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /incomes [get]
func (h *IncomeHandler) GetIncomes(c *gin.Context) {
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

	incomes, err := h.incomeService.GetIncomes(userID, month, year)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"incomes": incomes})
}

// DeleteIncome handles deleting an income, or an entire recurring series.
// @Summary     Delete income
// @Description Delete an income by ID, or with all_recurring=true delete every recurring row sharing the source name
// @Tags        incomes
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id            path  int    true  "Income ID"
// @Param       all_recurring query bool   false "Delete the whole recurring series"
// @Param       source_name   query string false "Series source name (required with all_recurring)"
// @Success     200 {object} MessageResponse "Income deleted"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /incomes/{id} [delete]
func (h *IncomeHandler) DeleteIncome(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if c.Query("all_recurring") == "true" {
		sourceName := c.Query("source_name")
		if sourceName == "" {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "source_name is required with all_recurring"))
			return
		}
		if err := h.incomeService.DeleteIncomeSeries(userID, sourceName); err != nil {
			respondWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Income series deleted"})
		return
	}

	incomeID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.incomeService.DeleteIncome(userID, incomeID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Income deleted"})
}
