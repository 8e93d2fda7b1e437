package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "grana/internal/errors"
	"grana/internal/services"
)

// InvestmentHandler handles investment ledger requests.
type InvestmentHandler struct {
	investmentService services.InvestmentServicer
}

// NewInvestmentHandler creates a new InvestmentHandler.
func NewInvestmentHandler(investmentService services.InvestmentServicer) *InvestmentHandler {
	return &InvestmentHandler{investmentService: investmentService}
}

// CreateInvestmentRequest represents the request payload for recording an
// investment. An optional goal ID credits the amount to that goal once, at
// creation time.
type CreateInvestmentRequest struct {
	Amount      float64 `json:"amount" binding:"min=0"`
	Category    string  `json:"category" binding:"omitempty,max=50"`
	Month       int     `json:"month" binding:"required,ledger_month"`
	Year        int     `json:"year" binding:"required,min=1"`
	IsRecurring bool    `json:"is_recurring"`
	GoalID      *uint   `json:"goal_id"`
}

// CreateInvestment handles recording a new investment.
// @Summary     Record an investment
// @Description Record an investment for a month; recurring investments expand to twelve monthly rows, and an optional goal_id credits the amount to a goal
// @Tags        investments
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateInvestmentRequest true "Investment details"
// @Success     201 {array} models.Investment "Created investment rows"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investments [post]
func (h *InvestmentHandler) CreateInvestment(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	investments, err := h.investmentService.AddInvestment(
		userID, req.Amount, req.Category, req.Month, req.Year, req.IsRecurring, req.GoalID,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"investments": investments})
}

// GetInvestments handles listing investments for a month.
// @Summary     Get investments
// @Description Get all investments for the authenticated user in a given month
// @Tags        investments
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       month query int true "Month (1-12)"
// @Param       year  query int true "Year"
// @Success     200 {array} models.Investment "Investments for the month"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investments [get]
func (h *InvestmentHandler) GetInvestments(c *gin.Context) {
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

	investments, err := h.investmentService.GetInvestments(userID, month, year)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"investments": investments})
}

// DeleteInvestment handles deleting an investment, or an entire recurring series.
// @Summary     Delete investment
// @Description Delete an investment by ID, or with all_recurring=true delete every recurring row sharing the category
// @Tags        investments
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id            path  int    true  "Investment ID"
// @Param       all_recurring query bool   false "Delete the whole recurring series"
// @Param       category      query string false "Series category (required with all_recurring)"
// @Success     200 {object} MessageResponse "Investment deleted"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investments/{id} [delete]
func (h *InvestmentHandler) DeleteInvestment(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if c.Query("all_recurring") == "true" {
		category := c.Query("category")
		if category == "" {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required with all_recurring"))
			return
		}
		if err := h.investmentService.DeleteInvestmentSeries(userID, category); err != nil {
			respondWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Investment series deleted"})
		return
	}

	investmentID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.investmentService.DeleteInvestment(userID, investmentID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Investment deleted"})
}
