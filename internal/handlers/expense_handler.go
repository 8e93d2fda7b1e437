package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "grana/internal/errors"
	"grana/internal/models"
	"grana/internal/services"
)

// ExpenseHandler handles expense ledger requests.
type ExpenseHandler struct {
	expenseService services.ExpenseServicer
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(expenseService services.ExpenseServicer) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// CreateExpenseRequest represents the request payload for recording an expense.
type CreateExpenseRequest struct {
	Description string                 `json:"description" binding:"required,min=1,max=100"`
	Value       float64                `json:"value" binding:"min=0"`
	Category    models.ExpenseCategory `json:"category" binding:"required,expense_category"`
	Month       int                    `json:"month" binding:"required,ledger_month"`
	Year        int                    `json:"year" binding:"required,min=1"`
	IsRecurring bool                   `json:"is_recurring"`
}

// CreateExpense handles recording a new expense.
// @Summary     Record an expense
// @Description Record an expense for a month; recurring expenses expand to twelve monthly rows
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateExpenseRequest true "Expense details"
// @Success     201 {array} models.Expense "Created expense rows"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	expenses, err := h.expenseService.AddExpense(
		userID, req.Description, req.Value, req.Category, req.Month, req.Year, req.IsRecurring,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"expenses": expenses})
}

// GetExpenses handles listing expenses for a month.
// @Summary     Get expenses
// @Description Get all expenses for the authenticated user in a given month
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       month query int true "Month (1-12)"
// @Param       year  query int true "Year"
// @Success     200 {array} models.Expense "Expenses for the month"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses [get]
func (h *ExpenseHandler) GetExpenses(c *gin.Context) {
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

	expenses, err := h.expenseService.GetExpenses(userID, month, year)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expenses": expenses})
}

// DeleteExpense handles deleting an expense, or an entire recurring series.
// @Summary     Delete expense
// @Description Delete an expense by ID, or with all_recurring=true delete every recurring row sharing the description
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id            path  int    true  "Expense ID"
// @Param       all_recurring query bool   false "Delete the whole recurring series"
// @Param       description   query string false "Series description (required with all_recurring)"
// @Success     200 {object} MessageResponse "Expense deleted"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if c.Query("all_recurring") == "true" {
		description := c.Query("description")
		if description == "" {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "description is required with all_recurring"))
			return
		}
		if err := h.expenseService.DeleteExpenseSeries(userID, description); err != nil {
			respondWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Expense series deleted"})
		return
	}

	expenseID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.expenseService.DeleteExpense(userID, expenseID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted"})
}
