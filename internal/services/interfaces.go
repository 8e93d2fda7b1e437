package services

import (
	"time"

	"grana/internal/models"
	"grana/internal/pagination"
)

// UserServicer defines the contract for the credential store.
type UserServicer interface {
	CreateUser(username, email, password string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	AttemptLogin(identifier, password string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
}

// ResetServicer defines the contract for the password-recovery flow.
// Codes are 6 digits, expire after 15 minutes, and are purged on use.
type ResetServicer interface {
	RequestReset(email string) error
	ConfirmReset(email, code, newPassword string) error
}

// IncomeServicer defines the contract for income ledger records.
type IncomeServicer interface {
	AddIncome(userID uint, source string, value float64, category string, month, year int, recurring bool) ([]models.Income, error)
	GetIncomes(userID uint, month, year int) ([]models.Income, error)
	DeleteIncome(userID, incomeID uint) error
	DeleteIncomeSeries(userID uint, sourceName string) error
}

// ExpenseServicer defines the contract for expense ledger records.
type ExpenseServicer interface {
	AddExpense(userID uint, description string, value float64, category models.ExpenseCategory, month, year int, recurring bool) ([]models.Expense, error)
	GetExpenses(userID uint, month, year int) ([]models.Expense, error)
	DeleteExpense(userID, expenseID uint) error
	DeleteExpenseSeries(userID uint, description string) error
}

// InvestmentServicer defines the contract for investment ledger records.
// An optional goal ID links the created investment's amount to a goal once,
// at creation time; the investment stores no back-reference.
type InvestmentServicer interface {
	AddInvestment(userID uint, amount float64, category string, month, year int, recurring bool, goalID *uint) ([]models.Investment, error)
	GetInvestments(userID uint, month, year int) ([]models.Investment, error)
	DeleteInvestment(userID, investmentID uint) error
	DeleteInvestmentSeries(userID uint, category string) error
}

// GoalServicer defines the contract for savings goals.
type GoalServicer interface {
	CreateGoal(userID uint, name string, targetValue float64, deadline *time.Time) (*models.Goal, error)
	GetUserGoals(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Goal], error)
	GetGoalByID(userID, goalID uint) (*models.Goal, error)
	AddProgress(userID, goalID uint, amount float64) error
	DeleteGoal(userID, goalID uint) error
}

// MonthlyTotals aggregates one (month, year) period for a user.
type MonthlyTotals struct {
	Month           int     `json:"month"`
	Year            int     `json:"year"`
	TotalIncome     float64 `json:"total_income"`
	TotalExpense    float64 `json:"total_expense"`
	TotalInvestment float64 `json:"total_investment"`
	Balance         float64 `json:"balance"`
}

// MonthBreakdown holds the per-month sums within an annual summary.
type MonthBreakdown struct {
	Month      int     `json:"month"`
	Income     float64 `json:"income"`
	Expense    float64 `json:"expense"`
	Investment float64 `json:"investment"`
}

// AnnualSummary holds the year totals plus the twelve-month breakdown.
type AnnualSummary struct {
	Year            int                 `json:"year"`
	TotalIncome     float64             `json:"total_income"`
	TotalExpense    float64             `json:"total_expense"`
	TotalInvestment float64             `json:"total_investment"`
	Balance         float64             `json:"balance"`
	Months          []MonthBreakdown    `json:"months"`
	Incomes         []models.Income     `json:"incomes"`
	Expenses        []models.Expense    `json:"expenses"`
	Investments     []models.Investment `json:"investments"`
}

// PeriodSummary is one period of a forward projection.
type PeriodSummary struct {
	Month      int     `json:"month"`
	Year       int     `json:"year"`
	Income     float64 `json:"income"`
	Expense    float64 `json:"expense"`
	Investment float64 `json:"investment"`
	Balance    float64 `json:"balance"`
}

// SummaryServicer derives read-only aggregates from the ledger.
type SummaryServicer interface {
	GetMonthlyTotals(userID uint, month, year int) (*MonthlyTotals, error)
	GetAnnualSummary(userID uint, year int) (*AnnualSummary, error)
	Project(userID uint, startMonth, startYear, periods int) *Projection
}
