package models

// ExpenseCategory classifies an expense as fixed or occasional.
type ExpenseCategory string

const (
	ExpenseCategoryFixed      ExpenseCategory = "Fixa"
	ExpenseCategoryOccasional ExpenseCategory = "Ocasional"
)

// Expense represents a single expense entry for one (month, year) period.
// Recurring expenses are materialized as 12 rows; the series key is the
// description.
type Expense struct {
	Base
	UserID      uint            `gorm:"not null;index" json:"user_id"`
	Description string          `gorm:"not null" json:"description"`
	Value       float64         `gorm:"not null" json:"value"`
	Category    ExpenseCategory `gorm:"not null" json:"category"`
	IsRecurring bool            `gorm:"not null;default:false" json:"is_recurring"`
	Month       int             `gorm:"not null" json:"month"`
	Year        int             `gorm:"not null" json:"year"`
}
