package services

import (
	"gorm.io/gorm"

	apperrors "grana/internal/errors"
	"grana/internal/models"
)

// expenseService handles expense ledger records.
type expenseService struct {
	db *gorm.DB
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(db *gorm.DB) ExpenseServicer {
	return &expenseService{db: db}
}

// AddExpense persists an expense entry, fanning out across twelve periods when
// recurring. The series key for later bulk deletion is the description.
func (s *expenseService) AddExpense(userID uint, description string, value float64, category models.ExpenseCategory, month, year int, recurring bool) ([]models.Expense, error) {
	if value < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "value must not be negative")
	}

	span := 1
	if recurring {
		span = recurrenceSpan
	}

	expenses := make([]models.Expense, 0, span)
	for _, p := range expandPeriods(month, year, span) {
		expenses = append(expenses, models.Expense{
			UserID:      userID,
			Description: description,
			Value:       value,
			Category:    category,
			IsRecurring: recurring,
			Month:       p.Month,
			Year:        p.Year,
		})
	}

	if err := s.db.Create(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return expenses, nil
}

// GetExpenses returns all expense rows for the user in the exact (month, year).
func (s *expenseService) GetExpenses(userID uint, month, year int) ([]models.Expense, error) {
	expenses := []models.Expense{}
	if err := s.db.Where("user_id = ? AND month = ? AND year = ?", userID, month, year).
		Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expenses, nil
}

// DeleteExpense removes the single row matching both id and owner; zero rows
// affected is not an error.
func (s *expenseService) DeleteExpense(userID, expenseID uint) error {
	result := s.db.Where("id = ? AND user_id = ?", expenseID, userID).Delete(&models.Expense{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	return nil
}

// DeleteExpenseSeries removes every recurring expense for the user with the
// given description, across all periods.
func (s *expenseService) DeleteExpenseSeries(userID uint, description string) error {
	result := s.db.Where("user_id = ? AND description = ? AND is_recurring = ?", userID, description, true).
		Delete(&models.Expense{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	return nil
}
