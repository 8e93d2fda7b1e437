package services

import (
	"gorm.io/gorm"

	apperrors "grana/internal/errors"
	"grana/internal/models"
)

// incomeService handles income ledger records.
type incomeService struct {
	db *gorm.DB
}

// NewIncomeService creates a new IncomeServicer.
func NewIncomeService(db *gorm.DB) IncomeServicer {
	return &incomeService{db: db}
}

// AddIncome persists an income entry. When recurring is true it materializes
// twelve rows, one per consecutive period starting at (month, year); otherwise
// a single row. All rows are inserted in one transaction. Callers are trusted
// to have validated a positive value; the store only rejects negatives.
func (s *incomeService) AddIncome(userID uint, source string, value float64, category string, month, year int, recurring bool) ([]models.Income, error) {
	if value < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "value must not be negative")
	}
	if category == "" {
		category = "Geral"
	}

	span := 1
	if recurring {
		span = recurrenceSpan
	}

	incomes := make([]models.Income, 0, span)
	for _, p := range expandPeriods(month, year, span) {
		incomes = append(incomes, models.Income{
			UserID:      userID,
			SourceName:  source,
			Value:       value,
			Category:    category,
			IsRecurring: recurring,
			Month:       p.Month,
			Year:        p.Year,
		})
	}

	if err := s.db.Create(&incomes).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return incomes, nil
}

// GetIncomes returns all income rows for the user in the exact (month, year),
// in insertion order. An empty month yields an empty slice, never nil.
func (s *incomeService) GetIncomes(userID uint, month, year int) ([]models.Income, error) {
	incomes := []models.Income{}
	if err := s.db.Where("user_id = ? AND month = ? AND year = ?", userID, month, year).
		Find(&incomes).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return incomes, nil
}

// DeleteIncome removes the single row matching both id and owner. Targeting a
// missing or foreign row affects zero rows and is not an error.
func (s *incomeService) DeleteIncome(userID, incomeID uint) error {
	result := s.db.Where("id = ? AND user_id = ?", incomeID, userID).Delete(&models.Income{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	return nil
}

// DeleteIncomeSeries removes every recurring income for the user with the
// given source name, across all periods. Non-recurring rows with the same
// source are left untouched.
func (s *incomeService) DeleteIncomeSeries(userID uint, sourceName string) error {
	result := s.db.Where("user_id = ? AND source_name = ? AND is_recurring = ?", userID, sourceName, true).
		Delete(&models.Income{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	return nil
}
