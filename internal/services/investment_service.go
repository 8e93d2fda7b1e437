package services

import (
	"gorm.io/gorm"

	apperrors "grana/internal/errors"
	"grana/internal/logger"
	"grana/internal/models"
)

// investmentService handles investment ledger records and their optional
// one-way link to goals.
type investmentService struct {
	db          *gorm.DB
	goalService GoalServicer
}

// NewInvestmentService creates a new InvestmentServicer.
func NewInvestmentService(db *gorm.DB, goalService GoalServicer) InvestmentServicer {
	return &investmentService{db: db, goalService: goalService}
}

// AddInvestment persists an investment entry, fanning out across twelve
// periods when recurring. When goalID is set, the single entry amount is added
// to that goal's progress after the insert. The two writes are separate and
// non-atomic: a crash in between leaves the investment recorded with the goal
// not updated, and deleting the investment later never decrements the goal.
func (s *investmentService) AddInvestment(userID uint, amount float64, category string, month, year int, recurring bool, goalID *uint) ([]models.Investment, error) {
	if amount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must not be negative")
	}
	if category == "" {
		category = "Geral"
	}

	span := 1
	if recurring {
		span = recurrenceSpan
	}

	investments := make([]models.Investment, 0, span)
	for _, p := range expandPeriods(month, year, span) {
		investments = append(investments, models.Investment{
			UserID:      userID,
			Amount:      amount,
			Category:    category,
			IsRecurring: recurring,
			Month:       p.Month,
			Year:        p.Year,
		})
	}

	if err := s.db.Create(&investments).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if goalID != nil {
		if err := s.goalService.AddProgress(userID, *goalID, amount); err != nil {
			// The investment itself is already recorded; surface the linkage
			// failure in the logs rather than failing the operation.
			logger.Get().Errorw("goal progress update failed after investment",
				"user_id", userID,
				"goal_id", *goalID,
				"error", err.Error(),
			)
		}
	}

	return investments, nil
}

// GetInvestments returns all investment rows for the user in the exact
// (month, year).
func (s *investmentService) GetInvestments(userID uint, month, year int) ([]models.Investment, error) {
	investments := []models.Investment{}
	if err := s.db.Where("user_id = ? AND month = ? AND year = ?", userID, month, year).
		Find(&investments).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return investments, nil
}

// DeleteInvestment removes the single row matching both id and owner; zero
// rows affected is not an error. Any goal progress the investment contributed
// is intentionally left in place.
func (s *investmentService) DeleteInvestment(userID, investmentID uint) error {
	result := s.db.Where("id = ? AND user_id = ?", investmentID, userID).Delete(&models.Investment{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	return nil
}

// DeleteInvestmentSeries removes every recurring investment for the user with
// the given category, across all periods.
func (s *investmentService) DeleteInvestmentSeries(userID uint, category string) error {
	result := s.db.Where("user_id = ? AND category = ? AND is_recurring = ?", userID, category, true).
		Delete(&models.Investment{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	return nil
}
