package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "grana/internal/errors"
	"grana/internal/models"
	"grana/internal/pagination"
)

// goalService handles savings-goal business logic.
type goalService struct {
	db *gorm.DB
}

// NewGoalService creates a new GoalServicer.
func NewGoalService(db *gorm.DB) GoalServicer {
	return &goalService{db: db}
}

// CreateGoal creates a goal with zero accumulated progress.
func (s *goalService) CreateGoal(userID uint, name string, targetValue float64, deadline *time.Time) (*models.Goal, error) {
	if targetValue <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "target value must be positive")
	}

	goal := &models.Goal{
		UserID:       userID,
		Name:         name,
		TargetValue:  targetValue,
		CurrentValue: 0,
		Deadline:     deadline,
	}

	if err := s.db.Create(goal).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return goal, nil
}

// GetUserGoals returns a paginated list of the user's goals.
func (s *goalService) GetUserGoals(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Goal], error) {
	page.Defaults()

	base := s.db.Model(&models.Goal{}).Where("user_id = ?", userID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var goals []models.Goal
	if err := base.Scopes(pagination.Paginate(page)).Find(&goals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(goals, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetGoalByID returns a goal by ID if it belongs to the user.
func (s *goalService) GetGoalByID(userID, goalID uint) (*models.Goal, error) {
	var goal models.Goal
	if err := s.db.Where("id = ? AND user_id = ?", goalID, userID).First(&goal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGoalNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &goal, nil
}

// AddProgress adds amount to the goal's current value. The update is
// ownership-checked; a missing or foreign goal affects zero rows and is
// not an error. Progress only ever grows; there is no compensating
// decrement anywhere.
func (s *goalService) AddProgress(userID, goalID uint, amount float64) error {
	result := s.db.Model(&models.Goal{}).
		Where("id = ? AND user_id = ?", goalID, userID).
		Update("current_value", gorm.Expr("current_value + ?", amount))
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	return nil
}

// DeleteGoal removes the goal matching both id and owner; zero rows affected
// is not an error.
func (s *goalService) DeleteGoal(userID, goalID uint) error {
	result := s.db.Where("id = ? AND user_id = ?", goalID, userID).Delete(&models.Goal{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	return nil
}
