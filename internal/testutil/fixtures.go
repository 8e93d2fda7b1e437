package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"grana/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique credentials.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	n := nextID()
	return CreateTestUserWithCredentials(t, db, fmt.Sprintf("user%d", n), fmt.Sprintf("user%d@test.com", n))
}

// CreateTestUserWithCredentials creates a user with the given username and email.
func CreateTestUserWithCredentials(t *testing.T, db *gorm.DB, username, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Username: username,
		Email:    email,
		Password: string(hash),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestIncome creates a single non-recurring income row.
func CreateTestIncome(t *testing.T, db *gorm.DB, userID uint, value float64, month, year int) *models.Income {
	t.Helper()

	income := &models.Income{
		UserID:     userID,
		SourceName: fmt.Sprintf("Source %d", nextID()),
		Value:      value,
		Category:   "Geral",
		Month:      month,
		Year:       year,
	}
	if err := db.Create(income).Error; err != nil {
		t.Fatalf("failed to create test income: %v", err)
	}
	return income
}

// CreateTestExpense creates a single non-recurring occasional expense row.
func CreateTestExpense(t *testing.T, db *gorm.DB, userID uint, value float64, month, year int) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		UserID:      userID,
		Description: fmt.Sprintf("Expense %d", nextID()),
		Value:       value,
		Category:    models.ExpenseCategoryOccasional,
		Month:       month,
		Year:        year,
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

// CreateTestInvestment creates a single non-recurring investment row.
func CreateTestInvestment(t *testing.T, db *gorm.DB, userID uint, amount float64, month, year int) *models.Investment {
	t.Helper()

	investment := &models.Investment{
		UserID:   userID,
		Amount:   amount,
		Category: "Geral",
		Month:    month,
		Year:     year,
	}
	if err := db.Create(investment).Error; err != nil {
		t.Fatalf("failed to create test investment: %v", err)
	}
	return investment
}

// CreateTestGoal creates a goal with the given target and zero progress.
func CreateTestGoal(t *testing.T, db *gorm.DB, userID uint, targetValue float64) *models.Goal {
	t.Helper()

	goal := &models.Goal{
		UserID:      userID,
		Name:        fmt.Sprintf("Test Goal %d", nextID()),
		TargetValue: targetValue,
	}
	if err := db.Create(goal).Error; err != nil {
		t.Fatalf("failed to create test goal: %v", err)
	}
	return goal
}
