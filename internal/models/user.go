package models

// User represents a registered account owner. Every ledger row is scoped to
// exactly one user; users are never deleted in-app.
type User struct {
	Base
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	IsActive bool   `gorm:"default:true" json:"is_active"`

	// Relationships
	Incomes     []Income     `gorm:"foreignKey:UserID" json:"incomes,omitempty"`
	Expenses    []Expense    `gorm:"foreignKey:UserID" json:"expenses,omitempty"`
	Investments []Investment `gorm:"foreignKey:UserID" json:"investments,omitempty"`
	Goals       []Goal       `gorm:"foreignKey:UserID" json:"goals,omitempty"`
}
