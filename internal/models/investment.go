package models

// Investment represents an amount invested in one (month, year) period.
// There is no description field; the series key for recurring bulk deletion
// is the category. An investment may contribute to a goal at creation time,
// but stores no back-reference to it.
type Investment struct {
	Base
	UserID      uint    `gorm:"not null;index" json:"user_id"`
	Amount      float64 `gorm:"not null" json:"amount"`
	Category    string  `gorm:"not null;default:'Geral'" json:"category"`
	IsRecurring bool    `gorm:"not null;default:false" json:"is_recurring"`
	Month       int     `gorm:"not null" json:"month"`
	Year        int     `gorm:"not null" json:"year"`
}
