package models

// Income represents a single income entry for one (month, year) period.
// A recurring income is materialized as 12 independent rows at creation time,
// one per consecutive period; the series is identified by (user, source_name,
// is_recurring) for bulk deletion.
type Income struct {
	Base
	UserID      uint    `gorm:"not null;index" json:"user_id"`
	SourceName  string  `gorm:"not null" json:"source_name"`
	Value       float64 `gorm:"not null" json:"value"`
	Category    string  `gorm:"not null;default:'Geral'" json:"category"`
	IsRecurring bool    `gorm:"not null;default:false" json:"is_recurring"`
	Month       int     `gorm:"not null" json:"month"`
	Year        int     `gorm:"not null" json:"year"`
}
