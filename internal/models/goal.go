package models

import "time"

// Goal represents a savings target with accumulated progress. CurrentValue
// starts at 0 and only ever grows: linked investments add to it once, at
// creation time, and deleting the investment later does not decrement it.
type Goal struct {
	Base
	UserID       uint       `gorm:"not null;index" json:"user_id"`
	Name         string     `gorm:"not null" json:"name"`
	TargetValue  float64    `gorm:"not null" json:"target_value"`
	CurrentValue float64    `gorm:"not null;default:0" json:"current_value"`
	Deadline     *time.Time `json:"deadline,omitempty"`
}

// Progress returns the raw completion ratio. An over-funded goal yields a
// value above 1.
func (g *Goal) Progress() float64 {
	if g.TargetValue <= 0 {
		return 0
	}
	return g.CurrentValue / g.TargetValue
}

// ProgressClamped returns the completion ratio clamped to [0, 1] for display.
func (g *Goal) ProgressClamped() float64 {
	p := g.Progress()
	if p > 1 {
		return 1
	}
	if p < 0 {
		return 0
	}
	return p
}
