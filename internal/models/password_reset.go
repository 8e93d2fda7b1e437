package models

import "time"

// PasswordReset holds a pending password-recovery code. Rows are ephemeral:
// created on request, hard-deleted once the password is reset or the code
// expires — no Base embed, no soft deletes.
type PasswordReset struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"not null;index" json:"email"`
	Code      string    `gorm:"size:6;not null" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
