package services

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "grana/internal/errors"
	"grana/internal/mailer"
	"grana/internal/models"
)

const (
	resetCodeDigits = 6
	resetCodeExpiry = 15 * time.Minute
)

// resetService handles the password-recovery flow.
type resetService struct {
	db     *gorm.DB
	mailer mailer.Mailer
}

// NewResetService creates a new ResetServicer.
func NewResetService(db *gorm.DB, m mailer.Mailer) ResetServicer {
	return &resetService{db: db, mailer: m}
}

// RequestReset issues a 6-digit code for a registered email, valid for
// 15 minutes, and delivers it through the mailer. An unknown email is
// reported as not found.
func (s *resetService) RequestReset(email string) error {
	email = strings.ToLower(email)

	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count == 0 {
		return apperrors.ErrUserNotFound
	}

	code, err := generateResetCode()
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	reset := &models.PasswordReset{
		Email:     email,
		Code:      code,
		ExpiresAt: time.Now().Add(resetCodeExpiry),
	}
	if err := s.db.Create(reset).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.mailer.SendResetCode(email, code); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return nil
}

// ConfirmReset verifies an unexpired code for the email, replaces the user's
// password, and purges every pending code for that email so none can be
// reused.
func (s *resetService) ConfirmReset(email, code, newPassword string) error {
	email = strings.ToLower(email)
	if newPassword == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "new password is required")
	}

	var reset models.PasswordReset
	err := s.db.Where("email = ? AND code = ? AND expires_at > ?", email, code, time.Now()).
		First(&reset).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrInvalidResetCode
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.db.Model(&models.User{}).Where("email = ?", email).
		Update("password", string(hashedPassword)).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.db.Where("email = ?", email).Delete(&models.PasswordReset{}).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return nil
}

// generateResetCode returns a random numeric code of resetCodeDigits digits.
func generateResetCode() (string, error) {
	max := big.NewInt(1)
	for i := 0; i < resetCodeDigits; i++ {
		max.Mul(max, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", resetCodeDigits, n), nil
}
