package repositories

import (
	"errors"
	"fmt"
	"time"

	"finu/internal/models"

	"gorm.io/gorm"
)

// BlacklistedTokenRepositoryInterface defines database operations for
// revoked access tokens
type BlacklistedTokenRepositoryInterface interface {
	Create(token *models.BlacklistedToken) error
	IsBlacklisted(jti string) (bool, error)
	DeleteExpired() (int64, error)
}

// BlacklistedTokenRepository handles database operations for revoked
// access tokens
type BlacklistedTokenRepository struct {
	db *gorm.DB
}

// NewBlacklistedTokenRepository creates a new blacklisted token repository
func NewBlacklistedTokenRepository(db *gorm.DB) BlacklistedTokenRepositoryInterface {
	return &BlacklistedTokenRepository{
		db: db,
	}
}

// Create records a revoked access token by its JTI
func (r *BlacklistedTokenRepository) Create(token *models.BlacklistedToken) error {
	if token == nil {
		return errors.New("blacklisted token cannot be nil")
	}

	if err := r.db.Create(token).Error; err != nil {
		// Double logout of the same token is not an error
		if isDuplicateKeyError(err) {
			return nil
		}
		return fmt.Errorf("failed to blacklist token: %w", err)
	}

	return nil
}

// IsBlacklisted reports whether an access token JTI has been revoked
func (r *BlacklistedTokenRepository) IsBlacklisted(jti string) (bool, error) {
	var count int64

	if err := r.db.Model(&models.BlacklistedToken{}).
		Where("jti = ?", jti).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check token blacklist: %w", err)
	}

	return count > 0, nil
}

// DeleteExpired removes blacklist entries whose tokens have expired anyway
func (r *BlacklistedTokenRepository) DeleteExpired() (int64, error) {
	result := r.db.Where("expires_at < ?", time.Now().UTC()).
		Delete(&models.BlacklistedToken{})

	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete expired blacklist entries: %w", result.Error)
	}

	return result.RowsAffected, nil
}
