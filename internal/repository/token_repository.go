package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ahmetcoskunkizilkaya/clinic-backend/internal/models"
)

// TokenRepository defines persistence operations for the bearer-token
// allow-list used by the token auth strategy.
type TokenRepository interface {
	Create(ctx context.Context, token *models.AccessToken) error
	FindByHash(ctx context.Context, hash string) (*models.AccessToken, error)
	Revoke(ctx context.Context, hash string) (int64, error)
	DeleteForUser(ctx context.Context, userID uuid.UUID) error
}

type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository builds a GORM-backed repository.
func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepository{db: db}
}

func (r *tokenRepository) Create(ctx context.Context, token *models.AccessToken) error {
	return r.db.WithContext(ctx).Create(token).Error
}

func (r *tokenRepository) FindByHash(ctx context.Context, hash string) (*models.AccessToken, error) {
	var token models.AccessToken
	if err := r.db.WithContext(ctx).Where("token_hash = ?", hash).First(&token).Error; err != nil {
		return nil, err
	}
	return &token, nil
}

func (r *tokenRepository) Revoke(ctx context.Context, hash string) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.AccessToken{}).
		Where("token_hash = ? AND revoked = false", hash).
		Update("revoked", true)
	return result.RowsAffected, result.Error
}

func (r *tokenRepository) DeleteForUser(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.AccessToken{}).Error
}
