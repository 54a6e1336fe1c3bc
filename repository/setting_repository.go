package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mwhart/portfoliobackend/models"
)

// SettingRepository handles database operations for Setting entities
type SettingRepository struct {
	DB *gorm.DB
}

// NewSettingRepository creates a new instance of SettingRepository
func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{DB: db}
}

// ListAll retrieves non-deleted settings ordered by category, then key
func (r *SettingRepository) ListAll(ctx context.Context) ([]models.Setting, error) {
	var settings []models.Setting
	err := r.DB.WithContext(ctx).
		Where("is_deleted = ?", false).
		Order("category ASC, key ASC").
		Find(&settings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}
	return settings, nil
}

// ListAllIncludingDeleted retrieves every setting, soft-deleted rows
// included. Diagnostic use only.
func (r *SettingRepository) ListAllIncludingDeleted(ctx context.Context) ([]models.Setting, error) {
	var settings []models.Setting
	err := r.DB.WithContext(ctx).
		Order("category ASC, key ASC").
		Find(&settings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list settings including deleted: %w", err)
	}
	return settings, nil
}

// ListByCategory retrieves non-deleted settings in a category ordered by key
func (r *SettingRepository) ListByCategory(ctx context.Context, category string) ([]models.Setting, error) {
	var settings []models.Setting
	err := r.DB.WithContext(ctx).
		Where("is_deleted = ? AND category = ?", false, category).
		Order("key ASC").
		Find(&settings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list settings for category %s: %w", category, err)
	}
	return settings, nil
}

// GetByID retrieves a non-deleted setting by its ID
func (r *SettingRepository) GetByID(ctx context.Context, id uint) (*models.Setting, error) {
	var setting models.Setting
	err := r.DB.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get setting by ID %d: %w", id, err)
	}
	return &setting, nil
}
