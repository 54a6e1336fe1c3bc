package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mwhart/portfoliobackend/models"
)

// EmploymentRepository handles database operations for Employment entities
type EmploymentRepository struct {
	DB *gorm.DB
}

// NewEmploymentRepository creates a new instance of EmploymentRepository
func NewEmploymentRepository(db *gorm.DB) *EmploymentRepository {
	return &EmploymentRepository{DB: db}
}

// ListAll retrieves non-deleted employment entries ordered by display order
func (r *EmploymentRepository) ListAll(ctx context.Context) ([]models.Employment, error) {
	var entries []models.Employment
	err := r.DB.WithContext(ctx).
		Where("is_deleted = ?", false).
		Order("display_order ASC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list employment entries: %w", err)
	}
	return entries, nil
}

// ListAllIncludingDeleted retrieves every entry, soft-deleted rows included.
// Diagnostic use only.
func (r *EmploymentRepository) ListAllIncludingDeleted(ctx context.Context) ([]models.Employment, error) {
	var entries []models.Employment
	err := r.DB.WithContext(ctx).
		Order("display_order ASC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list employment entries including deleted: %w", err)
	}
	return entries, nil
}

// GetByID retrieves a non-deleted employment entry by its ID
func (r *EmploymentRepository) GetByID(ctx context.Context, id uint) (*models.Employment, error) {
	var entry models.Employment
	err := r.DB.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get employment entry by ID %d: %w", id, err)
	}
	return &entry, nil
}
