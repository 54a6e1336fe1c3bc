package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/mwhart/portfoliobackend/models"
)

// ContactRepository handles database operations for ContactSubmission entities
type ContactRepository struct {
	DB *gorm.DB
}

// NewContactRepository creates a new instance of ContactRepository
func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{DB: db}
}

// Create persists a new contact submission. The identifier, read flag and
// submission time are assigned here; anything the caller set is discarded.
func (r *ContactRepository) Create(ctx context.Context, submission *models.ContactSubmission) error {
	submission.ID = 0
	submission.IsRead = false
	submission.SubmittedAt = time.Now().UTC()

	if err := r.DB.WithContext(ctx).Create(submission).Error; err != nil {
		return fmt.Errorf("failed to create contact submission from %s: %w", submission.Email, err)
	}
	return nil
}

// ListAll retrieves submissions newest first
func (r *ContactRepository) ListAll(ctx context.Context) ([]models.ContactSubmission, error) {
	var submissions []models.ContactSubmission
	err := r.DB.WithContext(ctx).
		Order("submitted_at DESC").
		Find(&submissions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list contact submissions: %w", err)
	}
	return submissions, nil
}
