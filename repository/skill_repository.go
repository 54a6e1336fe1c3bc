package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mwhart/portfoliobackend/models"
)

// SkillRepository handles database operations for Skill entities
type SkillRepository struct {
	DB *gorm.DB
}

// NewSkillRepository creates a new instance of SkillRepository
func NewSkillRepository(db *gorm.DB) *SkillRepository {
	return &SkillRepository{DB: db}
}

// ListAll retrieves all skills ordered by category, then display order
func (r *SkillRepository) ListAll(ctx context.Context) ([]models.Skill, error) {
	var skills []models.Skill
	err := r.DB.WithContext(ctx).
		Order("category ASC, display_order ASC").
		Find(&skills).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	return skills, nil
}

// GetByID retrieves a skill by its ID
func (r *SkillRepository) GetByID(ctx context.Context, id uint) (*models.Skill, error) {
	var skill models.Skill
	err := r.DB.WithContext(ctx).First(&skill, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get skill by ID %d: %w", id, err)
	}
	return &skill, nil
}
