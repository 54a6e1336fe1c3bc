package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mwhart/portfoliobackend/models"
)

// ProjectRepository handles database operations for Project entities
type ProjectRepository struct {
	DB *gorm.DB
}

// NewProjectRepository creates a new instance of ProjectRepository
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{DB: db}
}

// withImages preloads each project's images in display order so thumbnail
// selection sees them in stored order.
func withImages(db *gorm.DB) *gorm.DB {
	return db.Preload("Images", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("display_order ASC, id ASC")
	})
}

// ListPublished retrieves published, non-deleted projects ordered by display order
func (r *ProjectRepository) ListPublished(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	err := withImages(r.DB.WithContext(ctx)).
		Where("is_deleted = ? AND status = ?", false, models.ProjectStatusPublished).
		Order("display_order ASC").
		Find(&projects).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list published projects: %w", err)
	}
	return projects, nil
}

// ListAllAdmin retrieves non-deleted projects of any status ordered by display order
func (r *ProjectRepository) ListAllAdmin(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	err := withImages(r.DB.WithContext(ctx)).
		Where("is_deleted = ?", false).
		Order("display_order ASC").
		Find(&projects).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// ListAllIncludingDeleted retrieves every project, soft-deleted rows
// included. Diagnostic use only.
func (r *ProjectRepository) ListAllIncludingDeleted(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	err := withImages(r.DB.WithContext(ctx)).
		Order("display_order ASC").
		Find(&projects).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list projects including deleted: %w", err)
	}
	return projects, nil
}

// GetPublishedByID retrieves a published, non-deleted project by its ID
func (r *ProjectRepository) GetPublishedByID(ctx context.Context, id uint) (*models.Project, error) {
	var project models.Project
	err := withImages(r.DB.WithContext(ctx)).
		Where("id = ? AND is_deleted = ? AND status = ?", id, false, models.ProjectStatusPublished).
		First(&project).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get project by ID %d: %w", id, err)
	}
	return &project, nil
}

// GetByID retrieves a non-deleted project of any status by its ID
func (r *ProjectRepository) GetByID(ctx context.Context, id uint) (*models.Project, error) {
	var project models.Project
	err := withImages(r.DB.WithContext(ctx)).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&project).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get project by ID %d: %w", id, err)
	}
	return &project, nil
}

// AddImage attaches an uploaded image record to a project
func (r *ProjectRepository) AddImage(ctx context.Context, image *models.ProjectImage) error {
	if err := r.DB.WithContext(ctx).Create(image).Error; err != nil {
		return fmt.Errorf("failed to add image to project %d: %w", image.ProjectID, err)
	}
	return nil
}
