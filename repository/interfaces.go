package repository

import (
	"context"

	"github.com/mwhart/portfoliobackend/models"
)

// ProjectRepositoryInterface defines the methods for project data operations
type ProjectRepositoryInterface interface {
	// ListPublished returns live published projects for the public site
	ListPublished(ctx context.Context) ([]models.Project, error)
	// ListAllAdmin returns live projects of every status for the admin view
	ListAllAdmin(ctx context.Context) ([]models.Project, error)
	// ListAllIncludingDeleted ignores the soft-delete filter (diagnostics)
	ListAllIncludingDeleted(ctx context.Context) ([]models.Project, error)
	GetPublishedByID(ctx context.Context, id uint) (*models.Project, error)
	GetByID(ctx context.Context, id uint) (*models.Project, error)
	AddImage(ctx context.Context, image *models.ProjectImage) error
}

// EmploymentRepositoryInterface defines the methods for work-history data operations
type EmploymentRepositoryInterface interface {
	ListAll(ctx context.Context) ([]models.Employment, error)
	ListAllIncludingDeleted(ctx context.Context) ([]models.Employment, error)
	GetByID(ctx context.Context, id uint) (*models.Employment, error)
}

// SkillRepositoryInterface defines the methods for skill data operations
type SkillRepositoryInterface interface {
	ListAll(ctx context.Context) ([]models.Skill, error)
	GetByID(ctx context.Context, id uint) (*models.Skill, error)
}

// SettingRepositoryInterface defines the methods for settings data operations
type SettingRepositoryInterface interface {
	ListAll(ctx context.Context) ([]models.Setting, error)
	ListAllIncludingDeleted(ctx context.Context) ([]models.Setting, error)
	ListByCategory(ctx context.Context, category string) ([]models.Setting, error)
	GetByID(ctx context.Context, id uint) (*models.Setting, error)
}

// ContactRepositoryInterface defines the methods for contact-form data operations
type ContactRepositoryInterface interface {
	Create(ctx context.Context, submission *models.ContactSubmission) error
	ListAll(ctx context.Context) ([]models.ContactSubmission, error)
}
