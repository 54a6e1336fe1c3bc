package models

import "time"

// ProjectStatus controls whether a project is visible on the public site.
type ProjectStatus int

const (
	ProjectStatusDraft ProjectStatus = iota
	ProjectStatusPublished
	ProjectStatusArchived
)

// String returns the display name used in API responses.
func (s ProjectStatus) String() string {
	switch s {
	case ProjectStatusDraft:
		return "Draft"
	case ProjectStatusPublished:
		return "Published"
	case ProjectStatusArchived:
		return "Archived"
	default:
		return "Unknown"
	}
}

// Project represents a portfolio project in the database.
// It corresponds to the 'projects' table.
type Project struct {
	ID               uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Title            string         `gorm:"not null" json:"title"`
	ShortDescription string         `gorm:"not null" json:"short_description"`
	Description      string         `gorm:"" json:"description"`
	Technologies     string         `gorm:"not null;default:'[]'" json:"-"` // JSON string array, decoded at the mapping layer
	GithubURL        string         `gorm:"" json:"github_url"`
	DemoURL          string         `gorm:"" json:"demo_url"`
	DisplayOrder     int            `gorm:"not null;default:0" json:"display_order"`
	Status           ProjectStatus  `gorm:"not null;default:0" json:"status"`
	IsDeleted        bool           `gorm:"not null;default:false" json:"-"`
	Images           []ProjectImage `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// TableName explicitly sets the table name for GORM.
func (Project) TableName() string {
	return "projects"
}

// ThumbnailPath returns the path of the first image flagged as the project's
// thumbnail in stored order, or an empty string when none is flagged.
func (p *Project) ThumbnailPath() string {
	for i := range p.Images {
		if p.Images[i].IsThumbnail {
			return p.Images[i].Path
		}
	}
	return ""
}

// ProjectImage represents a single image attached to a project. Rows are
// removed with their parent project via the cascade constraint.
type ProjectImage struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ProjectID    uint      `gorm:"not null;index" json:"project_id"`
	Path         string    `gorm:"not null" json:"path"`
	ThumbPath    string    `gorm:"" json:"thumb_path,omitempty"` // generated list-view rendition, empty when generation failed
	AltText      string    `gorm:"" json:"alt_text"`
	DisplayOrder int       `gorm:"not null;default:0" json:"display_order"`
	IsThumbnail  bool      `gorm:"not null;default:false" json:"is_thumbnail"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (ProjectImage) TableName() string {
	return "project_images"
}
