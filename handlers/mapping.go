package handlers

import (
	"time"

	"github.com/mwhart/portfoliobackend/models"
	"github.com/mwhart/portfoliobackend/utils"
)

// Response DTOs. JSON-array columns are decoded here so malformed stored data
// degrades to empty lists instead of failing the read.

type ProjectImageDTO struct {
	ID           uint   `json:"id"`
	Path         string `json:"path"`
	ThumbPath    string `json:"thumb_path,omitempty"`
	AltText      string `json:"alt_text"`
	DisplayOrder int    `json:"display_order"`
	IsThumbnail  bool   `json:"is_thumbnail"`
}

type ProjectListItemDTO struct {
	ID               uint     `json:"id"`
	Title            string   `json:"title"`
	ShortDescription string   `json:"short_description"`
	Technologies     []string `json:"technologies"`
	ThumbnailPath    string   `json:"thumbnail_path"`
	GithubURL        string   `json:"github_url"`
	DemoURL          string   `json:"demo_url"`
	DisplayOrder     int      `json:"display_order"`
	Status           string   `json:"status"`
}

type ProjectDetailDTO struct {
	ProjectListItemDTO
	Description string            `json:"description"`
	Images      []ProjectImageDTO `json:"images"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

type EmploymentDTO struct {
	ID               uint       `json:"id"`
	Company          string     `json:"company"`
	Title            string     `json:"title"`
	StartDate        time.Time  `json:"start_date"`
	EndDate          *time.Time `json:"end_date"` // null while current
	Responsibilities []string   `json:"responsibilities"`
	Achievements     []string   `json:"achievements"`
	Technologies     []string   `json:"technologies"`
	DisplayOrder     int        `json:"display_order"`
}

type SkillDTO struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	Proficiency  string `json:"proficiency"`
	DisplayOrder int    `json:"display_order"`
	IconURL      string `json:"icon_url,omitempty"`
}

type SettingDTO struct {
	ID           uint      `json:"id"`
	Key          string    `json:"key"`
	Value        string    `json:"value"`
	Category     string    `json:"category"`
	LastModified time.Time `json:"last_modified"`
}

type ContactSubmissionDTO struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Subject     string    `json:"subject,omitempty"`
	Message     string    `json:"message"`
	IsRead      bool      `json:"is_read"`
	SubmittedAt time.Time `json:"submitted_at"`
}

func toProjectListItemDTO(p *models.Project) ProjectListItemDTO {
	return ProjectListItemDTO{
		ID:               p.ID,
		Title:            p.Title,
		ShortDescription: p.ShortDescription,
		Technologies:     utils.DecodeStringList(p.Technologies),
		ThumbnailPath:    p.ThumbnailPath(),
		GithubURL:        p.GithubURL,
		DemoURL:          p.DemoURL,
		DisplayOrder:     p.DisplayOrder,
		Status:           p.Status.String(),
	}
}

func toProjectListDTO(projects []models.Project) []ProjectListItemDTO {
	dtos := make([]ProjectListItemDTO, len(projects))
	for i := range projects {
		dtos[i] = toProjectListItemDTO(&projects[i])
	}
	return dtos
}

func toProjectImageDTO(img *models.ProjectImage) ProjectImageDTO {
	return ProjectImageDTO{
		ID:           img.ID,
		Path:         img.Path,
		ThumbPath:    img.ThumbPath,
		AltText:      img.AltText,
		DisplayOrder: img.DisplayOrder,
		IsThumbnail:  img.IsThumbnail,
	}
}

func toProjectDetailDTO(p *models.Project) ProjectDetailDTO {
	images := make([]ProjectImageDTO, len(p.Images))
	for i := range p.Images {
		images[i] = toProjectImageDTO(&p.Images[i])
	}
	return ProjectDetailDTO{
		ProjectListItemDTO: toProjectListItemDTO(p),
		Description:        p.Description,
		Images:             images,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

func toEmploymentDTO(e *models.Employment) EmploymentDTO {
	return EmploymentDTO{
		ID:               e.ID,
		Company:          e.Company,
		Title:            e.Title,
		StartDate:        e.StartDate,
		EndDate:          e.EndDate,
		Responsibilities: utils.DecodeStringList(e.Responsibilities),
		Achievements:     utils.DecodeStringList(e.Achievements),
		Technologies:     utils.DecodeStringList(e.Technologies),
		DisplayOrder:     e.DisplayOrder,
	}
}

func toEmploymentListDTO(entries []models.Employment) []EmploymentDTO {
	dtos := make([]EmploymentDTO, len(entries))
	for i := range entries {
		dtos[i] = toEmploymentDTO(&entries[i])
	}
	return dtos
}

func toSkillDTO(s *models.Skill) SkillDTO {
	return SkillDTO{
		ID:           s.ID,
		Name:         s.Name,
		Category:     s.Category.String(),
		Proficiency:  s.Proficiency.String(),
		DisplayOrder: s.DisplayOrder,
		IconURL:      s.IconURL,
	}
}

func toSkillListDTO(skills []models.Skill) []SkillDTO {
	dtos := make([]SkillDTO, len(skills))
	for i := range skills {
		dtos[i] = toSkillDTO(&skills[i])
	}
	return dtos
}

func toSettingDTO(s *models.Setting) SettingDTO {
	return SettingDTO{
		ID:           s.ID,
		Key:          s.Key,
		Value:        s.Value,
		Category:     s.Category,
		LastModified: s.UpdatedAt,
	}
}

func toSettingListDTO(settings []models.Setting) []SettingDTO {
	dtos := make([]SettingDTO, len(settings))
	for i := range settings {
		dtos[i] = toSettingDTO(&settings[i])
	}
	return dtos
}

func toContactSubmissionDTO(c *models.ContactSubmission) ContactSubmissionDTO {
	return ContactSubmissionDTO{
		ID:          c.ID,
		Name:        c.Name,
		Email:       c.Email,
		Subject:     c.Subject,
		Message:     c.Message,
		IsRead:      c.IsRead,
		SubmittedAt: c.SubmittedAt,
	}
}

func toContactSubmissionListDTO(subs []models.ContactSubmission) []ContactSubmissionDTO {
	dtos := make([]ContactSubmissionDTO, len(subs))
	for i := range subs {
		dtos[i] = toContactSubmissionDTO(&subs[i])
	}
	return dtos
}
