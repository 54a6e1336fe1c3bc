package models

import "time"

// SkillCategory groups skills for display.
type SkillCategory int

const (
	SkillCategoryLanguage SkillCategory = iota
	SkillCategoryFramework
	SkillCategoryCloud
	SkillCategoryArchitecture
	SkillCategoryPractice
	SkillCategoryDomain
)

func (c SkillCategory) String() string {
	switch c {
	case SkillCategoryLanguage:
		return "Language"
	case SkillCategoryFramework:
		return "Framework"
	case SkillCategoryCloud:
		return "Cloud"
	case SkillCategoryArchitecture:
		return "Architecture"
	case SkillCategoryPractice:
		return "Practice"
	case SkillCategoryDomain:
		return "Domain"
	default:
		return "Unknown"
	}
}

// ProficiencyLevel is the self-assessed level shown next to a skill.
type ProficiencyLevel int

const (
	ProficiencyBeginner ProficiencyLevel = iota
	ProficiencyIntermediate
	ProficiencyAdvanced
	ProficiencyExpert
)

func (p ProficiencyLevel) String() string {
	switch p {
	case ProficiencyBeginner:
		return "Beginner"
	case ProficiencyIntermediate:
		return "Intermediate"
	case ProficiencyAdvanced:
		return "Advanced"
	case ProficiencyExpert:
		return "Expert"
	default:
		return "Unknown"
	}
}

// Skill represents a single skill card. Skills have no soft-delete flag.
type Skill struct {
	ID           uint             `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string           `gorm:"not null" json:"name"`
	Category     SkillCategory    `gorm:"not null;default:0" json:"category"`
	Proficiency  ProficiencyLevel `gorm:"not null;default:0" json:"proficiency"`
	DisplayOrder int              `gorm:"not null;default:0" json:"display_order"`
	IconURL      string           `gorm:"" json:"icon_url,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

func (Skill) TableName() string {
	return "skills"
}
