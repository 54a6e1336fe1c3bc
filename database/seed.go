package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/mwhart/portfoliobackend/models"
	"github.com/mwhart/portfoliobackend/utils"
)

// Seed populates an empty database with the portfolio catalog so the public
// read endpoints return content on a fresh install. Tables that already hold
// rows are left untouched.
func Seed(db *gorm.DB) error {
	if err := seedProjects(db); err != nil {
		return err
	}
	if err := seedEmployment(db); err != nil {
		return err
	}
	if err := seedSkills(db); err != nil {
		return err
	}
	if err := seedSettings(db); err != nil {
		return err
	}
	return nil
}

func seedProjects(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Project{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count projects: %w", err)
	}
	if count > 0 {
		return nil
	}

	projects := []models.Project{
		{
			Title:            "Portfolio Website",
			ShortDescription: "Personal portfolio site with an admin dashboard",
			Description:      "A personal portfolio web application with a public catalog of projects, work history and skills, plus an authenticated admin surface for managing content.",
			Technologies:     utils.EncodeStringList([]string{"Go", "SQLite", "REST"}),
			GithubURL:        "https://github.com/mwhart/portfoliobackend",
			DisplayOrder:     1,
			Status:           models.ProjectStatusPublished,
			Images: []models.ProjectImage{
				{Path: "images/portfolio-home.png", AltText: "Portfolio home page", DisplayOrder: 1, IsThumbnail: true},
				{Path: "images/portfolio-admin.png", AltText: "Admin dashboard", DisplayOrder: 2},
			},
		},
		{
			Title:            "Order Pipeline",
			ShortDescription: "Event-driven order processing service",
			Description:      "Back-office order processing pipeline handling validation, enrichment and fulfilment hand-off for a retail platform.",
			Technologies:     utils.EncodeStringList([]string{"C#", "Azure Functions", "Service Bus"}),
			DisplayOrder:     2,
			Status:           models.ProjectStatusPublished,
		},
		{
			Title:            "Legacy CMS Migration",
			ShortDescription: "Content migration tooling",
			Description:      "One-off tooling that migrated a legacy CMS into a headless platform, preserving URLs and media references.",
			Technologies:     utils.EncodeStringList([]string{"Python", "PostgreSQL"}),
			DisplayOrder:     3,
			Status:           models.ProjectStatusDraft,
		},
	}

	if err := db.Create(&projects).Error; err != nil {
		return fmt.Errorf("failed to seed projects: %w", err)
	}
	log.Printf("seeded %d projects", len(projects))
	return nil
}

func seedEmployment(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Employment{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count employment rows: %w", err)
	}
	if count > 0 {
		return nil
	}

	endDate := time.Date(2022, 6, 30, 0, 0, 0, 0, time.UTC)
	entries := []models.Employment{
		{
			Company:          "Northbridge Software",
			Title:            "Senior Software Engineer",
			StartDate:        time.Date(2022, 7, 1, 0, 0, 0, 0, time.UTC),
			Responsibilities: utils.EncodeStringList([]string{"Design and build backend services", "Lead code reviews", "Mentor junior engineers"}),
			Achievements:     utils.EncodeStringList([]string{"Cut p95 API latency by 40%", "Introduced automated release pipeline"}),
			Technologies:     utils.EncodeStringList([]string{"Go", "PostgreSQL", "Kubernetes"}),
			DisplayOrder:     1,
		},
		{
			Company:          "Harborview Consulting",
			Title:            "Software Engineer",
			StartDate:        time.Date(2019, 3, 1, 0, 0, 0, 0, time.UTC),
			EndDate:          &endDate,
			Responsibilities: utils.EncodeStringList([]string{"Deliver client integrations", "Maintain shared component library"}),
			Achievements:     utils.EncodeStringList([]string{"Shipped five client portals"}),
			Technologies:     utils.EncodeStringList([]string{"C#", ".NET", "SQL Server"}),
			DisplayOrder:     2,
		},
	}

	if err := db.Create(&entries).Error; err != nil {
		return fmt.Errorf("failed to seed employment: %w", err)
	}
	log.Printf("seeded %d employment entries", len(entries))
	return nil
}

func seedSkills(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Skill{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count skills: %w", err)
	}
	if count > 0 {
		return nil
	}

	skills := []models.Skill{
		{Name: "Go", Category: models.SkillCategoryLanguage, Proficiency: models.ProficiencyExpert, DisplayOrder: 1},
		{Name: "C#", Category: models.SkillCategoryLanguage, Proficiency: models.ProficiencyAdvanced, DisplayOrder: 2},
		{Name: "SQL", Category: models.SkillCategoryLanguage, Proficiency: models.ProficiencyAdvanced, DisplayOrder: 3},
		{Name: "ASP.NET Core", Category: models.SkillCategoryFramework, Proficiency: models.ProficiencyAdvanced, DisplayOrder: 1},
		{Name: "Entity Framework", Category: models.SkillCategoryFramework, Proficiency: models.ProficiencyIntermediate, DisplayOrder: 2},
		{Name: "Azure", Category: models.SkillCategoryCloud, Proficiency: models.ProficiencyAdvanced, DisplayOrder: 1},
		{Name: "Event-driven design", Category: models.SkillCategoryArchitecture, Proficiency: models.ProficiencyAdvanced, DisplayOrder: 1},
		{Name: "Code review", Category: models.SkillCategoryPractice, Proficiency: models.ProficiencyExpert, DisplayOrder: 1},
		{Name: "Retail systems", Category: models.SkillCategoryDomain, Proficiency: models.ProficiencyIntermediate, DisplayOrder: 1},
	}

	if err := db.Create(&skills).Error; err != nil {
		return fmt.Errorf("failed to seed skills: %w", err)
	}
	log.Printf("seeded %d skills", len(skills))
	return nil
}

func seedSettings(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Setting{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count settings: %w", err)
	}
	if count > 0 {
		return nil
	}

	settings := []models.Setting{
		{Key: "site_title", Value: "Matt Whart | Software Engineer", Category: "general"},
		{Key: "site_tagline", Value: "Backend engineering, done carefully", Category: "general"},
		{Key: "contact_email", Value: "hello@example.com", Category: "contact"},
		{Key: "github_url", Value: "https://github.com/mwhart", Category: "social"},
		{Key: "linkedin_url", Value: "https://linkedin.com/in/mwhart", Category: "social"},
	}

	if err := db.Create(&settings).Error; err != nil {
		return fmt.Errorf("failed to seed settings: %w", err)
	}
	log.Printf("seeded %d settings", len(settings))
	return nil
}
