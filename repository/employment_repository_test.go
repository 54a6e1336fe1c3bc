package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mwhart/portfoliobackend/models"
)

func TestEmploymentRepositoryListAll(t *testing.T) {
	db := newTestDB(t)
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	entries := []models.Employment{
		{Company: "Second", Title: "Engineer", StartDate: start, DisplayOrder: 2},
		{Company: "First", Title: "Engineer", StartDate: start, DisplayOrder: 1},
		{Company: "Gone", Title: "Engineer", StartDate: start, DisplayOrder: 0, IsDeleted: true},
	}
	require.NoError(t, db.Create(&entries).Error)

	repo := NewEmploymentRepository(db)
	got, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "First", got[0].Company)
	assert.Equal(t, "Second", got[1].Company)
}

func TestEmploymentRepositoryGetByIDExcludesDeleted(t *testing.T) {
	db := newTestDB(t)
	entry := models.Employment{Company: "Gone", Title: "Engineer",
		StartDate: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), IsDeleted: true}
	require.NoError(t, db.Create(&entry).Error)

	repo := NewEmploymentRepository(db)
	_, err := repo.GetByID(context.Background(), entry.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestSkillRepositoryListAllOrder(t *testing.T) {
	db := newTestDB(t)
	skills := []models.Skill{
		{Name: "Azure", Category: models.SkillCategoryCloud, DisplayOrder: 1},
		{Name: "C#", Category: models.SkillCategoryLanguage, DisplayOrder: 2},
		{Name: "Go", Category: models.SkillCategoryLanguage, DisplayOrder: 1},
	}
	require.NoError(t, db.Create(&skills).Error)

	repo := NewSkillRepository(db)
	got, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Go", got[0].Name)
	assert.Equal(t, "C#", got[1].Name)
	assert.Equal(t, "Azure", got[2].Name)
}
