package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mwhart/portfoliobackend/models"
)

func TestSettingRepositoryListAllOrder(t *testing.T) {
	db := newTestDB(t)
	settings := []models.Setting{
		{Key: "site_title", Value: "v", Category: "general"},
		{Key: "github_url", Value: "v", Category: "social"},
		{Key: "contact_email", Value: "v", Category: "contact"},
		{Key: "linkedin_url", Value: "v", Category: "social"},
		{Key: "hidden", Value: "v", Category: "general", IsDeleted: true},
	}
	require.NoError(t, db.Create(&settings).Error)

	repo := NewSettingRepository(db)
	got, err := repo.ListAll(context.Background())
	require.NoError(t, err)

	keys := make([]string, len(got))
	for i, s := range got {
		keys[i] = s.Category + "/" + s.Key
	}
	// deterministic category-then-key order, soft-deleted rows excluded
	assert.Equal(t, []string{
		"contact/contact_email",
		"general/site_title",
		"social/github_url",
		"social/linkedin_url",
	}, keys)
}

func TestSettingRepositoryListByCategory(t *testing.T) {
	db := newTestDB(t)
	settings := []models.Setting{
		{Key: "b", Value: "v", Category: "social"},
		{Key: "a", Value: "v", Category: "social"},
		{Key: "c", Value: "v", Category: "general"},
	}
	require.NoError(t, db.Create(&settings).Error)

	repo := NewSettingRepository(db)
	got, err := repo.ListByCategory(context.Background(), "social")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Key)
	assert.Equal(t, "b", got[1].Key)
}

func TestSettingRepositoryGetByIDMiss(t *testing.T) {
	db := newTestDB(t)
	repo := NewSettingRepository(db)

	_, err := repo.GetByID(context.Background(), 12345)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestSettingRepositoryGetByIDExcludesDeleted(t *testing.T) {
	db := newTestDB(t)
	setting := models.Setting{Key: "gone", Value: "v", Category: "general", IsDeleted: true}
	require.NoError(t, db.Create(&setting).Error)

	repo := NewSettingRepository(db)
	_, err := repo.GetByID(context.Background(), setting.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}
