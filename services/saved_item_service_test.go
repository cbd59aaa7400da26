package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Isaacjdv/futbolapp-backend/entity"
	"github.com/Isaacjdv/futbolapp-backend/repository"
	"github.com/Isaacjdv/futbolapp-backend/services"
)

func TestSavedItemIdempotentSave(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewSavedItemService(repository.NewSavedItemRepository(db))
	user := createUser(t, db, "wish@example.com")

	first, created, err := svc.Save(user.ID, "store-9")
	require.NoError(t, err)
	assert.True(t, created)

	second, created, err := svc.Save(user.ID, "store-9")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&entity.SavedItem{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSavedItemRemoveIsOwnerScoped(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewSavedItemService(repository.NewSavedItemRepository(db))
	owner := createUser(t, db, "owner@example.com")
	other := createUser(t, db, "other@example.com")

	item, _, err := svc.Save(owner.ID, "store-4")
	require.NoError(t, err)

	err = svc.Remove(other.ID, item.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)

	// the row survives the foreign delete attempt
	var count int64
	require.NoError(t, db.Model(&entity.SavedItem{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	require.NoError(t, svc.Remove(owner.ID, item.ID))
}

func TestSavedItemMissingProduct(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewSavedItemService(repository.NewSavedItemRepository(db))
	user := createUser(t, db, "wish@example.com")

	_, _, err := svc.Save(user.ID, "")
	assert.ErrorIs(t, err, services.ErrInvalidInput)
}
