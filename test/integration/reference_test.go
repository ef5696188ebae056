package integration

import (
	"context"
	"testing"

	"bookmystars_client/internal/models"
	"bookmystars_client/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferenceLookups(t *testing.T) {
	env := newClientEnv(t)
	ctx := context.Background()
	ref := env.services.Reference

	t.Run("get all returns the seeded set", func(t *testing.T) {
		items, err := ref.GetAll(ctx, services.Genders)
		require.NoError(t, err)
		assert.Len(t, items, 3)
	})

	t.Run("get by id", func(t *testing.T) {
		item, err := ref.GetByID(ctx, services.Categories, 1)
		require.NoError(t, err)
		assert.Equal(t, "Actor", item.Name)
	})

	t.Run("get by unknown id fails", func(t *testing.T) {
		_, err := ref.GetByID(ctx, services.Categories, 999)
		require.Error(t, err)
	})

	t.Run("search filters by name", func(t *testing.T) {
		items, err := ref.Search(ctx, services.Cities, "mum")
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Mumbai", items[0].Name)
	})

	t.Run("list paginates", func(t *testing.T) {
		page, err := ref.List(ctx, services.Cities, 1, 3)
		require.NoError(t, err)
		assert.Len(t, page.Items, 3)
		assert.Equal(t, 7, page.TotalCount)

		last, err := ref.List(ctx, services.Cities, 3, 3)
		require.NoError(t, err)
		assert.Len(t, last.Items, 1)
	})

	t.Run("active filter", func(t *testing.T) {
		items, err := ref.GetActive(ctx, services.States)
		require.NoError(t, err)
		assert.Len(t, items, 4)
	})

	t.Run("create and delete", func(t *testing.T) {
		created, err := ref.Create(ctx, services.JobRoles, &models.ReferenceItem{
			Name:     "Voice Artist",
			IsActive: true,
		})
		require.NoError(t, err)
		assert.Greater(t, created.ID, 0)

		require.NoError(t, ref.Delete(ctx, services.JobRoles, created.ID))

		_, err = ref.GetByID(ctx, services.JobRoles, created.ID)
		require.Error(t, err)
	})

	t.Run("every lookup resource answers", func(t *testing.T) {
		for _, res := range services.AllReferenceResources {
			items, err := ref.GetAll(ctx, res)
			require.NoError(t, err, "resource %s", res.Path)
			assert.NotEmpty(t, items, "resource %s", res.Path)
		}
	})
}

func TestResourceByPath(t *testing.T) {
	res, ok := services.ResourceByPath("body-type")
	require.True(t, ok)
	assert.Equal(t, "Body Type", res.Name)

	_, ok = services.ResourceByPath("no-such-lookup")
	assert.False(t, ok)
}
