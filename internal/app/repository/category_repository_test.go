package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinelog/cinelog-backend/internal/app/query"
)

func TestCategoryRepositoryList(t *testing.T) {
	database := setupDB(t)
	repo := NewCategoryRepository(database)

	feature := seedCategory(t, database, "Feature")
	short := seedCategory(t, database, "Short")
	seedCategory(t, database, "Documentary")

	seedMovie(t, database, feature.ID, "Alpha Dog", "alpha-dog")
	seedMovie(t, database, feature.ID, "Beta Ray", "beta-ray")
	seedMovie(t, database, short.ID, "Gamma Knife", "gamma-knife")

	t.Run("sort by most movies", func(t *testing.T) {
		params := query.Params{
			Sort:       "most-movies",
			Pagination: query.Pagination{Page: 1, PerPage: 10},
		}
		categories, total, err := repo.List(params)
		require.NoError(t, err)
		assert.EqualValues(t, 3, total)
		require.Len(t, categories, 3)
		assert.Equal(t, "Feature", categories[0].Name)
		require.NotNil(t, categories[0].MovieCount)
		assert.EqualValues(t, 2, *categories[0].MovieCount)
		assert.Equal(t, "Documentary", categories[2].Name)
	})

	t.Run("search narrows by name", func(t *testing.T) {
		params := query.Params{
			Filters:    query.Filters{"search_term": "doc"},
			Pagination: query.Pagination{Page: 1, PerPage: 10},
		}
		categories, total, err := repo.List(params)
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, categories, 1)
		assert.Equal(t, "Documentary", categories[0].Name)
	})

	t.Run("invalid sort names the valid set", func(t *testing.T) {
		params := query.Params{Sort: "alphabetical"}
		_, _, err := repo.List(params)
		var sortErr *query.InvalidSortError
		require.ErrorAs(t, err, &sortErr)
		assert.Equal(t, []string{"least-movies", "most-movies", "newest", "oldest"}, sortErr.Valid)
	})
}

func TestCategoryRepositoryTree(t *testing.T) {
	database := setupDB(t)
	repo := NewCategoryRepository(database)

	feature := seedCategory(t, database, "Feature")
	child := seedCategoryChild(t, database, "Indie", feature.ID)

	roots, err := repo.Tree()
	require.NoError(t, err)
	require.Len(t, roots, 1)
	assert.Equal(t, "Feature", roots[0].Name)
	require.Len(t, roots[0].Children, 1)
	assert.Equal(t, child.ID, roots[0].Children[0].ID)
}
