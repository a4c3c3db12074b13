package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/cinelog/cinelog-backend/internal/app/model"
	"github.com/cinelog/cinelog-backend/internal/app/query"
)

func seedReplyTree(t *testing.T, database *gorm.DB) (review *model.Review, top, nested *model.Reply) {
	t.Helper()

	user := seedUser(t, database, "talker")
	category := seedCategory(t, database, "Feature")
	movie := seedMovie(t, database, category.ID, "Alpha Dog", "alpha-dog")
	review = seedReview(t, database, user.ID, movie.ID, 70)

	top = &model.Reply{Content: "top level", UserID: user.ID, ReviewID: &review.ID}
	require.NoError(t, database.Create(top).Error)

	nested = &model.Reply{Content: "nested", UserID: user.ID, ParentID: &top.ID}
	require.NoError(t, database.Create(nested).Error)

	return review, top, nested
}

func defaultParams() query.Params {
	return query.Params{Pagination: query.Pagination{Page: 1, PerPage: 10}}
}

func TestReplyRepositoryListForReview(t *testing.T) {
	database := setupDB(t)
	repo := NewReplyRepository(database)
	review, top, _ := seedReplyTree(t, database)

	replies, total, err := repo.ListForReview(review.ID, defaultParams())
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, replies, 1)
	assert.Equal(t, top.ID, replies[0].ID)

	require.NotNil(t, replies[0].ReplyCount, "top-level reply should count its children")
	assert.EqualValues(t, 1, *replies[0].ReplyCount)
	require.NotNil(t, replies[0].User)
	assert.Equal(t, "talker", replies[0].User.Username)
}

func TestReplyRepositoryListChildren(t *testing.T) {
	database := setupDB(t)
	repo := NewReplyRepository(database)
	_, top, nested := seedReplyTree(t, database)

	children, total, err := repo.ListChildren(top.ID, defaultParams())
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, children, 1)
	assert.Equal(t, nested.ID, children[0].ID)
	require.NotNil(t, children[0].ReplyCount)
	assert.EqualValues(t, 0, *children[0].ReplyCount)
}

func TestReplyRepositoryConversationOrder(t *testing.T) {
	database := setupDB(t)
	repo := NewReplyRepository(database)
	review, _, _ := seedReplyTree(t, database)

	user := seedUser(t, database, "second")
	later := model.Reply{Content: "later", UserID: user.ID, ReviewID: &review.ID}
	require.NoError(t, database.Create(&later).Error)

	replies, _, err := repo.ListForReview(review.ID, defaultParams())
	require.NoError(t, err)
	require.Len(t, replies, 2)
	assert.Equal(t, "top level", replies[0].Content, "default sort is oldest first")
	assert.Equal(t, "later", replies[1].Content)
}

func TestReplyRepositoryFiltersAndSorts(t *testing.T) {
	database := setupDB(t)
	repo := NewReplyRepository(database)
	review, top, _ := seedReplyTree(t, database)

	second := seedUser(t, database, "second")
	childless := model.Reply{Content: "no thread here", UserID: second.ID, ReviewID: &review.ID}
	require.NoError(t, database.Create(&childless).Error)

	t.Run("filter by author username", func(t *testing.T) {
		params := defaultParams()
		params.Filters = query.Filters{"username": "second"}
		replies, total, err := repo.ListForReview(review.ID, params)
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, replies, 1)
		assert.Equal(t, "no thread here", replies[0].Content)
	})

	t.Run("filter by nested reply count", func(t *testing.T) {
		params := defaultParams()
		params.Filters = query.Filters{"replies_count": "1"}
		replies, _, err := repo.ListForReview(review.ID, params)
		require.NoError(t, err)
		require.Len(t, replies, 1)
		assert.Equal(t, top.ID, replies[0].ID)
	})

	t.Run("sort by most replies", func(t *testing.T) {
		params := defaultParams()
		params.Sort = "most-replies"
		replies, _, err := repo.ListForReview(review.ID, params)
		require.NoError(t, err)
		require.Len(t, replies, 2)
		assert.Equal(t, top.ID, replies[0].ID)
	})

	t.Run("invalid sort names the valid set", func(t *testing.T) {
		params := defaultParams()
		params.Sort = "loudest"
		_, _, err := repo.ListForReview(review.ID, params)
		var sortErr *query.InvalidSortError
		require.ErrorAs(t, err, &sortErr)
		assert.Contains(t, sortErr.Valid, "most-replies")
	})
}

func TestReplyRepositoryDeleteOwned(t *testing.T) {
	database := setupDB(t)
	repo := NewReplyRepository(database)
	_, top, _ := seedReplyTree(t, database)

	stranger := seedUser(t, database, "stranger")

	err := repo.DeleteOwned(top.ID, stranger.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, repo.DeleteOwned(top.ID, top.UserID))
	_, err = repo.GetByID(top.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
