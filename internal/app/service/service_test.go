package service

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/cinelog/cinelog-backend/internal/app/model"
	"github.com/cinelog/cinelog-backend/internal/app/repository"
	"github.com/cinelog/cinelog-backend/internal/db"
)

type testEnv struct {
	db *gorm.DB

	users         repository.UserRepository
	categories    repository.CategoryRepository
	movies        repository.MovieRepository
	people        repository.PersonRepository
	reviews       repository.ReviewRepository
	replies       repository.ReplyRepository
	likes         repository.LikeRepository
	taxonomy      repository.TaxonomyRepository
	notifications repository.NotificationRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	database, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(database) })

	return &testEnv{
		db:            database,
		users:         repository.NewUserRepository(database),
		categories:    repository.NewCategoryRepository(database),
		movies:        repository.NewMovieRepository(database),
		people:        repository.NewPersonRepository(database),
		reviews:       repository.NewReviewRepository(database),
		replies:       repository.NewReplyRepository(database),
		likes:         repository.NewLikeRepository(database),
		taxonomy:      repository.NewTaxonomyRepository(database),
		notifications: repository.NewNotificationRepository(database),
	}
}

func (e *testEnv) seedUser(t *testing.T, username string) *model.User {
	t.Helper()
	user := &model.User{Username: username, Email: username + "@example.com", PasswordHash: "hash"}
	require.NoError(t, e.db.Create(user).Error)
	return user
}

func (e *testEnv) seedMovie(t *testing.T, name, url string) *model.Movie {
	t.Helper()
	var category model.Category
	err := e.db.Where("name = ?", "Feature").First(&category).Error
	if err != nil {
		category = model.Category{Name: "Feature"}
		require.NoError(t, e.db.Create(&category).Error)
	}
	movie := &model.Movie{Name: name, URL: url, CategoryID: category.ID}
	require.NoError(t, e.db.Create(movie).Error)
	return movie
}

func (e *testEnv) seedReview(t *testing.T, userID, movieID uint, score int) *model.Review {
	t.Helper()
	review := &model.Review{Content: "seeded", Score: score, UserID: userID, MovieID: movieID}
	require.NoError(t, e.db.Create(review).Error)
	return review
}
