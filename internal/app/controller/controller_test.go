package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/cinelog/cinelog-backend/config"
	"github.com/cinelog/cinelog-backend/internal/app/model"
	"github.com/cinelog/cinelog-backend/internal/app/repository"
	"github.com/cinelog/cinelog-backend/internal/app/service"
	"github.com/cinelog/cinelog-backend/internal/db"
)

// testEnv wires the full service stack against an in-memory database.
type testEnv struct {
	db *gorm.DB

	movieService  service.MovieService
	reviewService service.ReviewService
	replyService  service.ReplyService
	likeService   service.LikeService
	authService   service.AuthService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	userRepo := repository.NewUserRepository(testDB)
	categoryRepo := repository.NewCategoryRepository(testDB)
	movieRepo := repository.NewMovieRepository(testDB)
	personRepo := repository.NewPersonRepository(testDB)
	taxonomyRepo := repository.NewTaxonomyRepository(testDB)
	reviewRepo := repository.NewReviewRepository(testDB)
	replyRepo := repository.NewReplyRepository(testDB)
	likeRepo := repository.NewLikeRepository(testDB)
	notificationRepo := repository.NewNotificationRepository(testDB)
	resetRepo := repository.NewPasswordResetRepository(testDB)

	notificationService := service.NewNotificationService(notificationRepo, nil)

	return &testEnv{
		db:            testDB,
		movieService:  service.NewMovieService(movieRepo, categoryRepo, personRepo, taxonomyRepo),
		reviewService: service.NewReviewService(reviewRepo, movieRepo),
		replyService:  service.NewReplyService(replyRepo, reviewRepo, notificationService),
		likeService:   service.NewLikeService(likeRepo, movieRepo, reviewRepo, replyRepo),
		authService:   service.NewAuthService(userRepo, resetRepo, testJWTConfig()),
	}
}

func testJWTConfig() *config.JWTConfig {
	return &config.JWTConfig{
		Secret:             "test-secret",
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenExpiry: 24 * time.Hour,
	}
}

// newTestRouter returns a gin engine that pretends userID is logged in.
func newTestRouter(userID uint, role model.UserRole) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	if userID != 0 {
		router.Use(func(c *gin.Context) {
			c.Set("user_id", userID)
			c.Set("user_role", string(role))
			c.Next()
		})
	}
	return router
}

func (e *testEnv) seedUser(t *testing.T, username string) *model.User {
	t.Helper()
	user := &model.User{
		Username:     username,
		Email:        fmt.Sprintf("%s@example.com", username),
		PasswordHash: "hashed-password",
		Role:         model.RoleUser,
	}
	require.NoError(t, e.db.Create(user).Error)
	return user
}

func (e *testEnv) seedMovie(t *testing.T, name, url string) *model.Movie {
	t.Helper()
	category := &model.Category{Name: "Feature", HasItems: true}
	require.NoError(t, e.db.Where("name = ?", category.Name).FirstOrCreate(category).Error)

	release := time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC)
	movie := &model.Movie{
		Name:        name,
		URL:         url,
		CategoryID:  category.ID,
		ReleaseDate: &release,
	}
	require.NoError(t, e.db.Create(movie).Error)
	return movie
}

func (e *testEnv) seedReview(t *testing.T, userID, movieID uint, score int) *model.Review {
	t.Helper()
	review := &model.Review{
		Content: "seeded review",
		Score:   score,
		UserID:  userID,
		MovieID: movieID,
	}
	require.NoError(t, e.db.Create(review).Error)
	return review
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
