package repository

import (
	"math"
	"strconv"

	"gorm.io/gorm"

	"github.com/cinelog/cinelog-backend/internal/app/model"
	"github.com/cinelog/cinelog-backend/internal/app/query"
)

// Correlated subqueries over the likes and reviews tables. Literal
// TRUE/FALSE works on both postgres and sqlite (3.23+), so these can sit
// inside SELECT and ORDER BY clauses that take no bind parameters.
const (
	movieLikesExpr = "SELECT COUNT(*) FROM likes WHERE likes.likeable_type = 'movies'" +
		" AND likes.likeable_id = movies.id AND likes.is_liked = TRUE"
	movieDislikesExpr = "SELECT COUNT(*) FROM likes WHERE likes.likeable_type = 'movies'" +
		" AND likes.likeable_id = movies.id AND likes.is_liked = FALSE"
	movieReviewsExpr = "SELECT COUNT(*) FROM reviews WHERE reviews.movie_id = movies.id" +
		" AND reviews.deleted_at IS NULL"
	movieAvgScoreExpr = "SELECT AVG(reviews.score) FROM reviews WHERE reviews.movie_id = movies.id" +
		" AND reviews.deleted_at IS NULL"

	// Bind-parameter variant for WHERE clauses built by query.CountEquals.
	movieReactionsWhereExpr = "SELECT COUNT(*) FROM likes WHERE likes.likeable_type = 'movies'" +
		" AND likes.likeable_id = movies.id AND likes.is_liked = ?"
)

const movieAggregates = "movies.*, " +
	"(" + movieLikesExpr + ") AS like_count, " +
	"(" + movieDislikesExpr + ") AS dislike_count, " +
	"(" + movieReviewsExpr + ") AS review_count, " +
	"(" + movieAvgScoreExpr + ") AS avg_score"

// avgScoreEquals matches movies whose review average equals a client
// 0-10 score. Values outside the scale or non-numeric are ignored.
func avgScoreEquals(db *gorm.DB, value string) *gorm.DB {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || f < 0 || f > 10 {
		return db
	}
	return db.Where("("+movieAvgScoreExpr+") = ?", int(math.Round(f*10)))
}

// MovieFilters is the closed filter set of the movie list endpoint.
// category filters by the category's name, not its id.
var MovieFilters = query.FilterSet{
	"search_term":    query.Search("movies.name"),
	"url":            query.Equal("movies.url"),
	"category":       query.InSubquery("movies.category_id", "SELECT id FROM categories WHERE name = ?"),
	"release_date":   query.DateEquals("movies.release_date"),
	"score":          avgScoreEquals,
	"likes_count":    query.CountEquals(movieReactionsWhereExpr, true),
	"dislikes_count": query.CountEquals(movieReactionsWhereExpr, false),
	"reviews_count":  query.CountEquals(movieReviewsExpr),
}

// MovieSorts is the closed sort set of the movie list endpoint. Unreviewed
// movies sort after reviewed ones in both score directions; COALESCE puts
// their NULL average outside the 0-100 score range.
var MovieSorts = query.SortSet{
	Default: "newest",
	Tokens: map[string]query.Order{
		"newest":         {Expr: "movies.created_at", Desc: true},
		"oldest":         {Expr: "movies.created_at"},
		"newest-release": {Expr: "movies.release_date", Desc: true},
		"oldest-release": {Expr: "movies.release_date"},
		"most-likes":     {Expr: "(" + movieLikesExpr + ")", Desc: true},
		"least-likes":    {Expr: "(" + movieLikesExpr + ")"},
		"most-dislikes":  {Expr: "(" + movieDislikesExpr + ")", Desc: true},
		"least-dislikes": {Expr: "(" + movieDislikesExpr + ")"},
		"most-reviews":   {Expr: "(" + movieReviewsExpr + ")", Desc: true},
		"least-reviews":  {Expr: "(" + movieReviewsExpr + ")"},
		"best-reviewed":  {Expr: "COALESCE((" + movieAvgScoreExpr + "), -1)", Desc: true},
		"worst-reviewed": {Expr: "COALESCE((" + movieAvgScoreExpr + "), 101)"},
	},
}

type MovieRepository interface {
	Create(movie *model.Movie) error
	GetByID(id uint) (*model.Movie, error)
	GetByURL(url string) (*model.Movie, error)
	List(params query.Params) ([]model.Movie, int64, error)
	ListAll() ([]model.Movie, error)
	Update(movie *model.Movie) error
	Delete(id uint) error
	Exists(id uint) (bool, error)
}

type movieRepository struct {
	db *gorm.DB
}

func NewMovieRepository(db *gorm.DB) MovieRepository {
	return &movieRepository{db: db}
}

func (r *movieRepository) Create(movie *model.Movie) error {
	return r.db.Create(movie).Error
}

func (r *movieRepository) GetByID(id uint) (*model.Movie, error) {
	return r.getOne("movies.id = ?", id)
}

func (r *movieRepository) GetByURL(url string) (*model.Movie, error) {
	return r.getOne("movies.url = ?", url)
}

func (r *movieRepository) getOne(cond string, arg interface{}) (*model.Movie, error) {
	var movie model.Movie
	err := r.db.Select(movieAggregates).
		Preload("Category").
		Preload("Genres").
		Preload("Keywords").
		Preload("Companies").
		Preload("Languages").
		Preload("Countries").
		Preload("Staff").
		Preload("Staff.Person").
		Where(cond, arg).
		First(&movie).Error
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

func (r *movieRepository) List(params query.Params) ([]model.Movie, int64, error) {
	tx := MovieFilters.Apply(r.db.Model(&model.Movie{}), params.Filters)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	tx = tx.Select(movieAggregates).
		Preload("Category").
		Preload("Genres")
	tx, err := MovieSorts.Apply(tx, params.Sort)
	if err != nil {
		return nil, 0, err
	}

	var movies []model.Movie
	if err := params.Pagination.Apply(tx).Find(&movies).Error; err != nil {
		return nil, 0, err
	}
	return movies, total, nil
}

// ListAll loads the whole catalog with aggregates, for exports.
func (r *movieRepository) ListAll() ([]model.Movie, error) {
	var movies []model.Movie
	err := r.db.Model(&model.Movie{}).
		Select(movieAggregates).
		Preload("Category").
		Order("movies.id ASC").
		Find(&movies).Error
	if err != nil {
		return nil, err
	}
	return movies, nil
}

func (r *movieRepository) Update(movie *model.Movie) error {
	return r.db.Save(movie).Error
}

func (r *movieRepository) Delete(id uint) error {
	result := r.db.Delete(&model.Movie{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *movieRepository) Exists(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&model.Movie{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
