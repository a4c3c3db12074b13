package repository

import (
	"math"
	"strconv"

	"gorm.io/gorm"

	"github.com/cinelog/cinelog-backend/internal/app/model"
	"github.com/cinelog/cinelog-backend/internal/app/query"
)

const (
	reviewLikesExpr = "SELECT COUNT(*) FROM likes WHERE likes.likeable_type = 'reviews'" +
		" AND likes.likeable_id = reviews.id AND likes.is_liked = TRUE"
	reviewDislikesExpr = "SELECT COUNT(*) FROM likes WHERE likes.likeable_type = 'reviews'" +
		" AND likes.likeable_id = reviews.id AND likes.is_liked = FALSE"
	reviewRepliesExpr = "SELECT COUNT(*) FROM replies WHERE replies.review_id = reviews.id" +
		" AND replies.deleted_at IS NULL"

	reviewReactionsWhereExpr = "SELECT COUNT(*) FROM likes WHERE likes.likeable_type = 'reviews'" +
		" AND likes.likeable_id = reviews.id AND likes.is_liked = ?"
)

const reviewAggregates = "reviews.*, " +
	"(" + reviewLikesExpr + ") AS like_count, " +
	"(" + reviewDislikesExpr + ") AS dislike_count, " +
	"(" + reviewRepliesExpr + ") AS reply_count"

// scoreEquals filters on the client-facing 0-10 scale and compares
// against the stored 0-100 integer. Out-of-range or malformed values are
// ignored like any other unparsable count filter.
func scoreEquals(column string) query.Predicate {
	return func(db *gorm.DB, value string) *gorm.DB {
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f < 0 || f > 10 {
			return db
		}
		return db.Where(column+" = ?", int(math.Round(f*10)))
	}
}

// ReviewFilters is the closed filter set of the review list endpoints.
var ReviewFilters = query.FilterSet{
	"movie":          query.EqualUint("reviews.movie_id"),
	"user":           query.EqualUint("reviews.user_id"),
	"username":       query.InSubquery("reviews.user_id", "SELECT id FROM users WHERE username = ?"),
	"search_term":    query.Search("reviews.content"),
	"score":          scoreEquals("reviews.score"),
	"likes_count":    query.CountEquals(reviewReactionsWhereExpr, true),
	"dislikes_count": query.CountEquals(reviewReactionsWhereExpr, false),
	"replies_count":  query.CountEquals(reviewRepliesExpr),
}

// ReviewSorts is the closed sort set of the review list endpoints.
var ReviewSorts = query.SortSet{
	Default: "newest",
	Tokens: map[string]query.Order{
		"newest":         {Expr: "reviews.created_at", Desc: true},
		"oldest":         {Expr: "reviews.created_at"},
		"best":           {Expr: "reviews.score", Desc: true},
		"worst":          {Expr: "reviews.score"},
		"most-likes":     {Expr: "(" + reviewLikesExpr + ")", Desc: true},
		"least-likes":    {Expr: "(" + reviewLikesExpr + ")"},
		"most-dislikes":  {Expr: "(" + reviewDislikesExpr + ")", Desc: true},
		"least-dislikes": {Expr: "(" + reviewDislikesExpr + ")"},
		"most-replies":   {Expr: "(" + reviewRepliesExpr + ")", Desc: true},
		"least-replies":  {Expr: "(" + reviewRepliesExpr + ")"},
	},
}

type ReviewRepository interface {
	Create(review *model.Review) error
	GetByID(id uint) (*model.Review, error)
	List(params query.Params) ([]model.Review, int64, error)
	Update(review *model.Review) error
	DeleteOwned(id, userID uint) error
	Delete(id uint) error
	Exists(id uint) (bool, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(review *model.Review) error {
	return r.db.Create(review).Error
}

func (r *reviewRepository) GetByID(id uint) (*model.Review, error) {
	var review model.Review
	err := r.db.Select(reviewAggregates).
		Preload("User").
		Where("reviews.id = ?", id).
		First(&review).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) List(params query.Params) ([]model.Review, int64, error) {
	tx := ReviewFilters.Apply(r.db.Model(&model.Review{}), params.Filters)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	tx = tx.Select(reviewAggregates).Preload("User")
	tx, err := ReviewSorts.Apply(tx, params.Sort)
	if err != nil {
		return nil, 0, err
	}

	var reviews []model.Review
	if err := params.Pagination.Apply(tx).Find(&reviews).Error; err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

func (r *reviewRepository) Update(review *model.Review) error {
	return r.db.Save(review).Error
}

// DeleteOwned removes a review only when it belongs to userID. A missing
// row and a row owned by someone else are indistinguishable here, which
// is exactly what the service reports to clients.
func (r *reviewRepository) DeleteOwned(id, userID uint) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&model.Review{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *reviewRepository) Delete(id uint) error {
	result := r.db.Delete(&model.Review{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *reviewRepository) Exists(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&model.Review{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
