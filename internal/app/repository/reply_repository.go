package repository

import (
	"gorm.io/gorm"

	"github.com/cinelog/cinelog-backend/internal/app/model"
	"github.com/cinelog/cinelog-backend/internal/app/query"
)

const (
	replyLikesExpr = "SELECT COUNT(*) FROM likes WHERE likes.likeable_type = 'replies'" +
		" AND likes.likeable_id = replies.id AND likes.is_liked = TRUE"
	replyDislikesExpr = "SELECT COUNT(*) FROM likes WHERE likes.likeable_type = 'replies'" +
		" AND likes.likeable_id = replies.id AND likes.is_liked = FALSE"
	replyChildrenExpr = "SELECT COUNT(*) FROM replies AS children WHERE children.parent_id = replies.id" +
		" AND children.deleted_at IS NULL"

	// Bind-parameter variant for WHERE clauses built by query.CountEquals.
	replyReactionsWhereExpr = "SELECT COUNT(*) FROM likes WHERE likes.likeable_type = 'replies'" +
		" AND likes.likeable_id = replies.id AND likes.is_liked = ?"
)

const replyAggregates = "replies.*, " +
	"(" + replyLikesExpr + ") AS like_count, " +
	"(" + replyDislikesExpr + ") AS dislike_count, " +
	"(" + replyChildrenExpr + ") AS reply_count"

// ReplyFilters is the closed filter set of the reply list endpoints.
// username matches the owning user's name through a subquery join.
var ReplyFilters = query.FilterSet{
	"search_term":    query.Search("replies.content"),
	"username":       query.InSubquery("replies.user_id", "SELECT id FROM users WHERE username = ?"),
	"likes_count":    query.CountEquals(replyReactionsWhereExpr, true),
	"dislikes_count": query.CountEquals(replyReactionsWhereExpr, false),
	"replies_count":  query.CountEquals(replyChildrenExpr),
}

// ReplySorts is the closed sort set of the reply list endpoints. Replies
// default to conversation order.
var ReplySorts = query.SortSet{
	Default: "oldest",
	Tokens: map[string]query.Order{
		"newest":         {Expr: "replies.created_at", Desc: true},
		"oldest":         {Expr: "replies.created_at"},
		"most-likes":     {Expr: "(" + replyLikesExpr + ")", Desc: true},
		"least-likes":    {Expr: "(" + replyLikesExpr + ")"},
		"most-dislikes":  {Expr: "(" + replyDislikesExpr + ")", Desc: true},
		"least-dislikes": {Expr: "(" + replyDislikesExpr + ")"},
		"most-replies":   {Expr: "(" + replyChildrenExpr + ")", Desc: true},
		"least-replies":  {Expr: "(" + replyChildrenExpr + ")"},
	},
}

type ReplyRepository interface {
	Create(reply *model.Reply) error
	GetByID(id uint) (*model.Reply, error)
	ListForReview(reviewID uint, params query.Params) ([]model.Reply, int64, error)
	ListChildren(parentID uint, params query.Params) ([]model.Reply, int64, error)
	Update(reply *model.Reply) error
	DeleteOwned(id, userID uint) error
	Delete(id uint) error
	Exists(id uint) (bool, error)
}

type replyRepository struct {
	db *gorm.DB
}

func NewReplyRepository(db *gorm.DB) ReplyRepository {
	return &replyRepository{db: db}
}

func (r *replyRepository) Create(reply *model.Reply) error {
	return r.db.Create(reply).Error
}

func (r *replyRepository) GetByID(id uint) (*model.Reply, error) {
	var reply model.Reply
	err := r.db.Select(replyAggregates).
		Preload("User").
		Where("replies.id = ?", id).
		First(&reply).Error
	if err != nil {
		return nil, err
	}
	return &reply, nil
}

func (r *replyRepository) ListForReview(reviewID uint, params query.Params) ([]model.Reply, int64, error) {
	return r.list("replies.review_id = ?", reviewID, params)
}

func (r *replyRepository) ListChildren(parentID uint, params query.Params) ([]model.Reply, int64, error) {
	return r.list("replies.parent_id = ?", parentID, params)
}

func (r *replyRepository) list(cond string, arg uint, params query.Params) ([]model.Reply, int64, error) {
	tx := ReplyFilters.Apply(r.db.Model(&model.Reply{}).Where(cond, arg), params.Filters)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	tx = tx.Select(replyAggregates).Preload("User")
	tx, err := ReplySorts.Apply(tx, params.Sort)
	if err != nil {
		return nil, 0, err
	}

	var replies []model.Reply
	if err := params.Pagination.Apply(tx).Find(&replies).Error; err != nil {
		return nil, 0, err
	}
	return replies, total, nil
}

func (r *replyRepository) Update(reply *model.Reply) error {
	return r.db.Save(reply).Error
}

// DeleteOwned removes a reply only when it belongs to userID, so callers
// cannot tell a foreign reply from a missing one.
func (r *replyRepository) DeleteOwned(id, userID uint) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&model.Reply{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *replyRepository) Delete(id uint) error {
	result := r.db.Delete(&model.Reply{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *replyRepository) Exists(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&model.Reply{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
