package service

import (
	"errors"

	"github.com/cinelog/cinelog-backend/internal/app/model"
	"github.com/cinelog/cinelog-backend/internal/app/repository"
	apperrors "github.com/cinelog/cinelog-backend/internal/errors"
)

var (
	ErrLikeTargetInvalid  = errors.New("target type must be movies, reviews or replies")
	ErrLikeTargetNotFound = errors.New("the record to react to does not exist")
	ErrAlreadyReacted     = errors.New("you have already reacted this way")
	ErrNoReaction         = errors.New("you have no reaction to remove")
)

// ReactionCounts summarizes the reactions on one target.
type ReactionCounts struct {
	Likes    int64 `json:"likes"`
	Dislikes int64 `json:"dislikes"`
}

type LikeService interface {
	React(userID uint, req *model.ReactionRequest) (*model.Like, error)
	Unreact(userID uint, likeableType string, likeableID uint) error
	Counts(likeableType string, likeableID uint) (*ReactionCounts, error)
}

type likeService struct {
	likeRepo   repository.LikeRepository
	movieRepo  repository.MovieRepository
	reviewRepo repository.ReviewRepository
	replyRepo  repository.ReplyRepository
}

func NewLikeService(
	likeRepo repository.LikeRepository,
	movieRepo repository.MovieRepository,
	reviewRepo repository.ReviewRepository,
	replyRepo repository.ReplyRepository,
) LikeService {
	return &likeService{
		likeRepo:   likeRepo,
		movieRepo:  movieRepo,
		reviewRepo: reviewRepo,
		replyRepo:  replyRepo,
	}
}

// targetExists dispatches the existence check on the type tag.
func (s *likeService) targetExists(likeableType model.LikeableType, likeableID uint) (bool, error) {
	switch likeableType {
	case model.LikeableMovie:
		return s.movieRepo.Exists(likeableID)
	case model.LikeableReview:
		return s.reviewRepo.Exists(likeableID)
	case model.LikeableReply:
		return s.replyRepo.Exists(likeableID)
	}
	return false, ErrLikeTargetInvalid
}

// React records a like or dislike. Any existing reaction on the target is
// a conflict, whatever its direction; switching sides means removing the
// old reaction first. The unique index has the last word when two
// requests race.
func (s *likeService) React(userID uint, req *model.ReactionRequest) (*model.Like, error) {
	likeableType, ok := model.ParseLikeableType(req.LikeableType)
	if !ok {
		return nil, ErrLikeTargetInvalid
	}

	exists, err := s.targetExists(likeableType, req.LikeableID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrLikeTargetNotFound
	}

	like := &model.Like{
		UserID:       userID,
		LikeableType: likeableType,
		LikeableID:   req.LikeableID,
		IsLiked:      *req.IsLiked,
	}
	if err := s.likeRepo.Create(like); err != nil {
		if apperrors.IsDuplicateKey(err) {
			return nil, ErrAlreadyReacted
		}
		return nil, err
	}
	return like, nil
}

// Unreact clears the caller's reaction regardless of direction.
func (s *likeService) Unreact(userID uint, likeableType string, likeableID uint) error {
	parsed, ok := model.ParseLikeableType(likeableType)
	if !ok {
		return ErrLikeTargetInvalid
	}

	if err := s.likeRepo.Delete(userID, parsed, likeableID); err != nil {
		if apperrors.IsNotFound(err) {
			return ErrNoReaction
		}
		return err
	}
	return nil
}

func (s *likeService) Counts(likeableType string, likeableID uint) (*ReactionCounts, error) {
	parsed, ok := model.ParseLikeableType(likeableType)
	if !ok {
		return nil, ErrLikeTargetInvalid
	}

	exists, err := s.targetExists(parsed, likeableID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrLikeTargetNotFound
	}

	likes, err := s.likeRepo.Count(parsed, likeableID, true)
	if err != nil {
		return nil, err
	}
	dislikes, err := s.likeRepo.Count(parsed, likeableID, false)
	if err != nil {
		return nil, err
	}
	return &ReactionCounts{Likes: likes, Dislikes: dislikes}, nil
}
