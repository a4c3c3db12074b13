package service

import (
	"errors"
	"math"
	"strconv"

	"github.com/cinelog/cinelog-backend/internal/app/model"
	"github.com/cinelog/cinelog-backend/internal/app/query"
	"github.com/cinelog/cinelog-backend/internal/app/repository"
	apperrors "github.com/cinelog/cinelog-backend/internal/errors"
)

var (
	ErrReviewNotFound      = errors.New("review not found")
	ErrReviewAlreadyExists = errors.New("you have already reviewed this movie")

	// ErrReviewNotOwned deliberately covers both a missing review and a
	// review owned by someone else, so callers cannot probe which it was.
	ErrReviewNotOwned = errors.New("review not found or not created by you")
)

type ReviewService interface {
	Create(userID, movieID uint, req *model.CreateReviewRequest) (*model.Review, error)
	GetByID(id uint) (*model.Review, error)
	List(params query.Params) ([]model.Review, int64, error)
	ListForMovie(movieID uint, params query.Params) ([]model.Review, int64, error)
	Update(id, userID uint, req *model.UpdateReviewRequest) (*model.Review, error)
	Delete(id, userID uint, role model.UserRole) error
}

type reviewService struct {
	reviewRepo repository.ReviewRepository
	movieRepo  repository.MovieRepository
}

func NewReviewService(reviewRepo repository.ReviewRepository, movieRepo repository.MovieRepository) ReviewService {
	return &reviewService{reviewRepo: reviewRepo, movieRepo: movieRepo}
}

// clientScore converts the client's 0-10 score to the stored 0-100 scale.
func clientScore(score float64) int {
	return int(math.Round(score * 10))
}

func uintToString(n uint) string {
	return strconv.FormatUint(uint64(n), 10)
}

func (s *reviewService) Create(userID, movieID uint, req *model.CreateReviewRequest) (*model.Review, error) {
	exists, err := s.movieRepo.Exists(movieID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrMovieNotFound
	}

	review := &model.Review{
		Content: req.Content,
		Score:   clientScore(req.Score),
		UserID:  userID,
		MovieID: movieID,
	}
	if err := s.reviewRepo.Create(review); err != nil {
		if apperrors.IsDuplicateKey(err) {
			return nil, ErrReviewAlreadyExists
		}
		return nil, err
	}
	return s.reviewRepo.GetByID(review.ID)
}

func (s *reviewService) GetByID(id uint) (*model.Review, error) {
	review, err := s.reviewRepo.GetByID(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return review, nil
}

func (s *reviewService) List(params query.Params) ([]model.Review, int64, error) {
	return s.reviewRepo.List(params)
}

// ListForMovie scopes the generic review listing to one movie. The movie
// filter wins over whatever the client passed.
func (s *reviewService) ListForMovie(movieID uint, params query.Params) ([]model.Review, int64, error) {
	exists, err := s.movieRepo.Exists(movieID)
	if err != nil {
		return nil, 0, err
	}
	if !exists {
		return nil, 0, ErrMovieNotFound
	}

	if params.Filters == nil {
		params.Filters = query.Filters{}
	}
	params.Filters["movie"] = uintToString(movieID)
	return s.reviewRepo.List(params)
}

func (s *reviewService) Update(id, userID uint, req *model.UpdateReviewRequest) (*model.Review, error) {
	review, err := s.reviewRepo.GetByID(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, ErrReviewNotOwned
		}
		return nil, err
	}
	if review.UserID != userID {
		return nil, ErrReviewNotOwned
	}

	if req.Content != nil {
		review.Content = *req.Content
	}
	if req.Score != nil {
		review.Score = clientScore(*req.Score)
	}

	if err := s.reviewRepo.Update(review); err != nil {
		return nil, err
	}
	return review, nil
}

// Delete removes the caller's own review; admins can remove anyone's.
func (s *reviewService) Delete(id, userID uint, role model.UserRole) error {
	var err error
	if role == model.RoleAdmin {
		err = s.reviewRepo.Delete(id)
	} else {
		err = s.reviewRepo.DeleteOwned(id, userID)
	}
	if err != nil {
		if apperrors.IsNotFound(err) {
			if role == model.RoleAdmin {
				return ErrReviewNotFound
			}
			return ErrReviewNotOwned
		}
		return err
	}
	return nil
}
