package service

import (
	"errors"

	"github.com/cinelog/cinelog-backend/internal/app/model"
	"github.com/cinelog/cinelog-backend/internal/app/query"
	"github.com/cinelog/cinelog-backend/internal/app/repository"
	apperrors "github.com/cinelog/cinelog-backend/internal/errors"
)

var (
	ErrPersonNotFound   = errors.New("person not found")
	ErrPersonURLExists  = errors.New("a person with this url already exists")
	ErrAlreadyFollowing = errors.New("already following this person")
	ErrNotFollowing     = errors.New("not following this person")
)

type PersonService interface {
	Create(req *model.CreatePersonRequest) (*model.Person, error)
	GetByID(id uint) (*model.Person, error)
	GetByURL(url string) (*model.Person, error)
	List(params query.Params) ([]model.Person, int64, error)
	Update(id uint, req *model.UpdatePersonRequest) (*model.Person, error)
	Delete(id uint) error

	Follow(userID, personID uint) error
	Unfollow(userID, personID uint) error
	ListFollowings(userID uint, p query.Pagination) ([]model.Following, int64, error)
}

type personService struct {
	personRepo repository.PersonRepository
}

func NewPersonService(personRepo repository.PersonRepository) PersonService {
	return &personService{personRepo: personRepo}
}

func (s *personService) Create(req *model.CreatePersonRequest) (*model.Person, error) {
	person := &model.Person{
		Name:      req.Name,
		URL:       req.URL,
		IsMale:    req.IsMale,
		BirthDate: req.BirthDate,
		Bio:       req.Bio,
		PhotoURL:  req.PhotoURL,
		CountryID: req.CountryID,
	}
	if err := s.personRepo.Create(person); err != nil {
		if apperrors.IsDuplicateKey(err) {
			return nil, ErrPersonURLExists
		}
		return nil, err
	}
	return person, nil
}

func (s *personService) GetByID(id uint) (*model.Person, error) {
	person, err := s.personRepo.GetByID(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, ErrPersonNotFound
		}
		return nil, err
	}
	return person, nil
}

func (s *personService) GetByURL(url string) (*model.Person, error) {
	person, err := s.personRepo.GetByURL(url)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, ErrPersonNotFound
		}
		return nil, err
	}
	return person, nil
}

func (s *personService) List(params query.Params) ([]model.Person, int64, error) {
	return s.personRepo.List(params)
}

func (s *personService) Update(id uint, req *model.UpdatePersonRequest) (*model.Person, error) {
	person, err := s.personRepo.GetByID(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, ErrPersonNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		person.Name = *req.Name
	}
	if req.URL != nil {
		person.URL = *req.URL
	}
	if req.IsMale != nil {
		person.IsMale = *req.IsMale
	}
	if req.BirthDate != nil {
		person.BirthDate = req.BirthDate
	}
	if req.Bio != nil {
		person.Bio = *req.Bio
	}
	if req.PhotoURL != nil {
		person.PhotoURL = *req.PhotoURL
	}
	if req.CountryID != nil {
		person.CountryID = req.CountryID
	}

	if err := s.personRepo.Update(person); err != nil {
		if apperrors.IsDuplicateKey(err) {
			return nil, ErrPersonURLExists
		}
		return nil, err
	}
	return person, nil
}

func (s *personService) Delete(id uint) error {
	if err := s.personRepo.Delete(id); err != nil {
		if apperrors.IsNotFound(err) {
			return ErrPersonNotFound
		}
		return err
	}
	return nil
}

func (s *personService) Follow(userID, personID uint) error {
	exists, err := s.personRepo.Exists(personID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrPersonNotFound
	}

	err = s.personRepo.CreateFollowing(&model.Following{UserID: userID, PersonID: personID})
	if err != nil {
		if apperrors.IsDuplicateKey(err) {
			return ErrAlreadyFollowing
		}
		return err
	}
	return nil
}

func (s *personService) Unfollow(userID, personID uint) error {
	if err := s.personRepo.DeleteFollowing(userID, personID); err != nil {
		if apperrors.IsNotFound(err) {
			return ErrNotFollowing
		}
		return err
	}
	return nil
}

func (s *personService) ListFollowings(userID uint, p query.Pagination) ([]model.Following, int64, error) {
	return s.personRepo.ListFollowings(userID, p)
}
