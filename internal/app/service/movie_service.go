package service

import (
	"errors"

	"github.com/cinelog/cinelog-backend/internal/app/model"
	"github.com/cinelog/cinelog-backend/internal/app/query"
	"github.com/cinelog/cinelog-backend/internal/app/repository"
	apperrors "github.com/cinelog/cinelog-backend/internal/errors"
	"github.com/cinelog/cinelog-backend/pkg/logger"
)

var (
	ErrMovieNotFound       = errors.New("movie not found")
	ErrMovieURLExists      = errors.New("a movie with this url already exists")
	ErrTermNotFound        = errors.New("taxonomy term not found")
	ErrTermAlreadyAttached = errors.New("term already attached to this movie")
	ErrTermNotAttached     = errors.New("term is not attached to this movie")
	ErrInvalidStaffJob     = errors.New("invalid staff job")
	ErrStaffAlreadyAssigned = errors.New("person already assigned to this movie with this job")
	ErrStaffNotAssigned     = errors.New("person is not assigned to this movie with this job")
)

type MovieService interface {
	Create(req *model.CreateMovieRequest) (*model.Movie, error)
	GetByID(id uint) (*model.Movie, error)
	GetByURL(url string) (*model.Movie, error)
	List(params query.Params) ([]model.Movie, int64, error)
	ListAll() ([]model.Movie, error)
	Update(id uint, req *model.UpdateMovieRequest) (*model.Movie, error)
	Delete(id uint) error

	AttachGenre(movieID uint, name string) (*model.Genre, error)
	DetachGenre(movieID, genreID uint) error
	AttachKeyword(movieID uint, name string) (*model.Keyword, error)
	DetachKeyword(movieID, keywordID uint) error
	AttachCompany(movieID uint, name string) (*model.Company, error)
	DetachCompany(movieID, companyID uint) error
	AttachLanguage(movieID uint, name string) (*model.Language, error)
	DetachLanguage(movieID, languageID uint) error
	AttachCountry(movieID uint, name string) (*model.Country, error)
	DetachCountry(movieID, countryID uint) error

	AssignStaff(movieID uint, req *model.AssignStaffRequest) (*model.Staff, error)
	RemoveStaff(movieID, personID uint, job string) error
	ListStaff(movieID uint) ([]model.Staff, error)
}

type movieService struct {
	movieRepo    repository.MovieRepository
	categoryRepo repository.CategoryRepository
	personRepo   repository.PersonRepository
	taxonomyRepo repository.TaxonomyRepository
}

func NewMovieService(
	movieRepo repository.MovieRepository,
	categoryRepo repository.CategoryRepository,
	personRepo repository.PersonRepository,
	taxonomyRepo repository.TaxonomyRepository,
) MovieService {
	return &movieService{
		movieRepo:    movieRepo,
		categoryRepo: categoryRepo,
		personRepo:   personRepo,
		taxonomyRepo: taxonomyRepo,
	}
}

func (s *movieService) Create(req *model.CreateMovieRequest) (*model.Movie, error) {
	exists, err := s.categoryRepo.Exists(req.CategoryID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrCategoryNotFound
	}

	movie := &model.Movie{
		Name:        req.Name,
		URL:         req.URL,
		CategoryID:  req.CategoryID,
		ReleaseDate: req.ReleaseDate,
		Summary:     req.Summary,
		Storyline:   req.Storyline,
		PosterURL:   req.PosterURL,
	}
	if err := s.movieRepo.Create(movie); err != nil {
		if apperrors.IsDuplicateKey(err) {
			return nil, ErrMovieURLExists
		}
		return nil, err
	}

	logger.Info("movie created", map[string]interface{}{
		"movie_id": movie.ID,
		"url":      movie.URL,
	})
	return movie, nil
}

func (s *movieService) GetByID(id uint) (*model.Movie, error) {
	movie, err := s.movieRepo.GetByID(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	return movie, nil
}

func (s *movieService) GetByURL(url string) (*model.Movie, error) {
	movie, err := s.movieRepo.GetByURL(url)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	return movie, nil
}

func (s *movieService) List(params query.Params) ([]model.Movie, int64, error) {
	return s.movieRepo.List(params)
}

func (s *movieService) ListAll() ([]model.Movie, error) {
	return s.movieRepo.ListAll()
}

func (s *movieService) Update(id uint, req *model.UpdateMovieRequest) (*model.Movie, error) {
	movie, err := s.movieRepo.GetByID(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		movie.Name = *req.Name
	}
	if req.URL != nil {
		movie.URL = *req.URL
	}
	if req.CategoryID != nil {
		exists, err := s.categoryRepo.Exists(*req.CategoryID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, ErrCategoryNotFound
		}
		movie.CategoryID = *req.CategoryID
	}
	if req.ReleaseDate != nil {
		movie.ReleaseDate = req.ReleaseDate
	}
	if req.Summary != nil {
		movie.Summary = *req.Summary
	}
	if req.Storyline != nil {
		movie.Storyline = *req.Storyline
	}
	if req.PosterURL != nil {
		movie.PosterURL = *req.PosterURL
	}

	if err := s.movieRepo.Update(movie); err != nil {
		if apperrors.IsDuplicateKey(err) {
			return nil, ErrMovieURLExists
		}
		return nil, err
	}
	return movie, nil
}

func (s *movieService) Delete(id uint) error {
	if err := s.movieRepo.Delete(id); err != nil {
		if apperrors.IsNotFound(err) {
			return ErrMovieNotFound
		}
		return err
	}
	return nil
}

// requireMovie is the shared existence gate for taxonomy and staff ops.
func (s *movieService) requireMovie(movieID uint) error {
	exists, err := s.movieRepo.Exists(movieID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrMovieNotFound
	}
	return nil
}

// attach translates the join-row insert result. The unique pair index
// decides conflicts, not a lookup beforehand.
func attach(err error) error {
	if err == nil {
		return nil
	}
	if apperrors.IsDuplicateKey(err) {
		return ErrTermAlreadyAttached
	}
	return err
}

// detach translates the join-row delete result. A missing pivot means the
// term was never attached; a missing term is reported separately by
// requireTerm.
func detach(err error) error {
	if err == nil {
		return nil
	}
	if apperrors.IsNotFound(err) {
		return ErrTermNotAttached
	}
	return err
}

// requireTerm turns a term existence check into ErrTermNotFound.
func requireTerm(exists bool, err error) error {
	if err != nil {
		return err
	}
	if !exists {
		return ErrTermNotFound
	}
	return nil
}

func (s *movieService) AttachGenre(movieID uint, name string) (*model.Genre, error) {
	if err := s.requireMovie(movieID); err != nil {
		return nil, err
	}
	genre, err := s.taxonomyRepo.FirstOrCreateGenre(name)
	if err != nil {
		return nil, err
	}
	if err := attach(s.taxonomyRepo.AttachGenre(movieID, genre.ID)); err != nil {
		return nil, err
	}
	return genre, nil
}

func (s *movieService) DetachGenre(movieID, genreID uint) error {
	if err := s.requireMovie(movieID); err != nil {
		return err
	}
	if err := requireTerm(s.taxonomyRepo.GenreExists(genreID)); err != nil {
		return err
	}
	return detach(s.taxonomyRepo.DetachGenre(movieID, genreID))
}

func (s *movieService) AttachKeyword(movieID uint, name string) (*model.Keyword, error) {
	if err := s.requireMovie(movieID); err != nil {
		return nil, err
	}
	keyword, err := s.taxonomyRepo.FirstOrCreateKeyword(name)
	if err != nil {
		return nil, err
	}
	if err := attach(s.taxonomyRepo.AttachKeyword(movieID, keyword.ID)); err != nil {
		return nil, err
	}
	return keyword, nil
}

func (s *movieService) DetachKeyword(movieID, keywordID uint) error {
	if err := s.requireMovie(movieID); err != nil {
		return err
	}
	if err := requireTerm(s.taxonomyRepo.KeywordExists(keywordID)); err != nil {
		return err
	}
	return detach(s.taxonomyRepo.DetachKeyword(movieID, keywordID))
}

func (s *movieService) AttachCompany(movieID uint, name string) (*model.Company, error) {
	if err := s.requireMovie(movieID); err != nil {
		return nil, err
	}
	company, err := s.taxonomyRepo.FirstOrCreateCompany(name)
	if err != nil {
		return nil, err
	}
	if err := attach(s.taxonomyRepo.AttachCompany(movieID, company.ID)); err != nil {
		return nil, err
	}
	return company, nil
}

func (s *movieService) DetachCompany(movieID, companyID uint) error {
	if err := s.requireMovie(movieID); err != nil {
		return err
	}
	if err := requireTerm(s.taxonomyRepo.CompanyExists(companyID)); err != nil {
		return err
	}
	return detach(s.taxonomyRepo.DetachCompany(movieID, companyID))
}

// AttachLanguage only links existing languages; the language pool is
// closed, unlike genres, keywords and companies.
func (s *movieService) AttachLanguage(movieID uint, name string) (*model.Language, error) {
	if err := s.requireMovie(movieID); err != nil {
		return nil, err
	}
	language, err := s.taxonomyRepo.GetLanguageByName(name)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, ErrTermNotFound
		}
		return nil, err
	}
	if err := attach(s.taxonomyRepo.AttachLanguage(movieID, language.ID)); err != nil {
		return nil, err
	}
	return language, nil
}

func (s *movieService) DetachLanguage(movieID, languageID uint) error {
	if err := s.requireMovie(movieID); err != nil {
		return err
	}
	if err := requireTerm(s.taxonomyRepo.LanguageExists(languageID)); err != nil {
		return err
	}
	return detach(s.taxonomyRepo.DetachLanguage(movieID, languageID))
}

// AttachCountry only links existing countries, same as languages.
func (s *movieService) AttachCountry(movieID uint, name string) (*model.Country, error) {
	if err := s.requireMovie(movieID); err != nil {
		return nil, err
	}
	country, err := s.taxonomyRepo.GetCountryByName(name)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, ErrTermNotFound
		}
		return nil, err
	}
	if err := attach(s.taxonomyRepo.AttachCountry(movieID, country.ID)); err != nil {
		return nil, err
	}
	return country, nil
}

func (s *movieService) DetachCountry(movieID, countryID uint) error {
	if err := s.requireMovie(movieID); err != nil {
		return err
	}
	if err := requireTerm(s.taxonomyRepo.CountryExists(countryID)); err != nil {
		return err
	}
	return detach(s.taxonomyRepo.DetachCountry(movieID, countryID))
}

func (s *movieService) AssignStaff(movieID uint, req *model.AssignStaffRequest) (*model.Staff, error) {
	if err := s.requireMovie(movieID); err != nil {
		return nil, err
	}

	job, ok := model.ParseStaffJob(req.Job)
	if !ok {
		return nil, ErrInvalidStaffJob
	}

	exists, err := s.personRepo.Exists(req.PersonID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrPersonNotFound
	}

	staff := &model.Staff{MovieID: movieID, PersonID: req.PersonID, Job: job}
	if err := s.taxonomyRepo.AssignStaff(staff); err != nil {
		if apperrors.IsDuplicateKey(err) {
			return nil, ErrStaffAlreadyAssigned
		}
		return nil, err
	}
	return staff, nil
}

func (s *movieService) RemoveStaff(movieID, personID uint, job string) error {
	if err := s.requireMovie(movieID); err != nil {
		return err
	}

	parsed, ok := model.ParseStaffJob(job)
	if !ok {
		return ErrInvalidStaffJob
	}

	if err := s.taxonomyRepo.RemoveStaff(movieID, personID, parsed); err != nil {
		if apperrors.IsNotFound(err) {
			return ErrStaffNotAssigned
		}
		return err
	}
	return nil
}

func (s *movieService) ListStaff(movieID uint) ([]model.Staff, error) {
	if err := s.requireMovie(movieID); err != nil {
		return nil, err
	}
	return s.taxonomyRepo.ListStaff(movieID)
}
