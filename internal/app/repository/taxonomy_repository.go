package repository

import (
	"gorm.io/gorm"

	"github.com/cinelog/cinelog-backend/internal/app/model"
	apperrors "github.com/cinelog/cinelog-backend/internal/errors"
)

// TaxonomyRepository manages taxonomy terms and their movie attachments.
// Genres, keywords and companies are created on first attach; languages
// and countries must already exist.
type TaxonomyRepository interface {
	FirstOrCreateGenre(name string) (*model.Genre, error)
	FirstOrCreateKeyword(name string) (*model.Keyword, error)
	FirstOrCreateCompany(name string) (*model.Company, error)
	GetLanguageByName(name string) (*model.Language, error)
	GetCountryByName(name string) (*model.Country, error)
	CreateLanguage(language *model.Language) error
	CreateCountry(country *model.Country) error
	ListLanguages() ([]model.Language, error)
	ListCountries() ([]model.Country, error)

	GenreExists(id uint) (bool, error)
	KeywordExists(id uint) (bool, error)
	CompanyExists(id uint) (bool, error)
	LanguageExists(id uint) (bool, error)
	CountryExists(id uint) (bool, error)

	AttachGenre(movieID, genreID uint) error
	DetachGenre(movieID, genreID uint) error
	AttachKeyword(movieID, keywordID uint) error
	DetachKeyword(movieID, keywordID uint) error
	AttachCompany(movieID, companyID uint) error
	DetachCompany(movieID, companyID uint) error
	AttachLanguage(movieID, languageID uint) error
	DetachLanguage(movieID, languageID uint) error
	AttachCountry(movieID, countryID uint) error
	DetachCountry(movieID, countryID uint) error

	AssignStaff(staff *model.Staff) error
	RemoveStaff(movieID, personID uint, job model.StaffJob) error
	ListStaff(movieID uint) ([]model.Staff, error)
}

type taxonomyRepository struct {
	db *gorm.DB
}

func NewTaxonomyRepository(db *gorm.DB) TaxonomyRepository {
	return &taxonomyRepository{db: db}
}

// firstOrCreate retries the lookup once when a concurrent insert wins the
// race on the name's unique index.
func (r *taxonomyRepository) firstOrCreate(dest interface{}, name string) error {
	err := r.db.Where("name = ?", name).FirstOrCreate(dest).Error
	if err != nil && apperrors.IsDuplicateKey(err) {
		return r.db.Where("name = ?", name).First(dest).Error
	}
	return err
}

func (r *taxonomyRepository) FirstOrCreateGenre(name string) (*model.Genre, error) {
	genre := model.Genre{Name: name}
	if err := r.firstOrCreate(&genre, name); err != nil {
		return nil, err
	}
	return &genre, nil
}

func (r *taxonomyRepository) FirstOrCreateKeyword(name string) (*model.Keyword, error) {
	keyword := model.Keyword{Name: name}
	if err := r.firstOrCreate(&keyword, name); err != nil {
		return nil, err
	}
	return &keyword, nil
}

func (r *taxonomyRepository) FirstOrCreateCompany(name string) (*model.Company, error) {
	company := model.Company{Name: name}
	if err := r.firstOrCreate(&company, name); err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *taxonomyRepository) GetLanguageByName(name string) (*model.Language, error) {
	var language model.Language
	if err := r.db.Where("name = ?", name).First(&language).Error; err != nil {
		return nil, err
	}
	return &language, nil
}

func (r *taxonomyRepository) GetCountryByName(name string) (*model.Country, error) {
	var country model.Country
	if err := r.db.Where("name = ?", name).First(&country).Error; err != nil {
		return nil, err
	}
	return &country, nil
}

func (r *taxonomyRepository) CreateLanguage(language *model.Language) error {
	return r.db.Create(language).Error
}

func (r *taxonomyRepository) CreateCountry(country *model.Country) error {
	return r.db.Create(country).Error
}

func (r *taxonomyRepository) ListLanguages() ([]model.Language, error) {
	var languages []model.Language
	if err := r.db.Order("name ASC").Find(&languages).Error; err != nil {
		return nil, err
	}
	return languages, nil
}

func (r *taxonomyRepository) ListCountries() ([]model.Country, error) {
	var countries []model.Country
	if err := r.db.Order("name ASC").Find(&countries).Error; err != nil {
		return nil, err
	}
	return countries, nil
}

func (r *taxonomyRepository) termExists(term interface{}, id uint) (bool, error) {
	var count int64
	if err := r.db.Model(term).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *taxonomyRepository) GenreExists(id uint) (bool, error) {
	return r.termExists(&model.Genre{}, id)
}

func (r *taxonomyRepository) KeywordExists(id uint) (bool, error) {
	return r.termExists(&model.Keyword{}, id)
}

func (r *taxonomyRepository) CompanyExists(id uint) (bool, error) {
	return r.termExists(&model.Company{}, id)
}

func (r *taxonomyRepository) LanguageExists(id uint) (bool, error) {
	return r.termExists(&model.Language{}, id)
}

func (r *taxonomyRepository) CountryExists(id uint) (bool, error) {
	return r.termExists(&model.Country{}, id)
}

// detach deletes a join row, reporting gorm.ErrRecordNotFound when the
// pair was never attached.
func (r *taxonomyRepository) detach(pivot interface{}, cond string, movieID, termID uint) error {
	result := r.db.Where(cond, movieID, termID).Delete(pivot)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *taxonomyRepository) AttachGenre(movieID, genreID uint) error {
	return r.db.Create(&model.MovieGenre{MovieID: movieID, GenreID: genreID}).Error
}

func (r *taxonomyRepository) DetachGenre(movieID, genreID uint) error {
	return r.detach(&model.MovieGenre{}, "movie_id = ? AND genre_id = ?", movieID, genreID)
}

func (r *taxonomyRepository) AttachKeyword(movieID, keywordID uint) error {
	return r.db.Create(&model.MovieKeyword{MovieID: movieID, KeywordID: keywordID}).Error
}

func (r *taxonomyRepository) DetachKeyword(movieID, keywordID uint) error {
	return r.detach(&model.MovieKeyword{}, "movie_id = ? AND keyword_id = ?", movieID, keywordID)
}

func (r *taxonomyRepository) AttachCompany(movieID, companyID uint) error {
	return r.db.Create(&model.MovieCompany{MovieID: movieID, CompanyID: companyID}).Error
}

func (r *taxonomyRepository) DetachCompany(movieID, companyID uint) error {
	return r.detach(&model.MovieCompany{}, "movie_id = ? AND company_id = ?", movieID, companyID)
}

func (r *taxonomyRepository) AttachLanguage(movieID, languageID uint) error {
	return r.db.Create(&model.MovieLanguage{MovieID: movieID, LanguageID: languageID}).Error
}

func (r *taxonomyRepository) DetachLanguage(movieID, languageID uint) error {
	return r.detach(&model.MovieLanguage{}, "movie_id = ? AND language_id = ?", movieID, languageID)
}

func (r *taxonomyRepository) AttachCountry(movieID, countryID uint) error {
	return r.db.Create(&model.MovieCountry{MovieID: movieID, CountryID: countryID}).Error
}

func (r *taxonomyRepository) DetachCountry(movieID, countryID uint) error {
	return r.detach(&model.MovieCountry{}, "movie_id = ? AND country_id = ?", movieID, countryID)
}

func (r *taxonomyRepository) AssignStaff(staff *model.Staff) error {
	return r.db.Create(staff).Error
}

func (r *taxonomyRepository) RemoveStaff(movieID, personID uint, job model.StaffJob) error {
	result := r.db.Where("movie_id = ? AND person_id = ? AND job = ?", movieID, personID, job).
		Delete(&model.Staff{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *taxonomyRepository) ListStaff(movieID uint) ([]model.Staff, error) {
	var staff []model.Staff
	err := r.db.Where("movie_id = ?", movieID).
		Preload("Person").
		Order("job ASC").Order("id ASC").
		Find(&staff).Error
	if err != nil {
		return nil, err
	}
	return staff, nil
}
