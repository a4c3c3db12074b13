package model

import "time"

// Taxonomy terms. Genres, keywords and companies are created on first use
// when attached to a movie; languages and countries come from a fixed pool.

type Genre struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name"`
}

func (Genre) TableName() string {
	return "genres"
}

type Keyword struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name"`
}

func (Keyword) TableName() string {
	return "keywords"
}

type Company struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name"`
}

func (Company) TableName() string {
	return "companies"
}

type Language struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name"`
}

func (Language) TableName() string {
	return "languages"
}

type Country struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name"`
	Code      string    `gorm:"type:varchar(3);uniqueIndex;not null" json:"code"` // ISO 3166-1 alpha-2/3
}

func (Country) TableName() string {
	return "countries"
}

// Join rows. Each movie/term pair exists at most once; the unique index
// is what actually enforces it under concurrent attaches.

type MovieGenre struct {
	ID      uint `gorm:"primarykey"`
	MovieID uint `gorm:"not null;uniqueIndex:idx_movie_genre"`
	GenreID uint `gorm:"not null;uniqueIndex:idx_movie_genre"`
}

func (MovieGenre) TableName() string {
	return "movie_genres"
}

type MovieKeyword struct {
	ID        uint `gorm:"primarykey"`
	MovieID   uint `gorm:"not null;uniqueIndex:idx_movie_keyword"`
	KeywordID uint `gorm:"not null;uniqueIndex:idx_movie_keyword"`
}

func (MovieKeyword) TableName() string {
	return "movie_keywords"
}

type MovieCompany struct {
	ID        uint `gorm:"primarykey"`
	MovieID   uint `gorm:"not null;uniqueIndex:idx_movie_company"`
	CompanyID uint `gorm:"not null;uniqueIndex:idx_movie_company"`
}

func (MovieCompany) TableName() string {
	return "movie_companies"
}

type MovieLanguage struct {
	ID         uint `gorm:"primarykey"`
	MovieID    uint `gorm:"not null;uniqueIndex:idx_movie_language"`
	LanguageID uint `gorm:"not null;uniqueIndex:idx_movie_language"`
}

func (MovieLanguage) TableName() string {
	return "movie_languages"
}

type MovieCountry struct {
	ID        uint `gorm:"primarykey"`
	MovieID   uint `gorm:"not null;uniqueIndex:idx_movie_country"`
	CountryID uint `gorm:"not null;uniqueIndex:idx_movie_country"`
}

func (MovieCountry) TableName() string {
	return "movie_countries"
}

// AttachTermRequest attaches a taxonomy term to a movie by name.
type AttachTermRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}
