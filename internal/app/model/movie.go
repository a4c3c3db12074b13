package model

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Movie is a catalog entry. Review scores aggregate onto it on demand.
type Movie struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name        string     `gorm:"not null;index" json:"name"`
	URL         string     `gorm:"uniqueIndex;not null" json:"url"` // slug, unique across the catalog
	ReleaseDate *time.Time `json:"release_date,omitempty"`
	Summary     string     `gorm:"type:text" json:"summary"`
	Storyline   string     `gorm:"type:text" json:"storyline"`
	PosterURL   string     `json:"poster_url"`

	CategoryID uint      `gorm:"not null;index" json:"category_id"`
	Category   *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`

	Genres    []Genre   `gorm:"many2many:movie_genres" json:"genres,omitempty"`
	Keywords  []Keyword `gorm:"many2many:movie_keywords" json:"keywords,omitempty"`
	Companies []Company `gorm:"many2many:movie_companies" json:"companies,omitempty"`
	Languages []Language `gorm:"many2many:movie_languages" json:"languages,omitempty"`
	Countries []Country  `gorm:"many2many:movie_countries" json:"countries,omitempty"`

	Staff   []Staff  `gorm:"foreignKey:MovieID" json:"staff,omitempty"`
	Reviews []Review `gorm:"foreignKey:MovieID" json:"-"`

	// Populated by list/detail queries only
	LikeCount    *int64   `gorm:"->;-:migration" json:"like_count,omitempty"`
	DislikeCount *int64   `gorm:"->;-:migration" json:"dislike_count,omitempty"`
	ReviewCount  *int64   `gorm:"->;-:migration" json:"review_count,omitempty"`
	AvgScore     *float64 `gorm:"->;-:migration" json:"-"`
}

func (Movie) TableName() string {
	return "movies"
}

// MovieResponse renders the stored 0-100 average as a 0-10 scale string
// with two decimals. average_score is null until the first review lands.
type MovieResponse struct {
	Movie
	AverageScore *string `json:"average_score"`
}

func (m Movie) ToResponse() MovieResponse {
	resp := MovieResponse{Movie: m}
	if m.AvgScore != nil {
		s := fmt.Sprintf("%.2f", *m.AvgScore/10)
		resp.AverageScore = &s
	}
	return resp
}

// CreateMovieRequest creates a movie (admin only)
type CreateMovieRequest struct {
	Name        string     `json:"name" binding:"required,min=1,max=200"`
	URL         string     `json:"url" binding:"required,min=1,max=200"`
	CategoryID  uint       `json:"category_id" binding:"required"`
	ReleaseDate *time.Time `json:"release_date,omitempty"`
	Summary     string     `json:"summary"`
	Storyline   string     `json:"storyline"`
	PosterURL   string     `json:"poster_url"`
}

// UpdateMovieRequest updates a movie (admin only)
type UpdateMovieRequest struct {
	Name        *string    `json:"name,omitempty" binding:"omitempty,min=1,max=200"`
	URL         *string    `json:"url,omitempty" binding:"omitempty,min=1,max=200"`
	CategoryID  *uint      `json:"category_id,omitempty"`
	ReleaseDate *time.Time `json:"release_date,omitempty"`
	Summary     *string    `json:"summary,omitempty"`
	Storyline   *string    `json:"storyline,omitempty"`
	PosterURL   *string    `json:"poster_url,omitempty"`
}
