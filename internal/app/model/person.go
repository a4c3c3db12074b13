package model

import (
	"time"

	"gorm.io/gorm"
)

// Person is a cast or crew member. Users can follow people.
type Person struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name      string     `gorm:"not null;index" json:"name"`
	URL       string     `gorm:"uniqueIndex;not null" json:"url"` // slug, unique across people
	IsMale    bool       `json:"is_male"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
	Bio       string     `gorm:"type:text" json:"bio"`
	PhotoURL  string     `json:"photo_url"`

	CountryID *uint    `gorm:"index" json:"country_id,omitempty"`
	Country   *Country `gorm:"foreignKey:CountryID" json:"country,omitempty"`

	Credits   []Staff     `gorm:"foreignKey:PersonID" json:"credits,omitempty"`
	Followers []Following `gorm:"foreignKey:PersonID" json:"-"`

	// Populated by list/detail queries only
	FollowerCount *int64 `gorm:"->;-:migration" json:"follower_count,omitempty"`
	MovieCount    *int64 `gorm:"->;-:migration" json:"movie_count,omitempty"`
}

func (Person) TableName() string {
	return "people"
}

// Following links a user to a person they follow.
// A user follows a person at most once.
type Following struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	UserID   uint `gorm:"not null;uniqueIndex:idx_user_person_follow" json:"user_id"`
	PersonID uint `gorm:"not null;uniqueIndex:idx_user_person_follow" json:"person_id"`

	User   *User   `gorm:"foreignKey:UserID" json:"-"`
	Person *Person `gorm:"foreignKey:PersonID" json:"person,omitempty"`
}

func (Following) TableName() string {
	return "followings"
}

// CreatePersonRequest creates a person (admin only)
type CreatePersonRequest struct {
	Name      string     `json:"name" binding:"required,min=1,max=200"`
	URL       string     `json:"url" binding:"required,min=1,max=200"`
	IsMale    bool       `json:"is_male"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
	Bio       string     `json:"bio"`
	PhotoURL  string     `json:"photo_url"`
	CountryID *uint      `json:"country_id,omitempty"`
}

// UpdatePersonRequest updates a person (admin only)
type UpdatePersonRequest struct {
	Name      *string    `json:"name,omitempty" binding:"omitempty,min=1,max=200"`
	URL       *string    `json:"url,omitempty" binding:"omitempty,min=1,max=200"`
	IsMale    *bool      `json:"is_male,omitempty"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
	Bio       *string    `json:"bio,omitempty"`
	PhotoURL  *string    `json:"photo_url,omitempty"`
	CountryID *uint      `json:"country_id,omitempty"`
}
