package model

import (
	"time"

	"gorm.io/gorm"
)

// Category groups movies; categories may nest one level deep or more
type Category struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name     string `gorm:"uniqueIndex;not null" json:"name"`
	HasItems bool   `gorm:"default:false" json:"has_items"`

	ParentID *uint      `gorm:"index" json:"parent_id,omitempty"`
	Parent   *Category  `gorm:"foreignKey:ParentID" json:"-"`
	Children []Category `gorm:"foreignKey:ParentID" json:"children,omitempty"`

	Movies []Movie `gorm:"foreignKey:CategoryID" json:"-"`

	// Populated by list queries only
	MovieCount *int64 `gorm:"->;-:migration" json:"movie_count,omitempty"`
}

func (Category) TableName() string {
	return "categories"
}

// CreateCategoryRequest creates a category (admin only)
type CreateCategoryRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=100"`
	ParentID *uint  `json:"parent_id,omitempty"`
	HasItems bool   `json:"has_items"`
}

// UpdateCategoryRequest updates a category (admin only)
type UpdateCategoryRequest struct {
	Name     *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	ParentID *uint   `json:"parent_id,omitempty"`
	HasItems *bool   `json:"has_items,omitempty"`
}
