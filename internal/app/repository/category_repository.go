package repository

import (
	"gorm.io/gorm"

	"github.com/cinelog/cinelog-backend/internal/app/model"
	"github.com/cinelog/cinelog-backend/internal/app/query"
)

const categoryMoviesExpr = "SELECT COUNT(*) FROM movies WHERE movies.category_id = categories.id" +
	" AND movies.deleted_at IS NULL"

const categoryAggregates = "categories.*, (" + categoryMoviesExpr + ") AS movie_count"

// CategoryFilters is the closed filter set of the category list endpoint.
var CategoryFilters = query.FilterSet{
	"search_term": query.Search("categories.name"),
}

// CategorySorts is the closed sort set of the category list endpoint.
var CategorySorts = query.SortSet{
	Default: "newest",
	Tokens: map[string]query.Order{
		"newest":       {Expr: "categories.created_at", Desc: true},
		"oldest":       {Expr: "categories.created_at"},
		"most-movies":  {Expr: "(" + categoryMoviesExpr + ")", Desc: true},
		"least-movies": {Expr: "(" + categoryMoviesExpr + ")"},
	},
}

type CategoryRepository interface {
	Create(category *model.Category) error
	GetByID(id uint) (*model.Category, error)
	GetByName(name string) (*model.Category, error)
	List(params query.Params) ([]model.Category, int64, error)
	Tree() ([]model.Category, error)
	Update(category *model.Category) error
	Delete(id uint) error
	Exists(id uint) (bool, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(category *model.Category) error {
	return r.db.Create(category).Error
}

func (r *categoryRepository) GetByID(id uint) (*model.Category, error) {
	var category model.Category
	err := r.db.Select(categoryAggregates).
		Preload("Children").
		Where("categories.id = ?", id).
		First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) GetByName(name string) (*model.Category, error) {
	var category model.Category
	if err := r.db.Where("name = ?", name).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// List returns a flat page of categories.
func (r *categoryRepository) List(params query.Params) ([]model.Category, int64, error) {
	tx := CategoryFilters.Apply(r.db.Model(&model.Category{}), params.Filters)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	tx = tx.Select(categoryAggregates)
	tx, err := CategorySorts.Apply(tx, params.Sort)
	if err != nil {
		return nil, 0, err
	}

	var categories []model.Category
	if err := params.Pagination.Apply(tx).Find(&categories).Error; err != nil {
		return nil, 0, err
	}
	return categories, total, nil
}

// Tree returns the root categories with their children preloaded, both
// levels ordered by name.
func (r *categoryRepository) Tree() ([]model.Category, error) {
	var categories []model.Category
	err := r.db.Select(categoryAggregates).
		Where("parent_id IS NULL").
		Preload("Children", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("categories.name ASC")
		}).
		Order("categories.name ASC").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) Update(category *model.Category) error {
	return r.db.Save(category).Error
}

func (r *categoryRepository) Delete(id uint) error {
	result := r.db.Delete(&model.Category{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *categoryRepository) Exists(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&model.Category{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
