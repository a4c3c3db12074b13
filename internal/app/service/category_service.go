package service

import (
	"errors"

	"github.com/cinelog/cinelog-backend/internal/app/model"
	"github.com/cinelog/cinelog-backend/internal/app/query"
	"github.com/cinelog/cinelog-backend/internal/app/repository"
	apperrors "github.com/cinelog/cinelog-backend/internal/errors"
)

var (
	ErrCategoryNotFound   = errors.New("category not found")
	ErrCategoryNameExists = errors.New("a category with this name already exists")
)

type CategoryService interface {
	Create(req *model.CreateCategoryRequest) (*model.Category, error)
	GetByID(id uint) (*model.Category, error)
	List(params query.Params) ([]model.Category, int64, error)
	Tree() ([]model.Category, error)
	Update(id uint, req *model.UpdateCategoryRequest) (*model.Category, error)
	Delete(id uint) error
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) Create(req *model.CreateCategoryRequest) (*model.Category, error) {
	if req.ParentID != nil {
		exists, err := s.categoryRepo.Exists(*req.ParentID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, ErrCategoryNotFound
		}
	}

	category := &model.Category{
		Name:     req.Name,
		ParentID: req.ParentID,
		HasItems: req.HasItems,
	}
	if err := s.categoryRepo.Create(category); err != nil {
		if apperrors.IsDuplicateKey(err) {
			return nil, ErrCategoryNameExists
		}
		return nil, err
	}
	return category, nil
}

func (s *categoryService) GetByID(id uint) (*model.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

func (s *categoryService) List(params query.Params) ([]model.Category, int64, error) {
	return s.categoryRepo.List(params)
}

func (s *categoryService) Tree() ([]model.Category, error) {
	return s.categoryRepo.Tree()
}

func (s *categoryService) Update(id uint, req *model.UpdateCategoryRequest) (*model.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.ParentID != nil {
		exists, err := s.categoryRepo.Exists(*req.ParentID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, ErrCategoryNotFound
		}
		category.ParentID = req.ParentID
	}
	if req.HasItems != nil {
		category.HasItems = *req.HasItems
	}

	if err := s.categoryRepo.Update(category); err != nil {
		if apperrors.IsDuplicateKey(err) {
			return nil, ErrCategoryNameExists
		}
		return nil, err
	}
	return category, nil
}

func (s *categoryService) Delete(id uint) error {
	if err := s.categoryRepo.Delete(id); err != nil {
		if apperrors.IsNotFound(err) {
			return ErrCategoryNotFound
		}
		return err
	}
	return nil
}
