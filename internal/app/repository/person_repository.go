package repository

import (
	"gorm.io/gorm"

	"github.com/cinelog/cinelog-backend/internal/app/model"
	"github.com/cinelog/cinelog-backend/internal/app/query"
)

const (
	personFollowersExpr = "SELECT COUNT(*) FROM followings WHERE followings.person_id = people.id"
	personCreditsExpr   = "SELECT COUNT(DISTINCT staff.movie_id) FROM staff WHERE staff.person_id = people.id"
)

const personAggregates = "people.*, " +
	"(" + personFollowersExpr + ") AS follower_count, " +
	"(" + personCreditsExpr + ") AS movie_count"

// PersonFilters is the closed filter set of the people list endpoint.
// gender takes the literal tokens male/female.
var PersonFilters = query.FilterSet{
	"search_term":     query.Search("people.name"),
	"url":             query.Equal("people.url"),
	"gender":          query.BoolToken("people.is_male", "male", "female"),
	"followers_count": query.CountEquals(personFollowersExpr),
	"medias_count":    query.CountEquals(personCreditsExpr),
}

// PersonSorts is the closed sort set of the people list endpoint.
// youngest/oldest order by birth date, the *-created pair by row age.
var PersonSorts = query.SortSet{
	Default: "newest-created",
	Tokens: map[string]query.Order{
		"newest-created":  {Expr: "people.created_at", Desc: true},
		"oldest-created":  {Expr: "people.created_at"},
		"youngest":        {Expr: "people.birth_date", Desc: true},
		"oldest":          {Expr: "people.birth_date"},
		"most-followers":  {Expr: "(" + personFollowersExpr + ")", Desc: true},
		"least-followers": {Expr: "(" + personFollowersExpr + ")"},
		"most-movies":     {Expr: "(" + personCreditsExpr + ")", Desc: true},
		"least-movies":    {Expr: "(" + personCreditsExpr + ")"},
	},
}

type PersonRepository interface {
	Create(person *model.Person) error
	GetByID(id uint) (*model.Person, error)
	GetByURL(url string) (*model.Person, error)
	List(params query.Params) ([]model.Person, int64, error)
	Update(person *model.Person) error
	Delete(id uint) error
	Exists(id uint) (bool, error)

	CreateFollowing(following *model.Following) error
	DeleteFollowing(userID, personID uint) error
	ListFollowings(userID uint, p query.Pagination) ([]model.Following, int64, error)
}

type personRepository struct {
	db *gorm.DB
}

func NewPersonRepository(db *gorm.DB) PersonRepository {
	return &personRepository{db: db}
}

func (r *personRepository) Create(person *model.Person) error {
	return r.db.Create(person).Error
}

func (r *personRepository) GetByID(id uint) (*model.Person, error) {
	return r.getOne("people.id = ?", id)
}

func (r *personRepository) GetByURL(url string) (*model.Person, error) {
	return r.getOne("people.url = ?", url)
}

func (r *personRepository) getOne(cond string, arg interface{}) (*model.Person, error) {
	var person model.Person
	err := r.db.Select(personAggregates).
		Preload("Country").
		Preload("Credits").
		Preload("Credits.Movie").
		Where(cond, arg).
		First(&person).Error
	if err != nil {
		return nil, err
	}
	return &person, nil
}

func (r *personRepository) List(params query.Params) ([]model.Person, int64, error) {
	tx := PersonFilters.Apply(r.db.Model(&model.Person{}), params.Filters)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	tx = tx.Select(personAggregates).Preload("Country")
	tx, err := PersonSorts.Apply(tx, params.Sort)
	if err != nil {
		return nil, 0, err
	}

	var people []model.Person
	if err := params.Pagination.Apply(tx).Find(&people).Error; err != nil {
		return nil, 0, err
	}
	return people, total, nil
}

func (r *personRepository) Update(person *model.Person) error {
	return r.db.Save(person).Error
}

func (r *personRepository) Delete(id uint) error {
	result := r.db.Delete(&model.Person{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *personRepository) Exists(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&model.Person{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *personRepository) CreateFollowing(following *model.Following) error {
	return r.db.Create(following).Error
}

func (r *personRepository) DeleteFollowing(userID, personID uint) error {
	result := r.db.Where("user_id = ? AND person_id = ?", userID, personID).
		Delete(&model.Following{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *personRepository) ListFollowings(userID uint, p query.Pagination) ([]model.Following, int64, error) {
	tx := r.db.Model(&model.Following{}).Where("user_id = ?", userID)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var followings []model.Following
	err := p.Apply(tx.Preload("Person").Order("created_at DESC").Order("id ASC")).
		Find(&followings).Error
	if err != nil {
		return nil, 0, err
	}
	return followings, total, nil
}
