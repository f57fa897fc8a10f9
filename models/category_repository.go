package models

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrCategoryNotFound is returned when a category is not found.
var ErrCategoryNotFound = errors.New("category not found")

// ErrDuplicateCategoryName is returned when a save would violate the
// unique constraint on the category name.
var ErrDuplicateCategoryName = errors.New("category name already exists")

type CategoriesRepository struct {
	db *gorm.DB
}

func NewCategoriesRepository(db *gorm.DB) *CategoriesRepository {
	return &CategoriesRepository{
		db: db,
	}
}

// Save inserts the category when its ID is zero, assigning a new
// identifier, and updates the existing row otherwise.
func (r *CategoriesRepository) Save(ctx context.Context, category *Category) (*Category, error) {
	if err := r.db.WithContext(ctx).Save(category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateCategoryName
		}
		return nil, err
	}
	return category, nil
}

func (r *CategoriesRepository) FindByID(ctx context.Context, id uint) (*Category, error) {
	var category Category
	if err := r.db.WithContext(ctx).First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

// FindAll returns every category in primary-key order. The slice is
// empty, never nil, when the table has no rows.
func (r *CategoriesRepository) FindAll(ctx context.Context) ([]Category, error) {
	categories := make([]Category, 0)
	if err := r.db.WithContext(ctx).Order("id").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// DeleteByID removes the category in a single conditional DELETE, so a
// concurrent delete of the same id cannot race a prior existence check.
func (r *CategoriesRepository) DeleteByID(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&Category{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

func (r *CategoriesRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&Category{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
