package categories

import (
	"errors"

	"github.com/spendwise/categories/models"
)

// ErrNilMapperInput is returned when a mapper is handed a nil value.
var ErrNilMapperInput = errors.New("mapper input must not be nil")

// ToCategory converts a DTO into its persisted shape. A nil ID maps to
// the zero identifier, which the repository treats as "not yet assigned".
func ToCategory(dto *CategoryDTO) (*models.Category, error) {
	if dto == nil {
		return nil, ErrNilMapperInput
	}
	category := &models.Category{
		Name: dto.Name,
	}
	if dto.ID != nil {
		category.ID = *dto.ID
	}
	return category, nil
}

// ToCategoryDTO converts a persisted category into its wire shape.
func ToCategoryDTO(category *models.Category) (*CategoryDTO, error) {
	if category == nil {
		return nil, ErrNilMapperInput
	}
	dto := &CategoryDTO{
		Name: category.Name,
	}
	if category.ID != 0 {
		id := category.ID
		dto.ID = &id
	}
	return dto, nil
}
