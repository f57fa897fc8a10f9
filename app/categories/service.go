package categories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/spendwise/categories/models"
)

// ErrInvalidCategory is returned when input fails validation, e.g. an
// empty or whitespace-only name.
var ErrInvalidCategory = errors.New("invalid category")

// CategoryStore is the persistence contract the service depends on.
type CategoryStore interface {
	Save(ctx context.Context, category *models.Category) (*models.Category, error)
	FindByID(ctx context.Context, id uint) (*models.Category, error)
	FindAll(ctx context.Context) ([]models.Category, error)
	DeleteByID(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

// Service is the business facade over the category store. It validates
// input, converts between wire and persisted shapes, and passes store
// errors through unchanged.
type Service struct {
	store    CategoryStore
	validate *validator.Validate
}

func NewService(store CategoryStore) *Service {
	return &Service{
		store:    store,
		validate: validator.New(),
	}
}

// Create persists a new category and returns it with the generated
// identifier. Any identifier supplied on the DTO is ignored.
func (s *Service) Create(ctx context.Context, dto *CategoryDTO) (*CategoryDTO, error) {
	if err := s.validateName(dto); err != nil {
		return nil, err
	}

	category, err := ToCategory(dto)
	if err != nil {
		return nil, err
	}
	category.ID = 0

	saved, err := s.store.Save(ctx, category)
	if err != nil {
		return nil, err
	}
	return ToCategoryDTO(saved)
}

func (s *Service) GetByID(ctx context.Context, id uint) (*CategoryDTO, error) {
	category, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToCategoryDTO(category)
}

func (s *Service) GetAll(ctx context.Context) ([]CategoryDTO, error) {
	categories, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]CategoryDTO, len(categories))
	for i := range categories {
		dto, err := ToCategoryDTO(&categories[i])
		if err != nil {
			return nil, err
		}
		dtos[i] = *dto
	}
	return dtos, nil
}

// Update overwrites the name of an existing category. The identifier is
// taken from the path, never from the DTO. Renaming a category to its
// current name is a no-op success.
func (s *Service) Update(ctx context.Context, id uint, dto *CategoryDTO) (*CategoryDTO, error) {
	if err := s.validateName(dto); err != nil {
		return nil, err
	}

	category, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	category.Name = strings.TrimSpace(dto.Name)
	updated, err := s.store.Save(ctx, category)
	if err != nil {
		return nil, err
	}
	return ToCategoryDTO(updated)
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	return s.store.DeleteByID(ctx, id)
}

// Count returns the number of stored categories.
func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.store.Count(ctx)
}

func (s *Service) validateName(dto *CategoryDTO) error {
	if dto == nil {
		return ErrNilMapperInput
	}
	dto.Name = strings.TrimSpace(dto.Name)
	if err := s.validate.Struct(dto); err != nil {
		return fmt.Errorf("%w: name must not be empty", ErrInvalidCategory)
	}
	return nil
}
