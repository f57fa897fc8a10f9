package categories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendwise/categories/models"
)

func uintPtr(v uint) *uint {
	return &v
}

func TestToCategory(t *testing.T) {
	t.Run("with id", func(t *testing.T) {
		category, err := ToCategory(&CategoryDTO{ID: uintPtr(7), Name: "Groceries"})
		require.NoError(t, err)
		assert.EqualValues(t, 7, category.ID)
		assert.Equal(t, "Groceries", category.Name)
	})

	t.Run("without id", func(t *testing.T) {
		category, err := ToCategory(&CategoryDTO{Name: "Groceries"})
		require.NoError(t, err)
		assert.Zero(t, category.ID)
	})

	t.Run("nil input", func(t *testing.T) {
		_, err := ToCategory(nil)
		assert.ErrorIs(t, err, ErrNilMapperInput)
	})
}

func TestToCategoryDTO(t *testing.T) {
	t.Run("persisted category", func(t *testing.T) {
		dto, err := ToCategoryDTO(&models.Category{ID: 7, Name: "Groceries"})
		require.NoError(t, err)
		require.NotNil(t, dto.ID)
		assert.EqualValues(t, 7, *dto.ID)
		assert.Equal(t, "Groceries", dto.Name)
	})

	t.Run("unsaved category has null id", func(t *testing.T) {
		dto, err := ToCategoryDTO(&models.Category{Name: "Groceries"})
		require.NoError(t, err)
		assert.Nil(t, dto.ID)
	})

	t.Run("nil input", func(t *testing.T) {
		_, err := ToCategoryDTO(nil)
		assert.ErrorIs(t, err, ErrNilMapperInput)
	})
}

func TestMapperRoundTrip(t *testing.T) {
	testCases := []CategoryDTO{
		{ID: uintPtr(1), Name: "Groceries"},
		{ID: uintPtr(99), Name: "Rent & Utilities"},
		{Name: "Transport"},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			category, err := ToCategory(&tc)
			require.NoError(t, err)

			back, err := ToCategoryDTO(category)
			require.NoError(t, err)
			assert.Equal(t, tc, *back)
		})
	}
}
