package models_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendwise/categories/db"
	"github.com/spendwise/categories/models"
)

func createTestRepository(t *testing.T) *models.CategoriesRepository {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	conn, err := db.Open("sqlite", dbPath)
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&models.Category{}))

	t.Cleanup(func() {
		if sqlDB, err := conn.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return models.NewCategoriesRepository(conn)
}

func TestSaveInsertAssignsID(t *testing.T) {
	repo := createTestRepository(t)
	ctx := context.Background()

	saved, err := repo.Save(ctx, &models.Category{Name: "Groceries"})
	require.NoError(t, err)
	assert.NotZero(t, saved.ID)
	assert.Equal(t, "Groceries", saved.Name)

	found, err := repo.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, found.ID)
	assert.Equal(t, "Groceries", found.Name)
}

func TestSaveDuplicateName(t *testing.T) {
	repo := createTestRepository(t)
	ctx := context.Background()

	_, err := repo.Save(ctx, &models.Category{Name: "Groceries"})
	require.NoError(t, err)

	_, err = repo.Save(ctx, &models.Category{Name: "Groceries"})
	assert.ErrorIs(t, err, models.ErrDuplicateCategoryName)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestSaveUpdateExistingRow(t *testing.T) {
	repo := createTestRepository(t)
	ctx := context.Background()

	saved, err := repo.Save(ctx, &models.Category{Name: "Groceries"})
	require.NoError(t, err)

	saved.Name = "Transport"
	updated, err := repo.Save(ctx, saved)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, updated.ID)

	found, err := repo.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "Transport", found.Name)
}

func TestSaveUpdateKeepingSameNameIsNoOp(t *testing.T) {
	repo := createTestRepository(t)
	ctx := context.Background()

	saved, err := repo.Save(ctx, &models.Category{Name: "Groceries"})
	require.NoError(t, err)

	// Re-saving the row with its current name must not collide with
	// its own unique index entry.
	_, err = repo.Save(ctx, saved)
	assert.NoError(t, err)
}

func TestSaveUpdateToTakenName(t *testing.T) {
	repo := createTestRepository(t)
	ctx := context.Background()

	_, err := repo.Save(ctx, &models.Category{Name: "Groceries"})
	require.NoError(t, err)
	second, err := repo.Save(ctx, &models.Category{Name: "Transport"})
	require.NoError(t, err)

	second.Name = "Groceries"
	_, err = repo.Save(ctx, second)
	assert.ErrorIs(t, err, models.ErrDuplicateCategoryName)
}

func TestFindByIDNotFound(t *testing.T) {
	repo := createTestRepository(t)

	_, err := repo.FindByID(context.Background(), 42)
	assert.ErrorIs(t, err, models.ErrCategoryNotFound)
}

func TestFindAllEmptyStore(t *testing.T) {
	repo := createTestRepository(t)

	all, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestFindAllReturnsInsertionOrder(t *testing.T) {
	repo := createTestRepository(t)
	ctx := context.Background()

	for _, name := range []string{"Groceries", "Transport", "Entertainment"} {
		_, err := repo.Save(ctx, &models.Category{Name: name})
		require.NoError(t, err)
	}

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Groceries", all[0].Name)
	assert.Equal(t, "Transport", all[1].Name)
	assert.Equal(t, "Entertainment", all[2].Name)
}

func TestDeleteByID(t *testing.T) {
	repo := createTestRepository(t)
	ctx := context.Background()

	saved, err := repo.Save(ctx, &models.Category{Name: "Groceries"})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteByID(ctx, saved.ID))

	_, err = repo.FindByID(ctx, saved.ID)
	assert.ErrorIs(t, err, models.ErrCategoryNotFound)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestDeleteByIDNotFound(t *testing.T) {
	repo := createTestRepository(t)

	err := repo.DeleteByID(context.Background(), 42)
	assert.ErrorIs(t, err, models.ErrCategoryNotFound)
}

func TestCount(t *testing.T) {
	repo := createTestRepository(t)
	ctx := context.Background()

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	_, err = repo.Save(ctx, &models.Category{Name: "Groceries"})
	require.NoError(t, err)
	_, err = repo.Save(ctx, &models.Category{Name: "Transport"})
	require.NoError(t, err)

	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}
