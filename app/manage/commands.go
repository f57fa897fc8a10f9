package manage

import (
	"context"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/spendwise/categories/app/categories"
)

const toastDuration = 3 * time.Second

// categoriesLoadedMsg carries a fresh listing (or the failure to get one).
type categoriesLoadedMsg struct {
	categories []categories.CategoryDTO
	err        error
}

// mutationDoneMsg reports the outcome of a create, update, or delete.
type mutationDoneMsg struct {
	success string
	failure string
	err     error
}

type clearToastMsg struct{}

func loadCategories(service CategoryService) tea.Cmd {
	return func() tea.Msg {
		list, err := service.GetAll(context.Background())
		return categoriesLoadedMsg{categories: list, err: err}
	}
}

func createCategory(service CategoryService, name string) tea.Cmd {
	return func() tea.Msg {
		_, err := service.Create(context.Background(), &categories.CategoryDTO{Name: name})
		return mutationDoneMsg{
			success: "Category " + strconv.Quote(name) + " created",
			failure: "Failed to create category",
			err:     err,
		}
	}
}

func updateCategory(service CategoryService, id uint, name string) tea.Cmd {
	return func() tea.Msg {
		_, err := service.Update(context.Background(), id, &categories.CategoryDTO{Name: name})
		return mutationDoneMsg{
			success: "Category renamed to " + strconv.Quote(name),
			failure: "Failed to update category",
			err:     err,
		}
	}
}

func deleteCategory(service CategoryService, id uint) tea.Cmd {
	return func() tea.Msg {
		err := service.Delete(context.Background(), id)
		return mutationDoneMsg{
			success: "Category deleted",
			failure: "Failed to delete category",
			err:     err,
		}
	}
}

func clearToastAfter() tea.Cmd {
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return clearToastMsg{}
	})
}
