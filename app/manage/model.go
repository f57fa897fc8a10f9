// Package manage implements the interactive category management screen:
// a listing table with create/edit dialogs, delete confirmation, a live
// item count, and transient toast notifications.
package manage

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/spendwise/categories/app/categories"
)

// CategoryService is the slice of the business facade the screen uses.
type CategoryService interface {
	Create(ctx context.Context, dto *categories.CategoryDTO) (*categories.CategoryDTO, error)
	GetAll(ctx context.Context) ([]categories.CategoryDTO, error)
	Update(ctx context.Context, id uint, dto *categories.CategoryDTO) (*categories.CategoryDTO, error)
	Delete(ctx context.Context, id uint) error
}

type mode int

const (
	modeList mode = iota
	modeCreate
	modeEdit
	modeConfirmDelete
)

// Model is the bubbletea model for the management screen.
type Model struct {
	service CategoryService

	table table.Model
	input textinput.Model
	mode  mode

	// categories mirrors the table rows; count is recomputed from it on
	// every refresh instead of being updated imperatively per mutation.
	categories []categories.CategoryDTO
	count      int

	editingID  uint
	inputError string

	toast        string
	toastIsError bool

	width    int
	quitting bool
}

// NewModel builds the screen around the given service.
func NewModel(service CategoryService) Model {
	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Name", Width: 40},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	t.SetStyles(tableStyles())

	input := textinput.New()
	input.Placeholder = "Category name..."
	input.CharLimit = 100

	return Model{
		service: service,
		table:   t,
		input:   input,
		width:   80,
	}
}

// Init loads the initial listing.
func (m Model) Init() tea.Cmd {
	return loadCategories(m.service)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case categoriesLoadedMsg:
		if msg.err != nil {
			return m.showToast("Failed to load categories: "+msg.err.Error(), true)
		}
		m.categories = msg.categories
		m.count = len(msg.categories)
		rows := make([]table.Row, len(msg.categories))
		for i, c := range msg.categories {
			id := ""
			if c.ID != nil {
				id = strconv.FormatUint(uint64(*c.ID), 10)
			}
			rows[i] = table.Row{id, c.Name}
		}
		m.table.SetRows(rows)
		return m, nil

	case mutationDoneMsg:
		if msg.err != nil {
			model, cmd := m.showToast(msg.failure+": "+msg.err.Error(), true)
			return model, tea.Batch(cmd, loadCategories(m.service))
		}
		model, cmd := m.showToast(msg.success, false)
		return model, tea.Batch(cmd, loadCategories(m.service))

	case clearToastMsg:
		m.toast = ""
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeList:
			return m.updateList(msg)
		case modeCreate, modeEdit:
			return m.updateDialog(msg)
		case modeConfirmDelete:
			return m.updateConfirm(msg)
		}
	}

	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "a":
		m.mode = modeCreate
		m.input.SetValue("")
		m.inputError = ""
		m.input.Focus()
		return m, textinput.Blink

	case "e", "enter":
		selected, ok := m.selectedCategory()
		if !ok {
			return m, nil
		}
		m.mode = modeEdit
		m.editingID = *selected.ID
		m.input.SetValue(selected.Name)
		m.input.CursorEnd()
		m.inputError = ""
		m.input.Focus()
		return m, textinput.Blink

	case "d":
		selected, ok := m.selectedCategory()
		if !ok {
			return m, nil
		}
		m.mode = modeConfirmDelete
		m.editingID = *selected.ID
		return m, nil

	case "r":
		return m, loadCategories(m.service)
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) updateDialog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeList
		m.input.Blur()
		return m, nil

	case "enter":
		name := strings.TrimSpace(m.input.Value())
		if name == "" {
			// Keep the dialog open and the input focused.
			m.inputError = "Name must not be empty"
			m.input.SetValue("")
			m.input.Focus()
			return m, textinput.Blink
		}

		editing := m.mode == modeEdit
		m.mode = modeList
		m.input.Blur()
		m.inputError = ""
		if editing {
			return m, updateCategory(m.service, m.editingID, name)
		}
		return m, createCategory(m.service, name)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		m.mode = modeList
		return m, deleteCategory(m.service, m.editingID)
	case "n", "esc":
		m.mode = modeList
		return m, nil
	}
	return m, nil
}

func (m Model) selectedCategory() (categories.CategoryDTO, bool) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.categories) || m.categories[idx].ID == nil {
		return categories.CategoryDTO{}, false
	}
	return m.categories[idx], true
}

func (m Model) showToast(text string, isError bool) (Model, tea.Cmd) {
	m.toast = text
	m.toastIsError = isError
	return m, clearToastAfter()
}
