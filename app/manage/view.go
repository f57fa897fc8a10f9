package manage

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 2)

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	toastOKStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	toastErrStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)
)

func tableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))
	return s
}

// View renders the screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Expense Categories"))
	b.WriteString("  ")
	b.WriteString(countStyle.Render(fmt.Sprintf("%d active", m.count)))
	b.WriteString("\n\n")

	switch m.mode {
	case modeCreate, modeEdit:
		b.WriteString(m.dialogView())
	case modeConfirmDelete:
		b.WriteString(m.confirmView())
	default:
		b.WriteString(m.table.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("a add · e edit · d delete · r refresh · q quit"))
	}

	if m.toast != "" {
		b.WriteString("\n\n")
		if m.toastIsError {
			b.WriteString(toastErrStyle.Render(m.toast))
		} else {
			b.WriteString(toastOKStyle.Render(m.toast))
		}
	}

	b.WriteString("\n")
	return b.String()
}

func (m Model) dialogView() string {
	title := "New category"
	if m.mode == modeEdit {
		title = fmt.Sprintf("Edit category #%d", m.editingID)
	}

	var body strings.Builder
	body.WriteString(lipgloss.NewStyle().Bold(true).Render(title))
	body.WriteString("\n\n")
	body.WriteString(m.input.View())
	if m.inputError != "" {
		body.WriteString("\n")
		body.WriteString(errorStyle.Render(m.inputError))
	}
	body.WriteString("\n\n")
	body.WriteString(helpStyle.Render("enter save · esc cancel"))

	return dialogStyle.Render(body.String())
}

func (m Model) confirmView() string {
	var body strings.Builder
	body.WriteString(lipgloss.NewStyle().Bold(true).Render("Delete category"))
	body.WriteString("\n\n")
	body.WriteString(fmt.Sprintf("Really delete category #%d?", m.editingID))
	body.WriteString("\n\n")
	body.WriteString(helpStyle.Render("y delete · n cancel"))

	return dialogStyle.Render(body.String())
}
