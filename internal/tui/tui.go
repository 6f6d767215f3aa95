package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bymeSatya/TaskPilot-AI/internal/tasks"
)

// RunAddTaskTUI starts the interactive create-task form.
func RunAddTaskTUI(svc *tasks.Service, prefilled map[string]string) error {
	model := NewAddTaskModel(svc, prefilled)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	// Handle exit messages after the TUI closes
	if m, ok := finalModel.(AddTaskModel); ok {
		if m.cancelled {
			fmt.Println("❌ Task creation cancelled.")
		} else if m.created != nil {
			fmt.Printf("✅ New task \"%s\" added - ID: %s\n", m.created.Title, m.created.ID)
		} else if m.err != nil {
			fmt.Printf("❌ Error: %v\n", m.err)
		}
	}

	return nil
}

// RunListTUI starts the interactive task browser.
func RunListTUI(svc *tasks.Service) error {
	model := NewListModel(svc)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
