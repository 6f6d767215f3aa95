package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bymeSatya/TaskPilot-AI/internal/metrics"
	"github.com/bymeSatya/TaskPilot-AI/internal/models"
	"github.com/bymeSatya/TaskPilot-AI/internal/tasks"
	"github.com/bymeSatya/TaskPilot-AI/internal/timeutil"
)

// ListModel represents the TUI model for browsing tasks
type ListModel struct {
	width  int
	height int

	svc   *tasks.Service
	tasks []models.Task

	// UI state
	selectedTask int // index in tasks slice
	focus        Focus
	statusMsg    string

	// Pagination
	currentPage  int
	tasksPerPage int
}

// Focus represents what UI element has focus
type Focus int

const (
	FocusTable Focus = iota
	FocusDetail
)

// NewListModel creates a new list TUI model
func NewListModel(svc *tasks.Service) ListModel {
	return ListModel{
		svc:          svc,
		tasks:        svc.List(tasks.Filter{}),
		focus:        FocusTable,
		tasksPerPage: 10,
	}
}

// Init initializes the model
func (m ListModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// Height - header(2) - pagination(1) - help(1) - borders(4) = rows
		availableHeight := m.height - 8
		if availableHeight < 3 {
			availableHeight = 3
		}
		m.tasksPerPage = availableHeight
		return m, nil

	case tea.KeyMsg:
		if m.focus == FocusDetail {
			switch msg.String() {
			case "esc", "enter", "q":
				m.focus = FocusTable
				return m, nil
			case "ctrl+c":
				return m, tea.Quit
			}
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit

		case "up", "k":
			return m.moveSelectionUp(), nil

		case "down", "j":
			return m.moveSelectionDown(), nil

		case "left", "h":
			return m.prevPage(), nil

		case "right", "l":
			return m.nextPage(), nil

		case "enter":
			if len(m.tasks) > 0 {
				m.focus = FocusDetail
			}
			return m, nil

		case "d":
			return m.setSelectedStatus(string(models.StatusClosed)), nil

		case "r":
			return m.setSelectedStatus(string(models.StatusOpen)), nil

		case "x":
			return m.deleteSelected(), nil
		}
	}

	return m, nil
}

func (m ListModel) moveSelectionUp() ListModel {
	if m.selectedTask > 0 {
		m.selectedTask--
		m.currentPage = m.selectedTask / m.tasksPerPage
	}
	return m
}

func (m ListModel) moveSelectionDown() ListModel {
	if m.selectedTask < len(m.tasks)-1 {
		m.selectedTask++
		m.currentPage = m.selectedTask / m.tasksPerPage
	}
	return m
}

func (m ListModel) prevPage() ListModel {
	if m.currentPage > 0 {
		m.currentPage--
		m.selectedTask = m.currentPage * m.tasksPerPage
	}
	return m
}

func (m ListModel) nextPage() ListModel {
	if (m.currentPage+1)*m.tasksPerPage < len(m.tasks) {
		m.currentPage++
		m.selectedTask = m.currentPage * m.tasksPerPage
	}
	return m
}

func (m ListModel) setSelectedStatus(status string) ListModel {
	if len(m.tasks) == 0 {
		return m
	}
	task := m.tasks[m.selectedTask]
	if _, err := m.svc.SetStatus(task.ID, status); err != nil {
		m.statusMsg = fmt.Sprintf("Error: %v", err)
		return m
	}
	m.statusMsg = fmt.Sprintf("%s → %s", task.ID, status)
	return m.refresh()
}

func (m ListModel) deleteSelected() ListModel {
	if len(m.tasks) == 0 {
		return m
	}
	task := m.tasks[m.selectedTask]
	removed, err := m.svc.Delete(task.ID)
	if err != nil {
		m.statusMsg = fmt.Sprintf("Error: %v", err)
		return m
	}
	if removed {
		m.statusMsg = fmt.Sprintf("Deleted %s", task.ID)
	}
	return m.refresh()
}

func (m ListModel) refresh() ListModel {
	m.tasks = m.svc.List(tasks.Filter{})
	if m.selectedTask >= len(m.tasks) {
		m.selectedTask = len(m.tasks) - 1
	}
	if m.selectedTask < 0 {
		m.selectedTask = 0
	}
	m.currentPage = 0
	if m.tasksPerPage > 0 {
		m.currentPage = m.selectedTask / m.tasksPerPage
	}
	return m
}

// View renders the model
func (m ListModel) View() string {
	if m.focus == FocusDetail {
		return m.detailView()
	}
	return m.tableView()
}

func (m ListModel) tableView() string {
	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentMain)).
		Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	selectedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true)
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText))

	var b strings.Builder
	b.WriteString(headerStyle.Render("TaskPilot — Tasks"))
	b.WriteString("\n\n")

	if len(m.tasks) == 0 {
		b.WriteString(mutedStyle.Render("No tasks yet. Press q to quit and run 'taskpilot add'."))
		b.WriteString("\n")
		return b.String()
	}

	now := timeutil.Now()
	start := m.currentPage * m.tasksPerPage
	end := start + m.tasksPerPage
	if end > len(m.tasks) {
		end = len(m.tasks)
	}

	for i := start; i < end; i++ {
		task := m.tasks[i]
		age := metrics.AgeDays(&task, now)
		ageBadge := urgencyStyle(metrics.TaskUrgency(&task, now)).
			Render(fmt.Sprintf("%dd", age))

		title := task.Title
		if len(title) > 42 {
			title = title[:39] + "..."
		}

		// Pad plain text first; styled fragments go last so ANSI codes
		// don't break the column widths.
		line := fmt.Sprintf("%-9s %-13s %-45s ", task.ID, string(task.Status), title)
		if i == m.selectedTask {
			b.WriteString(selectedStyle.Render("› " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString(ageBadge)
		b.WriteString("\n")
	}

	totalPages := (len(m.tasks) + m.tasksPerPage - 1) / m.tasksPerPage
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("Page %d/%d · %d task(s)", m.currentPage+1, totalPages, len(m.tasks))))
	if m.statusMsg != "" {
		b.WriteString("  ")
		b.WriteString(mutedStyle.Render(m.statusMsg))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ select · ←/→ page · enter detail · d done · r reopen · x delete · q quit"))
	return b.String()
}

func (m ListModel) detailView() string {
	task := m.tasks[m.selectedTask]
	now := timeutil.Now()

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(1, 2)

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s — %s", task.ID, task.Title)))
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("Status:   "))
	b.WriteString(statusLabel(task.Status))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Created:  "))
	b.WriteString(timeutil.Parse(task.CreatedAt).Format("Jan 02, 2006 15:04"))
	b.WriteString("\n")
	if task.CompletedAt != nil {
		b.WriteString(labelStyle.Render("Completed: "))
		b.WriteString(timeutil.Parse(*task.CompletedAt).Format("Jan 02, 2006 15:04"))
		b.WriteString("\n")
	}
	b.WriteString(labelStyle.Render("Age:      "))
	b.WriteString(fmt.Sprintf("%d day(s)", metrics.AgeDays(&task, now)))
	b.WriteString("\n")
	if len(task.Tags) > 0 {
		b.WriteString(labelStyle.Render("Tags:     "))
		b.WriteString(strings.Join(task.Tags, ", "))
		b.WriteString("\n")
	}
	if task.Description != "" {
		b.WriteString("\n")
		b.WriteString(task.Description)
		b.WriteString("\n")
	}

	if len(task.Activity) > 0 {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("Activity:"))
		b.WriteString("\n")
		for _, a := range task.Activity {
			stamp := timeutil.Parse(a.At).Format("Jan 02 15:04")
			b.WriteString(fmt.Sprintf("  %s  %s — %s\n", stamp, a.Who, a.Text))
		}
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText)).
		Render("esc/enter back · ctrl+c quit"))
	return cardStyle.Render(b.String())
}

func statusLabel(s models.Status) string {
	var color string
	switch s {
	case models.StatusClosed:
		color = ColorSuccess
	case models.StatusInProgress:
		color = ColorWarning
	default:
		color = ColorAccentMain
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(string(s))
}

func urgencyStyle(u metrics.Urgency) lipgloss.Style {
	switch u {
	case metrics.Green:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorUrgencyGreen))
	case metrics.Orange:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorUrgencyOrange))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorUrgencyRed))
	}
}
