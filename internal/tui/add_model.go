package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bymeSatya/TaskPilot-AI/internal/models"
	"github.com/bymeSatya/TaskPilot-AI/internal/tasks"
)

// Field identifies which form input has focus
type Field int

const (
	FieldTitle Field = iota
	FieldDescription
	FieldTags
	FieldDueDays

	fieldCount
)

// AddTaskModel is the interactive create-task form
type AddTaskModel struct {
	svc *tasks.Service

	title       textinput.Model
	description textarea.Model
	tags        textinput.Model
	dueDays     textinput.Model

	focused   Field
	errMsg    string
	cancelled bool
	created   *models.Task
	err       error
}

// NewAddTaskModel creates the form, optionally pre-filled from flags
func NewAddTaskModel(svc *tasks.Service, prefilled map[string]string) AddTaskModel {
	title := textinput.New()
	title.Placeholder = "What needs doing?"
	title.CharLimit = 200
	title.Width = 60
	title.SetValue(prefilled["title"])
	title.Focus()

	description := textarea.New()
	description.Placeholder = "Details (optional)"
	description.SetWidth(60)
	description.SetHeight(4)
	description.SetValue(prefilled["description"])

	tagsInput := textinput.New()
	tagsInput.Placeholder = "tags, comma, separated"
	tagsInput.CharLimit = 120
	tagsInput.Width = 60
	tagsInput.SetValue(prefilled["tags"])

	dueDays := textinput.New()
	dueDays.Placeholder = strconv.Itoa(models.DefaultDueDays)
	dueDays.CharLimit = 3
	dueDays.Width = 10
	dueDays.SetValue(prefilled["due_days"])

	return AddTaskModel{
		svc:         svc,
		title:       title,
		description: description,
		tags:        tagsInput,
		dueDays:     dueDays,
		focused:     FieldTitle,
	}
}

// Init initializes the model
func (m AddTaskModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m AddTaskModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit

		case "tab", "down":
			m = m.focusField((m.focused + 1) % fieldCount)
			return m, nil

		case "shift+tab", "up":
			m = m.focusField((m.focused + fieldCount - 1) % fieldCount)
			return m, nil

		case "ctrl+s":
			return m.submit()

		case "enter":
			// Enter inside the description textarea inserts a newline;
			// everywhere else it submits.
			if m.focused != FieldDescription {
				return m.submit()
			}
		}
	}

	var cmd tea.Cmd
	switch m.focused {
	case FieldTitle:
		m.title, cmd = m.title.Update(msg)
	case FieldDescription:
		m.description, cmd = m.description.Update(msg)
	case FieldTags:
		m.tags, cmd = m.tags.Update(msg)
	case FieldDueDays:
		m.dueDays, cmd = m.dueDays.Update(msg)
	}
	return m, cmd
}

func (m AddTaskModel) focusField(f Field) AddTaskModel {
	m.title.Blur()
	m.description.Blur()
	m.tags.Blur()
	m.dueDays.Blur()

	m.focused = f
	switch f {
	case FieldTitle:
		m.title.Focus()
	case FieldDescription:
		m.description.Focus()
	case FieldTags:
		m.tags.Focus()
	case FieldDueDays:
		m.dueDays.Focus()
	}
	return m
}

func (m AddTaskModel) submit() (tea.Model, tea.Cmd) {
	if strings.TrimSpace(m.title.Value()) == "" {
		m.errMsg = "Title is required"
		return m.focusField(FieldTitle), nil
	}

	dueDays := 0
	if raw := strings.TrimSpace(m.dueDays.Value()); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			m.errMsg = "Due days must be a number of at least 1"
			return m.focusField(FieldDueDays), nil
		}
		dueDays = n
	}

	var tags []string
	for _, tag := range strings.Split(m.tags.Value(), ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}

	task, err := m.svc.Create(m.title.Value(), m.description.Value(), tags, dueDays)
	if err != nil {
		m.err = err
		return m, tea.Quit
	}
	m.created = task
	return m, tea.Quit
}

// View renders the form
func (m AddTaskModel) View() string {
	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentMain)).
		Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	activeLabelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright)).Bold(true)
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError))
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText))

	label := func(f Field, text string) string {
		if m.focused == f {
			return activeLabelStyle.Render("› " + text)
		}
		return labelStyle.Render("  " + text)
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("New Task"))
	b.WriteString("\n\n")
	b.WriteString(label(FieldTitle, "Title"))
	b.WriteString("\n")
	b.WriteString(m.title.View())
	b.WriteString("\n\n")
	b.WriteString(label(FieldDescription, "Description"))
	b.WriteString("\n")
	b.WriteString(m.description.View())
	b.WriteString("\n\n")
	b.WriteString(label(FieldTags, "Tags"))
	b.WriteString("\n")
	b.WriteString(m.tags.View())
	b.WriteString("\n\n")
	b.WriteString(label(FieldDueDays, fmt.Sprintf("Due days (default %d)", models.DefaultDueDays)))
	b.WriteString("\n")
	b.WriteString(m.dueDays.View())
	b.WriteString("\n\n")

	if m.errMsg != "" {
		b.WriteString(errStyle.Render("⚠ " + m.errMsg))
		b.WriteString("\n\n")
	}

	b.WriteString(helpStyle.Render("tab next field · enter/ctrl+s create · esc cancel"))
	return b.String()
}
