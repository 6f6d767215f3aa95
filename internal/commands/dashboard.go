package commands

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/bymeSatya/TaskPilot-AI/internal/metrics"
	"github.com/bymeSatya/TaskPilot-AI/internal/tasks"
	"github.com/bymeSatya/TaskPilot-AI/internal/timeutil"
	"github.com/bymeSatya/TaskPilot-AI/internal/tui"
)

var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"dash"},
	Short:   "Show the task dashboard",
	Run: func(cmd *cobra.Command, args []string) {
		initService()

		list := svc.List(tasks.Filter{})
		now := timeutil.Now()
		summary := metrics.Summarize(list, now)

		fmt.Println(renderKPIRow(summary))
		fmt.Println()

		overdue := metrics.Overdue(list, now)
		header := lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color(tui.ColorUrgencyRed))
		fmt.Println(header.Render("🔥 Priority: Overdue Tasks"))
		if len(overdue) == 0 {
			ok := lipgloss.NewStyle().Foreground(lipgloss.Color(tui.ColorSuccess))
			fmt.Println(ok.Render("No overdue tasks. Great job!"))
			return
		}
		muted := lipgloss.NewStyle().Foreground(lipgloss.Color(tui.ColorSecondaryText))
		for i := range overdue {
			task := &overdue[i]
			fmt.Printf("  %s — %s (%d days old)\n", task.ID, task.Title, metrics.AgeDays(task, now))
			if task.Description != "" {
				fmt.Println(muted.Render("    " + task.Description))
			}
		}
	},
}

// renderKPIRow lays out the four dashboard cards side by side.
func renderKPIRow(s metrics.Summary) string {
	cards := []string{
		renderKPICard("Open Tasks", s.Open, tui.ColorAccentMain, "in progress or not started"),
		renderKPICard("Overdue", s.Overdue, tui.ColorUrgencyRed, "older than 5 days"),
		renderKPICard("Nearing Deadline", s.NearingDeadline, tui.ColorUrgencyOrange, "3-5 days old"),
		renderKPICard("Closed Tasks", s.Closed, tui.ColorSuccess, "total completed"),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func renderKPICard(title string, value int, color, sub string) string {
	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(tui.ColorBorder)).
		Padding(0, 2).
		Width(24)
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(tui.ColorSecondaryText))
	valueStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(color))
	subStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(tui.ColorDisabledText))

	content := strings.Join([]string{
		titleStyle.Render(title),
		valueStyle.Render(fmt.Sprintf("%d", value)),
		subStyle.Render(sub),
	}, "\n")
	return cardStyle.Render(content)
}
