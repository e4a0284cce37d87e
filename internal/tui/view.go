package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/KantaKan/terminal-calorie-tracker/internal/constants"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string

	switch m.state {
	case StateDashboard:
		content = docStyle.Render(m.viewDashboard())
	case StateFoods:
		content = docStyle.Render(m.foodList.View())
	case StateHistory:
		content = docStyle.Render(m.viewHistory())
	case StateLogMeal, StateLearnFood, StateEditFood, StateEditEntry, StateGoal:
		content = m.form.View()
	case StateConfirmDeleteFood:
		content = m.viewConfirm("Are you sure you want to delete this food?")
	case StateConfirmDeleteEntry:
		content = m.viewConfirm("Are you sure you want to delete this entry?")
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Dashboard", "Foods", "History"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewDashboard() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Today — " + m.today.Date))
	b.WriteString("\n\n")

	if len(m.today.Entries) == 0 {
		b.WriteString(dimStyle.Render("  No meals logged yet. Press 'l' to log one.\n"))
	}

	for i, entry := range m.today.Entries {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		b.WriteString(fmt.Sprintf("%s%s  [%-9s] %-25s %5d kcal  P:%dg C:%dg F:%dg\n",
			cursor, entry.Time, entry.TimeSlot, entry.Name,
			entry.Kcal, entry.Protein, entry.Carbs, entry.Fat))
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Total: %d kcal  P:%dg C:%dg F:%dg\n",
		m.today.TotalKcal, m.today.TotalProtein, m.today.TotalCarbs, m.today.TotalFat))

	if m.goal > 0 {
		remaining := m.goal - m.today.TotalKcal
		if remaining >= 0 {
			b.WriteString(underGoalStyle.Render(fmt.Sprintf("Goal:  %d kcal (%d remaining)", m.goal, remaining)))
		} else {
			b.WriteString(overGoalStyle.Render(fmt.Sprintf("Goal:  %d kcal (%d over)", m.goal, -remaining)))
		}
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("Streak: %d day(s) at or under goal\n", m.streak))

	if m.statusMsg != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.statusMsg))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewHistory() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Week of " + m.series.Days[0].Date))
	b.WriteString("\n\n")

	maxKcal := 0
	for _, day := range m.series.Days {
		if day.Kcal > maxKcal {
			maxKcal = day.Kcal
		}
	}

	for _, day := range m.series.Days {
		d, err := time.ParseInLocation(constants.DateFormat, day.Date, time.Local)
		weekday := "???"
		if err == nil {
			weekday = d.Weekday().String()[:3]
		}

		if !day.Logged {
			b.WriteString(fmt.Sprintf("  %s %s  %s\n", weekday, day.Date, dimStyle.Render("-")))
			continue
		}

		bar := ""
		if maxKcal > 0 {
			bar = strings.Repeat("█", day.Kcal*30/maxKcal)
		}
		line := fmt.Sprintf("  %s %s  %5d kcal  %s", weekday, day.Date, day.Kcal, bar)
		if m.goal > 0 && day.Kcal > m.goal {
			b.WriteString(overGoalStyle.Render(line))
		} else {
			b.WriteString(underGoalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("\nWeek total: %d kcal\n", m.series.TotalKcal))

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Last 7 days"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("  Days logged:   %d\n", m.report.DaysLogged))
	b.WriteString(fmt.Sprintf("  Total intake:  %d kcal\n", m.report.TotalKcal))
	b.WriteString(fmt.Sprintf("  Daily average: %d kcal\n", m.report.AvgKcal))

	return b.String()
}

func (m Model) viewConfirm(prompt string) string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(prompt),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
