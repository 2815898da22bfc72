package ui

import "github.com/charmbracelet/lipgloss"

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	linkStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("2")).
			Padding(1, 3).
			Margin(1)

	noticeStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("3")).
			Padding(0, 1)
)

func Success(message string) string {
	return successStyle.Render("✓") + " " + message
}

func Failure(message string) string {
	return failureStyle.Render("✗") + " " + message
}

func Note(message string) string {
	return mutedStyle.Render(message)
}

func Title(message string) string {
	return titleStyle.Render(message)
}

func Bullet(label string, value string) string {
	return mutedStyle.Render("•") + " " + label + ": " + value
}

func Field(label string, value string) string {
	return mutedStyle.Render(label+":") + " " + value
}

func YesNo(value bool) string {
	if value {
		return successStyle.Render("Yes")
	}

	return failureStyle.Render("No")
}
