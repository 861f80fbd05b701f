package notify

import "github.com/charmbracelet/lipgloss"

var (
	toastTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	toastBodyStyle  = lipgloss.NewStyle()
	toastBoxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("9")).
			Padding(0, 1)
)

const toastTitle = "Error"

func renderToast(message string) string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		toastTitleStyle.Render(toastTitle),
		toastBodyStyle.Render(message),
	)
	return toastBoxStyle.Render(content)
}
