package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary   = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	colorSecondary = lipgloss.AdaptiveColor{Light: "#3D3D3D", Dark: "#ABABAB"}
	colorDim       = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#626262"}
	colorAccent    = lipgloss.AdaptiveColor{Light: "#F25D94", Dark: "#F25D94"}
	colorBorder    = lipgloss.AdaptiveColor{Light: "#DBDBDB", Dark: "#383838"}
	colorActiveBdr = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	colorGreen     = lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#25D366"}
	colorYellow    = lipgloss.AdaptiveColor{Light: "#B58900", Dark: "#E5C07B"}
	colorRed       = lipgloss.AdaptiveColor{Light: "#D70000", Dark: "#FF5F5F"}
	colorStatusBg  = lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#16213E"}
	colorStatusFg  = lipgloss.AdaptiveColor{Light: "#3D3D3D", Dark: "#ABABAB"}

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			PaddingLeft(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			PaddingLeft(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorSecondary)

	labelActiveStyle = lipgloss.NewStyle().
				Foreground(colorAccent).
				Bold(true)

	fieldStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	fieldActiveStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorActiveBdr).
				Padding(0, 1)

	counterStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			MarginTop(1)

	summaryStyle = lipgloss.NewStyle().
			Foreground(colorSecondary)

	articleTitleStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	articleSourceStyle = lipgloss.NewStyle().
				Foreground(colorGreen)

	articleBodyStyle = lipgloss.NewStyle().
				Foreground(colorSecondary)

	articleLinkStyle = lipgloss.NewStyle().
				Foreground(colorDim).
				Italic(true)

	noticeInfoStyle    = lipgloss.NewStyle().Foreground(colorSecondary)
	noticeSuccessStyle = lipgloss.NewStyle().Foreground(colorGreen)
	noticeWarningStyle = lipgloss.NewStyle().Foreground(colorYellow)
	noticeErrorStyle   = lipgloss.NewStyle().Foreground(colorRed).Bold(true)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	promptStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	statusBarStyle = lipgloss.NewStyle().
			Background(colorStatusBg).
			Foreground(colorStatusFg).
			PaddingLeft(1).
			PaddingRight(1)
)
