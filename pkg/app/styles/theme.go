package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Color palette
	Primary    = lipgloss.Color("#FF8C42")
	Secondary  = lipgloss.Color("#6FB98F")
	Success    = lipgloss.Color("#C3E88D")
	Warning    = lipgloss.Color("#FFCB6B")
	Error      = lipgloss.Color("#F07178")
	Info       = lipgloss.Color("#82AAFF")
	Muted      = lipgloss.Color("#546E7A")
	Foreground = lipgloss.Color("#EEFFFF")

	RoundedBorder = lipgloss.RoundedBorder()
	ThickBorder   = lipgloss.ThickBorder()
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true).
			MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Italic(true)

	TextStyle = lipgloss.NewStyle().
			Foreground(Foreground)

	MutedStyle = lipgloss.NewStyle().
			Foreground(Muted)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true).
			BorderStyle(RoundedBorder).
			BorderForeground(Primary).
			Padding(0, 1)

	CardStyle = lipgloss.NewStyle().
			Border(RoundedBorder).
			BorderForeground(Secondary).
			Padding(1, 2).
			MarginBottom(1)

	ActiveCardStyle = lipgloss.NewStyle().
			Border(ThickBorder).
			BorderForeground(Primary).
			Padding(1, 2).
			MarginBottom(1)

	StatusPending = lipgloss.NewStyle().
			Foreground(Info).
			Bold(true)

	StatusSuccess = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	StatusError = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Star rating
	StarFilled = lipgloss.NewStyle().
			Foreground(Warning)

	StarEmpty = lipgloss.NewStyle().
			Foreground(Muted)

	// Tabs
	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Background(lipgloss.Color("#37474F")).
			Padding(0, 2).
			Bold(true)

	InactiveTabStyle = lipgloss.NewStyle().
				Foreground(Muted).
				Padding(0, 2)

	HelpStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true).
			MarginTop(1)

	InputStyle = lipgloss.NewStyle().
			Border(RoundedBorder).
			BorderForeground(Secondary).
			Padding(0, 1)

	FocusedInputStyle = lipgloss.NewStyle().
				Border(RoundedBorder).
				BorderForeground(Primary).
				Padding(0, 1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	// Pagination controls
	PageStyle = lipgloss.NewStyle().
			Foreground(Foreground).
			Padding(0, 1)

	ActivePageStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true).
			Padding(0, 1)

	DisabledPageStyle = lipgloss.NewStyle().
				Foreground(Muted).
				Faint(true).
				Padding(0, 1)
)
