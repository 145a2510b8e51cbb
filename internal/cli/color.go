package cli

import "github.com/charmbracelet/lipgloss"

// ANSI 256 palette.
var (
	styleError   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	styleWarning = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	styleNote    = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	styleHelp    = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	styleSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	styleCode    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	stylePipe    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	stylePath    = lipgloss.NewStyle().Bold(true)
	styleHeader  = lipgloss.NewStyle().Bold(true)
	styleDim     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleKeyword = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
)

func render(style lipgloss.Style, s string) string {
	if !EnableColors() {
		return s
	}
	return style.Render(s)
}

// Error styles an error label.
func Error(s string) string { return render(styleError, s) }

// Warning styles a warning label.
func Warning(s string) string { return render(styleWarning, s) }

// Note styles a note label.
func Note(s string) string { return render(styleNote, s) }

// Help styles a help label.
func Help(s string) string { return render(styleHelp, s) }

// Success styles a success label.
func Success(s string) string { return render(styleSuccess, s) }

// Code styles an error code such as E2001.
func Code(s string) string { return render(styleCode, s) }

// Pipe returns the gutter character of a report.
func Pipe() string { return render(stylePipe, "|") }

// Arrow returns the location arrow of a report.
func Arrow() string { return render(stylePipe, "-->") }

// FilePath styles a path.
func FilePath(s string) string { return render(stylePath, s) }

// Header styles a table header.
func Header(s string) string { return render(styleHeader, s) }

// Dim styles muted text.
func Dim(s string) string { return render(styleDim, s) }

// Keyword styles a SQL keyword.
func Keyword(s string) string { return render(styleKeyword, s) }
