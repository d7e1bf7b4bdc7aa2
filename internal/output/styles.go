package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette. Never use inline lipgloss.Color literals elsewhere.
var (
	// ColorCyan is used for identifiable nouns: directories, template names, package names.
	ColorCyan = lipgloss.Color("14")

	// ColorYellow is used for prompts that require attention (overwrite).
	ColorYellow = lipgloss.Color("220")

	// ColorBoldRed is used for cancellation and failure markers.
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark (✔).
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")

	// ColorBlue is used for table headers.
	ColorBlue = lipgloss.Color("12")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns.
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleAction styles action verbs (cloning, removing, rewriting).
	StyleAction = lipgloss.NewStyle().Bold(true)

	// StyleDim styles structural chrome.
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)

	// StyleWarning styles attention-requiring text.
	StyleWarning = lipgloss.NewStyle().Foreground(ColorYellow)
)

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatCross renders a red cross with a message.
func FormatCross(msg string) string {
	cross := lipgloss.NewStyle().Foreground(ColorBoldRed).Render("✖")
	return cross + " " + msg
}

// FormatNextSteps renders the hints printed after a successful scaffold.
func FormatNextSteps(dir string, steps ...string) string {
	out := StyleSummary.Render("Done. Now run:") + "\n\n"
	if dir != "." && dir != "" {
		out += "  cd " + StyleNoun.Render(dir) + "\n"
	}
	for _, s := range steps {
		out += "  " + s + "\n"
	}
	return out
}
