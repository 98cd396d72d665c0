// Package style provides the shared colors and icons of the command line output.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Arrow   = "→"
)

// Label renders a bold, brand colored label such as "Subject:".
func Label(text string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(Iris).Render(text)
}
