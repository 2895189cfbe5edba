package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorWhite = lipgloss.Color("255")
	colorDim   = lipgloss.Color("240")
)

var (
	StyleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	StyleDim     = lipgloss.NewStyle().Foreground(colorDim)
	StyleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	StyleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
	styleSection = lipgloss.NewStyle().Bold(true).MarginTop(1)
)

func section(name string) string {
	return styleSection.Render(name)
}

// kv renders an indented key/value line.
func kv(key string, value interface{}) string {
	return fmt.Sprintf("  %s %s", StyleDim.Render(key+":"), StyleValue.Render(fmt.Sprint(value)))
}

func num(f float64) string {
	return StyleNumber.Render(fmt.Sprintf("%g", f))
}
