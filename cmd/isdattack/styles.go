package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ericlevine/isdgo/bitutil"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB")).
			Width(16)

	successStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#90EE90"))

	failStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFB86C"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// maxBitsShown is the longest vector printed bit by bit. Longer vectors are
// printed as their set positions.
const maxBitsShown = 96

func formatVector(v *bitutil.BitArray) string {
	if v == nil {
		return helpStyle.Render("none")
	}
	if v.Size() <= maxBitsShown {
		return v.String()
	}
	idx := v.Indices()
	parts := make([]string, len(idx))
	for i, x := range idx {
		parts[i] = fmt.Sprint(x)
	}
	return fmt.Sprintf("weight %d at {%s}", len(idx), strings.Join(parts, ", "))
}

func field(label, value string) string {
	return labelStyle.Render(label) + value + "\n"
}
