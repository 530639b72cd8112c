// Package ui renders sweep outcomes for the terminal.
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/cloudtidy/vpcsweep/internal/sweep"
)

var (
	// Colors
	colorGreen  = lipgloss.Color("#22c55e")
	colorRed    = lipgloss.Color("#ef4444")
	colorYellow = lipgloss.Color("#eab308")
	colorDim    = lipgloss.Color("#6b7280")

	// Styles
	deletedStyle  = lipgloss.NewStyle().Foreground(colorGreen)
	blockedStyle  = lipgloss.NewStyle().Foreground(colorYellow)
	failedStyle   = lipgloss.NewStyle().Foreground(colorRed)
	notFoundStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// Renderer renders per-region report lines.
type Renderer struct {
	// Color enables styled output. NewRenderer sets it from TTY
	// detection on stdout.
	Color bool
}

// NewRenderer creates a Renderer that colors output only when stdout
// is a terminal.
func NewRenderer() *Renderer {
	fd := os.Stdout.Fd()
	return &Renderer{
		Color: isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd),
	}
}

// Outcome renders the one-line report for a region's outcome.
func (r *Renderer) Outcome(o sweep.Outcome) string {
	msg := o.Message()
	if !r.Color {
		return msg
	}

	switch o.Status {
	case sweep.StatusDeleted:
		return deletedStyle.Render(msg)
	case sweep.StatusBlocked:
		return blockedStyle.Render(msg)
	case sweep.StatusFailed:
		return failedStyle.Render(msg)
	case sweep.StatusNotFound:
		return notFoundStyle.Render(msg)
	default:
		return msg
	}
}
