// Package ui holds dcmx's startup banner, styled the same way the
// teacher's cmd/radx banner was (go-figure ASCII art, lipgloss color).
package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/common-nighthawk/go-figure"
)

// BannerStyle matches p10.DefaultPrintConfig's accent color, so the CLI's
// banner and its dump output share a palette.
var BannerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5436bd")).Bold(true)

// PrintBanner writes the "DCMX" banner to stderr, so stdout stays clean
// for piped command output (JSON, table rendering).
func PrintBanner() {
	banner := figure.NewFigure("DCMX", "banner3", true)
	fmt.Fprintln(os.Stderr, BannerStyle.Render(banner.String()))
	fmt.Fprintln(os.Stderr)
}
