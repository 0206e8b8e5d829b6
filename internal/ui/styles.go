package ui

import "github.com/charmbracelet/lipgloss"

// This file centralizes the lipgloss styles used by the reports. When stdout
// is not a terminal lipgloss renders them as plain text.

var (
	// Report banners ("Calculating ...")
	bannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFF")).
			Background(lipgloss.Color("#7D56F4")). // Brand Color
			Bold(true).
			Padding(0, 1)

	headingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")). // Light purple
			Bold(true)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")). // Cyan/Teal
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")) // Dim gray

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")). // Red
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")) // Green

	// Browsed rows
	tableBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("63")) // Purple-ish
	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	tableCellStyle   = lipgloss.NewStyle().Padding(0, 1)
)
