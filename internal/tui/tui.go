// Package tui renders TaskKeeper data for the terminal.
//
// The command-line client prints every result through this package: task
// tables, the stats dashboard, build information and error boxes. Styling
// uses lipgloss, which degrades to plain text when output is not a terminal.
package tui
