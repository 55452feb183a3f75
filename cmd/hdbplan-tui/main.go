package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hdbplan/hdbplan/internal/tui"
)

func main() {
	// Optional file paths from arguments; built-in defaults otherwise
	policyPath := ""
	profilePath := ""
	if len(os.Args) > 1 {
		policyPath = os.Args[1]
	}
	if len(os.Args) > 2 {
		profilePath = os.Args[2]
	}
	if len(os.Args) > 3 {
		fmt.Println("Usage: hdbplan-tui [policy-file] [household-file]")
		os.Exit(1)
	}

	// Check that named files exist before starting the program
	for _, path := range []string{policyPath, profilePath} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			fmt.Printf("Error: File not found: %s\n", path)
			os.Exit(1)
		}
	}

	// Create the application model
	model := tui.NewModel(policyPath, profilePath)

	// Create the Bubble Tea program
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Enable mouse support
	)

	// Run the program
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
