package ui

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"nybbler/internal/pet"
)

// StatsModel is a simple Bubble Tea model for a one-shot stats display
type StatsModel struct {
	Pet pet.Pet
}

// Init implements tea.Model
func (m StatsModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m StatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, tea.Quit
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress {
			return m, tea.Quit
		}
	}
	return m, nil
}

// View implements tea.Model
func (m StatsModel) View() string {
	makeBar := func(value int) string {
		filled := value / 20
		bar := ""
		for i := 0; i < 5; i++ {
			if i < filled {
				bar += "█"
			} else {
				bar += "░"
			}
		}
		return bar
	}

	alive := "Yes"
	if !m.Pet.IsAlive() {
		alive = "No"
	}

	var s strings.Builder
	s.WriteString("╔════════════════════════════════════╗\n")
	s.WriteString(fmt.Sprintf("║  %s %s %s\n", m.Pet.Mood.Emoji(), m.Pet.Name, m.Pet.Mood.Emoji()))
	s.WriteString("╠════════════════════════════════════╣\n")
	s.WriteString(fmt.Sprintf("║  Character: %-22s ║\n", string(m.Pet.Character)))
	s.WriteString(fmt.Sprintf("║  Mood:      %-22s ║\n", string(m.Pet.Mood)))
	s.WriteString(fmt.Sprintf("║  Age:       %-22s ║\n", fmt.Sprintf("%d days", m.Pet.Age)))
	s.WriteString(fmt.Sprintf("║  Alive:     %-22s ║\n", alive))
	s.WriteString("║                                    ║\n")
	s.WriteString(fmt.Sprintf("║  Hunger:    [%s] %3d%%           ║\n", makeBar(m.Pet.Hunger), m.Pet.Hunger))
	s.WriteString(fmt.Sprintf("║  Happiness: [%s] %3d%%           ║\n", makeBar(m.Pet.Happiness), m.Pet.Happiness))
	s.WriteString(fmt.Sprintf("║  Energy:    [%s] %3d%%           ║\n", makeBar(m.Pet.Energy), m.Pet.Energy))
	s.WriteString(fmt.Sprintf("║  Health:    [%s] %3d%%           ║\n", makeBar(m.Pet.Health), m.Pet.Health))
	s.WriteString("╚════════════════════════════════════╝\n")
	s.WriteString("\nPress ESC, click, or any key to close...")

	return s.String()
}

// DisplayStats shows the stats display
func DisplayStats(p pet.Pet) {
	program := tea.NewProgram(StatsModel{Pet: p}, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := program.Run(); err != nil {
		fmt.Printf("Error running stats display: %v\n", err)
		os.Exit(1)
	}
}
