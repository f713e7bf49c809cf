package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"nybbler/internal/pet"
)

const welcomeArt = `
 /\_/\
( o.o )
 > ^ <
✨ NYBBLER ✨`

const goodbyeArt = `
 /\_/\
( ^ω^ )
 > 👋 <
Goodbye!`

const ripArt = `
 .======.
 |  RIP |
 |      |
 |      |
 '======'`

var gameStyles = struct {
	banner  lipgloss.Style
	title   lipgloss.Style
	mood    lipgloss.Style
	art     lipgloss.Style
	status  lipgloss.Style
	label   lipgloss.Style
	menuBox lipgloss.Style
}{
	banner: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFD700")),

	title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FF75B5")).
		Padding(0, 1),

	mood: lipgloss.NewStyle().
		Italic(true).
		Foreground(lipgloss.Color("#87D7FF")),

	art: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFD700")),

	status: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF75B5")).
		Width(44),

	label: lipgloss.NewStyle().
		Bold(true).
		Width(11),

	menuBox: lipgloss.NewStyle().
		Padding(0, 2),
}

// View implements tea.Model
func (m Model) View() string {
	if m.Quitting {
		return m.goodbyeView()
	}

	switch m.Screen {
	case screenName:
		return m.nameView()
	case screenLoadPrompt:
		return m.loadPromptView()
	case screenQuitConfirm:
		return m.quitConfirmView()
	case screenDead:
		return m.deadView()
	}

	if m.Animation.Type != AnimNone {
		return m.renderAnimation()
	}
	return m.gameView()
}

func (m Model) nameView() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		gameStyles.banner.Render(welcomeArt),
		"",
		gameStyles.title.Render("Welcome to Terminal Nybbler!"),
		gameStyles.status.Render("🌈 Take care of your virtual pet and keep it happy! 🌈"),
		"",
		gameStyles.status.Render("Enter your Nybbler's name (new or existing):"),
		m.nameInput.View(),
		"",
		gameStyles.status.Render("Press enter to confirm • ctrl+c to quit"),
	)
}

func (m Model) loadPromptView() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		gameStyles.banner.Render(welcomeArt),
		"",
		gameStyles.title.Render(fmt.Sprintf("A Nybbler named %s already exists!", m.pendingName)),
		gameStyles.status.Render("Would you like to load it?"),
		"",
		gameStyles.status.Render("Press 'y' to load • 'n' to start fresh"),
	)
}

func (m Model) gameView() string {
	title := gameStyles.title.Render(fmt.Sprintf("%s %s %s  Age: %d days 🎂",
		m.Pet.Mood.Emoji(), m.Pet.Name, m.Pet.Mood.Emoji(), m.Pet.Age))
	moodLine := gameStyles.mood.Render(m.Pet.Mood.Message())
	kaomoji := gameStyles.art.Render(m.Pet.Mood.Frames()[0])
	art := gameStyles.art.Render(strings.TrimRight(m.Pet.Character.Neutral(), "\n"))

	sections := []string{
		title,
		moodLine,
		kaomoji,
		art,
		"",
		m.renderStatBars(),
	}

	if m.Message != "" && pet.TimeNow().Before(m.MessageExpires) {
		sections = append(sections, "", gameStyles.status.Render(m.Message))
	}

	sections = append(sections,
		"",
		m.renderMenu(),
		"",
		gameStyles.status.Render("Use ↑/↓ to select • enter to confirm • q to quit"),
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderStatBars() string {
	bars := []struct {
		label string
		bar   string
		value int
	}{
		{"🍔 Hunger", m.statBars.hunger.ViewAs(float64(m.Pet.Hunger) / pet.MaxStat), m.Pet.Hunger},
		{"🎈 Happy", m.statBars.happiness.ViewAs(float64(m.Pet.Happiness) / pet.MaxStat), m.Pet.Happiness},
		{"⚡ Energy", m.statBars.energy.ViewAs(float64(m.Pet.Energy) / pet.MaxStat), m.Pet.Energy},
		{"💖 Health", m.statBars.health.ViewAs(float64(m.Pet.Health) / pet.MaxStat), m.Pet.Health},
	}

	var lines []string
	for _, b := range bars {
		lines = append(lines, fmt.Sprintf("%s %s %3d/100", gameStyles.label.Render(b.label), b.bar, b.value))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderMenu() string {
	var menuItems []string
	for i, choice := range menuChoices {
		cursor := " "
		if m.Choice == i {
			cursor = ">"
		}
		menuItems = append(menuItems, fmt.Sprintf("%s %s", cursor, choice))
	}
	return gameStyles.menuBox.Render(strings.Join(menuItems, "\n"))
}

func (m Model) renderAnimation() string {
	title := gameStyles.title.Render(fmt.Sprintf("%s %s %s",
		m.Pet.Mood.Emoji(), m.Pet.Name, m.Pet.Mood.Emoji()))
	frame := gameStyles.art.Render(GetAnimationFrame(m.Animation, m.Pet.Character))

	sections := []string{title, "", frame}
	if m.Message != "" && pet.TimeNow().Before(m.MessageExpires) {
		sections = append(sections, "", gameStyles.status.Render(m.Message))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) quitConfirmView() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		gameStyles.title.Render("🥺 Are you really sure you want to leave?"),
		gameStyles.status.Render("Your Nybbler will miss you!"),
		"",
		gameStyles.status.Render("Press 'y' to save and quit • 'n' to stay"),
	)
}

func (m Model) deadView() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		gameStyles.banner.Render(ripArt),
		"",
		gameStyles.title.Render("💔 Oh no! Your Nybbler has passed away! 💔"),
		gameStyles.status.Render(fmt.Sprintf("🌈 %s lived for %d wonderful days with you. 🌈", m.Pet.Name, m.Pet.Age)),
		gameStyles.status.Render("🌟 Thank you for taking care of your Nybbler! 🌟"),
		"",
		gameStyles.status.Render("Press q to exit"),
	)
}

func (m Model) goodbyeView() string {
	if m.Screen == screenDead {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		gameStyles.banner.Render(goodbyeArt),
		"",
		gameStyles.status.Render("👋 Goodbye! See you soon! 👋"),
		gameStyles.status.Render(fmt.Sprintf("🌈 %s will be waiting for your return! 🌈", m.Pet.Name)),
	)
}
