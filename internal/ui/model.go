package ui

import (
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"nybbler/internal/pet"
)

// screen identifies which view the game is currently showing
type screen int

const (
	screenName screen = iota
	screenLoadPrompt
	screenGame
	screenQuitConfirm
	screenDead
)

var menuChoices = []string{"🍔 Feed", "🎮 Play", "💤 Sleep", "💊 Heal", "👋 Quit"}

// Model represents the game state
type Model struct {
	Store          *pet.Store
	Pet            pet.Pet
	Screen         screen
	Choice         int
	Quitting       bool
	Message        string
	MessageExpires time.Time
	Animation      Animation

	nameInput   textinput.Model
	pendingName string

	statBars statBars
}

type statBars struct {
	hunger    progress.Model
	happiness progress.Model
	energy    progress.Model
	health    progress.Model
}

type tickMsg time.Time
type animTickMsg struct {
	started time.Time
}

func newStatBar() progress.Model {
	return progress.New(
		progress.WithGradient("#5A56E0", "#EE6FF8"),
		progress.WithWidth(20),
		progress.WithoutPercentage(),
	)
}

// NewModel creates a new game model. If name is non-empty the name prompt is
// skipped, as if the player had typed it.
func NewModel(store *pet.Store, name string) Model {
	input := textinput.New()
	input.Placeholder = "Rex"
	input.CharLimit = 24
	input.Width = 24
	input.Focus()

	m := Model{
		Store:     store,
		Screen:    screenName,
		nameInput: input,
		statBars: statBars{
			hunger:    newStatBar(),
			happiness: newStatBar(),
			energy:    newStatBar(),
			health:    newStatBar(),
		},
	}

	if name = strings.TrimSpace(name); name != "" {
		m.chooseName(name)
	}
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tick())
}

func tick() tea.Cmd {
	return tea.Tick(time.Minute, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func animTick(start time.Time) tea.Cmd {
	return tea.Tick(AnimationFrameDuration, func(t time.Time) tea.Msg {
		return animTickMsg{started: start}
	})
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.Quitting = true
			return m, tea.Quit
		}

		// While an animation is playing, ignore all other inputs
		if m.Animation.Type != AnimNone {
			return m, nil
		}

		switch m.Screen {
		case screenName:
			return m.updateNameScreen(msg)
		case screenLoadPrompt:
			return m.updateLoadPrompt(msg)
		case screenGame:
			return m.updateGameScreen(msg)
		case screenQuitConfirm:
			return m.updateQuitConfirm(msg)
		case screenDead:
			switch msg.String() {
			case "q", "enter", " ":
				m.Quitting = true
				return m, tea.Quit
			}
		}
		return m, nil

	case tickMsg:
		if m.Screen == screenGame {
			m.Pet.Update(time.Time(msg))
			if !m.Pet.IsAlive() {
				// The session ends here; a dead pet is never saved
				m.Screen = screenDead
				return m, nil
			}
			m.save()
		}
		return m, tick()

	case animTickMsg:
		// Drop ticks that belong to an older animation
		if m.Animation.Type == AnimNone || !m.Animation.StartTime.Equal(msg.started) {
			return m, nil
		}

		m.Animation.Frame++
		if IsAnimationComplete(m.Animation) {
			m.Animation = Animation{}
			if !m.Pet.IsAlive() {
				m.Screen = screenDead
			}
			return m, nil
		}
		return m, animTick(m.Animation.StartTime)
	}

	return m, nil
}

func (m Model) updateNameScreen(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "enter" {
		name := strings.TrimSpace(m.nameInput.Value())
		if name == "" {
			return m, nil
		}
		m.chooseName(name)
		return m, nil
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

// chooseName routes a confirmed name to either the load prompt or a fresh pet
func (m *Model) chooseName(name string) {
	if m.Store.Exists(name) {
		m.pendingName = name
		m.Screen = screenLoadPrompt
		return
	}
	m.adopt(name)
}

func (m Model) updateLoadPrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		loaded, err := m.Store.Load(m.pendingName)
		if err != nil {
			log.Printf("Error loading save for %s: %v", m.pendingName, err)
			m.setMessage("⚠️ Could not load the save; starting fresh.")
			m.adopt(m.pendingName)
			return m, nil
		}
		m.Pet = loaded
		m.Pet.Update(pet.TimeNow())
		if !m.Pet.IsAlive() {
			m.Screen = screenDead
			return m, nil
		}
		m.save()
		m.setMessage("⏰ Time has passed since you last played...")
		m.Screen = screenGame
	case "n":
		m.adopt(m.pendingName)
	}
	return m, nil
}

func (m Model) updateGameScreen(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		m.Screen = screenQuitConfirm
	case "up", "k":
		if m.Choice > 0 {
			m.Choice--
		}
	case "down", "j":
		if m.Choice < len(menuChoices)-1 {
			m.Choice++
		}
	case "enter", " ":
		switch m.Choice {
		case 0:
			m.feed()
			return m, animTick(m.Animation.StartTime)
		case 1:
			m.play()
			return m, animTick(m.Animation.StartTime)
		case 2:
			m.sleep()
			return m, animTick(m.Animation.StartTime)
		case 3:
			m.heal()
			return m, animTick(m.Animation.StartTime)
		case 4:
			m.Screen = screenQuitConfirm
		}
	}
	return m, nil
}

func (m Model) updateQuitConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		m.save()
		m.Quitting = true
		return m, tea.Quit
	case "n", "esc":
		m.Screen = screenGame
	}
	return m, nil
}

// adopt starts the game with a brand-new pet
func (m *Model) adopt(name string) {
	m.Pet = pet.New(name)
	m.save()
	m.Choice = 0
	m.Screen = screenGame
}

func (m *Model) save() {
	if err := m.Store.Save(&m.Pet); err != nil {
		log.Printf("Error saving %s: %v", m.Pet.Name, err)
		m.setMessage("⚠️ Could not save: " + err.Error())
	}
}

func (m *Model) setMessage(msg string) {
	m.Message = msg
	m.MessageExpires = pet.TimeNow().Add(5 * time.Second)
}

func (m *Model) startAnimation(animType AnimationType) {
	m.Animation = Animation{
		Type:      animType,
		Frame:     0,
		StartTime: pet.TimeNow(),
	}
}

func (m *Model) feed() {
	m.Pet.Feed()
	m.save()
	m.setMessage("🎉 You fed " + m.Pet.Name + " a delicious meal!")
	m.startAnimation(AnimFeed)
}

func (m *Model) play() {
	m.Pet.Play()
	m.save()
	m.setMessage("🎮 You played with " + m.Pet.Name + "!")
	m.startAnimation(AnimPlay)
}

func (m *Model) sleep() {
	m.Pet.Sleep()
	m.save()
	m.setMessage("💤 " + m.Pet.Name + " took a nap and feels refreshed!")
	m.startAnimation(AnimSleep)
}

func (m *Model) heal() {
	m.Pet.Heal()
	m.save()
	m.setMessage("💊 You gave " + m.Pet.Name + " medicine!")
	m.startAnimation(AnimHeal)
}
