package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"nybbler/internal/pet"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func sendKey(m Model, s string) Model {
	updated, _ := m.Update(keyMsg(s))
	return updated.(Model)
}

func newTestModel(t *testing.T, name string) (Model, *pet.Store) {
	store := pet.NewStore(t.TempDir())
	return NewModel(store, name), store
}

func TestNewModelWithNameSkipsPrompt(t *testing.T) {
	m, store := newTestModel(t, "Rex")

	if m.Screen != screenGame {
		t.Errorf("Expected game screen when a name is given, got %v", m.Screen)
	}
	if !store.Exists("Rex") {
		t.Error("Expected the new pet to be saved immediately")
	}
}

func TestNewModelWithoutNameShowsPrompt(t *testing.T) {
	m, _ := newTestModel(t, "")
	if m.Screen != screenName {
		t.Errorf("Expected name screen without a name, got %v", m.Screen)
	}
}

func TestExistingNameAsksToLoad(t *testing.T) {
	store := pet.NewStore(t.TempDir())
	existing := pet.New("Rex")
	existing.Age = 5
	if err := store.Save(&existing); err != nil {
		t.Fatalf("Failed to seed save: %v", err)
	}

	m := NewModel(store, "Rex")
	if m.Screen != screenLoadPrompt {
		t.Fatalf("Expected load prompt for an existing save, got %v", m.Screen)
	}

	m = sendKey(m, "y")
	if m.Screen != screenGame {
		t.Errorf("Expected game screen after loading, got %v", m.Screen)
	}
	if m.Pet.Age != 5 {
		t.Errorf("Expected the saved pet to be loaded, got age %d", m.Pet.Age)
	}
}

func TestDecliningLoadStartsFresh(t *testing.T) {
	store := pet.NewStore(t.TempDir())
	existing := pet.New("Rex")
	existing.Age = 5
	if err := store.Save(&existing); err != nil {
		t.Fatalf("Failed to seed save: %v", err)
	}

	m := NewModel(store, "Rex")
	m = sendKey(m, "n")

	if m.Screen != screenGame {
		t.Errorf("Expected game screen after declining load, got %v", m.Screen)
	}
	if m.Pet.Age != 0 {
		t.Errorf("Expected a fresh pet after declining load, got age %d", m.Pet.Age)
	}
}

func TestFeedActionRunsAnimation(t *testing.T) {
	m, _ := newTestModel(t, "Rex")

	m = sendKey(m, "enter") // first menu entry is Feed
	if m.Pet.Hunger != 80 {
		t.Errorf("Expected hunger 80 after feeding, got %d", m.Pet.Hunger)
	}
	if m.Animation.Type != AnimFeed {
		t.Errorf("Expected feed animation to start, got %v", m.Animation.Type)
	}

	// Menu input is ignored while the animation plays
	before := m.Choice
	m = sendKey(m, "down")
	if m.Choice != before {
		t.Error("Expected input to be ignored during animation")
	}

	// Drive the animation to completion
	for i := 0; i <= AnimationTotalFrames(AnimFeed); i++ {
		updated, _ := m.Update(animTickMsg{started: m.Animation.StartTime})
		m = updated.(Model)
	}
	if m.Animation.Type != AnimNone {
		t.Errorf("Expected animation to finish, got %v", m.Animation.Type)
	}
}

func TestMenuNavigation(t *testing.T) {
	m, _ := newTestModel(t, "Rex")

	m = sendKey(m, "up")
	if m.Choice != 0 {
		t.Errorf("Expected choice pinned at 0, got %d", m.Choice)
	}

	for i := 0; i < 10; i++ {
		m = sendKey(m, "down")
	}
	if m.Choice != len(menuChoices)-1 {
		t.Errorf("Expected choice pinned at %d, got %d", len(menuChoices)-1, m.Choice)
	}
}

func TestQuitConfirmSaves(t *testing.T) {
	m, store := newTestModel(t, "Rex")

	m = sendKey(m, "q")
	if m.Screen != screenQuitConfirm {
		t.Fatalf("Expected quit confirmation, got %v", m.Screen)
	}

	m = sendKey(m, "n")
	if m.Screen != screenGame {
		t.Fatalf("Expected to return to game on 'n', got %v", m.Screen)
	}

	m = sendKey(m, "q")
	m = sendKey(m, "y")
	if !m.Quitting {
		t.Error("Expected quitting after confirmation")
	}
	if !store.Exists("Rex") {
		t.Error("Expected pet saved on quit")
	}
}

func TestTickMovesDyingPetToDeadScreen(t *testing.T) {
	m, _ := newTestModel(t, "Rex")

	// Starving and miserable with almost no health left; the next decay
	// tick applies the critical health penalty and finishes it
	m.Pet.Hunger = 10
	m.Pet.Happiness = 10
	m.Pet.Health = 5
	m.Pet.LastUpdated = time.Now().Add(-2 * time.Hour)

	updated, _ := m.Update(tickMsg(time.Now()))
	m = updated.(Model)

	if m.Pet.IsAlive() {
		t.Fatalf("Expected pet to die, health %d", m.Pet.Health)
	}
	if m.Screen != screenDead {
		t.Errorf("Expected dead screen, got %v", m.Screen)
	}
}

func TestViewsRender(t *testing.T) {
	m, _ := newTestModel(t, "Rex")

	if m.View() == "" {
		t.Error("Expected game view to render")
	}

	m.Screen = screenDead
	if m.View() == "" {
		t.Error("Expected dead view to render")
	}

	m.Screen = screenGame
	m.startAnimation(AnimPlay)
	if m.View() == "" {
		t.Error("Expected animation view to render")
	}
}
