package pet

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	return NewStore(filepath.Join(t.TempDir(), "saves"))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	overrideTime(t, testTime())
	store := newTestStore(t)

	p := New("Rex")
	if err := store.Save(&p); err != nil {
		t.Fatalf("Failed to save pet: %v", err)
	}

	loaded, err := store.Load("Rex")
	if err != nil {
		t.Fatalf("Failed to load pet: %v", err)
	}

	if loaded.Name != p.Name {
		t.Errorf("Name did not round-trip: %s != %s", loaded.Name, p.Name)
	}
	if loaded.Hunger != p.Hunger || loaded.Happiness != p.Happiness ||
		loaded.Energy != p.Energy || loaded.Health != p.Health {
		t.Errorf("Stats did not round-trip: %+v != %+v", loaded, p)
	}
	if loaded.Age != p.Age {
		t.Errorf("Age did not round-trip: %d != %d", loaded.Age, p.Age)
	}
	if loaded.Mood != p.Mood {
		t.Errorf("Mood did not round-trip: %s != %s", loaded.Mood, p.Mood)
	}
	if loaded.Character != p.Character {
		t.Errorf("Character did not round-trip: %s != %s", loaded.Character, p.Character)
	}
	if !loaded.LastUpdated.Equal(p.LastUpdated) {
		t.Errorf("LastUpdated did not round-trip: %v != %v", loaded.LastUpdated, p.LastUpdated)
	}
}

func TestSaveKeyIsLowercasedName(t *testing.T) {
	overrideTime(t, testTime())
	store := newTestStore(t)

	p := New("Rex")
	if err := store.Save(&p); err != nil {
		t.Fatalf("Failed to save pet: %v", err)
	}

	if _, err := os.Stat(filepath.Join(store.Dir(), "rex.json")); err != nil {
		t.Errorf("Expected save file rex.json: %v", err)
	}

	// The name is a case-insensitive key
	if !store.Exists("REX") {
		t.Error("Expected Exists to match regardless of case")
	}
	if _, err := store.Load("rEx"); err != nil {
		t.Errorf("Expected Load to match regardless of case: %v", err)
	}
}

func TestExistsMissing(t *testing.T) {
	store := newTestStore(t)
	if store.Exists("nobody") {
		t.Error("Expected Exists to be false for a pet that was never saved")
	}
}

func TestLoadMissing(t *testing.T) {
	store := newTestStore(t)
	_, err := store.Load("nobody")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestLoadCorruptSave(t *testing.T) {
	store := newTestStore(t)
	if err := os.MkdirAll(store.Dir(), 0755); err != nil {
		t.Fatalf("Failed to create save dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(store.Dir(), "rex.json"), []byte("{not json"), 0644); err != nil {
		t.Fatalf("Failed to write corrupt save: %v", err)
	}

	_, err := store.Load("Rex")
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Errorf("Expected DecodeError, got %v", err)
	}
}

func TestLoadSaveWithoutCharacter(t *testing.T) {
	store := newTestStore(t)
	if err := os.MkdirAll(store.Dir(), 0755); err != nil {
		t.Fatalf("Failed to create save dir: %v", err)
	}

	// A save written before character variants were introduced
	old := `{
  "name": "Rex",
  "hunger": 50,
  "happiness": 50,
  "energy": 100,
  "health": 100,
  "age": 3,
  "last_updated": "2024-03-01T12:00:00+01:00",
  "mood": "Happy"
}`
	if err := os.WriteFile(filepath.Join(store.Dir(), "rex.json"), []byte(old), 0644); err != nil {
		t.Fatalf("Failed to write legacy save: %v", err)
	}

	loaded, err := store.Load("Rex")
	if err != nil {
		t.Fatalf("Expected legacy save to load, got %v", err)
	}
	if !loaded.Character.Valid() {
		t.Errorf("Expected a generated character for legacy save, got %q", loaded.Character)
	}
	if loaded.Age != 3 {
		t.Errorf("Expected age 3 from legacy save, got %d", loaded.Age)
	}
}

func TestLoadUnknownMoodIsReclassified(t *testing.T) {
	store := newTestStore(t)
	if err := os.MkdirAll(store.Dir(), 0755); err != nil {
		t.Fatalf("Failed to create save dir: %v", err)
	}

	edited := `{
  "name": "Rex",
  "hunger": 50,
  "happiness": 50,
  "energy": 100,
  "health": 100,
  "age": 0,
  "last_updated": "2024-03-01T12:00:00+01:00",
  "mood": "Grumpy",
  "character": "cat"
}`
	if err := os.WriteFile(filepath.Join(store.Dir(), "rex.json"), []byte(edited), 0644); err != nil {
		t.Fatalf("Failed to write edited save: %v", err)
	}

	loaded, err := store.Load("Rex")
	if err != nil {
		t.Fatalf("Expected edited save to load, got %v", err)
	}
	if !loaded.Mood.Valid() {
		t.Errorf("Expected unknown mood to be reclassified, got %q", loaded.Mood)
	}
}

func TestDeleteAll(t *testing.T) {
	overrideTime(t, testTime())
	store := newTestStore(t)

	for _, name := range []string{"Rex", "Momo"} {
		p := New(name)
		if err := store.Save(&p); err != nil {
			t.Fatalf("Failed to save %s: %v", name, err)
		}
	}
	// Unrelated files are left alone
	if err := os.WriteFile(filepath.Join(store.Dir(), "nybbler.log"), []byte("log"), 0644); err != nil {
		t.Fatalf("Failed to write log file: %v", err)
	}

	removed, err := store.DeleteAll()
	if err != nil {
		t.Fatalf("DeleteAll failed: %v", err)
	}
	if removed != 2 {
		t.Errorf("Expected 2 saves removed, got %d", removed)
	}
	if store.Exists("Rex") || store.Exists("Momo") {
		t.Error("Expected all saves gone after DeleteAll")
	}
	if _, err := os.Stat(filepath.Join(store.Dir(), "nybbler.log")); err != nil {
		t.Errorf("Expected non-save file to survive DeleteAll: %v", err)
	}
}

func TestDeleteAllMissingDir(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "never-created"))

	removed, err := store.DeleteAll()
	if err != nil {
		t.Errorf("Expected no error for missing directory, got %v", err)
	}
	if removed != 0 {
		t.Errorf("Expected 0 removed for missing directory, got %d", removed)
	}
}
