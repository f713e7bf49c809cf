package pet

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

const saveExt = ".json"

// ErrNotFound is returned by Load when no save file exists for the name.
var ErrNotFound = errors.New("no saved pet")

// DecodeError reports a save file that exists but cannot be parsed. Callers
// usually recover by creating a fresh pet.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("corrupt save file %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Store reads and writes pet save files, one JSON file per pet keyed by the
// lower-cased name, under a single directory.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir. The directory is created lazily on
// the first Save.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// DefaultStore resolves the per-user data directory for saves.
func DefaultStore() (*Store, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("resolving data directory: %w", err)
	}
	return NewStore(filepath.Join(base, "nybbler")), nil
}

// Dir returns the store's root directory.
func (s *Store) Dir() string { return s.dir }

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, strings.ToLower(name)+saveExt)
}

// Exists reports whether a save file exists for the name. Any failure to
// reach the file counts as "no save", not an error.
func (s *Store) Exists(name string) bool {
	info, err := os.Stat(s.path(name))
	return err == nil && !info.IsDir()
}

// Load reads the named pet from disk. Returns ErrNotFound if there is no
// save file and a DecodeError if the file cannot be parsed.
func (s *Store) Load(name string) (Pet, error) {
	path := s.path(name)
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Pet{}, fmt.Errorf("loading %s: %w", name, ErrNotFound)
	}
	if err != nil {
		return Pet{}, fmt.Errorf("reading save file: %w", err)
	}

	var p Pet
	if err := json.Unmarshal(data, &p); err != nil {
		return Pet{}, &DecodeError{Path: path, Err: err}
	}

	// Older saves predate character variants; assign one instead of failing
	if !p.Character.Valid() {
		p.Character = RandomCharacter()
		log.Printf("Save for %s had no character; assigned %s", p.Name, p.Character)
	}
	if !p.Mood.Valid() {
		p.updateMood()
	}

	return p, nil
}

// Save writes the pet to its save file, overwriting any previous save.
func (s *Store) Save(p *Pet) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("creating save directory: %w", err)
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding pet: %w", err)
	}

	if err := os.WriteFile(s.path(p.Name), data, 0644); err != nil {
		return fmt.Errorf("writing save file: %w", err)
	}
	return nil
}

// DeleteAll removes every pet save file in the store and returns how many
// were removed. A missing directory is treated as an empty store.
func (s *Store) DeleteAll() (int, error) {
	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("reading save directory: %w", err)
	}

	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != saveExt {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, entry.Name())); err != nil {
			return removed, fmt.Errorf("removing %s: %w", entry.Name(), err)
		}
		removed++
	}
	return removed, nil
}
