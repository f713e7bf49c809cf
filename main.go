package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"nybbler/internal/pet"
	"nybbler/internal/ui"
)

func main() {
	name := flag.String("name", "", "pet name to load or create (skips the name prompt)")
	statsFor := flag.String("stats", "", "show a one-shot stat card for the named pet and exit")
	resetAll := flag.Bool("reset-all", false, "delete every saved pet and exit")
	dir := flag.String("dir", "", "override the save directory (defaults to the user data dir)")
	flag.Parse()

	store, err := openStore(*dir)
	if err != nil {
		log.Fatalf("Error resolving save directory: %v", err)
	}

	if *resetAll {
		removed, err := store.DeleteAll()
		if err != nil {
			log.Fatalf("Error deleting saves: %v", err)
		}
		fmt.Printf("Removed %d saved pet(s) from %s\n", removed, store.Dir())
		return
	}

	if *statsFor != "" {
		p, err := store.Load(*statsFor)
		if err != nil {
			log.Fatalf("Error loading %s: %v", *statsFor, err)
		}
		p.Update(pet.TimeNow())
		ui.DisplayStats(p)
		return
	}

	// Keep log chatter out of the TUI
	if err := os.MkdirAll(store.Dir(), 0755); err == nil {
		logPath := filepath.Join(store.Dir(), "nybbler.log")
		if f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644); err == nil {
			defer f.Close()
			log.SetOutput(f)
		}
	}

	if _, err := tea.NewProgram(ui.NewModel(store, *name)).Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

func openStore(dir string) (*pet.Store, error) {
	if dir != "" {
		return pet.NewStore(dir), nil
	}
	return pet.DefaultStore()
}
