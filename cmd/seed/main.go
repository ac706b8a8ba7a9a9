// Package main provides a tool to seed the local database with the demo board.
//
// It serializes the built-in demo fixture and stores it as the persisted
// snapshot, replacing whatever was there. Useful for resetting a development
// environment to a known state.
//
// Usage:
//
//	DATA_PATH=~/KanbanServer/data go run ./cmd/seed
//	DATA_PATH=~/KanbanServer/data go run ./cmd/seed --clear  # Wipe the snapshot instead
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/npaulus/kanban-server/internal/codec"
	"github.com/npaulus/kanban-server/internal/fixture"
	"github.com/npaulus/kanban-server/internal/store"
)

var clear = flag.Bool("clear", false, "Clear the persisted snapshot instead of seeding")

func main() {
	flag.Parse()

	dataPath := os.Getenv("DATA_PATH")
	if dataPath == "" {
		dataPath = os.ExpandEnv("$HOME/KanbanServer/data")
	}

	fmt.Printf("Opening database at: %s\n", dataPath)

	s := store.New(dataPath, nil)
	if !s.IsSupported() {
		log.Fatal("No data path available, nothing to seed")
	}
	defer s.Close()

	ctx := context.Background()
	if err := s.Init(ctx); err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}

	if *clear {
		if err := s.ClearState(ctx); err != nil {
			log.Fatalf("Failed to clear snapshot: %v", err)
		}
		fmt.Println("Snapshot cleared")
		return
	}

	state := fixture.State()
	data, err := codec.Serialize(state)
	if err != nil {
		log.Fatalf("Failed to serialize demo board: %v", err)
	}
	if err := s.SetState(ctx, data); err != nil {
		log.Fatalf("Failed to store snapshot: %v", err)
	}

	fmt.Printf("Seeded demo board: %d boards, %d columns, %d cards\n",
		len(state.Boards), len(state.Columns), len(state.Cards))
}
