package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	dbfs "github.com/garnizeh/pathfinder/db"
	"github.com/garnizeh/pathfinder/internal/config"
	"github.com/garnizeh/pathfinder/internal/db"
	"github.com/garnizeh/pathfinder/internal/fixtures"
	"github.com/garnizeh/pathfinder/internal/repository/sqlite"
	"github.com/garnizeh/pathfinder/internal/store"
)

// db_init creates the snapshot schema and, with -seed, stores the demo dataset.
func main() {
	configPath := flag.String("config", "", "Path to config YAML file")
	seed := flag.Bool("seed", false, "Store the demo dataset as the initial snapshot")
	flag.Parse()

	_ = godotenv.Load()

	ctx := context.Background()
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	if !cfg.PersistenceEnabled() {
		fmt.Fprintln(os.Stderr, "DB init error: database_path is not set")
		os.Exit(1)
	}

	database, err := db.New(ctx, cfg.DatabasePath, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "DB init error: %v\n", err)
		os.Exit(1)
	}
	defer database.Close()

	if err := db.Migrate(ctx, database, dbfs.Migrations); err != nil {
		fmt.Fprintf(os.Stderr, "Migration runner error: %v\n", err)
		os.Exit(1)
	}

	if *seed {
		st := store.New()
		if err := fixtures.Seed(ctx, st); err != nil {
			fmt.Fprintf(os.Stderr, "Seed error: %v\n", err)
			os.Exit(1)
		}
		if err := st.Save(ctx, sqlite.New(database, nil)); err != nil {
			fmt.Fprintf(os.Stderr, "Seed error: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Println("Database initialized successfully.")
}
