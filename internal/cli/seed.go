package cli

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/abecedary/abecedary/internal/config"
	"github.com/abecedary/abecedary/internal/database"
	"github.com/abecedary/abecedary/internal/database/catalog"
	"github.com/abecedary/abecedary/internal/seed"
)

// SeedCommand loads the built-in alphabet catalog into the database.
type SeedCommand struct {
	DatabasePath string
	Verbose      bool
}

// NewSeedCommand creates a new SeedCommand
func NewSeedCommand() *SeedCommand {
	return &SeedCommand{}
}

// ParseFlags parses command line flags
func (cmd *SeedCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("seed", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the database file to seed")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "Enable verbose logging")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s seed [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Load the built-in alphabets and letters into the database.\n")
		fmt.Fprintf(os.Stderr, "Seeding is idempotent: alphabets that already exist are left untouched.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s seed\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s seed -db /var/lib/abecedary/abecedary.db\n", os.Args[0])
	}

	return fs.Parse(args)
}

// Run executes the seed command
func (cmd *SeedCommand) Run() error {
	absDBPath, err := filepath.Abs(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path for database: %w", err)
	}
	cmd.DatabasePath = absDBPath

	fmt.Printf("💾 Seeding database: %s\n", cmd.DatabasePath)

	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	repo := catalog.NewRepository(db.DB)
	result, err := seed.Run(repo)
	if err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	if cmd.Verbose {
		for _, name := range result.SkippedAlphabets {
			fmt.Printf("  → %s already present, skipped\n", name)
		}
	}
	fmt.Printf("✅ Seeded %d alphabets and %d letters (%d already present)\n",
		result.CreatedAlphabets, result.CreatedLetters, len(result.SkippedAlphabets))
	return nil
}
