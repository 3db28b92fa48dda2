package cli

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/abecedary/abecedary/internal/client"
	"github.com/abecedary/abecedary/internal/config"
	"github.com/abecedary/abecedary/internal/controller"
	"github.com/abecedary/abecedary/internal/fallback"
	"github.com/abecedary/abecedary/internal/tui"
)

// PracticeCommand launches the terminal practice interface.
type PracticeCommand struct {
	ServerURL string
	Timeout   time.Duration
}

// NewPracticeCommand creates a new PracticeCommand
func NewPracticeCommand() *PracticeCommand {
	return &PracticeCommand{}
}

// ParseFlags parses command line flags
func (cmd *PracticeCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("practice", flag.ExitOnError)

	// Flag defaults come from the environment-backed config so
	// SERVER_URL and REQUEST_TIMEOUT work without flags.
	cfg := config.NewConfig()
	fs.StringVar(&cmd.ServerURL, "server", cfg.Client.ServerURL, "Base URL of the abecedary server")
	fs.DurationVar(&cmd.Timeout, "timeout", cfg.Client.RequestTimeout, "Per-request timeout for server calls")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s practice [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Browse alphabets and run flashcard practice in the terminal.\n")
		fmt.Fprintf(os.Stderr, "If the server is unreachable a built-in catalog keeps the UI usable.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s practice\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s practice -server http://localhost:8188\n", os.Args[0])
	}

	return fs.Parse(args)
}

// Run executes the practice command
func (cmd *PracticeCommand) Run() error {
	api := client.NewClient(cmd.ServerURL, cmd.Timeout)
	ctrl := controller.NewController(fallback.NewProvider())
	if err := tui.Run(api, ctrl, cmd.Timeout); err != nil {
		return fmt.Errorf("practice UI failed: %w", err)
	}
	return nil
}
