// bakery is a terminal cake-baking game: collect ingredients, bake at the
// table and serve the customer before the clock runs out.
//
// Usage:
//
//	bakery list              - List available game modes
//	bakery play <game>       - Play a game mode
//	bakery menu              - Start menu to pick a mode interactively
//	bakery scores <game>     - Show high scores for a mode
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.bakery/scores.db)
//	--config <path>       - Custom game config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-file <path>     - Write logs to a file (default: discard)
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bakery/internal/games/bakery"
	"github.com/vovakirdan/tui-bakery/internal/platform/tui"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string

	logFile io.Closer
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bakery",
	Short: "Cake Rush - bake and serve cakes in your terminal",
	Long: `Cake Rush is a small platformer set in a bakery. Walk the kitchen,
pick up ingredients, bake cakes at the table and hand the customer the
cake they ask for before time runs out.

Available commands:
  list     - Show all game modes
  play     - Play a specific mode directly
  menu     - Interactive mode picker
  scores   - View high scores

Examples:
  bakery list
  bakery play bakery
  bakery play bakery_sandbox
  bakery menu --difficulty easy
  bakery scores bakery`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging()
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.bakery/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discard)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
}

// setupLogging builds the shared logger. The TUI owns the terminal, so logs
// only go to a file.
func setupLogging() error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var w io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file %s: %w", flagLogFile, err)
		}
		logFile = f
		w = f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "bakery",
		Level:           level,
	})
	bakery.SetLogger(logger)
	tui.SetLogger(logger)
	return nil
}

// applyGameFlags hands the config path and difficulty to the game package
// before a game is created.
func applyGameFlags() {
	bakery.SetConfigPath(flagConfig)
	bakery.SetDifficultyPreset(flagDifficulty)
}
