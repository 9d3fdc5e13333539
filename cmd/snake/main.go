// snake is a single-player grid snake game.
//
// Usage:
//
//	snake                    - Play in the terminal
//	snake play               - Same as above
//	snake frontends          - List available frontends
//
// Flags:
//
//	--frontend <id>   - terminal or window (default: terminal)
//	--rows, --cols    - Board size in cells (default: 10x10)
//	--tick <d>        - Logic tick interval (default: 160ms)
//	--fps <rate>      - Frame rate for input and drawing (default: 60)
//	--seed <value>    - RNG seed for reproducible fruit placement
//	--log-level <lvl> - debug, info, warn or error
//	--log-file <path> - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import frontends to register them
	_ "github.com/vovakirdan/gridsnake/internal/platform/tui"
	_ "github.com/vovakirdan/gridsnake/internal/platform/window"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - steer a growing snake around a grid",
	Long: `Snake is a single-player grid game. Steer the snake with the arrow
keys, eat fruit to grow, and avoid the walls and your own body.
Your score is the snake's length when the game ends.

Available commands:
  play       - Play a game (default)
  frontends  - Show available frontends

Examples:
  snake
  snake play --frontend window
  snake --rows 20 --cols 20 --tick 120ms
  snake --seed 42 --log-file ./snake.log --log-level debug`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(frontendsCmd)
}
