package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/game"
	"github.com/vovakirdan/gridsnake/internal/logging"
	"github.com/vovakirdan/gridsnake/internal/platform/tui"
	"github.com/vovakirdan/gridsnake/internal/registry"
	"github.com/vovakirdan/gridsnake/internal/session"
)

var (
	flagFrontend string
	flagRows     int
	flagCols     int
	flagTick     time.Duration
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game with the selected frontend.

Controls:
  Arrows/WASD - Steer
  Esc/Q       - Quit the current game

After each game the score is printed and you are asked whether to
play again. Answer y to start a fresh game.

Examples:
  snake play
  snake play --frontend window
  snake play --rows 15 --cols 25 --seed 7`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

// addPlayFlags registers the play flags as persistent so the root command
// and "play" share them.
func addPlayFlags(cmd *cobra.Command) {
	defaults := config.Default()

	fs := cmd.PersistentFlags()
	fs.StringVar(&flagFrontend, "frontend", tui.ID, "Frontend to play with (see 'snake frontends')")
	fs.IntVar(&flagRows, "rows", defaults.Grid.Rows, "Board height in cells")
	fs.IntVar(&flagCols, "cols", defaults.Grid.Cols, "Board width in cells")
	fs.DurationVar(&flagTick, "tick", defaults.Timing.TickInterval, "Logic tick interval")
	fs.IntVar(&flagFPS, "fps", defaults.Timing.FPS, "Frame rate for input polling and drawing")
	fs.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	fs.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	fs.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
}

// applyFlags overrides configuration fields whose flags were set.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	fs := cmd.Flags()
	if fs.Changed("rows") {
		cfg.Grid.Rows = flagRows
	}
	if fs.Changed("cols") {
		cfg.Grid.Cols = flagCols
	}
	if fs.Changed("tick") {
		cfg.Timing.TickInterval = flagTick
	}
	if fs.Changed("fps") {
		cfg.Timing.FPS = flagFPS
	}
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	applyFlags(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	palette, err := cfg.Palette.Palette()
	if err != nil {
		return err
	}

	if !registry.Exists(flagFrontend) {
		return fmt.Errorf("unknown frontend %q, run 'snake frontends' to see available frontends", flagFrontend)
	}
	fe, err := registry.Create(flagFrontend)
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger(fe.OwnsTerminal())
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	in := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	for {
		opts := game.Options{
			Rows: cfg.Grid.Rows,
			Cols: cfg.Grid.Cols,
			Seed: resolveSeed(flagSeed),
		}
		s := session.New(opts, palette, logger)

		if err := fe.Run(ctx, s, cfg); err != nil {
			if ctx.Err() != nil {
				logger.Info("interrupted")
				return nil
			}
			return err
		}

		fmt.Fprintf(out, "Score: %d\n", s.Score())
		fmt.Fprintln(out, "Replay? [y/n]")

		again, err := readReplay(in)
		if err != nil {
			return fmt.Errorf("reading replay answer: %w", err)
		}
		if !again {
			return nil
		}
	}
}

// openLogger picks the log destination: the log file if set, nothing if
// the frontend draws on the terminal, stderr otherwise.
func openLogger(ownsTerminal bool) (*log.Logger, func(), error) {
	var w io.Writer = os.Stderr
	closeFn := func() {}

	switch {
	case flagLogFile != "":
		f, err := logging.OpenFile(flagLogFile)
		if err != nil {
			return nil, nil, err
		}
		w = f
		closeFn = func() { f.Close() }
	case ownsTerminal:
		w = io.Discard
	}

	logger, err := logging.New(w, flagLogLevel)
	if err != nil {
		closeFn()
		return nil, nil, err
	}
	return logger, closeFn, nil
}

// resolveSeed returns seed, or a time-based seed when it is 0.
func resolveSeed(seed int64) int64 {
	if seed == 0 {
		return time.Now().UnixNano()
	}
	return seed
}

// readReplay reads lines until one holds a non-blank answer.
// The first non-space character decides: y or Y replays, anything else quits.
// EOF means no.
func readReplay(r *bufio.Reader) (bool, error) {
	for {
		line, err := r.ReadString('\n')
		if answer, ok := parseReplay(line); ok {
			return answer, nil
		}
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
	}
}

// parseReplay interprets one line of input. ok is false for a blank line.
func parseReplay(line string) (answer, ok bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false, false
	}
	c := trimmed[0]
	return c == 'y' || c == 'Y', true
}
