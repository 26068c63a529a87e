package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/replay"
)

var flagQuiet bool

var replayCmd = &cobra.Command{
	Use:   "replay <script>",
	Short: "Run a recorded input script without a terminal",
	Long: `Feed a YAML script of timed actions into a new game and print the
final board and score. The same script always gives the same result.

Script format:
  seed: 42            # piece order
  step_ms: 16         # simulated frame length (default 16)
  duration_ms: 5000   # keep running after the last event (optional)
  config:             # overrides on top of the loaded config (optional)
    field: {columns: 10, rows: 20}
  events:
    - {at: 0, action: move_left}
    - {at: 120, action: rotate_cw}
    - {at: 300, action: hard_drop}

Actions: move_left, move_right, rotate_cw, rotate_ccw, soft_drop,
soft_drop_off, hard_drop, pause, restart, quit.

A non-zero --seed overrides the script's seed.

Examples:
  tetris replay ./game.yaml
  tetris replay ./game.yaml --verbose
  tetris replay ./game.yaml --difficulty hard --quiet`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().BoolVarP(&flagQuiet, "quiet", "q", false, "Print only the score line")
}

func runReplay(cmd *cobra.Command, args []string) {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	base, err := loadConfig(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	script, err := replay.Load(args[0], base)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagSeed != 0 {
		script.Seed = flagSeed
	}

	res, err := replay.Run(script, logger)
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	snap := res.Snapshot
	if !flagQuiet {
		status := ""
		if snap.State == tetris.StateGameOver {
			status = "GAME OVER"
		}
		fmt.Println(tui.PlainBoard(snap, status))
		fmt.Println()
	}
	fmt.Printf("score=%d lines=%d level=%d pieces=%d time=%v state=%s\n",
		snap.Score.Points, snap.Score.Lines, snap.Score.Level, snap.Spawned, snap.Elapsed, snap.State)
}
