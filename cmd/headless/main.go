// cmd/headless/main.go
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"

	game "go-wild-friends/internal/app"
)

func main() {
	var paths game.DataPaths
	var runs, maxTicks, tail int
	var seedBase int64
	var accuracy float64
	var snapshotPath string
	var copyReport, verbose bool

	flag.IntVar(&runs, "runs", 1, "number of sessions to play")
	flag.Int64Var(&seedBase, "seed", 42, "seed of the first session, next sessions add 1")
	flag.IntVar(&maxTicks, "max-ticks", 60*60*20, "tick budget per session (60 ticks = 1s)")
	flag.Float64Var(&accuracy, "accuracy", 0.75, "share of quiz questions answered correctly")
	flag.IntVar(&tail, "tail", 20, "battle log lines to print per session")
	flag.BoolVar(&verbose, "v", false, "print the whole battle log")
	flag.StringVar(&snapshotPath, "snapshot", "", "write a msgpack snapshot of the last session to this file")
	flag.BoolVar(&copyReport, "copy", false, "copy the report to the clipboard")
	flag.StringVar(&paths.Balance, "balance", "", "balance YAML file")
	flag.StringVar(&paths.Units, "units", "", "unit definitions JSON file")
	flag.StringVar(&paths.Waves, "waves", "", "wave definitions JSON file")
	flag.StringVar(&paths.Questions, "questions", "", "directory with <archetype>.json question files")
	flag.Parse()

	if runs <= 0 || maxTicks <= 0 {
		fmt.Println("error: -runs and -max-ticks must be > 0")
		os.Exit(2)
	}
	if accuracy < 0 || accuracy > 1 {
		fmt.Println("error: -accuracy must be in [0, 1]")
		os.Exit(2)
	}

	var out strings.Builder
	fmt.Fprintf(&out, "=== Wild Friends Headless Report ===\n")
	fmt.Fprintf(&out, "runs=%d seed=%d max_ticks=%d accuracy=%.2f\n\n", runs, seedBase, maxTicks, accuracy)

	var last *game.Game
	victories := 0
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)
		opts, err := game.LoadOptions(paths, seed)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			os.Exit(1)
		}
		g := game.NewGame(opts)
		r := game.NewAutopilot(g, accuracy, seed).Run(maxTicks)
		if r.Phase == "Victory" {
			victories++
		}
		printRun(&out, i+1, seed, r)
		if verbose {
			out.WriteString(g.Log.Format())
		} else if tail > 0 {
			out.WriteString(g.Log.Tail(tail))
		}
		out.WriteByte('\n')
		last = g
	}
	fmt.Fprintf(&out, "victories: %d/%d\n", victories, runs)

	report := out.String()
	fmt.Print(report)

	if snapshotPath != "" {
		if err := writeSnapshot(last, snapshotPath); err != nil {
			fmt.Printf("error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("snapshot written to %s\n", snapshotPath)
	}
	if copyReport {
		if err := clipboard.WriteAll(report); err != nil {
			fmt.Printf("warning: clipboard copy failed: %v\n", err)
		} else {
			fmt.Println("report copied to clipboard")
		}
	}
}

func printRun(out *strings.Builder, n int, seed int64, r game.Report) {
	fmt.Fprintf(out, "--- run %d (seed %d, session %s) ---\n", n, seed, r.SessionID)
	fmt.Fprintf(out, "result=%s waves_won=%d ticks=%d time=%.1fs\n", r.Phase, r.WavesWon, r.Ticks, r.GameTime)
	fmt.Fprintf(out, "gold=%d lives=%d deaths=%d skills=%d quiz=%d/%d\n",
		r.Gold, r.Lives, r.Deaths, r.Skills, r.Correct, r.Correct+r.Wrong)
}

func writeSnapshot(g *game.Game, path string) error {
	data, err := g.Snapshot().Encode()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}
