package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/CatPunch007/LittleWitch/ecs/system"
	"github.com/CatPunch007/LittleWitch/sim"
)

var (
	flagScript   string
	flagSequence string
	flagTicks    int
	flagBasic    bool
	flagEvents   bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a simulation and print the trace",
	Long: `Steps the world at a fixed rate and prints one row per tick.

Input comes from a tengo script in prefabs/scripts (--script) or a built-in
sequence (--sequence, default "dash").

Examples:
  sim run
  sim run --sequence walk --events
  sim run --script spam_dash --ticks 180`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&flagScript, "script", "", "tengo input script name")
	runCmd.Flags().StringVar(&flagSequence, "sequence", "", "built-in input sequence")
	runCmd.Flags().IntVar(&flagTicks, "ticks", 0, "ticks to run (0 = length of the input)")
	runCmd.Flags().BoolVar(&flagBasic, "basic", false, "basic controller without dash")
	runCmd.Flags().BoolVar(&flagEvents, "events", false, "only print ticks with a jump or dash event")
	runCmd.MarkFlagsMutuallyExclusive("script", "sequence")
}

func runRun(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}

	res, err := sim.Run(sim.Options{
		Script:   flagScript,
		Sequence: flagSequence,
		Ticks:    flagTicks,
		TPS:      flagTPS,
		Basic:    flagBasic,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	printTrace(os.Stdout, res.Rows, flagEvents)
	logger.Info("simulation finished", "ticks", len(res.Rows), "step", res.Step)
	return nil
}

func printTrace(w io.Writer, rows []system.TraceRow, eventsOnly bool) {
	fmt.Fprintf(w, "%-5s  %-7s  %-8s  %-8s  %-8s  %-8s  %-4s  %-3s  %-5s  %-12s  %s\n",
		"tick", "time", "x", "y", "vx", "vy", "grav", "gnd", "face", "dash", "events")
	for _, row := range rows {
		events := rowEvents(row)
		if eventsOnly && events == "" {
			continue
		}
		fmt.Fprintf(w, "%-5d  %-7.3f  %-8.3f  %-8.3f  %-8.3f  %-8.3f  %-4.1f  %-3s  %-5s  %-12s  %s\n",
			row.Tick, row.Time.Seconds(), row.X, row.Y, row.VX, row.VY, row.GravityScale,
			yesNo(row.Grounded), row.Facing, row.Phase, events)
	}
}

func rowEvents(row system.TraceRow) string {
	var out string
	add := func(on bool, name string) {
		if !on {
			return
		}
		if out != "" {
			out += ","
		}
		out += name
	}
	add(row.Jumped, "jump")
	add(row.DashStarted, "dash_start")
	add(row.DashEnded, "dash_end")
	add(row.DashReady, "dash_ready")
	return out
}

func yesNo(b bool) string {
	if b {
		return "y"
	}
	return "n"
}
