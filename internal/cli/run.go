// run.go - the "run" subcommand: load a .nmr instance, seed it with
// sbbu, refine with bb or pt, and write a sibling TOML log record.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	charmlog "github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/dgprune/bb"
	"github.com/katalvlaran/dgprune/instance"
	"github.com/katalvlaran/dgprune/pt"
	"github.com/katalvlaran/dgprune/sbbu"
)

// runOpts holds the flags for the run command.
type runOpts struct {
	fnmr     string
	tmaxSecs int
	algo     string
	cleanLog bool
}

// logRecord is the sibling <fnmr>.log file's schema, written as TOML.
type logRecord struct {
	RunID       string  `toml:"run_id"`
	Fnmr        string  `toml:"fnmr"`
	NNodes      int     `toml:"nnodes"`
	NumEdges    int     `toml:"num_edges"`
	NumSegments int     `toml:"num_segments"`
	CostRelax   uint64  `toml:"cost_relax"`
	CostSbbu    uint64  `toml:"cost_sbbu"`
	TimeSbbu    float64 `toml:"time_sbbu"`
	CostBB      uint64  `toml:"cost_bb,omitempty"`
	TimeBB      float64 `toml:"time_bb,omitempty"`
	TimeoutBB   bool    `toml:"timeout_bb,omitempty"`
	CostPT      uint64  `toml:"cost_pt,omitempty"`
	TimePT      float64 `toml:"time_pt,omitempty"`
	TimeoutPT   bool    `toml:"timeout_pt,omitempty"`
}

// newRunCmd creates the run command.
func newRunCmd() *cobra.Command {
	opts := runOpts{tmaxSecs: 3600, algo: "bb"}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Solve a pruning-edge ordering instance",
		Long: `Loads a .nmr instance, seeds an upper bound with the sort-based
heuristic, then refines it with an exact Branch-and-Bound or
Precedence-Tree search, writing a sibling .log file alongside the
input.`,
		RunE: func(c *cobra.Command, args []string) error {
			return runSolve(c, &opts)
		},
	}

	cmd.Flags().StringVar(&opts.fnmr, "fnmr", "", "input .nmr file (required)")
	cmd.Flags().IntVar(&opts.tmaxSecs, "tmax", opts.tmaxSecs, "deadline in seconds")
	cmd.Flags().StringVar(&opts.algo, "algo", opts.algo, `exact search to run after sbbu: "bb" or "pt"`)
	cmd.Flags().BoolVar(&opts.cleanLog, "clean_log", false, "force rerun even if a sibling .log already exists")
	_ = cmd.MarkFlagRequired("fnmr")

	return cmd
}

func runSolve(c *cobra.Command, opts *runOpts) error {
	ctx := c.Context()
	logger := loggerFromContext(ctx)

	if opts.algo != "bb" && opts.algo != "pt" {
		return ErrUnknownAlgo
	}

	logPath := opts.fnmr + ".log"
	if !opts.cleanLog {
		if _, err := os.Stat(logPath); err == nil {
			logger.Infof("sibling log %s already exists, skipping (use --clean_log to force)", logPath)

			return nil
		}
	}

	prog := newProgress(logger)
	inst, err := instance.Load(opts.fnmr)
	if err != nil {
		return fmt.Errorf("cli: load %s: %w", opts.fnmr, err)
	}
	prog.done(fmt.Sprintf("loaded %d edges, %d segments", inst.NumEdges(), inst.NumSegments()))

	tmax := time.Duration(opts.tmaxSecs) * time.Second

	sbbuStart := time.Now()
	sbbuOrder, sbbuCost := sbbu.Order(inst)
	timeSbbu := time.Since(sbbuStart)
	logger.Debugf("sbbu order %v cost %d", sbbuOrder, sbbuCost)

	rec := logRecord{
		RunID:       uuid.NewString(),
		Fnmr:        opts.fnmr,
		NNodes:      inst.NNodes(),
		NumEdges:    inst.NumEdges(),
		NumSegments: inst.NumSegments(),
		CostRelax:   inst.TotalWeight(),
		CostSbbu:    sbbuCost,
		TimeSbbu:    timeSbbu.Seconds(),
	}

	if logger.GetLevel() <= charmlog.DebugLevel {
		if diag, derr := inst.DiagnosticGraph(); derr == nil {
			path := diagnosticPath(opts.fnmr)
			if rerr := renderDiagnosticSVG(diag, path); rerr != nil {
				logger.Warnf("diagnostic render failed: %v", rerr)
			} else {
				logger.Debugf("wrote diagnostic graph to %s", path)
			}
		}
	}

	switch opts.algo {
	case "bb":
		start := time.Now()
		res, rerr := bb.Run(inst, tmax)
		if rerr != nil {
			return fmt.Errorf("cli: bb.Run: %w", rerr)
		}
		rec.CostBB = res.Cost
		rec.TimeBB = time.Since(start).Seconds()
		rec.TimeoutBB = res.TimedOut
		logger.Infof("bb order %v cost %d (timed_out=%v)", res.Order, res.Cost, res.TimedOut)
	case "pt":
		start := time.Now()
		res, rerr := pt.Run(inst, tmax)
		if rerr != nil {
			return fmt.Errorf("cli: pt.Run: %w", rerr)
		}
		rec.CostPT = res.Cost
		rec.TimePT = time.Since(start).Seconds()
		rec.TimeoutPT = res.TimedOut
		logger.Infof("pt order %v cost %d (timed_out=%v)", res.Order, res.Cost, res.TimedOut)
	}

	return writeLog(logPath, &rec)
}

// writeLog encodes rec as TOML to path, overwriting any existing file.
func writeLog(path string, rec *logRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cli: create %s: %w", path, err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(rec); err != nil {
		return fmt.Errorf("cli: encode %s: %w", path, err)
	}

	return nil
}
