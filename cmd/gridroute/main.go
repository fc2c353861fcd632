// Command gridroute reads a two-layer grid maze-routing problem from an
// input file and writes the routed nets to an output file.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridroute/config"
	"github.com/katalvlaran/gridroute/costmodel"
	"github.com/katalvlaran/gridroute/ioformat"
	"github.com/katalvlaran/gridroute/ripup"
	"github.com/katalvlaran/gridroute/telemetry"
)

// Exit codes, per the command's external interface.
const (
	exitSuccess    = 0
	exitInputFatal = 1
	exitUsageError = 2
)

type flags struct {
	configPath         string
	viaCost            int
	wrongDirectionCost int
	congestionWeight   int
	maxRipUp           int
	seed               int64
	timeout            time.Duration
	verbose            bool
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var f flags
	cmd := newRootCmd(&f)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		if errors.Is(err, errUsage{}) {
			return exitUsageError
		}
		return exitInputFatal
	}
	return cmd.Context().Value(exitCodeKey{}).(int)
}

type exitCodeKey struct{}

// errUsage marks cobra argument- and flag-validation failures so run can map
// them to exitUsageError instead of exitInputFatal.
type errUsage struct{ inner error }

func (e errUsage) Error() string { return e.inner.Error() }
func (e errUsage) Unwrap() error { return e.inner }
func (e errUsage) Is(target error) bool {
	_, ok := target.(errUsage)
	return ok
}

func newRootCmd(f *flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "gridroute <input-path> <output-path>",
		Short:        "Two-layer grid maze router for IC net routing",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errUsage{fmt.Errorf("expected exactly 2 positional arguments, got %d", len(args))}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			code := execute(cmd, args[0], args[1], f)
			cmd.SetContext(context.WithValue(cmd.Context(), exitCodeKey{}, code))
			if code == exitInputFatal {
				return fmt.Errorf("gridroute: run failed")
			}
			return nil
		},
	}
	cmd.SetContext(context.WithValue(context.Background(), exitCodeKey{}, exitSuccess))

	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "path to a YAML config file overriding router constants")
	cmd.Flags().IntVar(&f.viaCost, "via-cost", -1, "cost of a via move (overrides config/default if >= 0)")
	cmd.Flags().IntVar(&f.wrongDirectionCost, "wrong-direction", -1, "cost of a wrong-direction move (overrides config/default if >= 0)")
	cmd.Flags().IntVar(&f.congestionWeight, "congestion-weight", -1, "per-unit congestion cost weight (overrides config/default if >= 0)")
	cmd.Flags().IntVar(&f.maxRipUp, "max-ripup", -1, "rip-up iteration cap (overrides config/default if >= 0)")
	cmd.Flags().Int64Var(&f.seed, "seed", -1, "rip-up shuffle RNG seed (overrides config/default if >= 0)")
	cmd.Flags().DurationVar(&f.timeout, "timeout", 0, "overall run timeout (0 = no timeout)")
	cmd.Flags().BoolVar(&f.verbose, "verbose", false, "enable debug-level logging")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errUsage{err}
	})

	return cmd
}

// execute runs the parse -> route -> write pipeline and returns the
// process exit code, logging along the way. It never returns
// exitUsageError; that's reserved for cobra's own argument validation.
func execute(cmd *cobra.Command, inputPath, outputPath string, f *flags) int {
	logger := setupLogger(f.verbose)
	id := runID(inputPath)
	logger = logger.With("run_id", id.String())

	ctx := cmd.Context()
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	model, maxIterations, seed, err := resolveConfig(f)
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		return exitInputFatal
	}

	parsed, err := ioformat.Parse(inputPath)
	if err != nil {
		logger.Error("failed to parse input", "error", err)
		return exitInputFatal
	}
	for _, w := range parsed.Warnings {
		logger.Warn(w)
	}

	rec := telemetry.New()

	if err := ctx.Err(); err != nil {
		logger.Error("run timed out before routing began", "error", err)
		return exitInputFatal
	}

	routed, order, routeErr := ripup.Route(ctx, parsed.Grid, parsed.Nets, nil, model, seed, maxIterations, rec)
	for _, name := range order {
		if _, ok := routed[name]; ok {
			rec.NetRouted()
		} else {
			rec.NetFailed()
		}
	}
	if routeErr != nil {
		if errors.Is(routeErr, context.DeadlineExceeded) || errors.Is(routeErr, context.Canceled) {
			logger.Error("run cancelled during routing", "error", routeErr)
			return exitInputFatal
		}
		logger.Warn("some nets did not route", "error", routeErr)
	}

	if err := ioformat.Write(outputPath, routed, order); err != nil {
		logger.Error("failed to write output", "error", err)
		return exitInputFatal
	}

	logger.Info("run complete", "summary", rec.Summary())
	return exitSuccess
}

// resolveConfig layers CLI flags over an optional config file over
// built-in defaults: flags win when explicitly set (sentinel -1), the
// config file wins over costmodel.Default/ripup.DefaultMaxIterations
// otherwise.
func resolveConfig(f *flags) (costmodel.Model, int, int64, error) {
	var cfg *config.Config
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return costmodel.Model{}, 0, 0, err
		}
		cfg = loaded
	}

	model := cfg.Model()
	opts := make([]costmodel.Option, 0, 3)
	if f.viaCost >= 0 {
		opts = append(opts, costmodel.WithViaCost(f.viaCost))
	}
	if f.wrongDirectionCost >= 0 {
		opts = append(opts, costmodel.WithWrongDirectionCost(f.wrongDirectionCost))
	}
	if f.congestionWeight >= 0 {
		opts = append(opts, costmodel.WithCongestionWeight(f.congestionWeight))
	}
	if len(opts) > 0 {
		base := model
		model = costmodel.New(append([]costmodel.Option{
			costmodel.WithViaCost(base.ViaCost),
			costmodel.WithWrongDirectionCost(base.WrongDirectionCost),
			costmodel.WithCongestionWeight(base.CongestionWeight),
		}, opts...)...)
	}

	maxIterations := cfg.MaxRipUpIterations()
	if f.maxRipUp >= 0 {
		maxIterations = f.maxRipUp
	}

	seed := cfg.RipUpSeed()
	if f.seed >= 0 {
		seed = f.seed
	}

	return model, maxIterations, seed, nil
}
