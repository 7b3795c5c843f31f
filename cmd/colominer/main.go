// Command colominer mines co-location patterns from a CSV-encoded set of
// spatial objects.
package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Academic-Paper-Implementations/Efficient-Co-location-Pattern-Mining-in-Large-Spatial-Datasets-with-Rare-Features"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "colominer",
		Short:         "Mine spatial co-location patterns from CSV-encoded objects",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newMineCommand())
	return root
}

func newMineCommand() *cobra.Command {
	var (
		configPath string
		flags      runConfig
	)

	cmd := &cobra.Command{
		Use:   "mine",
		Short: "Run the mining pipeline over an input CSV of objects",
		RunE: func(cmd *cobra.Command, args []string) error {
			flagsSet := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) {
				flagsSet[f.Name] = true
			})
			cfg, err := loadConfig(configPath, flags, flagsSet)
			if err != nil {
				return err
			}
			return runMine(cmd, cfg)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to a YAML config file")
	cmd.Flags().StringVar(&flags.Input, "input", "", "path to the input CSV (id,type,x,y); required")
	cmd.Flags().Float64Var(&flags.NeighborDistance, "neighbor-distance", 0, "neighbor distance threshold d; required")
	cmd.Flags().Float64Var(&flags.MinPrev, "min-prev", 0.6, "minimum WPI threshold for a colocation to be reported")
	cmd.Flags().IntVar(&flags.Workers, "workers", 1, "number of goroutines for parallelizable stages")
	cmd.Flags().StringVar(&flags.Format, "format", "text", "output format: text|json")
	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("neighbor-distance")

	return cmd
}

func runMine(cmd *cobra.Command, cfg *runConfig) error {
	runID := uuid.New().String()

	level := zapcore.InfoLevel
	_ = level.UnmarshalText([]byte(cfg.LogLevel))
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.Encoding = "console"
	zcfg.OutputPaths = []string{"stderr"}
	logger, err := zcfg.Build()
	if err != nil {
		return wrapf(err, "building logger")
	}
	defer logger.Sync()
	logger = logger.With(zap.String("run_id", runID))

	f, err := os.Open(cfg.Input)
	if err != nil {
		return wrapf(err, "opening input %q", cfg.Input)
	}
	defer f.Close()

	objects, err := readObjectsCSV(f)
	if err != nil {
		return err
	}

	mineCfg := colocation.DefaultConfig()
	mineCfg.NeighborDistance = cfg.NeighborDistance
	mineCfg.MinPrev = cfg.MinPrev
	mineCfg.Workers = cfg.Workers
	mineCfg.Logger = logger

	logger.Info("starting mining run",
		zap.Int("objects", len(objects)),
		zap.Float64("neighborDistance", mineCfg.NeighborDistance),
		zap.Float64("minPrev", mineCfg.MinPrev),
	)

	result, err := colocation.Mine(objects, mineCfg)
	if err != nil {
		return wrapf(err, "mining run %s", runID)
	}

	logger.Info("mining run complete",
		zap.Int("colocations", len(result.Colocations)),
		zap.Float64("delta", result.Delta),
	)

	return writeResult(cmd.OutOrStdout(), result, cfg.Format)
}
