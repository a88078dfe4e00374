package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/on-the-ground/memo_ive_go/config"
	"github.com/on-the-ground/memo_ive_go/internal/swatch"
	"github.com/on-the-ground/memo_ive_go/observe"
	"github.com/on-the-ground/memo_ive_go/pure"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var errScenarioMismatch = errors.New("scenario did not render the expected number of times")

var (
	configPath string
	memoizer   string
	table      string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "swatch",
	Short: "Replay swatch renders through single-slot and keyed memoizers",
	Long: `Replay swatch renders through single-slot and keyed memoizers.
Each render prints a line, so hits and misses are visible in the output.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

var runCmd = &cobra.Command{
	Use:   "run [colors...]",
	Short: "Render a sequence of colors through one fresh memoizer",
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if len(args) > 0 {
			r.Keys = args
		}

		logger := pure.NewDevelopmentLogger(cmd.ErrOrStderr(), r.Level)
		defer func() { _ = logger.Sync() }()

		s := swatch.Scenario{
			Name:            "run",
			Kind:            r.Kind,
			Steps:           swatch.Sequence(r.Keys...),
			WantInvocations: swatch.ExpectedInvocations(r.Kind, r.Keys),
		}
		return replay(cmd.OutOrStdout(), logger, s, r)
	},
}

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "Run the built-in scenarios and check their render counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		logger := pure.NewDevelopmentLogger(cmd.ErrOrStderr(), r.Level)
		defer func() { _ = logger.Sync() }()

		var failed []string
		for _, s := range swatch.Scenarios() {
			fmt.Fprintf(cmd.OutOrStdout(), "== scenario %s: %s\n", s.Name, s.Description)
			if err := replay(cmd.OutOrStdout(), logger, s, r); err != nil {
				if !errors.Is(err, errScenarioMismatch) {
					return err
				}
				failed = append(failed, s.Name)
			}
		}
		if len(failed) > 0 {
			return fmt.Errorf("%w: %v", errScenarioMismatch, failed)
		}
		return nil
	},
}

func loadConfig(cmd *cobra.Command) (config.Resolved, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Resolved{}, err
	}
	if cmd.Flags().Changed("memoizer") {
		cfg.Memoizer = memoizer
	}
	if cmd.Flags().Changed("table") {
		cfg.Table = table
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	return cfg.Resolve()
}

func replay(out io.Writer, logger *zap.Logger, s swatch.Scenario, r config.Resolved) error {
	rec := observe.NewRecorder(r.Trail)
	res, err := swatch.Run(s, out,
		pure.WithBackend(r.Backend),
		pure.WithLogger(logger),
		pure.WithObserver(rec),
	)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s: %d renders for %d calls (hits %d, misses %d), expected %d\n",
		s.Kind, res.Invocations, len(s.Steps),
		rec.Count(pure.EventHit), rec.Count(pure.EventMiss), s.WantInvocations)
	if !res.OK() {
		return fmt.Errorf("%w: %s rendered %d times, want %d", errScenarioMismatch, s.Name, res.Invocations, s.WantInvocations)
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVarP(&memoizer, "memoizer", "m", "single", "Memoizer kind: single|keyed")
	rootCmd.PersistentFlags().StringVarP(&table, "table", "t", "map", "Keyed table backend: map|memdb")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug|info|warn|error")

	rootCmd.AddCommand(runCmd, scenariosCmd)
}

func main() {
	_ = godotenv.Load()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
