package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/tabsum/internal/app"
	"github.com/bft-labs/tabsum/internal/cliconfig"
	"github.com/bft-labs/tabsum/internal/summary"
	"github.com/bft-labs/tabsum/internal/tabs"
	"github.com/bft-labs/tabsum/internal/watch"
	"github.com/bft-labs/tabsum/pkg/log"
)

const helpDescription = `
Summarize the tab categorization mapping exported by the tab manager extension.

The mapping holds one tab per line:

  tab_id|window_id|domain|title|url_ext|category

tabsum prints a preview of the first rows, a per-category breakdown with a few
sampled tabs each, and an alphabetical category list with totals. Malformed
lines are skipped with a warning. Wrap a field in double quotes to include a
literal '|'.
`

var exampleUsage = strings.TrimSpace(`
  tabsum --file ~/Downloads/categorization-mapping-1759438683424.txt
  tabsum --file mapping.txt --sample-size 3 --no-preview
  TABSUM_FILE=mapping.txt tabsum --watch
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	bootLog := cliconfig.Logger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand(os.Stdout).ExecuteContext(ctx); err != nil {
		bootLog.Error("tabsum", log.Err(err))
		stop()
		os.Exit(1)
	}
}

// newRootCommand builds the tabsum command. Summaries are written to out.
func newRootCommand(out io.Writer) *cobra.Command {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	root := &cobra.Command{
		Use:           "tabsum",
		Short:         "Summarize a tab categorization mapping",
		Long:          strings.TrimSpace(helpDescription),
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			// File < env < flags.
			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}
			if err := cliconfig.LoadDotEnv(); err != nil {
				return fmt.Errorf("load .env: %w", err)
			}
			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			logger, closer, err := cliconfig.NewLogger(cfg)
			if err != nil {
				return fmt.Errorf("create logger: %w", err)
			}
			defer closer.Close()
			logger.Debug("configuration", log.Any("config", cfg))

			reporter := app.NewReporter(
				app.ReportConfig{
					SampleSize:  cfg.SampleSize,
					PreviewRows: cfg.PreviewRows,
					NoPreview:   cfg.NoPreview,
				},
				tabs.NewReader(logger),
				summary.NewPrinter(out, cfg.Seed),
				out,
				logger,
			)

			if !cfg.Watch {
				return absentTableOK(reporter.Run(cfg.File))
			}
			return runWatch(cmd.Context(), cfg, reporter, logger)
		},
	}

	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.tabsum/config.toml)")
	root.Flags().StringVarP(&cfg.File, "file", "f", cfg.File, "categorization mapping file to summarize")

	root.Flags().IntVarP(&cfg.SampleSize, "sample-size", "n", cfg.SampleSize, "sampled tabs shown per category")
	root.Flags().Uint64Var(&cfg.Seed, "seed", cfg.Seed, "seed for sampling; the same seed prints the same samples")
	root.Flags().IntVar(&cfg.PreviewRows, "preview-rows", cfg.PreviewRows, "rows shown in the preview")
	root.Flags().BoolVar(&cfg.NoPreview, "no-preview", cfg.NoPreview, "skip the row preview and column overview")

	root.Flags().BoolVarP(&cfg.Watch, "watch", "w", cfg.Watch, "re-print the summaries whenever the file changes")
	root.Flags().DurationVar(&cfg.Debounce, "debounce", cfg.Debounce, "quiet period after a change before re-printing")

	root.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	root.Flags().StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "also write JSON logs to this file, rotated by size")

	return root
}

// absentTableOK drops read failures: the reader has already reported them and
// an unreadable mapping means there is nothing to summarize, not a failed run.
func absentTableOK(err error) error {
	if errors.Is(err, tabs.ErrFileNotFound) || errors.Is(err, tabs.ErrUnreadable) {
		return nil
	}
	return err
}

// runWatch prints the report once, then again after every change to the
// file, until the context is cancelled. Read failures while watching are
// logged and the watch continues, since the file may be mid-rewrite.
func runWatch(ctx context.Context, cfg cliconfig.Config, reporter *app.Reporter, logger log.Logger) error {
	if err := reporter.Run(cfg.File); err != nil {
		logger.Warn("initial report failed, waiting for changes", log.Err(err))
	}

	w := watch.New(cfg.File, cfg.Debounce, logger, func() {
		if err := reporter.Run(cfg.File); err != nil {
			logger.Warn("report failed, waiting for changes", log.Err(err))
		}
	})
	if err := w.Start(ctx); err != nil {
		return err
	}

	<-ctx.Done()
	logger.Info("received signal, stopping...")
	w.Stop()
	return nil
}
