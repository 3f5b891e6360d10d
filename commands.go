package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"quantum-exchange/exchange"
	"quantum-exchange/models"
	"quantum-exchange/tui"
	"quantum-exchange/ui"
	"quantum-exchange/utils"
)

// logEnvVar names a log file when --log-file is not given
const logEnvVar = "QXCHANGE_LOG"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	cfg := models.DefaultConfig
	var noAltScreen bool

	root := &cobra.Command{
		Use:           "qxchange",
		Short:         "Quantum secure exchange dashboard (simulation)",
		Long:          "A terminal dashboard that simulates a quantum key exchange.\nNo cryptography is performed and no data leaves this machine.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfg.LogFile == "" {
				cfg.LogFile = os.Getenv(logEnvVar)
			}
			cfg.AltScreen = !noAltScreen
			if err := cfg.Validate(); err != nil {
				return err
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, closeLog, err := dashboardLogger(cfg.LogFile, cfg.Verbose)
			if err != nil {
				return err
			}
			defer closeLog()

			logger.Info("dashboard starting", "protocol", cfg.Protocol, "tick", cfg.TickInterval, "step", cfg.ProgressStep)
			return tui.Run(cfg, logger)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&cfg.Protocol, "protocol", "p", cfg.Protocol, "protocol: BB84, E91, BBM92 or Six-state")
	flags.StringVarP(&cfg.FilePath, "file", "f", "", "file to exchange (name and size only are read)")
	flags.StringVarP(&cfg.Recipient, "recipient", "r", "", "recipient's quantum key")
	flags.DurationVar(&cfg.TickInterval, "tick", cfg.TickInterval, "interval between progress steps")
	flags.IntVar(&cfg.ProgressStep, "step", cfg.ProgressStep, "percentage points added per tick")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "debug logging")
	root.Flags().StringVar(&cfg.LogFile, "log-file", "", "write logs to this file (default $"+logEnvVar+")")
	root.Flags().BoolVar(&noAltScreen, "no-alt-screen", false, "render inline instead of on the alternate screen")

	root.AddCommand(runCmd(&cfg), protocolsCmd())
	return root
}

func runCmd(cfg *models.Config) *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a simulated exchange without the dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if interactive {
				ui.PrintBanner(out)
				askProtocol := !cmd.Flags().Changed("protocol")
				if err := ui.NewPrompter(cmd.InOrStdin(), out).PromptExchangeSetup(cfg, askProtocol); err != nil {
					return err
				}
			}
			if cfg.FilePath == "" || cfg.Recipient == "" {
				return fmt.Errorf("--file and --recipient are required (or use --interactive): %w", exchange.ErrMissingInformation)
			}

			ex, err := newExchange(*cfg)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runHeadless(ctx, ex, *cfg, out, cliLogger(cmd.ErrOrStderr(), cfg.Verbose))
		},
	}
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "prompt for missing settings")
	return cmd
}

func protocolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "protocols",
		Short: "List the supported protocols",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), ui.ProtocolTable(models.Protocols))
			return nil
		},
	}
}

// newExchange builds an exchange from validated configuration
func newExchange(cfg models.Config) (*exchange.Exchange, error) {
	proto, err := models.ParseProtocol(cfg.Protocol)
	if err != nil {
		return nil, err
	}
	file, err := utils.StatFile(cfg.FilePath)
	if err != nil {
		return nil, err
	}

	ex := exchange.New(
		exchange.WithProtocol(proto),
		exchange.WithStep(cfg.ProgressStep),
		exchange.WithKeyLength(cfg.KeyLength),
	)
	ex.SetFile(file)
	ex.SetRecipient(cfg.Recipient)
	return ex, nil
}

// runHeadless drives ex to completion, printing a line per ten percent
func runHeadless(ctx context.Context, ex *exchange.Exchange, cfg models.Config, out io.Writer, logger *slog.Logger) error {
	ui.PrintExchangeSetup(out, ex)

	runner := exchange.NewRunner(ex, logger)
	runner.Interval = cfg.TickInterval
	last := -1
	runner.OnUpdate = func(snap exchange.Snapshot) {
		switch {
		case snap.Status == models.StatusIdle:
			return
		case snap.Status == models.StatusProcessing && last >= 0 && snap.Progress/10 == last/10:
			return
		}
		last = snap.Progress
		fmt.Fprintln(out, ui.ProgressLine(snap, 30))
	}

	err := runner.Run(ctx)
	switch {
	case errors.Is(err, context.Canceled):
		ui.PrintCancelled(out)
		return nil
	case err != nil:
		return err
	}

	ui.PrintCompletion(out, ex)
	return nil
}

// dashboardLogger routes logs to a file while the dashboard owns the
// terminal, or discards them
func dashboardLogger(path string, verbose bool) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	f, err := tea.LogToFile(path, "qxchange")
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: logLevel(verbose)})), func() { f.Close() }, nil
}

func cliLogger(w io.Writer, verbose bool) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: logLevel(verbose)}))
}

func logLevel(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}
