// Package cli wires the sundaypay commands: the interactive form (default),
// the web server and one-shot comparisons.
package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"sunday-pay/internal/config"
	"sunday-pay/internal/engine"
	"sunday-pay/internal/model"
	"sunday-pay/internal/tui"
)

const appVersion = "0.3.0"

type app struct {
	configPath string
	cfg        *config.Config
	engine     *engine.Engine
	log        *slog.Logger
}

// Execute runs the root command with os.Args.
func Execute(ctx context.Context) error {
	return NewRootCommand(os.Stdout, os.Stderr).ExecuteContext(ctx)
}

func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "sundaypay",
		Short:         "Compare bank Sunday pay with contracted Sunday pay (illustrative)",
		Version:       appVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(stderr)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if isTerminal(os.Stdin) && isTerminal(os.Stdout) {
				return tui.Run(cmd.Context(), a.engine)
			}
			// Not interactive: print the default comparison instead.
			resp := a.engine.Process(&model.ComparisonRequest{})
			return printTable(stdout, resp)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetVersionTemplate("sundaypay v{{.Version}}\n")
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to sundaypay.yaml (default $SUNDAYPAY_CONFIG or ./sundaypay.yaml)")

	root.AddCommand(
		newFormCommand(a),
		newServeCommand(a),
		newCompareCommand(a, stdout),
	)
	return root
}

func newFormCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "form",
		Short: "Open the interactive terminal form",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(cmd.Context(), a.engine)
		},
	}
}

func (a *app) load(stderr io.Writer) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	e, err := engine.New(cfg)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.engine = e
	a.log = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: cfg.Server.Level(),
	}))
	return nil
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
