package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/zarlcorp/core/pkg/zapp"
	"github.com/zarlcorp/zsample/internal/cli"
	"github.com/zarlcorp/zsample/internal/config"
	"github.com/zarlcorp/zsample/internal/customer"
	"github.com/zarlcorp/zsample/internal/sheet"
	"github.com/zarlcorp/zsample/internal/tui"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	app := zapp.New(zapp.WithName("zsample"))

	ctx, cancel := zapp.SignalContext(context.Background())
	defer cancel()

	cfg, cfgErr := config.Load()
	if cfgErr != nil {
		cfg = config.Default()
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	if err := newRootCmd(cfg, cfgErr).ExecuteContext(ctx); err != nil {
		slog.Error("zsample", "err", err)
		_ = app.Close()
		os.Exit(1)
	}

	if err := app.Close(); err != nil {
		slog.Error("shutdown", "err", err)
		os.Exit(1)
	}
}

// genFlags are shared by generate and preview.
type genFlags struct {
	count  int
	output string
	seed   uint64
	json   bool
}

func (f *genFlags) register(cmd *cobra.Command, cfg config.Config) {
	cmd.Flags().IntVarP(&f.count, "count", "n", cfg.Count, "number of customers ("+config.EnvCount+")")
	cmd.Flags().StringVarP(&f.output, "out", "o", cfg.Output, "output .xlsx path ("+config.EnvOutput+")")
	cmd.Flags().Uint64Var(&f.seed, "seed", cfg.Seed, "random seed for a reproducible batch ("+config.EnvSeed+")")
}

// options resolves flags over config. A seed counts as set when given on
// the command line or in the environment.
func (f *genFlags) options(cmd *cobra.Command, cfg config.Config) (cli.GenerateOptions, error) {
	c := cfg
	c.Count = f.count
	c.Output = f.output
	if err := c.Validate(); err != nil {
		return cli.GenerateOptions{}, err
	}
	return cli.GenerateOptions{
		Count:   f.count,
		Output:  f.output,
		Seed:    f.seed,
		HasSeed: cfg.HasSeed || cmd.Flags().Changed("seed"),
		JSON:    f.json,
	}, nil
}

// newRootCmd builds the command tree. A non-nil cfgErr fails every command
// except version and help, which run on defaults.
func newRootCmd(cfg config.Config, cfgErr error) *cobra.Command {
	var gf genFlags

	root := &cobra.Command{
		Use:   "zsample",
		Short: "Generate sample customer spreadsheets for bulk upload testing",
		Long: `zsample writes a spreadsheet of fictitious customers with the columns
name, phoneE164, email, whatsappE164, tags, consentAt.

Run with no arguments to write ` + sheet.DefaultFile + ` with 100 customers.

Environment Variables (also read from .env):
  ` + config.EnvCount + `        number of customers (default 100)
  ` + config.EnvOutput + `       output path
  ` + config.EnvSeed + `         random seed
  ` + config.EnvLogLevel + `    debug, info, warn or error`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cfgErr == nil || cmd.Name() == "version" || cmd.Name() == "help" {
				return nil
			}
			return fmt.Errorf("config: %w", cfgErr)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, cfg, &gf)
		},
	}
	gf.register(root, cfg)

	var genf genFlags
	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a batch and write it to a spreadsheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, cfg, &genf)
		},
	}
	genf.register(generateCmd, cfg)
	generateCmd.Flags().BoolVar(&genf.json, "json", false, "print records as JSON instead of writing a file")

	checkCmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Validate a generated spreadsheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.CmdCheck(cmd.OutOrStdout(), args[0], time.Now())
		},
	}

	var pf genFlags
	previewCmd := &cobra.Command{
		Use:   "preview",
		Short: "Browse a generated batch interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPreview(cmd, cfg, &pf)
		},
	}
	pf.register(previewCmd, cfg)

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "zsample %s\n", version)
		},
	}

	root.AddCommand(generateCmd, checkCmd, previewCmd, versionCmd)
	return root
}

func runGenerate(cmd *cobra.Command, cfg config.Config, f *genFlags) error {
	opts, err := f.options(cmd, cfg)
	if err != nil {
		return err
	}
	return cli.CmdGenerate(cmd.Context(), cmd.OutOrStdout(), opts)
}

func runPreview(cmd *cobra.Command, cfg config.Config, f *genFlags) error {
	opts, err := f.options(cmd, cfg)
	if err != nil {
		return err
	}

	gen := cli.NewGenerator(opts.Seed, opts.HasSeed, nil)
	write := func(path string, records []customer.Record, seed uint64) error {
		return sheet.WriteFile(path, records, sheet.NewMeta(seed, time.Now()))
	}

	m := tui.New(version, gen, opts.Count, opts.Output, write)
	if err := m.Err(); err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithContext(cmd.Context()), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
