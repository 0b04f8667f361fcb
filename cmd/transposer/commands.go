package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"transposer/format"
	"transposer/internal/config"
	"transposer/internal/engine"
	"transposer/internal/logging"
	"transposer/internal/telemetry"
	"transposer/internal/transform"
)

type rootOptions struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "transposer",
		Short:         "Pivot outer-key → field → value documents into field-major tables",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "transposer.yml", "config file (missing file uses defaults)")

	cmd.AddCommand(newTransposeCmd(opts), newServeCmd(opts), newFormatsCmd())
	return cmd
}

// loadConfig reads the config. A log section, when present, replaces the
// logger main built from TRANSPOSER_LOG_* variables.
func (o *rootOptions) loadConfig() (config.App, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return cfg, err
	}
	if cfg.Log.Level != "" || cfg.Log.JSON {
		logging.Configure(cfg.Log)
	}
	return cfg, nil
}

func newTransposeCmd(root *rootOptions) *cobra.Command {
	var (
		label   string
		noLabel bool
		outFmt  string
	)
	cmd := &cobra.Command{
		Use:   "transpose [file]",
		Short: "Transpose a JSON or YAML document from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}

			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			var req transform.Request
			switch {
			case noLabel:
				req.Label = new(string)
			case cmd.Flags().Changed("label"):
				req.Label = &label
			}
			req.Format = outFmt

			svc := transform.NewService(transform.Config{
				Label:   cfg.Label,
				Format:  cfg.Format,
				Surface: telemetry.SurfaceCLI,
			})
			res, err := svc.Transform(in, cmd.OutOrStdout(), req)
			if err != nil {
				return err
			}
			logging.L().Debug("transposed", "rows", res.Rows, "content_type", res.ContentType)
			return nil
		},
	}
	cmd.Flags().StringVarP(&label, "label", "l", "", "label column name (overrides config)")
	cmd.Flags().BoolVar(&noLabel, "no-label", false, "omit the label column")
	cmd.Flags().StringVarP(&outFmt, "format", "f", "", "output format (default from config)")
	cmd.MarkFlagsMutuallyExclusive("label", "no-label")
	return cmd
}

func newServeCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the gRPC service, metrics endpoint and optional Kafka pipeline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg)
		},
	}
}

func serve(ctx context.Context, cfg config.App) error {
	e, err := engine.Bootstrap(ctx, cfg)
	if err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}
	if err := e.Run(ctx); err != nil {
		return fmt.Errorf("engine: %w", err)
	}
	return nil
}

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List output formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printFormats(cmd.OutOrStdout())
		},
	}
}

func printFormats(w io.Writer) error {
	for _, n := range format.Names() {
		if _, err := fmt.Fprintln(w, n); err != nil {
			return err
		}
	}
	return nil
}
