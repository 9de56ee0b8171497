package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	interp "github.com/tmplcore/interpolate"
	"github.com/tmplcore/interpolate/internal/cliconfig"
	"github.com/tmplcore/interpolate/internal/cliui"
	"github.com/tmplcore/interpolate/logging"
)

var (
	renderContextPath string
	renderLogFormat   string
	renderNoColor     bool
)

func init() {
	renderCmd.Flags().StringVar(&renderContextPath, "context", "", "Path to a JSON file providing the data/url/user context")
	renderCmd.Flags().StringVar(&renderLogFormat, "log-format", "", "Override the configured log format (text|json)")
	renderCmd.Flags().BoolVar(&renderNoColor, "no-color", false, "Disable colored terminal output")
}

var renderCmd = &cobra.Command{
	Use:   "render <template-file|->",
	Short: "Render a template against a JSON data context",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := cliconfig.Load()
		if err != nil {
			return err
		}
		if renderLogFormat != "" {
			cfg.LogFormat = renderLogFormat
		}
		if renderNoColor {
			cfg.NoColor = true
		}

		template, err := readTemplateSource(args[0])
		if err != nil {
			return fmt.Errorf("failed to read template: %w", err)
		}

		ctx, err := readContext(renderContextPath)
		if err != nil {
			return fmt.Errorf("failed to read context: %w", err)
		}

		logger, closeLogger, err := newLogger(cfg)
		if err != nil {
			return err
		}
		defer closeLogger()

		out, ok := interp.Run(template, ctx, logger)
		if !ok {
			return fmt.Errorf("template rendering failed")
		}

		fmt.Fprint(os.Stdout, out)
		return nil
	},
}

func readTemplateSource(path string) (string, error) {
	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return "", err
		}
		defer f.Close()
		r = f
	}

	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func readContext(path string) (interp.DataContext, error) {
	if path == "" {
		return interp.DataContext{}, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var ctx interp.DataContext
	if err := json.Unmarshal(b, &ctx); err != nil {
		return nil, fmt.Errorf("invalid JSON context: %w", err)
	}
	return ctx, nil
}

// cliSink formats each failure through cliui.FormatError, for --log-format text.
type cliSink struct {
	w       io.Writer
	noColor bool
}

func (s cliSink) Log(_ string, err error) {
	cliui.FormatError(s.w, err, s.noColor)
}

func newLogger(cfg *cliconfig.Config) (interp.Logger, func(), error) {
	switch cfg.LogFormat {
	case "json":
		zl, err := zap.NewProduction()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to build JSON logger: %w", err)
		}
		return logging.Zap{L: zl}, func() { _ = zl.Sync() }, nil
	default:
		return cliSink{w: os.Stderr, noColor: cfg.NoColor}, func() {}, nil
	}
}
