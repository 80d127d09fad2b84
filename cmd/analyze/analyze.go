// Package analyze implements the analyze command.
package analyze

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshsymonds/orgaudit/internal/audit"
	"github.com/joshsymonds/orgaudit/internal/config"
	"github.com/joshsymonds/orgaudit/internal/loader"
	"github.com/joshsymonds/orgaudit/internal/report"
	"github.com/joshsymonds/orgaudit/internal/source"
	"github.com/joshsymonds/orgaudit/pkg/logger"
	"github.com/joshsymonds/orgaudit/pkg/pathutil"
)

// ErrFindingsPresent is returned when --fail-on-findings is set and the audit
// reported at least one finding.
var ErrFindingsPresent = errors.New("audit reported findings")

type options struct {
	configFile     string
	delimiter      string
	output         string
	s3Region       string
	s3Endpoint     string
	minRatio       float64
	maxRatio       float64
	maxDepth       int
	noColor        bool
	noHeader       bool
	failOnFindings bool
}

// NewCommand creates the analyze command.
func NewCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "analyze <path|-|s3://bucket/key>",
		Short: "Audit manager salaries and reporting-line length",
		Long: `Analyze an employee roster and report:

- managers paid outside the allowed band relative to their direct reports
- employees with too many managers between them and the CEO

The roster is a delimited file with a header line and the columns
Id, firstName, lastName, salary, managerId. Use "-" to read standard input.`,
		Example: `  # Analyze a local roster with default policy
  orgaudit analyze employees.csv

  # Stricter salary band and shallower hierarchy
  orgaudit analyze employees.csv --min-ratio 1.25 --max-depth 3

  # Read from S3 through LocalStack, failing CI on findings
  orgaudit analyze s3://hr/roster.csv --s3-endpoint http://localhost:4566 --fail-on-findings`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], opts)
		},
		SilenceUsage: true,
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configFile, "config", "c", "", "Policy configuration file (.yaml, .yml or .toml)")
	f.StringVar(&opts.delimiter, "delimiter", config.DefaultDelimiter, "Field delimiter")
	f.BoolVar(&opts.noHeader, "no-header", false, "Treat the first line as a record instead of a header")
	f.Float64Var(&opts.minRatio, "min-ratio", config.DefaultMinRatio, "Minimum manager salary as a multiple of the direct-report average")
	f.Float64Var(&opts.maxRatio, "max-ratio", config.DefaultMaxRatio, "Maximum manager salary as a multiple of the direct-report average")
	f.IntVar(&opts.maxDepth, "max-depth", config.DefaultMaxDepth, "Maximum managers allowed between an employee and the CEO")
	f.StringVarP(&opts.output, "output", "o", "", "Write the report to a file instead of standard output")
	f.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	f.BoolVar(&opts.failOnFindings, "fail-on-findings", false, "Exit with status 2 when any finding is reported")
	f.StringVar(&opts.s3Region, "s3-region", "", "AWS region for s3:// rosters")
	f.StringVar(&opts.s3Endpoint, "s3-endpoint", "", "Custom S3 endpoint, e.g. LocalStack")

	return cmd
}

func run(cmd *cobra.Command, location string, opts *options) error {
	log := logger.GetGlobalLogger()
	ctx := cmd.Context()

	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}
	log.Debug("Effective policy",
		"min_ratio", cfg.Policy.Salary.MinRatio,
		"max_ratio", cfg.Policy.Salary.MaxRatio,
		"max_depth", cfg.Policy.MaxDepth,
		"hop_limit", cfg.Policy.HopLimit)

	src, err := source.Resolve(ctx, location,
		source.WithStdin(cmd.InOrStdin()),
		source.WithS3Options(source.S3Options{
			Region:   cfg.Source.S3.Region,
			Endpoint: cfg.Source.S3.Endpoint,
		}),
		source.WithLogger(log),
	)
	if err != nil {
		return fmt.Errorf("resolving roster source: %w", err)
	}

	o, err := loader.Load(ctx, src, loader.OptionsFromConfig(cfg, log))
	if err != nil {
		return fmt.Errorf("loading %s: %w", src.Name(), err)
	}

	result, err := audit.Run(o, cfg.Policy, audit.WithLogger(log))
	if err != nil {
		return err
	}

	if err := writeReport(cmd, opts, result, cfg.Policy); err != nil {
		return err
	}

	if opts.failOnFindings && result.Summary.TotalFindings() > 0 {
		return fmt.Errorf("%w: %d", ErrFindingsPresent, result.Summary.TotalFindings())
	}
	return nil
}

// resolveConfig layers explicitly set flags over the config file over defaults.
func resolveConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg := config.Default()
	if opts.configFile != "" {
		loaded, err := config.LoadConfig(opts.configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("delimiter") {
		cfg.Input.Delimiter = opts.delimiter
	}
	if flags.Changed("no-header") {
		cfg.Input.SkipHeader = !opts.noHeader
	}
	if flags.Changed("min-ratio") {
		cfg.Policy.Salary.MinRatio = opts.minRatio
	}
	if flags.Changed("max-ratio") {
		cfg.Policy.Salary.MaxRatio = opts.maxRatio
	}
	if flags.Changed("max-depth") {
		cfg.Policy.MaxDepth = opts.maxDepth
	}
	if flags.Changed("s3-region") {
		cfg.Source.S3.Region = opts.s3Region
	}
	if flags.Changed("s3-endpoint") {
		cfg.Source.S3.Endpoint = opts.s3Endpoint
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func writeReport(cmd *cobra.Command, opts *options, result *audit.Result, policy config.Policy) error {
	var (
		w          io.Writer = cmd.OutOrStdout()
		renderOpts []report.RendererOption
	)
	if opts.noColor {
		renderOpts = append(renderOpts, report.WithColor(false))
	}

	if opts.output != "" {
		path, err := pathutil.ValidateOutputPath(opts.output)
		if err != nil {
			return fmt.Errorf("invalid output path: %w", err)
		}
		f, err := os.Create(path) //nolint:gosec // Path is validated above
		if err != nil {
			return fmt.Errorf("creating report file: %w", err)
		}
		defer func() {
			if closeErr := f.Close(); closeErr != nil {
				logger.Warn("Failed to close report file", "path", path, "error", closeErr)
			}
		}()
		w = f
	}

	if err := report.NewTextRenderer(w, renderOpts...).Render(result, policy); err != nil {
		return err
	}
	if opts.output != "" {
		logger.Info("Report written", "path", opts.output, "run_id", result.RunID)
	}
	return nil
}
