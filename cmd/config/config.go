// Package config implements the config command.
package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshsymonds/orgaudit/internal/config"
	"github.com/joshsymonds/orgaudit/pkg/logger"
)

// NewCommand creates the config command with its validate and defaults subcommands.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and validate policy configuration",
	}
	cmd.AddCommand(newValidateCommand(), newDefaultsCommand())
	return cmd
}

func newValidateCommand() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a policy configuration file",
		Example: `  orgaudit config validate --config policy.yaml
  orgaudit config validate --config policy.toml`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "🔍 Validating configuration: %s\n\n", configFile)

			cfg, err := config.LoadConfig(configFile)
			if err != nil {
				return fmt.Errorf("configuration is invalid: %w", err)
			}
			logger.Debug("Configuration loaded", "path", configFile)

			printPolicy(cmd, cfg)

			data, err := cfg.Marshal()
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "\n📄 Effective configuration:\n%s", data)
			fmt.Fprintln(out, "\n✅ Configuration is valid!")
			return nil
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "", "Configuration file to validate (required)")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}

func newDefaultsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "defaults",
		Short: "Print the default configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := config.Default().Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func printPolicy(cmd *cobra.Command, cfg *config.Config) {
	out := cmd.OutOrStdout()
	p := cfg.Policy

	fmt.Fprintln(out, "💰 Salary Band:")
	fmt.Fprintf(out, "   Minimum: %.2fx direct-report average\n", p.Salary.MinRatio)
	fmt.Fprintf(out, "   Maximum: %.2fx direct-report average\n", p.Salary.MaxRatio)

	fmt.Fprintln(out, "\n🏢 Reporting Lines:")
	fmt.Fprintf(out, "   Max managers between employee and CEO: %d\n", p.MaxDepth)
	fmt.Fprintf(out, "   Hop limit: %d\n", p.HopLimit)

	fmt.Fprintln(out, "\n📥 Input:")
	fmt.Fprintf(out, "   Delimiter: %q\n", cfg.Input.Delimiter)
	fmt.Fprintf(out, "   Skip header: %t\n", cfg.Input.SkipHeader)

	if s3 := cfg.Source.S3; s3.Region != "" || s3.Endpoint != "" {
		fmt.Fprintln(out, "\n☁️  S3 Source:")
		if s3.Region != "" {
			fmt.Fprintf(out, "   Region: %s\n", s3.Region)
		}
		if s3.Endpoint != "" {
			fmt.Fprintf(out, "   Endpoint: %s\n", s3.Endpoint)
		}
	}
}
