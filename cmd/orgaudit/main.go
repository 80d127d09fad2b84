// Package main is the entry point for the orgaudit CLI.
// orgaudit loads an employee roster, checks manager salaries against their
// direct reports and flags reporting lines that run too deep.
package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshsymonds/orgaudit/cmd/analyze"
	"github.com/joshsymonds/orgaudit/cmd/config"
	"github.com/joshsymonds/orgaudit/internal/models"
	"github.com/joshsymonds/orgaudit/internal/version"
	"github.com/joshsymonds/orgaudit/pkg/logger"
)

// Exit codes.
const (
	exitOK       = 0
	exitError    = 1
	exitFindings = 2
)

func main() {
	os.Exit(execute(newRootCommand(), os.Args[1:]))
}

func newRootCommand() *cobra.Command {
	var (
		debug     bool
		logFormat string
	)

	root := &cobra.Command{
		Use:   "orgaudit",
		Short: "Audit an organization's salaries and reporting lines",
		Long: `orgaudit reads an employee roster and reports managers paid outside the
allowed band relative to their direct reports, and employees whose reporting
line to the CEO is too long.`,
		Version:       version.Banner(),
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			logger.SetupLogger(debug, logFormat)
		},
	}
	root.SetVersionTemplate("{{.Version}}\n")

	root.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text or json)")

	root.AddCommand(analyze.NewCommand(), config.NewCommand())
	return root
}

// execute runs root with args and maps the outcome to a process exit code.
func execute(root *cobra.Command, args []string) int {
	root.SetArgs(args)
	err := root.Execute()
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, analyze.ErrFindingsPresent):
		logger.Warn("Audit reported findings", "error", err)
		return exitFindings
	default:
		attrs := []any{"error", err}
		if kind, ok := models.KindOf(err); ok {
			attrs = append(attrs, "kind", kind)
		}
		var modelErr *models.Error
		if errors.As(err, &modelErr) {
			if modelErr.EmployeeID != "" {
				attrs = append(attrs, "employee_id", modelErr.EmployeeID)
			}
			if modelErr.Line > 0 {
				attrs = append(attrs, "line", modelErr.Line)
			}
		}
		logger.Error("orgaudit failed", attrs...)
		return exitError
	}
}
