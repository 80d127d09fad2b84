// Package loader turns a roster source into a validated organization.
package loader

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/joshsymonds/orgaudit/internal/config"
	"github.com/joshsymonds/orgaudit/internal/models"
	"github.com/joshsymonds/orgaudit/internal/org"
	"github.com/joshsymonds/orgaudit/internal/parser"
	"github.com/joshsymonds/orgaudit/internal/source"
	"github.com/joshsymonds/orgaudit/pkg/logger"
)

// maxLineSize bounds a single roster line.
const maxLineSize = 1024 * 1024

// Options controls how roster lines are read.
type Options struct {
	Logger     logger.Logger
	Delimiter  rune
	SkipHeader bool
}

// OptionsFromConfig derives loader options from the input section of cfg.
func OptionsFromConfig(cfg *config.Config, log logger.Logger) Options {
	return Options{
		Delimiter:  cfg.Delim(),
		SkipHeader: cfg.Input.SkipHeader,
		Logger:     log,
	}
}

// Load reads every record from src and builds the organization. The first
// error aborts the load and no partial organization is returned.
func Load(ctx context.Context, src source.Source, opts Options) (*org.Organization, error) {
	log := opts.Logger
	if log == nil {
		log = logger.NopLogger{}
	}
	log = log.With("source", src.Name())
	delim := opts.Delimiter
	if delim == 0 {
		delim = ','
	}

	rc, err := src.Open(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := rc.Close(); closeErr != nil {
			log.Warn("Failed to close roster source", "error", closeErr)
		}
	}()

	builder := org.NewBuilder(org.WithLogger(log))
	scanner := bufio.NewScanner(rc)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	skipped := 0
	for scanner.Scan() {
		lineNo++
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		line := strings.TrimSuffix(scanner.Text(), "\r")
		if lineNo == 1 && opts.SkipHeader {
			continue
		}
		if strings.TrimSpace(line) == "" {
			skipped++
			continue
		}

		employee, err := parser.ParseRecord(line, delim)
		if err != nil {
			return nil, models.WithLine(err, lineNo)
		}
		if err := builder.Add(employee); err != nil {
			return nil, models.WithLine(err, lineNo)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", src.Name(), err)
	}

	o, err := builder.Finalize()
	if err != nil {
		return nil, err
	}

	log.Info("Roster loaded", "employees", o.Len(), "managers", o.ManagerCount(), "lines", lineNo,
		"blank_lines", skipped)
	return o, nil
}
