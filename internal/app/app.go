package app

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/afero"

	"github.com/amir-mohammad-HP/cronparse/internal/crontab"
	"github.com/amir-mohammad-HP/cronparse/internal/preview"
	"github.com/amir-mohammad-HP/cronparse/internal/render"
	"github.com/amir-mohammad-HP/cronparse/internal/schedule"
	"github.com/amir-mohammad-HP/cronparse/internal/types"
	"github.com/amir-mohammad-HP/cronparse/pkg/logger"
)

type App struct {
	config *types.Config
	logger logger.Logger
	out    io.Writer
	fs     afero.Fs
	now    func() time.Time
}

func New(cfg *types.Config, logger logger.Logger) *App {
	return &App{
		config: cfg,
		logger: logger,
		out:    os.Stdout,
		fs:     afero.NewOsFs(),
		now:    time.Now,
	}
}

// SetOutput redirects table and report output (used by tests)
func (a *App) SetOutput(w io.Writer) {
	a.out = w
}

// SetFs replaces the filesystem used by Check (used by tests)
func (a *App) SetFs(fs afero.Fs) {
	a.fs = fs
}

// Parse expands the expression and writes the rendered result
func (a *App) Parse(expr string) error {
	a.logger.Debug("parsing expression %q", expr)

	s, err := schedule.Parse(expr)
	if err != nil {
		return err
	}

	var out string
	switch a.config.Output.Format {
	case "json":
		out, err = render.JSON(s)
		if err != nil {
			return fmt.Errorf("rendering schedule: %w", err)
		}
	default:
		out = render.TableWidth(s, a.config.Output.ColumnWidth)
	}

	fmt.Fprint(a.out, out)
	return nil
}

// Next writes the next n occurrences of the expression, one per line
func (a *App) Next(expr string, n int) error {
	if n <= 0 {
		n = a.config.Preview.Count
	}
	a.logger.Debug("computing %d occurrences for %q", n, expr)

	times, err := preview.Next(expr, a.now(), n)
	if err != nil {
		return err
	}

	for _, t := range times {
		fmt.Fprintln(a.out, t.Format("2006-01-02 15:04:05 MST"))
	}
	return nil
}

// Check lints the crontab at path and reports each schedule line. It
// returns an error when any line fails to parse.
func (a *App) Check(path string) error {
	entries, err := crontab.Check(a.fs, path)
	if err != nil {
		return err
	}

	invalid := 0
	for _, e := range entries {
		if e.Err != nil {
			invalid++
			fmt.Fprintf(a.out, "line %d: %v\n", e.Line, e.Err)
			continue
		}
		fmt.Fprintf(a.out, "line %d: ok\n", e.Line)
	}

	a.logger.Info("checked %s: %d entries, %d invalid", path, len(entries), invalid)
	if invalid > 0 {
		return fmt.Errorf("%d of %d crontab entries failed to parse", invalid, len(entries))
	}
	return nil
}
