// Package crontab lints crontab files: every schedule line is run through
// the parser and the per-line result is reported.
package crontab

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/afero"

	"github.com/amir-mohammad-HP/cronparse/internal/schedule"
	"github.com/amir-mohammad-HP/cronparse/internal/types"
)

// Entry is the lint result for one schedule line.
type Entry struct {
	Line     int
	Expr     string
	Schedule *types.Schedule
	Err      error
}

// Check scans the crontab at path. Blank lines, # comments and KEY=VALUE
// environment assignments are skipped; everything else is parsed as a
// schedule line. Whitespace runs between tokens are collapsed to single
// spaces before parsing, since crontabs commonly separate fields with tabs.
func Check(fsys afero.Fs, path string) ([]Entry, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening crontab: %w", err)
	}
	defer f.Close()

	var entries []Entry
	sc := bufio.NewScanner(f)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") || isAssignment(line) {
			continue
		}

		expr := strings.Join(strings.Fields(line), " ")
		s, err := schedule.Parse(expr)
		entries = append(entries, Entry{Line: n, Expr: expr, Schedule: s, Err: err})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading crontab: %w", err)
	}

	return entries, nil
}

// isAssignment reports whether the line is a crontab environment assignment
// (NAME=value with no whitespace before the equals sign).
func isAssignment(line string) bool {
	i := strings.IndexByte(line, '=')
	return i > 0 && !strings.ContainsAny(line[:i], " \t")
}
