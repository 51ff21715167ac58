// Package preview computes upcoming wall-clock occurrences for a cron
// expression that has already passed our own parser.
package preview

import (
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/amir-mohammad-HP/cronparse/internal/schedule"
)

// Next returns the next n times after from at which the expression fires.
// The expression is validated with schedule.Parse first; robfig/cron only
// supplies the time arithmetic over the five field tokens.
func Next(expr string, from time.Time, n int) ([]time.Time, error) {
	if _, err := schedule.Parse(expr); err != nil {
		return nil, err
	}

	tokens := strings.Split(expr, " ")
	spec := strings.Join(tokens[:len(schedule.Specs)], " ")

	sched, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("computing occurrences for %q: %w", spec, err)
	}

	times := make([]time.Time, 0, n)
	t := from
	for i := 0; i < n; i++ {
		t = sched.Next(t)
		if t.IsZero() {
			break
		}
		times = append(times, t)
	}
	return times, nil
}
