// Package schedule parses a full cron expression (five time fields plus a
// trailing command) into a Schedule.
package schedule

import (
	"errors"
	"fmt"
	"strings"

	"github.com/amir-mohammad-HP/cronparse/internal/field"
	"github.com/amir-mohammad-HP/cronparse/internal/types"
)

// ErrMalformedInput means the expression has too few tokens.
var ErrMalformedInput = errors.New("malformed input")

// Specs is the fixed field table, in cron positional order.
var Specs = [5]types.FieldSpec{
	{Name: "minute", Min: 0, Max: 59},
	{Name: "hour", Min: 0, Max: 23},
	{Name: "day of month", Min: 1, Max: 31},
	{Name: "month", Min: 1, Max: 12},
	{Name: "day of week", Min: 0, Max: 7},
}

// Parse splits expr on single spaces and expands each of the five field
// tokens against its bounds, failing fast on the first invalid field. At
// least six tokens are required; everything from the sixth onward is kept
// verbatim as the command, so commands with arguments survive intact.
func Parse(expr string) (*types.Schedule, error) {
	tokens := strings.Split(expr, " ")
	if len(tokens) < len(Specs)+1 {
		return nil, fmt.Errorf("expected %d time fields and a command, got %d tokens: %w",
			len(Specs), len(tokens), ErrMalformedInput)
	}

	s := &types.Schedule{Fields: make([]types.FieldValues, 0, len(Specs))}
	for i, spec := range Specs {
		values, err := field.Expand(tokens[i], spec.Min, spec.Max)
		if err != nil {
			return nil, fmt.Errorf("%s field: %w", spec.Name, err)
		}
		s.Fields = append(s.Fields, types.FieldValues{
			Name:   spec.Name,
			Values: field.Format(values),
		})
	}
	s.Command = strings.Join(tokens[len(Specs):], " ")

	return s, nil
}
