// Package field classifies a single cron field token and expands it into the
// concrete set of integer values it denotes within the field's bounds.
package field

import (
	"fmt"
	"strconv"
	"strings"
)

// Form is the syntactic form of a field token.
type Form int

const (
	Wildcard Form = iota // *
	Interval             // */N
	Single               // N
	Range                // A-B
	List                 // A,B,C
	Unknown
)

// Classify determines the syntactic form of a token. Forms are tried in a
// fixed precedence order and the first match wins: the prefix checks for
// wildcard and interval must run before numeric parsing so that a token like
// "*/15" is never handed to the single-number path.
func Classify(token string) Form {
	switch {
	case token == "*":
		return Wildcard
	case strings.HasPrefix(token, "*/"):
		return Interval
	case isNumber(token):
		return Single
	case strings.Contains(token, "-"):
		return Range
	case strings.Contains(token, ","):
		return List
	default:
		return Unknown
	}
}

// Expand converts a token into the ordered sequence of values it denotes
// within [min, max]. Ranges, wildcards and intervals expand ascending; comma
// lists keep their input order and duplicates.
func Expand(token string, min, max int) ([]int, error) {
	switch Classify(token) {
	case Wildcard:
		return span(min, max), nil
	case Interval:
		return expandInterval(token[len("*/"):], min, max)
	case Single:
		return expandSingle(token, min, max)
	case Range:
		return expandRange(token, min, max)
	case List:
		return expandList(token, min, max)
	default:
		return nil, fmt.Errorf("unrecognized token %q: %w", token, ErrInvalidFormat)
	}
}

// Format renders expanded values back to canonical decimal strings.
func Format(values []int) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strconv.Itoa(v)
	}
	return out
}

func span(min, max int) []int {
	values := make([]int, 0, max-min+1)
	for v := min; v <= max; v++ {
		values = append(values, v)
	}
	return values
}

// expandInterval yields min, min+step, ... strictly below max. The upper
// bound is excluded, matching integer step semantics.
func expandInterval(raw string, min, max int) ([]int, error) {
	step, err := strconv.Atoi(raw)
	if err != nil || step <= 0 {
		return nil, fmt.Errorf("interval step %q is not a positive integer: %w", raw, ErrInvalidFormat)
	}

	var values []int
	for v := min; v < max; v += step {
		values = append(values, v)
	}
	return values, nil
}

func expandSingle(token string, min, max int) ([]int, error) {
	n, err := strconv.Atoi(token)
	if err != nil {
		return nil, fmt.Errorf("value %q is not an integer: %w", token, ErrInvalidFormat)
	}
	if n < min || n > max {
		return nil, fmt.Errorf("value %d outside allowed range %d-%d: %w", n, min, max, ErrOutOfRange)
	}
	return []int{n}, nil
}

func expandRange(token string, min, max int) ([]int, error) {
	parts := strings.Split(token, "-")
	if len(parts) != 2 || !isNumber(parts[0]) || !isNumber(parts[1]) {
		return nil, fmt.Errorf("malformed range %q: %w", token, ErrInvalidFormat)
	}

	start, _ := strconv.Atoi(parts[0])
	end, _ := strconv.Atoi(parts[1])

	if start > end {
		return nil, fmt.Errorf("range start %d greater than end %d: %w", start, end, ErrInvalidRange)
	}
	if start < min || start > max {
		return nil, fmt.Errorf("start value %d outside allowed range %d-%d: %w", start, min, max, ErrOutOfRange)
	}
	if end < min || end > max {
		return nil, fmt.Errorf("end value %d outside allowed range %d-%d: %w", end, min, max, ErrOutOfRange)
	}

	return span(start, end), nil
}

func expandList(token string, min, max int) ([]int, error) {
	parts := strings.Split(token, ",")
	values := make([]int, 0, len(parts))
	for _, part := range parts {
		if !isNumber(part) {
			return nil, fmt.Errorf("list element %q is not an integer: %w", part, ErrInvalidFormat)
		}
		n, _ := strconv.Atoi(part)
		if n < min || n > max {
			return nil, fmt.Errorf("list value %d outside allowed range %d-%d: %w", n, min, max, ErrOutOfRange)
		}
		values = append(values, n)
	}
	return values, nil
}

// isNumber reports whether the token consists entirely of decimal digits.
// Signs are rejected: cron fields are unsigned.
func isNumber(token string) bool {
	if token == "" {
		return false
	}
	for i := 0; i < len(token); i++ {
		if token[i] < '0' || token[i] > '9' {
			return false
		}
	}
	return true
}
