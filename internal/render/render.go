// Package render turns a parsed schedule into presentation output. It is
// pure formatting; nothing here validates or mutates the schedule.
package render

import (
	"encoding/json"
	"strings"

	"github.com/amir-mohammad-HP/cronparse/internal/types"
)

// DefaultColumnWidth is the width of the field-name column.
const DefaultColumnWidth = 14

// Table renders the schedule as a newline-terminated table with the default
// column width.
func Table(s *types.Schedule) string {
	return TableWidth(s, DefaultColumnWidth)
}

// TableWidth renders the schedule with the field-name column left-justified
// to the given width. Names longer than the width are not truncated.
func TableWidth(s *types.Schedule, width int) string {
	var sb strings.Builder
	for _, f := range s.Fields {
		writeRow(&sb, f.Name, strings.Join(f.Values, " "), width)
	}
	writeRow(&sb, "command", s.Command, width)
	return sb.String()
}

func writeRow(sb *strings.Builder, name, values string, width int) {
	sb.WriteString(name)
	if pad := width - len(name); pad > 0 {
		sb.WriteString(strings.Repeat(" ", pad))
	}
	sb.WriteString(values)
	sb.WriteByte('\n')
}

type scheduleJSON struct {
	Minute     []string `json:"minute"`
	Hour       []string `json:"hour"`
	DayOfMonth []string `json:"day_of_month"`
	Month      []string `json:"month"`
	DayOfWeek  []string `json:"day_of_week"`
	Command    string   `json:"command"`
}

// JSON renders the schedule as an indented JSON object, terminated by a
// newline like the table output.
func JSON(s *types.Schedule) (string, error) {
	doc := scheduleJSON{
		Minute:     s.Fields[0].Values,
		Hour:       s.Fields[1].Values,
		DayOfMonth: s.Fields[2].Values,
		Month:      s.Fields[3].Values,
		DayOfWeek:  s.Fields[4].Values,
		Command:    s.Command,
	}
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}
	return string(raw) + "\n", nil
}
