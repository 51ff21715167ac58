package types

// OutputConfig controls how a parsed schedule is rendered
type OutputConfig struct {
	ColumnWidth int    `mapstructure:"column_width"` // Width of the field-name column
	Format      string `mapstructure:"format"`       // Output format: table, json
}

// PreviewConfig controls the `next` command
type PreviewConfig struct {
	Count int `mapstructure:"count"` // Number of upcoming occurrences to show
}
