package config

var DEFAULT_CONFIG_YAML = `
# cronparse Configuration File
# Environment: development, staging, production
# cronparse.yaml
app_name: "cronparse"
environment: "production"
log_level: "info"

output:
  column_width: 14
  format: "table"  # or "json"

preview:
  count: 5
`
