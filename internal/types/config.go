package types

type Config struct {
	AppName     string        `mapstructure:"app_name"`
	Environment string        `mapstructure:"environment"`
	LogLevel    string        `mapstructure:"log_level"`
	Output      OutputConfig  `mapstructure:"output"`
	Preview     PreviewConfig `mapstructure:"preview"`
}
