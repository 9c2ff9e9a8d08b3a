package config

const (
	// DefaultAWSCLI is the AWS CLI executable looked up on PATH.
	DefaultAWSCLI = "aws"
	// DefaultShellCommand is started inside the container.
	DefaultShellCommand = "sh"
	// DefaultPageSize is the number of menu rows shown at once.
	DefaultPageSize = 10
)

// GetDefaultConfig returns the built-in configuration.
func GetDefaultConfig() Config {
	return Config{
		AWSCLI:       DefaultAWSCLI,
		ShellCommand: DefaultShellCommand,
		PageSize:     DefaultPageSize,
	}
}

// applyDefaults fills zero values left by a partial config file.
func applyDefaults(cfg *Config) {
	if cfg.AWSCLI == "" {
		cfg.AWSCLI = DefaultAWSCLI
	}
	if cfg.ShellCommand == "" {
		cfg.ShellCommand = DefaultShellCommand
	}
	if cfg.PageSize == 0 {
		cfg.PageSize = DefaultPageSize
	}
}
