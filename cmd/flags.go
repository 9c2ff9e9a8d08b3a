package cmd

import (
	"os"

	"ecsshell/internal/config"

	"github.com/spf13/cobra"
)

// noColorEnv disables colour when set to any non-empty value.
const noColorEnv = "NO_COLOR"

// rootOptions holds the values bound to the root command's flags.
type rootOptions struct {
	configPath      string
	region          string
	endpointURL     string
	awsCLI          string
	shellCommand    string
	container       string
	selectContainer bool
	noColor         bool
	pageSize        int
	debug           bool
	logLevel        string
}

func addFlags(cmd *cobra.Command, o *rootOptions) {
	f := cmd.Flags()
	f.StringVar(&o.configPath, "config", "", "Config file (default is $HOME/.config/ecs-shell/config.yaml)")
	f.StringVar(&o.region, "region", "", "AWS region, overriding the profile's region")
	f.StringVar(&o.endpointURL, "endpoint-url", "", "Alternative ECS endpoint, e.g. a local emulator")
	f.StringVar(&o.awsCLI, "aws-cli", "", "AWS CLI executable used for execute-command (default \"aws\")")
	f.StringVar(&o.shellCommand, "command", "", "Command to run inside the container (default \"sh\")")
	f.StringVar(&o.container, "container", "", "Container to connect to in multi-container tasks")
	f.BoolVar(&o.selectContainer, "select-container", false, "Choose the container from a menu when a task has several")
	f.BoolVar(&o.noColor, "no-color", false, "Disable colored output")
	f.IntVar(&o.pageSize, "page-size", 0, "Number of menu entries shown at once (default 10)")
	f.BoolVar(&o.debug, "debug", false, "Enable debug logging")
	f.StringVar(&o.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	cmd.MarkFlagsMutuallyExclusive("container", "select-container")
}

// applyFlags overlays the flags the user actually set on cfg.
func applyFlags(cmd *cobra.Command, o *rootOptions, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("region") {
		cfg.Region = o.region
	}
	if f.Changed("endpoint-url") {
		cfg.EndpointURL = o.endpointURL
	}
	if f.Changed("aws-cli") {
		cfg.AWSCLI = o.awsCLI
	}
	if f.Changed("command") {
		cfg.ShellCommand = o.shellCommand
	}
	if f.Changed("container") {
		cfg.Container = o.container
		cfg.SelectContainer = false
	}
	if f.Changed("select-container") {
		cfg.SelectContainer = o.selectContainer
		if o.selectContainer {
			cfg.Container = ""
		}
	}
	if f.Changed("no-color") {
		cfg.NoColor = o.noColor
	}
	if os.Getenv(noColorEnv) != "" {
		cfg.NoColor = true
	}
	if f.Changed("page-size") {
		cfg.PageSize = o.pageSize
	}
}
