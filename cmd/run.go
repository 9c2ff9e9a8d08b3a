package cmd

import (
	"fmt"
	"os"

	"ecsshell/internal/awsecs"
	"ecsshell/internal/config"
	"ecsshell/internal/console"
	"ecsshell/internal/flow"
	"ecsshell/internal/selector"
	"ecsshell/internal/session"
	"ecsshell/pkg/logging"

	"github.com/spf13/cobra"
)

// runShell wires the collaborators from configuration and runs the flow.
func runShell(cmd *cobra.Command, profile, cluster string, o *rootOptions) error {
	if err := initLogging(o); err != nil {
		return err
	}

	cfg, err := loadConfig(cmd, o)
	if err != nil {
		return err
	}
	logging.Debug("CLI", "starting for profile=%s cluster=%s", profile, cluster)

	ctx := cmd.Context()

	client, err := awsecs.NewClient(ctx, awsecs.Options{
		Profile:     profile,
		Region:      cfg.Region,
		EndpointURL: cfg.EndpointURL,
	})
	if err != nil {
		return err
	}
	logging.Debug("CLI", "ECS client ready for profile %s", client.Profile())

	out := console.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), cmd.InOrStdin(), console.Options{NoColor: cfg.NoColor})
	picker := selector.New(cmd.InOrStdin(), cmd.OutOrStdout(), selector.Options{
		PageSize: cfg.PageSize,
		NoColor:  cfg.NoColor,
	})
	launcher := session.NewLauncher(out, session.Options{
		Binary:       cfg.AWSCLI,
		ShellCommand: cfg.ShellCommand,
		Container:    cfg.Container,
		Region:       cfg.Region,
		EndpointURL:  cfg.EndpointURL,
		Stdin:        cmd.InOrStdin(),
		Stdout:       cmd.OutOrStdout(),
		Stderr:       cmd.ErrOrStderr(),
	})

	controller := flow.NewController(client, picker, launcher, out, flow.Options{
		Profile:         profile,
		Cluster:         cluster,
		SelectContainer: cfg.SelectContainer,
	})
	return controller.Run(ctx)
}

func initLogging(o *rootOptions) error {
	level, err := logging.ParseLevel(o.logLevel)
	if err != nil {
		return err
	}
	if o.debug {
		level = logging.LevelDebug
	}
	logging.InitForCLI(level, os.Stderr)
	return nil
}

// loadConfig reads the config file and overlays explicit flags.
func loadConfig(cmd *cobra.Command, o *rootOptions) (config.Config, error) {
	path := o.configPath
	if path == "" {
		var err error
		if path, err = config.DefaultConfigPath(); err != nil {
			logging.Debug("CLI", "using built-in defaults: %v", err)
			cfg := config.GetDefaultConfig()
			applyFlags(cmd, o, &cfg)
			return cfg, cfg.Validate()
		}
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		return config.Config{}, err
	}
	applyFlags(cmd, o, &cfg)
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}
