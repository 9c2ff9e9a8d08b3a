package config

// Config holds the settings that shape an ecs-shell run.
type Config struct {
	// Region overrides the region from the AWS profile.
	Region string `yaml:"region,omitempty"`
	// EndpointURL points the ECS client and the AWS CLI at an alternative
	// endpoint, such as a local emulator.
	EndpointURL string `yaml:"endpoint_url,omitempty"`
	// AWSCLI is the AWS CLI executable used for execute-command.
	AWSCLI string `yaml:"aws_cli,omitempty"`
	// ShellCommand is the command started inside the container.
	ShellCommand string `yaml:"shell_command,omitempty"`
	// Container always targets this container name when set.
	Container string `yaml:"container,omitempty"`
	// SelectContainer shows a container menu for tasks with more than one
	// container.
	SelectContainer bool `yaml:"select_container,omitempty"`
	// NoColor disables styled output.
	NoColor bool `yaml:"no_color,omitempty"`
	// PageSize is the number of menu rows shown at once.
	PageSize int `yaml:"page_size,omitempty"`
}
