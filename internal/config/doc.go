// Package config loads ecs-shell settings.
//
// Settings are read from a single YAML file. The default location is
// ~/.config/ecs-shell/config.yaml; ECS_SHELL_CONFIG_DIR replaces the
// directory and the --config flag replaces the whole path. A missing file
// is not an error: built-in defaults are used instead.
//
// Example config.yaml:
//
//	region: eu-west-1
//	aws_cli: /usr/local/bin/aws
//	shell_command: /bin/bash
//	select_container: true
//	page_size: 15
//
// Command-line flags take precedence over file values; see cmd.
package config
