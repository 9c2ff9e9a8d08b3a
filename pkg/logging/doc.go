// Package logging provides subsystem-tagged diagnostic logging for ecs-shell,
// built on the standard slog package.
//
// Diagnostics are separate from the interactive console output: they go to
// stderr at WARN and above by default, and down to DEBUG when the operator
// passes --debug.
//
//	logging.InitForCLI(logging.LevelDebug, os.Stderr)
//	logging.Debug("ECSClient", "listing services in cluster %s", cluster)
//	logging.Error("SessionLauncher", err, "execute-command failed")
//
// Calls made before InitForCLI are dropped.
package logging
