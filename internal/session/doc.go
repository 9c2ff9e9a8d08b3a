// Package session launches the interactive remote shell for a selected task.
//
// The shell itself is provided by the AWS CLI (`aws ecs execute-command
// --interactive`), which in turn drives the Session Manager plugin. The
// launcher builds that command line, echoes it, hands the terminal to the
// child process and blocks until it exits. The child is always waited for,
// including when the operator interrupts the session or the context is
// cancelled.
package session
