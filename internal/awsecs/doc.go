// Package awsecs is the read-only ECS control-plane client used by ecs-shell.
//
// It exposes the three calls the interactive flow needs (list services, list
// running tasks for a service, describe tasks) scoped by a named AWS profile.
// Credentials are resolved by the SDK's default chain for that profile; this
// package never reads credential files itself.
//
// Failures are returned as *CredentialError when the profile's credentials are
// absent or expired, and as *RequestError otherwise. No call is retried here
// beyond what the SDK's own retryer does.
package awsecs
