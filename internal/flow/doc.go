// Package flow drives an ecs-shell run: pick a service, pick one of its
// running tasks, open a shell in it and exit.
//
// The Controller is a small loop over four steps:
//
//	SelectService -> SelectTask -> (SelectContainer) -> Connect
//
// A service without running tasks sends the operator back to the service
// menu after they press enter. Cancelling any menu ends the run with a
// goodbye. After the shell session ends the run is over; there is no
// reconnect loop.
//
// All collaborators are interfaces so the loop can be exercised without
// AWS, a terminal or the AWS CLI.
package flow
