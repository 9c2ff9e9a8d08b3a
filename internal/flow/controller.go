package flow

import (
	"context"
	"errors"
	"fmt"

	"ecsshell/internal/awsecs"
	"ecsshell/internal/format"
	"ecsshell/internal/session"
	"ecsshell/pkg/logging"
)

const subsystem = "Flow"

const (
	servicePrompt   = "Select a service"
	taskPrompt      = "Select a task"
	containerPrompt = "Select a container"
	continuePrompt  = "Press Enter to continue..."
)

// ErrNoServices ends a run against a cluster that has no services.
var ErrNoServices = errors.New("no services found")

// reportedError marks an error Run has already shown to the operator.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }

func reported(err error) error {
	return &reportedError{err: err}
}

// ECS is the control-plane client used by the controller.
type ECS interface {
	ListServices(ctx context.Context, cluster string) ([]string, error)
	ListRunningTasks(ctx context.Context, cluster, service string) ([]string, error)
	DescribeTasks(ctx context.Context, cluster string, ids []string) ([]format.TaskDetail, error)
}

// Picker presents a menu. An empty result means the operator cancelled.
type Picker interface {
	Select(prompt string, choices []string) (string, error)
}

// Launcher opens the interactive session.
type Launcher interface {
	Launch(ctx context.Context, target session.Target) error
}

// Output is the part of the console the controller writes to.
type Output interface {
	Header(profile, cluster string)
	Status(msg string) func()
	Selected(kind, value string)
	Notice(format string, args ...interface{})
	Error(format string, args ...interface{})
	Goodbye()
	WaitForEnter(prompt string) error
}

// Options identifies what the controller works on.
type Options struct {
	Profile string
	Cluster string
	// SelectContainer adds a container menu for tasks with several
	// containers.
	SelectContainer bool
}

// Controller runs the interactive selection loop.
type Controller struct {
	ecs      ECS
	picker   Picker
	launcher Launcher
	out      Output
	opts     Options
}

// NewController wires a controller from its collaborators.
func NewController(ecs ECS, picker Picker, launcher Launcher, out Output, opts Options) *Controller {
	return &Controller{
		ecs:      ecs,
		picker:   picker,
		launcher: launcher,
		out:      out,
		opts:     opts,
	}
}

// Run executes the loop until the operator leaves a menu or a shell session
// ends. It returns nil on every graceful path, an error wrapping
// ErrNoServices when the cluster has nothing to offer, and one wrapping
// *awsecs.CredentialError when the profile cannot authenticate. Errors
// returned by Run have already been shown to the operator; see IsReported.
func (c *Controller) Run(ctx context.Context) error {
	for {
		c.out.Header(c.opts.Profile, c.opts.Cluster)

		services, err := c.listServices(ctx)
		if err != nil {
			return err
		}
		if len(services) == 0 {
			c.out.Error("No services found. Exiting...")
			return reported(ErrNoServices)
		}

		service := c.choose(servicePrompt, services)
		if service == "" {
			c.out.Goodbye()
			return nil
		}
		c.out.Selected("service", service)

		ids, err := c.listTasks(ctx, service)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			if err := c.out.WaitForEnter(continuePrompt); err != nil {
				logging.Debug(subsystem, "leaving at continue prompt: %v", err)
				c.out.Goodbye()
				return nil
			}
			continue
		}

		details, err := c.describeTasks(ctx, ids)
		if err != nil {
			return err
		}

		task, ok := c.chooseTask(details)
		if !ok {
			c.out.Goodbye()
			return nil
		}
		c.out.Selected("task", task.ID)

		container, ok := c.chooseContainer(task)
		if !ok {
			c.out.Goodbye()
			return nil
		}

		c.connect(ctx, session.Target{
			Profile:   c.opts.Profile,
			Cluster:   c.opts.Cluster,
			TaskID:    task.ID,
			Container: container,
		})
		return nil
	}
}

func (c *Controller) listServices(ctx context.Context) ([]string, error) {
	stop := c.out.Status("Fetching services...")
	services, err := c.ecs.ListServices(ctx, c.opts.Cluster)
	stop()

	if err != nil {
		return []string{}, c.handleAPIError("Error listing services", err)
	}
	if len(services) == 0 {
		c.out.Notice("No services found in cluster '%s'", c.opts.Cluster)
	}
	return services, nil
}

func (c *Controller) listTasks(ctx context.Context, service string) ([]string, error) {
	stop := c.out.Status(fmt.Sprintf("Fetching tasks for %s...", service))
	ids, err := c.ecs.ListRunningTasks(ctx, c.opts.Cluster, service)
	stop()

	if err != nil {
		return []string{}, c.handleAPIError("Error listing tasks", err)
	}
	if len(ids) == 0 {
		c.out.Notice("No running tasks found for service '%s'", service)
	}
	return ids, nil
}

// describeTasks never returns an empty list for a non-empty ids: request
// failures degrade to records built from the raw ids.
func (c *Controller) describeTasks(ctx context.Context, ids []string) ([]format.TaskDetail, error) {
	stop := c.out.Status("Getting task details...")
	details, err := c.ecs.DescribeTasks(ctx, c.opts.Cluster, ids)
	stop()

	if err != nil {
		if err := c.handleAPIError("Error getting task details", err); err != nil {
			return nil, err
		}
		return format.FallbackDetails(ids), nil
	}
	if len(details) == 0 {
		return format.FallbackDetails(ids), nil
	}
	return details, nil
}

// handleAPIError reports err. Credential failures are returned so the run ends;
// anything else is swallowed and the caller continues with an empty result.
func (c *Controller) handleAPIError(what string, err error) error {
	var credErr *awsecs.CredentialError
	if errors.As(err, &credErr) {
		c.out.Error("%s", credErr.Error())
		return reported(credErr)
	}
	logging.Warn(subsystem, "%s: %v", what, err)
	c.out.Error("%s: %v", what, err)
	return nil
}

func (c *Controller) choose(prompt string, choices []string) string {
	choice, err := c.picker.Select(prompt, choices)
	if err != nil {
		logging.Warn(subsystem, "menu %q failed, treating as cancel: %v", prompt, err)
		return ""
	}
	return choice
}

func (c *Controller) chooseTask(details []format.TaskDetail) (format.TaskDetail, bool) {
	display := c.choose(taskPrompt, format.DisplayStrings(details))
	if display == "" {
		return format.TaskDetail{}, false
	}
	return format.FindByDisplay(details, display)
}

// chooseContainer returns "" with ok set when the provider should pick the
// container.
func (c *Controller) chooseContainer(task format.TaskDetail) (string, bool) {
	if !c.opts.SelectContainer || len(task.ContainerNames) < 2 {
		return "", true
	}

	container := c.choose(containerPrompt, task.ContainerNames)
	if container == "" {
		return "", false
	}
	c.out.Selected("container", container)
	return container, true
}

// connect runs a single session. Launch failures have been reported by the
// launcher and do not change the outcome of the run.
func (c *Controller) connect(ctx context.Context, target session.Target) {
	if err := c.launcher.Launch(ctx, target); err != nil {
		logging.Debug(subsystem, "session for task %s failed: %v", target.TaskID, err)
	}
}

// IsReported reports whether err was returned by Run after being shown to
// the operator.
func IsReported(err error) bool {
	var r *reportedError
	return errors.As(err, &r)
}
