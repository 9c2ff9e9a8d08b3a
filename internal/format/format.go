package format

import (
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	ecstypes "github.com/aws/aws-sdk-go-v2/service/ecs/types"
)

// TimestampLayout is the layout used for task creation times.
const TimestampLayout = "2006-01-02 15:04:05"

// displaySeparator joins the fields of TaskDetail.Display.
const displaySeparator = " | "

const unknownValue = "-"

// TaskDetail is the display record for one running task.
type TaskDetail struct {
	// ID is the short task identifier (last ARN path segment).
	ID string
	// Created is the creation time formatted with TimestampLayout.
	Created string
	// Resources summarises the task-level CPU and memory settings.
	Resources string
	// ContainerNames lists the task's containers in API order.
	ContainerNames []string
	// Containers is ContainerNames joined with ", ".
	Containers string
	// Display is the single line shown by the selector.
	Display string
}

// ShortID returns the substring after the final "/" of an ARN-style
// identifier. Input without a "/" is returned unchanged.
func ShortID(resourceArn string) string {
	if i := strings.LastIndex(resourceArn, "/"); i >= 0 {
		return resourceArn[i+1:]
	}
	return resourceArn
}

// ShortIDs applies ShortID to every element.
func ShortIDs(arns []string) []string {
	ids := make([]string, 0, len(arns))
	for _, arn := range arns {
		ids = append(ids, ShortID(arn))
	}
	return ids
}

// FormatTaskDetail builds the display record for a described task.
// The creation time is printed as returned by the API, without any
// time zone conversion.
func FormatTaskDetail(task ecstypes.Task) TaskDetail {
	id := ShortID(aws.ToString(task.TaskArn))

	created := unknownValue
	if task.CreatedAt != nil {
		created = task.CreatedAt.Format(TimestampLayout)
	}

	resources := fmt.Sprintf("CPU: %s, Memory: %s", valueOrUnknown(task.Cpu), valueOrUnknown(task.Memory))

	names := make([]string, 0, len(task.Containers))
	for _, c := range task.Containers {
		if name := aws.ToString(c.Name); name != "" {
			names = append(names, name)
		}
	}
	containers := strings.Join(names, ", ")

	fields := []string{id, created, resources}
	if containers != "" {
		fields = append(fields, containers)
	}

	return TaskDetail{
		ID:             id,
		Created:        created,
		Resources:      resources,
		ContainerNames: names,
		Containers:     containers,
		Display:        strings.Join(fields, displaySeparator),
	}
}

// FallbackDetails builds minimal records that use the raw id as both the
// identifier and the display string. Used when task details are unavailable.
func FallbackDetails(ids []string) []TaskDetail {
	details := make([]TaskDetail, 0, len(ids))
	for _, id := range ids {
		details = append(details, FallbackDetail(id))
	}
	return details
}

// FallbackDetail is the single-id form of FallbackDetails.
func FallbackDetail(id string) TaskDetail {
	return TaskDetail{ID: id, Display: id}
}

// DisplayStrings returns the Display field of each detail, in order.
func DisplayStrings(details []TaskDetail) []string {
	out := make([]string, 0, len(details))
	for _, d := range details {
		out = append(out, d.Display)
	}
	return out
}

// FindByDisplay returns the detail whose Display equals display.
func FindByDisplay(details []TaskDetail, display string) (TaskDetail, bool) {
	for _, d := range details {
		if d.Display == display {
			return d, true
		}
	}
	return TaskDetail{}, false
}

func valueOrUnknown(s *string) string {
	if v := strings.TrimSpace(aws.ToString(s)); v != "" {
		return v
	}
	return unknownValue
}
