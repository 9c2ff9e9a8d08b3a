package awsecs

import (
	"context"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	ecstypes "github.com/aws/aws-sdk-go-v2/service/ecs/types"

	"ecsshell/internal/format"
	"ecsshell/pkg/logging"
)

const (
	subsystem = "ECSClient"

	// describeTasksBatchSize is the maximum number of tasks DescribeTasks accepts per call.
	describeTasksBatchSize = 100

	simulatorRegion = "us-east-1"
)

// API is the subset of the ECS SDK client used by Client.
type API interface {
	ListServices(ctx context.Context, params *ecs.ListServicesInput, optFns ...func(*ecs.Options)) (*ecs.ListServicesOutput, error)
	ListTasks(ctx context.Context, params *ecs.ListTasksInput, optFns ...func(*ecs.Options)) (*ecs.ListTasksOutput, error)
	DescribeTasks(ctx context.Context, params *ecs.DescribeTasksInput, optFns ...func(*ecs.Options)) (*ecs.DescribeTasksOutput, error)
}

// Options configures how the SDK client is built.
type Options struct {
	// Profile is the named shared-config profile used for credentials.
	Profile string
	// Region overrides the profile's region when set.
	Region string
	// EndpointURL points the client at a non-AWS endpoint such as a local
	// ECS simulator. Static dummy credentials are used in that case.
	EndpointURL string
}

// Client wraps the ECS API with the calls the interactive flow needs.
type Client struct {
	api     API
	profile string
}

// NewClient loads the SDK configuration for the given profile and builds a Client.
func NewClient(ctx context.Context, opts Options) (*Client, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{}

	region := opts.Region
	if opts.EndpointURL != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider("test", "test", ""),
		))
		if region == "" {
			region = simulatorRegion
		}
	} else if opts.Profile != "" {
		loadOpts = append(loadOpts, awsconfig.WithSharedConfigProfile(opts.Profile))
	}
	if region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(region))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, Classify("LoadConfig", opts.Profile, err)
	}

	var api *ecs.Client
	if opts.EndpointURL != "" {
		api = ecs.NewFromConfig(cfg, func(o *ecs.Options) { o.BaseEndpoint = aws.String(opts.EndpointURL) })
	} else {
		api = ecs.NewFromConfig(cfg)
	}

	logging.Debug(subsystem, "initialized ECS client (profile=%s region=%s endpoint=%s)", opts.Profile, cfg.Region, opts.EndpointURL)
	return NewClientFromAPI(api, opts.Profile), nil
}

// NewClientFromAPI builds a Client on top of an existing API implementation.
func NewClientFromAPI(api API, profile string) *Client {
	return &Client{api: api, profile: profile}
}

// Profile returns the profile the client was built for.
func (c *Client) Profile() string {
	return c.profile
}

// ListServices returns the short names of all services in the cluster,
// sorted alphabetically. The result is never nil.
func (c *Client) ListServices(ctx context.Context, cluster string) ([]string, error) {
	logging.Debug(subsystem, "listing services in cluster %s", cluster)

	var arns []string
	paginator := ecs.NewListServicesPaginator(c.api, &ecs.ListServicesInput{
		Cluster: aws.String(cluster),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return []string{}, Classify("ListServices", c.profile, err)
		}
		arns = append(arns, page.ServiceArns...)
	}

	names := format.ShortIDs(arns)
	sort.Strings(names)

	logging.Debug(subsystem, "found %d services in cluster %s", len(names), cluster)
	return names, nil
}

// ListRunningTasks returns the short ids of the service's tasks whose desired
// status is RUNNING, in API order. The result is never nil.
func (c *Client) ListRunningTasks(ctx context.Context, cluster, service string) ([]string, error) {
	logging.Debug(subsystem, "listing running tasks for service %s in cluster %s", service, cluster)

	var arns []string
	paginator := ecs.NewListTasksPaginator(c.api, &ecs.ListTasksInput{
		Cluster:       aws.String(cluster),
		ServiceName:   aws.String(service),
		DesiredStatus: ecstypes.DesiredStatusRunning,
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return []string{}, Classify("ListTasks", c.profile, err)
		}
		arns = append(arns, page.TaskArns...)
	}

	ids := format.ShortIDs(arns)
	logging.Debug(subsystem, "found %d running tasks for service %s", len(ids), service)
	return ids, nil
}

// DescribeTasks returns one display record per requested id, in the order of
// ids. Tasks the API reports as failures, or omits, get a fallback record
// built from the raw id. Any failed API call aborts with an error.
func (c *Client) DescribeTasks(ctx context.Context, cluster string, ids []string) ([]format.TaskDetail, error) {
	logging.Debug(subsystem, "describing %d tasks in cluster %s", len(ids), cluster)

	byID := make(map[string]format.TaskDetail, len(ids))
	for start := 0; start < len(ids); start += describeTasksBatchSize {
		end := min(start+describeTasksBatchSize, len(ids))

		out, err := c.api.DescribeTasks(ctx, &ecs.DescribeTasksInput{
			Cluster: aws.String(cluster),
			Tasks:   ids[start:end],
		})
		if err != nil {
			return nil, Classify("DescribeTasks", c.profile, err)
		}

		for _, task := range out.Tasks {
			detail := format.FormatTaskDetail(task)
			byID[detail.ID] = detail
		}
		for _, failure := range out.Failures {
			logging.Warn(subsystem, "describe failed for %s: %s", aws.ToString(failure.Arn), aws.ToString(failure.Reason))
		}
	}

	details := make([]format.TaskDetail, 0, len(ids))
	for _, id := range ids {
		if detail, ok := byID[id]; ok {
			details = append(details, detail)
			continue
		}
		details = append(details, format.FallbackDetail(id))
	}

	return details, nil
}
