package sweep

import (
	"context"
	"fmt"
	"log"

	"github.com/cloudtidy/vpcsweep/internal/platform/awsec2"
)

// Logger is the minimal logging surface used during a sweep.
type Logger interface {
	Printf(format string, v ...any)
}

// Task tears down one region's default VPC. Each provider call is
// attempted once; retries for throttling live in the SDK client.
type Task struct {
	Region string
	Client awsec2.NetworkManager
	DryRun bool
	Log    Logger
}

// Execute runs the full discovery-and-teardown workflow for the task's
// region and returns its outcome. It never returns an error: every
// failure mode is captured in the Outcome.
func (t *Task) Execute(ctx context.Context) Outcome {
	vpc, err := t.Client.GetDefaultVPC(ctx)
	if err != nil {
		return t.failed("", fmt.Errorf("looking up default VPC: %w", err))
	}
	if vpc == nil {
		return Outcome{Region: t.Region, Status: StatusNotFound, Simulated: t.DryRun}
	}

	// Most resources attach an ENI, so one describe call catches
	// instances, load balancers, NAT gateways and the like before any
	// teardown starts.
	busy, err := t.Client.HasNetworkInterfaces(ctx, vpc.ID)
	if err != nil {
		return t.failed(vpc.ID, fmt.Errorf("checking network interfaces: %w", err))
	}
	if busy {
		return t.blocked(vpc.ID, "network interfaces are still allocated")
	}

	// Teardown order matters: every category must be empty before the
	// final VPC delete succeeds.
	steps := []struct {
		name string
		fn   func(context.Context, string) error
	}{
		{"subnets", t.deleteSubnets},
		{"internet gateway", t.deleteInternetGateway},
		{"route tables", t.deleteRouteTables},
		{"network ACLs", t.deleteNetworkACLs},
		{"security groups", t.deleteSecurityGroups},
	}
	for _, step := range steps {
		if err := step.fn(ctx, vpc.ID); err != nil {
			if awsec2.IsDependencyViolation(err) {
				return t.blocked(vpc.ID, fmt.Sprintf("%s still in use", step.name))
			}
			return t.failed(vpc.ID, fmt.Errorf("tearing down %s: %w", step.name, err))
		}
	}

	if t.DryRun {
		t.logf("[%s] dry run: would delete VPC %s", t.Region, vpc.ID)
		return Outcome{Region: t.Region, Status: StatusDeleted, VPCID: vpc.ID, Simulated: true}
	}

	t.logf("[%s] deleting VPC %s", t.Region, vpc.ID)
	if err := t.Client.DeleteVPC(ctx, vpc.ID); err != nil {
		switch {
		case awsec2.IsNotFound(err):
			// Someone else deleted it first. The goal state holds.
		case awsec2.IsDependencyViolation(err):
			return t.blocked(vpc.ID, "VPC still in use")
		default:
			return t.failed(vpc.ID, fmt.Errorf("deleting VPC: %w", err))
		}
	}

	return Outcome{Region: t.Region, Status: StatusDeleted, VPCID: vpc.ID}
}

func (t *Task) deleteSubnets(ctx context.Context, vpcID string) error {
	subnets, err := t.Client.ListSubnets(ctx, vpcID)
	if err != nil {
		return err
	}
	for _, subnet := range subnets {
		if err := t.deleteResource(ctx, "subnet", subnet.ID, func(ctx context.Context) error {
			return t.Client.DeleteSubnet(ctx, subnet.ID)
		}); err != nil {
			return err
		}
	}
	return nil
}

func (t *Task) deleteInternetGateway(ctx context.Context, vpcID string) error {
	igw, err := t.Client.GetInternetGateway(ctx, vpcID)
	if err != nil || igw == nil {
		return err
	}

	if t.DryRun {
		t.logf("[%s] dry run: would detach and delete internet gateway %s", t.Region, igw.ID)
		return nil
	}

	t.logf("[%s] detaching internet gateway %s", t.Region, igw.ID)
	if err := t.Client.DetachInternetGateway(ctx, igw.ID, vpcID); err != nil && !awsec2.IsNotFound(err) {
		return err
	}

	t.logf("[%s] deleting internet gateway %s", t.Region, igw.ID)
	if err := t.Client.DeleteInternetGateway(ctx, igw.ID); err != nil && !awsec2.IsNotFound(err) {
		return err
	}
	return nil
}

func (t *Task) deleteRouteTables(ctx context.Context, vpcID string) error {
	tables, err := t.Client.ListRouteTables(ctx, vpcID)
	if err != nil {
		return err
	}
	for _, table := range tables {
		if err := t.deleteResource(ctx, "route table", table.ID, func(ctx context.Context) error {
			return t.Client.DeleteRouteTable(ctx, table.ID)
		}); err != nil {
			return err
		}
	}
	return nil
}

func (t *Task) deleteNetworkACLs(ctx context.Context, vpcID string) error {
	acls, err := t.Client.ListNetworkACLs(ctx, vpcID)
	if err != nil {
		return err
	}
	for _, acl := range acls {
		if err := t.deleteResource(ctx, "network ACL", acl.ID, func(ctx context.Context) error {
			return t.Client.DeleteNetworkACL(ctx, acl.ID)
		}); err != nil {
			return err
		}
	}
	return nil
}

func (t *Task) deleteSecurityGroups(ctx context.Context, vpcID string) error {
	groups, err := t.Client.ListSecurityGroups(ctx, vpcID)
	if err != nil {
		return err
	}
	for _, group := range groups {
		if err := t.deleteResource(ctx, "security group", group.ID, func(ctx context.Context) error {
			return t.Client.DeleteSecurityGroup(ctx, group.ID)
		}); err != nil {
			return err
		}
	}
	return nil
}

// deleteResource issues one delete call, honoring dry-run mode and
// absorbing not-found errors so a re-run over a half-torn-down region
// picks up where the last one stopped.
func (t *Task) deleteResource(ctx context.Context, kind, id string, fn func(context.Context) error) error {
	if t.DryRun {
		t.logf("[%s] dry run: would delete %s %s", t.Region, kind, id)
		return nil
	}

	t.logf("[%s] deleting %s %s", t.Region, kind, id)
	if err := fn(ctx); err != nil && !awsec2.IsNotFound(err) {
		return err
	}
	return nil
}

func (t *Task) blocked(vpcID, reason string) Outcome {
	t.logf("[%s] VPC %s blocked: %s", t.Region, vpcID, reason)
	return Outcome{Region: t.Region, Status: StatusBlocked, VPCID: vpcID, Reason: reason, Simulated: t.DryRun}
}

func (t *Task) failed(vpcID string, err error) Outcome {
	return Outcome{Region: t.Region, Status: StatusFailed, VPCID: vpcID, Err: err, Simulated: t.DryRun}
}

func (t *Task) logf(format string, v ...any) {
	if t.Log != nil {
		t.Log.Printf(format, v...)
		return
	}
	log.Printf(format, v...)
}
