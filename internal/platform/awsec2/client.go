package awsec2

import (
	"context"
)

// DefaultVPC describes a region's default VPC.
type DefaultVPC struct {
	ID     string
	Region string
}

// Subnet is a subnet belonging to a VPC.
type Subnet struct {
	ID    string
	VPCID string
}

// InternetGateway is an internet gateway attached to a VPC.
type InternetGateway struct {
	ID    string
	VPCID string
}

// RouteTable is a non-main route table belonging to a VPC.
type RouteTable struct {
	ID    string
	VPCID string
}

// NetworkACL is a non-default network ACL belonging to a VPC.
type NetworkACL struct {
	ID    string
	VPCID string
}

// SecurityGroup is a non-default security group belonging to a VPC.
type SecurityGroup struct {
	ID    string
	VPCID string
	Name  string
}

// NetworkManager defines the interface for managing a region's default
// VPC and its dependent resources. A NetworkManager is bound to a
// single region at construction time.
type NetworkManager interface {
	// ListRegions returns the names of all regions enabled for the account.
	ListRegions(ctx context.Context) ([]string, error)

	// GetDefaultVPC returns the region's default VPC, or nil if the
	// region has none.
	GetDefaultVPC(ctx context.Context) (*DefaultVPC, error)

	// HasNetworkInterfaces reports whether any network interface is
	// allocated inside the VPC. Most resources attach an ENI, so this
	// is a cheap pre-flight check for existing workloads.
	HasNetworkInterfaces(ctx context.Context, vpcID string) (bool, error)

	ListSubnets(ctx context.Context, vpcID string) ([]Subnet, error)
	DeleteSubnet(ctx context.Context, subnetID string) error

	// GetInternetGateway returns the internet gateway attached to the
	// VPC, or nil if none is attached.
	GetInternetGateway(ctx context.Context, vpcID string) (*InternetGateway, error)
	DetachInternetGateway(ctx context.Context, igwID, vpcID string) error
	DeleteInternetGateway(ctx context.Context, igwID string) error

	// ListRouteTables returns the VPC's route tables excluding the main
	// route table, which AWS manages and refuses to delete.
	ListRouteTables(ctx context.Context, vpcID string) ([]RouteTable, error)
	DeleteRouteTable(ctx context.Context, routeTableID string) error

	// ListNetworkACLs returns the VPC's network ACLs excluding the
	// default ACL.
	ListNetworkACLs(ctx context.Context, vpcID string) ([]NetworkACL, error)
	DeleteNetworkACL(ctx context.Context, aclID string) error

	// ListSecurityGroups returns the VPC's security groups excluding
	// the default group.
	ListSecurityGroups(ctx context.Context, vpcID string) ([]SecurityGroup, error)
	DeleteSecurityGroup(ctx context.Context, groupID string) error

	DeleteVPC(ctx context.Context, vpcID string) error
}
