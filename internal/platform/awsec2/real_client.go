package awsec2

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

// ec2API is the subset of the EC2 service client used by RealClient.
type ec2API interface {
	DescribeRegions(ctx context.Context, params *ec2.DescribeRegionsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeRegionsOutput, error)
	DescribeVpcs(ctx context.Context, params *ec2.DescribeVpcsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeVpcsOutput, error)
	DescribeNetworkInterfaces(ctx context.Context, params *ec2.DescribeNetworkInterfacesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeNetworkInterfacesOutput, error)
	DescribeSubnets(ctx context.Context, params *ec2.DescribeSubnetsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeSubnetsOutput, error)
	DeleteSubnet(ctx context.Context, params *ec2.DeleteSubnetInput, optFns ...func(*ec2.Options)) (*ec2.DeleteSubnetOutput, error)
	DescribeInternetGateways(ctx context.Context, params *ec2.DescribeInternetGatewaysInput, optFns ...func(*ec2.Options)) (*ec2.DescribeInternetGatewaysOutput, error)
	DetachInternetGateway(ctx context.Context, params *ec2.DetachInternetGatewayInput, optFns ...func(*ec2.Options)) (*ec2.DetachInternetGatewayOutput, error)
	DeleteInternetGateway(ctx context.Context, params *ec2.DeleteInternetGatewayInput, optFns ...func(*ec2.Options)) (*ec2.DeleteInternetGatewayOutput, error)
	DescribeRouteTables(ctx context.Context, params *ec2.DescribeRouteTablesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeRouteTablesOutput, error)
	DeleteRouteTable(ctx context.Context, params *ec2.DeleteRouteTableInput, optFns ...func(*ec2.Options)) (*ec2.DeleteRouteTableOutput, error)
	DescribeNetworkAcls(ctx context.Context, params *ec2.DescribeNetworkAclsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeNetworkAclsOutput, error)
	DeleteNetworkAcl(ctx context.Context, params *ec2.DeleteNetworkAclInput, optFns ...func(*ec2.Options)) (*ec2.DeleteNetworkAclOutput, error)
	DescribeSecurityGroups(ctx context.Context, params *ec2.DescribeSecurityGroupsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeSecurityGroupsOutput, error)
	DeleteSecurityGroup(ctx context.Context, params *ec2.DeleteSecurityGroupInput, optFns ...func(*ec2.Options)) (*ec2.DeleteSecurityGroupOutput, error)
	DeleteVpc(ctx context.Context, params *ec2.DeleteVpcInput, optFns ...func(*ec2.Options)) (*ec2.DeleteVpcOutput, error)
}

// RealClient implements NetworkManager using the EC2 API.
type RealClient struct {
	api    ec2API
	region string
}

// ClientOption configures a RealClient.
type ClientOption func(*RealClient)

// WithEC2API sets a custom EC2 API client (useful for testing).
func WithEC2API(api ec2API) ClientOption {
	return func(c *RealClient) {
		c.api = api
	}
}

// NewRealClient creates a NetworkManager for the given region.
//
// Throttling and transient API errors are handled by the SDK's own
// retryer configured on cfg; RealClient never retries on top of it.
func NewRealClient(cfg aws.Config, region string, opts ...ClientOption) *RealClient {
	c := &RealClient{
		api: ec2.NewFromConfig(cfg, func(o *ec2.Options) {
			o.Region = region
		}),
		region: region,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Region returns the region this client is bound to.
func (c *RealClient) Region() string {
	return c.region
}

// ListRegions returns all regions enabled for the account.
func (c *RealClient) ListRegions(ctx context.Context) ([]string, error) {
	out, err := c.api.DescribeRegions(ctx, &ec2.DescribeRegionsInput{})
	if err != nil {
		return nil, err
	}

	regions := make([]string, 0, len(out.Regions))
	for _, r := range out.Regions {
		regions = append(regions, aws.ToString(r.RegionName))
	}
	return regions, nil
}

// GetDefaultVPC returns the region's default VPC, or nil if none exists.
func (c *RealClient) GetDefaultVPC(ctx context.Context) (*DefaultVPC, error) {
	out, err := c.api.DescribeVpcs(ctx, &ec2.DescribeVpcsInput{
		Filters: []types.Filter{
			{Name: aws.String("isDefault"), Values: []string{"true"}},
		},
	})
	if err != nil {
		return nil, err
	}

	if len(out.Vpcs) == 0 {
		return nil, nil
	}
	return &DefaultVPC{
		ID:     aws.ToString(out.Vpcs[0].VpcId),
		Region: c.region,
	}, nil
}

// HasNetworkInterfaces reports whether any ENI is allocated in the VPC.
func (c *RealClient) HasNetworkInterfaces(ctx context.Context, vpcID string) (bool, error) {
	out, err := c.api.DescribeNetworkInterfaces(ctx, &ec2.DescribeNetworkInterfacesInput{
		Filters: vpcFilter(vpcID),
	})
	if err != nil {
		return false, err
	}
	return len(out.NetworkInterfaces) > 0, nil
}

// ListSubnets returns all subnets belonging to the VPC.
func (c *RealClient) ListSubnets(ctx context.Context, vpcID string) ([]Subnet, error) {
	out, err := c.api.DescribeSubnets(ctx, &ec2.DescribeSubnetsInput{
		Filters: vpcFilter(vpcID),
	})
	if err != nil {
		return nil, err
	}

	subnets := make([]Subnet, 0, len(out.Subnets))
	for _, s := range out.Subnets {
		subnets = append(subnets, Subnet{
			ID:    aws.ToString(s.SubnetId),
			VPCID: vpcID,
		})
	}
	return subnets, nil
}

// DeleteSubnet deletes a subnet.
func (c *RealClient) DeleteSubnet(ctx context.Context, subnetID string) error {
	_, err := c.api.DeleteSubnet(ctx, &ec2.DeleteSubnetInput{
		SubnetId: aws.String(subnetID),
	})
	return err
}

// GetInternetGateway returns the internet gateway attached to the VPC,
// or nil if none is attached.
func (c *RealClient) GetInternetGateway(ctx context.Context, vpcID string) (*InternetGateway, error) {
	out, err := c.api.DescribeInternetGateways(ctx, &ec2.DescribeInternetGatewaysInput{
		Filters: []types.Filter{
			{Name: aws.String("attachment.vpc-id"), Values: []string{vpcID}},
		},
	})
	if err != nil {
		return nil, err
	}

	if len(out.InternetGateways) == 0 {
		return nil, nil
	}
	return &InternetGateway{
		ID:    aws.ToString(out.InternetGateways[0].InternetGatewayId),
		VPCID: vpcID,
	}, nil
}

// DetachInternetGateway detaches an internet gateway from the VPC.
func (c *RealClient) DetachInternetGateway(ctx context.Context, igwID, vpcID string) error {
	_, err := c.api.DetachInternetGateway(ctx, &ec2.DetachInternetGatewayInput{
		InternetGatewayId: aws.String(igwID),
		VpcId:             aws.String(vpcID),
	})
	return err
}

// DeleteInternetGateway deletes a detached internet gateway.
func (c *RealClient) DeleteInternetGateway(ctx context.Context, igwID string) error {
	_, err := c.api.DeleteInternetGateway(ctx, &ec2.DeleteInternetGatewayInput{
		InternetGatewayId: aws.String(igwID),
	})
	return err
}

// ListRouteTables returns the VPC's route tables excluding the main
// route table.
func (c *RealClient) ListRouteTables(ctx context.Context, vpcID string) ([]RouteTable, error) {
	out, err := c.api.DescribeRouteTables(ctx, &ec2.DescribeRouteTablesInput{
		Filters: vpcFilter(vpcID),
	})
	if err != nil {
		return nil, err
	}

	tables := make([]RouteTable, 0, len(out.RouteTables))
	for _, rt := range out.RouteTables {
		if isMainRouteTable(rt) {
			continue
		}
		tables = append(tables, RouteTable{
			ID:    aws.ToString(rt.RouteTableId),
			VPCID: vpcID,
		})
	}
	return tables, nil
}

// DeleteRouteTable deletes a route table.
func (c *RealClient) DeleteRouteTable(ctx context.Context, routeTableID string) error {
	_, err := c.api.DeleteRouteTable(ctx, &ec2.DeleteRouteTableInput{
		RouteTableId: aws.String(routeTableID),
	})
	return err
}

// ListNetworkACLs returns the VPC's network ACLs excluding the default ACL.
func (c *RealClient) ListNetworkACLs(ctx context.Context, vpcID string) ([]NetworkACL, error) {
	out, err := c.api.DescribeNetworkAcls(ctx, &ec2.DescribeNetworkAclsInput{
		Filters: vpcFilter(vpcID),
	})
	if err != nil {
		return nil, err
	}

	acls := make([]NetworkACL, 0, len(out.NetworkAcls))
	for _, acl := range out.NetworkAcls {
		if aws.ToBool(acl.IsDefault) {
			continue
		}
		acls = append(acls, NetworkACL{
			ID:    aws.ToString(acl.NetworkAclId),
			VPCID: vpcID,
		})
	}
	return acls, nil
}

// DeleteNetworkACL deletes a network ACL.
func (c *RealClient) DeleteNetworkACL(ctx context.Context, aclID string) error {
	_, err := c.api.DeleteNetworkAcl(ctx, &ec2.DeleteNetworkAclInput{
		NetworkAclId: aws.String(aclID),
	})
	return err
}

// ListSecurityGroups returns the VPC's security groups excluding the
// default group.
func (c *RealClient) ListSecurityGroups(ctx context.Context, vpcID string) ([]SecurityGroup, error) {
	out, err := c.api.DescribeSecurityGroups(ctx, &ec2.DescribeSecurityGroupsInput{
		Filters: vpcFilter(vpcID),
	})
	if err != nil {
		return nil, err
	}

	groups := make([]SecurityGroup, 0, len(out.SecurityGroups))
	for _, sg := range out.SecurityGroups {
		name := aws.ToString(sg.GroupName)
		if name == defaultSecurityGroupName {
			continue
		}
		groups = append(groups, SecurityGroup{
			ID:    aws.ToString(sg.GroupId),
			VPCID: vpcID,
			Name:  name,
		})
	}
	return groups, nil
}

// DeleteSecurityGroup deletes a security group.
func (c *RealClient) DeleteSecurityGroup(ctx context.Context, groupID string) error {
	_, err := c.api.DeleteSecurityGroup(ctx, &ec2.DeleteSecurityGroupInput{
		GroupId: aws.String(groupID),
	})
	return err
}

// DeleteVPC deletes the VPC itself. All dependent resources must be
// gone first or the call fails with a dependency violation.
func (c *RealClient) DeleteVPC(ctx context.Context, vpcID string) error {
	_, err := c.api.DeleteVpc(ctx, &ec2.DeleteVpcInput{
		VpcId: aws.String(vpcID),
	})
	return err
}

// defaultSecurityGroupName is the name AWS gives the security group it
// creates with every VPC. It cannot be deleted while the VPC exists.
const defaultSecurityGroupName = "default"

// vpcFilter builds the vpc-id filter shared by the describe calls.
func vpcFilter(vpcID string) []types.Filter {
	return []types.Filter{
		{Name: aws.String("vpc-id"), Values: []string{vpcID}},
	}
}

// isMainRouteTable reports whether the route table is the VPC's main
// table. AWS marks it via an implicit association.
func isMainRouteTable(rt types.RouteTable) bool {
	for _, assoc := range rt.Associations {
		if aws.ToBool(assoc.Main) {
			return true
		}
	}
	return false
}
