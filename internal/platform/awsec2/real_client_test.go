package awsec2

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubEC2 implements ec2API with canned responses and records the
// inputs it received.
type stubEC2 struct {
	regions        []types.Region
	vpcs           []types.Vpc
	enis           []types.NetworkInterface
	subnets        []types.Subnet
	igws           []types.InternetGateway
	routeTables    []types.RouteTable
	acls           []types.NetworkAcl
	securityGroups []types.SecurityGroup

	vpcsFilters []types.Filter
	igwFilters  []types.Filter

	deletedSubnets []string
	deletedVPCs    []string
}

func (s *stubEC2) DescribeRegions(_ context.Context, _ *ec2.DescribeRegionsInput, _ ...func(*ec2.Options)) (*ec2.DescribeRegionsOutput, error) {
	return &ec2.DescribeRegionsOutput{Regions: s.regions}, nil
}

func (s *stubEC2) DescribeVpcs(_ context.Context, params *ec2.DescribeVpcsInput, _ ...func(*ec2.Options)) (*ec2.DescribeVpcsOutput, error) {
	s.vpcsFilters = params.Filters
	return &ec2.DescribeVpcsOutput{Vpcs: s.vpcs}, nil
}

func (s *stubEC2) DescribeNetworkInterfaces(_ context.Context, _ *ec2.DescribeNetworkInterfacesInput, _ ...func(*ec2.Options)) (*ec2.DescribeNetworkInterfacesOutput, error) {
	return &ec2.DescribeNetworkInterfacesOutput{NetworkInterfaces: s.enis}, nil
}

func (s *stubEC2) DescribeSubnets(_ context.Context, _ *ec2.DescribeSubnetsInput, _ ...func(*ec2.Options)) (*ec2.DescribeSubnetsOutput, error) {
	return &ec2.DescribeSubnetsOutput{Subnets: s.subnets}, nil
}

func (s *stubEC2) DeleteSubnet(_ context.Context, params *ec2.DeleteSubnetInput, _ ...func(*ec2.Options)) (*ec2.DeleteSubnetOutput, error) {
	s.deletedSubnets = append(s.deletedSubnets, aws.ToString(params.SubnetId))
	return &ec2.DeleteSubnetOutput{}, nil
}

func (s *stubEC2) DescribeInternetGateways(_ context.Context, params *ec2.DescribeInternetGatewaysInput, _ ...func(*ec2.Options)) (*ec2.DescribeInternetGatewaysOutput, error) {
	s.igwFilters = params.Filters
	return &ec2.DescribeInternetGatewaysOutput{InternetGateways: s.igws}, nil
}

func (s *stubEC2) DetachInternetGateway(_ context.Context, _ *ec2.DetachInternetGatewayInput, _ ...func(*ec2.Options)) (*ec2.DetachInternetGatewayOutput, error) {
	return &ec2.DetachInternetGatewayOutput{}, nil
}

func (s *stubEC2) DeleteInternetGateway(_ context.Context, _ *ec2.DeleteInternetGatewayInput, _ ...func(*ec2.Options)) (*ec2.DeleteInternetGatewayOutput, error) {
	return &ec2.DeleteInternetGatewayOutput{}, nil
}

func (s *stubEC2) DescribeRouteTables(_ context.Context, _ *ec2.DescribeRouteTablesInput, _ ...func(*ec2.Options)) (*ec2.DescribeRouteTablesOutput, error) {
	return &ec2.DescribeRouteTablesOutput{RouteTables: s.routeTables}, nil
}

func (s *stubEC2) DeleteRouteTable(_ context.Context, _ *ec2.DeleteRouteTableInput, _ ...func(*ec2.Options)) (*ec2.DeleteRouteTableOutput, error) {
	return &ec2.DeleteRouteTableOutput{}, nil
}

func (s *stubEC2) DescribeNetworkAcls(_ context.Context, _ *ec2.DescribeNetworkAclsInput, _ ...func(*ec2.Options)) (*ec2.DescribeNetworkAclsOutput, error) {
	return &ec2.DescribeNetworkAclsOutput{NetworkAcls: s.acls}, nil
}

func (s *stubEC2) DeleteNetworkAcl(_ context.Context, _ *ec2.DeleteNetworkAclInput, _ ...func(*ec2.Options)) (*ec2.DeleteNetworkAclOutput, error) {
	return &ec2.DeleteNetworkAclOutput{}, nil
}

func (s *stubEC2) DescribeSecurityGroups(_ context.Context, _ *ec2.DescribeSecurityGroupsInput, _ ...func(*ec2.Options)) (*ec2.DescribeSecurityGroupsOutput, error) {
	return &ec2.DescribeSecurityGroupsOutput{SecurityGroups: s.securityGroups}, nil
}

func (s *stubEC2) DeleteSecurityGroup(_ context.Context, _ *ec2.DeleteSecurityGroupInput, _ ...func(*ec2.Options)) (*ec2.DeleteSecurityGroupOutput, error) {
	return &ec2.DeleteSecurityGroupOutput{}, nil
}

func (s *stubEC2) DeleteVpc(_ context.Context, params *ec2.DeleteVpcInput, _ ...func(*ec2.Options)) (*ec2.DeleteVpcOutput, error) {
	s.deletedVPCs = append(s.deletedVPCs, aws.ToString(params.VpcId))
	return &ec2.DeleteVpcOutput{}, nil
}

func newTestClient(stub *stubEC2) *RealClient {
	return NewRealClient(aws.Config{}, "us-west-2", WithEC2API(stub))
}

func TestRealClient_ListRegions(t *testing.T) {
	stub := &stubEC2{
		regions: []types.Region{
			{RegionName: aws.String("us-east-1")},
			{RegionName: aws.String("eu-west-1")},
		},
	}
	client := newTestClient(stub)

	regions, err := client.ListRegions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"us-east-1", "eu-west-1"}, regions)
}

func TestRealClient_GetDefaultVPC(t *testing.T) {
	stub := &stubEC2{
		vpcs: []types.Vpc{
			{VpcId: aws.String("vpc-1"), IsDefault: aws.Bool(true)},
		},
	}
	client := newTestClient(stub)

	vpc, err := client.GetDefaultVPC(context.Background())
	require.NoError(t, err)
	require.NotNil(t, vpc)
	assert.Equal(t, "vpc-1", vpc.ID)
	assert.Equal(t, "us-west-2", vpc.Region)

	// Lookup must filter on isDefault, not list all VPCs.
	require.Len(t, stub.vpcsFilters, 1)
	assert.Equal(t, "isDefault", aws.ToString(stub.vpcsFilters[0].Name))
	assert.Equal(t, []string{"true"}, stub.vpcsFilters[0].Values)
}

func TestRealClient_GetDefaultVPC_Absent(t *testing.T) {
	client := newTestClient(&stubEC2{})

	vpc, err := client.GetDefaultVPC(context.Background())
	require.NoError(t, err)
	assert.Nil(t, vpc)
}

func TestRealClient_HasNetworkInterfaces(t *testing.T) {
	stub := &stubEC2{
		enis: []types.NetworkInterface{
			{NetworkInterfaceId: aws.String("eni-1")},
		},
	}
	client := newTestClient(stub)

	has, err := client.HasNetworkInterfaces(context.Background(), "vpc-1")
	require.NoError(t, err)
	assert.True(t, has)

	empty := newTestClient(&stubEC2{})
	has, err = empty.HasNetworkInterfaces(context.Background(), "vpc-1")
	require.NoError(t, err)
	assert.False(t, has)
}

func TestRealClient_GetInternetGateway(t *testing.T) {
	stub := &stubEC2{
		igws: []types.InternetGateway{
			{InternetGatewayId: aws.String("igw-1")},
		},
	}
	client := newTestClient(stub)

	igw, err := client.GetInternetGateway(context.Background(), "vpc-1")
	require.NoError(t, err)
	require.NotNil(t, igw)
	assert.Equal(t, "igw-1", igw.ID)
	assert.Equal(t, "vpc-1", igw.VPCID)

	// The gateway lookup goes through the attachment filter.
	require.Len(t, stub.igwFilters, 1)
	assert.Equal(t, "attachment.vpc-id", aws.ToString(stub.igwFilters[0].Name))
	assert.Equal(t, []string{"vpc-1"}, stub.igwFilters[0].Values)
}

func TestRealClient_GetInternetGateway_Absent(t *testing.T) {
	client := newTestClient(&stubEC2{})

	igw, err := client.GetInternetGateway(context.Background(), "vpc-1")
	require.NoError(t, err)
	assert.Nil(t, igw)
}

func TestRealClient_ListRouteTables_ExcludesMain(t *testing.T) {
	stub := &stubEC2{
		routeTables: []types.RouteTable{
			{
				RouteTableId: aws.String("rtb-main"),
				Associations: []types.RouteTableAssociation{
					{Main: aws.Bool(true)},
				},
			},
			{
				RouteTableId: aws.String("rtb-custom"),
				Associations: []types.RouteTableAssociation{
					{Main: aws.Bool(false)},
				},
			},
			{
				RouteTableId: aws.String("rtb-unassociated"),
			},
		},
	}
	client := newTestClient(stub)

	tables, err := client.ListRouteTables(context.Background(), "vpc-1")
	require.NoError(t, err)
	require.Len(t, tables, 2)
	assert.Equal(t, "rtb-custom", tables[0].ID)
	assert.Equal(t, "rtb-unassociated", tables[1].ID)
}

func TestRealClient_ListNetworkACLs_ExcludesDefault(t *testing.T) {
	stub := &stubEC2{
		acls: []types.NetworkAcl{
			{NetworkAclId: aws.String("acl-default"), IsDefault: aws.Bool(true)},
			{NetworkAclId: aws.String("acl-custom"), IsDefault: aws.Bool(false)},
		},
	}
	client := newTestClient(stub)

	acls, err := client.ListNetworkACLs(context.Background(), "vpc-1")
	require.NoError(t, err)
	require.Len(t, acls, 1)
	assert.Equal(t, "acl-custom", acls[0].ID)
}

func TestRealClient_ListSecurityGroups_ExcludesDefault(t *testing.T) {
	stub := &stubEC2{
		securityGroups: []types.SecurityGroup{
			{GroupId: aws.String("sg-default"), GroupName: aws.String("default")},
			{GroupId: aws.String("sg-custom"), GroupName: aws.String("web")},
		},
	}
	client := newTestClient(stub)

	groups, err := client.ListSecurityGroups(context.Background(), "vpc-1")
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "sg-custom", groups[0].ID)
	assert.Equal(t, "web", groups[0].Name)
}

func TestRealClient_ListSubnets(t *testing.T) {
	stub := &stubEC2{
		subnets: []types.Subnet{
			{SubnetId: aws.String("subnet-1")},
			{SubnetId: aws.String("subnet-2")},
		},
	}
	client := newTestClient(stub)

	subnets, err := client.ListSubnets(context.Background(), "vpc-1")
	require.NoError(t, err)
	require.Len(t, subnets, 2)
	assert.Equal(t, "subnet-1", subnets[0].ID)
	assert.Equal(t, "vpc-1", subnets[0].VPCID)
}

func TestRealClient_DeleteVPC(t *testing.T) {
	stub := &stubEC2{}
	client := newTestClient(stub)

	require.NoError(t, client.DeleteVPC(context.Background(), "vpc-1"))
	assert.Equal(t, []string{"vpc-1"}, stub.deletedVPCs)
}
