package awsec2

import (
	"context"
)

// MockClient is a mock implementation of NetworkManager.
//
// Each method delegates to the corresponding Func field when set and
// otherwise returns a benign default: empty listings, absent resources,
// successful deletes.
type MockClient struct {
	ListRegionsFunc   func(ctx context.Context) ([]string, error)
	GetDefaultVPCFunc func(ctx context.Context) (*DefaultVPC, error)

	HasNetworkInterfacesFunc func(ctx context.Context, vpcID string) (bool, error)

	ListSubnetsFunc  func(ctx context.Context, vpcID string) ([]Subnet, error)
	DeleteSubnetFunc func(ctx context.Context, subnetID string) error

	GetInternetGatewayFunc    func(ctx context.Context, vpcID string) (*InternetGateway, error)
	DetachInternetGatewayFunc func(ctx context.Context, igwID, vpcID string) error
	DeleteInternetGatewayFunc func(ctx context.Context, igwID string) error

	ListRouteTablesFunc  func(ctx context.Context, vpcID string) ([]RouteTable, error)
	DeleteRouteTableFunc func(ctx context.Context, routeTableID string) error

	ListNetworkACLsFunc  func(ctx context.Context, vpcID string) ([]NetworkACL, error)
	DeleteNetworkACLFunc func(ctx context.Context, aclID string) error

	ListSecurityGroupsFunc  func(ctx context.Context, vpcID string) ([]SecurityGroup, error)
	DeleteSecurityGroupFunc func(ctx context.Context, groupID string) error

	DeleteVPCFunc func(ctx context.Context, vpcID string) error
}

// Ensure interface compliance
var _ NetworkManager = (*MockClient)(nil)

// ListRegions mocks region enumeration.
func (m *MockClient) ListRegions(ctx context.Context) ([]string, error) {
	if m.ListRegionsFunc != nil {
		return m.ListRegionsFunc(ctx)
	}
	return nil, nil
}

// GetDefaultVPC mocks default-VPC lookup.
func (m *MockClient) GetDefaultVPC(ctx context.Context) (*DefaultVPC, error) {
	if m.GetDefaultVPCFunc != nil {
		return m.GetDefaultVPCFunc(ctx)
	}
	return nil, nil
}

// HasNetworkInterfaces mocks the ENI pre-flight check.
func (m *MockClient) HasNetworkInterfaces(ctx context.Context, vpcID string) (bool, error) {
	if m.HasNetworkInterfacesFunc != nil {
		return m.HasNetworkInterfacesFunc(ctx, vpcID)
	}
	return false, nil
}

// ListSubnets mocks subnet listing.
func (m *MockClient) ListSubnets(ctx context.Context, vpcID string) ([]Subnet, error) {
	if m.ListSubnetsFunc != nil {
		return m.ListSubnetsFunc(ctx, vpcID)
	}
	return nil, nil
}

// DeleteSubnet mocks subnet deletion.
func (m *MockClient) DeleteSubnet(ctx context.Context, subnetID string) error {
	if m.DeleteSubnetFunc != nil {
		return m.DeleteSubnetFunc(ctx, subnetID)
	}
	return nil
}

// GetInternetGateway mocks internet gateway lookup.
func (m *MockClient) GetInternetGateway(ctx context.Context, vpcID string) (*InternetGateway, error) {
	if m.GetInternetGatewayFunc != nil {
		return m.GetInternetGatewayFunc(ctx, vpcID)
	}
	return nil, nil
}

// DetachInternetGateway mocks internet gateway detachment.
func (m *MockClient) DetachInternetGateway(ctx context.Context, igwID, vpcID string) error {
	if m.DetachInternetGatewayFunc != nil {
		return m.DetachInternetGatewayFunc(ctx, igwID, vpcID)
	}
	return nil
}

// DeleteInternetGateway mocks internet gateway deletion.
func (m *MockClient) DeleteInternetGateway(ctx context.Context, igwID string) error {
	if m.DeleteInternetGatewayFunc != nil {
		return m.DeleteInternetGatewayFunc(ctx, igwID)
	}
	return nil
}

// ListRouteTables mocks route table listing.
func (m *MockClient) ListRouteTables(ctx context.Context, vpcID string) ([]RouteTable, error) {
	if m.ListRouteTablesFunc != nil {
		return m.ListRouteTablesFunc(ctx, vpcID)
	}
	return nil, nil
}

// DeleteRouteTable mocks route table deletion.
func (m *MockClient) DeleteRouteTable(ctx context.Context, routeTableID string) error {
	if m.DeleteRouteTableFunc != nil {
		return m.DeleteRouteTableFunc(ctx, routeTableID)
	}
	return nil
}

// ListNetworkACLs mocks network ACL listing.
func (m *MockClient) ListNetworkACLs(ctx context.Context, vpcID string) ([]NetworkACL, error) {
	if m.ListNetworkACLsFunc != nil {
		return m.ListNetworkACLsFunc(ctx, vpcID)
	}
	return nil, nil
}

// DeleteNetworkACL mocks network ACL deletion.
func (m *MockClient) DeleteNetworkACL(ctx context.Context, aclID string) error {
	if m.DeleteNetworkACLFunc != nil {
		return m.DeleteNetworkACLFunc(ctx, aclID)
	}
	return nil
}

// ListSecurityGroups mocks security group listing.
func (m *MockClient) ListSecurityGroups(ctx context.Context, vpcID string) ([]SecurityGroup, error) {
	if m.ListSecurityGroupsFunc != nil {
		return m.ListSecurityGroupsFunc(ctx, vpcID)
	}
	return nil, nil
}

// DeleteSecurityGroup mocks security group deletion.
func (m *MockClient) DeleteSecurityGroup(ctx context.Context, groupID string) error {
	if m.DeleteSecurityGroupFunc != nil {
		return m.DeleteSecurityGroupFunc(ctx, groupID)
	}
	return nil
}

// DeleteVPC mocks VPC deletion.
func (m *MockClient) DeleteVPC(ctx context.Context, vpcID string) error {
	if m.DeleteVPCFunc != nil {
		return m.DeleteVPCFunc(ctx, vpcID)
	}
	return nil
}
