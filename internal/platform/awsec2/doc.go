// Package awsec2 provides a wrapper around the EC2 network-management API.
//
// It exposes the subset of EC2 operations needed to discover and tear
// down a region's default VPC: region enumeration, default-VPC lookup,
// and list/delete operations for the VPC's dependent resources
// (subnets, internet gateways, route tables, network ACLs, security
// groups). Listings exclude provider-managed instances (the main route
// table, the default network ACL, the default security group) so that
// callers never attempt a deletion AWS would reject.
package awsec2
