// Package sweep implements default-VPC removal.
//
// A Task tears down one region's default VPC: it discovers the VPC,
// removes its dependent resources in a fixed order (subnets, internet
// gateway, non-main route tables, non-default network ACLs, non-default
// security groups) and finally deletes the VPC itself. The Orchestrator
// runs one Task per region, sequentially or in parallel, and aggregates
// the per-region outcomes.
//
// Deletion is idempotent: a resource that is already gone counts as
// removed. A dependency violation (something outside the teardown set
// still uses the VPC) blocks the region without affecting the others.
package sweep
