package sweep

import (
	"fmt"
)

// Status classifies the result of one region's sweep.
type Status string

const (
	// StatusDeleted means the default VPC and its dependents were
	// removed (or would be, under dry run).
	StatusDeleted Status = "deleted"
	// StatusNotFound means the region has no default VPC.
	StatusNotFound Status = "not-found"
	// StatusBlocked means existing resources outside the teardown set
	// prevent deletion. The region is left as-is.
	StatusBlocked Status = "blocked"
	// StatusFailed means an unclassified error aborted the region.
	StatusFailed Status = "failed"
)

// Outcome is the result of sweeping one region. Exactly one Outcome is
// produced per region and it is immutable once produced.
type Outcome struct {
	Region    string
	Status    Status
	VPCID     string
	Reason    string // what blocked the region, for StatusBlocked
	Err       error  // what went wrong, for StatusFailed
	Simulated bool   // produced by a dry run
}

// Message renders the one-line report for the region.
func (o Outcome) Message() string {
	switch o.Status {
	case StatusDeleted:
		if o.Simulated {
			return fmt.Sprintf("VPC %s would be deleted from the %s region. (dry run)", o.VPCID, o.Region)
		}
		return fmt.Sprintf("VPC %s has been deleted from the %s region.", o.VPCID, o.Region)
	case StatusNotFound:
		return fmt.Sprintf("A default VPC was not found in the %s region.", o.Region)
	case StatusBlocked:
		return fmt.Sprintf("VPC %s has existing resources in the %s region.", o.VPCID, o.Region)
	case StatusFailed:
		return fmt.Sprintf("Error processing %s: %v", o.Region, o.Err)
	default:
		return fmt.Sprintf("Unknown outcome for the %s region.", o.Region)
	}
}

// AnyFailed reports whether any outcome ended in StatusFailed. It
// drives the process exit status.
func AnyFailed(outcomes []Outcome) bool {
	for _, o := range outcomes {
		if o.Status == StatusFailed {
			return true
		}
	}
	return false
}
