package commands

import (
	"github.com/spf13/cobra"

	"github.com/cloudtidy/vpcsweep/cmd/vpcsweep/handlers"
)

// Sweep returns the sweep command.
//
// The sweep command deletes the default VPC from every target region.
// Dependent resources are removed first, in dependency order: subnets,
// the internet gateway, non-main route tables, non-default network
// ACLs, and non-default security groups.
func Sweep() *cobra.Command {
	var opts handlers.SweepOptions

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Delete the default VPC from every target region",
		Long: `Sweep removes the default VPC from every region enabled for the account,
or from the regions selected via --region or the config file.

For each region the default VPC's dependent resources are deleted in
dependency order before the VPC itself:
  - Subnets
  - Internet gateway (detached, then deleted)
  - Route tables (except the main route table)
  - Network ACLs (except the default ACL)
  - Security groups (except the default group)

A VPC that still carries workloads (anything with a network interface,
such as an EC2 instance or a load balancer) is reported as blocked and
left untouched. Regions are independent: one blocked or failed region
never stops the others.

Examples:
  # Show what would be removed, across all regions, without deleting
  vpcsweep sweep --dry-run

  # Delete the default VPC everywhere, regions processed in parallel
  vpcsweep sweep --parallel

  # Only one region, with a named credentials profile
  vpcsweep sweep -r us-west-2 -p audit

WARNING: Deletion is irreversible. AWS will not recreate a default VPC
automatically.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Sweep(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to configuration file")
	cmd.Flags().StringVarP(&opts.Profile, "profile", "p", "", "AWS shared credentials profile")
	cmd.Flags().StringVarP(&opts.Region, "region", "r", "", "Restrict the sweep to a single region")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Discover and report without deleting anything")
	cmd.Flags().BoolVar(&opts.Parallel, "parallel", false, "Process regions concurrently")

	return cmd
}
