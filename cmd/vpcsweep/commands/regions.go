package commands

import (
	"github.com/spf13/cobra"

	"github.com/cloudtidy/vpcsweep/cmd/vpcsweep/handlers"
)

// Regions returns the regions command.
//
// The regions command lists the account's enabled regions and the
// default VPC found in each, without mutating anything.
func Regions() *cobra.Command {
	var opts handlers.RegionsOptions

	cmd := &cobra.Command{
		Use:   "regions",
		Short: "List regions and their default VPCs",
		Long: `Regions lists every region enabled for the account together with the
ID of its default VPC, or "-" when the region has none. No resources
are modified.

Example:
  vpcsweep regions -p audit`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Regions(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to configuration file")
	cmd.Flags().StringVarP(&opts.Profile, "profile", "p", "", "AWS shared credentials profile")

	return cmd
}
