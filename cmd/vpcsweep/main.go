// Package main is the entry point for the vpcsweep CLI.
//
// vpcsweep removes the auto-created default VPC from every region of an
// AWS account. For each region it deletes the VPC's dependent resources
// in dependency order (subnets, internet gateway, route tables, network
// ACLs, security groups) and then the VPC itself, reporting one line
// per region. Regions with existing workloads are left untouched.
//
// Commands: sweep, regions, version, completion.
//
// For detailed usage information, run:
//
//	vpcsweep --help
package main

import (
	"fmt"
	"os"

	"github.com/cloudtidy/vpcsweep/cmd/vpcsweep/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
