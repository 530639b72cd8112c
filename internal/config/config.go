// Package config loads and validates the vpcsweep configuration file.
//
// The file is optional: every setting has a flag equivalent and flags
// win over file values. It is YAML, e.g.:
//
//	profile: audit
//	regions:
//	  - us-east-1
//	  - eu-west-1
//	exclude_regions:
//	  - ap-northeast-3
//	dry_run: true
//	parallel: true
package config

import (
	"fmt"
	"regexp"
	"slices"
)

// Config holds the sweep settings.
type Config struct {
	// Profile names the shared AWS credentials profile to use. Empty
	// means the SDK's default credential chain.
	Profile string `mapstructure:"profile"`

	// AccessKey and SecretKey configure static credentials. Both must
	// be set together; they take precedence over Profile.
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`

	// Regions restricts the sweep to these regions. Empty means all
	// regions enabled for the account.
	Regions []string `mapstructure:"regions"`

	// ExcludeRegions removes regions from the sweep set.
	ExcludeRegions []string `mapstructure:"exclude_regions"`

	DryRun   bool `mapstructure:"dry_run"`
	Parallel bool `mapstructure:"parallel"`
}

// regionNamePattern matches AWS region names such as us-east-1,
// ap-southeast-2 or us-gov-west-1.
var regionNamePattern = regexp.MustCompile(`^[a-z]{2}(-[a-z]+)+-\d+$`)

// Validate checks the configuration for internal consistency.
func (c *Config) Validate() error {
	for _, region := range append(append([]string{}, c.Regions...), c.ExcludeRegions...) {
		if !regionNamePattern.MatchString(region) {
			return fmt.Errorf("invalid region name: %q", region)
		}
	}

	for _, region := range c.Regions {
		if slices.Contains(c.ExcludeRegions, region) {
			return fmt.Errorf("region %s is both included and excluded", region)
		}
	}

	if (c.AccessKey == "") != (c.SecretKey == "") {
		return fmt.Errorf("access_key and secret_key must be set together")
	}

	return nil
}

// FilterRegions applies the include and exclude lists to the set of
// enabled regions. With an include list the sweep order follows the
// list; otherwise it follows the enabled-region order.
func (c *Config) FilterRegions(enabled []string) []string {
	candidates := enabled
	if len(c.Regions) > 0 {
		candidates = c.Regions
	}

	regions := make([]string, 0, len(candidates))
	for _, region := range candidates {
		if slices.Contains(c.ExcludeRegions, region) {
			continue
		}
		regions = append(regions, region)
	}
	return regions
}
