package handlers

import (
	"context"
	"fmt"

	"github.com/cloudtidy/vpcsweep/internal/config"
	"github.com/cloudtidy/vpcsweep/internal/platform/awsec2"
	"github.com/cloudtidy/vpcsweep/internal/util/async"
)

// RegionsOptions carries the regions command's flag values.
type RegionsOptions struct {
	ConfigPath string
	Profile    string
}

// Regions handles the regions command.
//
// It lists every region in the sweep set together with its default VPC
// ID, or "-" when the region has none. Lookups fan out across regions;
// nothing is mutated.
func Regions(ctx context.Context, opts RegionsOptions) error {
	cfg, err := resolveConfig(opts.ConfigPath, func(cfg *config.Config) {
		if opts.Profile != "" {
			cfg.Profile = opts.Profile
		}
	})
	if err != nil {
		return err
	}

	awsCfg, err := loadAWSConfig(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to load AWS config: %w", err)
	}

	regions, err := resolveRegions(ctx, awsCfg, cfg)
	if err != nil {
		return err
	}

	tasks := make([]async.Task[*awsec2.DefaultVPC], len(regions))
	for i, region := range regions {
		client := newNetworkManager(awsCfg, region)
		tasks[i] = async.Task[*awsec2.DefaultVPC]{
			Name: region,
			Func: func(ctx context.Context) (*awsec2.DefaultVPC, error) {
				return client.GetDefaultVPC(ctx)
			},
		}
	}

	var failed int
	for _, res := range async.RunAll(ctx, tasks) {
		switch {
		case res.Err != nil:
			failed++
			printLine(fmt.Sprintf("%-20s error: %v", res.Name, res.Err))
		case res.Value == nil:
			printLine(fmt.Sprintf("%-20s -", res.Name))
		default:
			printLine(fmt.Sprintf("%-20s %s", res.Name, res.Value.ID))
		}
	}

	if failed > 0 {
		return fmt.Errorf("failed to inspect %d region(s)", failed)
	}
	return nil
}
