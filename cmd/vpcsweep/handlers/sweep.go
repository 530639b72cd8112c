// Package handlers implements the command execution logic for the
// vpcsweep CLI.
//
// Handlers receive parsed flag values from the commands package,
// resolve configuration, construct the AWS clients and run the sweep
// components. External dependencies are created through package-level
// factory variables so tests can substitute fakes.
package handlers

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"

	"github.com/cloudtidy/vpcsweep/internal/config"
	"github.com/cloudtidy/vpcsweep/internal/platform/awsec2"
	"github.com/cloudtidy/vpcsweep/internal/sweep"
	"github.com/cloudtidy/vpcsweep/internal/ui"
)

// SweepOptions carries the sweep command's flag values.
type SweepOptions struct {
	ConfigPath string
	Profile    string
	Region     string
	DryRun     bool
	Parallel   bool
}

// bootstrapRegion is used for account-level calls such as region
// enumeration, which work from any region.
const bootstrapRegion = "us-east-1"

// Factory function variables - can be replaced in tests.
var (
	// loadAWSConfig resolves the AWS client configuration. Throttling
	// retries are handled here, by the SDK's adaptive retryer, not by
	// the sweep core.
	loadAWSConfig = func(ctx context.Context, cfg *config.Config) (aws.Config, error) {
		opts := []func(*awsconfig.LoadOptions) error{
			awsconfig.WithRetryMode(aws.RetryModeAdaptive),
		}
		if cfg.Profile != "" {
			opts = append(opts, awsconfig.WithSharedConfigProfile(cfg.Profile))
		}
		if cfg.AccessKey != "" {
			opts = append(opts, awsconfig.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")))
		}
		return awsconfig.LoadDefaultConfig(ctx, opts...)
	}

	// newNetworkManager builds the regional EC2 client.
	newNetworkManager = func(awsCfg aws.Config, region string) awsec2.NetworkManager {
		return awsec2.NewRealClient(awsCfg, region)
	}

	// printLine writes one report line to the output sink.
	printLine = func(line string) {
		fmt.Println(line)
	}

	// newRenderer builds the report renderer.
	newRenderer = ui.NewRenderer
)

// Sweep handles the sweep command.
//
// It resolves the target regions, runs one deletion task per region
// and reports one line per region in input order. The returned error
// is non-nil only when at least one region ended in a failure, so the
// process exit status reflects failures but not blocked or empty
// regions.
func Sweep(ctx context.Context, opts SweepOptions) error {
	cfg, err := resolveConfig(opts.ConfigPath, func(cfg *config.Config) {
		if opts.Profile != "" {
			cfg.Profile = opts.Profile
		}
		if opts.Region != "" {
			cfg.Regions = []string{opts.Region}
		}
		cfg.DryRun = cfg.DryRun || opts.DryRun
		cfg.Parallel = cfg.Parallel || opts.Parallel
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

	renderer := newRenderer()
	orchestrator := &sweep.Orchestrator{
		Factory: func(region string) awsec2.NetworkManager {
			return newNetworkManager(awsCfg, region)
		},
		DryRun:   cfg.DryRun,
		Parallel: cfg.Parallel,
		Report: func(outcome sweep.Outcome) {
			printLine(renderer.Outcome(outcome))
		},
	}

	outcomes := orchestrator.Run(ctx, regions)
	if sweep.AnyFailed(outcomes) {
		return fmt.Errorf("one or more regions failed")
	}
	return nil
}

// resolveConfig loads the optional config file, applies flag overrides
// and validates the result.
func resolveConfig(path string, applyFlags func(*config.Config)) (*config.Config, error) {
	cfg := &config.Config{}
	if path != "" {
		loaded, err := config.LoadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// resolveRegions returns the sweep set in deterministic order. The
// account's enabled regions are queried only when no explicit include
// list restricts the sweep.
func resolveRegions(ctx context.Context, awsCfg aws.Config, cfg *config.Config) ([]string, error) {
	var enabled []string
	if len(cfg.Regions) == 0 {
		bootstrap := newNetworkManager(awsCfg, bootstrapRegion)
		listed, err := bootstrap.ListRegions(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list regions: %w", err)
		}
		enabled = listed
	}

	regions := cfg.FilterRegions(enabled)
	if len(regions) == 0 {
		return nil, fmt.Errorf("no regions to sweep")
	}
	return regions, nil
}
