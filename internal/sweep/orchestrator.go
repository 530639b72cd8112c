package sweep

import (
	"context"
	"log"

	"github.com/cloudtidy/vpcsweep/internal/platform/awsec2"
	"github.com/cloudtidy/vpcsweep/internal/util/async"
)

// ClientFactory builds a NetworkManager bound to one region.
type ClientFactory func(region string) awsec2.NetworkManager

// Orchestrator runs one sweep Task per region and aggregates the
// outcomes. Tasks never share state; a region that blocks or fails
// leaves every other region untouched.
type Orchestrator struct {
	Factory  ClientFactory
	DryRun   bool
	Parallel bool
	Log      Logger

	// Report is invoked exactly once per region, in input region order,
	// after all tasks finish. When nil, outcomes are logged.
	Report func(Outcome)
}

// Run sweeps every region and returns the outcomes in input region
// order. Under parallel mode tasks finish in arbitrary order; the
// results are re-sorted before reporting, so concurrency affects
// wall-clock time only.
func (o *Orchestrator) Run(ctx context.Context, regions []string) []Outcome {
	var outcomes []Outcome

	if o.Parallel {
		tasks := make([]async.Task[Outcome], len(regions))
		for i, region := range regions {
			task := o.newTask(region)
			tasks[i] = async.Task[Outcome]{
				Name: region,
				Func: func(ctx context.Context) (Outcome, error) {
					return task.Execute(ctx), nil
				},
			}
		}

		results := async.RunAll(ctx, tasks)
		outcomes = make([]Outcome, len(results))
		for i, res := range results {
			outcomes[i] = res.Value
		}
	} else {
		outcomes = make([]Outcome, len(regions))
		for i, region := range regions {
			outcomes[i] = o.newTask(region).Execute(ctx)
		}
	}

	for _, outcome := range outcomes {
		o.report(outcome)
	}
	return outcomes
}

func (o *Orchestrator) newTask(region string) *Task {
	return &Task{
		Region: region,
		Client: o.Factory(region),
		DryRun: o.DryRun,
		Log:    o.Log,
	}
}

func (o *Orchestrator) report(outcome Outcome) {
	if o.Report != nil {
		o.Report(outcome)
		return
	}
	if o.Log != nil {
		o.Log.Printf("%s", outcome.Message())
		return
	}
	log.Printf("%s", outcome.Message())
}
