package runner

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/zeu5/motor-rl-viz/telemetry"
	"github.com/zeu5/motor-rl-viz/types"
	"github.com/zeu5/motor-rl-viz/util"
)

// RunConfig configures a run of episodes
type RunConfig struct {
	Episodes int
	Horizon  int
	Context  context.Context

	// Visualization receiving every step record (optional)
	Visualization types.Visualization
	// Sinks receiving every step record
	Sinks []telemetry.Sink
	// Quiet disables the terminal progress line
	Quiet bool
}

// Runner drives the policy against the environment and fans the step
// data out to the visualization and the sinks
type Runner struct {
	name   string
	policy types.Policy
	env    types.Environment
}

func NewRunner(name string, policy types.Policy, env types.Environment) *Runner {
	return &Runner{
		name:   name,
		policy: policy,
		env:    env,
	}
}

// Run executes the configured number of episodes.
// Each episode ends when the horizon is reached or the environment
// signals a terminal state.
func (r *Runner) Run(cfg *RunConfig) error {
	ctx := cfg.Context
	if ctx == nil {
		ctx = context.Background()
	}

	viz := cfg.Visualization
	if viz != nil {
		// interconnect all modules before the first step so the plots
		// can resolve names, units and ranges
		viz.SetModules(r.env.PhysicalSystem(), r.env.ReferenceGenerator(), r.env.RewardFunction())
	}

	var printer *util.TerminalPrinter
	if !cfg.Quiet {
		printer = util.NewTerminalPrinter(250 * time.Millisecond)
		printer.Start(ctx)
		defer printer.Stop()
	}

	totalSteps := 0
	for ep := 0; ep < cfg.Episodes; ep++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		trace, err := r.runEpisode(ep, cfg, viz)
		if err != nil {
			return err
		}
		totalSteps += trace.Len()

		if printer != nil {
			printer.Set(fmt.Sprintf("Exp:%s, Eps:%d/%d, TSteps:%d", r.name, ep+1, cfg.Episodes, totalSteps))
		}
	}
	return nil
}

func (r *Runner) runEpisode(ep int, cfg *RunConfig, viz types.Visualization) (*types.Trace, error) {
	trace := types.NewTrace()

	state, reference := r.env.Reset()
	if viz != nil {
		viz.Reset()
		// no action taken and no reward received yet
		viz.Step(types.StepData{
			K:         0,
			State:     state,
			Reference: reference,
			Action:    nil,
			Reward:    math.NaN(),
		})
	}

	for step := 0; step < cfg.Horizon; step++ {
		action := r.policy.NextAction(step, state, reference)
		d, err := r.env.Step(action)
		if err != nil {
			return nil, fmt.Errorf("episode %d step %d: %w", ep, step, err)
		}
		r.policy.Update(step, state, action, d.State, d.Reward)
		trace.Append(d)

		if viz != nil {
			viz.Step(d)
		}
		for _, s := range cfg.Sinks {
			if err := s.Append(ep, d); err != nil {
				fmt.Printf("\nrunner: sink error: %v\n", err)
			}
		}

		state, reference = d.State, d.Reference
		if d.Done {
			break
		}
	}
	return trace, nil
}
