package runner

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/zeu5/motor-rl-viz/telemetry"
	"github.com/zeu5/motor-rl-viz/types"
	"golang.org/x/exp/rand"
)

type fakeEnv struct {
	k     int
	fail  bool
	doneK int
}

var _ types.Environment = &fakeEnv{}

func (e *fakeEnv) Reset() ([]float64, []float64) {
	e.k = 0
	return []float64{0}, []float64{0}
}

func (e *fakeEnv) Step(a types.Action) (types.StepData, error) {
	if e.fail {
		return types.StepData{}, errors.New("broken environment")
	}
	d := types.StepData{
		K:         e.k,
		State:     []float64{0.5},
		Reference: []float64{0.25},
		Action:    a,
		Reward:    -0.1,
		Done:      e.doneK > 0 && e.k+1 == e.doneK,
	}
	e.k += 1
	return d, nil
}

func (e *fakeEnv) PhysicalSystem() types.PhysicalSystem         { return nil }
func (e *fakeEnv) ReferenceGenerator() types.ReferenceGenerator { return nil }
func (e *fakeEnv) RewardFunction() types.RewardFunction         { return nil }
func (e *fakeEnv) ActionSample(r *rand.Rand) types.Action       { return types.DiscreteAction(0) }

type fakeViz struct {
	resets     int
	steps      int
	resetSteps int
	modules    int
}

var _ types.Visualization = &fakeViz{}

func (v *fakeViz) Reset() { v.resets += 1 }

func (v *fakeViz) Step(d types.StepData) {
	v.steps += 1
	if d.Action == nil && math.IsNaN(d.Reward) {
		v.resetSteps += 1
	}
}

func (v *fakeViz) SetModules(types.PhysicalSystem, types.ReferenceGenerator, types.RewardFunction) {
	v.modules += 1
}

func (v *fakeViz) Close() error { return nil }

type fakePolicy struct {
	updates int
}

var _ types.Policy = &fakePolicy{}

func (p *fakePolicy) NextAction(_ int, _ []float64, _ []float64) types.Action {
	return types.DiscreteAction(0)
}

func (p *fakePolicy) Update(_ int, _ []float64, _ types.Action, _ []float64, _ float64) {
	p.updates += 1
}

func (p *fakePolicy) Reset() {}

type recordingSink struct {
	records []int
}

var _ telemetry.Sink = &recordingSink{}

func (s *recordingSink) Append(episode int, _ types.StepData) error {
	s.records = append(s.records, episode)
	return nil
}

func (s *recordingSink) Close() error { return nil }

func TestRunnerFansOutSteps(t *testing.T) {
	env := &fakeEnv{}
	viz := &fakeViz{}
	policy := &fakePolicy{}
	sink := &recordingSink{}

	r := NewRunner("test", policy, env)
	err := r.Run(&RunConfig{
		Episodes:      2,
		Horizon:       5,
		Visualization: viz,
		Sinks:         []telemetry.Sink{sink},
		Quiet:         true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if viz.modules != 1 {
		t.Errorf("expected the modules wired once, got %d", viz.modules)
	}
	if viz.resets != 2 {
		t.Errorf("expected one visualization reset per episode, got %d", viz.resets)
	}
	// one reset tuple plus horizon steps per episode
	if viz.steps != 2*(5+1) {
		t.Errorf("expected 12 visualization steps, got %d", viz.steps)
	}
	if viz.resetSteps != 2 {
		t.Errorf("expected 2 reset tuples, got %d", viz.resetSteps)
	}
	if policy.updates != 10 {
		t.Errorf("expected 10 policy updates, got %d", policy.updates)
	}
	if len(sink.records) != 10 {
		t.Errorf("expected 10 sink records, got %d", len(sink.records))
	}
}

func TestRunnerStopsOnDone(t *testing.T) {
	env := &fakeEnv{doneK: 3}
	viz := &fakeViz{}

	r := NewRunner("test", &fakePolicy{}, env)
	err := r.Run(&RunConfig{
		Episodes:      1,
		Horizon:       10,
		Visualization: viz,
		Quiet:         true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if viz.steps != 3+1 {
		t.Errorf("expected the episode ended at the terminal state, got %d steps", viz.steps)
	}
}

func TestRunnerPropagatesEnvError(t *testing.T) {
	env := &fakeEnv{fail: true}
	r := NewRunner("test", &fakePolicy{}, env)
	err := r.Run(&RunConfig{Episodes: 1, Horizon: 5, Quiet: true})
	if err == nil {
		t.Errorf("expected the environment error propagated")
	}
}

func TestRunnerHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	env := &fakeEnv{}
	r := NewRunner("test", &fakePolicy{}, env)
	err := r.Run(&RunConfig{Episodes: 1, Horizon: 5, Context: ctx, Quiet: true})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected a context cancellation error, got %v", err)
	}
}
