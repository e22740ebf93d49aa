package demos

import (
	"context"
	"fmt"
	"path"

	"github.com/spf13/cobra"
	"github.com/zeu5/motor-rl-viz/dashboard"
	"github.com/zeu5/motor-rl-viz/motor"
	"github.com/zeu5/motor-rl-viz/policies"
	"github.com/zeu5/motor-rl-viz/runner"
	"github.com/zeu5/motor-rl-viz/telemetry"
	"github.com/zeu5/motor-rl-viz/types"
)

// DCMotor runs a policy on the DC motor environment with a dashboard
// attached to the given renderers
func DCMotor(ctx context.Context, policyName string, renderers []dashboard.Renderer) error {
	m := motor.NewDCMotor(motor.DefaultParams())
	rg := motor.NewSineReference(m, "omega", 0.6, 5, 0)
	rf := motor.NewWeightedSumOfErrors([]float64{1, 0, 0, 0})
	env := motor.NewEnvironment(m, rg, rf)

	var policy types.Policy
	switch policyName {
	case "random":
		policy = policies.NewRandomPolicy(len(m.VoltageLevels()))
	case "softmax":
		policy = policies.NewSoftMaxPolicy(len(m.VoltageLevels()), 10, 0.3, 0.9, 0.5)
	default:
		return fmt.Errorf("unknown policy: %s", policyName)
	}

	d := dashboard.New(dashboard.Config{
		Plots:       toPlotSpecs(plots),
		UpdateCycle: updateCycle,
		DarkMode:    darkMode,
		Renderers:   renderers,
	})
	defer d.Close()

	sinks := make([]telemetry.Sink, 0)
	if recordTraces {
		fileSink, err := telemetry.NewFileSink(path.Join(saveDir, "traces"), "dcmotor")
		if err != nil {
			return err
		}
		sinks = append(sinks, fileSink)
	}
	if redisAddr != "" {
		sinks = append(sinks, telemetry.NewRedisSink(redisAddr, "motor-rl-viz", 10000))
	}
	defer func() {
		for _, s := range sinks {
			s.Close()
		}
	}()

	r := runner.NewRunner("dcmotor-"+policyName, policy, env)
	return r.Run(&runner.RunConfig{
		Episodes:      episodes,
		Horizon:       horizon,
		Context:       ctx,
		Visualization: d,
		Sinks:         sinks,
	})
}

func toPlotSpecs(tags []string) []interface{} {
	specs := make([]interface{}, len(tags))
	for i, t := range tags {
		specs[i] = t
	}
	return specs
}

func DCMotorCommand() *cobra.Command {
	var policyName string

	cmd := &cobra.Command{
		Use: "dcmotor",
		RunE: func(cmd *cobra.Command, args []string) error {
			fileRenderer, err := dashboard.NewFileRenderer(path.Join(saveDir, "frames"))
			if err != nil {
				return err
			}
			return DCMotor(context.Background(), policyName, []dashboard.Renderer{fileRenderer})
		},
	}
	cmd.PersistentFlags().StringVar(&policyName, "policy", "random", "Policy to run (random or softmax)")
	return cmd
}
