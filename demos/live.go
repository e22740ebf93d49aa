package demos

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/zeu5/motor-rl-viz/dashboard"
	"github.com/zeu5/motor-rl-viz/live"
)

func LiveCommand() *cobra.Command {
	var policyName string
	var addr string

	cmd := &cobra.Command{
		Use: "live",
		RunE: func(cmd *cobra.Command, args []string) error {
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt)

			doneCh := make(chan struct{})

			ctx, cancel := context.WithCancel(context.Background())
			go func() {
				select {
				case <-sigCh:
				case <-doneCh:
				}
				cancel()
			}()

			server := live.NewServer(addr)
			server.Describe(plots, updateCycle)
			server.Start(ctx)
			fmt.Printf("Serving the dashboard at http://%s\n", addr)

			err := DCMotor(ctx, policyName, []dashboard.Renderer{server})

			close(doneCh)
			return err
		},
	}
	cmd.PersistentFlags().StringVar(&addr, "addr", "localhost:8080", "Address to serve the dashboard on")
	cmd.PersistentFlags().StringVar(&policyName, "policy", "softmax", "Policy to run (random or softmax)")
	return cmd
}
