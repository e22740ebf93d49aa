package demos

import "github.com/spf13/cobra"

var (
	episodes     int
	horizon      int
	updateCycle  int
	darkMode     bool
	plots        []string
	saveDir      string
	redisAddr    string
	recordTraces bool
)

func GetRootCommand() *cobra.Command {
	rootCommand := &cobra.Command{}
	rootCommand.PersistentFlags().IntVarP(&episodes, "episodes", "e", 10, "Number of episodes to run")
	rootCommand.PersistentFlags().IntVar(&horizon, "horizon", 10000, "Horizon of each episode")
	rootCommand.PersistentFlags().IntVarP(&updateCycle, "update-cycle", "u", 1000, "Number of steps after which the figure is redrawn")
	rootCommand.PersistentFlags().BoolVar(&darkMode, "dark", false, "Dark background for the figure")
	rootCommand.PersistentFlags().StringSliceVarP(&plots, "plots", "p", []string{"omega", "reward", "action_0"}, "Plots to show: state names, reward, action_{i}")
	rootCommand.PersistentFlags().StringVarP(&saveDir, "save", "s", "results", "Save rendered frames and traces in the specified folder")
	rootCommand.PersistentFlags().StringVar(&redisAddr, "redis-addr", "", "Publish step records to a redis stream at this address")
	rootCommand.PersistentFlags().BoolVar(&recordTraces, "record-traces", false, "Record the step data of every episode as jsonl files")
	// adding the subcommands here
	rootCommand.AddCommand(DCMotorCommand())
	rootCommand.AddCommand(LiveCommand())
	return rootCommand
}
