package main

import (
	"fmt"

	"github.com/zeu5/motor-rl-viz/demos"
)

// main entry point to all the demos
func main() {
	rootCommand := demos.GetRootCommand()
	if err := rootCommand.Execute(); err != nil {
		fmt.Println(err)
	}
}
