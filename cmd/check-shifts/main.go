package main

import (
	"github.com/nstc-app/management/internal/runner"
	"github.com/nstc-app/management/internal/tools"
)

func main() {
	runner.Main(runner.Tool{
		Name:   "check-shifts",
		Policy: runner.FailOnError,
		Run:    tools.CheckShifts(),
	})
}
