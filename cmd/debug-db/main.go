// Command debug-db prints table counts to check the store is reachable. It
// always exits 0.
package main

import (
	"github.com/nstc-app/management/internal/runner"
	"github.com/nstc-app/management/internal/tools"
)

func main() {
	runner.Main(runner.Tool{
		Name:   "debug-db",
		Policy: runner.LogOnly,
		Run:    tools.DebugDB(),
	})
}
