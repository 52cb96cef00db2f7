// Command fix-regions rewrites known misspellings of region names on workers
// and users in a single transaction.
package main

import (
	"github.com/nstc-app/management/internal/runner"
	"github.com/nstc-app/management/internal/services"
	"github.com/nstc-app/management/internal/tools"
)

func main() {
	runner.Main(runner.Tool{
		Name:   "fix-regions",
		Policy: runner.FailOnError,
		Run:    tools.FixRegions(services.RegionAliases),
	})
}
