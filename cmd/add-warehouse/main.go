// Command add-warehouse ensures one warehouse exists, by name.
package main

import (
	"flag"

	"github.com/nstc-app/management/internal/runner"
	"github.com/nstc-app/management/internal/tools"
)

func main() {
	name := flag.String("name", "CWW", "warehouse name")
	location := flag.String("location", "Central Warehouse", "location stored when the warehouse is created")
	flag.Parse()

	runner.Main(runner.Tool{
		Name:   "add-warehouse",
		Policy: runner.FailOnError,
		Run:    tools.AddWarehouse(*name, *location),
	})
}
