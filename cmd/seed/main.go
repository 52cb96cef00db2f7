// Command seed creates the schema and upserts the lookup tables (warehouses,
// regions, projects). When APP_DEFAULT_ADMIN_PASSWORD is set it also creates
// the first manager account. Safe to run repeatedly.
package main

import (
	"github.com/nstc-app/management/internal/config"
	"github.com/nstc-app/management/internal/runner"
	"github.com/nstc-app/management/internal/tools"
)

func main() {
	runner.MainFor(func(cfg config.Config) runner.Tool {
		return runner.Tool{
			Name:    "seed",
			Policy:  runner.FailOnError,
			Migrate: true,
			Run: tools.Seed(tools.AdminAccount{
				Username: cfg.DefaultAdminUsername,
				Password: cfg.DefaultAdminPassword,
			}),
		}
	})
}
