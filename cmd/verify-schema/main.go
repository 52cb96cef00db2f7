// Command verify-schema fails the deploy when required columns are missing.
// It only checks when APP_REQUIRE_DB_VERIFY is set.
package main

import (
	"github.com/nstc-app/management/internal/config"
	"github.com/nstc-app/management/internal/runner"
	"github.com/nstc-app/management/internal/tools"
)

func main() {
	runner.MainFor(func(cfg config.Config) runner.Tool {
		tool := runner.Tool{
			Name:   "verify-schema",
			Policy: runner.FailOnError,
			Run:    tools.VerifySchema(tools.RequiredColumns),
		}
		if !cfg.RequireDBVerify {
			tool.Skip = "[db:verify] Skipping DB schema verification (set APP_REQUIRE_DB_VERIFY=1 to enable)."
		}
		return tool
	})
}
