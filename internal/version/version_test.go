package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFull(t *testing.T) {
	assert.Equal(t, Version, Full())

	originalBuildTime, originalGitCommit := BuildTime, GitCommit
	t.Cleanup(func() {
		BuildTime, GitCommit = originalBuildTime, originalGitCommit
	})

	BuildTime = "2026-01-01"
	GitCommit = "abcdef"
	assert.Equal(t, Version+" (commit: abcdef, built: 2026-01-01)", Full())

	GitCommit = "unknown"
	assert.Equal(t, Version, Full())
}
