package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	oldVersion, oldCommit, oldTime := Version, GitCommit, BuildTime
	t.Cleanup(func() { Version, GitCommit, BuildTime = oldVersion, oldCommit, oldTime })

	Version, GitCommit, BuildTime = "v1.2.0", "unknown", "unknown"
	assert.Equal(t, "v1.2.0", String())

	GitCommit, BuildTime = "abc123", "2026-01-02"
	assert.Equal(t, "v1.2.0 (commit abc123, built 2026-01-02)", String())
}
