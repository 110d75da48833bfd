//go:build unit

package sqlc_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The query layer is maintained by hand, so no file may carry the generator
// marker that tells linters and editors to skip it.
func TestSourcesAreNotMarkedGenerated(t *testing.T) {
	files, err := filepath.Glob("*.go")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, f := range files {
		if strings.HasSuffix(f, "_test.go") {
			continue
		}
		b, err := os.ReadFile(f)
		require.NoError(t, err)
		assert.NotContains(t, string(b), "DO NOT EDIT", f)
		assert.NotContains(t, string(b), "Code generated", f)
	}
}
