package judge

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRegistry(t *testing.T) {
	content := `
[[contests]]
id = 101
name = "Autumn Round"
standings_url = "http://judge.local/101"

[[contests]]
id = 102
name = "Winter Round"
standings_url = "http://judge.local/102"
`
	path := filepath.Join(t.TempDir(), "judges.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	registry, err := LoadRegistry(path)
	require.NoError(t, err)

	conf, ok := registry.Lookup(101)
	require.True(t, ok)
	assert.Equal(t, "Autumn Round", conf.Name)
	assert.Equal(t, "http://judge.local/101", conf.StandingsURL)

	_, ok = registry.Lookup(555)
	assert.False(t, ok)
}

func TestLoadRegistryMissingFile(t *testing.T) {
	_, err := LoadRegistry(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
