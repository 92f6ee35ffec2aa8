package judge

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// ContestConf links a portal contest to the judge that runs it.
type ContestConf struct {
	ID           int64  `toml:"id"`
	Name         string `toml:"name"`
	StandingsURL string `toml:"standings_url"`
}

type registryFile struct {
	Contests []ContestConf `toml:"contests"`
}

// Registry maps contest IDs to judge configuration. Contests absent from
// the registry have no judge link.
type Registry struct {
	byID map[int64]ContestConf
}

func LoadRegistry(path string) (*Registry, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read judge registry: %w", err)
	}
	var file registryFile
	if err := toml.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("failed to parse judge registry: %w", err)
	}
	return NewRegistry(file.Contests), nil
}

func NewRegistry(contests []ContestConf) *Registry {
	byID := make(map[int64]ContestConf, len(contests))
	for _, c := range contests {
		byID[c.ID] = c
	}
	return &Registry{byID: byID}
}

func (r *Registry) Lookup(contestID int64) (ContestConf, bool) {
	conf, ok := r.byID[contestID]
	return conf, ok
}
