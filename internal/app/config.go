package app

import (
	"github.com/darkroom/server/internal/shared/config"
)

// LoadConfig loads application configuration. An explicit path wins over the
// default lookup locations.
func LoadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}
