package wormconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/tapeworm/configs"
	"github.com/reusee/tapeworm/logs"
	"github.com/reusee/tapeworm/modes"
)

//go:embed schema.cue
var schema string

var filenames = []string{
	"tapeworm.cue",
	".tapeworm.cue",
}

// ConfigPaths lists candidate config files, most specific first.
func ConfigPaths() (paths []string) {
	if workingDir, err := os.Getwd(); err == nil {
		for _, filename := range filenames {
			paths = append(paths, filepath.Join(workingDir, filename))
		}
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		for _, filename := range filenames {
			paths = append(paths, filepath.Join(configDir, filename))
		}
	}
	for _, filename := range filenames {
		paths = append(paths, filepath.Join("/etc", filename))
	}
	return
}

func (Module) ConfigsLoader(
	mode modes.Mode,
	logger logs.Logger,
) configs.Loader {
	if mode == modes.ModeDevelopment {
		return configs.NewLoader(nil, schema)
	}
	loader := configs.NewLoader(ConfigPaths(), schema)
	if paths, err := loader.Paths(); err == nil && len(paths) > 0 {
		logger.Info("config files", "paths", paths)
	}
	return loader
}
