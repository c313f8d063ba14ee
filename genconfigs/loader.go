package genconfigs

import (
	_ "embed"
	"os"
	"path/filepath"
	"slices"

	"github.com/reusee/rulegen/cmds"
	"github.com/reusee/rulegen/configs"
	"github.com/reusee/rulegen/logs"
	"github.com/reusee/rulegen/modes"
)

//go:embed schema.cue
var schema string

var configFlag = cmds.Collect[string]("config")

// ConfigPaths lists config files by precedence.
type ConfigPaths []string

func (Module) ConfigPaths(
	mode modes.Mode,
) ConfigPaths {
	paths := slices.Clone(*configFlag)
	if mode != modes.ModeProduction {
		// explicit files only
		return paths
	}

	filenames := []string{
		"rulegen.cue",
		".rulegen.cue",
	}
	var dirs []string
	if workingDir, err := os.Getwd(); err == nil {
		dirs = append(dirs, workingDir)
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, configDir)
	}
	dirs = append(dirs, "/etc")

	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	return paths
}

func (Module) ConfigsLoader(
	logger logs.Logger,
	paths ConfigPaths,
) configs.Loader {
	if len(paths) > 0 {
		logger.Info("config file",
			"paths", []string(paths),
		)
	}
	return configs.NewLoader(paths, schema)
}
