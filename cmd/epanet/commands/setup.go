package commands

import (
	"github.com/agiangrant/epanet"
	"go.uber.org/zap"
)

// setup loads epanet.toml, installs the logger and loads the toolkit.
// The returned function flushes the logger.
func setup(libOverride string) (ProjectConfig, *zap.Logger, func(), error) {
	config, err := LoadConfig()
	if err != nil {
		return config, nil, nil, err
	}
	if libOverride != "" {
		config.Library.Path = libOverride
	}

	log, err := newLogger(config.Log)
	if err != nil {
		return config, nil, nil, err
	}
	epanet.SetLogger(log)
	done := func() { _ = log.Sync() }

	if err := epanet.LoadLibrary(config.Library.Path); err != nil {
		done()
		return config, nil, nil, err
	}
	log.Debug("toolkit loaded", zap.String("path", epanet.LibraryPath()))

	return config, log, done, nil
}
