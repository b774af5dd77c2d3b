package epanet

import "go.uber.org/zap"

// ProjectOption configures a Project at construction time.
type ProjectOption func(*projectConfig)

type projectConfig struct {
	logger *zap.Logger
	eng    engine
}

// WithLogger sets the logger a project writes to. Defaults to Logger().
func WithLogger(l *zap.Logger) ProjectOption {
	return func(c *projectConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// withEngine replaces the native toolkit. Used by tests.
func withEngine(e engine) ProjectOption {
	return func(c *projectConfig) {
		c.eng = e
	}
}

func buildConfig(opts []ProjectOption) projectConfig {
	c := projectConfig{logger: Logger()}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
