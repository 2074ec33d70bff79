package config

import (
	"github.com/pseudomuto/sqlalign/pkg/format"
	"go.uber.org/fx"
)

// Module provides the default configuration and its formatter. Configuration
// files are resolved by the root command once its flags have been parsed.
var Module = fx.Module("config", fx.Provide(
	Default,
	func(c *Config) *format.Formatter {
		return c.GetFormatter()
	},
))
