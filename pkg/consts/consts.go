package consts

import "os"

const (
	// ModeDir is the standard file mode for creating directories
	ModeDir = os.FileMode(0o755)

	// ModeFile is the standard file mode for creating files
	ModeFile = os.FileMode(0o644)

	// ConfigFile is the name of the optional project configuration file
	ConfigFile = "sqlalign.yaml"

	// ConfigEnvVar overrides the configuration file location
	ConfigEnvVar = "SQLALIGN_CONFIG"

	// SQLExtension is the suffix of files picked up when formatting directories
	SQLExtension = ".sql"

	// DefaultMinWidth is the minimum width of the keyword column
	DefaultMinWidth = 0

	// DefaultUppercaseKeywords controls whether clause labels are upper-cased
	DefaultUppercaseKeywords = false
)
