// Package cmd provides the subcommands of the tracekv command-line interface.
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the JSON configuration file.
	ConfigIdentifier = "config"

	// LevelsIdentifier is the kong variable identifier containing the
	// comma-separated list of log level names.
	LevelsIdentifier = "levels"
)
