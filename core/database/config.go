package database

// Config holds configuration for the snapshot export database.
type Config struct {
	// Driver is the database driver. Only sqlite is supported.
	Driver string `mapstructure:"driver" default:"sqlite"`
	// Path is the database file, or ":memory:".
	Path string `mapstructure:"path" default:"datamine.db"`
}
