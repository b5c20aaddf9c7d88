package excel

// Config holds table store settings.
type Config struct {
	// Version is the game version of the dataset ("1.6", "2.3"). It scopes the
	// dirty-data allow-list and is reported in schema fallback diagnostics.
	Version string `mapstructure:"version" default:""`
	// PreloadWorkers bounds the number of tables loaded concurrently by Preload.
	PreloadWorkers int `mapstructure:"preload_workers" default:"8"`
}
