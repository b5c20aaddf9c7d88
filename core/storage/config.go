package storage

// Config holds configuration for the dataset location.
type Config struct {
	// BaseDir is the directory containing ExcelOutput/ and TextMap/.
	BaseDir string `mapstructure:"base_dir" default:"."`
}
