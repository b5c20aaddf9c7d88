package textmap

// Config holds localization settings.
type Config struct {
	// Language is a BCP 47 tag selecting the TextMap file (zh-Hans, en, ja, ...).
	Language string `mapstructure:"language" default:"zh-Hans"`
}
