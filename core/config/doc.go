// Package config provides configuration management for datamine.
//
// It utilizes Viper for loading configuration from environment variables, an optional
// datamine.yaml file and a .env file. Defaults come from the `default` struct tags of each
// partial configuration.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Storage: base directory of the dataset export
//   - Excel: dataset game version and preload parallelism
//   - Text: localization language (BCP 47 tag)
//   - Log: logging level and format
//   - Database: snapshot export database
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Storage.BaseDir)
package config
