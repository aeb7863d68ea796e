// Package config provides configuration management for pipeline-features.
//
// Settings come from environment variables, optionally seeded from a .env
// file, and are mapped onto nested keys by replacing "_" with ".":
//   - LOG_LEVEL, LOG_FORMAT
//   - EXTRACT_FORMAT (lines, csv, json)
//   - EXTRACT_SUPPRESS (comma separated feature names)
//
// Defaults are declared with `default` struct tags on each section's Config.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Extract.Format)
package config
