package config

import "errors"

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if c.Paths.DuplicatesDir == "" {
		return errors.New("paths.duplicates_dir must be set")
	}
	if c.Paths.DataDir == "" {
		return errors.New("paths.data_dir must be set")
	}
	if c.Scan.Workers < 0 {
		return errors.New("scan.workers must be >= 0")
	}
	return nil
}
