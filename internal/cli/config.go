package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ScanSettings are the file-configurable knobs of the scan command.
// Explicit flags and arguments override whatever the file says.
type ScanSettings struct {
	Max     int  `yaml:"max"`
	Shards  int  `yaml:"shards"`
	Verbose bool `yaml:"verbose"`
}

// DefaultScanSettings returns the settings used when no config file is given.
func DefaultScanSettings() ScanSettings {
	return ScanSettings{
		Max:    10_000,
		Shards: 1,
	}
}

// LoadScanSettings reads YAML settings from path on top of the defaults.
// Zero-valued fields in the file keep their defaults.
func LoadScanSettings(path string) (ScanSettings, error) {
	s := DefaultScanSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("scan config: %w", err)
	}

	var file struct {
		Max     *int  `yaml:"max"`
		Shards  *int  `yaml:"shards"`
		Verbose *bool `yaml:"verbose"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return s, fmt.Errorf("scan config %s: %w", path, err)
	}

	if file.Max != nil {
		s.Max = *file.Max
	}
	if file.Shards != nil {
		s.Shards = *file.Shards
	}
	if file.Verbose != nil {
		s.Verbose = *file.Verbose
	}

	if s.Max < 0 {
		return s, fmt.Errorf("scan config %s: max %d is negative", path, s.Max)
	}
	if s.Shards < 0 {
		return s, fmt.Errorf("scan config %s: shards %d is negative", path, s.Shards)
	}
	return s, nil
}
