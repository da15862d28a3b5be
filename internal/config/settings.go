package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Settings holds all configuration options.
type Settings struct {
	// Paths
	SavePath        string            `json:"save_path"`
	SavePathMap     map[string]string `json:"save_path_map"`
	FrontStaticPath string            `json:"front_static_path"`
	StatePath       string            `json:"state_path"`
	LogPath         string            `json:"log_path"`

	// Episode filtering
	EnableGlobalFilters bool     `json:"enable_global_filters"`
	GlobalFilters       []string `json:"global_filters"`

	// Cover download settings
	MaxConcurrentCoverDownloads int  `json:"max_concurrent_cover_downloads"`
	ConvertCoverToJPEG          bool `json:"convert_cover_to_jpeg"`
	CoverMaxSize                int  `json:"cover_max_size"`

	// Data source to probe for connectivity checks
	DataSourceURL string `json:"data_source_url"`
}

// DefaultSettings returns settings with default values.
//
// All state lives under ~/.bgmi: downloaded bangumi and covers in
// bangumi/, the installed web frontend in front_static/, and the
// rotating debug log in bgmi.log.
func DefaultSettings() *Settings {
	homeDir, _ := os.UserHomeDir()
	base := filepath.Join(homeDir, ".bgmi")

	return &Settings{
		SavePath:        filepath.Join(base, "bangumi"),
		SavePathMap:     map[string]string{},
		FrontStaticPath: filepath.Join(base, "front_static"),
		StatePath:       base,
		LogPath:         filepath.Join(base, "bgmi.log"),

		EnableGlobalFilters: true,
		GlobalFilters:       []string{"Leopard-Raws", "hevc", "x265", "c-a Raws", "U3-Web"},

		MaxConcurrentCoverDownloads: 4,
		ConvertCoverToJPEG:          false,
		CoverMaxSize:                1000,

		DataSourceURL: "https://bangumi.moe",
	}
}

// Load reads settings from a JSON file.
//
// A missing file is not an error: defaults are returned so a fresh
// installation works without any configuration step.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultPath returns the location of the configuration file.
func DefaultPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".bgmi", "config.json")
}
