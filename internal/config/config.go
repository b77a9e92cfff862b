package config

import (
	"errors"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

const DefaultConfigFileName = "config.toml"

type Keymap struct {
	Quit          string `toml:"quit"`
	Add           string `toml:"add"`
	Up            string `toml:"up"`
	Down          string `toml:"down"`
	Toggle        string `toml:"toggle"`
	Delete        string `toml:"delete"`
	Edit          string `toml:"edit"`
	Confirm       string `toml:"confirm"`
	Cancel        string `toml:"cancel"`
	Search        string `toml:"search"`
	CycleDone     string `toml:"cycle_done"`
	CycleCategory string `toml:"cycle_category"`
	SortPriority  string `toml:"sort_priority"`
	SortDate      string `toml:"sort_date"`
	SortCategory  string `toml:"sort_category"`
}

type Config struct {
	DefaultFilter string `toml:"default_filter"`
	DarkMode      bool   `toml:"dark_mode"`
	Keys          Keymap `toml:"keys"`
}

// ResolveConfigPath prefers $MARU_CONFIG, then the user config dir,
// falling back to the working directory.
func ResolveConfigPath() string {
	if p := os.Getenv("MARU_CONFIG"); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return DefaultConfigFileName
	}
	return filepath.Join(dir, "maru", DefaultConfigFileName)
}

func LoadOrCreate(path string) (Config, error) {
	cfg := defaultConfig()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.DefaultFilter == "" {
		cfg.DefaultFilter = "all"
	}
	return cfg, nil
}

func write(path string, cfg Config) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultConfig() Config {
	return Config{
		DefaultFilter: "all",
		DarkMode:      true,
		Keys: Keymap{
			Quit:          "q",
			Add:           "a",
			Up:            "k",
			Down:          "j",
			Toggle:        " ",
			Delete:        "d",
			Edit:          "e",
			Confirm:       "enter",
			Cancel:        "esc",
			Search:        "/",
			CycleDone:     "f",
			CycleCategory: "c",
			SortPriority:  "1",
			SortDate:      "2",
			SortCategory:  "3",
		},
	}
}
