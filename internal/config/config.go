package config

import (
	"errors"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	AppDirName            = "ticklist"
	DefaultConfigFileName = "config.toml"
	DefaultStateName      = "state.json"
	DefaultDBName         = "ticklist.db"
	DefaultLogName        = "ticklist.log"
	DefaultTickMS         = 250
)

// Keymap lists the physical keys for each logical action. Key names follow
// bubbletea's KeyMsg.String() ("q", "ctrl+c", "enter", "down", ...).
type Keymap struct {
	Quit          []string `toml:"quit"`
	Next          []string `toml:"next"`
	Previous      []string `toml:"previous"`
	IncreaseState []string `toml:"increase_state"`
	DecreaseState []string `toml:"decrease_state"`
	MoveUp        []string `toml:"move_up"`
	MoveDown      []string `toml:"move_down"`
	Add           []string `toml:"add"`
	Delete        []string `toml:"delete"`
	Edit          []string `toml:"edit"`
	Confirm       []string `toml:"confirm"`
	Cancel        []string `toml:"cancel"`
	Yes           []string `toml:"yes"`
	No            []string `toml:"no"`
	Backspace     []string `toml:"backspace"`
}

type Config struct {
	StatePath string `toml:"state_path"`
	Backend   string `toml:"backend"`
	DBPath    string `toml:"db_path"`
	TickMS    int    `toml:"tick_ms"`
	Glyphs    string `toml:"glyphs"`
	LogFile   string `toml:"log_file"`
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
	Keys      Keymap `toml:"keys"`
}

// ResolveConfigDir returns $XDG_CONFIG_HOME/ticklist when set, otherwise
// the OS user config dir.
func ResolveConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppDirName), nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppDirName), nil
}

func ResolveConfigPath() (string, error) {
	dir, err := ResolveConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DefaultConfigFileName), nil
}

// LoadOrCreate reads the config at path, writing the defaults first when the
// file does not exist. Relative paths inside the file are resolved against
// the config file's directory.
func LoadOrCreate(path string) (Config, error) {
	dir := filepath.Dir(path)
	cfg := defaultConfig()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		cfg.finalize(dir)
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	cfg.finalize(dir)
	return cfg, nil
}

func write(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func (c *Config) finalize(dir string) {
	def := defaultConfig()
	if c.StatePath == "" {
		c.StatePath = def.StatePath
	}
	if c.Backend == "" {
		c.Backend = def.Backend
	}
	if c.DBPath == "" {
		c.DBPath = def.DBPath
	}
	if c.TickMS <= 0 {
		c.TickMS = def.TickMS
	}
	if c.Glyphs == "" {
		c.Glyphs = def.Glyphs
	}
	if c.LogFile == "" {
		c.LogFile = def.LogFile
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	if c.LogFormat == "" {
		c.LogFormat = def.LogFormat
	}
	c.StatePath = resolve(dir, c.StatePath)
	c.DBPath = resolve(dir, c.DBPath)
	c.LogFile = resolve(dir, c.LogFile)

	keys, defKeys := c.Keys.bindings(), def.Keys.bindings()
	for i, k := range keys {
		if len(*k) == 0 {
			*k = *defKeys[i]
		}
	}
}

func (k *Keymap) bindings() []*[]string {
	return []*[]string{
		&k.Quit, &k.Next, &k.Previous, &k.IncreaseState, &k.DecreaseState,
		&k.MoveUp, &k.MoveDown, &k.Add, &k.Delete, &k.Edit,
		&k.Confirm, &k.Cancel, &k.Yes, &k.No, &k.Backspace,
	}
}

func resolve(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}

func defaultConfig() Config {
	return Config{
		StatePath: DefaultStateName,
		Backend:   "json",
		DBPath:    DefaultDBName,
		TickMS:    DefaultTickMS,
		Glyphs:    "ascii",
		LogFile:   DefaultLogName,
		LogLevel:  "info",
		LogFormat: "text",
		Keys: Keymap{
			Quit:          []string{"q", "ctrl+c"},
			Next:          []string{"j", "down"},
			Previous:      []string{"k", "up"},
			IncreaseState: []string{"l", "right"},
			DecreaseState: []string{"h", "left"},
			MoveUp:        []string{"K"},
			MoveDown:      []string{"J"},
			Add:           []string{"a"},
			Delete:        []string{"d"},
			Edit:          []string{"e"},
			Confirm:       []string{"enter"},
			Cancel:        []string{"esc"},
			Yes:           []string{"y", "Y"},
			No:            []string{"n", "N"},
			Backspace:     []string{"backspace"},
		},
	}
}
