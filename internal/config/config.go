package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"pyedit/internal/logger"
)

const (
	EnvConfigFile = "PYEDIT_CONFIG"
	DefaultFile   = "pyedit.yaml"
)

type Size struct {
	Width  float32 `yaml:"width,omitempty"`
	Height float32 `yaml:"height,omitempty"`
}

type Log struct {
	Level string `yaml:"level,omitempty"`
	JSON  bool   `yaml:"json,omitempty"`
	File  string `yaml:"file,omitempty"`
}

type Config struct {
	Interpreter     string `yaml:"interpreter,omitempty"`
	InterpreterFlag string `yaml:"interpreter_flag,omitempty"`
	PackageManager  string `yaml:"package_manager,omitempty"`
	SelfPackage     string `yaml:"self_package,omitempty"`
	Extension       string `yaml:"extension,omitempty"`
	Window          Size   `yaml:"window,omitempty"`
	ListingWindow   Size   `yaml:"listing_window,omitempty"`
	Log             Log    `yaml:"log,omitempty"`
}

func Default() Config {
	return Config{
		Interpreter:     "python3",
		InterpreterFlag: "-c",
		PackageManager:  "pip",
		SelfPackage:     "pip",
		Extension:       ".py",
		Window:          Size{Width: 800, Height: 600},
		ListingWindow:   Size{Width: 1058, Height: 1000},
		Log:             Log{Level: "info"},
	}
}

// Load reads the YAML file named by PYEDIT_CONFIG (or pyedit.yaml) and applies
// environment overrides. A missing file is not an error.
func Load() (Config, error) {
	path, ok := os.LookupEnv(EnvConfigFile)
	if !ok {
		path = DefaultFile
	}

	cfg, err := LoadFile(path)
	if err != nil {
		return cfg, err
	}

	applyEnv(&cfg, os.LookupEnv)
	return cfg, nil
}

func LoadFile(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	merge(&cfg, fileCfg)
	return cfg, nil
}

func merge(dst *Config, src Config) {
	setString(&dst.Interpreter, src.Interpreter)
	setString(&dst.InterpreterFlag, src.InterpreterFlag)
	setString(&dst.PackageManager, src.PackageManager)
	setString(&dst.SelfPackage, src.SelfPackage)
	setString(&dst.Extension, src.Extension)
	setSize(&dst.Window, src.Window)
	setSize(&dst.ListingWindow, src.ListingWindow)
	setString(&dst.Log.Level, src.Log.Level)
	setString(&dst.Log.File, src.Log.File)
	if src.Log.JSON {
		dst.Log.JSON = true
	}
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) {
	if v, ok := lookup("PYEDIT_PYTHON"); ok {
		setString(&cfg.Interpreter, v)
	}
	if v, ok := lookup("PYEDIT_PIP"); ok {
		setString(&cfg.PackageManager, v)
	}
	if v, ok := lookup("PYEDIT_LOG_FILE"); ok {
		setString(&cfg.Log.File, v)
	}
	if v, ok := lookup("PYEDIT_JSON_LOGS"); ok && v == "true" {
		cfg.Log.JSON = true
	}

	if v, ok := lookup("LOG_LEVEL"); ok && v != "" {
		cfg.Log.Level = v
	} else if v, ok := lookup("DEBUG"); ok && v == "1" {
		cfg.Log.Level = "debug"
	}
}

func (c Config) LogLevel() logger.Level {
	level, _ := logger.ParseLevel(c.Log.Level)
	return level
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setSize(dst *Size, v Size) {
	if v.Width > 0 {
		dst.Width = v.Width
	}
	if v.Height > 0 {
		dst.Height = v.Height
	}
}
