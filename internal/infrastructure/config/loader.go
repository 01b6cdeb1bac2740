package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"

	"gopkg.in/yaml.v3"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Tuning *Tuning
	Level  *LevelConfig
}

// Loader loads game configuration from files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// BasePath returns the path the loader was created with
func (l *Loader) BasePath() string {
	return l.basePath
}

// LoadTuning loads tuning.json on top of the defaults and validates it
func (l *Loader) LoadTuning() (*Tuning, error) {
	data, err := fs.ReadFile(l.fsys, "tuning.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning.json: %w", err)
	}

	cfg := DefaultTuning()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse tuning.json: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("tuning.json: %w", err)
	}

	return cfg, nil
}

// LoadLevel loads a level by name from levels/.
// A name with a .yaml, .yml or .tmx extension selects the format; a bare
// name tries <name>.yaml first and falls back to <name>.tmx.
func (l *Loader) LoadLevel(name string) (*LevelConfig, error) {
	switch path.Ext(name) {
	case ".yaml", ".yml":
		return l.loadYAMLLevel(path.Join("levels", name))
	case ".tmx":
		return l.LoadTMXLevel(path.Join("levels", name))
	}

	cfg, err := l.loadYAMLLevel(path.Join("levels", name+".yaml"))
	if errors.Is(err, fs.ErrNotExist) {
		return l.LoadTMXLevel(path.Join("levels", name+".tmx"))
	}
	return cfg, err
}

func (l *Loader) loadYAMLLevel(p string) (*LevelConfig, error) {
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("failed to read level %s: %w", p, err)
	}

	cfg, err := ParseLevel(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse level %s: %w", p, err)
	}
	if cfg.ID == "" {
		cfg.ID = trimExt(path.Base(p))
	}

	return cfg, nil
}

// ParseLevel decodes a YAML level document
func ParseLevel(data []byte) (*LevelConfig, error) {
	var cfg LevelConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadAll loads tuning.json and the named level
func (l *Loader) LoadAll(level string) (*GameConfig, error) {
	tuning, err := l.LoadTuning()
	if err != nil {
		return nil, err
	}

	lvl, err := l.LoadLevel(level)
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Tuning: tuning,
		Level:  lvl,
	}, nil
}

func trimExt(name string) string {
	return name[:len(name)-len(path.Ext(name))]
}
