package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/procdungeon/internal/doortype"
	"github.com/udisondev/procdungeon/internal/model"
)

// Settings holds the plugin-wide configuration.
type Settings struct {
	LogLevel string `yaml:"log_level"` // debug, info, warn, error

	// Size of one room cell in world units.
	RoomUnit model.Vector `yaml:"room_unit"`

	// Door values used when a door has no door type.
	Door DoorDefaults `yaml:"door"`

	Assets   AssetsConfig   `yaml:"assets"`
	Editor   EditorConfig   `yaml:"editor"`
	Database DatabaseConfig `yaml:"database"`
}

// DoorDefaults is the process-wide fallback for untyped doors.
// Implements doortype.Defaults. Initialised once at startup, read-only afterwards.
type DoorDefaults struct {
	Size   model.Vector `yaml:"size"`
	Offset float64      `yaml:"offset"` // fraction of RoomUnit.Z
	Color  model.Color  `yaml:"color"`
}

var _ doortype.Defaults = DoorDefaults{}

// DoorSize returns the default door size.
func (d DoorDefaults) DoorSize() model.Vector { return d.Size }

// DoorOffset returns the default door offset.
func (d DoorDefaults) DoorOffset() float64 { return d.Offset }

// DoorColor returns the default door colour.
func (d DoorDefaults) DoorColor() model.Color { return d.Color }

// AssetsConfig locates door type asset files.
type AssetsConfig struct {
	Dir        string                    `yaml:"dir"`
	Validation doortype.ValidationPolicy `yaml:"validation"` // off, warn, reject, clamp
}

// EditorConfig holds authoring-only switches.
type EditorConfig struct {
	// Keep free-form descriptions on loaded door types. Runtime builds drop them.
	KeepDescriptions bool `yaml:"keep_descriptions"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// DefaultDoorDefaults returns the stock door: 40x640x400, on the floor, blue.
func DefaultDoorDefaults() DoorDefaults {
	return DoorDefaults{
		Size:   model.NewVector(40, 640, 400),
		Offset: 0,
		Color:  model.Blue,
	}
}

// DefaultSettings returns Settings with sensible defaults.
func DefaultSettings() Settings {
	return Settings{
		LogLevel: "info",
		RoomUnit: model.NewVector(1000, 1000, 400),
		Door:     DefaultDoorDefaults(),
		Assets: AssetsConfig{
			Dir:        "assets/doortypes",
			Validation: doortype.PolicyWarn,
		},
		Editor: EditorConfig{
			KeepDescriptions: false,
		},
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "procdungeon",
			Password: "procdungeon",
			DBName:   "procdungeon",
			SSLMode:  "disable",
		},
	}
}

// Load loads settings from a YAML file on top of DefaultSettings.
// If the file doesn't exist, returns defaults.
func Load(path string) (Settings, error) {
	cfg := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
