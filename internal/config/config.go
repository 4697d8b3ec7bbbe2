// Package config handles configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Window    WindowConfig      `yaml:"window"`
	Animation AnimationConfig   `yaml:"animation"`
	View      ViewConfig        `yaml:"view"`
	Palette   PaletteConfig     `yaml:"palette"`
	Keys      map[string]string `yaml:"keys"` // key name -> action, overrides the defaults
	History   HistoryConfig     `yaml:"history"`
	Logging   LoggingConfig     `yaml:"logging"`
}

// WindowConfig holds desktop window settings.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// AnimationConfig holds move animation settings.
type AnimationConfig struct {
	Frames int `yaml:"frames"` // frames per quarter turn
	FPS    int `yaml:"fps"`
}

// ViewConfig holds the initial render toggles.
type ViewConfig struct {
	Wireframe       bool `yaml:"wireframe"`
	Axes            bool `yaml:"axes"`
	BackfaceCulling bool `yaml:"backface_culling"`
}

// PaletteConfig holds sticker colors as #rrggbb strings, in face order
// Up, Front, Right, Back, Left, Down.
type PaletteConfig struct {
	Faces    []string `yaml:"faces"`
	Override string   `yaml:"override"`
}

// HistoryConfig controls the move journal.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	DBPath  string `yaml:"db_path"` // empty means the default location
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the stock viewer settings.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			Title:  "cubeview",
		},
		Animation: AnimationConfig{
			Frames: 10,
			FPS:    60,
		},
		View: ViewConfig{
			BackfaceCulling: true,
		},
		Palette: PaletteConfig{
			Faces:    []string{"#ffffff", "#009b48", "#b71234", "#0046ad", "#ff5800", "#ffd500"},
			Override: "#7b7b7b",
		},
		History: HistoryConfig{
			Enabled: false,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
