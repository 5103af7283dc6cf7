// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Scene    SceneConfig    `yaml:"scene"`
	Camera   CameraConfig   `yaml:"camera"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// SceneConfig holds scene asset settings.
type SceneConfig struct {
	TextureDir      string     `yaml:"texture_dir"`      // Directory holding the scene texture images
	BackgroundColor [3]float32 `yaml:"background_color"` // Clear color, RGB in 0-1
}

// CameraConfig holds orbit camera settings.
type CameraConfig struct {
	Distance        float32 `yaml:"distance"`         // Initial distance from the scene center
	DragSensitivity float32 `yaml:"drag_sensitivity"` // Radians per pixel of mouse drag
	ZoomSensitivity float32 `yaml:"zoom_sensitivity"` // Fraction of distance per wheel tick
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Scene: SceneConfig{
			TextureDir:      "textures",
			BackgroundColor: [3]float32{0.1, 0.1, 0.15},
		},
		Camera: CameraConfig{
			Distance:        40.0,
			DragSensitivity: 0.005,
			ZoomSensitivity: 0.1,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
