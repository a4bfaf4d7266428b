package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

type WindowConfig struct {
	Width         int    `mapstructure:"width"`
	Height        int    `mapstructure:"height"`
	TargetFPS     int    `mapstructure:"target_fps"`
	Title         string `mapstructure:"title"`
	Wallpaper     bool   `mapstructure:"wallpaper"`
	GlobalPointer bool   `mapstructure:"global_pointer"`
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	LogFile    string `mapstructure:"log_file"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	ShowRaylib bool   `mapstructure:"show_raylib"`
}

type ExportConfig struct {
	Dir string `mapstructure:"dir"`
}

type DebugLogConfig struct {
	Enabled   bool    `mapstructure:"enabled"`
	Path      string  `mapstructure:"path"`
	RateLimit float64 `mapstructure:"rate_limit"`
	Burst     int     `mapstructure:"burst"`
}

type Config struct {
	Controls Controls       `mapstructure:"controls"`
	Window   WindowConfig   `mapstructure:"window"`
	Logger   LoggerConfig   `mapstructure:"logger"`
	Export   ExportConfig   `mapstructure:"export"`
	DebugLog DebugLogConfig `mapstructure:"debug_log"`
	FontDirs []string       `mapstructure:"font_dirs"`
}

// SetDefaults registers every default with v so env vars and partial files layer over them.
func SetDefaults(v *viper.Viper) {
	d := DefaultControls()
	v.SetDefault("controls.version", d.Version)
	v.SetDefault("controls.text_line1", d.TextLine1)
	v.SetDefault("controls.text_line2", d.TextLine2)
	v.SetDefault("controls.line_mode", d.LineMode)
	v.SetDefault("controls.font", d.Font)
	v.SetDefault("controls.line_gap", d.LineGap)
	v.SetDefault("controls.particle_count", d.ParticleCount)
	v.SetDefault("controls.trail_spacing", d.TrailSpacing)
	v.SetDefault("controls.particle_size", d.ParticleSize)
	v.SetDefault("controls.cursor_influence_size", d.CursorInfluenceSize)
	v.SetDefault("controls.particle_shape", string(d.ParticleShape))
	v.SetDefault("controls.gradient_enabled", d.GradientEnabled)
	v.SetDefault("controls.color", d.Color)
	v.SetDefault("controls.gradient_start", d.GradientStart)
	v.SetDefault("controls.gradient_end", d.GradientEnd)
	v.SetDefault("controls.background_color", d.BackgroundColor)
	v.SetDefault("controls.background_grid_enabled", d.BackgroundGridEnabled)
	v.SetDefault("controls.rgb_shift_intensity", d.RGBShiftIntensity)
	v.SetDefault("controls.rgb_shift_angle", d.RGBShiftAngle)

	v.SetDefault("window.width", 1280)
	v.SetDefault("window.height", 720)
	v.SetDefault("window.target_fps", 60)
	v.SetDefault("window.title", "Hero Particles")
	v.SetDefault("window.wallpaper", false)
	v.SetDefault("window.global_pointer", false)

	v.SetDefault("logger.level", "warn")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.show_raylib", false)

	v.SetDefault("export.dir", ".")

	v.SetDefault("debug_log.enabled", false)
	v.SetDefault("debug_log.path", ".cursor/debug.log")
	v.SetDefault("debug_log.rate_limit", 20.0)
	v.SetDefault("debug_log.burst", 40)

	v.SetDefault("font_dirs", []string{"assets/fonts"})
}

// NewViper prepares a viper instance reading cfgFile (or ./hero-particles.{yaml,json,toml}) and HERO_* env vars.
func NewViper(cfgFile string) *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("hero-particles")
	}

	v.SetEnvPrefix("HERO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// ReadConfig reads the config file if present. A missing file is not an error.
func ReadConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}
	return nil
}

// Load unmarshals v and sanitizes the controls against prev.
func Load(v *viper.Viper, prev Controls) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	cfg.Controls.Sanitize(prev)

	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		cfg.Window.Width, cfg.Window.Height = 1280, 720
	}
	if cfg.Window.TargetFPS <= 0 {
		cfg.Window.TargetFPS = 60
	}
	return &cfg, nil
}

// Reloader watches the config file and hands sanitized controls to the frame loop.
// Only the latest reload is kept.
type Reloader struct {
	v       *viper.Viper
	updates chan Controls
	current func() Controls
	onError func(error)
}

// NewReloader starts watching v's config file. current returns the controls in effect,
// used as the fallback for malformed values.
func NewReloader(v *viper.Viper, current func() Controls, onError func(error)) *Reloader {
	r := &Reloader{
		v:       v,
		updates: make(chan Controls, 1),
		current: current,
		onError: onError,
	}
	v.OnConfigChange(func(fsnotify.Event) { r.reload() })
	if v.ConfigFileUsed() != "" {
		v.WatchConfig()
	}
	return r
}

func (r *Reloader) reload() {
	cfg, err := Load(r.v, r.current())
	if err != nil {
		if r.onError != nil {
			r.onError(err)
		}
		return
	}
	r.offer(cfg.Controls)
}

func (r *Reloader) offer(c Controls) {
	select {
	case <-r.updates:
	default:
	}
	select {
	case r.updates <- c:
	default:
	}
}

// Pending returns the latest reloaded controls, if any arrived since the last call.
func (r *Reloader) Pending() (Controls, bool) {
	select {
	case c := <-r.updates:
		return c, true
	default:
		return Controls{}, false
	}
}
