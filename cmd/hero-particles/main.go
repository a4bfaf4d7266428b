package main

import (
	"fmt"
	"os"

	"hero-particles/internal/config"
	"hero-particles/internal/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

func newRootCmd() *cobra.Command {
	var v *viper.Viper

	cmd := &cobra.Command{
		Use:   "hero-particles",
		Short: "Interactive text particle hero animation",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v = config.NewViper(cfgFile)
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return fmt.Errorf("binding flags: %w", err)
			}
			return config.ReadConfig(v)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(v)
		},
		SilenceUsage: true,
	}

	f := cmd.Flags()
	f.StringVarP(&cfgFile, "config", "c", "", "config file (default ./hero-particles.yaml)")
	f.BoolVar(&utils.DebugMode, "debug", false, "enable verbose debug logging")
	f.String("logger.level", "warn", "log level: debug, info, warn, error")
	f.String("logger.log_file", "", "also write JSON logs to this file")
	f.Bool("logger.show_raylib", false, "show raylib info messages")
	f.Bool("window.wallpaper", false, "undecorated full-monitor window")
	f.Bool("window.global_pointer", false, "read the pointer through X11 instead of window events")
	f.Int("window.width", 1280, "window width")
	f.Int("window.height", 720, "window height")
	f.String("export.dir", ".", "directory for exported frames")
	f.StringSlice("font_dirs", []string{"assets/fonts"}, "extra font directories")
	f.Bool("debug_log.enabled", false, "append structured debug events to debug_log.path")
	f.String("controls.text_line1", config.DefaultControls().TextLine1, "first text line")
	f.String("controls.text_line2", config.DefaultControls().TextLine2, "second text line")
	return cmd
}

func run(v *viper.Viper) error {
	cfg, err := config.Load(v, config.DefaultControls())
	if err != nil {
		return err
	}

	utils.ShowRaylibInfo = cfg.Logger.ShowRaylib
	utils.InitLogger(utils.LogOptions{
		Level:      utils.ParseLevel(cfg.Logger.Level),
		File:       cfg.Logger.LogFile,
		MaxSize:    cfg.Logger.MaxSize,
		MaxBackups: cfg.Logger.MaxBackups,
	})
	defer utils.SyncLogger()

	rl.SetTraceLogCallback(utils.RaylibLogCallback)

	utils.Info("--- Hero Particles Start ---")
	if used := v.ConfigFileUsed(); used != "" {
		utils.Info("Config: %s", used)
	}

	window, err := NewWindow(v, cfg)
	if err != nil {
		return err
	}
	defer window.Close()

	window.Run()
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
