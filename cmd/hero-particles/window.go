package main

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"hero-particles/internal/config"
	"hero-particles/internal/convert"
	"hero-particles/internal/debug"
	"hero-particles/internal/debuglog"
	"hero-particles/internal/engine2D"
	"hero-particles/internal/engine2D/glyph"
	"hero-particles/internal/input"
	"hero-particles/internal/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/spf13/viper"
)

const pointerPollInterval = 8 * time.Millisecond

type Window struct {
	cfg      *config.Config
	renderer *engine2D.Renderer
	reloader *config.Reloader
	events   *debuglog.Sink

	debugOverlay *debug.DebugOverlay

	// Read by the config watcher goroutine.
	controls atomic.Pointer[config.Controls]

	// Global pointer mode.
	pointer   *utils.GlobalPointer
	coalescer input.Coalescer
	origin    atomic.Pointer[rl.Vector2]
	cancel    context.CancelFunc
	wg        sync.WaitGroup

	lastFrameTime time.Time
	width, height int
}

func NewWindow(v *viper.Viper, cfg *config.Config) (*Window, error) {
	flags := uint32(rl.FlagWindowResizable | rl.FlagMsaa4xHint | rl.FlagVsyncHint)
	if cfg.Window.Wallpaper {
		flags |= rl.FlagWindowUndecorated
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), cfg.Window.Title)

	if cfg.Window.Wallpaper {
		monitor := rl.GetCurrentMonitor()
		rl.SetWindowSize(rl.GetMonitorWidth(monitor), rl.GetMonitorHeight(monitor))
		pos := rl.GetMonitorPosition(monitor)
		rl.SetWindowPosition(int(pos.X), int(pos.Y))
	}

	now := time.Now()
	window := &Window{
		cfg:           cfg,
		lastFrameTime: now,
		debugOverlay:  debug.NewDebugOverlay(),
	}

	window.renderer = engine2D.NewRenderer(engine2D.Options{
		Controls: cfg.Controls,
		Sampler:  glyph.NewSampler(glyph.NewFonts(cfg.FontDirs), nil),
		FPS:      cfg.Window.TargetFPS,
		Now:      now,
	})
	window.storeControls()

	window.reloader = config.NewReloader(v, window.currentControls, func(err error) {
		utils.Warn("Config reload failed: %v", err)
	})

	if cfg.DebugLog.Enabled {
		sink, err := debuglog.Open(debuglog.Options{
			Path:      cfg.DebugLog.Path,
			RateLimit: cfg.DebugLog.RateLimit,
			Burst:     cfg.DebugLog.Burst,
		})
		if err != nil {
			utils.Error("Debug log disabled: %v", err)
		} else {
			window.events = sink
			utils.Info("Debug log session %s -> %s", sink.Session(), cfg.DebugLog.Path)
		}
	}

	if cfg.Window.Wallpaper || cfg.Window.GlobalPointer {
		window.startPointerPolling()
	}

	window.post(debuglog.Event{
		"event":     "start",
		"particles": window.renderer.Simulator.Count(),
		"text":      cfg.Controls.DisplayText(),
	})
	return window, nil
}

func (window *Window) startPointerPolling() {
	pointer, err := utils.NewGlobalPointer()
	if err != nil {
		utils.Warn("Global pointer unavailable, using window events: %v", err)
		return
	}
	window.pointer = pointer
	window.updateOrigin()

	ctx, cancel := context.WithCancel(context.Background())
	window.cancel = cancel
	window.wg.Add(1)
	go func() {
		defer window.wg.Done()
		input.Poll(ctx, pointer, pointerPollInterval, window.windowOrigin, &window.coalescer)
	}()
}

func (window *Window) windowOrigin() (float64, float64) {
	if p := window.origin.Load(); p != nil {
		return float64(p.X), float64(p.Y)
	}
	return 0, 0
}

func (window *Window) updateOrigin() {
	pos := rl.GetWindowPosition()
	window.origin.Store(&pos)
}

func (window *Window) currentControls() config.Controls {
	if c := window.controls.Load(); c != nil {
		return *c
	}
	return config.DefaultControls()
}

func (window *Window) storeControls() {
	c := window.renderer.Controls
	window.controls.Store(&c)
}

func (window *Window) Run() {
	rl.SetTargetFPS(int32(window.cfg.Window.TargetFPS))

	for !rl.WindowShouldClose() {
		window.Update()

		rl.BeginDrawing()
		window.Draw()
		rl.EndDrawing()
	}
}

func (window *Window) Update() {
	currentTime := time.Now()
	deltaTime := currentTime.Sub(window.lastFrameTime).Seconds()
	window.lastFrameTime = currentTime

	screenWidth, screenHeight := rl.GetScreenWidth(), rl.GetScreenHeight()
	if screenWidth != window.width || screenHeight != window.height {
		window.width, window.height = screenWidth, screenHeight
		window.renderer.UpdateViewport(screenWidth, screenHeight)
		window.post(debuglog.Event{"event": "resize", "width": screenWidth, "height": screenHeight})
	}

	if c, ok := window.reloader.Pending(); ok {
		utils.Info("Config reloaded")
		window.applyControls(c, "reload")
	}

	window.handleKeys()
	window.updatePointer(currentTime)
	window.renderer.Update(deltaTime, currentTime)

	if rl.IsKeyPressed(rl.KeyF8) {
		utils.ShowDebugUI = !utils.ShowDebugUI
	}
	if utils.ShowDebugUI {
		window.debugOverlay.Update()
	}
}

func (window *Window) updatePointer(now time.Time) {
	if window.pointer != nil {
		window.updateOrigin()
		if s, ok := window.coalescer.Drain(); ok {
			window.renderer.UpdatePointer(s.X, s.Y, now)
		}
		return
	}

	if !rl.IsCursorOnScreen() {
		window.renderer.LeavePointer()
		return
	}
	delta := rl.GetMouseDelta()
	if delta.X == 0 && delta.Y == 0 && window.renderer.Tracker.World() != nil {
		return
	}
	mPos := rl.GetMousePosition()
	window.renderer.UpdatePointer(float64(mPos.X), float64(mPos.Y), now)
}

// applyControls sanitizes c against the controls in effect and hands it to the renderer.
func (window *Window) applyControls(c config.Controls, source string) {
	c.Sanitize(window.renderer.Controls)
	if window.renderer.SetControls(c) {
		window.post(debuglog.Event{
			"event":     "regenerate",
			"source":    source,
			"particles": window.renderer.Simulator.Count(),
			"text":      c.DisplayText(),
		})
	}
	window.storeControls()
}

func (window *Window) export(format convert.Format) {
	img := window.renderer.Capture()
	if img == nil {
		utils.Warn("Export skipped: nothing rendered yet")
		return
	}
	path, err := convert.Export(img, format, window.renderer.Background(), window.cfg.Export.Dir, time.Now())
	ev := debuglog.Event{"event": "export", "format": string(format), "ok": err == nil}
	if err != nil {
		utils.Error("Export %s failed: %v", format, err)
		ev["error"] = err.Error()
	} else {
		utils.Info("Exported %s", path)
		ev["path"] = path
	}
	window.post(ev)
}

func (window *Window) post(ev debuglog.Event) {
	if window.events != nil {
		window.events.Post(ev)
	}
}

func (window *Window) Draw() {
	window.renderer.Render()

	if utils.ShowDebugUI {
		window.debugOverlay.Draw(window.renderer)
	}
}

// Close stops the pointer poller and the event log, then releases GPU resources and the window.
func (window *Window) Close() {
	if window.cancel != nil {
		window.cancel()
		window.wg.Wait()
	}
	if window.pointer != nil {
		window.pointer.Close()
	}
	if window.events != nil {
		window.events.Append(debuglog.Event{"event": "stop", "sim_time": window.renderer.Simulator.Time()})
		if err := window.events.Close(); err != nil {
			utils.Warn("Closing debug log: %v", err)
		}
	}
	window.debugOverlay.Unload()
	window.renderer.Unload()
	rl.CloseWindow()
}
