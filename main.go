package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"dashrun/config"
	"dashrun/input"
	"dashrun/player"
	"dashrun/raster"
	"dashrun/render"
	"dashrun/world"
)

const title = "dashrun"

var (
	levelPath    = flag.String("level", "", "level file (.yaml, .toml or .tengo); empty uses the built-in level")
	tuningPath   = flag.String("tuning", "", "tuning file (.yaml or .toml); empty uses defaults")
	watch        = flag.Bool("watch", false, "reload the tuning file when it changes")
	snapshotPath = flag.String("snapshot", "", "render one frame from the spawn point to this PNG and exit")
	debug        = flag.Bool("debug", false, "enable debug logging")
	width        = flag.Int("width", 800, "window width")
	height       = flag.Int("height", 600, "window height")
)

func init() {
	// glfw and GL calls must come from the main thread.
	runtime.LockOSThread()
}

func main() {
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	tuning := config.DefaultTuning()
	if *tuningPath != "" {
		t, err := config.LoadTuning(*tuningPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load tuning")
		}
		tuning = t
	}

	spec, err := loadLevel(*levelPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load level")
	}
	objects, err := spec.Build()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build level")
	}
	log.Info().Str("level", spec.Name).Int("objects", objects.Len()).Int("capacity", objects.Cap()).Msg("level loaded")

	ctrl := player.New(spec.Spawn.Vec(), tuning.PlayerParams())
	session := world.NewSession(ctrl, objects, tuning.WorldParams(spec.Conveyor), world.WithLogger(log.Logger))

	if *snapshotPath != "" {
		img := raster.Snapshot(raster.FirstPerson(ctrl.Position, ctrl.Target()), objects, *width, *height)
		if err := raster.WritePNG(*snapshotPath, img); err != nil {
			log.Fatal().Err(err).Msg("failed to write snapshot")
		}
		log.Info().Str("path", *snapshotPath).Msg("snapshot written")
		return
	}

	var watcher *config.Watcher
	if *watch && *tuningPath != "" {
		watcher, err = config.WatchTuning(*tuningPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to watch tuning")
		}
		defer watcher.Close()
	}

	if err := run(session, spec.Conveyor, tuning, watcher); err != nil {
		log.Fatal().Err(err).Msg("failed to start")
	}
}

func loadLevel(path string) (config.LevelSpec, error) {
	if path == "" {
		return config.DefaultLevel()
	}
	return config.LoadLevel(path)
}

func run(session *world.Session, conveyor config.Conveyor, tuning config.Tuning, watcher *config.Watcher) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("initialize glfw: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(*width, *height, title, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("initialize gl: %w", err)
	}
	log.Debug().Str("version", gl.GoStr(gl.GetString(gl.VERSION))).Msg("opengl ready")

	glfw.SwapInterval(1)
	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)

	fbw, fbh := window.GetFramebufferSize()
	renderer, err := render.New(fbw, fbh)
	if err != nil {
		return err
	}
	defer renderer.Delete()

	window.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		renderer.Resize(w, h)
	})
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
	})

	poller := input.NewPoller(windowSource{win: window})
	// The cursor jumps while the window is unfocused.
	window.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		if focused {
			poller.Reset()
		}
	})
	ctrl := session.Player

	lastFrameTime := glfw.GetTime()
	lastFpsTime := lastFrameTime
	frameCount, fps := 0, 0

	for !window.ShouldClose() && !session.Ended() {
		currentTime := glfw.GetTime()
		deltaTime := tuning.ClampDT(currentTime - lastFrameTime)
		lastFrameTime = currentTime

		frameCount++
		if currentTime-lastFpsTime >= 1.0 {
			fps = frameCount
			frameCount = 0
			lastFpsTime = currentTime
		}

		if watcher != nil {
			tuning = applyReload(watcher, session, conveyor, tuning)
		}

		session.Step(poller.Poll(), deltaTime)
		window.SetTitle(windowTitle(session, fps, poller.Down(input.DebugText)))

		renderer.Draw(ctrl.Position, ctrl.Target(), session.Objects)

		window.SwapBuffers()
		glfw.PollEvents()
	}

	if session.Ended() {
		log.Info().Int("jumps", session.Progress.SuccessfulJumps).Msg("game over")
	}
	return nil
}

// applyReload takes at most one pending tuning update without blocking.
func applyReload(w *config.Watcher, session *world.Session, conveyor config.Conveyor, current config.Tuning) config.Tuning {
	select {
	case t := <-w.Updates:
		session.Player.SetParams(t.PlayerParams())
		session.SetParams(t.WorldParams(conveyor))
		log.Info().Float64("gravity", t.Gravity).Float64("platform_speed", t.PlatformSpeed).Msg("tuning reloaded")
		return t
	case err := <-w.Errors:
		log.Warn().Err(err).Msg("tuning reload failed")
	default:
	}
	return current
}

func windowTitle(session *world.Session, fps int, debug bool) string {
	if !debug {
		return fmt.Sprintf("%s | FPS: %d", title, fps)
	}
	st := session.State()
	p := session.Player.Position
	return fmt.Sprintf("%s | FPS: %d | %s | jumps: %d | speed: %.2f | platforms: %t | pos: %.1f %.1f %.1f",
		title, fps, st.Mode, session.Progress.SuccessfulJumps, session.Progress.PlatformSpeed,
		st.PlatformsActive, p[0], p[1], p[2])
}
