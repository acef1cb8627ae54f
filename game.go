package main

import (
	"fmt"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/fps/assets"
	"github.com/milk9111/fps/config"
	"github.com/milk9111/fps/ecs"
	"github.com/milk9111/fps/ecs/component"
	"github.com/milk9111/fps/ecs/system"
	"github.com/milk9111/fps/prefabs"
	"github.com/milk9111/fps/scenes"
	"go.uber.org/zap"
	"golang.org/x/image/colornames"
)

type Game struct {
	cfg   *config.Config
	log   *zap.Logger
	debug bool

	world    *ecs.World
	pipeline *system.Pipeline
	input    *Input

	captured      bool
	cursorX       int
	cursorY       int
	cursorTracked bool
}

func NewGame(cfg *config.Config, log *zap.Logger, debug bool) (*Game, error) {
	world := ecs.NewWorld()

	server, err := newAssetServer(cfg, log)
	if err != nil {
		return nil, err
	}
	world.OnClose(server)
	if err := ecs.SetResource(world, component.AssetServerComponent.Kind(), &component.AssetServer{Server: server}); err != nil {
		_ = world.Close()
		return nil, fmt.Errorf("game: store asset server: %w", err)
	}

	prefabs.Dir = filepath.Join(cfg.Assets.Root, "prefabs")
	var watcher *prefabs.Watcher
	if cfg.Assets.Watch {
		watcher, err = prefabs.NewWatcher(prefabs.Dir)
		if err != nil {
			log.Warn("prefab hot reload disabled", zap.String("dir", prefabs.Dir), zap.Error(err))
		} else {
			world.OnClose(watcher)
		}
	}

	input := NewInput(cfg.Window.Width, cfg.Window.Height)
	pipeline := system.Register(world.Scheduler(), system.Options{
		Input:   input,
		Config:  cfg,
		Logger:  log,
		Watcher: watcher,
	})

	g := &Game{
		cfg:      cfg,
		log:      log,
		debug:    debug,
		world:    world,
		pipeline: pipeline,
		input:    input,
	}
	g.setCaptured(cfg.Window.CaptureCursor)
	return g, nil
}

func newAssetServer(cfg *config.Config, log *zap.Logger) (*assets.Server, error) {
	root := cfg.Assets.Root
	server, err := assets.NewServer(assets.Options{
		Workers: cfg.Assets.Workers,
		Read: func(path string) ([]byte, error) {
			return scenes.ReadFile(root, path)
		},
		Logger: log.Named("assets"),
	})
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	server.RegisterDecoder(".scn", func(data []byte) (any, error) {
		scene, err := scenes.Decode(data)
		if err != nil {
			return nil, err
		}
		return scene, nil
	})
	return server, nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.setCaptured(!g.captured)
	}

	x, y := ebiten.CursorPosition()
	if g.captured && g.cursorTracked {
		if dx, dy := x-g.cursorX, y-g.cursorY; dx != 0 || dy != 0 {
			g.world.Events().PushPointerMotion(mgl64.Vec2{float64(dx), float64(dy)})
		}
	}
	g.cursorX, g.cursorY = x, y
	g.cursorTracked = true

	g.world.Step(1 / float64(ebiten.TPS()))
	return nil
}

func (g *Game) setCaptured(captured bool) {
	g.captured = captured
	g.cursorTracked = false
	if captured {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	}
	g.log.Debug("cursor capture", zap.Bool("captured", captured))
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Black)

	if g.debug {
		system.DrawPhysicsDebug(g.pipeline.Physics.Space(), g.world, screen)
		system.DrawPlayerDebug(g.world, screen)
		return
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s    Esc: toggle cursor", g.world.States().Current()))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.input.SetViewport(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// Close releases the world's loaders and watchers.
func (g *Game) Close() error {
	return g.world.Close()
}
