package system

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/fps/assets"
	"github.com/milk9111/fps/ecs"
	"github.com/milk9111/fps/ecs/component"
	"github.com/milk9111/fps/ecs/entity"
	"github.com/milk9111/fps/logger"
	"github.com/milk9111/fps/prefabs"
	"go.uber.org/zap"
)

// SetupSystem builds the playable world once after loading: the player, its
// camera and the loaded scene. It is scheduled on entering StateMain and on
// every StateMain frame, so a failed attempt is retried until one succeeds.
type SetupSystem struct {
	spawn *mgl64.Vec3
	log   *zap.Logger
	done  bool
}

// NewSetupSystem returns a setup system. A nil spawn uses the prefab's spawn
// position.
func NewSetupSystem(spawn *mgl64.Vec3, log *zap.Logger) *SetupSystem {
	if log == nil {
		log = logger.Nop()
	}
	return &SetupSystem{spawn: spawn, log: log.Named("setup")}
}

// Done reports whether setup has completed.
func (s *SetupSystem) Done() bool {
	return s != nil && s.done
}

func (s *SetupSystem) Update(w *ecs.World) {
	if s == nil || w == nil || s.done {
		return
	}
	player, err := s.setup(w)
	if err != nil {
		s.log.Error("world setup failed, retrying next frame", zap.Error(err))
		return
	}
	s.done = true

	if pending, ok := ecs.GetResource(w, component.PendingAssetsComponent.Kind()); ok && pending.Set != nil {
		pending.Set.Clear()
	}
	ecs.RemoveResource(w, component.PendingAssetsComponent.Kind())

	s.log.Info("world ready", zap.Stringer("player", player))
}

func (s *SetupSystem) setup(w *ecs.World) (ecs.Entity, error) {
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return 0, fmt.Errorf("setup: %w", err)
	}
	camSpec, err := prefabs.LoadCameraSpec()
	if err != nil {
		return 0, fmt.Errorf("setup: %w", err)
	}

	pos := spec.Spawn.Vec3()
	if s.spawn != nil {
		pos = *s.spawn
	}

	player, err := entity.NewPlayerFromSpec(w, spec, pos)
	if err != nil {
		return 0, fmt.Errorf("setup: %w", err)
	}
	if _, err := entity.NewCameraFromSpec(w, player, camSpec); err != nil {
		ecs.DestroyEntity(w, player)
		return 0, fmt.Errorf("setup: %w", err)
	}

	if err := s.spawnScene(w); err != nil {
		ecs.DestroyEntity(w, player)
		return 0, fmt.Errorf("setup: %w", err)
	}
	return player, nil
}

// spawnScene instantiates the primary scene when it loaded. A scene that
// failed to load leaves the world empty apart from the player.
func (s *SetupSystem) spawnScene(w *ecs.World) error {
	handle, ok := ecs.GetResource(w, component.SceneHandleComponent.Kind())
	if !ok {
		s.log.Warn("no scene was requested")
		return nil
	}
	server, ok := ecs.GetResource(w, component.AssetServerComponent.Kind())
	if !ok || server.Server == nil {
		return fmt.Errorf("scene %s: no asset server", handle.Handle.Path)
	}
	if server.Server.LoadState(handle.Handle.Untyped()) != assets.LoadStateLoaded {
		s.log.Warn("scene unavailable, continuing without it",
			zap.String("path", handle.Handle.Path),
			zap.Error(server.Server.Err(handle.Handle.Untyped())))
		return nil
	}
	scene, err := assets.Get(server.Server, handle.Handle)
	if err != nil {
		return err
	}
	root, err := entity.SpawnScene(w, scene, handle.Handle.Path)
	if err != nil {
		return err
	}
	s.log.Debug("scene spawned",
		zap.String("scene", scene.Name),
		zap.Stringer("root", root),
		zap.Int("walls", len(scene.Walls)),
		zap.Int("props", len(scene.Props)))
	return nil
}
