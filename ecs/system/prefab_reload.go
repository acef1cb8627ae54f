package system

import (
	"github.com/milk9111/fps/ecs"
	"github.com/milk9111/fps/ecs/component"
	"github.com/milk9111/fps/logger"
	"github.com/milk9111/fps/prefabs"
	"go.uber.org/zap"
)

// PrefabReloadSystem applies edits to the player prefab to live players. Only
// the tuning values change; orientation and velocity are left alone.
type PrefabReloadSystem struct {
	watcher *prefabs.Watcher
	log     *zap.Logger
}

func NewPrefabReloadSystem(watcher *prefabs.Watcher, log *zap.Logger) *PrefabReloadSystem {
	if log == nil {
		log = logger.Nop()
	}
	return &PrefabReloadSystem{watcher: watcher, log: log.Named("prefabs")}
}

func (s *PrefabReloadSystem) Update(w *ecs.World) {
	if s == nil || w == nil || s.watcher == nil {
		return
	}
	names, err := s.watcher.Poll()
	if err != nil {
		s.log.Warn("prefab watcher", zap.Error(err))
	}
	for _, name := range names {
		if name != prefabs.PlayerFile {
			continue
		}
		spec, err := prefabs.LoadPlayerSpec()
		if err != nil {
			s.log.Warn("reload player prefab", zap.Error(err))
			continue
		}
		ApplyPlayerTuning(w, &spec.Movement)
		s.log.Info("player prefab reloaded",
			zap.Float64("speed", spec.Movement.Speed),
			zap.Float64("acceleration", spec.Movement.Acceleration),
			zap.Float64("sensitivity", spec.Movement.Sensitivity))
	}
}

// ApplyPlayerTuning copies the positive tuning values of spec onto every
// player.
func ApplyPlayerTuning(w *ecs.World, spec *prefabs.MovementSpec) {
	ecs.ForEach2(w,
		component.PlayerTagComponent.Kind(),
		component.MovementComponent.Kind(),
		func(_ ecs.Entity, _ *component.PlayerTag, movement *component.Movement) {
			if spec.Speed > 0 {
				movement.Speed = spec.Speed
			}
			if spec.Acceleration > 0 {
				movement.Acceleration = spec.Acceleration
			}
			if spec.Sensitivity > 0 {
				movement.Sensitivity = spec.Sensitivity
			}
		})
}
